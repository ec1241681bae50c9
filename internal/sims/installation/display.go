package installation

import "luminary/internal/sims/cyclic"

// redraw maps the next generation of every layer onto the display buffer.
func (w *World) redraw() {
	s := w.spectrum
	colors := s.Colors
	ctl := w.control.Next()
	base := w.base.Next()
	spot := w.spot.Next()
	sparks := w.sparks.Next()
	waves := w.waves.Next()
	off := s.DarkGrey(0)

	for xy := range w.display {
		if !w.topo.Active(xy) {
			w.display[xy] = off
			continue
		}
		tone := w.tone[xy]
		rel := ((base[xy]-tone)%colors + colors) % colors

		switch d := ctl[xy].Directive0 % AggressiveReversion; {
		case d == PatternFullRainbow:
			w.display[xy] = s.Bright(base[xy])

		case d == PatternSolid:
			w.display[xy] = s.Bright(tone + 1)

		case d == PatternSpotlightsOnGrey:
			if spot[xy] == cyclic.Masked {
				w.display[xy] = s.Bright(base[xy])
			} else {
				w.display[xy] = s.Grey(spot[xy])
			}

		case d == PatternSpotlightsOnTwoTones && spot[xy] == cyclic.Masked:
			w.display[xy] = s.Bright(base[xy])

		case d == PatternSpotlightsOnTwoTones, d == PatternTwoTones:
			switch rel {
			case colors - 1:
				w.display[xy] = s.Dark(tone)
			case 0, 1:
				w.display[xy] = s.Bright(base[xy])
			case 2:
				w.display[xy] = s.Dark(base[xy] - 1)
			default:
				w.display[xy] = off
			}

		case d > PatternNTones && d <= PatternNTones+4:
			w.display[xy] = w.nTones(d-PatternNTones, rel, tone)

		case d == PatternBase, d == PatternNTones:
			if rel == colors-1 || rel == 0 {
				w.display[xy] = s.Dark(tone)
			} else {
				w.display[xy] = off
			}

		case d == PatternQ2:
			switch c := spot[xy]; {
			case c < 4:
				w.display[xy] = s.Bright(base[xy])
			case c < 6 || c > 9:
				w.display[xy] = s.Dark(base[xy])
			default:
				w.display[xy] = off
			}

		case d == PatternHanabi:
			if sparks[xy].Lit() {
				w.display[xy] = s.Bright(sparks[xy].Color)
				break
			}
			phase := w.wavePhase(waves[xy]) % w.cfg.Params.WaveCycle
			level := min(phase, w.cfg.Params.WaveCycle-phase)
			if c := spot[xy]; c >= 0 {
				level += min(c, colors-c)
			}
			w.display[xy] = s.DarkGrey(min(level, colors-1))

		case d == PatternTexture:
			w.display[xy] = s.Bright(int(w.TuringPhase(xy) * float64(colors)))

		default:
			w.display[xy] = s.Bright(xy)
		}
	}
}

// nTones folds the distance from the tone onto k bands.
func (w *World) nTones(k, rel, tone int) uint8 {
	s := w.spectrum
	aa := rel
	switch k {
	case 1:
		if rel > 1 {
			aa--
		}
		fallthrough
	case 2:
		if rel > 2 {
			aa -= 2
		} else if rel > 0 {
			aa--
		}
	case 3:
		if rel > 1 {
			aa--
		}
	}
	switch {
	case rel == s.Colors-1:
		return s.Dark(tone)
	case rel <= 3:
		return s.Bright(tone + aa)
	case rel == 4:
		return s.Dark(tone + aa - 1)
	default:
		return s.DarkGrey(0)
	}
}
