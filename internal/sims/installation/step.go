package installation

import (
	"luminary/internal/core"
	"luminary/internal/sims/cyclic"
	"luminary/internal/sims/decay"
	"luminary/internal/sims/hanabi"
	"luminary/internal/sims/turing"
)

type ignition struct {
	xy    int
	color int
}

// Step advances the installation by one epoch. Control and wave fields run
// every epoch; the cyclic, pressure and spark layers run every SlowEvery
// epochs and the texture every TuringEvery epochs.
func (w *World) Step() {
	p := w.cfg.Params
	w.epoch++
	slow := core.Every(w.epoch, p.SlowEvery)

	ctl, ctlNext := w.control.Current(), w.control.Next()
	wav, wavNext := w.waves.Current(), w.waves.Next()
	prs, prsNext := w.pressure.Current(), w.pressure.Next()
	base, baseNext := w.base.Current(), w.base.Next()
	spot, spotNext := w.spot.Current(), w.spot.Next()
	sp, spNext := w.sparks.Current(), w.sparks.Next()

	for _, xy := range w.topo.Cells() {
		ctlNext[xy] = decay.Step(w.topo, ctl, xy)
		w.revert(ctl, ctlNext, xy)
		wavNext[xy] = decay.Step(w.topo, wav, xy)

		if slow {
			baseNext[xy] = w.auto.Step(base, w.baseImpat, xy)
			if prs[xy].Lit() {
				spotNext[xy] = cyclic.Masked
			} else {
				spotNext[xy] = w.auto.Step(spot, w.spotImpat, xy)
			}

			prsNext[xy] = decay.Step(w.topo, prs, xy)
			if w.pressureSelf[xy] > 0 {
				w.pressureSelf[xy]--
				decay.Source(prsNext, xy, p.PressureRadius)
			}

			spNext[xy] = hanabi.Step(w.topo, sp, xy)
			if w.wavePhase(wavNext[xy])%p.WaveCycle < p.WaveQuiet {
				hanabi.Extinguish(spNext, xy)
			}
		} else if w.rng.IntN(p.PressureRadius) < prs[xy].Orth {
			baseNext[xy] = w.auto.Step(base, w.baseImpat, xy)
		}
	}

	if core.Every(w.epoch, p.TuringEvery) {
		w.engine.Step(w.u, w.v, turing.Annealing(w.turingEpoch, p.TuringRamp))
		w.turingEpoch++
	}

	w.driveWaveRow()
	w.triggers()
	w.retone()
	w.redraw()

	w.control.Commit()
	w.waves.Commit()
	w.pressure.Commit()
	w.base.Commit()
	w.spot.Commit()
	w.sparks.Commit()
	w.holdScene()
}

// wavePhase is the number of wave steps a cell has seen.
func (w *World) wavePhase(c decay.Cell) int { return c.Orth / w.cfg.Params.WaveStep }

// toneOf is the rainbow tone the wave field currently selects.
func (w *World) toneOf(c decay.Cell) int {
	return w.wavePhase(c) / w.cfg.Params.ToneEpochs % w.spectrum.Colors
}

// driveWaveRow raises the wave source row and applies the row's scene
// overrides.
func (w *World) driveWaveRow() {
	p := w.cfg.Params
	cols := w.geom.Cols()
	wav, wavNext := w.waves.Current(), w.waves.Next()
	ctl, ctlNext := w.control.Current(), w.control.Next()

	for x := 0; x < cols; x++ {
		xy := w.waveRow*cols + x
		if !w.topo.Active(xy) {
			continue
		}
		decay.Source(wavNext, xy, max(wavNext[xy].Orth, wav[xy].Orth)+p.WaveStep)

		switch ctlNext[xy].Directive0 {
		case PatternNTones + 2, PatternNTones + 3, PatternNTones + 4:
			tones := PatternNTones + 2 + (2*w.tone[xy]+w.wavePhase(wavNext[xy])/p.ToneEpochs/w.spectrum.Colors)%3
			ctlNext[xy].Directive0, ctlNext[xy].Directive1 = tones, tones
			if tones != ctl[xy].Directive0 {
				ctlNext[xy].Orth += 18
			}
		}

		if w.scene == SceneCirclingRainbows && x == w.epoch%cols {
			ctlNext[xy].Directive0 = PatternFullRainbow + AggressiveReversion
			ctlNext[xy].Directive1 = PatternTwoTones
			ctlNext[xy].Orth = p.HibernationTicks + p.TransitionTicks
		}
		if pattern, ok := w.scene.rowPattern(); ok && w.waveRow > 0 {
			above := xy - cols
			ctlNext[above].Directive0, ctlNext[above].Directive1 = pattern, pattern
			if pattern != ctl[above].Directive0 {
				ctlNext[above].Orth += 18
			}
		}
	}
}

// triggers applies pressure presses and queued ignitions on the next spark
// generation, after the spark step has run.
func (w *World) triggers() {
	p := w.cfg.Params
	spNext := w.sparks.Next()
	if floor := w.geom.FloorRows * w.geom.FloorCols * p.PressureRarity; floor > 0 {
		for _, xy := range w.topo.Cells() {
			if _, y := core.Coords(w.geom.Cols(), xy); !w.geom.IsFloor(y) {
				continue
			}
			if w.rng.IntN(floor) == 0 {
				w.press(xy)
			}
		}
	}
	for _, xy := range w.pending {
		w.press(xy)
	}
	w.pending = w.pending[:0]
	for _, ig := range w.ignitions {
		hanabi.Ignite(w.topo, spNext, ig.xy, ig.color, w.rng)
	}
	w.ignitions = w.ignitions[:0]
}

func (w *World) press(xy int) {
	if w.pressureSelf[xy] < w.cfg.Params.PressureDelay {
		hanabi.Ignite(w.topo, w.sparks.Next(), xy, w.seedColor[xy], w.rng)
	}
	w.pressureSelf[xy] = w.cfg.Params.PressureDelay
}

// retone refreshes the tone of cells that changed color or show the full
// rainbow.
func (w *World) retone() {
	ctl := w.control.Current()
	base, baseNext := w.base.Current(), w.base.Next()
	wavNext := w.waves.Next()
	for _, xy := range w.topo.Cells() {
		if ctl[xy].Directive0 == PatternFullRainbow || baseNext[xy] != base[xy] {
			w.tone[xy] = w.toneOf(wavNext[xy])
		}
	}
}
