package installation

import (
	"fmt"

	"luminary/internal/sims/decay"
)

// Display patterns carried as control directives. A directive above
// AggressiveReversion reverts to its secondary directive as soon as its
// control signal starts to fall.
const (
	PatternBase                 = 0
	PatternSpotlightsOnGrey     = 1
	PatternSpotlightsOnTwoTones = 2
	PatternSolid                = 3
	PatternTwoTones             = 4
	PatternFullRainbow          = 10
	PatternNTones               = 20
	PatternQ2                   = 30
	PatternHanabi               = 31
	PatternTexture              = 32

	AggressiveReversion = 100
)

// Scene selects the standing overrides the driver applies every epoch.
type Scene int

const (
	SceneBase Scene = iota
	SceneNoHibernation
	SceneCirclingRainbows
	SceneQ2
	SceneFireworks
	SceneTexture
)

// Scenes lists every scene in menu order.
var Scenes = []Scene{SceneBase, SceneNoHibernation, SceneCirclingRainbows, SceneQ2, SceneFireworks, SceneTexture}

func (s Scene) String() string {
	switch s {
	case SceneBase:
		return "Default"
	case SceneNoHibernation:
		return "No hibernation"
	case SceneCirclingRainbows:
		return "Circling rainbows"
	case SceneQ2:
		return "Q2"
	case SceneFireworks:
		return "Fireworks"
	case SceneTexture:
		return "Texture"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// rowPattern is the directive a scene pins along the row above the wave
// source.
func (s Scene) rowPattern() (int, bool) {
	switch s {
	case SceneQ2:
		return PatternQ2, true
	case SceneFireworks:
		return PatternHanabi, true
	case SceneTexture:
		return PatternTexture, true
	default:
		return 0, false
	}
}

// SetScene switches the standing overrides.
func (w *World) SetScene(s Scene) { w.scene = s }

// revert applies the control timers to the freshly stepped cell: a fading
// transition falls back to its secondary directive, and an expired cell
// occasionally returns to the base pattern.
func (w *World) revert(cur, next []decay.Cell, xy int) {
	p := w.cfg.Params
	n := &next[xy]
	if n.Orth < p.HibernationTicks &&
		n.Orth < cur[xy].Orth &&
		n.Directive0 != n.Directive1 &&
		(w.secondaryTransition() || n.Directive0 > AggressiveReversion) {
		n.Directive0 = n.Directive1
		n.Orth += p.SecondaryTransitionTicks
	}
	if n.Orth == 0 && n.Directive0 != PatternBase && w.secondaryTransition() {
		n.Directive0, n.Directive1 = PatternBase, PatternBase
		n.Orth = p.SecondaryTransitionTicks
	}
}

func (w *World) secondaryTransition() bool { return w.rng.IntN(w.cells) == 0 }

// holdScene keeps the no-hibernation anchor alive between epochs.
func (w *World) holdScene() {
	if w.scene != SceneNoHibernation {
		return
	}
	xy := w.petalAnchor(2)
	ctl := w.control.Current()
	ctl[xy].Orth = max(ctl[xy].Orth, w.cfg.Params.NoHibernationFloor)
}

// petalAnchor is the wave-row cell under the middle of petal p, or the
// nearest active cell of that row.
func (w *World) petalAnchor(p int) int {
	cols := w.geom.Cols()
	x := w.geom.PetalCols*p + w.geom.PetalCols/2
	if w.geom.IsFloor(w.waveRow) {
		x = min(x, w.geom.FloorCols-1)
	}
	return w.waveRow*cols + x
}

// SetDirective writes a directive pair and control hold onto xy. It takes
// effect from the next epoch.
func (w *World) SetDirective(xy, d0, d1, hold int) {
	if xy < 0 || xy >= w.cells || !w.topo.Active(xy) {
		return
	}
	c := &w.control.Current()[xy]
	c.Directive0, c.Directive1 = d0, d1
	c.Orth = hold
}

// TriggerPressure queues a press on xy, applied during the next epoch the
// same way a random floor trigger is.
func (w *World) TriggerPressure(xy int) {
	if xy < 0 || xy >= w.cells || !w.topo.Active(xy) {
		return
	}
	w.pending = append(w.pending, xy)
}

// Ignite queues a spark burst of the given color around xy.
func (w *World) Ignite(xy, color int) {
	if xy < 0 || xy >= w.cells || !w.topo.Active(xy) {
		return
	}
	w.ignitions = append(w.ignitions, ignition{xy: xy, color: color})
}

func (w *World) kickWave(xy int) {
	p := w.cfg.Params
	w.waves.Current()[xy].Orth += int(p.ChangeColorKick * float64(p.ToneEpochs*w.spectrum.Colors))
}

// ChangeColor advances the tone along the whole wave row.
func (w *World) ChangeColor() {
	cols := w.geom.Cols()
	for x := 0; x < cols; x++ {
		if xy := w.waveRow*cols + x; w.topo.Active(xy) {
			w.kickWave(xy)
		}
	}
}

// CenteredRainbow starts a full rainbow along the wave row that settles
// into n-tones. Extended, or starting from an idle cell, adds extra hold.
func (w *World) CenteredRainbow(extended bool) {
	p := w.cfg.Params
	cols := w.geom.Cols()
	ctl := w.control.Current()
	for x := 0; x < cols; x++ {
		xy := w.waveRow*cols + x
		if !w.topo.Active(xy) {
			continue
		}
		hold := p.HibernationTicks + p.TransitionTicks
		if extended || ctl[xy].Orth == 0 {
			hold += p.NoHibernationFloor
		}
		w.SetDirective(xy, PatternFullRainbow, PatternNTones+2, hold)
		w.kickWave(xy)
	}
}

// PetalRainbow starts a full rainbow under petal p.
func (w *World) PetalRainbow(p int) {
	if p < 0 || p >= w.geom.Petals {
		return
	}
	xy := w.petalAnchor(p)
	w.SetDirective(xy, PatternFullRainbow, PatternNTones+2, w.cfg.Params.HibernationTicks+w.cfg.Params.TransitionTicks)
	w.kickWave(xy)
}
