package installation

import (
	"luminary/internal/core"
)

// Parameters reports the world's tunables grouped for viewers.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	g := w.geom
	cy := w.auto.Params()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("petals", "Petals", g.Petals),
				core.IntParam("petal_cols", "Petal columns", g.PetalCols),
				core.IntParam("petal_rows", "Petal rows", g.PetalRows),
				core.IntParam("floor_cols", "Floor columns", g.FloorCols),
				core.IntParam("floor_rows", "Floor rows", g.FloorRows),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.IntParam("epoch", "Epoch", w.epoch),
			},
			Summary: w.scene.String(),
		},
		{
			Name: "Cadence",
			Params: []core.Parameter{
				core.IntParam("slow_every", "Slow layer period", p.SlowEvery),
				core.IntParam("turing_every", "Texture period", p.TuringEvery),
				core.IntParam("tone_epochs", "Tone epochs", p.ToneEpochs),
			},
		},
		{
			Name: "Rainbow",
			Params: []core.Parameter{
				core.IntParam("colors", "Colors", cy.Colors),
				core.FloatParam("diagonal_chance", "Diagonal chance", cy.DiagonalChance),
				core.FloatParam("skip_chance", "Skip chance", cy.SkipChance),
			},
		},
		{
			Name: "Pressure",
			Params: []core.Parameter{
				core.IntParam("pressure_radius", "Pressure radius", p.PressureRadius),
				core.IntParam("pressure_delay", "Pressure delay", p.PressureDelay),
				core.IntParam("pressure_rarity", "Pressure rarity", p.PressureRarity),
			},
		},
		{
			Name: "Control",
			Params: []core.Parameter{
				core.IntParam("hibernation_ticks", "Hibernation ticks", p.HibernationTicks),
				core.IntParam("transition_ticks", "Transition ticks", p.TransitionTicks),
			},
		},
	}}
}

// ParameterControls lists the parameters viewers may adjust at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "slow_every", Label: "Slow layer period", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16, HasMin: true, HasMax: true},
		{Key: "turing_every", Label: "Texture period", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "pressure_radius", Label: "Pressure radius", Type: core.ParamTypeInt, Step: 17, Min: 17, Max: 340, HasMin: true, HasMax: true},
		{Key: "pressure_rarity", Label: "Pressure rarity", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: "diagonal_chance", Label: "Diagonal chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	p := &w.cfg.Params
	switch key {
	case "slow_every":
		p.SlowEvery = clampInt(value, 1, 16)
	case "turing_every":
		p.TuringEvery = clampInt(value, 1, 64)
	case "pressure_radius":
		p.PressureRadius = clampInt(value, 17, 340)
	case "pressure_rarity":
		p.PressureRarity = clampInt(value, 0, 1000)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point control, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "diagonal_chance":
		w.cfg.Cyclic.DiagonalChance = min(1, max(0, value))
		w.auto.SetDiagonalChance(w.cfg.Cyclic.DiagonalChance)
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
