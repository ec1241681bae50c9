package installation

import (
	"strconv"

	"luminary/internal/sims/cyclic"
	"luminary/internal/sims/turing"
	"luminary/internal/topology"
)

// Params holds the driver's cadences, timers and trigger rates.
type Params struct {
	// SlowEvery runs the cyclic, pressure and spark layers once every
	// SlowEvery epochs; control and wave fields run every epoch.
	SlowEvery int
	// TuringEvery runs the texture engine once every TuringEvery epochs.
	TuringEvery int
	// TuringRamp is the number of texture steps spent annealing.
	TuringRamp int
	// WarmupEpochs are run by Reset before the first frame is shown.
	WarmupEpochs int

	WaveStep        int
	WaveCycle       int
	WaveQuiet       int
	ToneEpochs      int
	ChangeColorKick float64

	PressureRadius int
	PressureDelay  int
	// PressureRarity scales the per-epoch chance of a random floor trigger
	// to 1 / (floor cells * PressureRarity). Zero disables random triggers.
	PressureRarity int

	TransitionTicks          int
	SecondaryTransitionTicks int
	HibernationTicks         int
	NoHibernationFloor       int
}

// Config controls the installation sim.
type Config struct {
	Geometry topology.Geometry
	Seed     int64

	Cyclic cyclic.Params
	Scales []turing.Scale
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Geometry: topology.DefaultGeometry(),
		Seed:     5,
		Cyclic:   cyclic.DefaultParams(),
		Scales:   turing.DefaultScales(),
		Params: Params{
			SlowEvery:                4,
			TuringEvery:              4,
			TuringRamp:               200,
			WarmupEpochs:             800,
			WaveStep:                 17,
			WaveCycle:                480,
			WaveQuiet:                12,
			ToneEpochs:               40,
			ChangeColorKick:          10.5,
			PressureRadius:           76,
			PressureDelay:            5,
			PressureRarity:           100,
			TransitionTicks:          3000,
			SecondaryTransitionTicks: 300,
			HibernationTicks:         70000,
			NoHibernationFloor:       10000,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Geometry = topology.GeometryFromMap(cfg)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"slow_every", &c.Params.SlowEvery, 1},
		{"turing_every", &c.Params.TuringEvery, 1},
		{"turing_ramp", &c.Params.TuringRamp, 0},
		{"warmup", &c.Params.WarmupEpochs, 0},
		{"tone_epochs", &c.Params.ToneEpochs, 1},
		{"pressure_radius", &c.Params.PressureRadius, 1},
		{"pressure_delay", &c.Params.PressureDelay, 0},
		{"pressure_rarity", &c.Params.PressureRarity, 0},
		{"hibernation_ticks", &c.Params.HibernationTicks, 0},
	}
	for _, f := range ints {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= f.min {
				*f.dst = parsed
			}
		}
	}
	if v, ok := cfg["diagonal_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Cyclic.DiagonalChance = parsed
		}
	}
	return c
}
