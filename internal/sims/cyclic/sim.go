package cyclic

import (
	"image/color"
	"strconv"

	"luminary/internal/core"
	"luminary/internal/render"
	"luminary/internal/topology"
)

// Config holds parameters for the standalone rainbow sim.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Params Params
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Seed: 5, Params: DefaultParams()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["colors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= 64 {
			c.Params.Colors = parsed
		}
	}
	if v, ok := cfg["diagonal_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DiagonalChance = parsed
		}
	}
	return c
}

// Rainbow runs the cyclic automaton alone on a torus.
type Rainbow struct {
	cfg        Config
	topo       *topology.Topology
	rng        *core.RNG
	auto       *Automaton
	color      *core.Layer[int]
	impatience []int
	display    []uint8
	palette    []color.RGBA
}

// NewRainbow builds the standalone sim. It returns an error when the torus is
// too small to resolve.
func NewRainbow(cfg Config) (*Rainbow, error) {
	topo, err := topology.Torus(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed)
	r := &Rainbow{
		cfg:        cfg,
		topo:       topo,
		rng:        rng,
		auto:       New(topo, cfg.Params, rng),
		color:      core.NewLayer[int](topo.Len()),
		impatience: make([]int, topo.Len()),
		display:    make([]uint8, topo.Len()),
	}
	r.palette = render.Rainbow(r.auto.Params().Colors, 62)
	r.Reset(cfg.Seed)
	return r, nil
}

// Name returns the simulation identifier.
func (r *Rainbow) Name() string { return "cyclic" }

// Size returns the grid dimensions.
func (r *Rainbow) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Cells exposes the current colors as palette indices.
func (r *Rainbow) Cells() []uint8 { return r.display }

// Palette returns one hue per color.
func (r *Rainbow) Palette() []color.RGBA { return r.palette }

// Colors exposes the committed color layer.
func (r *Rainbow) Colors() []int { return r.color.Current() }

// Reset randomizes every cell using the provided seed.
func (r *Rainbow) Reset(seed int64) {
	r.rng.Seed(seed)
	r.auto.Randomize(r.color.Current(), r.impatience)
	copy(r.color.Next(), r.color.Current())
	r.redraw()
}

// Step advances the automaton by one epoch.
func (r *Rainbow) Step() {
	r.auto.StepAll(r.color.Current(), r.impatience, r.color.Next())
	r.color.Commit()
	r.redraw()
}

func (r *Rainbow) redraw() {
	for i, c := range r.color.Current() {
		r.display[i] = uint8(c)
	}
}

func init() {
	core.Register("cyclic", func(cfg map[string]string) core.Sim {
		r, err := NewRainbow(FromMap(cfg))
		if err != nil {
			r, _ = NewRainbow(DefaultConfig())
		}
		return r
	})
}
