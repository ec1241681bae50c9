package hanabi

import (
	"image/color"
	"strconv"

	"luminary/internal/core"
	"luminary/internal/render"
	"luminary/internal/topology"
)

// Config holds parameters for the standalone fireworks sim.
type Config struct {
	Width  int
	Height int
	Colors int
	// IgniteChance is the per-epoch probability of a new burst.
	IgniteChance float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Colors: 12, IgniteChance: 0.15}
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
	if v, ok := cfg["ignite_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.IgniteChance = parsed
		}
	}
	return c
}

// Fireworks runs the spark automaton alone on a torus with random bursts.
type Fireworks struct {
	cfg     Config
	topo    *topology.Topology
	rng     *core.RNG
	cells   *core.Layer[Cell]
	display []uint8
	palette []color.RGBA
}

// NewFireworks builds the standalone sim.
func NewFireworks(cfg Config) (*Fireworks, error) {
	topo, err := topology.Torus(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	palette := append([]color.RGBA{{A: 0xff}}, render.Rainbow(cfg.Colors, 70)...)
	return &Fireworks{
		cfg:     cfg,
		topo:    topo,
		rng:     core.NewRNG(0),
		cells:   core.NewLayer[Cell](topo.Len()),
		display: make([]uint8, topo.Len()),
		palette: palette,
	}, nil
}

// Name identifies the simulation.
func (f *Fireworks) Name() string { return "hanabi" }

// Size returns the grid dimensions.
func (f *Fireworks) Size() core.Size { return core.Size{W: f.cfg.Width, H: f.cfg.Height} }

// Cells exposes the display buffer: 0 for dark, 1+color for lit cells.
func (f *Fireworks) Cells() []uint8 { return f.display }

// Palette returns black followed by one hue per color.
func (f *Fireworks) Palette() []color.RGBA { return f.palette }

// Sparks exposes the committed spark layer.
func (f *Fireworks) Sparks() []Cell { return f.cells.Current() }

// Reset darkens the sky and lights one burst in the middle.
func (f *Fireworks) Reset(seed int64) {
	f.rng.Seed(seed)
	f.cells.Fill(Cell{})
	center := (f.cfg.Height/2)*f.cfg.Width + f.cfg.Width/2
	Ignite(f.topo, f.cells.Current(), center, f.rng.IntN(f.cfg.Colors), f.rng)
	copy(f.cells.Next(), f.cells.Current())
	f.redraw()
}

// Step advances the sparks by one epoch, then injects bursts on the next
// generation so ignition wins over the rule for the cells it touches.
func (f *Fireworks) Step() {
	StepAll(f.topo, f.cells.Current(), f.cells.Next())
	if core.Chance(f.rng, f.cfg.IgniteChance) {
		xy := f.rng.IntN(f.topo.Len())
		Ignite(f.topo, f.cells.Next(), xy, f.rng.IntN(f.cfg.Colors), f.rng)
	}
	f.cells.Commit()
	f.redraw()
}

func (f *Fireworks) redraw() {
	for i, c := range f.cells.Current() {
		if c.Lit() {
			f.display[i] = uint8(1 + c.Color%f.cfg.Colors)
			continue
		}
		f.display[i] = 0
	}
}

func init() {
	core.Register("hanabi", func(cfg map[string]string) core.Sim {
		f, err := NewFireworks(FromMap(cfg))
		if err != nil {
			f, _ = NewFireworks(DefaultConfig())
		}
		f.Reset(1)
		return f
	})
}
