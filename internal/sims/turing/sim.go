package turing

import (
	"image/color"
	"strconv"

	"luminary/internal/core"
	"luminary/internal/render"
)

// Config holds parameters for the standalone texture sim.
type Config struct {
	Width      int
	Height     int
	Colors     int
	RampEpochs int
	Scales     []Scale
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Colors: 48, RampEpochs: 120, Scales: DefaultScales()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["ramp"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RampEpochs = parsed
		}
	}
	return c
}

// Texture runs the engine alone and shows the phase of every cell as a hue.
type Texture struct {
	cfg     Config
	engine  *Engine
	u, v    *Field
	epoch   int
	display []uint8
	palette []color.RGBA
}

// NewTexture builds the standalone sim.
func NewTexture(cfg Config) (*Texture, error) {
	e, err := New(cfg.Width, cfg.Height, cfg.Scales)
	if err != nil {
		return nil, err
	}
	t := &Texture{
		cfg:     cfg,
		engine:  e,
		u:       e.NewField(),
		v:       e.NewField(),
		display: make([]uint8, cfg.Width*cfg.Height),
		palette: render.Rainbow(cfg.Colors, 55),
	}
	t.Reset(7)
	return t, nil
}

// Name returns the simulation identifier.
func (t *Texture) Name() string { return "turing" }

// Size returns the grid dimensions.
func (t *Texture) Size() core.Size { return core.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Cells exposes the quantized phase of every cell.
func (t *Texture) Cells() []uint8 { return t.display }

// Palette returns the phase hues.
func (t *Texture) Palette() []color.RGBA { return t.palette }

// Fields exposes the u and v fields.
func (t *Texture) Fields() (*Field, *Field) { return t.u, t.v }

// Reset reseeds both fields and restarts the annealing ramp.
func (t *Texture) Reset(seed int64) {
	Seed(t.u, t.v, t.cfg.Width, t.cfg.Height, seed)
	t.epoch = 0
	t.redraw()
}

// Step advances the texture by one epoch.
func (t *Texture) Step() {
	t.engine.Step(t.u, t.v, Annealing(t.epoch, t.cfg.RampEpochs))
	t.epoch++
	t.redraw()
}

func (t *Texture) redraw() {
	for xy := range t.display {
		t.display[xy] = uint8(int(Phase(t.u, t.v, xy)*float64(t.cfg.Colors)) % t.cfg.Colors)
	}
}

func init() {
	core.Register("turing", func(cfg map[string]string) core.Sim {
		t, err := NewTexture(FromMap(cfg))
		if err != nil {
			t, _ = NewTexture(DefaultConfig())
		}
		return t
	})
}
