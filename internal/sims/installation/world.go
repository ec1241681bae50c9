package installation

import (
	"image/color"

	"luminary/internal/core"
	"luminary/internal/render"
	"luminary/internal/sims/cyclic"
	"luminary/internal/sims/decay"
	"luminary/internal/sims/hanabi"
	"luminary/internal/sims/turing"
	"luminary/internal/topology"
)

// World owns every layer of the installation and advances them together.
// Only World commits its layers; readers see the committed generation.
type World struct {
	cfg   Config
	geom  topology.Geometry
	topo  *topology.Topology
	rng   *core.RNG
	cells int

	control  *core.Layer[decay.Cell]
	waves    *core.Layer[decay.Cell]
	pressure *core.Layer[decay.Cell]

	auto        *cyclic.Automaton
	base        *core.Layer[int]
	spot        *core.Layer[int]
	baseImpat   []int
	spotImpat   []int
	sparks      *core.Layer[hanabi.Cell]
	engine      *turing.Engine
	u, v        *turing.Field
	turingEpoch int

	tone         []int
	seedColor    []int
	pressureSelf []int
	pending      []int
	ignitions    []ignition

	pressureMask []float32
	sparkMask    []float32

	waveRow  int
	scene    Scene
	epoch    int
	spectrum render.Spectrum
	palette  []color.RGBA
	display  []uint8
}

// New builds a world from cfg. It fails when the geometry does not resolve
// or the texture scales are invalid.
func New(cfg Config) (*World, error) {
	topo, err := topology.Build(cfg.Geometry)
	if err != nil {
		return nil, err
	}
	cols, rows := cfg.Geometry.Cols(), cfg.Geometry.Rows()
	engine, err := turing.New(cols, rows, cfg.Scales)
	if err != nil {
		return nil, err
	}
	if cfg.Params.SlowEvery < 1 {
		cfg.Params.SlowEvery = 1
	}
	if cfg.Params.TuringEvery < 1 {
		cfg.Params.TuringEvery = 1
	}
	if cfg.Params.ToneEpochs < 1 {
		cfg.Params.ToneEpochs = 1
	}
	if cfg.Params.WaveCycle < 1 {
		cfg.Params.WaveCycle = 1
	}
	if cfg.Params.PressureRadius < 1 {
		cfg.Params.PressureRadius = 1
	}

	rng := core.NewRNG(cfg.Seed)
	total := topo.Len()
	w := &World{
		cfg:          cfg,
		geom:         cfg.Geometry,
		topo:         topo,
		rng:          rng,
		cells:        total,
		control:      core.NewLayer[decay.Cell](total),
		waves:        core.NewLayer[decay.Cell](total),
		pressure:     core.NewLayer[decay.Cell](total),
		auto:         cyclic.New(topo, cfg.Cyclic, rng),
		base:         core.NewLayer[int](total),
		spot:         core.NewLayer[int](total),
		baseImpat:    make([]int, total),
		spotImpat:    make([]int, total),
		sparks:       core.NewLayer[hanabi.Cell](total),
		engine:       engine,
		u:            engine.NewField(),
		v:            engine.NewField(),
		tone:         make([]int, total),
		seedColor:    make([]int, total),
		pressureSelf: make([]int, total),
		waveRow:      min(cfg.Geometry.PetalRows+2, rows-1),
		display:      make([]uint8, total),
	}
	w.spectrum = render.Spectrum{Colors: w.auto.Params().Colors}
	w.palette = w.spectrum.Palette()
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "installation" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.geom.Cols(), H: w.geom.Rows()} }

// Cells exposes the display buffer as palette indices.
func (w *World) Cells() []uint8 { return w.display }

// Palette returns the spectrum used by the display buffer.
func (w *World) Palette() []color.RGBA { return w.palette }

// Topology exposes the resolved neighbor tables.
func (w *World) Topology() *topology.Topology { return w.topo }

// Epoch returns the number of epochs run since the last Reset.
func (w *World) Epoch() int { return w.epoch }

// Scene returns the active scene.
func (w *World) Scene() Scene { return w.scene }

// Colors exposes the committed base rainbow layer.
func (w *World) Colors() []int { return w.base.Current() }

// Spotlights exposes the committed spotlight layer; Masked cells are under
// pressure.
func (w *World) Spotlights() []int { return w.spot.Current() }

// Control exposes the committed control field.
func (w *World) Control() []decay.Cell { return w.control.Current() }

// Waves exposes the committed wave field.
func (w *World) Waves() []decay.Cell { return w.waves.Current() }

// Pressure exposes the committed pressure field.
func (w *World) Pressure() []decay.Cell { return w.pressure.Current() }

// Hanabi exposes the committed spark layer.
func (w *World) Hanabi() []hanabi.Cell { return w.sparks.Current() }

// TuringPhase returns the texture phase of xy in [0, 1).
func (w *World) TuringPhase(xy int) float64 { return turing.Phase(w.u, w.v, xy) }

// Reset reseeds every layer and runs the warmup epochs. A zero seed reuses
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	w.control.Fill(decay.Cell{})
	w.waves.Fill(decay.Cell{})
	w.pressure.Fill(decay.Cell{})
	w.sparks.Fill(hanabi.Cell{})
	w.auto.Randomize(w.base.Current(), w.baseImpat)
	w.auto.Randomize(w.spot.Current(), w.spotImpat)
	copy(w.base.Next(), w.base.Current())
	copy(w.spot.Next(), w.spot.Current())
	colors := w.auto.Params().Colors
	for xy := range w.seedColor {
		w.seedColor[xy] = w.rng.IntN(colors)
		w.tone[xy] = 0
		w.pressureSelf[xy] = 0
	}
	w.pending = w.pending[:0]
	w.ignitions = w.ignitions[:0]
	turing.Seed(w.u, w.v, w.geom.Cols(), w.geom.Rows(), effective)
	w.turingEpoch = 0
	w.scene = SceneBase
	w.epoch = 0

	for i := 0; i < w.cfg.Params.WarmupEpochs; i++ {
		w.Step()
	}
	w.redraw()
}

func init() {
	core.Register("installation", func(cfg map[string]string) core.Sim {
		w, err := New(FromMap(cfg))
		if err != nil {
			w, _ = New(DefaultConfig())
		}
		return w
	})
}
