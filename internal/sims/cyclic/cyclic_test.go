package cyclic

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminary/internal/core"
	"luminary/internal/topology"
)

// fixedSource answers every coin with f and every IntN with n mod the bound.
type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }

func (s fixedSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.n % n
}

var (
	never  = fixedSource{f: 0.999999, n: 7}
	always = fixedSource{f: 0, n: 7}
)

func torus(t *testing.T) *topology.Topology {
	t.Helper()
	topo, err := topology.Torus(8, 8)
	require.NoError(t, err)
	return topo
}

func filled(n, c int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func setOrthogonal(topo *topology.Topology, color []int, xy int, values ...int) {
	slots := []int{topology.SlotLeft, topology.SlotUp, topology.SlotDown, topology.SlotRight}
	for i, v := range values {
		n, _ := topo.Neighbor(xy, slots[i])
		color[n] = v
	}
}

func TestStepUnchangedWhenSurroundedByOwnColor(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), never)
	color := filled(topo.Len(), 3)
	impatience := make([]int, topo.Len())

	xy := 3*8 + 4
	assert.Equal(t, 3, a.Step(color, impatience, xy))
	assert.Equal(t, 1, impatience[xy])
}

func TestConformityOverridesRegardlessOfSource(t *testing.T) {
	sources := map[string]core.Source{
		"never":  never,
		"always": always,
		"seeded": core.NewRNG(99),
	}
	for name, src := range sources {
		topo := torus(t)
		a := New(topo, DefaultParams(), src)
		color := make([]int, topo.Len())
		impatience := make([]int, topo.Len())

		xy := 3*8 + 3
		n := topo.Neighborhood(xy)
		for slot := n.Start; slot < n.End; slot++ {
			if n.Offsets[slot] != 0 {
				color[xy+n.Offsets[slot]] = 1
			}
		}
		impatience[xy] = 40

		if got := a.Step(color, impatience, xy); got != 1 {
			t.Fatalf("%s: expected conformity to color 1, got %d", name, got)
		}
	}
}

func TestLeadingNeighborAdvancesColor(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), never)
	color := make([]int, topo.Len())
	impatience := make([]int, topo.Len())

	xy := 2*8 + 2
	setOrthogonal(topo, color, xy, 1)
	impatience[xy] = 9

	assert.Equal(t, 1, a.Step(color, impatience, xy))
	assert.Equal(t, 5, impatience[xy], "impatience halves when pulled forward")
}

func TestSkipAheadByTwo(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), always)
	color := make([]int, topo.Len())
	impatience := make([]int, topo.Len())

	xy := 5*8 + 5
	setOrthogonal(topo, color, xy, 2)

	assert.Equal(t, 2, a.Step(color, impatience, xy))
}

func TestColorsWrapAround(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), never)
	color := filled(topo.Len(), 11)
	impatience := make([]int, topo.Len())

	xy := 8 + 1
	setOrthogonal(topo, color, xy, 0)

	assert.Equal(t, 0, a.Step(color, impatience, xy))
}

func TestReshuffle(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), never)
	xy := 4*8 + 4

	color := make([]int, topo.Len())
	impatience := make([]int, topo.Len())
	impatience[xy] = 250
	assert.Equal(t, 7, a.Step(color, impatience, xy), "impatience past 200 reshuffles")

	color = make([]int, topo.Len())
	impatience = make([]int, topo.Len())
	setOrthogonal(topo, color, xy, 1)
	impatience[xy] = 120
	assert.Equal(t, 7, a.Step(color, impatience, xy), "halved impatience past 50 reshuffles")
	assert.Equal(t, 60, impatience[xy])
}

func TestMaskedNeighborsDiluteConformity(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), never)
	color := make([]int, topo.Len())
	impatience := make([]int, topo.Len())

	xy := 4*8 + 4
	setOrthogonal(topo, color, xy, Masked, Masked, 5, 5)
	impatience[xy] = 40
	assert.Equal(t, 0, a.Step(color, impatience, xy))

	setOrthogonal(topo, color, xy, Masked, 5, 5, 5)
	impatience[xy] = 40
	assert.Equal(t, 5, a.Step(color, impatience, xy))
}

func TestMaskedCellWakesWithRandomColor(t *testing.T) {
	topo := torus(t)
	a := New(topo, DefaultParams(), fixedSource{f: 0.5, n: 4})
	color := make([]int, topo.Len())
	impatience := make([]int, topo.Len())
	color[10] = Masked
	assert.Equal(t, 4, a.Step(color, impatience, 10))
}

func TestColorsStayInRangeOnInstallation(t *testing.T) {
	topo, err := topology.Build(topology.DefaultGeometry())
	require.NoError(t, err)

	rng := core.NewRNG(3)
	a := New(topo, DefaultParams(), rng)
	layer := core.NewLayer[int](topo.Len())
	impatience := make([]int, topo.Len())
	a.Randomize(layer.Current(), impatience)

	colors := a.Params().Colors
	for epoch := 0; epoch < 150; epoch++ {
		a.StepAll(layer.Current(), impatience, layer.Next())
		layer.Commit()
		for _, xy := range topo.Cells() {
			c := layer.Current()[xy]
			if c < 0 || c >= colors {
				t.Fatalf("epoch %d cell %d color %d out of range", epoch, xy, c)
			}
			if impatience[xy] < 0 {
				t.Fatalf("epoch %d cell %d negative impatience %d", epoch, xy, impatience[xy])
			}
		}
	}
}

func TestRainbowResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	r, err := NewRainbow(cfg)
	require.NoError(t, err)

	r.Reset(42)
	first := slices.Clone(r.Cells())
	r.Step()
	r.Step()
	r.Reset(42)
	if !slices.Equal(first, r.Cells()) {
		t.Fatal("Reset with the same seed must reproduce the initial colors")
	}

	r.Reset(43)
	if slices.Equal(first, r.Cells()) {
		t.Fatal("different seeds should produce different initial colors")
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{"w": "2", "h": "20", "colors": "x"})
	assert.Equal(t, DefaultConfig().Width, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 12, c.Params.Colors)
}
