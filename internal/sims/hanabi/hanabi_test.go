package hanabi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminary/internal/core"
	"luminary/internal/topology"
)

type intSource int

func (s intSource) Float64() float64 { return 0 }
func (s intSource) IntN(n int) int   { return int(s) % n }

func TestTwoLiveNeighborsKeepSparkAlive(t *testing.T) {
	topo, err := topology.Chain(5)
	require.NoError(t, err)
	cur := make([]Cell, topo.Len())
	cur[1] = Cell{Color: 4, Orth: SparkIntensity, Diag: SparkIntensity}
	cur[3] = Cell{Color: 9, Orth: SparkIntensity, Diag: SparkIntensity}

	mid := Step(topo, cur, 2)
	assert.True(t, mid.Lit())
	assert.Equal(t, SparkIntensity-17, mid.Orth)
	assert.Equal(t, 4, mid.Color, "first strongest neighbor donates its color")

	edge := Step(topo, cur, 0)
	assert.Equal(t, 0, edge.Orth, "one live neighbor is not enough")
	assert.Equal(t, 0, edge.Diag)

	burnt := Step(topo, cur, 1)
	assert.False(t, burnt.Lit(), "lit sparks die after one epoch")
	assert.Equal(t, 0, burnt.Diag)
}

func TestThreeLiveNeighborsClearSpark(t *testing.T) {
	topo, err := topology.Rect(3, 3)
	require.NoError(t, err)
	cur := make([]Cell, topo.Len())
	for _, slot := range []int{topology.SlotLeft, topology.SlotUp, topology.SlotRight} {
		xy, ok := topo.Neighbor(4, slot)
		require.True(t, ok)
		cur[xy] = Cell{Color: 1, Orth: 200, Diag: 200}
	}
	next := Step(topo, cur, 4)
	assert.Equal(t, 0, next.Orth)
	assert.Equal(t, 0, next.Diag)
}

func TestDimNeighborsAreNotLive(t *testing.T) {
	topo, err := topology.Chain(3)
	require.NoError(t, err)
	cur := []Cell{{Orth: 17, Diag: 17}, {}, {Orth: 200, Diag: 200}}
	next := Step(topo, cur, 1)
	assert.Equal(t, 0, next.Orth)
}

func TestDiagonalFeedsUseDiagonalLosses(t *testing.T) {
	topo, err := topology.Rect(3, 3)
	require.NoError(t, err)
	cur := make([]Cell, topo.Len())
	cur[0] = Cell{Color: 2, Orth: 100, Diag: 300}
	cur[8] = Cell{Color: 3, Orth: 100, Diag: 100}

	next := Step(topo, cur, 4)
	assert.Equal(t, 300-21, next.Orth)
	assert.Equal(t, 300-24, next.Diag)
	assert.Equal(t, 2, next.Color)
}

func TestIgnite(t *testing.T) {
	topo, err := topology.Rect(3, 3)
	require.NoError(t, err)

	cells := make([]Cell, topo.Len())
	Ignite(topo, cells, 4, 6, intSource(1))
	for xy, c := range cells {
		if xy == 4 {
			assert.False(t, c.Lit())
			continue
		}
		assert.Equal(t, Cell{Color: 6, Orth: SparkIntensity, Diag: SparkIntensity}, c)
	}

	cells = make([]Cell, topo.Len())
	cells[0] = Cell{Color: 11, Orth: 5}
	Ignite(topo, cells, 4, 6, intSource(0))
	assert.Equal(t, Cell{Color: 11, Orth: 5}, cells[0], "failed ignition leaves the cell untouched")
}

func TestIgnitionSuccessRate(t *testing.T) {
	topo, err := topology.Torus(64, 64)
	require.NoError(t, err)
	rng := core.NewRNG(11)

	lit, tries := 0, 0
	for i := 0; i < 300; i++ {
		cells := make([]Cell, topo.Len())
		Ignite(topo, cells, 32*64+32, 1, rng)
		for _, c := range cells {
			if c.Lit() {
				lit++
			}
		}
		tries += 8
	}
	rate := float64(lit) / float64(tries)
	assert.InDelta(t, 2.0/3.0, rate, 0.05)
}

func TestFireworksDisplayStaysInPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 24
	cfg.IgniteChance = 0
	f, err := NewFireworks(cfg)
	require.NoError(t, err)
	f.Reset(3)

	for i := 0; i < 200; i++ {
		f.Step()
	}
	for _, v := range f.Cells() {
		require.Less(t, int(v), len(f.Palette()))
	}
}
