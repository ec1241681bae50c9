package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminary/internal/core"
	"luminary/internal/topology"
)

func chain(t *testing.T, n int) *topology.Topology {
	t.Helper()
	topo, err := topology.Chain(n)
	require.NoError(t, err)
	return topo
}

func TestHeldSourceFallsOffLinearly(t *testing.T) {
	topo := chain(t, 16)
	f := NewField(topo)
	layer := core.NewLayer[Cell](topo.Len())
	Source(layer.Current(), 0, 170)

	for k := 1; k <= 14; k++ {
		f.StepAll(layer.Current(), layer.Next())
		Source(layer.Next(), 0, 170)
		layer.Commit()

		cur := layer.Current()
		for d := 1; d < topo.Len(); d++ {
			want := 0
			if d <= k {
				want = max(0, 170-17*d)
			}
			if cur[d].Orth != want {
				t.Fatalf("step %d distance %d: orth %d, want %d", k, d, cur[d].Orth, want)
			}
			if cur[d].Diag != want {
				t.Fatalf("step %d distance %d: diag %d, want %d", k, d, cur[d].Diag, want)
			}
		}
	}
}

func TestPulseArrivesAttenuated(t *testing.T) {
	topo := chain(t, 12)
	f := NewField(topo)
	layer := core.NewLayer[Cell](topo.Len())
	Source(layer.Current(), 0, 170)

	for d := 1; d <= 10; d++ {
		f.StepAll(layer.Current(), layer.Next())
		layer.Commit()
		assert.Equal(t, 170-17*d, layer.Current()[d].Orth, "wavefront at hop %d", d)
	}
}

func TestDecayedCellKeepsOwnDirective(t *testing.T) {
	topo := chain(t, 8)
	cur := make([]Cell, topo.Len())
	cur[5] = Cell{Directive0: 7, Directive1: 8}
	cur[4] = Cell{Orth: 30, Diag: 30, Directive0: 1, Directive1: 2}

	next := Step(topo, cur, 5)
	assert.Equal(t, 13, next.Orth)
	assert.Equal(t, 7, next.Directive0)
	assert.Equal(t, 8, next.Directive1)

	cur[4].Orth = 100
	next = Step(topo, cur, 5)
	assert.Equal(t, 83, next.Orth)
	assert.Equal(t, 1, next.Directive0)
	assert.Equal(t, 2, next.Directive1)
}

func TestDiagonalIncreaseIsCapped(t *testing.T) {
	topo, err := topology.Rect(3, 3)
	require.NoError(t, err)
	cur := make([]Cell, topo.Len())
	cur[0] = Cell{Orth: 0, Diag: 500, Directive0: 4, Directive1: 9}
	cur[4] = Cell{Orth: 10, Diag: 0}

	next := Step(topo, cur, 4)
	assert.Equal(t, 10+OrthCap, next.Orth)
	assert.Equal(t, 10+DiagCap, next.Diag)
	assert.Equal(t, 4, next.Directive0)
	assert.Equal(t, 9, next.Directive1)

	cur[0].Diag = 100
	cur[4].Orth = 30
	next = Step(topo, cur, 4)
	assert.Equal(t, 100-DiagOrthLoss, next.Orth)
	assert.Equal(t, 100-DiagDiagLoss, next.Diag)
}

func TestTiesKeepFirstNeighbor(t *testing.T) {
	topo := chain(t, 3)
	cur := []Cell{
		{Orth: 100, Diag: 100, Directive0: 1},
		{},
		{Orth: 100, Diag: 100, Directive0: 2},
	}
	next := Step(topo, cur, 1)
	assert.Equal(t, 83, next.Orth)
	assert.Equal(t, 1, next.Directive0)
}

func TestFieldDiesOutWithoutSources(t *testing.T) {
	topo, err := topology.Build(topology.DefaultGeometry())
	require.NoError(t, err)
	f := NewField(topo)
	layer := core.NewLayer[Cell](topo.Len())
	Source(layer.Current(), topo.Cells()[0], 400)
	Source(layer.Current(), topo.Cells()[len(topo.Cells())/2], 300)

	peak := func() int {
		m := 0
		for _, c := range layer.Current() {
			m = max(m, c.Orth, c.Diag)
		}
		return m
	}

	prev := peak()
	for prev > 0 {
		f.StepAll(layer.Current(), layer.Next())
		layer.Commit()
		got := peak()
		if got > 0 && got > prev-OrthLoss {
			t.Fatalf("peak went from %d to %d", prev, got)
		}
		prev = got
	}
}
