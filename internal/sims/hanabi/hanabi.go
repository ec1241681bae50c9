// Package hanabi implements transient firework sparks: a Life-like automaton
// layered on the decay field's attenuation, where a dark cell lights only when
// exactly two lit neighbors feed it and a lit cell always burns out after one
// epoch.
package hanabi

import (
	"luminary/internal/core"
	"luminary/internal/sims/decay"
	"luminary/internal/topology"
)

const (
	// SparkIntensity is the value ignition writes into both channels.
	SparkIntensity = 340
	// Survivors is the exact number of live neighbors a dark cell needs.
	Survivors = 2
)

// Cell is one spark cell. Color is carried from whichever neighbor fed the
// strongest candidate.
type Cell struct {
	Color int
	Orth  int
	Diag  int
}

// Lit reports whether the cell is currently burning.
func (c Cell) Lit() bool { return c.Orth > 0 }

// Ignite lights each neighbor of xy with probability 2/3, in place. Neighbors
// that fail to light are left untouched.
func Ignite(topo *topology.Topology, cells []Cell, xy, color int, rng core.Source) {
	n := topo.Neighborhood(xy)
	for slot := n.Start; slot < n.End; slot++ {
		off := n.Offsets[slot]
		if off == 0 {
			continue
		}
		if rng.IntN(3) == 0 {
			continue
		}
		c := &cells[xy+off]
		c.Orth = SparkIntensity
		c.Diag = SparkIntensity
		c.Color = color
	}
}

// Step computes the next state of xy from the current generation.
func Step(topo *topology.Topology, cur []Cell, xy int) Cell {
	self := cur[xy]
	next := Cell{Color: self.Color}
	if self.Orth > 0 {
		return next
	}

	live := 0
	n := topo.Neighborhood(xy)
	for slot := n.Start; slot < n.End; slot++ {
		off := n.Offsets[slot]
		if off == 0 {
			continue
		}
		nb := cur[xy+off]
		if nb.Orth <= decay.Threshold {
			continue
		}
		var zOrth, zDiag int
		if topology.Orthogonal(slot) {
			zOrth = nb.Orth - decay.OrthLoss
			zDiag = zOrth
		} else {
			zOrth = nb.Diag - decay.DiagOrthLoss
			zDiag = nb.Diag - decay.DiagDiagLoss
		}
		if zOrth > next.Orth {
			next.Orth = zOrth
			next.Color = nb.Color
		}
		if zDiag > next.Diag {
			next.Diag = zDiag
			next.Color = nb.Color
		}
		live++
	}

	if live != Survivors {
		next.Orth = 0
		next.Diag = 0
	}
	return next
}

// StepAll evaluates every active cell from cur into next.
func StepAll(topo *topology.Topology, cur, next []Cell) {
	for _, xy := range topo.Cells() {
		next[xy] = Step(topo, cur, xy)
	}
}

// Extinguish darkens xy without touching its color.
func Extinguish(cells []Cell, xy int) {
	cells[xy].Orth = 0
	cells[xy].Diag = 0
}
