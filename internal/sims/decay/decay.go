// Package decay implements the decaying intensity field that carries an
// opaque two-integer directive outward from its sources. The same rule backs
// the control, wave and pressure layers of the installation.
package decay

import (
	"luminary/internal/topology"
)

// Attenuation per hop, tuned so the field falls off roughly like Euclidean
// distance.
const (
	OrthLoss     = 17
	DiagOrthLoss = 21
	DiagDiagLoss = 24
	OrthCap      = 150
	DiagCap      = 55

	// Threshold is the intensity at or below which a cell has no signal.
	Threshold = 17
)

// Cell is the per-cell state of one field instance.
type Cell struct {
	Orth       int
	Diag       int
	Directive0 int
	Directive1 int
}

// Lit reports whether the cell carries signal.
func (c Cell) Lit() bool { return c.Orth > Threshold }

// Step computes the next state of xy from the current generation.
func Step(topo *topology.Topology, cur []Cell, xy int) Cell {
	self := cur[xy]
	var next Cell

	n := topo.Neighborhood(xy)
	for slot := n.Start; slot < n.End; slot++ {
		off := n.Offsets[slot]
		if off == 0 {
			continue
		}
		nb := cur[xy+off]
		var zOrth, zDiag int
		if topology.Orthogonal(slot) {
			zOrth = nb.Orth - OrthLoss
			zDiag = zOrth
		} else {
			zOrth = min(self.Orth+OrthCap, nb.Diag-DiagOrthLoss)
			zDiag = min(self.Orth+DiagCap, nb.Diag-DiagDiagLoss)
		}
		if zOrth > next.Orth {
			next.Orth = zOrth
			next.Directive0, next.Directive1 = nb.Directive0, nb.Directive1
		}
		if zDiag > next.Diag {
			next.Diag = zDiag
			next.Directive0, next.Directive1 = nb.Directive0, nb.Directive1
		}
	}

	if next.Orth <= Threshold {
		next.Directive0, next.Directive1 = self.Directive0, self.Directive1
	}
	return next
}

// Field is one instance of the decay rule over a topology.
type Field struct {
	topo *topology.Topology
}

// NewField binds the rule to topo.
func NewField(topo *topology.Topology) *Field {
	return &Field{topo: topo}
}

// StepAll evaluates every active cell from cur into next.
func (f *Field) StepAll(cur, next []Cell) {
	for _, xy := range f.topo.Cells() {
		next[xy] = Step(f.topo, cur, xy)
	}
}

// Step evaluates a single cell.
func (f *Field) Step(cur []Cell, xy int) Cell {
	return Step(f.topo, cur, xy)
}

// Source pins xy to intensity z on both channels, the way a driver holds a
// source row or a pressure trigger.
func Source(cells []Cell, xy, z int) {
	cells[xy].Orth = z
	cells[xy].Diag = z
}
