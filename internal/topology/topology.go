// Package topology resolves the neighbors of every cell of the installation
// grid. Tables are built once, validated exhaustively, and never mutated.
package topology

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry reports a geometry whose neighbor tables would address
// cells outside the grid. It is a fatal configuration error.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Neighbor slots. Odd slots share an edge with the cell, even slots a corner.
const (
	SlotUpLeft = iota
	SlotLeft
	SlotDownLeft
	SlotUp
	SlotSelf
	SlotDown
	SlotUpRight
	SlotRight
	SlotDownRight
	Slots
)

var slotMoves = [Slots][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Orthogonal reports whether slot holds an edge-sharing neighbor.
func Orthogonal(slot int) bool { return slot%2 == 1 }

// Neighborhood is the neighbor table of one cell: relative index deltas per
// slot and the active slot range [Start, End). A zero offset inside the range
// marks an absent neighbor.
type Neighborhood struct {
	Offsets [Slots]int
	Start   int
	End     int
}

// Present reports whether slot resolves to a neighbor.
func (n Neighborhood) Present(slot int) bool {
	return slot >= n.Start && slot < n.End && n.Offsets[slot] != 0
}

// Count returns the number of present neighbors.
func (n Neighborhood) Count() int {
	c := 0
	for i := n.Start; i < n.End; i++ {
		if n.Offsets[i] != 0 {
			c++
		}
	}
	return c
}

// Topology is an immutable lookup of neighbor tables for a Cols x Rows grid.
type Topology struct {
	cols, rows int
	table      []Neighborhood
	active     []bool
	cells      []int
}

// Cols returns the grid width.
func (t *Topology) Cols() int { return t.cols }

// Rows returns the grid height.
func (t *Topology) Rows() int { return t.rows }

// Len returns the number of cells, active or not.
func (t *Topology) Len() int { return t.cols * t.rows }

// Active reports whether xy belongs to the installation surface.
func (t *Topology) Active(xy int) bool { return t.active[xy] }

// Cells lists the active cell indices in ascending order.
func (t *Topology) Cells() []int { return t.cells }

// Neighborhood returns the neighbor table for xy.
func (t *Topology) Neighborhood(xy int) Neighborhood { return t.table[xy] }

// At returns the neighbor table for (x, y).
func (t *Topology) At(x, y int) Neighborhood { return t.table[y*t.cols+x] }

// Neighbor returns the absolute index of the neighbor of xy in slot.
func (t *Topology) Neighbor(xy, slot int) (int, bool) {
	n := t.table[xy]
	if !n.Present(slot) {
		return 0, false
	}
	return xy + n.Offsets[slot], true
}

// Validate checks every active offset of every cell: it must stay inside the
// grid, must not address the cell itself and must land on an active cell.
func (t *Topology) Validate() error {
	total := t.Len()
	if len(t.table) != total || len(t.active) != total {
		return fmt.Errorf("topology: table size %d for %dx%d grid: %w", len(t.table), t.cols, t.rows, ErrInvalidGeometry)
	}
	for xy, n := range t.table {
		if n.Start < 0 || n.End > Slots || n.Start > n.End {
			return fmt.Errorf("topology: cell %d has range [%d,%d): %w", xy, n.Start, n.End, ErrInvalidGeometry)
		}
		if n.Offsets[SlotSelf] != 0 {
			return fmt.Errorf("topology: cell %d addresses itself: %w", xy, ErrInvalidGeometry)
		}
		for slot := n.Start; slot < n.End; slot++ {
			off := n.Offsets[slot]
			if off == 0 {
				continue
			}
			target := xy + off
			if target < 0 || target >= total {
				return fmt.Errorf("topology: cell (%d,%d) slot %d offset %d escapes grid: %w",
					xy%t.cols, xy/t.cols, slot, off, ErrInvalidGeometry)
			}
			if !t.active[target] {
				return fmt.Errorf("topology: cell (%d,%d) slot %d lands on inactive cell (%d,%d): %w",
					xy%t.cols, xy/t.cols, slot, target%t.cols, target/t.cols, ErrInvalidGeometry)
			}
		}
	}
	return nil
}

type moveFunc func(x, y, dx, dy int) (nx, ny int, ok bool)

func build(cols, rows int, active func(x, y int) bool, move moveFunc) (*Topology, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("topology: %dx%d grid: %w", cols, rows, ErrInvalidGeometry)
	}
	t := &Topology{
		cols:   cols,
		rows:   rows,
		table:  make([]Neighborhood, cols*rows),
		active: make([]bool, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			t.active[y*cols+x] = active(x, y)
		}
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			xy := y*cols + x
			if !t.active[xy] {
				continue
			}
			t.cells = append(t.cells, xy)
			var n Neighborhood
			left, right := false, false
			for slot, m := range slotMoves {
				if slot == SlotSelf {
					continue
				}
				nx, ny, ok := move(x, y, m[0], m[1])
				if !ok || nx < 0 || nx >= cols || ny < 0 || ny >= rows || !t.active[ny*cols+nx] {
					continue
				}
				off := ny*cols + nx - xy
				if off == 0 {
					return nil, fmt.Errorf("topology: cell (%d,%d) slot %d wraps onto itself: %w", x, y, slot, ErrInvalidGeometry)
				}
				n.Offsets[slot] = off
				switch slot {
				case SlotUpLeft, SlotLeft, SlotDownLeft:
					left = true
				case SlotUpRight, SlotRight, SlotDownRight:
					right = true
				}
			}
			n.Start, n.End = SlotUp, SlotUpRight
			if left {
				n.Start = SlotUpLeft
			}
			if right {
				n.End = Slots
			}
			t.table[xy] = n
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func wrap(v, n int) int { return (v%n + n) % n }

func allActive(int, int) bool { return true }

// Torus builds a w x h grid whose edges wrap in both directions.
func Torus(w, h int) (*Topology, error) {
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("topology: torus %dx%d needs at least 3x3: %w", w, h, ErrInvalidGeometry)
	}
	return build(w, h, allActive, func(x, y, dx, dy int) (int, int, bool) {
		return wrap(x+dx, w), wrap(y+dy, h), true
	})
}

// Rect builds a w x h grid with open edges.
func Rect(w, h int) (*Topology, error) {
	return build(w, h, allActive, func(x, y, dx, dy int) (int, int, bool) {
		return x + dx, y + dy, true
	})
}

// Chain builds an open 1 x n strip where every cell has at most a left and a
// right neighbor.
func Chain(n int) (*Topology, error) {
	return Rect(n, 1)
}
