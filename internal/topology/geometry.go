package topology

import (
	"fmt"
	"strconv"
)

// Geometry describes the installation: Petals sections of PetalCols columns
// laid side by side over the top PetalRows rows, and a floor of FloorCols x
// FloorRows below them. Rows above SeparatedRows keep each petal closed on
// itself; rows below it join neighboring petals into a ring.
type Geometry struct {
	Petals        int
	PetalCols     int
	PetalRows     int
	SeparatedRows int
	FloorCols     int
	FloorRows     int
}

// DefaultGeometry returns the five-petal installation layout.
func DefaultGeometry() Geometry {
	return Geometry{
		Petals:        5,
		PetalCols:     12,
		PetalRows:     32,
		SeparatedRows: 24,
		FloorCols:     36,
		FloorRows:     16,
	}
}

// GeometryFromMap overrides defaults with parseable values from cfg.
func GeometryFromMap(cfg map[string]string) Geometry {
	g := DefaultGeometry()
	if cfg == nil {
		return g
	}
	fields := []struct {
		key string
		dst *int
	}{
		{"petals", &g.Petals},
		{"petal_cols", &g.PetalCols},
		{"petal_rows", &g.PetalRows},
		{"separated_rows", &g.SeparatedRows},
		{"floor_cols", &g.FloorCols},
		{"floor_rows", &g.FloorRows},
	}
	for _, f := range fields {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*f.dst = parsed
			}
		}
	}
	return g
}

// Cols returns the grid width.
func (g Geometry) Cols() int { return g.Petals * g.PetalCols }

// Rows returns the grid height.
func (g Geometry) Rows() int { return g.PetalRows + g.FloorRows }

// IsFloor reports whether row y belongs to the floor.
func (g Geometry) IsFloor(y int) bool { return y >= g.PetalRows }

// Petal returns the petal index holding column x.
func (g Geometry) Petal(x int) int { return x / g.PetalCols }

// Active reports whether (x, y) is part of the installation surface.
func (g Geometry) Active(x, y int) bool {
	if x < 0 || x >= g.Cols() || y < 0 || y >= g.Rows() {
		return false
	}
	return !g.IsFloor(y) || x < g.FloorCols
}

func (g Geometry) check() error {
	switch {
	case g.Petals < 3:
		return fmt.Errorf("topology: %d petals, need at least 3 for the hub: %w", g.Petals, ErrInvalidGeometry)
	case g.PetalCols < 3:
		return fmt.Errorf("topology: petal width %d, need at least 3: %w", g.PetalCols, ErrInvalidGeometry)
	case g.PetalRows < 1:
		return fmt.Errorf("topology: %d petal rows: %w", g.PetalRows, ErrInvalidGeometry)
	case g.SeparatedRows < 0 || g.SeparatedRows > g.PetalRows:
		return fmt.Errorf("topology: separated rows %d outside [0,%d]: %w", g.SeparatedRows, g.PetalRows, ErrInvalidGeometry)
	case g.FloorRows < 0 || g.FloorCols < 0 || g.FloorCols > g.Cols():
		return fmt.Errorf("topology: floor %dx%d does not fit under %d columns: %w", g.FloorCols, g.FloorRows, g.Cols(), ErrInvalidGeometry)
	}
	return nil
}

// move resolves one step from (x, y). The cases are checked in order: hub,
// floor boundary, separated band, connected band.
func (g Geometry) move(x, y, dx, dy int) (int, int, bool) {
	ny := y + dy
	if ny >= g.Rows() {
		return 0, 0, false
	}
	if ny < 0 {
		// The hub joins the top of each petal to the top of the petal two
		// over, mirrored left to right.
		c := wrap(x%g.PetalCols+dx, g.PetalCols)
		q := (g.Petal(x) + 2) % g.Petals
		return q*g.PetalCols + g.PetalCols - 1 - c, 0, true
	}
	if g.IsFloor(y) || g.IsFloor(ny) {
		nx := x + dx
		if nx < 0 || nx >= g.Cols() {
			return 0, 0, false
		}
		if g.IsFloor(ny) && nx >= g.FloorCols {
			return 0, 0, false
		}
		return nx, ny, true
	}
	if y < g.SeparatedRows || ny < g.SeparatedRows {
		p := g.Petal(x)
		return p*g.PetalCols + wrap(x%g.PetalCols+dx, g.PetalCols), ny, true
	}
	return wrap(x+dx, g.Cols()), ny, true
}

// Build constructs and validates the neighbor tables for g.
func Build(g Geometry) (*Topology, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return build(g.Cols(), g.Rows(), g.Active, g.move)
}
