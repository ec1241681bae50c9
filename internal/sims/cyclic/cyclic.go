// Package cyclic implements the rainbow cyclic automaton: every cell holds one
// of a fixed number of colors and advances toward the next color when its
// neighbors lead it, with conformity and reshuffle rules that keep spirals
// rounded and unstuck.
package cyclic

import (
	"luminary/internal/core"
	"luminary/internal/topology"
)

// Masked marks a cell whose color is suppressed by another layer. It counts
// as a sampled neighbor but contributes to no color.
const Masked = -1

// Params holds the empirically tuned thresholds of the automaton.
type Params struct {
	Colors int

	// DiagonalChance is the probability each diagonal neighbor is sampled.
	DiagonalChance float64
	// SkipChance is the probability a neighbor two colors ahead pulls the
	// cell forward by two.
	SkipChance float64

	ConformStrict      float64
	ConformStrictAfter int
	ConformLoose       float64
	ConformLooseAfter  int

	ReshuffleAfterIncrement int
	ReshuffleAfter          int
}

// DefaultParams returns the tuning used on the installation.
func DefaultParams() Params {
	return Params{
		Colors:                  12,
		DiagonalChance:          0.6,
		SkipChance:              0.22,
		ConformStrict:           0.79,
		ConformStrictAfter:      5,
		ConformLoose:            0.62,
		ConformLooseAfter:       30,
		ReshuffleAfterIncrement: 50,
		ReshuffleAfter:          200,
	}
}

// Automaton evaluates the cyclic rule over a topology.
type Automaton struct {
	topo   *topology.Topology
	params Params
	rng    core.Source
	hist   []int
}

// New returns an Automaton. Colors below 2 are raised to 2.
func New(topo *topology.Topology, params Params, rng core.Source) *Automaton {
	if params.Colors < 2 {
		params.Colors = 2
	}
	return &Automaton{topo: topo, params: params, rng: rng, hist: make([]int, params.Colors)}
}

// Params returns the automaton's tuning.
func (a *Automaton) Params() Params { return a.params }

// SetDiagonalChance retunes diagonal sampling; p is clamped to [0, 1].
func (a *Automaton) SetDiagonalChance(p float64) {
	a.params.DiagonalChance = min(1, max(0, p))
}

// Step computes the next color of xy from the current colors. It increments
// impatience[xy] in place, halving it when the cell is pulled forward.
func (a *Automaton) Step(color, impatience []int, xy int) int {
	p := a.params
	impatience[xy]++

	own := color[xy]
	if own < 0 {
		return a.rng.IntN(p.Colors)
	}

	for i := range a.hist {
		a.hist[i] = 0
	}
	ahead1 := (own + 1) % p.Colors
	ahead2 := (own + 2) % p.Colors

	n := a.topo.Neighborhood(xy)
	sampled, inc := 0, 0
	for slot := n.Start; slot < n.End; slot++ {
		off := n.Offsets[slot]
		if off == 0 {
			continue
		}
		if !topology.Orthogonal(slot) && !core.Chance(a.rng, p.DiagonalChance) {
			continue
		}
		sampled++
		c := color[xy+off]
		if c < 0 || c >= p.Colors {
			continue
		}
		a.hist[c]++
		if inc == 2 {
			continue
		}
		if c == ahead2 && core.Chance(a.rng, p.SkipChance) {
			inc = 2
		} else if c == ahead1 {
			inc = 1
		}
	}

	// Outliers conform to a dominant neighborhood color.
	strict := p.ConformStrict * float64(sampled)
	loose := p.ConformLoose * float64(sampled)
	for ii, count := range a.hist {
		if ii == own {
			continue
		}
		c := float64(count)
		if (c > strict && impatience[xy] > p.ConformStrictAfter) || (c > loose && impatience[xy] > p.ConformLooseAfter) {
			return ii
		}
	}

	if inc != 0 {
		impatience[xy] /= 2
		if impatience[xy] > p.ReshuffleAfterIncrement {
			return a.rng.IntN(p.Colors)
		}
	}
	if impatience[xy] > p.ReshuffleAfter {
		return a.rng.IntN(p.Colors)
	}
	return (own + inc) % p.Colors
}

// StepAll evaluates every active cell from cur into next.
func (a *Automaton) StepAll(cur, impatience, next []int) {
	for _, xy := range a.topo.Cells() {
		next[xy] = a.Step(cur, impatience, xy)
	}
}

// Randomize assigns every active cell a uniformly random color and clears
// impatience.
func (a *Automaton) Randomize(color, impatience []int) {
	for _, xy := range a.topo.Cells() {
		color[xy] = a.rng.IntN(a.params.Colors)
		impatience[xy] = 0
	}
}
