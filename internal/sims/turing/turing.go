// Package turing implements a multi-scale activator/inhibitor pattern
// engine. Two fields u and v are driven independently and renormalized
// jointly, so each cell traces a unit vector whose angle is the texture.
package turing

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxScales bounds the number of activator/inhibitor pairs per field.
	MaxScales = 4
	// BlurPasses approximates a Gaussian with repeated box blurs.
	BlurPasses = 3
)

// ErrScales reports an unusable scale configuration.
var ErrScales = errors.New("turing: invalid scales")

// Scale pairs an activator radius with a wider inhibitor radius.
type Scale struct {
	ActivRadius int
	InhibRadius int
	Increment   float64
}

// DefaultScales returns three octaves of activator/inhibitor pairs.
func DefaultScales() []Scale {
	return []Scale{
		{ActivRadius: 2, InhibRadius: 4, Increment: 0.05},
		{ActivRadius: 4, InhibRadius: 8, Increment: 0.04},
		{ActivRadius: 8, InhibRadius: 16, Increment: 0.03},
	}
}

// Kind selects one of the per-scale reagent means.
type Kind int

const (
	Activ Kind = iota
	Inhib
)

// Channel addresses one reagent array of a Field.
type Channel struct {
	Kind  Kind
	Scale int
}

// Field holds one vector component and its per-scale reagent means.
type Field struct {
	State []float64

	activ [MaxScales][]float64
	inhib [MaxScales][]float64
	n     int
}

// NewField allocates a field of size cells with the given number of scales.
func NewField(size, scales int) *Field {
	scales = max(0, min(scales, MaxScales))
	f := &Field{State: make([]float64, size), n: scales}
	for s := 0; s < scales; s++ {
		f.activ[s] = make([]float64, size)
		f.inhib[s] = make([]float64, size)
	}
	return f
}

// Scales returns the number of configured scales.
func (f *Field) Scales() int { return f.n }

// Channel returns the reagent array for ch. It panics on an out-of-range
// scale, like any slice index.
func (f *Field) Channel(ch Channel) []float64 {
	if ch.Scale < 0 || ch.Scale >= f.n {
		panic(fmt.Sprintf("turing: scale %d outside [0,%d)", ch.Scale, f.n))
	}
	if ch.Kind == Inhib {
		return f.inhib[ch.Scale]
	}
	return f.activ[ch.Scale]
}

// Engine runs the reaction-diffusion rule on a w x h torus.
type Engine struct {
	w, h   int
	scales []Scale
	tmp    []float64
}

// New validates the scales and returns an Engine.
func New(w, h int, scales []Scale) (*Engine, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("turing: %dx%d grid: %w", w, h, ErrScales)
	}
	if len(scales) == 0 || len(scales) > MaxScales {
		return nil, fmt.Errorf("turing: %d scales, want 1..%d: %w", len(scales), MaxScales, ErrScales)
	}
	for i, s := range scales {
		if s.ActivRadius < 0 || s.InhibRadius < 0 {
			return nil, fmt.Errorf("turing: scale %d has negative radius: %w", i, ErrScales)
		}
	}
	return &Engine{w: w, h: h, scales: append([]Scale(nil), scales...), tmp: make([]float64, w*h)}, nil
}

// Scales returns the engine's scale configuration.
func (e *Engine) Scales() []Scale { return e.scales }

// NewField allocates a field matching the engine.
func (e *Engine) NewField() *Field { return NewField(e.w*e.h, len(e.scales)) }

// Diffuse recomputes every scale's activator and inhibitor means from the
// field's current state.
func (e *Engine) Diffuse(f *Field) {
	for s, sc := range e.scales {
		e.blur(f.Channel(Channel{Kind: Activ, Scale: s}), f.State, sc.ActivRadius)
		e.blur(f.Channel(Channel{Kind: Inhib, Scale: s}), f.State, sc.InhibRadius)
	}
}

// blur seeds dst from src and applies BlurPasses separable box blurs.
func (e *Engine) blur(dst, src []float64, r int) {
	copy(dst, src)
	if r == 0 {
		return
	}
	for pass := 0; pass < BlurPasses; pass++ {
		e.boxRows(e.tmp, dst, r)
		e.boxCols(dst, e.tmp, r)
	}
}

// boxRows writes the mean over [x-r, x+r] of each row, wrapping at the
// edges, keeping a running window sum.
func (e *Engine) boxRows(dst, src []float64, r int) {
	w := e.w
	norm := 1 / float64(2*r+1)
	for y := 0; y < e.h; y++ {
		row := src[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		sum := 0.0
		for k := -r; k <= r; k++ {
			sum += row[wrap(k, w)]
		}
		for x := 0; x < w; x++ {
			out[x] = sum * norm
			sum += row[wrap(x+r+1, w)] - row[wrap(x-r, w)]
		}
	}
}

// boxCols is boxRows along the columns.
func (e *Engine) boxCols(dst, src []float64, r int) {
	w, h := e.w, e.h
	norm := 1 / float64(2*r+1)
	for x := 0; x < w; x++ {
		sum := 0.0
		for k := -r; k <= r; k++ {
			sum += src[wrap(k, h)*w+x]
		}
		for y := 0; y < h; y++ {
			dst[y*w+x] = sum * norm
			sum += src[wrap(y+r+1, h)*w+x] - src[wrap(y-r, h)*w+x]
		}
	}
}

func wrap(v, n int) int { return (v%n + n) % n }

// Select returns the scale whose activator and inhibitor are closest at xy.
// Scales with no signal are skipped; ties keep the lowest index; scale 0 is
// the fallback.
func (e *Engine) Select(f *Field, xy int) int {
	best, bestVar := -1, 0.0
	for s := range e.scales {
		a, i := f.activ[s][xy], f.inhib[s][xy]
		if a == 0 && i == 0 {
			continue
		}
		d := math.Abs(a - i)
		if best < 0 || d < bestVar {
			best, bestVar = s, d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func (e *Engine) delta(f *Field, xy int) float64 {
	s := e.Select(f, xy)
	if f.activ[s][xy] > f.inhib[s][xy] {
		return e.scales[s].Increment
	}
	return -e.scales[s].Increment
}

// Apply nudges u and v at xy toward their selected scales and renormalizes
// the pair to unit length. anneal scales the nudge.
func (e *Engine) Apply(u, v *Field, xy int, anneal float64) {
	u.State[xy] += e.delta(u, xy) * anneal
	v.State[xy] += e.delta(v, xy) * anneal

	r := math.Hypot(u.State[xy], v.State[xy])
	if r == 0 {
		u.State[xy], v.State[xy] = 1, 0
		return
	}
	u.State[xy] /= r
	v.State[xy] /= r
}

// Step diffuses both fields and applies the rule to every cell.
func (e *Engine) Step(u, v *Field, anneal float64) {
	e.Diffuse(u)
	e.Diffuse(v)
	for xy := range u.State {
		e.Apply(u, v, xy, anneal)
	}
}

// Phase maps the angle of (u, v) at xy onto [0, 1).
func Phase(u, v *Field, xy int) float64 {
	p := math.Atan2(v.State[xy], u.State[xy]) / (2 * math.Pi)
	if p < 0 {
		p++
	}
	if p >= 1 {
		p = 0
	}
	return p
}

// Annealing ramps linearly from near zero at epoch 0 to 1 at rampEpochs.
func Annealing(epoch, rampEpochs int) float64 {
	if rampEpochs <= 0 {
		return 1
	}
	return min(1, float64(epoch+1)/float64(rampEpochs+1))
}
