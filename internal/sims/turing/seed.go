package turing

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// noiseScale sets the feature size of the seed texture in cells.
const noiseScale = 1.0 / 12

// Seed fills u and v with unit vectors whose angles follow simplex noise
// that tiles across the w x h torus.
func Seed(u, v *Field, w, h int, seed int64) {
	n := opensimplex.New(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			angle := math.Pi * 2 * tileable(n, float64(x), float64(y), float64(w), float64(h))
			xy := y*w + x
			u.State[xy] = math.Cos(angle)
			v.State[xy] = math.Sin(angle)
		}
	}
}

// tileable blends the four periodic copies of the noise so opposite edges
// meet seamlessly.
func tileable(n opensimplex.Noise, x, y, w, h float64) float64 {
	eval := func(x, y float64) float64 { return n.Eval2(x*noiseScale, y*noiseScale) }
	a := eval(x, y)
	b := eval(x-w, y)
	ab := a*(1-x/w) + b*(x/w)
	c := eval(x, y-h)
	d := eval(x-w, y-h)
	cd := c*(1-x/w) + d*(x/w)
	return ab*(1-y/h) + cd*(y/h)
}
