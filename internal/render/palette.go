package render

import (
	"image/color"

	"github.com/hsluv/hsluv-go"
)

// Spectrum lays out a palette of Colors hues in four bands: bright, dark,
// grey and dark grey. Its methods return palette indices for display buffers.
type Spectrum struct {
	Colors int
}

// Bright is the full-lightness hue c.
func (s Spectrum) Bright(c int) uint8 { return uint8(s.wrap(c)) }

// Dark is a dimmed copy of hue c.
func (s Spectrum) Dark(c int) uint8 { return uint8(s.Colors + s.wrap(c)) }

// Grey is a neutral tone; level runs over [0, Colors).
func (s Spectrum) Grey(level int) uint8 { return uint8(2*s.Colors + s.wrap(level)) }

// DarkGrey is a dimmed neutral tone.
func (s Spectrum) DarkGrey(level int) uint8 { return uint8(3*s.Colors + s.wrap(level)) }

func (s Spectrum) wrap(c int) int {
	if s.Colors <= 0 {
		return 0
	}
	return (c%s.Colors + s.Colors) % s.Colors
}

// Palette builds the RGBA table indexed by the Spectrum methods.
func (s Spectrum) Palette() []color.RGBA {
	n := s.Colors
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, 4*n)
	for i := 0; i < n; i++ {
		hue := 360 * float64(i) / float64(n)
		out[i] = hsluvRGBA(hue, 100, 62)
		out[n+i] = hsluvRGBA(hue, 90, 28)
		level := 20 + 50*float64(i)/float64(n)
		out[2*n+i] = greyRGBA(level / 100)
		out[3*n+i] = greyRGBA(level / 300)
	}
	return out
}

// Rainbow returns n evenly spaced hues at the given HSLuv lightness.
func Rainbow(n int, lightness float64) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = hsluvRGBA(360*float64(i)/float64(n), 100, lightness)
	}
	return out
}

func hsluvRGBA(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

func greyRGBA(v float64) color.RGBA {
	c := channel(v)
	return color.RGBA{R: c, G: c, B: c, A: 0xff}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}
