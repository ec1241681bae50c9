package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRGBAUsesPaletteAndClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	FillRGBA(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)
}

func TestFillRGBANilPaletteIsOnOff(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint8{0, 3}, nil)
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 255, 255, 255}, buf)
}

func TestSpectrumBands(t *testing.T) {
	s := Spectrum{Colors: 12}
	p := s.Palette()
	require.Len(t, p, 48)

	assert.Equal(t, uint8(3), s.Bright(15))
	assert.Equal(t, uint8(12+11), s.Dark(-1))
	assert.Equal(t, uint8(24), s.Grey(0))
	assert.Equal(t, uint8(36+5), s.DarkGrey(5))

	g := p[s.Grey(4)]
	assert.Equal(t, g.R, g.G)
	assert.Equal(t, g.G, g.B)
	assert.NotEqual(t, p[s.Bright(0)], p[s.Bright(6)])
	for _, c := range p {
		assert.Equal(t, uint8(0xff), c.A)
	}
}

func TestFillRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9, 7}
	FillRGBA(buf, []uint8{1, 2}, []color.RGBA{})
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 7}, buf)
}
