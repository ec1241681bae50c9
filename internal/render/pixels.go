package render

import "image/color"

// FillRGBA writes one RGBA pixel per cell into buf, which must hold
// 4*len(cells) bytes. Indices past the end of the palette use its last
// entry. A nil palette draws nonzero cells white on black; an empty
// non-nil palette clears the buffer to transparent.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if palette == nil {
		palette = onOff
	}
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

var onOff = func() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		p[i] = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	p[0] = color.RGBA{A: 0xff}
	return p
}()
