//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"luminary/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pressureProvider interface {
	PressureMask() []float32
}

type sparkProvider interface {
	SparkMask() []float32
}

// Overlay tints the view with the installation's hidden fields.
type Overlay struct {
	sim          core.Sim
	scale        int
	showPressure bool
	showSparks   bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(1, scale)}
}

// Update toggles layers: P for pressure, H for sparks.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPressure = !o.showPressure
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showSparks = !o.showSparks
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.Cells()
	if total <= 0 {
		return
	}
	if o.maskImg == nil || len(o.maskBuf) != 4*total {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	if p, ok := o.sim.(pressureProvider); ok && o.showPressure {
		o.drawMask(screen, p.PressureMask(), color.RGBA{R: 64, G: 164, B: 223})
	}
	if p, ok := o.sim.(sparkProvider); ok && o.showSparks {
		o.drawMask(screen, p.SparkMask(), color.RGBA{R: 255, G: 120, B: 40})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, m := range mask {
		px := o.maskBuf[i*4 : i*4+4]
		intensity := clamp01(float64(m))
		if intensity == 0 {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		px[0] = scaleComponent(tint.R, glow)
		px[1] = scaleComponent(tint.G, glow)
		px[2] = scaleComponent(tint.B, glow)
		px[3] = uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func scaleComponent(value uint8, factor float64) uint8 {
	return uint8(math.Round(math.Min(255, math.Max(0, float64(value)*factor))))
}
