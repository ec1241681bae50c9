//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"luminary/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	controls *Controls
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	status   string

	panelOffsetX int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, controls: NewControls(sim), width: max(0, width)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = "Controls"
	if name := sim.Name(); name != "" {
		h.title = name + " controls"
	}
	return h
}

// SetStatus sets the line shown under the title.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes parameter values and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.controls.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls.States() {
		minus, plus := h.buttons(i)
		switch {
		case pt.In(minus):
			h.controls.Adjust(i, -1)
			return
		case pt.In(plus):
			h.controls.Adjust(i, 1)
			return
		}
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(1, scale)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, labelColor)
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, dimColor)
	}
	states := h.controls.States()
	if len(states) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, dimColor)
	}
	for i, s := range states {
		top := controlsTop + i*lineHeight
		text.Draw(h.panel, s.Control.Label, face, panelPadding, top+labelBaseline, labelColor)

		minus, plus := h.buttons(i)
		width := text.BoundString(face, s.Value).Dx()
		text.Draw(h.panel, s.Value, face, minus.Min.X-buttonGap-width, top+labelBaseline, labelColor)
		h.drawButton(minus, "-", h.controls.CanAdjust(i, -1))
		h.drawButton(plus, "+", h.controls.CanAdjust(i, 1))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) buttons(i int) (minus, plus image.Rectangle) {
	top := controlsTop + i*lineHeight
	y := top + (lineHeight-buttonSize)/2
	plus = image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
	minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return minus, plus
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := labelColor
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

var (
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
