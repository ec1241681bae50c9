//go:build ebiten

package app

import (
	"image/color"
	"time"

	"luminary/internal/core"
	"luminary/internal/menu"
	"luminary/internal/render"
	"luminary/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD
	menu    *menu.Menu

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	chars    []rune
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	if t, ok := sim.(menu.Target); ok {
		g.menu = menu.New(t)
		g.hud.SetStatus(g.menu.Status())
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.Reset(time.Now().UnixNano())
		} else {
			g.Reset(g.seed)
		}
	}
	if g.menu != nil {
		g.chars = ebiten.AppendInputChars(g.chars[:0])
		for _, r := range g.chars {
			if menu.Accepts(r) {
				g.menu.Press(r)
				g.hud.SetStatus(g.menu.Status())
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hudWidth, g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
