// Package term draws a sim on a terminal and drives it from the keyboard.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"luminary/internal/core"
	"luminary/internal/menu"
	"luminary/internal/ui"
)

// Viewer paints one sim cell as two terminal columns and steps the sim on a
// fixed schedule.
type Viewer struct {
	screen   tcell.Screen
	sim      core.Sim
	styles   []tcell.Style
	menu     *menu.Menu
	controls *ui.Controls
	timer    *core.FixedStep
	hz       int
	seed     int64
	paused   bool
}

// New builds a viewer for sim on an initialized screen.
func New(screen tcell.Screen, sim core.Sim, hz int, seed int64) *Viewer {
	v := &Viewer{
		screen:   screen,
		sim:      sim,
		controls: ui.NewControls(sim),
		timer:    core.NewFixedStep(hz),
		hz:       hz,
		seed:     seed,
	}
	var palette []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	v.styles = styles(palette)
	if t, ok := sim.(menu.Target); ok {
		v.menu = menu.New(t)
	}
	return v
}

func styles(palette []color.RGBA) []tcell.Style {
	if palette == nil {
		return []tcell.Style{
			tcell.StyleDefault.Background(tcell.ColorBlack),
			tcell.StyleDefault.Background(tcell.ColorWhite),
		}
	}
	out := make([]tcell.Style, len(palette))
	for i, c := range palette {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		out[i] = tcell.StyleDefault.Background(bg)
	}
	return out
}

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Run steps and draws until ctx is done or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(v.timer.Period() / 4)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
				ticker.Reset(v.timer.Period() / 4)
				v.Draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw()
			}
		case <-ticker.C:
			if v.timer.ShouldStep() && !v.paused {
				v.sim.Step()
				v.Draw()
			}
		}
	}
}

// HandleKey applies one key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		v.controls.SelectNext()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.sim.Step()
	case 'r':
		v.sim.Reset(v.seed)
	case '+', '=':
		v.controls.Refresh()
		v.controls.Adjust(v.controls.Selected(), 1)
	case '-':
		v.controls.Refresh()
		v.controls.Adjust(v.controls.Selected(), -1)
	case ']':
		v.hz = min(240, v.hz*2)
		v.timer.SetHz(v.hz)
	case '[':
		v.hz = max(1, v.hz/2)
		v.timer.SetHz(v.hz)
	default:
		if v.menu != nil && menu.Accepts(r) {
			v.menu.Press(r)
		}
	}
	return false
}

// Draw paints the grid followed by a status line.
func (v *Viewer) Draw() {
	size := v.sim.Size()
	cells := v.sim.Cells()
	last := len(v.styles) - 1
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := v.styles[min(int(cells[y*size.W+x]), last)]
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	v.status(size.H)
	v.screen.Show()
}

func (v *Viewer) status(row int) {
	state := "running"
	if v.paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  %s  %dHz", v.sim.Name(), state, v.hz)
	if v.menu != nil {
		line += "  [" + v.menu.Context().String() + "] " + v.menu.Status()
	}
	v.putLine(row, line)

	line = "tab: next control  +/-: adjust  [/]: speed  space: pause  q: quit"
	v.controls.Refresh()
	if states := v.controls.States(); len(states) > 0 {
		s := states[v.controls.Selected()]
		line = fmt.Sprintf("%s = %s    %s", s.Control.Label, s.Value, line)
	}
	v.putLine(row+1, line)
}

func (v *Viewer) putLine(row int, s string) {
	w, _ := v.screen.Size()
	col := 0
	for _, r := range s {
		if col >= w {
			break
		}
		v.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}
