// Package menu implements the installation's two-level keyboard menu. 'a'
// and 's' switch between the action and scene contexts; the remaining keys
// are interpreted in the active context.
package menu

import (
	"fmt"
	"unicode"

	"luminary/internal/sims/installation"
)

// Target is the scene logic the menu drives.
type Target interface {
	ChangeColor()
	CenteredRainbow(extended bool)
	PetalRainbow(p int)
	SetScene(s installation.Scene)
}

// Context selects how keys are interpreted.
type Context int

const (
	Actions Context = iota
	Scenes
)

func (c Context) String() string {
	if c == Scenes {
		return "Scenes"
	}
	return "Actions"
}

// Menu tracks the active context and the last status message.
type Menu struct {
	target  Target
	context Context
	status  string
}

// New returns a menu in the action context.
func New(target Target) *Menu {
	return &Menu{target: target, status: "Menu: Actions"}
}

// Context returns the active context.
func (m *Menu) Context() Context { return m.context }

// Status describes the last key handled.
func (m *Menu) Status() string { return m.status }

// Accepts reports whether r is a menu key in some context. Viewers use it to
// keep their own bindings apart from the menu's.
func Accepts(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 's', 'c', 'f':
		return true
	}
	return r >= '0' && r <= '9'
}

// Press handles one typed key and reports whether it did anything.
func (m *Menu) Press(r rune) bool {
	switch lower := unicode.ToLower(r); {
	case lower == 'a':
		m.context = Actions
		m.status = "Menu: Actions"
		return true
	case lower == 's':
		m.context = Scenes
		m.status = "Menu: Scenes"
		return true
	case m.context == Actions:
		return m.action(r)
	default:
		return m.scene(r)
	}
}

func (m *Menu) action(r rune) bool {
	switch {
	case r == 'c' || r == 'C':
		m.target.ChangeColor()
		m.status = "Action: change color"
	case r == 'f':
		m.target.CenteredRainbow(false)
		m.status = "Action: centered rainbow"
	case r == 'F':
		m.target.CenteredRainbow(true)
		m.status = "Action: centered rainbow + duration"
	case r >= '1' && r <= '9':
		p := int(r - '1')
		m.target.PetalRainbow(p)
		m.status = fmt.Sprintf("Action: rainbow on petal %d", p+1)
	default:
		m.status = "(nothing)"
		return false
	}
	return true
}

func (m *Menu) scene(r rune) bool {
	i := int(r - '0')
	if r < '0' || i >= len(installation.Scenes) {
		m.status = "(nothing)"
		return false
	}
	s := installation.Scenes[i]
	m.target.SetScene(s)
	m.status = "Scene: " + s.String()
	return true
}
