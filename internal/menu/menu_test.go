package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luminary/internal/sims/installation"
)

type recorder struct {
	calls []string
	scene installation.Scene
	petal int
}

func (r *recorder) ChangeColor() { r.calls = append(r.calls, "color") }

func (r *recorder) CenteredRainbow(extended bool) {
	if extended {
		r.calls = append(r.calls, "centered+")
		return
	}
	r.calls = append(r.calls, "centered")
}

func (r *recorder) PetalRainbow(p int) {
	r.petal = p
	r.calls = append(r.calls, "petal")
}

func (r *recorder) SetScene(s installation.Scene) {
	r.scene = s
	r.calls = append(r.calls, "scene")
}

func TestActions(t *testing.T) {
	rec := &recorder{}
	m := New(rec)

	assert.True(t, m.Press('c'))
	assert.True(t, m.Press('f'))
	assert.True(t, m.Press('F'))
	assert.True(t, m.Press('3'))
	assert.Equal(t, 2, rec.petal)
	assert.Equal(t, "Action: rainbow on petal 3", m.Status())
	assert.False(t, m.Press('z'))
	assert.Equal(t, "(nothing)", m.Status())
	assert.Equal(t, []string{"color", "centered", "centered+", "petal"}, rec.calls)
}

func TestScenesContext(t *testing.T) {
	rec := &recorder{}
	m := New(rec)

	assert.True(t, m.Press('S'))
	assert.Equal(t, Scenes, m.Context())
	assert.True(t, m.Press('2'))
	assert.Equal(t, installation.SceneCirclingRainbows, rec.scene)
	assert.Equal(t, "Scene: Circling rainbows", m.Status())

	assert.False(t, m.Press('9'))
	assert.False(t, m.Press('c'), "actions are not reachable from the scene menu")

	assert.True(t, m.Press('a'))
	assert.Equal(t, Actions, m.Context())
	assert.True(t, m.Press('c'))
	assert.Equal(t, []string{"scene", "color"}, rec.calls)
}

func TestAccepts(t *testing.T) {
	for _, r := range "asSAcCfF05" {
		assert.True(t, Accepts(r), string(r))
	}
	for _, r := range "qnrph +-" {
		assert.False(t, Accepts(r), string(r))
	}
}
