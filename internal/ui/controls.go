package ui

import (
	"strconv"

	"luminary/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// ControlState is one adjustable parameter with its last known value.
type ControlState struct {
	Control core.ParameterControl
	Value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// Controls binds a sim's parameter controls to its setters. Viewers refresh
// it once per frame and call Adjust from their own input handling.
type Controls struct {
	sim         core.Sim
	states      []ControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	snapshot    core.ParameterSnapshot
	selected    int
}

// NewControls inspects sim for the optional parameter interfaces.
func NewControls(sim core.Sim) *Controls {
	c := &Controls{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, ControlState{Control: ctrl, Value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		c.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		c.floatSetter = setter
	}
	return c
}

// States exposes the controls in display order.
func (c *Controls) States() []ControlState { return c.states }

// Snapshot returns the parameters captured by the last Refresh.
func (c *Controls) Snapshot() core.ParameterSnapshot { return c.snapshot }

// Selected is the index of the control keyboard adjustments apply to.
func (c *Controls) Selected() int { return c.selected }

// SelectNext cycles the keyboard selection.
func (c *Controls) SelectNext() {
	if len(c.states) > 0 {
		c.selected = (c.selected + 1) % len(c.states)
	}
}

// Refresh reloads every control value from the sim's parameter snapshot.
func (c *Controls) Refresh() {
	provider, ok := c.sim.(parameterProvider)
	if !ok {
		c.snapshot = core.ParameterSnapshot{}
		return
	}
	c.snapshot = provider.Parameters()
	for i := range c.states {
		s := &c.states[i]
		s.hasValue = false
		s.Value = "--"
		param, ok := c.snapshot.Lookup(s.Control.Key)
		if !ok {
			continue
		}
		switch s.Control.Type {
		case core.ParamTypeInt:
			if v, err := strconv.Atoi(param.Value); err == nil {
				s.intValue, s.floatValue, s.hasValue = v, float64(v), true
				s.Value = strconv.Itoa(v)
			}
		case core.ParamTypeFloat:
			if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
				s.floatValue, s.hasValue = v, true
				s.Value = formatFloat(s.Control, v)
			}
		}
	}
}

// Adjust moves control i one step in direction and reports whether the sim
// accepted the new value.
func (c *Controls) Adjust(i, direction int) bool {
	if i < 0 || i >= len(c.states) || direction == 0 {
		return false
	}
	s := &c.states[i]
	target, ok := c.target(s, direction)
	if !ok {
		return false
	}
	switch s.Control.Type {
	case core.ParamTypeInt:
		v := int(target)
		if !c.intSetter.SetIntParameter(s.Control.Key, v) {
			return false
		}
		s.intValue, s.floatValue = v, float64(v)
		s.Value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !c.floatSetter.SetFloatParameter(s.Control.Key, target) {
			return false
		}
		s.floatValue = target
		s.Value = formatFloat(s.Control, target)
	}
	return true
}

// CanAdjust reports whether a step in direction stays within bounds.
func (c *Controls) CanAdjust(i, direction int) bool {
	if i < 0 || i >= len(c.states) || direction == 0 {
		return false
	}
	_, ok := c.target(&c.states[i], direction)
	return ok
}

func (c *Controls) target(s *ControlState, direction int) (float64, bool) {
	if !s.hasValue {
		return 0, false
	}
	ctrl := s.Control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return 0, false
		}
		step := max(1, int(ctrl.Step+0.5))
		target := s.intValue + direction*step
		if ctrl.HasMin {
			target = max(target, int(ctrl.Min))
		}
		if ctrl.HasMax {
			target = min(target, int(ctrl.Max))
		}
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return 0, false
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.floatValue + float64(direction)*step
		if ctrl.HasMin {
			target = max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = min(target, ctrl.Max)
		}
		diff := target - s.floatValue
		return target, diff > 1e-9 || diff < -1e-9
	default:
		return 0, false
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
