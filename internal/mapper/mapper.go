// Package mapper routes decoded input events through the bindings of
// the loaded profile and into the output sink.
package mapper

import (
	"sync"

	"github.com/psstoyanov/sc-controller/internal/actions"
	"github.com/psstoyanov/sc-controller/internal/evdev"
	"github.com/psstoyanov/sc-controller/internal/logging"
	"github.com/psstoyanov/sc-controller/internal/profile"
	"github.com/psstoyanov/sc-controller/internal/telemetry"
	"github.com/psstoyanov/sc-controller/sink"
	source "github.com/psstoyanov/sc-controller/source/evdev"
)

// Mapper owns the sink and the active profile. The event loop is a
// single goroutine; the mutex only serializes it against profile swaps
// and sensitivity updates arriving from the control plane.
type Mapper struct {
	mu      sync.Mutex
	prof    *profile.Profile
	out     sink.Adapter
	lastPos map[evdev.AxisCode]int32 // previous trigger positions
}

func New(p *profile.Profile, out sink.Adapter) *Mapper {
	return &Mapper{
		prof:    p,
		out:     out,
		lastPos: map[evdev.AxisCode]int32{},
	}
}

// SetAxis implements actions.Mapper. Writes are buffered by the sink
// until the end-of-frame Sync.
func (m *Mapper) SetAxis(axis evdev.AxisCode, value int32) {
	telemetry.AxisWrites.WithLabelValues(evdev.AxisName(axis)).Inc()
	if err := m.out.SetAxis(axis, value); err != nil {
		logging.L().Error("sink write failed", "axis", evdev.AxisName(axis), "err", err)
	}
}

// HandleEvent dispatches one decoded input event into its binding and
// flushes the frame. Unbound events are dropped.
func (m *Mapper) HandleEvent(e source.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e.Type {
	case evdev.EV_KEY:
		telemetry.EventsConsumed.WithLabelValues("key").Inc()
		a, ok := m.prof.Buttons[e.Code]
		if !ok {
			return nil
		}
		bl, ok := a.(actions.ButtonListener)
		if !ok {
			return nil
		}
		switch e.Value {
		case 0:
			bl.ButtonRelease(m)
		case 1:
			bl.ButtonPress(m)
		default:
			// autorepeat, nothing to remap
			return nil
		}

	case evdev.EV_ABS:
		telemetry.EventsConsumed.WithLabelValues("abs").Inc()
		code := evdev.AxisCode(e.Code)
		if a, ok := m.prof.Triggers[code]; ok {
			tl, ok := a.(actions.TriggerListener)
			if !ok {
				return nil
			}
			old := m.lastPos[code]
			m.lastPos[code] = e.Value
			tl.Trigger(m, old, e.Value)
			break
		}
		a, ok := m.prof.Sticks[code]
		if !ok {
			return nil
		}
		sl, ok := a.(actions.StickListener)
		if !ok {
			return nil
		}
		sl.Stick(m, e.Value)

	default:
		return nil
	}

	return m.out.Sync()
}

// SwapProfile replaces the active profile between event deliveries.
func (m *Mapper) SwapProfile(p *profile.Profile) {
	m.mu.Lock()
	m.prof = p
	m.lastPos = map[evdev.AxisCode]int32{}
	m.mu.Unlock()
}

// ProfileName reports the name of the active profile.
func (m *Mapper) ProfileName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prof.Name
}

// SetSensitivity applies scale factors to the action bound to a named
// slot. Returns false when the slot is unbound or the action does not
// scale.
func (m *Mapper) SetSensitivity(slot string, x, y, z float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.prof.Slot(slot)
	if !ok {
		return false
	}
	ss, ok := a.(actions.SensitivitySetter)
	if !ok {
		return false
	}
	ss.SetSensitivity(x, y, z)
	return true
}
