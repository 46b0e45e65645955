// Package actions implements the leaf transforms a loaded profile binds
// to physical controls. Each action is constructed once from a keyword
// and parameter list, then invoked synchronously by the mapper on every
// relevant input sample.
package actions

import (
	"github.com/psstoyanov/sc-controller/internal/evdev"
)

// Mapper is the surface actions write their output through. The mapper
// serializes calls into a given action, so implementations do not need
// their own locking for the per-event path.
type Mapper interface {
	SetAxis(axis evdev.AxisCode, value int32)
}

// Action is the base every transform implements. Everything else an
// action can do is an optional capability: callers type-assert for the
// slots below and skip the ones an action does not populate.
type Action interface {
	Keyword() string
	String() string
}

// ButtonListener handles a button-like input edge.
type ButtonListener interface {
	ButtonPress(m Mapper)
	ButtonRelease(m Mapper)
}

// StickListener handles samples from sticks and pads, reported in the
// stick/pad domain.
type StickListener interface {
	Stick(m Mapper, value int32)
}

// TriggerListener handles samples from analog triggers, reported in the
// trigger domain.
type TriggerListener interface {
	Trigger(m Mapper, oldPos, pos int32)
}

// SensitivitySetter receives per-axis scale factors. Actions with a
// single scalable dimension keep only x.
type SensitivitySetter interface {
	SetSensitivity(x, y, z float64)
}

// PropertyGetter exposes named introspection values. A miss is
// non-fatal: implementations log it and report absence.
type PropertyGetter interface {
	Property(name string) (Parameter, bool)
}

// Constructor builds an action from one registered keyword and its
// already-parsed parameter list.
type Constructor func(keyword string, params []Parameter) (Action, error)

var registry = map[string]Constructor{}

// Register binds a keyword to a constructor. Called from init() of each
// action family.
func Register(keyword string, c Constructor) {
	registry[keyword] = c
}

// New dispatches a keyword to its registered constructor.
func New(keyword string, params []Parameter) (Action, error) {
	if c, ok := registry[keyword]; ok {
		return c(keyword, params)
	}
	return nil, unknownKeyword(keyword)
}

// Keywords lists every registered action keyword.
func Keywords() []string {
	kws := make([]string, 0, len(registry))
	for kw := range registry {
		kws = append(kws, kw)
	}
	return kws
}
