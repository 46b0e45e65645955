// Package sink abstracts the virtual output device the mapper writes
// remapped events to.
package sink

import (
	"fmt"

	"github.com/psstoyanov/sc-controller/internal/evdev"
)

// Adapter is the common behaviour every output driver exposes. SetAxis
// and SetButton buffer state; Sync flushes one coherent frame to the
// device. The mapper serializes calls, so drivers need no locking.
type Adapter interface {
	Configure(any) error // driver-specific config ⇒ struct
	SetAxis(axis evdev.AxisCode, value int32) error
	SetButton(code uint16, pressed bool) error
	Sync() error
	Close() error // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
