// Package logsink is the debug output driver: it logs every write
// instead of touching uinput. Used for dry runs and in tests.
package logsink

import (
	"fmt"
	"sync/atomic"

	"github.com/psstoyanov/sc-controller/internal/evdev"
	"github.com/psstoyanov/sc-controller/internal/logging"
	"github.com/psstoyanov/sc-controller/sink"
)

type Config struct {
	Counter bool `koanf:"counter"` // prepend frame seq#
}

type driver struct {
	cfg   Config
	dirty bool

	axes    map[evdev.AxisCode]int32
	buttons map[uint16]bool
}

var seq uint64

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("log-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	d.axes = map[evdev.AxisCode]int32{}
	d.buttons = map[uint16]bool{}
	return nil
}

func (d *driver) SetAxis(axis evdev.AxisCode, value int32) error {
	d.axes[axis] = value
	d.dirty = true
	logging.L().Debug("axis write", "axis", evdev.AxisName(axis), "value", value)
	return nil
}

func (d *driver) SetButton(code uint16, pressed bool) error {
	d.buttons[code] = pressed
	d.dirty = true
	logging.L().Debug("button write", "code", code, "pressed", pressed)
	return nil
}

func (d *driver) Sync() error {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	if d.cfg.Counter {
		logging.L().Info("frame", "seq", atomic.AddUint64(&seq, 1))
	}
	return nil
}

func (d *driver) Close() error { return nil }

func init() {
	sink.Register("log", func() sink.Adapter { return &driver{} })
}
