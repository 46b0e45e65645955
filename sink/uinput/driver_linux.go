// Package uinput emits the remapped controller through a virtual
// gamepad created with the Linux uinput subsystem.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/psstoyanov/sc-controller/internal/evdev"
	"github.com/psstoyanov/sc-controller/sink"
)

// uinput ioctls (linux/uinput.h).
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetAbsBit  = 0x40045567
)

const (
	devicePath  = "/dev/uinput"
	maxNameSize = 80
	absSize     = 64
	busVirtual  = 0x06
)

type Config struct {
	Name    string `koanf:"name"`
	Vendor  uint16 `koanf:"vendor"`
	Product uint16 `koanf:"product"`
	Version uint16 `koanf:"version"`
}

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name       [maxNameSize]byte
	ID         inputID
	EffectsMax uint32
	Absmax     [absSize]int32
	Absmin     [absSize]int32
	Absfuzz    [absSize]int32
	Absflat    [absSize]int32
}

type driver struct {
	cfg   Config
	fd    int
	open  bool
	dirty bool
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("uinput-sink: expected Config, got %T", raw)
	}
	if c.Name == "" {
		c.Name = "sc-controller pad"
	}
	d.cfg = c
	return d.create()
}

func (d *driver) create() error {
	fd, err := unix.Open(devicePath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return fmt.Errorf("uinput-sink: open %s: %w", devicePath, err)
	}

	if err := unix.IoctlSetInt(fd, uiSetEvBit, int(evdev.EV_KEY)); err != nil {
		return d.setupFailed(fd, err)
	}
	if err := unix.IoctlSetInt(fd, uiSetEvBit, int(evdev.EV_ABS)); err != nil {
		return d.setupFailed(fd, err)
	}
	for _, code := range evdev.Buttons() {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, int(code)); err != nil {
			return d.setupFailed(fd, err)
		}
	}
	for _, code := range evdev.Axes() {
		if err := unix.IoctlSetInt(fd, uiSetAbsBit, int(code)); err != nil {
			return d.setupFailed(fd, err)
		}
	}

	ud := userDev{
		ID: inputID{
			Bustype: busVirtual,
			Vendor:  d.cfg.Vendor,
			Product: d.cfg.Product,
			Version: d.cfg.Version,
		},
	}
	copy(ud.Name[:], d.cfg.Name)
	for _, code := range evdev.Axes() {
		dom := evdev.DomainFor(code)
		ud.Absmin[code] = dom.Min
		ud.Absmax[code] = dom.Max
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &ud); err != nil {
		return d.setupFailed(fd, err)
	}
	if _, err := unix.Write(fd, buf.Bytes()); err != nil {
		return d.setupFailed(fd, err)
	}
	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		return d.setupFailed(fd, err)
	}

	d.fd = fd
	d.open = true
	return nil
}

func (d *driver) setupFailed(fd int, err error) error {
	_ = unix.Close(fd)
	return fmt.Errorf("uinput-sink: device setup: %w", err)
}

func (d *driver) emit(typ, code uint16, value int32) error {
	ev := evdev.InputEvent{Type: typ, Code: code, Value: value}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &ev); err != nil {
		return err
	}
	_, err := unix.Write(d.fd, buf.Bytes())
	return err
}

func (d *driver) SetAxis(axis evdev.AxisCode, value int32) error {
	if err := d.emit(evdev.EV_ABS, uint16(axis), value); err != nil {
		return err
	}
	d.dirty = true
	return nil
}

func (d *driver) SetButton(code uint16, pressed bool) error {
	v := int32(0)
	if pressed {
		v = 1
	}
	if err := d.emit(evdev.EV_KEY, code, v); err != nil {
		return err
	}
	d.dirty = true
	return nil
}

func (d *driver) Sync() error {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	return d.emit(evdev.EV_SYN, evdev.SYN_REPORT, 0)
}

func (d *driver) Close() error {
	if !d.open {
		return nil
	}
	d.open = false
	_ = unix.IoctlSetInt(d.fd, uiDevDestroy, 0)
	return unix.Close(d.fd)
}

func init() {
	sink.Register("uinput", func() sink.Adapter { return &driver{} })
}
