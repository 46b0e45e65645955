// Package evdev carries the subset of the Linux input event ABI the
// daemon needs: event types, absolute axis and button codes, and the
// value domains controllers report in.
package evdev

// Event types (linux/input-event-codes.h).
const (
	EV_SYN uint16 = 0x00
	EV_KEY uint16 = 0x01
	EV_ABS uint16 = 0x03
)

const SYN_REPORT uint16 = 0x00

// AxisCode identifies one absolute axis of the output device.
type AxisCode uint16

const (
	ABS_X     AxisCode = 0x00
	ABS_Y     AxisCode = 0x01
	ABS_Z     AxisCode = 0x02
	ABS_RX    AxisCode = 0x03
	ABS_RY    AxisCode = 0x04
	ABS_RZ    AxisCode = 0x05
	ABS_HAT0X AxisCode = 0x10
	ABS_HAT0Y AxisCode = 0x11
)

// Gamepad button codes used in profile slot names.
const (
	BTN_SOUTH  uint16 = 0x130
	BTN_EAST   uint16 = 0x131
	BTN_NORTH  uint16 = 0x133
	BTN_WEST   uint16 = 0x134
	BTN_TL     uint16 = 0x136
	BTN_TR     uint16 = 0x137
	BTN_TL2    uint16 = 0x138
	BTN_TR2    uint16 = 0x139
	BTN_SELECT uint16 = 0x13a
	BTN_START  uint16 = 0x13b
	BTN_MODE   uint16 = 0x13c
	BTN_THUMBL uint16 = 0x13d
	BTN_THUMBR uint16 = 0x13e
)

// Domain is the closed integer range a class of controls reports in.
type Domain struct {
	Min, Max int32
}

// Full-deflection range of analog sticks and touch pads.
var StickPad = Domain{Min: -0x8000, Max: 0x7FFF}

// One-sided range of analog triggers.
var Trigger = Domain{Min: 0, Max: 0xFF}

var axisNames = map[AxisCode]string{
	ABS_X:     "ABS_X",
	ABS_Y:     "ABS_Y",
	ABS_Z:     "ABS_Z",
	ABS_RX:    "ABS_RX",
	ABS_RY:    "ABS_RY",
	ABS_RZ:    "ABS_RZ",
	ABS_HAT0X: "ABS_HAT0X",
	ABS_HAT0Y: "ABS_HAT0Y",
}

var axisCodes = map[string]AxisCode{}

var buttonCodes = map[string]uint16{
	"BTN_SOUTH":  BTN_SOUTH,
	"BTN_EAST":   BTN_EAST,
	"BTN_NORTH":  BTN_NORTH,
	"BTN_WEST":   BTN_WEST,
	"BTN_TL":     BTN_TL,
	"BTN_TR":     BTN_TR,
	"BTN_TL2":    BTN_TL2,
	"BTN_TR2":    BTN_TR2,
	"BTN_SELECT": BTN_SELECT,
	"BTN_START":  BTN_START,
	"BTN_MODE":   BTN_MODE,
	"BTN_THUMBL": BTN_THUMBL,
	"BTN_THUMBR": BTN_THUMBR,
}

func init() {
	for code, name := range axisNames {
		axisCodes[name] = code
	}
}

// AxisName returns the symbolic name for code, or "" when the code has
// no name in this table.
func AxisName(code AxisCode) string {
	return axisNames[code]
}

// AxisByName resolves a symbolic axis name such as "ABS_HAT0Y".
func AxisByName(name string) (AxisCode, bool) {
	c, ok := axisCodes[name]
	return c, ok
}

// ButtonByName resolves a symbolic gamepad button name such as "BTN_SOUTH".
func ButtonByName(name string) (uint16, bool) {
	c, ok := buttonCodes[name]
	return c, ok
}

// Axes lists every axis the virtual output device exposes, in code order.
func Axes() []AxisCode {
	return []AxisCode{ABS_X, ABS_Y, ABS_Z, ABS_RX, ABS_RY, ABS_RZ, ABS_HAT0X, ABS_HAT0Y}
}

// Buttons lists every button the virtual output device exposes.
func Buttons() []uint16 {
	return []uint16{
		BTN_SOUTH, BTN_EAST, BTN_NORTH, BTN_WEST,
		BTN_TL, BTN_TR, BTN_TL2, BTN_TR2,
		BTN_SELECT, BTN_START, BTN_MODE, BTN_THUMBL, BTN_THUMBR,
	}
}

// DomainFor returns the hard clamp range for an axis class: triggers
// clamp to the trigger domain, hat axes to [-1, 1] and everything else
// to the stick/pad domain.
func DomainFor(code AxisCode) Domain {
	switch code {
	case ABS_Z, ABS_RZ:
		return Trigger
	case ABS_HAT0X, ABS_HAT0Y:
		return Domain{Min: -1, Max: 1}
	default:
		return StickPad
	}
}
