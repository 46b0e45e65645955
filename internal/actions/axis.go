package actions

import (
	"fmt"

	"github.com/psstoyanov/sc-controller/internal/evdev"
	"github.com/psstoyanov/sc-controller/internal/logging"
)

const (
	KwAxis     = "axis"
	KwRAxis    = "raxis"
	KwHatUp    = "hatup"
	KwHatDown  = "hatdown"
	KwHatLeft  = "hatleft"
	KwHatRight = "hatright"
)

// AxisVariant selects one of the six flavors of the axis action.
type AxisVariant uint8

const (
	PlainAxis AxisVariant = iota
	ReversedAxis
	HatUp
	HatDown
	HatLeft
	HatRight
)

var axisVariants = map[string]AxisVariant{
	KwAxis:     PlainAxis,
	KwRAxis:    ReversedAxis,
	KwHatUp:    HatUp,
	KwHatDown:  HatDown,
	KwHatLeft:  HatLeft,
	KwHatRight: HatRight,
}

// One axis id, up to two optional 16-bit min/max overrides.
var axisSignature = MustSignature("xi16?i16?")

// AxisAction maps an input sample onto one absolute axis of the output
// device. min/max are fixed at construction; only the sensitivity scale
// changes afterward.
//
// With most actions String reconstructs parameters on the fly, but the
// axis defaulting rules are involved enough that keeping the original
// list is the only way to round-trip exactly.
type AxisAction struct {
	variant AxisVariant
	keyword string
	axis    evdev.AxisCode
	scale   float64
	min     int32
	max     int32
	params  []Parameter
}

func newAxisAction(keyword string, params []Parameter) (Action, error) {
	if err := axisSignature.Check(keyword, params); err != nil {
		return nil, err
	}
	variant, ok := axisVariants[keyword]
	if !ok {
		return nil, unknownKeyword(keyword)
	}

	id, _ := AsInt(params[0])
	a := &AxisAction{
		variant: variant,
		keyword: keyword,
		axis:    evdev.AxisCode(id),
		scale:   1.0,
		params:  append([]Parameter(nil), params...),
	}

	if variant >= HatUp {
		// Hat pseudo-axes take no overrides. min/max are sentinels one
		// step inside the stick/pad extremes; the hat clamp compresses
		// them to 0 and ±1, they only pick the sign.
		if len(params) != 1 {
			return nil, invalidParameterCount(keyword)
		}
		a.min = 0
		a.max = evdev.StickPad.Min + 1
		if variant == HatDown || variant == HatRight {
			a.max = evdev.StickPad.Max - 1
		}
		return a, nil
	}

	a.min, a.max = evdev.StickPad.Min, evdev.StickPad.Max
	if a.axis == evdev.ABS_Z || a.axis == evdev.ABS_RZ {
		// Triggers
		a.min, a.max = evdev.Trigger.Min, evdev.Trigger.Max
	}
	if len(params) > 1 {
		v, _ := AsInt(params[1])
		a.min = int32(v)
	}
	if len(params) > 2 {
		v, _ := AsInt(params[2])
		a.max = int32(v)
	}
	if variant == ReversedAxis {
		a.min, a.max = a.max, a.min
	}
	return a, nil
}

func (a *AxisAction) Keyword() string { return a.keyword }

func (a *AxisAction) String() string {
	return fmt.Sprintf("%s(%s)", a.keyword, ParamsString(a.params))
}

// Variant reports which of the six flavors this action was built as.
func (a *AxisAction) Variant() AxisVariant { return a.variant }

// Axis reports the output axis this action writes to.
func (a *AxisAction) Axis() evdev.AxisCode { return a.axis }

// Range reports the configured output range, before the axis-class clamp.
func (a *AxisAction) Range() (min, max int32) { return a.min, a.max }

// clampAxis clamps value to the hard range allowed for axis, regardless
// of the configured min/max.
func clampAxis(axis evdev.AxisCode, value int32) int32 {
	d := evdev.DomainFor(axis)
	if value < d.Min {
		return d.Min
	}
	if value > d.Max {
		return d.Max
	}
	return value
}

func (a *AxisAction) ButtonPress(m Mapper) {
	m.SetAxis(a.axis, clampAxis(a.axis, a.max))
}

func (a *AxisAction) ButtonRelease(m Mapper) {
	m.SetAxis(a.axis, clampAxis(a.axis, a.min))
}

// rescale maps value from the source domain into [min, max] and applies
// the axis-class clamp. Sensitivity scales the raw sample before
// normalization, so scales above 1.0 can push the fraction outside
// [0, 1] until the clamp; existing profiles rely on that amplification.
func (a *AxisAction) rescale(value int32, d evdev.Domain) int32 {
	p := (float64(value)*a.scale - float64(d.Min)) / float64(d.Max-d.Min)
	p = p*float64(a.max-a.min) + float64(a.min)
	return clampAxis(a.axis, int32(p))
}

func (a *AxisAction) Stick(m Mapper, value int32) {
	m.SetAxis(a.axis, a.rescale(value, evdev.StickPad))
}

func (a *AxisAction) Trigger(m Mapper, oldPos, pos int32) {
	m.SetAxis(a.axis, a.rescale(pos, evdev.Trigger))
}

func (a *AxisAction) SetSensitivity(x, y, z float64) {
	a.scale = x
}

func (a *AxisAction) Property(name string) (Parameter, bool) {
	switch name {
	case "sensitivity":
		return FloatParam(a.scale), true
	case "axis", "id": // "id" kept for backwards compatibility
		return AxisParam(a.axis), true
	}
	logging.L().Warn("requested unknown property", "property", name, "action", a.keyword)
	return nil, false
}

func init() {
	for kw := range axisVariants {
		Register(kw, newAxisAction)
	}
}
