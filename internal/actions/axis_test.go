package actions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/psstoyanov/sc-controller/internal/evdev"
)

type fakeMapper struct {
	axis   evdev.AxisCode
	value  int32
	writes int
}

func (m *fakeMapper) SetAxis(a evdev.AxisCode, v int32) {
	m.axis, m.value = a, v
	m.writes++
}

func mustAxis(t *testing.T, keyword string, params ...Parameter) *AxisAction {
	t.Helper()
	a, err := New(keyword, params)
	if err != nil {
		t.Fatalf("New(%s): %v", keyword, err)
	}
	ax, ok := a.(*AxisAction)
	if !ok {
		t.Fatalf("New(%s): got %T, want *AxisAction", keyword, a)
	}
	return ax
}

func TestRAxisMirrorsAxisBounds(t *testing.T) {
	overrides := [][2]int64{
		{-32768, 32767},
		{-100, 100},
		{0, 255},
		{200, -200},
	}
	for _, o := range overrides {
		plain := mustAxis(t, KwAxis, AxisParam(evdev.ABS_X), IntParam(o[0]), IntParam(o[1]))
		rev := mustAxis(t, KwRAxis, AxisParam(evdev.ABS_X), IntParam(o[0]), IntParam(o[1]))

		pMin, pMax := plain.Range()
		rMin, rMax := rev.Range()
		if pMin != int32(o[0]) || pMax != int32(o[1]) {
			t.Fatalf("axis(%d, %d): range (%d, %d)", o[0], o[1], pMin, pMax)
		}
		if rMin != pMax || rMax != pMin {
			t.Fatalf("raxis(%d, %d): range (%d, %d), want mirror of (%d, %d)",
				o[0], o[1], rMin, rMax, pMin, pMax)
		}
	}
}

func TestAxisDefaultsToStickPadDomain(t *testing.T) {
	a := mustAxis(t, KwAxis, AxisParam(evdev.ABS_X))
	min, max := a.Range()
	if min != evdev.StickPad.Min || max != evdev.StickPad.Max {
		t.Fatalf("axis(ABS_X): range (%d, %d), want stick/pad domain", min, max)
	}
}

func TestTriggerAxisDefaultsToTriggerDomain(t *testing.T) {
	for _, code := range []evdev.AxisCode{evdev.ABS_Z, evdev.ABS_RZ} {
		a := mustAxis(t, KwAxis, AxisParam(code))
		min, max := a.Range()
		if min != evdev.Trigger.Min || max != evdev.Trigger.Max {
			t.Fatalf("axis(%s): range (%d, %d), want trigger domain", evdev.AxisName(code), min, max)
		}

		// A sample at the trigger domain midpoint lands at the output
		// midpoint, within rounding.
		m := &fakeMapper{}
		a.Trigger(m, 0, 128)
		if m.value < 127 || m.value > 129 {
			t.Fatalf("axis(%s) at trigger midpoint: wrote %d", evdev.AxisName(code), m.value)
		}
	}
}

func TestHatPressReleaseClampsToUnit(t *testing.T) {
	cases := []struct {
		keyword string
		axis    evdev.AxisCode
		pressed int32
	}{
		{KwHatUp, evdev.ABS_HAT0Y, -1},
		{KwHatDown, evdev.ABS_HAT0Y, 1},
		{KwHatLeft, evdev.ABS_HAT0X, -1},
		{KwHatRight, evdev.ABS_HAT0X, 1},
	}
	for _, c := range cases {
		a := mustAxis(t, c.keyword, AxisParam(c.axis))
		m := &fakeMapper{}

		a.ButtonPress(m)
		if m.axis != c.axis || m.value != c.pressed {
			t.Fatalf("%s press: wrote %d to %s, want %d",
				c.keyword, m.value, evdev.AxisName(m.axis), c.pressed)
		}
		a.ButtonRelease(m)
		if m.value != 0 {
			t.Fatalf("%s release: wrote %d, want 0", c.keyword, m.value)
		}
	}
}

func TestHatRejectsRangeOverrides(t *testing.T) {
	for _, kw := range []string{KwHatUp, KwHatDown, KwHatLeft, KwHatRight} {
		_, err := New(kw, []Parameter{AxisParam(evdev.ABS_HAT0Y), IntParam(5)})
		if !errors.Is(err, ErrInvalidParameterCount) {
			t.Fatalf("%s with override: err = %v, want ErrInvalidParameterCount", kw, err)
		}
	}
}

func TestStickSampleStaysWithinClassBound(t *testing.T) {
	actionsUnderTest := []*AxisAction{
		mustAxis(t, KwAxis, AxisParam(evdev.ABS_X)),
		mustAxis(t, KwRAxis, AxisParam(evdev.ABS_X)),
		mustAxis(t, KwAxis, AxisParam(evdev.ABS_X), IntParam(-1000), IntParam(1000)),
		mustAxis(t, KwHatUp, AxisParam(evdev.ABS_HAT0Y)),
		mustAxis(t, KwAxis, AxisParam(evdev.ABS_Z)),
	}
	sensitivities := []float64{0, 0.25, 1, 2, 4}
	samples := []int32{
		evdev.StickPad.Min, evdev.StickPad.Min / 2, -1, 0, 1,
		evdev.StickPad.Max / 2, evdev.StickPad.Max,
	}

	for _, a := range actionsUnderTest {
		bound := evdev.DomainFor(a.Axis())
		for _, s := range sensitivities {
			a.SetSensitivity(s, 0, 0)
			for _, v := range samples {
				m := &fakeMapper{}
				a.Stick(m, v)
				if m.value < bound.Min || m.value > bound.Max {
					t.Fatalf("%s sens=%v sample=%d: wrote %d outside [%d, %d]",
						a, s, v, m.value, bound.Min, bound.Max)
				}
			}
		}
	}
}

func TestSensitivityAmplifiesBeforeClamp(t *testing.T) {
	a := mustAxis(t, KwAxis, AxisParam(evdev.ABS_X))
	m := &fakeMapper{}

	// Half deflection at 2x sensitivity saturates to the domain edge.
	a.SetSensitivity(2, 0, 0)
	a.Stick(m, evdev.StickPad.Max/2+1)
	if m.value != evdev.StickPad.Max {
		t.Fatalf("amplified half deflection: wrote %d, want %d", m.value, evdev.StickPad.Max)
	}

	// Zero sensitivity pins the normalized fraction to the low anchor.
	a.SetSensitivity(0, 0, 0)
	a.Stick(m, evdev.StickPad.Max)
	mid := int32(evdev.StickPad.Min/2 + evdev.StickPad.Max/2)
	if m.value < mid-1 || m.value > mid+1 {
		t.Fatalf("zero sensitivity: wrote %d, want about %d", m.value, mid)
	}
}

func TestButtonPressUsesConfiguredRange(t *testing.T) {
	a := mustAxis(t, KwAxis, AxisParam(evdev.ABS_X), IntParam(-1000), IntParam(1000))
	m := &fakeMapper{}

	a.ButtonPress(m)
	if m.value != 1000 {
		t.Fatalf("press: wrote %d, want 1000", m.value)
	}
	a.ButtonRelease(m)
	if m.value != -1000 {
		t.Fatalf("release: wrote %d, want -1000", m.value)
	}
}

func TestStringRoundTrip(t *testing.T) {
	texts := []string{
		"axis(ABS_X)",
		"axis(ABS_Z, 10, 200)",
		"raxis(ABS_RY, -100, 100)",
		"raxis(ABS_Y)",
		"hatup(ABS_HAT0Y)",
		"hatright(ABS_HAT0X)",
		"axis(7)",
	}
	for _, text := range texts {
		a, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := a.String(); got != text {
			t.Fatalf("Parse(%q).String() = %q", text, got)
		}
	}
}

func TestProperty(t *testing.T) {
	a := mustAxis(t, KwAxis, AxisParam(evdev.ABS_RX))

	p, ok := a.Property("sensitivity")
	if !ok || p.String() != "1" {
		t.Fatalf("sensitivity: %v, %v", p, ok)
	}
	a.SetSensitivity(2.5, 9, 9) // only x is kept
	if p, _ = a.Property("sensitivity"); p.String() != "2.5" {
		t.Fatalf("sensitivity after set: %v", p)
	}

	for _, name := range []string{"axis", "id"} {
		p, ok := a.Property(name)
		if !ok {
			t.Fatalf("Property(%q) missing", name)
		}
		v, _ := AsInt(p)
		if evdev.AxisCode(v) != evdev.ABS_RX {
			t.Fatalf("Property(%q) = %v", name, p)
		}
	}

	if _, ok := a.Property("bogus"); ok {
		t.Fatal("unknown property reported present")
	}
}

func TestVariantResolution(t *testing.T) {
	want := map[string]AxisVariant{
		KwAxis:     PlainAxis,
		KwRAxis:    ReversedAxis,
		KwHatUp:    HatUp,
		KwHatDown:  HatDown,
		KwHatLeft:  HatLeft,
		KwHatRight: HatRight,
	}
	for kw, variant := range want {
		a := mustAxis(t, kw, AxisParam(evdev.ABS_HAT0X))
		if a.Variant() != variant {
			t.Fatalf("%s: variant %d, want %d", kw, a.Variant(), variant)
		}
	}
}

func TestHatSentinelRanges(t *testing.T) {
	negative := fmt.Sprintf("%d", evdev.StickPad.Min+1)
	positive := fmt.Sprintf("%d", evdev.StickPad.Max-1)

	cases := map[string]string{
		KwHatUp:    negative,
		KwHatLeft:  negative,
		KwHatDown:  positive,
		KwHatRight: positive,
	}
	for kw, wantMax := range cases {
		a := mustAxis(t, kw, AxisParam(evdev.ABS_HAT0X))
		min, max := a.Range()
		if min != 0 || fmt.Sprintf("%d", max) != wantMax {
			t.Fatalf("%s: range (%d, %d), want (0, %s)", kw, min, max, wantMax)
		}
	}
}
