package actions

import (
	"errors"
	"testing"

	"github.com/psstoyanov/sc-controller/internal/evdev"
)

func TestSignatureCheck(t *testing.T) {
	sig := MustSignature("xi16?i16?")

	ok := [][]Parameter{
		{AxisParam(evdev.ABS_X)},
		{IntParam(2)},
		{AxisParam(evdev.ABS_X), IntParam(-32768)},
		{AxisParam(evdev.ABS_X), IntParam(0), IntParam(32767)},
	}
	for _, params := range ok {
		if err := sig.Check("axis", params); err != nil {
			t.Fatalf("Check(%v): %v", params, err)
		}
	}

	if err := sig.Check("axis", nil); !errors.Is(err, ErrInvalidParameterCount) {
		t.Fatalf("missing required: %v", err)
	}
	four := []Parameter{IntParam(0), IntParam(0), IntParam(0), IntParam(0)}
	if err := sig.Check("axis", four); !errors.Is(err, ErrInvalidParameterCount) {
		t.Fatalf("too many: %v", err)
	}
	if err := sig.Check("axis", []Parameter{FloatParam(1.5)}); !errors.Is(err, ErrInvalidParameterType) {
		t.Fatalf("float as axis id: %v", err)
	}
	wide := []Parameter{AxisParam(evdev.ABS_X), IntParam(40000)}
	if err := sig.Check("axis", wide); !errors.Is(err, ErrInvalidParameterType) {
		t.Fatalf("out of int16 range: %v", err)
	}
}

func TestParseSignatureRejectsGarbage(t *testing.T) {
	for _, spec := range []string{"q", "i999", "xz"} {
		if _, err := ParseSignature(spec); err == nil {
			t.Fatalf("ParseSignature(%q) accepted", spec)
		}
	}
}

func TestParamsString(t *testing.T) {
	params := []Parameter{AxisParam(evdev.ABS_HAT0Y), IntParam(-3), FloatParam(0.5)}
	if got := ParamsString(params); got != "ABS_HAT0Y, -3, 0.5" {
		t.Fatalf("ParamsString = %q", got)
	}
	if got := ParamsString(nil); got != "" {
		t.Fatalf("ParamsString(nil) = %q", got)
	}
}

func TestAsIntAndAsFloat(t *testing.T) {
	if v, ok := AsInt(AxisParam(evdev.ABS_RZ)); !ok || evdev.AxisCode(v) != evdev.ABS_RZ {
		t.Fatalf("AsInt(axis) = %d, %v", v, ok)
	}
	if _, ok := AsInt(FloatParam(1)); ok {
		t.Fatal("AsInt accepted a float")
	}
	if v, ok := AsFloat(IntParam(3)); !ok || v != 3 {
		t.Fatalf("AsFloat(int) = %v, %v", v, ok)
	}
}
