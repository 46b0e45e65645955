package actions

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/psstoyanov/sc-controller/internal/evdev"
)

var (
	ErrInvalidParameterCount = errors.New("invalid number of parameters")
	ErrInvalidParameterType  = errors.New("invalid parameter type")
	ErrUnknownKeyword        = errors.New("unknown action keyword")
)

func invalidParameterCount(keyword string) error {
	return fmt.Errorf("%s: %w", keyword, ErrInvalidParameterCount)
}

func unknownKeyword(keyword string) error {
	return fmt.Errorf("%q: %w", keyword, ErrUnknownKeyword)
}

// Parameter is one value from an action's textual parameter list. The
// parsed form keeps enough of the source to render back exactly, so an
// action holding its original list can stringify losslessly.
type Parameter interface {
	String() string
}

type IntParam int64

func (p IntParam) String() string { return strconv.FormatInt(int64(p), 10) }

type FloatParam float64

func (p FloatParam) String() string { return strconv.FormatFloat(float64(p), 'g', -1, 64) }

// AxisParam is an axis identifier written by its symbolic name.
type AxisParam evdev.AxisCode

func (p AxisParam) String() string {
	if name := evdev.AxisName(evdev.AxisCode(p)); name != "" {
		return name
	}
	return strconv.FormatUint(uint64(p), 10)
}

// AsInt reports the integer value of p, when it has one.
func AsInt(p Parameter) (int64, bool) {
	switch v := p.(type) {
	case IntParam:
		return int64(v), true
	case AxisParam:
		return int64(v), true
	default:
		return 0, false
	}
}

// AsFloat reports the numeric value of p, when it has one.
func AsFloat(p Parameter) (float64, bool) {
	switch v := p.(type) {
	case FloatParam:
		return float64(v), true
	case IntParam:
		return float64(v), true
	default:
		return 0, false
	}
}

// ParamsString renders a parameter list the way it appears between the
// parentheses of an action string.
func ParamsString(params []Parameter) string {
	s := ""
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s
}

type sigSlot struct {
	kind     byte // 'x' axis id, 'i' integer, 'f' float
	bits     uint // integer width, 0 = unbounded
	optional bool
}

// Signature is a compact declaration of an action's parameter list,
// e.g. "xi16?i16?": one axis identifier followed by up to two optional
// 16-bit integers. Constructors check incoming lists against it before
// doing any keyword-specific validation.
type Signature struct {
	slots []sigSlot
}

// MustSignature parses a signature spec and panics on grammar errors.
// Signatures are package-level constants, so a bad one is a programming
// error caught at init.
func MustSignature(spec string) Signature {
	sig, err := ParseSignature(spec)
	if err != nil {
		panic(err)
	}
	return sig
}

func ParseSignature(spec string) (Signature, error) {
	var sig Signature
	for i := 0; i < len(spec); {
		slot := sigSlot{kind: spec[i]}
		switch spec[i] {
		case 'x', 'f':
			i++
		case 'i':
			i++
			start := i
			for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
				i++
			}
			if i > start {
				bits, err := strconv.ParseUint(spec[start:i], 10, 8)
				if err != nil || bits == 0 || bits > 64 {
					return Signature{}, fmt.Errorf("signature %q: bad integer width", spec)
				}
				slot.bits = uint(bits)
			}
		default:
			return Signature{}, fmt.Errorf("signature %q: unknown token %q", spec, spec[i])
		}
		if i < len(spec) && spec[i] == '?' {
			slot.optional = true
			i++
		}
		sig.slots = append(sig.slots, slot)
	}
	return sig, nil
}

// Check validates arity and per-slot types of params. Range checks for
// sized integers are part of the type check.
func (s Signature) Check(keyword string, params []Parameter) error {
	required := 0
	for _, slot := range s.slots {
		if !slot.optional {
			required++
		}
	}
	if len(params) < required || len(params) > len(s.slots) {
		return invalidParameterCount(keyword)
	}
	for i, p := range params {
		slot := s.slots[i]
		switch slot.kind {
		case 'x':
			if _, ok := AsInt(p); !ok {
				return fmt.Errorf("%s: parameter %d: %w", keyword, i+1, ErrInvalidParameterType)
			}
		case 'i':
			v, ok := AsInt(p)
			if !ok {
				return fmt.Errorf("%s: parameter %d: %w", keyword, i+1, ErrInvalidParameterType)
			}
			if slot.bits > 0 {
				limit := int64(1) << (slot.bits - 1)
				if v < -limit || v >= limit {
					return fmt.Errorf("%s: parameter %d out of range for int%d: %w",
						keyword, i+1, slot.bits, ErrInvalidParameterType)
				}
			}
		case 'f':
			if _, ok := AsFloat(p); !ok {
				return fmt.Errorf("%s: parameter %d: %w", keyword, i+1, ErrInvalidParameterType)
			}
		}
	}
	return nil
}
