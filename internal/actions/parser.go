package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/psstoyanov/sc-controller/internal/evdev"
)

// Parse turns an action string from a profile, e.g. "raxis(ABS_X, 0,
// 32767)", into a constructed action. The canonical rendering of the
// result (String) matches the canonical form of the input text.
func Parse(s string) (Action, error) {
	keyword, params, err := split(s)
	if err != nil {
		return nil, err
	}
	return New(keyword, params)
}

func split(s string) (string, []Parameter, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("action %q: want keyword(params)", s)
	}
	keyword := strings.TrimSpace(s[:open])
	if keyword == "" {
		return "", nil, fmt.Errorf("action %q: missing keyword", s)
	}
	body := s[open+1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return keyword, nil, nil
	}

	var params []Parameter
	for i, arg := range strings.Split(body, ",") {
		p, err := parseParam(strings.TrimSpace(arg))
		if err != nil {
			return "", nil, fmt.Errorf("action %q: parameter %d: %w", s, i+1, err)
		}
		params = append(params, p)
	}
	return keyword, params, nil
}

func parseParam(arg string) (Parameter, error) {
	if arg == "" {
		return nil, fmt.Errorf("empty parameter")
	}
	if code, ok := evdev.AxisByName(arg); ok {
		return AxisParam(code), nil
	}
	if v, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return IntParam(v), nil
	}
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return FloatParam(v), nil
	}
	return nil, fmt.Errorf("cannot parse %q", arg)
}
