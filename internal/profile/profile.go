// Package profile loads remapping profiles: YAML documents binding
// physical controls (buttons, sticks, triggers) to action strings.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psstoyanov/sc-controller/internal/actions"
	"github.com/psstoyanov/sc-controller/internal/evdev"
)

const SupportedSchema = "v1"

// File is the on-disk YAML shape. Slot keys are evdev symbolic names,
// values are action strings handed to the action parser.
type File struct {
	SchemaVersion string            `yaml:"schema_version"`
	Name          string            `yaml:"name"`
	Buttons       map[string]string `yaml:"buttons"`
	Sticks        map[string]string `yaml:"sticks"`
	Triggers      map[string]string `yaml:"triggers"`
}

// Profile is the compiled form: every action constructed, every slot
// resolved to its input code.
type Profile struct {
	Name     string
	Buttons  map[uint16]actions.Action
	Sticks   map[evdev.AxisCode]actions.Action
	Triggers map[evdev.AxisCode]actions.Action

	slots map[string]actions.Action
}

// Load reads and compiles a profile file.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse compiles a profile from its YAML body, validating the schema
// version the way every other config loader in the daemon does.
func Parse(raw []byte) (*Profile, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if f.SchemaVersion == "" {
		f.SchemaVersion = SupportedSchema
	}
	if f.SchemaVersion != SupportedSchema {
		return nil, fmt.Errorf("profile schema_version %q not supported (want %q)", f.SchemaVersion, SupportedSchema)
	}

	p := &Profile{
		Name:     f.Name,
		Buttons:  map[uint16]actions.Action{},
		Sticks:   map[evdev.AxisCode]actions.Action{},
		Triggers: map[evdev.AxisCode]actions.Action{},
		slots:    map[string]actions.Action{},
	}

	for slot, text := range f.Buttons {
		code, ok := evdev.ButtonByName(slot)
		if !ok {
			return nil, fmt.Errorf("profile %q: unknown button slot %q", f.Name, slot)
		}
		a, err := p.compile(slot, text)
		if err != nil {
			return nil, err
		}
		p.Buttons[code] = a
	}
	for slot, text := range f.Sticks {
		code, ok := evdev.AxisByName(slot)
		if !ok {
			return nil, fmt.Errorf("profile %q: unknown stick slot %q", f.Name, slot)
		}
		a, err := p.compile(slot, text)
		if err != nil {
			return nil, err
		}
		p.Sticks[code] = a
	}
	for slot, text := range f.Triggers {
		code, ok := evdev.AxisByName(slot)
		if !ok {
			return nil, fmt.Errorf("profile %q: unknown trigger slot %q", f.Name, slot)
		}
		a, err := p.compile(slot, text)
		if err != nil {
			return nil, err
		}
		p.Triggers[code] = a
	}
	return p, nil
}

func (p *Profile) compile(slot, text string) (actions.Action, error) {
	a, err := actions.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("profile %q: slot %s: %w", p.Name, slot, err)
	}
	p.slots[slot] = a
	return a, nil
}

// Slot returns the action bound to a named slot, for introspection and
// the control plane.
func (p *Profile) Slot(name string) (actions.Action, bool) {
	a, ok := p.slots[name]
	return a, ok
}

// Slots lists every bound slot name.
func (p *Profile) Slots() []string {
	names := make([]string, 0, len(p.slots))
	for name := range p.slots {
		names = append(names, name)
	}
	return names
}
