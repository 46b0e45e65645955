package evdev

import "fmt"

// Factory builds an Adapter (e.g. the evdev reader, a replay driver, …).
type Factory func() Adapter

var registry = map[string]Factory{}

// Register is called from each driver's init() or from main().
func Register(name string, f Factory) {
	registry[name] = f
}

// NewAdapter returns a driver by name.
func NewAdapter(name string) (Adapter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("evdev: unsupported driver %q", name)
}
