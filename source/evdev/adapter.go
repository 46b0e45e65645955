// Package evdev ingests raw controller events from a Linux input
// device node and feeds them to the mapper.
package evdev

import (
	"context"
)

// Event is one decoded input record: a button edge or an absolute axis
// sample, still in the device's own domain.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

type EmitFunc func(Event) error

type Adapter interface {
	Configure(Config) error
	Run(context.Context, EmitFunc) error
	Close() error
}
