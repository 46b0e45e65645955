package mapper

import (
	"fmt"

	"github.com/psstoyanov/sc-controller/internal/profile"
	"github.com/psstoyanov/sc-controller/internal/telemetry"
	"github.com/psstoyanov/sc-controller/sink"
	"github.com/psstoyanov/sc-controller/sink/logsink"
	"github.com/psstoyanov/sc-controller/sink/uinput"
	source "github.com/psstoyanov/sc-controller/source/evdev"
)

// Settings selects what Compile wires together. Driver and sink names
// resolve through the respective registries.
type Settings struct {
	ProfilePath string
	InputConfig string // evdev source YAML, "" for env/defaults only
	SourceName  string // default "reader"
	SinkName    string // default "uinput"
	PadName     string // virtual device name for the uinput sink
}

// Compile loads the profile, configures source and sink drivers and
// returns a ready-to-start Runner.
func Compile(s Settings) (*Runner, error) {
	prof, err := profile.Load(s.ProfilePath)
	if err != nil {
		telemetry.ProfileLoadFailures.Inc()
		return nil, fmt.Errorf("profile: %w", err)
	}

	sinkName := s.SinkName
	if sinkName == "" {
		sinkName = "uinput"
	}
	out, err := sink.NewAdapter(sinkName)
	if err != nil {
		return nil, err
	}
	switch sinkName {
	case "uinput":
		err = out.Configure(uinput.Config{Name: s.PadName})
	case "log":
		err = out.Configure(logsink.Config{Counter: true})
	default:
		err = fmt.Errorf("no config block for sink %q", sinkName)
	}
	if err != nil {
		return nil, err
	}

	sourceName := s.SourceName
	if sourceName == "" {
		sourceName = "reader"
	}
	src, err := source.NewAdapter(sourceName)
	if err != nil {
		return nil, err
	}
	cfg, err := source.LoadConfig(s.InputConfig)
	if err != nil {
		return nil, err
	}
	if err := src.Configure(cfg); err != nil {
		return nil, err
	}

	return NewRunner(src, New(prof, out), out), nil
}
