package engine

import (
	"context"

	"github.com/psstoyanov/sc-controller/internal/mapper"
	"github.com/psstoyanov/sc-controller/internal/profile"
	"github.com/psstoyanov/sc-controller/internal/telemetry"
	"github.com/psstoyanov/sc-controller/internal/transport"
)

type Config struct {
	GRPCPort    int
	MetricsPort int
	ProfileYml  string
	InputYml    string // "" = env/defaults only
	SinkName    string // "uinput" (default) or "log"
	PadName     string
}

type Engine struct {
	transport *transport.Server
	runner    *mapper.Runner
}

func (e *Engine) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		e.transport.Stop()
		if e.runner != nil {
			_ = e.runner.Close()
		}
	}()

	return e.transport.Serve()
}

// ----- transport.Daemon ---------------------------------------------------

func (e *Engine) ActiveProfile() string {
	return e.runner.Mapper().ProfileName()
}

func (e *Engine) ApplyProfile(yaml []byte) (string, error) {
	p, err := profile.Parse(yaml)
	if err != nil {
		telemetry.ProfileLoadFailures.Inc()
		return "", err
	}
	e.runner.Mapper().SwapProfile(p)
	return p.Name, nil
}

func (e *Engine) SetSensitivity(slot string, x, y, z float64) bool {
	return e.runner.Mapper().SetSensitivity(slot, x, y, z)
}
