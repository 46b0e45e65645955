package engine

import (
	"context"
	"fmt"

	"github.com/psstoyanov/sc-controller/internal/mapper"
	"github.com/psstoyanov/sc-controller/internal/telemetry"
	"github.com/psstoyanov/sc-controller/internal/transport"
)

func Bootstrap(ctx context.Context, cfg Config) (*Engine, error) {
	// 1. remapping pipeline
	runner, err := mapper.Compile(mapper.Settings{
		ProfilePath: cfg.ProfileYml,
		InputConfig: cfg.InputYml,
		SinkName:    cfg.SinkName,
		PadName:     cfg.PadName,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if err := runner.Start(ctx); err != nil {
		return nil, err
	}

	e := &Engine{runner: runner}

	// 2. control plane
	srv, err := transport.StartServer(cfg.GRPCPort, e)
	if err != nil {
		_ = runner.Close()
		return nil, fmt.Errorf("transport: %w", err)
	}
	e.transport = srv

	// 3. metrics
	telemetry.Expose(cfg.MetricsPort)

	return e, nil
}
