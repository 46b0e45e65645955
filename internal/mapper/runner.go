package mapper

import (
	"context"
	"errors"

	"github.com/psstoyanov/sc-controller/internal/logging"
	"github.com/psstoyanov/sc-controller/sink"
	source "github.com/psstoyanov/sc-controller/source/evdev"
)

// Runner ties one input source to one mapper for the daemon lifetime.
type Runner struct {
	source source.Adapter
	mapper *Mapper
	out    sink.Adapter
}

func NewRunner(src source.Adapter, m *Mapper, out sink.Adapter) *Runner {
	return &Runner{source: src, mapper: m, out: out}
}

// Mapper exposes the running mapper to the control plane.
func (r *Runner) Mapper() *Mapper { return r.mapper }

func (r *Runner) Start(ctx context.Context) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	go func() {
		err := r.source.Run(ctx, r.mapper.HandleEvent)
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.L().Error("input source stopped", "err", err)
		}
	}()
	return nil
}

func (r *Runner) Close() error {
	_ = r.source.Close()
	return r.out.Close()
}
