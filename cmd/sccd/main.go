package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/psstoyanov/sc-controller/internal/config"
	"github.com/psstoyanov/sc-controller/internal/engine"
	"github.com/psstoyanov/sc-controller/internal/logging"

	// output and input drivers register themselves
	_ "github.com/psstoyanov/sc-controller/sink/logsink"
	_ "github.com/psstoyanov/sc-controller/sink/uinput"
	_ "github.com/psstoyanov/sc-controller/source/evdev"
)

func main() {
	cfgPath := flag.String("config", "sccd.yml", "daemon config file")
	flag.Parse()

	cfg, err := config.LoadDaemon(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(ctx, engine.Config{
		GRPCPort:    cfg.GRPCPort,
		MetricsPort: cfg.MetricsPort,
		ProfileYml:  cfg.Profile,
		InputYml:    cfg.Input,
		SinkName:    cfg.Sink,
		PadName:     cfg.PadName,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
