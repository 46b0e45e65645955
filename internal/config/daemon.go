// Package config loads the daemon configuration and centralizes the
// loader entrypoints for the per-component config files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	source "github.com/psstoyanov/sc-controller/source/evdev"
)

const SupportedSchema = "v1"

type LogCfg struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type Daemon struct {
	GRPCPort    int    `koanf:"grpc_port"`
	MetricsPort int    `koanf:"metrics_port"`
	Profile     string `koanf:"profile"`  // profile YAML path
	Input       string `koanf:"input"`    // evdev source YAML path
	Sink        string `koanf:"sink"`     // output driver name
	PadName     string `koanf:"pad_name"` // virtual device name
	Log         LogCfg `koanf:"log"`
}

// LoadDaemon merges YAML (if present) with env-vars (prefix `SCC__`,
// delimiter `__`) and resolves the profile and input paths relative to
// the config file.
func LoadDaemon(path string) (Daemon, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Daemon{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return Daemon{}, fmt.Errorf("daemon schema_version %q not supported (want %q)", sv, SupportedSchema)
	}

	_ = k.Load(env.Provider("SCC__", "__", nil), nil)

	var cfg Daemon
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)

	base := filepath.Dir(path)
	if cfg.Profile != "" && !filepath.IsAbs(cfg.Profile) {
		cfg.Profile = filepath.Join(base, cfg.Profile)
	}
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(base, cfg.Input)
	}
	return cfg, nil
}

func applyDefaults(c *Daemon) {
	if c.GRPCPort == 0 {
		c.GRPCPort = 7433
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9100
	}
	if c.Sink == "" {
		c.Sink = "uinput"
	}
}

// LoadInputConfig delegates to the evdev source loader while keeping
// loader entrypoints under internal/config.
func LoadInputConfig(path string) (source.Config, error) {
	return source.LoadConfig(path)
}
