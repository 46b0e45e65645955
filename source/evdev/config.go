package evdev

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Device      string        `koanf:"device"`       // /dev/input/eventN node
	Grab        bool          `koanf:"grab"`         // take exclusive hold of the device
	OpenRetries int           `koanf:"open_retries"` // udev may still be fixing permissions
	RetryDelay  time.Duration `koanf:"retry_delay"`
}

// LoadConfig merges YAML (if present) with env-vars
// (prefix `SCC_INPUT__`, delimiter `__`).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("input schema_version %q not supported (want v1)", sv)
	}

	_ = k.Load(env.Provider("SCC_INPUT__", "__", nil), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.OpenRetries == 0 {
		c.OpenRetries = 5
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 200 * time.Millisecond
	}
}
