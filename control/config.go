// File: control/config.go
//
// Runtime tunables for the memory subsystem, loadable from YAML.

package control

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tessellata/geomem/api"
	"github.com/tessellata/geomem/internal/logger"
	"github.com/tessellata/geomem/pool"
)

// Config carries runtime tunables for the memory subsystem.
type Config struct {
	// MaxIdlePerClass bounds how many free buffers each size class
	// retains before further returns are dropped for the GC.
	MaxIdlePerClass int `yaml:"max_idle_per_class"`

	// LogLevel selects the process logger level: debug, info, warn or
	// error. Empty leaves the logger silent.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns defaults suitable for typical workloads.
func DefaultConfig() *Config {
	return &Config{
		MaxIdlePerClass: pool.DefaultMaxIdlePerClass,
		LogLevel:        "",
	}
}

// Load reads a YAML config file. Absent fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("control: parse config: %w", err)
	}
	if cfg.MaxIdlePerClass < 0 {
		return nil, fmt.Errorf("control: max_idle_per_class must be >= 0: %w", api.ErrInvalidArgument)
	}
	return cfg, nil
}

// Apply installs the tunables into the pool layer and the logger.
// Shared pools created before Apply keep their original retention
// bound.
func (c *Config) Apply() error {
	pool.Configure(pool.Options{MaxIdlePerClass: c.MaxIdlePerClass})
	if c.LogLevel != "" {
		if err := logger.Init(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}
