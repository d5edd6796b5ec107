package control_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tessellata/geomem/api"
	"github.com/tessellata/geomem/control"
	"github.com/tessellata/geomem/pool"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geomem.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := control.DefaultConfig()
	if cfg.MaxIdlePerClass != pool.DefaultMaxIdlePerClass {
		t.Errorf("MaxIdlePerClass = %d", cfg.MaxIdlePerClass)
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want silent default", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "max_idle_per_class: 64\nlog_level: warn\n")
	cfg, err := control.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxIdlePerClass != 64 {
		t.Errorf("MaxIdlePerClass = %d, want 64", cfg.MaxIdlePerClass)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := writeConfig(t, "log_level: error\n")
	cfg, err := control.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxIdlePerClass != pool.DefaultMaxIdlePerClass {
		t.Errorf("MaxIdlePerClass = %d, want default", cfg.MaxIdlePerClass)
	}
}

func TestLoadRejectsNegativeRetention(t *testing.T) {
	path := writeConfig(t, "max_idle_per_class: -5\n")
	_, err := control.Load(path)
	if !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := control.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApply(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.MaxIdlePerClass = 32
	if err := cfg.Apply(); err != nil {
		t.Fatal(err)
	}
	// Restore process defaults for the remaining tests.
	t.Cleanup(func() { _ = control.DefaultConfig().Apply() })
}
