package demo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestLoadConfigLayers(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "navigator.toml")
	body := "mode = \"stack\"\n\n[navbar]\nwidth = 300\n\n[animation]\nduration = \"200ms\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("NAVIGATOR_LANGUAGE", "de")
	cfg, err := LoadConfig(testFlags(t, "--config", path, "--navbar-hidden"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.ResolvedMode() != navigator.ModeStack {
		t.Fatalf("mode mismatch: %s", cfg.Mode)
	}
	if cfg.NavBar.Width != 300 || !cfg.NavBar.Hidden {
		t.Fatalf("navbar mismatch: %+v", cfg.NavBar)
	}
	if cfg.Language != "de" {
		t.Fatalf("env override mismatch: %s", cfg.Language)
	}
	if cfg.Animation.Duration != 200*time.Millisecond {
		t.Fatalf("duration mismatch: %v", cfg.Animation.Duration)
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(testFlags(t, "--mode", "split"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ResolvedMode() != navigator.ModeSplit || cfg.Language != "en" {
		t.Fatalf("config mismatch: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidMode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := LoadConfig(testFlags(t, "--mode", "tabs"))
	if !navigator.IsInfrastructureError(err) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
