package navigator

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navigator.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mode = "split"
language = "de"

[navbar]
min_width = 200
max_width = 360
hidden = true

[content]
min_width = 300

[animation]
duration = "250ms"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ResolvedMode() != ModeSplit || cfg.Language != "de" {
		t.Fatalf("config mismatch: %+v", cfg)
	}

	c := cfg.Constraints()
	if !c.NavBarRangeSet || !c.MinContentWidthSet || !c.HideNavBar || c.NavBarWidthSet {
		t.Fatalf("constraints flags mismatch: %+v", c)
	}
	if c.Breakpoint() != 500 {
		t.Fatalf("breakpoint mismatch: %v", c.Breakpoint())
	}

	timings := cfg.Timings()
	if timings.Transition != 250*time.Millisecond || timings.Opacity != DefaultTimings().Opacity {
		t.Fatalf("timings mismatch: %+v", timings)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour = \"red\"\n",
		"invalid mode": "mode = \"tabs\"\n",
		"range":        "[navbar]\nmin_width = 400\nmax_width = 300\n",
		"syntax":       "mode = \n",
	}
	for name, body := range cases {
		_, err := LoadConfig(writeConfig(t, body))
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !IsInfrastructureError(err) {
			t.Fatalf("%s: expected infrastructure error, got %T", name, err)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file: expected error")
	}
}

func TestConfigDisabledAnimation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Disabled = true
	timings := cfg.Timings()
	if timings.Transition != 0 || timings.Opacity != 0 || timings.ModeChange != 0 {
		t.Fatalf("disabled animation should be instant: %+v", timings)
	}
	if cfg.ResolvedMode() != ModeAuto {
		t.Fatalf("default mode mismatch: %s", cfg.ResolvedMode())
	}
}
