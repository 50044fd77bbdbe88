package navigator

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the file representation of a navigation container's settings.
//
// Example:
//
//	mode = "auto"
//	language = "de"
//
//	[navbar]
//	width = 280
//	min_width = 200
//	max_width = 360
//	hidden = false
//
//	[content]
//	min_width = 300
//
//	[animation]
//	duration = "400ms"
//	opacity_duration = "150ms"
//	disabled = false
type Config struct {
	Mode             string          `toml:"mode" mapstructure:"mode"`
	Language         string          `toml:"language" mapstructure:"language"`
	LegacyBreakpoint bool            `toml:"legacy_breakpoint" mapstructure:"legacy_breakpoint"`
	AutoHeight       bool            `toml:"auto_height" mapstructure:"auto_height"`
	LogLevel         string          `toml:"log_level" mapstructure:"log_level"`
	NavBar           NavBarConfig    `toml:"navbar" mapstructure:"navbar"`
	Content          ContentConfig   `toml:"content" mapstructure:"content"`
	Animation        AnimationConfig `toml:"animation" mapstructure:"animation"`
}

type NavBarConfig struct {
	Width    float64 `toml:"width" mapstructure:"width"`
	MinWidth float64 `toml:"min_width" mapstructure:"min_width"`
	MaxWidth float64 `toml:"max_width" mapstructure:"max_width"`
	Hidden   bool    `toml:"hidden" mapstructure:"hidden"`
}

type ContentConfig struct {
	MinWidth float64 `toml:"min_width" mapstructure:"min_width"`
}

type AnimationConfig struct {
	Duration        time.Duration `toml:"duration" mapstructure:"duration"`
	OpacityDuration time.Duration `toml:"opacity_duration" mapstructure:"opacity_duration"`
	Disabled        bool          `toml:"disabled" mapstructure:"disabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	t := DefaultTimings()
	return Config{
		Mode:     "auto",
		Language: "en",
		LogLevel: "error",
		Animation: AnimationConfig{
			Duration:        t.Transition,
			OpacityDuration: t.Opacity,
		},
	}
}

// LoadConfig decodes a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, NewInfrastructureError("load_config", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, NewInfrastructureError("load_config", fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, NewInfrastructureError("load_config", err)
	}
	return cfg, nil
}

// Validate checks values that cannot be clamped sensibly.
func (c Config) Validate() error {
	if _, ok := ParseMode(c.Mode); !ok {
		return fmt.Errorf("invalid mode %q, want auto, stack or split", c.Mode)
	}
	if c.NavBar.MinWidth < 0 || c.NavBar.MaxWidth < 0 || c.NavBar.Width < 0 || c.Content.MinWidth < 0 {
		return fmt.Errorf("widths must not be negative")
	}
	if c.NavBar.MaxWidth > 0 && c.NavBar.MinWidth > c.NavBar.MaxWidth {
		return fmt.Errorf("navbar min_width %.0f exceeds max_width %.0f", c.NavBar.MinWidth, c.NavBar.MaxWidth)
	}
	if c.Animation.Duration < 0 || c.Animation.OpacityDuration < 0 {
		return fmt.Errorf("animation durations must not be negative")
	}
	return nil
}

// ResolvedMode returns the configured mode, Auto when unset or invalid.
func (c Config) ResolvedMode() Mode {
	m, _ := ParseMode(c.Mode)
	return m
}

// Constraints converts the file settings into layout constraints.
func (c Config) Constraints() Constraints {
	return Constraints{
		NavBarWidth:        c.NavBar.Width,
		NavBarWidthSet:     c.NavBar.Width > 0,
		MinNavBarWidth:     c.NavBar.MinWidth,
		MaxNavBarWidth:     c.NavBar.MaxWidth,
		NavBarRangeSet:     c.NavBar.MinWidth > 0 || c.NavBar.MaxWidth > 0,
		MinContentWidth:    c.Content.MinWidth,
		MinContentWidthSet: c.Content.MinWidth > 0,
		HideNavBar:         c.NavBar.Hidden,
		LegacyBreakpoint:   c.LegacyBreakpoint,
	}
}

// Timings converts the animation settings into transition timings.
func (c Config) Timings() Timings {
	t := DefaultTimings()
	if c.Animation.Duration > 0 {
		t.Transition = c.Animation.Duration
	}
	if c.Animation.OpacityDuration > 0 {
		t.Opacity = c.Animation.OpacityDuration
	}
	if c.Animation.Disabled {
		return t.Instant()
	}
	return t
}
