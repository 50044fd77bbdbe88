package demo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

// EnvPrefix prefixes every environment override, e.g. NAVIGATOR_NAVBAR_WIDTH.
const EnvPrefix = "NAVIGATOR"

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"mode":          "mode",
	"language":      "language",
	"log-level":     "log_level",
	"navbar-width":  "navbar.width",
	"navbar-hidden": "navbar.hidden",
	"no-animation":  "animation.disabled",
}

// RegisterFlags adds the shared demo flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "Path to a TOML config file")
	fs.StringP("mode", "m", "auto", "Navigation mode: auto, stack or split")
	fs.String("language", "en", "Language of accessibility announcements")
	fs.String("log-level", "error", "Log level: debug, info, warn or error")
	fs.Float64("navbar-width", 0, "Preferred navBar width in layout units")
	fs.Bool("navbar-hidden", false, "Hide the navBar in split mode")
	fs.Bool("no-animation", false, "Finish every transition immediately")
	fs.String("back-device", "", "evdev device to read hardware back key presses from")
}

// LoadConfig merges defaults, the config file, environment variables and
// flags, in increasing priority.
func LoadConfig(fs *pflag.FlagSet) (navigator.Config, error) {
	defaults := navigator.DefaultConfig()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("legacy_breakpoint", defaults.LegacyBreakpoint)
	v.SetDefault("auto_height", defaults.AutoHeight)
	v.SetDefault("navbar.width", defaults.NavBar.Width)
	v.SetDefault("navbar.min_width", defaults.NavBar.MinWidth)
	v.SetDefault("navbar.max_width", defaults.NavBar.MaxWidth)
	v.SetDefault("navbar.hidden", defaults.NavBar.Hidden)
	v.SetDefault("content.min_width", defaults.Content.MinWidth)
	v.SetDefault("animation.duration", defaults.Animation.Duration)
	v.SetDefault("animation.opacity_duration", defaults.Animation.OpacityDuration)
	v.SetDefault("animation.disabled", defaults.Animation.Disabled)

	for flag, key := range flagKeys {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return defaults, err
			}
		}
	}

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "navigator"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "navigator"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return defaults, navigator.NewInfrastructureError("load_config", err)
		}
	}

	cfg := defaults
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, navigator.NewInfrastructureError("load_config", err)
	}
	if err := cfg.Validate(); err != nil {
		return defaults, navigator.NewInfrastructureError("load_config", err)
	}
	return cfg, nil
}
