package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name; "dark" is the only built-in theme for now.
	Theme string `mapstructure:"theme"`
	// Backend selects the repository backend: "cli" (git subprocess) or
	// "gogit" (in-process go-git, no git binary required).
	Backend string `mapstructure:"backend"`
	// UntrackedFiles is the --untracked-files mode for the CLI backend:
	// "normal", "all", or "no".
	UntrackedFiles string `mapstructure:"untracked_files"`
	// Watch enables the .git filesystem watcher that refreshes the list
	// when the repository state changes.
	Watch bool `mapstructure:"watch"`
	// WatchDebounceMs coalesces bursts of filesystem events.
	WatchDebounceMs int `mapstructure:"watch_debounce_ms"`
	// DebugLog is a file path for debug logging; empty disables it.
	DebugLog string `mapstructure:"debug_log"`
}

// Load reads configuration from ~/.config/gst/config.yaml, overridable via
// GST_* environment variables. A missing config file is fine — defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(configDirectory())
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("GST")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("backend", "cli")
	v.SetDefault("untracked_files", "normal")
	v.SetDefault("watch", true)
	v.SetDefault("watch_debounce_ms", 500)
	v.SetDefault("debug_log", "")
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gst")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gst")
}
