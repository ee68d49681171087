// Package config loads the clipb configuration file. The configuration is
// read once at startup and treated as immutable for the process lifetime;
// a missing or unparseable file silently falls back to defaults.
package config

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ElijahMwambazi/clipb/internal/clipfs"
)

// FileName is the config file path relative to the clipb state directory.
const FileName = "config.yaml"

const (
	DefaultMaxHistory     = 200
	DefaultPollIntervalMS = 300
)

// Config holds the clipb configuration.
type Config struct {
	// MaxHistory is the retention bound: the maximum number of snapshots
	// kept in history. Oldest entries are evicted first on overflow.
	MaxHistory int `yaml:"max_history"`

	// PollIntervalMS is the clipboard sampling cadence in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		MaxHistory:     DefaultMaxHistory,
		PollIntervalMS: DefaultPollIntervalMS,
	}
}

// Load reads config.yaml from the state directory. Missing file, read
// failure, or parse failure all yield the defaults; non-positive fields are
// replaced per-field. Configuration problems are never fatal.
func Load(fsys *clipfs.ClipFS) Config {
	data, err := fsys.ReadFile(FileName)
	if err != nil {
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}

	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.PollIntervalMS <= 0 {
		cfg.PollIntervalMS = DefaultPollIntervalMS
	}

	return cfg
}

// PollInterval returns the sampling cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
