// Package config loads library settings from TOML.
//
// A complete file looks like this; every key is optional and falls back to
// [Default]:
//
//	[log]
//	level = "info"      # debug | info | warn | error
//
//	[outcast]
//	workers = 4         # <= 1 computes sequentially
//
//	[metrics]
//	enabled = true
//	namespace = "wordnet"
package config

import (
	"io"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/observability/metrics"
	"github.com/matzehuels/wordnet/pkg/outcast"
)

// maxWorkers caps the outcast worker pool.
const maxWorkers = 1024

var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds the settings of the wordnet libraries.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Outcast OutcastConfig `toml:"outcast"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig selects the logger verbosity.
type LogConfig struct {
	Level string `toml:"level"`
}

// OutcastConfig sizes the outcast worker pool.
type OutcastConfig struct {
	Workers int `toml:"workers"`
}

// MetricsConfig controls the Prometheus hooks.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Outcast: OutcastConfig{Workers: 1},
		Metrics: MetricsConfig{Enabled: false, Namespace: "wordnet"},
	}
}

// Decode reads TOML from r on top of [Default] and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "open config")
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "log.level %q", c.Log.Level)
	}
	if c.Outcast.Workers < 0 || c.Outcast.Workers > maxWorkers {
		return errs.New(errs.ErrCodeInvalidConfig, "outcast.workers %d not in [0, %d]", c.Outcast.Workers, maxWorkers)
	}
	if c.Metrics.Enabled && !namespacePattern.MatchString(c.Metrics.Namespace) {
		return errs.New(errs.ErrCodeInvalidConfig, "metrics.namespace %q is not a valid metric prefix", c.Metrics.Namespace)
	}
	return nil
}

// NewLogger creates a logger writing to w at the configured level.
// Timestamps are formatted as "HH:MM:SS.ms".
func (c Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// OutcastOptions returns finder options using the configured worker count.
func (c Config) OutcastOptions(logger *log.Logger) outcast.Options {
	return outcast.Options{Workers: c.Outcast.Workers, Logger: logger}
}

// InstallMetrics registers Prometheus hooks on reg when metrics are
// enabled and returns them. It returns nil when metrics are disabled.
func (c Config) InstallMetrics(reg prometheus.Registerer) *metrics.Hooks {
	if !c.Metrics.Enabled {
		return nil
	}
	h := metrics.New(reg, c.Metrics.Namespace)
	h.Install()
	return h
}
