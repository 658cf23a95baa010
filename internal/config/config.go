// SPDX-License-Identifier: EPL-2.0

// Package config holds the runtime settings shared by the CLI and the
// convenience loaders. Values come from SAMPLEPOOL_* environment variables;
// the CLI layers a config file and flags on top.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool/manifest"
	"github.com/ik5/samplepool/pool"
)

// EnvPrefix is prepended to every variable name in Config.
const EnvPrefix = "SAMPLEPOOL_"

var (
	ErrInvalidSampleRate = errors.New("expected sample rate must not be negative")
	ErrInvalidHashBuffer = errors.New("hash buffer size must be positive")
)

type Config struct {
	// ExpectedSampleRate is the rate files are checked against. A mismatch
	// is only logged. Zero disables the check.
	ExpectedSampleRate int `env:"EXPECTED_SAMPLE_RATE" envDefault:"48000" mapstructure:"expected_sample_rate"`
	// HashBufferSize is the read size used when hashing files for a
	// manifest.
	HashBufferSize int    `env:"HASH_BUFFER_SIZE" envDefault:"4096" mapstructure:"hash_buffer_size"`
	SampleDir      string `env:"SAMPLE_DIR"                          mapstructure:"sample_dir"`
	ManifestPath   string `env:"MANIFEST"                            mapstructure:"manifest"`
	Debug          bool   `env:"DEBUG"                               mapstructure:"debug"`
}

// Default returns the built-in settings, ignoring the environment.
func Default() Config {
	return Config{
		ExpectedSampleRate: pool.DefaultSampleRate,
		HashBufferSize:     manifest.DefaultHashBufferSize,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads vars instead of the process environment. Keys carry the
// prefix, e.g. "SAMPLEPOOL_DEBUG".
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.ExpectedSampleRate < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.ExpectedSampleRate)
	}
	if c.HashBufferSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHashBuffer, c.HashBufferSize)
	}

	return nil
}

// Level is the log level the settings ask for.
func (c Config) Level() log.Level {
	if c.Debug {
		return log.DebugLevel
	}

	return log.InfoLevel
}

// Logger returns a logger writing to w at Level.
func (c Config) Logger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           c.Level(),
		Prefix:          "samplepool",
		ReportTimestamp: c.Debug,
	})
}

// PoolOptions turns the settings into pool options. logger may be nil, in
// which case the pool keeps its default.
func (c Config) PoolOptions(logger *log.Logger) []pool.Option {
	opts := []pool.Option{
		pool.WithExpectedSampleRate(c.ExpectedSampleRate),
		pool.WithHashBufferSize(c.HashBufferSize),
	}
	if logger != nil {
		opts = append(opts, pool.WithLogger(logger))
	}

	return opts
}
