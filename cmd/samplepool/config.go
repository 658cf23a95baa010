// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool/internal/config"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "samplepool"

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"dir":           "sample_dir",
	"manifest":      "manifest",
	"expected-rate": "expected_sample_rate",
	"hash-buffer":   "hash_buffer_size",
	"debug":         "debug",
}

func bindFlags(flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

// setup resolves the settings once per invocation. Flags win over the
// config file, which wins over SAMPLEPOOL_* variables.
func setup(_ *cobra.Command, _ []string) error {
	base, err := config.Load()
	if err != nil {
		return err
	}

	var dirs []string
	if configFile == "" {
		if dirs, err = configDirs(); err != nil {
			return err
		}
	}

	c, err := readConfig(viper.GetViper(), base, configFile, dirs)
	if err != nil {
		return err
	}

	cfg = c
	logger = cfg.Logger(os.Stderr)
	log.SetDefault(logger)

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("Using configuration file", "path", used)
	}

	return nil
}

func configDirs() ([]string, error) {
	scope := gap.NewScope(gap.User, appName)
	dirs, err := scope.ConfigDirs()
	if err != nil {
		return nil, fmt.Errorf("could not find configuration directory: %w", err)
	}

	if c := os.Getenv("SAMPLEPOOL_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}
	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, appName)}, dirs...)
	}

	return dirs, nil
}

// readConfig layers file (or the first samplepool.yml found in dirs) over
// base. A missing file in dirs is not an error; a missing explicit file is.
func readConfig(v *viper.Viper, base config.Config, file string, dirs []string) (config.Config, error) {
	v.SetDefault("expected_sample_rate", base.ExpectedSampleRate)
	v.SetDefault("hash_buffer_size", base.HashBufferSize)
	v.SetDefault("sample_dir", base.SampleDir)
	v.SetDefault("manifest", base.ManifestPath)
	v.SetDefault("debug", base.Debug)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		for _, d := range dirs {
			v.AddConfigPath(d)
		}
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var out config.Config
	if err := v.Unmarshal(&out); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := out.Validate(); err != nil {
		return config.Config{}, err
	}

	return out, nil
}
