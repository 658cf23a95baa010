// SPDX-License-Identifier: EPL-2.0

package samplepool

import (
	"fmt"

	"github.com/ik5/samplepool/internal/config"
	"github.com/ik5/samplepool/manifest"
	"github.com/ik5/samplepool/pool"
)

// envOptions turns the SAMPLEPOOL_* environment into pool options placed
// before opts, so opts win.
func envOptions(opts []pool.Option) ([]pool.Option, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return append(cfg.PoolOptions(nil), opts...), nil
}

// LoadDir builds a pool from every supported file below dir. Files that
// fail to load are logged and skipped.
func LoadDir(dir string, opts ...pool.Option) (*pool.Pool, error) {
	opts, err := envOptions(opts)
	if err != nil {
		return nil, err
	}

	return pool.FromDir(dir, opts...)
}

// LoadManifest reads the manifest at path and loads every file it lists.
// Any file that fails to load aborts the whole load.
func LoadManifest(path string, opts ...pool.Option) (*pool.Pool, error) {
	opts, err := envOptions(opts)
	if err != nil {
		return nil, err
	}

	m, err := manifest.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}

	return pool.FromManifest(m, opts...)
}
