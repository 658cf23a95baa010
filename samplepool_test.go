// SPDX-License-Identifier: EPL-2.0

package samplepool

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool/internal/audiotest"
	"github.com/ik5/samplepool/internal/config"
	"github.com/ik5/samplepool/pool"
)

func quiet() pool.Option {
	return pool.WithLogger(log.New(io.Discard))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(64, 0))
	audiotest.WriteWAV16(t, dir, "hats/open.wav", 48000, 2, audiotest.Ramp16(64, 100))

	p, err := LoadDir(dir, quiet())
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if p.SampleCount() != 2 {
		t.Errorf("SampleCount() = %d, want 2", p.SampleCount())
	}
}

func TestLoadDir_UsesEnvironment(t *testing.T) {
	t.Setenv("SAMPLEPOOL_EXPECTED_SAMPLE_RATE", "44100")

	dir := t.TempDir()
	audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(8, 0))

	var logs bytes.Buffer
	if _, err := LoadDir(dir, pool.WithLogger(log.New(&logs))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "sample rate mismatch") {
		t.Errorf("expected a rate warning, got %q", logs.String())
	}

	// Explicit options win over the environment.
	logs.Reset()
	if _, err := LoadDir(dir, pool.WithLogger(log.New(&logs)), pool.WithExpectedSampleRate(48000)); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output %q", logs.String())
	}
}

func TestLoadDir_BadEnvironment(t *testing.T) {
	t.Setenv("SAMPLEPOOL_HASH_BUFFER_SIZE", "0")

	if _, err := LoadDir(t.TempDir()); !errors.Is(err, config.ErrInvalidHashBuffer) {
		t.Errorf("LoadDir() error = %v, want ErrInvalidHashBuffer", err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	audiotest.WriteWAV16(t, dir, "a.wav", 48000, 1, audiotest.Ramp16(32, 0))
	audiotest.WriteWAVFloat(t, dir, "b.wav", 48000, 2, audiotest.Sine(64, 48000, 440))

	p, err := LoadDir(dir, quiet())
	if err != nil {
		t.Fatal(err)
	}
	m, err := p.BuildManifest()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "kit.json")
	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadManifest(path, quiet())
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if loaded.SampleCount() != 2 || loaded.LiveMemory() != p.LiveMemory() {
		t.Errorf("loaded %d samples using %d, want 2 using %d",
			loaded.SampleCount(), loaded.LiveMemory(), p.LiveMemory())
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.json"), quiet())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadManifest() error = %v, want fs.ErrNotExist", err)
	}
}
