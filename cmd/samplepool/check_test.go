// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ik5/samplepool/internal/audiotest"
	"github.com/ik5/samplepool/manifest"
)

func TestCheckManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kick := audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(16, 0))
	snare := audiotest.WriteWAV16(t, dir, "snare.wav", 48000, 1, audiotest.Ramp16(16, 5))
	hat := audiotest.WriteWAV16(t, dir, "hat.wav", 48000, 1, audiotest.Ramp16(16, 9))

	m, err := quietPool(t, dir).BuildManifest()
	if err != nil {
		t.Fatal(err)
	}

	stale, err := checkManifest(m, 64)
	if err != nil || len(stale) != 0 {
		t.Fatalf("fresh manifest: stale = %v, err = %v", stale, err)
	}

	var out bytes.Buffer
	printStale(&out, m, stale)
	if !strings.HasPrefix(out.String(), "3 entries up to date") {
		t.Errorf("printStale() = %q", out.String())
	}

	audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(16, 100))
	if err := os.Remove(hat); err != nil {
		t.Fatal(err)
	}

	stale, err = checkManifest(m, 64)
	if err != nil {
		t.Fatalf("checkManifest() error = %v", err)
	}
	if len(stale) != 2 || stale[0].Path != hat || stale[1].Path != kick {
		t.Errorf("stale = %v, want hat and kick", stale)
	}

	out.Reset()
	printStale(&out, m, stale)
	if strings.Contains(out.String(), snare) {
		t.Errorf("unchanged file reported stale: %q", out.String())
	}
}

func TestCheckManifest_Tampered(t *testing.T) {
	t.Parallel()

	m := manifest.New([]manifest.Entry{{Path: "a.wav", Name: "a", Size: 1, Hash: 1}})
	m.Entries[0].Size = 2

	if _, err := checkManifest(m, 64); !errors.Is(err, manifest.ErrHashMismatch) {
		t.Errorf("checkManifest() error = %v, want ErrHashMismatch", err)
	}
}
