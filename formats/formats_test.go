// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"slices"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav", "wave"}
	if got := r.Extensions(); !slices.Equal(got, want) {
		t.Errorf("Extensions() = %v, want %v", got, want)
	}

	for _, path := range []string{"a.WAV", "b.aif", "c.mp3", "d.ogg"} {
		if !r.Supports(path) {
			t.Errorf("Supports(%q) = false", path)
		}
	}
	if r.Supports("e.flac") {
		t.Error("Supports(\"e.flac\") = true")
	}
}

func TestWAVOnly(t *testing.T) {
	t.Parallel()

	r := WAVOnly()
	if !slices.Equal(r.Extensions(), []string{"wav"}) {
		t.Errorf("Extensions() = %v, want [wav]", r.Extensions())
	}
}
