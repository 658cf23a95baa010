// SPDX-License-Identifier: EPL-2.0

// Package formats wires the bundled decoders into an audio.Registry.
package formats

import (
	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/formats/aiff"
	"github.com/ik5/samplepool/formats/mp3"
	"github.com/ik5/samplepool/formats/vorbis"
	"github.com/ik5/samplepool/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

// WAVOnly returns a registry that accepts only WAV files.
func WAVOnly() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})

	return r
}
