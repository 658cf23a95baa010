// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contract between the sample pool and the audio
// file decoders.
//
// # Stream Interface
//
// A decoder turns a file into a Stream:
//
//	type Stream interface {
//	    Format() Format
//	    Len() int
//	    Ints() iter.Seq2[int32, error]
//	    Floats() iter.Seq2[float32, error]
//	    Close() error
//	}
//
// Format reports the channel count, sample rate, bit depth and whether the
// container stores integer or float samples. Streams hand out raw values:
// integer streams yield the signed sample value exactly as stored (a 16-bit
// file yields values in [-32768, 32767]), float streams yield the stored
// float32. Amplitude normalisation is the consumer's job.
//
// Samples are yielded interleaved (L, R, L, R, ... for stereo). Decode
// faults are yielded as errors alongside a zero value so that the consumer
// decides whether to skip the sample or stop.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("kick.WAV")
//
// Extensions are case-insensitive and may be given with or without the
// leading dot. formats.DefaultRegistry returns a registry with every
// bundled decoder.
package audio
