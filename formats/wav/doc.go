// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is delegated to github.com/go-audio/wav, which walks the RIFF
// chunks and locates the fmt and data chunks wherever they appear in the
// file. The returned audio.Stream reports the container's declared format
// and never reads past the data chunk.
//
// # Supported Formats
//
// The decoder recognises:
//   - PCM integer data (format tag 1) at 8, 16, 24 and 32 bits
//   - IEEE float data (format tag 3) at 32 bits
//   - WAVE_FORMAT_EXTENSIBLE integer data at 16 and 24 bits
//
// Other format tags decode to audio.SampleFormatUnknown; callers decide
// whether to reject them.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("kick.wav")
//	stream, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	for v, err := range stream.Ints() {
//	    // v is the raw signed sample
//	}
//
// Integer streams yield raw signed values from Ints; float streams yield
// from Floats. Asking for the other representation yields
// audio.ErrSampleFormat.
//
// # Writing WAV Files
//
// WriteWAV16, WriteWAV24 and WriteWAVFloat32 write a canonical 44-byte
// header followed by interleaved samples:
//
//	file, _ := os.Create("out.wav")
//	err := wav.WriteWAVFloat32(file, 48000, 2, interleaved)
//
// Samples are encoded in fixed-size chunks, so memory use does not grow
// with the length of the file.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrMissingData: no data chunk was found
//   - ErrInvalidChannels, ErrInvalidSampleRate, ErrPartialFrame: rejected
//     writer arguments
package wav
