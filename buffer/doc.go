// SPDX-License-Identifier: EPL-2.0

// Package buffer provides immutable, reference-counted sample storage.
//
// # SharedBuffer
//
// A SharedBuffer is a handle to a float32 sample array that is never
// written after construction. Handles are cheap to clone and every clone
// aliases the same memory, so decoded audio can be handed to playback or
// processing goroutines without copying and without locks:
//
//	buf := buffer.FromValues(0.1, 0.2, 0.3)
//	view := buf.Clone()  // shared with a consumer
//	buf.IsUnique()       // false
//	view.Release()
//	buf.IsUnique()       // true
//
// Each holder releases its own handle. The reference count is explicit so
// that owners such as the sample pool can tell whether anyone else still
// reads a buffer before dropping it.
//
// FromSeq allocates the final storage once and fills it in place, which is
// the path decoders use when the sample count is known up front.
//
// # AudioBuffer
//
// AudioBuffer composes one (mono) or two (stereo) SharedBuffers behind a
// uniform API:
//
//	mono := buffer.FromMono(buffer.FromValues(1, 2, 3))
//	stereo := buffer.FromStereoInterleaved(buffer.FromValues(1, 2, 3, 4))
//
//	stereo.Left()  // [1 3]
//	stereo.Right() // [2 4]
//	mono.Right()   // same storage as mono.Left()
//
// Len reports playable frames (the shorter channel for stereo) while Size
// reports the total number of stored samples, which is what memory
// accounting uses.
package buffer
