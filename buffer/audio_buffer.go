// SPDX-License-Identifier: EPL-2.0

package buffer

import "github.com/ik5/samplepool/utils"

// StereoBuffer is a pair of independent channel handles. L and R may differ
// in length.
type StereoBuffer struct {
	L *SharedBuffer
	R *SharedBuffer
}

// AudioBuffer is either a mono channel or a stereo pair of SharedBuffers.
// The zero value is an empty mono buffer.
type AudioBuffer struct {
	left   *SharedBuffer
	right  *SharedBuffer
	stereo bool
}

// FromMono wraps a single channel.
func FromMono(data *SharedBuffer) *AudioBuffer {
	return &AudioBuffer{left: data}
}

// FromStereoDeinterleaved stores the two channels as given.
func FromStereoDeinterleaved(left, right *SharedBuffer) *AudioBuffer {
	return &AudioBuffer{left: left, right: right, stereo: true}
}

// FromStereoInterleaved splits an interleaved L,R,L,R... buffer into two new
// channels. data is only read; its handle stays with the caller.
func FromStereoInterleaved(data *SharedBuffer) *AudioBuffer {
	samples := data.Samples()
	n := len(samples) / 2

	left := make([]float32, n)
	right := make([]float32, n)
	utils.DeinterleaveStereo(samples, left, right)

	return FromStereoDeinterleaved(FromOwned(left), FromOwned(right))
}

// IntoStereo converts the buffer into a StereoBuffer, consuming b. A mono
// buffer puts the same storage on both sides without copying data.
func (b *AudioBuffer) IntoStereo() StereoBuffer {
	out := StereoBuffer{L: b.left, R: b.right}
	if !b.stereo {
		out.R = b.left.Clone()
	}

	b.left, b.right, b.stereo = nil, nil, false

	return out
}

// Len is the playable length in frames: the raw length for mono and the
// shorter channel for stereo.
func (b *AudioBuffer) Len() int {
	if b.stereo {
		return min(b.left.Len(), b.right.Len())
	}

	return b.left.Len()
}

// Size is the total number of stored samples across all channels.
func (b *AudioBuffer) Size() int {
	if b.stereo {
		return b.left.Len() + b.right.Len()
	}

	return b.left.Len()
}

func (b *AudioBuffer) IsEmpty() bool {
	if b.stereo {
		return b.left.Len() == 0 && b.right.Len() == 0
	}

	return b.left.Len() == 0
}

func (b *AudioBuffer) IsStereo() bool { return b.stereo }

// Channels returns 1 for mono and 2 for stereo.
func (b *AudioBuffer) Channels() int {
	if b.stereo {
		return 2
	}

	return 1
}

// IsUnique reports whether no other holder shares any of the channel
// storage. Stereo buffers need both channels to be unique.
func (b *AudioBuffer) IsUnique() bool {
	if b.left == nil {
		return false
	}
	if b.stereo {
		return b.left.IsUnique() && b.right.IsUnique()
	}

	return b.left.IsUnique()
}

// Left returns a zero-copy view of the left channel, or the only channel for
// mono buffers.
func (b *AudioBuffer) Left() []float32 {
	return b.left.Samples()
}

// Right returns a zero-copy view of the right channel, or the only channel
// for mono buffers.
func (b *AudioBuffer) Right() []float32 {
	if b.stereo {
		return b.right.Samples()
	}

	return b.left.Samples()
}

// Clone returns a new AudioBuffer holding fresh handles to the same storage.
func (b *AudioBuffer) Clone() *AudioBuffer {
	out := &AudioBuffer{stereo: b.stereo}
	if b.left != nil {
		out.left = b.left.Clone()
	}
	if b.right != nil {
		out.right = b.right.Clone()
	}

	return out
}

// Release releases every channel handle held by b.
func (b *AudioBuffer) Release() {
	b.left.Release()
	b.right.Release()
}
