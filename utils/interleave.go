// SPDX-License-Identifier: EPL-2.0

package utils

const stereoChannels = 2

// DeinterleaveStereo splits an interleaved L,R,L,R... sequence into left and
// right. It writes min(len(src)/2, len(left), len(right)) samples per side and
// returns that count. A trailing odd sample is ignored.
func DeinterleaveStereo(src []float32, left, right []float32) int {
	numSamples := min(len(src)/stereoChannels, len(left), len(right))

	for i := range numSamples {
		left[i] = src[i<<1]
	}

	for i := range numSamples {
		right[i] = src[i<<1+1]
	}

	return numSamples
}

// InterleaveStereo writes left and right into dst as L,R,L,R...
// It writes min(len(left), len(right), len(dst)/2) frames and returns that count.
func InterleaveStereo(left, right []float32, dst []float32) int {
	numSamples := min(len(left), len(right), len(dst)/stereoChannels)

	for i := range numSamples {
		dst[i<<1] = left[i]
	}

	for i := range numSamples {
		dst[i<<1+1] = right[i]
	}

	return numSamples
}

// Deinterleave splits src, interleaved sample-major and channel-minor, into
// len(dst) channel slices. Lengths are clamped to the shortest destination and
// to len(src)/len(dst). Returns the number of samples written per channel.
func Deinterleave(src []float32, dst [][]float32) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	numSamples := len(src) / channels
	for _, ch := range dst {
		numSamples = min(numSamples, len(ch))
	}

	switch channels {
	case 1:
		copy(dst[0], src[:numSamples])
	case 2:
		DeinterleaveStereo(src, dst[0][:numSamples], dst[1][:numSamples])
	default:
		for f := range numSamples {
			baseIdx := f * channels
			for c := range channels {
				dst[c][f] = src[baseIdx+c]
			}
		}
	}

	return numSamples
}

// Interleave is the inverse of Deinterleave. It writes
// min(channel lengths, len(dst)/len(src)) frames into dst and returns that count.
func Interleave(src [][]float32, dst []float32) int {
	channels := len(src)
	if channels == 0 {
		return 0
	}

	numSamples := len(dst) / channels
	for _, ch := range src {
		numSamples = min(numSamples, len(ch))
	}

	switch channels {
	case 1:
		copy(dst, src[0][:numSamples])
	case 2:
		InterleaveStereo(src[0][:numSamples], src[1][:numSamples], dst)
	default:
		for f := range numSamples {
			baseIdx := f * channels
			for c := range channels {
				dst[baseIdx+c] = src[c][f]
			}
		}
	}

	return numSamples
}
