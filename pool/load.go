// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"iter"
	"os"
	"slices"

	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/buffer"
	"github.com/ik5/samplepool/utils"
)

// AddSample decodes the file at path and stores it under a new ID.
//
// 16-bit and 24-bit integer data is scaled into [-1, 1]; 32-bit float data
// is stored as is. Mono files become mono buffers and stereo files are
// split into two channels. On error the pool is left unchanged and the
// error is a *SampleError.
func (p *Pool) AddSample(path string) (SampleID, error) {
	buf, rate, err := p.load(path)
	if err != nil {
		return SampleID{}, err
	}

	return p.insert(buf, path, rate), nil
}

// load decodes path and returns the buffer with the file's sample rate.
func (p *Pool) load(path string) (*buffer.AudioBuffer, int, error) {
	dec, ok := p.registry.Lookup(path)
	if !ok {
		return nil, 0, sampleError(path, ErrFormatError, ErrNoDecoder)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, sampleError(path, ErrFileError, err)
	}
	defer f.Close()

	stream, err := dec.Decode(f)
	if err != nil {
		return nil, 0, sampleError(path, ErrFormatError, err)
	}
	defer stream.Close()

	buf, err := p.materialize(path, stream)
	if err != nil {
		return nil, 0, err
	}

	return buf, stream.Format().SampleRate, nil
}

// materialize checks the stream format, then decodes it into an
// AudioBuffer.
func (p *Pool) materialize(path string, stream audio.Stream) (*buffer.AudioBuffer, error) {
	format := stream.Format()

	dropped := 0
	seq, ok := normalize(stream, &dropped)
	if !ok {
		return nil, sampleError(path, ErrInvalidFormat, nil)
	}

	if p.expectedRate > 0 && format.SampleRate != p.expectedRate {
		p.logger.Warn("sample rate mismatch", "path", path, "expected", p.expectedRate, "got", format.SampleRate)
	}

	if format.Channels != 1 && format.Channels != 2 {
		return nil, sampleError(path, ErrInvalidChannelCount, nil)
	}

	samples := collect(seq, stream.Len())

	if dropped > 0 {
		p.logger.Warn("dropped undecodable samples", "path", path, "dropped", dropped)
	}

	var buf *buffer.AudioBuffer
	if format.Channels == 1 {
		buf = buffer.FromMono(samples)
	} else {
		buf = buffer.FromStereoInterleaved(samples)
		samples.Release()
	}

	if buf.IsEmpty() {
		buf.Release()
		return nil, sampleError(path, ErrEmptySample, nil)
	}

	return buf, nil
}

// normalize picks the conversion for the stream's sample format and bit
// depth. Samples the decoder fails on are skipped and counted in dropped.
func normalize(stream audio.Stream, dropped *int) (iter.Seq[float32], bool) {
	format := stream.Format()

	switch {
	case format.SampleFormat == audio.SampleFormatFloat && format.BitDepth == 32:
		return skipErrors(stream.Floats(), func(v float32) float32 { return v }, dropped), true
	case format.SampleFormat == audio.SampleFormatInt && format.BitDepth == 16:
		return skipErrors(stream.Ints(), utils.Int16ToFloat32, dropped), true
	case format.SampleFormat == audio.SampleFormatInt && format.BitDepth == 24:
		return skipErrors(stream.Ints(), utils.Int24ToFloat32, dropped), true
	default:
		return nil, false
	}
}

func skipErrors[T int32 | float32](src iter.Seq2[T, error], conv func(T) float32, dropped *int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for v, err := range src {
			if err != nil {
				*dropped++
				continue
			}
			if !yield(conv(v)) {
				return
			}
		}
	}
}

// collect fills one shared buffer from seq. When the container declared its
// length the storage is allocated once at that size.
func collect(seq iter.Seq[float32], declared int) *buffer.SharedBuffer {
	if declared >= 0 {
		return buffer.FromSeq(seq, declared)
	}

	return buffer.FromOwned(slices.Collect(seq))
}
