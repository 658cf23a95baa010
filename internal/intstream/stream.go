// SPDX-License-Identifier: EPL-2.0

// Package intstream adapts go-audio PCM readers to audio.Stream.
package intstream

import (
	"errors"
	"fmt"
	"iter"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/samplepool/audio"
)

// ErrTruncated is yielded when the container ends before its declared length.
var ErrTruncated = errors.New("pcm data shorter than declared")

// DefaultChunk is the number of samples requested per PCMBuffer call.
const DefaultChunk = 4096

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Stream reads up to Len samples from a Reader.
type Stream struct {
	r      Reader
	format audio.Format
	length int
	buf    *goaudio.IntBuffer
}

// New returns a stream over r. length is the declared number of interleaved
// samples; reading never goes past it.
func New(r Reader, format audio.Format, length int) *Stream {
	return &Stream{
		r:      r,
		format: format,
		length: max(length, 0),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
			Data:   make([]int, DefaultChunk),
		},
	}
}

func (s *Stream) Format() audio.Format { return s.format }
func (s *Stream) Len() int             { return s.length }

// Close is a no-op; the caller owns the underlying reader.
func (s *Stream) Close() error { return nil }

func (s *Stream) Ints() iter.Seq2[int32, error] {
	if s.format.SampleFormat != audio.SampleFormatInt {
		return audio.IntsUnsupported()
	}

	bits := s.format.BitDepth
	return func(yield func(int32, error) bool) {
		for v, err := range s.raw() {
			if !yield(signExtend(v, bits), err) {
				return
			}
		}
	}
}

func (s *Stream) Floats() iter.Seq2[float32, error] {
	if s.format.SampleFormat != audio.SampleFormatFloat || s.format.BitDepth != 32 {
		return audio.FloatsUnsupported()
	}

	return func(yield func(float32, error) bool) {
		for v, err := range s.raw() {
			if !yield(math.Float32frombits(uint32(v)), err) {
				return
			}
		}
	}
}

// raw yields decoder values until the declared length is consumed. A short
// read is reported once as ErrTruncated.
func (s *Stream) raw() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		remaining := s.length
		for remaining > 0 {
			s.buf.Data = s.buf.Data[:min(cap(s.buf.Data), remaining)]

			n, err := s.r.PCMBuffer(s.buf)
			for _, v := range s.buf.Data[:n] {
				if !yield(v, nil) {
					return
				}
			}
			remaining -= n

			if err != nil {
				yield(0, fmt.Errorf("reading pcm: %w", err))
				return
			}
			if n == 0 {
				yield(0, ErrTruncated)
				return
			}
		}
	}
}

// signExtend narrows v to bits, whether the decoder handed it back signed or
// as the raw unsigned word. 8-bit PCM is unsigned and is returned unchanged.
func signExtend(v, bits int) int32 {
	switch bits {
	case 16, 24:
		shift := 32 - bits
		return int32(v<<shift) >> shift
	default:
		return int32(v)
	}
}
