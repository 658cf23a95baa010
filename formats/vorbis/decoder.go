// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"iter"

	"github.com/ik5/samplepool/audio"
	"github.com/jfreymuth/oggvorbis"
)

// framesPerRead is the number of frames requested per Read call.
const framesPerRead = 2048

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type stream struct {
	dec    oggReader
	format audio.Format
	buf    []float32
}

func newStream(dec oggReader) *stream {
	ch := max(dec.Channels(), 1)

	return &stream{
		dec: dec,
		format: audio.Format{
			Channels:     dec.Channels(),
			SampleRate:   dec.SampleRate(),
			BitDepth:     32,
			SampleFormat: audio.SampleFormatFloat,
		},
		// oggvorbis wants a multiple of the channel count.
		buf: make([]float32, framesPerRead*ch),
	}
}

func (s *stream) Format() audio.Format { return s.format }
func (s *stream) Close() error         { return nil }

// Len is -1 when oggvorbis cannot tell the length (non-seekable input).
func (s *stream) Len() int {
	frames := s.dec.Length()
	if frames <= 0 {
		return -1
	}
	return int(frames) * s.format.Channels
}

func (s *stream) Ints() iter.Seq2[int32, error] { return audio.IntsUnsupported() }

func (s *stream) Floats() iter.Seq2[float32, error] {
	return func(yield func(float32, error) bool) {
		for {
			// Read returns the number of values decoded, not frames.
			n, err := s.dec.Read(s.buf)
			for _, v := range s.buf[:n] {
				if !yield(v, nil) {
					return
				}
			}

			switch {
			case err == io.EOF:
				return
			case err != nil:
				yield(0, fmt.Errorf("reading vorbis packets: %w", err))
				return
			case n == 0:
				return
			}
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return newStream(dec), nil
}
