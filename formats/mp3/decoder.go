// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/samplepool/audio"
)

// go-mp3 always produces 16-bit little-endian stereo PCM.
const (
	channels = 2
	bitDepth = 16
	readSize = 8192
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type stream struct {
	dec    mp3Reader
	format audio.Format
	buf    []byte
}

func newStream(dec mp3Reader) *stream {
	return &stream{
		dec: dec,
		format: audio.Format{
			Channels:     channels,
			SampleRate:   dec.SampleRate(),
			BitDepth:     bitDepth,
			SampleFormat: audio.SampleFormatInt,
		},
		buf: make([]byte, readSize),
	}
}

func (s *stream) Format() audio.Format { return s.format }
func (s *stream) Close() error         { return nil }

// Len is known only when the source was seekable.
func (s *stream) Len() int {
	n := s.dec.Length()
	if n < 0 {
		return -1
	}
	return int(n / 2)
}

func (s *stream) Floats() iter.Seq2[float32, error] { return audio.FloatsUnsupported() }

func (s *stream) Ints() iter.Seq2[int32, error] {
	return func(yield func(int32, error) bool) {
		// carry holds a trailing odd byte between reads.
		carry := 0
		for {
			n, err := s.dec.Read(s.buf[carry:])
			n += carry

			whole := n &^ 1
			for i := 0; i < whole; i += 2 {
				if !yield(int32(int16(binary.LittleEndian.Uint16(s.buf[i:]))), nil) {
					return
				}
			}

			carry = n - whole
			if carry == 1 {
				s.buf[0] = s.buf[whole]
			}

			switch {
			case err == io.EOF:
				return
			case err != nil:
				yield(0, fmt.Errorf("reading mp3 frames: %w", err))
				return
			case n == 0:
				return
			}
		}
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return newStream(dec), nil
}
