// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
	"github.com/ik5/samplepool/buffer"
)

var (
	// ErrClosed is returned by Seek after Close.
	ErrClosed = errors.New("streamer closed")
	// ErrSeekRange is returned for positions outside [0, Len()].
	ErrSeekRange = errors.New("seek position out of range")
)

// Streamer plays an AudioBuffer. Mono samples are copied to both
// channels and a stereo pair of unequal length stops at the shorter one.
type Streamer struct {
	buf      *buffer.AudioBuffer
	left     []float32
	right    []float32
	position int
}

var _ beep.StreamSeekCloser = (*Streamer)(nil)

// New clones buf; the caller keeps ownership of buf itself.
func New(buf *buffer.AudioBuffer) *Streamer {
	return Adopt(buf.Clone())
}

// Adopt takes ownership of buf. Close releases it.
func Adopt(buf *buffer.AudioBuffer) *Streamer {
	n := buf.Len()
	return &Streamer{buf: buf, left: buf.Left()[:n], right: buf.Right()[:n]}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.buf == nil || s.position >= len(s.left) {
		return 0, false
	}

	n := min(len(samples), len(s.left)-s.position)
	for i := range n {
		samples[i][0] = float64(s.left[s.position+i])
		samples[i][1] = float64(s.right[s.position+i])
	}
	s.position += n

	return n, true
}

func (s *Streamer) Err() error { return nil }

// Len is the length in frames.
func (s *Streamer) Len() int { return len(s.left) }

func (s *Streamer) Position() int { return s.position }

func (s *Streamer) Seek(p int) error {
	if s.buf == nil {
		return ErrClosed
	}
	if p < 0 || p > len(s.left) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeekRange, p, len(s.left))
	}

	s.position = p
	return nil
}

// Close releases the clone. It is safe to call more than once.
func (s *Streamer) Close() error {
	if s.buf == nil {
		return nil
	}

	s.buf.Release()
	s.buf, s.left, s.right = nil, nil, nil
	s.position = 0

	return nil
}

// RenderOptions controls Render.
type RenderOptions struct {
	SampleRate int
	// Precision is the output width in bytes: 1, 2 or 3. Zero means 2.
	Precision int
	// Gain is added to unity, so 0 leaves the signal unchanged and -1
	// silences it.
	Gain float64
}

// Render encodes buf as a stereo WAV file into w.
func Render(w io.WriteSeeker, buf *buffer.AudioBuffer, opts RenderOptions) error {
	if opts.SampleRate <= 0 {
		return fmt.Errorf("rendering: invalid sample rate %d", opts.SampleRate)
	}
	if opts.Precision == 0 {
		opts.Precision = 2
	}

	s := New(buf)
	defer s.Close()

	var src beep.Streamer = s
	if opts.Gain != 0 {
		src = &effects.Gain{Streamer: s, Gain: opts.Gain}
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(opts.SampleRate),
		NumChannels: 2,
		Precision:   opts.Precision,
	}
	if err := wav.Encode(w, src, format); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return nil
}
