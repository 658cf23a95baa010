// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fake decoders and fixture writers for tests.
package audiotest

import (
	"io"
	"iter"

	"github.com/ik5/samplepool/audio"
)

// Value is one element of a fake stream: a sample or a decode fault.
type Value struct {
	Int   int32
	Float float32
	Err   error
}

// Stream is an in-memory audio.Stream.
type Stream struct {
	Fmt    audio.Format
	Values []Value
	// Declared overrides Len; nil means len(Values).
	Declared *int
	Closed   bool
}

// NewIntStream returns a stream of integer samples.
func NewIntStream(format audio.Format, samples ...int32) *Stream {
	s := &Stream{Fmt: format}
	for _, v := range samples {
		s.Values = append(s.Values, Value{Int: v})
	}
	return s
}

// NewFloatStream returns a stream of float samples.
func NewFloatStream(format audio.Format, samples ...float32) *Stream {
	s := &Stream{Fmt: format}
	for _, v := range samples {
		s.Values = append(s.Values, Value{Float: v})
	}
	return s
}

func (s *Stream) Format() audio.Format { return s.Fmt }

func (s *Stream) Len() int {
	if s.Declared != nil {
		return *s.Declared
	}
	return len(s.Values)
}

func (s *Stream) Close() error {
	s.Closed = true
	return nil
}

func (s *Stream) Ints() iter.Seq2[int32, error] {
	if s.Fmt.SampleFormat != audio.SampleFormatInt {
		return audio.IntsUnsupported()
	}

	return func(yield func(int32, error) bool) {
		for _, v := range s.Values {
			if !yield(v.Int, v.Err) {
				return
			}
		}
	}
}

func (s *Stream) Floats() iter.Seq2[float32, error] {
	if s.Fmt.SampleFormat != audio.SampleFormatFloat {
		return audio.FloatsUnsupported()
	}

	return func(yield func(float32, error) bool) {
		for _, v := range s.Values {
			if !yield(v.Float, v.Err) {
				return
			}
		}
	}
}

// Decoder ignores its input and returns Stream, or Err when set.
type Decoder struct {
	Stream *Stream
	Err    error
	Calls  int
}

func (d *Decoder) Decode(r io.Reader) (audio.Stream, error) {
	d.Calls++
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Stream, nil
}

// Format is shorthand for an audio.Format literal.
func Format(channels, sampleRate, bitDepth int, sf audio.SampleFormat) audio.Format {
	return audio.Format{Channels: channels, SampleRate: sampleRate, BitDepth: bitDepth, SampleFormat: sf}
}
