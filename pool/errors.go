// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrFileError means the file could not be opened or read.
	ErrFileError = errors.New("cannot read sample file")
	// ErrFormatError means the file is not a well-formed audio container.
	ErrFormatError = errors.New("malformed audio file")
	// ErrInvalidFormat means the sample format and bit depth pair is not
	// one of 16-bit int, 24-bit int or 32-bit float.
	ErrInvalidFormat = errors.New("unsupported sample format")
	// ErrInvalidChannelCount means the file is neither mono nor stereo.
	ErrInvalidChannelCount = errors.New("unsupported channel count")
	// ErrEmptySample means decoding produced no samples.
	ErrEmptySample = errors.New("sample has no audio data")

	ErrNoDecoder = errors.New("no decoder registered for extension")
)

// SampleError reports why a file could not be added. Both Kind and Err
// match with errors.Is.
type SampleError struct {
	Path string
	// Kind is one of the sentinel errors above.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *SampleError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}

	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *SampleError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func sampleError(path string, kind, err error) error {
	return &SampleError{Path: path, Kind: kind, Err: err}
}
