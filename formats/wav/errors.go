// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrMissingData       = errors.New("WAV file has no data chunk")
	ErrInvalidChannels   = errors.New("channel count must be at least 1")
	ErrPartialFrame      = errors.New("sample count is not a multiple of the channel count")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrBadExtensible     = errors.New("malformed WAVE_FORMAT_EXTENSIBLE fmt chunk")
)
