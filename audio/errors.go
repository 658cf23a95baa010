// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrSampleFormat = errors.New("stream does not produce this sample format")
)
