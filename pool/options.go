// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/formats"
	"github.com/ik5/samplepool/manifest"
)

// DefaultSampleRate is the rate samples are expected to be recorded at.
const DefaultSampleRate = 48000

type options struct {
	registry     *audio.Registry
	logger       *log.Logger
	expectedRate int
	hashBufSize  int
}

func defaultOptions() options {
	return options{
		expectedRate: DefaultSampleRate,
		hashBufSize:  manifest.DefaultHashBufferSize,
	}
}

// Option configures a Pool.
type Option func(*options)

// WithRegistry sets the decoders used to open files. Only files whose
// extension is registered are picked up by AddSamples.
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger for warnings about tolerated problems.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithExpectedSampleRate sets the rate files are compared against. A
// mismatch is logged, never rejected. Zero disables the check.
func WithExpectedSampleRate(hz int) Option {
	return func(o *options) { o.expectedRate = hz }
}

// WithHashBufferSize sets the read buffer size used by BuildManifest.
func WithHashBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.hashBufSize = n
		}
	}
}

func (o *options) fill() {
	if o.registry == nil {
		o.registry = formats.DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
}
