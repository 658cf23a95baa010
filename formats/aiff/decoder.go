// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/internal/intstream"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.Format() == nil || dec.NumChans == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF sample data is always big-endian signed integers.
	format := audio.Format{
		Channels:     int(dec.NumChans),
		SampleRate:   dec.SampleRate,
		BitDepth:     int(dec.BitDepth),
		SampleFormat: audio.SampleFormatInt,
	}

	return intstream.New(dec, format, int(dec.NumSampleFrames)*int(dec.NumChans)), nil
}
