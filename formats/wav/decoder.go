// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/internal/intstream"
)

// WAVE format tags found in the fmt chunk.
const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

// subFormatSuffix is the tail shared by every KSDATAFORMAT_SUBTYPE GUID. The
// first two bytes hold the plain format tag.
var subFormatSuffix = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// extensibleFmt is a WAVE_FORMAT_EXTENSIBLE fmt chunk.
type extensibleFmt struct {
	Tag           uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	ExtraSize     uint16
	ValidBits     uint16
	ChannelMask   uint32
	SubFormat     [16]byte
}

// sampleFormat maps a fmt chunk tag to how samples are stored. Extensible
// files must be resolved to their sub-format tag first.
func sampleFormat(tag uint16) audio.SampleFormat {
	switch tag {
	case formatPCM:
		return audio.SampleFormatInt
	case formatIEEEFloat:
		return audio.SampleFormatFloat
	default:
		return audio.SampleFormatUnknown
	}
}

// subFormat reads the sub-format tag from the fmt chunk of an extensible
// file. go-audio skips these bytes, so the RIFF chunks are walked again from
// the start. rs is returned to the position it had on entry.
func subFormat(rs io.ReadSeeker) (uint16, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	tag, err := findSubFormat(rs)
	if _, seekErr := rs.Seek(pos, io.SeekStart); err == nil {
		err = seekErr
	}

	return tag, err
}

func findSubFormat(rs io.ReadSeeker) (uint16, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("looking for fmt chunk: %w", err)
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		var f extensibleFmt
		if ch.Size < binary.Size(f) {
			return 0, fmt.Errorf("%w: %d byte fmt chunk", ErrBadExtensible, ch.Size)
		}
		if err := ch.ReadLE(&f); err != nil {
			return 0, fmt.Errorf("reading fmt chunk: %w", err)
		}
		if !bytes.Equal(f.SubFormat[2:], subFormatSuffix) {
			return 0, fmt.Errorf("%w: unknown sub-format %x", ErrBadExtensible, f.SubFormat)
		}

		return binary.LittleEndian.Uint16(f.SubFormat[:2]), nil
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrMissingData
	}

	tag := dec.WavAudioFormat
	if tag == formatExtensible {
		sub, err := subFormat(rs)
		if err != nil {
			return nil, err
		}
		tag = sub
	}

	format := audio.Format{
		Channels:     int(dec.NumChans),
		SampleRate:   int(dec.SampleRate),
		BitDepth:     int(dec.BitDepth),
		SampleFormat: sampleFormat(tag),
	}

	// The PCM chunk reader is not limited to the data chunk, so the stream
	// stops at the declared sample count.
	length := 0
	if bytesPerSample := int(dec.BitDepth) / 8; bytesPerSample > 0 {
		length = dec.PCMChunk.Size / bytesPerSample
	}

	return intstream.New(dec, format, length), nil
}
