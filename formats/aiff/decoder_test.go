// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/samplepool/audio"
)

// rate48k is 48000 as an 80-bit IEEE 754 extended float.
var rate48k = [10]byte{0x40, 0x0E, 0xBB, 0x80}

// createAIFF builds a minimal AIFF file with COMM and SSND chunks.
func createAIFF(channels int, samples []int16) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(comm, binary.BigEndian, int16(16))
	comm.Write(rate48k[:])

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		binary.Write(ssnd, binary.BigEndian, s)
	}

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func TestDecoder_Stereo16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 1}
	src, err := Decoder{}.Decode(bytes.NewReader(createAIFF(2, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	want := audio.Format{Channels: 2, SampleRate: 48000, BitDepth: 16, SampleFormat: audio.SampleFormatInt}
	if src.Format() != want {
		t.Errorf("Format() = %+v, want %+v", src.Format(), want)
	}
	if src.Len() != len(samples) {
		t.Errorf("Len() = %d, want %d", src.Len(), len(samples))
	}

	var got []int32
	for v, err := range src.Ints() {
		if err != nil {
			t.Fatalf("Ints() error = %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int32{0, 16384, -16384, 32767, -32768, 1}) {
		t.Errorf("Ints() = %v", got)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createAIFF(1, []int16{5, -5})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Format().Channels != 1 {
		t.Errorf("Channels = %d, want 1", src.Format().Channels)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"text":  []byte("This is not AIFF data"),
		"empty": {},
		"wav":   []byte("RIFF\x24\x00\x00\x00WAVEfmt "),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecoder_FloatsUnsupported(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(createAIFF(1, []int16{1})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for _, err := range src.Floats() {
		if !errors.Is(err, audio.ErrSampleFormat) {
			t.Errorf("Floats() yielded %v, want ErrSampleFormat", err)
		}
	}
}
