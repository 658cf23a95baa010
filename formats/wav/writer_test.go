// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+len(samples)*2 {
		t.Fatalf("file size = %d, want %d", len(data), headerSize+len(samples)*2)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), uint32(36 + 8)},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"format tag", uint32(binary.LittleEndian.Uint16(data[20:22])), formatPCM},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 44100 * 2 * 2},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 8},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for _, marker := range []struct {
		off  int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[marker.off : marker.off+4]); got != marker.want {
			t.Errorf("marker at %d = %q, want %q", marker.off, got, marker.want)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != headerSize {
		t.Errorf("WAV file size = %d, want %d (header only)", buf.Len(), headerSize)
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, []int16{0x0102, -2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	if got := buf.Bytes()[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
}

func TestWriteWAV24_Payload(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV24(buf, 48000, 1, []int32{0x010203, -1}); err != nil {
		t.Fatalf("WriteWAV24() error = %v", err)
	}

	data := buf.Bytes()
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 24 {
		t.Errorf("bits = %d, want 24", bits)
	}
	want := []byte{0x03, 0x02, 0x01, 0xFF, 0xFF, 0xFF}
	if got := data[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
}

func TestWriteWAVFloat32_Payload(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAVFloat32(buf, 48000, 1, []float32{0.25}); err != nil {
		t.Fatalf("WriteWAVFloat32() error = %v", err)
	}

	data := buf.Bytes()
	if tag := binary.LittleEndian.Uint16(data[20:22]); tag != formatIEEEFloat {
		t.Errorf("format tag = %d, want %d", tag, formatIEEEFloat)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(data[headerSize:])); got != 0.25 {
		t.Errorf("sample = %v, want 0.25", got)
	}
}

func TestWriteWAV_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		samples    []int16
		want       error
	}{
		{"zero channels", 8000, 0, []int16{1}, ErrInvalidChannels},
		{"zero sample rate", 0, 1, []int16{1}, ErrInvalidSampleRate},
		{"partial frame", 8000, 2, []int16{1, 2, 3}, ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			err := WriteWAV16(buf, tt.sampleRate, tt.channels, tt.samples)
			if !errors.Is(err, tt.want) {
				t.Errorf("WriteWAV16() error = %v, want %v", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("wrote %d bytes on invalid input", buf.Len())
			}
		})
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, io.ErrClosedPipe
	}
	w.after--
	return len(p), nil
}

func TestWriteWAV16_WriteError(t *testing.T) {
	t.Parallel()

	samples := make([]int16, chunkSize*2)

	for _, after := range []int{0, 1, 2} {
		err := WriteWAV16(&failingWriter{after: after}, 8000, 1, samples)
		if !errors.Is(err, io.ErrClosedPipe) {
			t.Errorf("after %d writes: error = %v, want io.ErrClosedPipe", after, err)
		}
	}
}

func TestWriteWAV16_LargeFileRoundTrip(t *testing.T) {
	t.Parallel()

	// Spans several encode chunks.
	samples := make([]int16, chunkSize*3+17)
	for i := range samples {
		samples[i] = int16(i*7 - 30000)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(encode16(t, 22050, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readInts(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != int32(samples[i]) {
			t.Fatalf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 48000*2)
	for i := range samples {
		samples[i] = int16(i)
	}

	b.ReportAllocs()
	for b.Loop() {
		if err := WriteWAV16(io.Discard, 48000, 2, samples); err != nil {
			b.Fatal(err)
		}
	}
}
