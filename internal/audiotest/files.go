// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/samplepool/formats/wav"
)

// write creates dir/name (and any parent directories) with data.
func write(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}

	return path
}

// WriteWAV16 writes a 16-bit PCM file and returns its path.
func WriteWAV16(tb testing.TB, dir, name string, sampleRate, channels int, samples []int16) string {
	tb.Helper()

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, sampleRate, channels, samples); err != nil {
		tb.Fatal(err)
	}

	return write(tb, dir, name, buf.Bytes())
}

// WriteWAV24 writes a 24-bit PCM file and returns its path.
func WriteWAV24(tb testing.TB, dir, name string, sampleRate, channels int, samples []int32) string {
	tb.Helper()

	var buf bytes.Buffer
	if err := wav.WriteWAV24(&buf, sampleRate, channels, samples); err != nil {
		tb.Fatal(err)
	}

	return write(tb, dir, name, buf.Bytes())
}

// WriteWAVFloat writes a 32-bit float file and returns its path.
func WriteWAVFloat(tb testing.TB, dir, name string, sampleRate, channels int, samples []float32) string {
	tb.Helper()

	var buf bytes.Buffer
	if err := wav.WriteWAVFloat32(&buf, sampleRate, channels, samples); err != nil {
		tb.Fatal(err)
	}

	return write(tb, dir, name, buf.Bytes())
}

// WriteWAV8 writes an unsigned 8-bit PCM file, a format the pool rejects.
func WriteWAV8(tb testing.TB, dir, name string, sampleRate, channels int, samples []uint8) string {
	tb.Helper()

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint16(8))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	return write(tb, dir, name, buf.Bytes())
}

// WriteFile writes arbitrary bytes and returns the path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	return write(tb, dir, name, data)
}

// Sine returns n samples of a sine wave at freq Hz.
func Sine(n, sampleRate int, freq float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate)))
	}
	return out
}

// Ramp16 returns n 16-bit samples counting up from start.
func Ramp16(n int, start int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = start + int16(i)
	}
	return out
}
