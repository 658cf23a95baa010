// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize = 44
	// chunkSize is the number of samples encoded per Write call.
	chunkSize = 8192
)

// WriteWAV16 writes interleaved 16-bit PCM.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	return writeSamples(w, formatPCM, sampleRate, channels, 2, samples, func(dst []byte, s int16) {
		binary.LittleEndian.PutUint16(dst, uint16(s))
	})
}

// WriteWAV24 writes interleaved 24-bit PCM. Each value is truncated to its
// low 24 bits.
func WriteWAV24(w io.Writer, sampleRate, channels int, samples []int32) error {
	return writeSamples(w, formatPCM, sampleRate, channels, 3, samples, func(dst []byte, s int32) {
		dst[0] = byte(s)
		dst[1] = byte(s >> 8)
		dst[2] = byte(s >> 16)
	})
}

// WriteWAVFloat32 writes interleaved 32-bit IEEE float samples.
func WriteWAVFloat32(w io.Writer, sampleRate, channels int, samples []float32) error {
	return writeSamples(w, formatIEEEFloat, sampleRate, channels, 4, samples, func(dst []byte, s float32) {
		binary.LittleEndian.PutUint32(dst, math.Float32bits(s))
	})
}

func writeSamples[T any](w io.Writer, tag uint16, sampleRate, channels, width int, samples []T, put func([]byte, T)) error {
	switch {
	case channels < 1:
		return ErrInvalidChannels
	case sampleRate <= 0:
		return ErrInvalidSampleRate
	case len(samples)%channels != 0:
		return ErrPartialFrame
	}

	header := makeHeader(tag, sampleRate, channels, width, len(samples)*width)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*width)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*width]

		for j, s := range chunk {
			put(buf[j*width:(j+1)*width], s)
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

// makeHeader returns the canonical 44-byte RIFF/WAVE header.
func makeHeader(tag uint16, sampleRate, channels, width, dataSize int) []byte {
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], tag)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*channels*width))
	binary.LittleEndian.PutUint16(header[32:34], uint16(channels*width))
	binary.LittleEndian.PutUint16(header[34:36], uint16(width*8))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	return header
}
