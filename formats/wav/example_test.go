// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/samplepool/formats/wav"
)

// Example_roundTrip writes a stereo float WAV and decodes it again.
func Example_roundTrip() {
	output := new(bytes.Buffer)
	if err := wav.WriteWAVFloat32(output, 48000, 2, []float32{0.5, -0.5, 0.25, -0.25}); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	stream, err := wav.Decoder{}.Decode(output)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	defer stream.Close()

	f := stream.Format()
	fmt.Printf("%d Hz, %d channels, %d-bit %s\n", f.SampleRate, f.Channels, f.BitDepth, f.SampleFormat)

	for v, err := range stream.Floats() {
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			return
		}
		fmt.Println(v)
	}
	// Output:
	// 48000 Hz, 2 channels, 32-bit float
	// 0.5
	// -0.5
	// 0.25
	// -0.25
}

// Example_errorNotWAV shows the error for non-WAV input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("not a wav")))
	fmt.Println(err)
	// Output:
	// not a WAV file
}
