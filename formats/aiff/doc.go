// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// The decoder wraps github.com/go-audio/aiff and exposes the file as an
// audio.Stream of signed integer samples. The sample count comes from the
// COMM chunk (frames times channels), so reading stops at the end of the
// sound data even when further chunks follow it.
//
// # Usage
//
//	file, _ := os.Open("snare.aiff")
//	stream, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	for v, err := range stream.Ints() {
//	    // ...
//	}
//
// Readers that do not implement io.Seeker are buffered into memory first,
// since go-audio needs to seek between chunks.
package aiff
