// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces 16-bit little-endian stereo PCM, so the stream
// format is fixed at two channels of signed 16-bit integers regardless of
// the channel mode stored in the file. Mono files come out duplicated on
// both channels.
//
// # Usage
//
//	file, _ := os.Open("loop.mp3")
//	stream, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	for v, err := range stream.Ints() {
//	    // v is a signed 16-bit sample
//	}
//
// # Length
//
// Len reports the sample count only when the input implements io.Seeker;
// go-mp3 scans the frames up front in that case. Otherwise Len is -1 and
// the sample count is known only after the stream is consumed.
package mp3
