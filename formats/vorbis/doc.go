// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Vorbis decodes natively to floating point, so the stream reports a
// 32-bit float format and yields samples from Floats. Samples are
// interleaved in the channel order stored in the file.
//
// # Usage
//
//	file, _ := os.Open("pad.ogg")
//	stream, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	for v, err := range stream.Floats() {
//	    // ...
//	}
//
// Len is known when the input implements io.Seeker and -1 otherwise.
package vorbis
