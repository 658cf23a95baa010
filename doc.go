// SPDX-License-Identifier: EPL-2.0

// Package samplepool keeps decoded audio samples in memory for real-time
// playback.
//
// Files are decoded once, normalized to float32 in [-1, 1] and stored as
// reference-counted channel buffers. Playback code receives cheap clones of
// those buffers; the pool defers removing a sample until every clone has
// been released.
//
// # Loading Samples
//
// The simplest way to fill a pool is to scan a directory:
//
//	p, err := samplepool.LoadDir("kits/808")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for id, buf := range p.Samples() {
//		fmt.Println(id, buf.Channels(), buf.Len())
//		buf.Release()
//	}
//
// LoadDir and LoadManifest read their settings from SAMPLEPOOL_* environment
// variables; explicit pool options override them.
//
// # Supported Formats
//
// Mono or stereo files are accepted when they hold 16-bit or 24-bit integer
// or 32-bit float samples:
//   - WAV via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3 (always 16-bit stereo)
//   - Ogg Vorbis via formats/vorbis (always float)
//
// # Manifests
//
// A pool can be described by a manifest listing every source file with a
// CRC-32 of its content. Manifests are saved as JSON or YAML, optionally
// zstd-compressed, and a pool can be rebuilt from one:
//
//	m, _ := p.BuildManifest()
//	_ = m.Save("kit.json.zst")
//
//	p2, err := samplepool.LoadManifest("kit.json.zst")
//
// # Playback
//
// The playback package adapts pooled buffers to beep streamers and renders
// them to WAV files.
//
// See the individual subpackages for more detailed documentation.
package samplepool
