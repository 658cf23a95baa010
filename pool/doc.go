// SPDX-License-Identifier: EPL-2.0

// Package pool caches decoded audio samples in memory.
//
// A Pool loads audio files, normalises them to float32 in [-1, 1] and
// stores each one as a mono or stereo buffer.AudioBuffer under a random
// SampleID. The source path of every sample is tracked next to it so the
// pool can be described by a manifest.Manifest and rebuilt from one later.
//
// # Loading
//
//	p, err := pool.FromDir("samples/")
//	id, err := p.AddSample("extra/kick.wav")
//
// Files are matched by extension against the pool's audio.Registry
// (formats.DefaultRegistry unless WithRegistry is given). Three sample
// encodings are accepted: 16-bit and 24-bit signed integers and 32-bit
// floats. Anything else fails with ErrInvalidFormat. Files with more than
// two channels fail with ErrInvalidChannelCount, and files that decode to
// nothing fail with ErrEmptySample. A sample rate other than the expected
// one (48 kHz by default) is logged and tolerated.
//
// AddSample reports every failure. AddSamples and FromDir log and skip
// files that fail, so one bad file does not stop a scan. Individual
// samples the decoder cannot read are dropped from the buffer and
// counted in a warning.
//
// # Manifests
//
//	m, err := p.BuildManifest()
//	err = m.Save("samples.json")
//	...
//	m, err = manifest.FromFile("samples.json")
//	p, err = pool.FromManifest(m)
//
// BuildManifest hashes every tracked file again. FromManifest decodes every
// entry again and fails on the first entry that cannot be loaded.
//
// # Sharing and removal
//
// Sample and Samples return clones that share storage with the pool.
// Holders must Release them. RemoveSample drops a sample at once when the
// pool holds the only handle. Otherwise the sample is hidden from every
// accessor and becomes StatePendingRemoval; Sweep (run at the start of
// every add or remove) drops it once the last clone is released.
//
// # Concurrency
//
// A Pool is safe for concurrent use. Decoding and hashing happen outside
// the pool lock.
package pool
