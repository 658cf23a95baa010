// SPDX-License-Identifier: EPL-2.0

// Package playback exposes pooled samples as beep streamers, so a sample
// can be mixed, played or rendered back to WAV with the beep toolkit.
//
// A Streamer holds its own clone of the sample; the pool can remove the
// sample while it plays and the storage is freed when the Streamer is
// closed.
package playback
