// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"iter"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// SampleFormat tags how a decoder stores individual samples.
type SampleFormat int

const (
	SampleFormatUnknown SampleFormat = iota
	SampleFormatInt
	SampleFormatFloat
)

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatInt:
		return "int"
	case SampleFormatFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Format describes a decoded stream.
type Format struct {
	Channels     int
	SampleRate   int
	BitDepth     int
	SampleFormat SampleFormat
}

// Stream is a decoded audio file.
type Stream interface {
	// Format of the stream as declared by the container.
	Format() Format
	// Len is the declared number of interleaved samples, or -1 when the
	// container does not say.
	Len() int
	// Ints yields raw signed integer samples in interleaved order. A decode
	// fault is yielded as a non-nil error; the sequence may continue after it.
	// Streams with a float sample format yield ErrSampleFormat.
	Ints() iter.Seq2[int32, error]
	// Floats is Ints for float streams.
	Floats() iter.Seq2[float32, error]
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Stream, error)
}

// Registry maps file extensions (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

// normalizeExt lower-cases ext and strips a leading dot.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// Lookup returns the decoder registered for path's extension.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}

	return r.Get(ext)
}

// Supports reports whether path has a registered extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.Lookup(path)
	return ok
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}

// IntsUnsupported is the Ints sequence of a float-only stream.
func IntsUnsupported() iter.Seq2[int32, error] {
	return func(yield func(int32, error) bool) {
		yield(0, ErrSampleFormat)
	}
}

// FloatsUnsupported is the Floats sequence of an integer-only stream.
func FloatsUnsupported() iter.Seq2[float32, error] {
	return func(yield func(float32, error) bool) {
		yield(0, ErrSampleFormat)
	}
}
