// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"cmp"
	"iter"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool/audio"
	"github.com/ik5/samplepool/buffer"
)

// pendingEntry is a removed sample whose storage is still shared.
type pendingEntry struct {
	buf  *buffer.AudioBuffer
	path string
}

// Pool caches decoded samples keyed by SampleID.
//
// The pool keeps one handle per sample. Accessors hand out clones, which the
// caller must Release when done; a sample cannot be dropped while any such
// clone is live.
type Pool struct {
	samples map[SampleID]*buffer.AudioBuffer
	files   map[SampleID]string
	rates   map[SampleID]int

	pending map[SampleID]pendingEntry
	removed removedSet

	registry     *audio.Registry
	logger       *log.Logger
	expectedRate int
	hashBufSize  int

	mtx *sync.RWMutex
}

// New returns an empty pool.
func New(opts ...Option) *Pool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.fill()

	return &Pool{
		samples:      make(map[SampleID]*buffer.AudioBuffer),
		files:        make(map[SampleID]string),
		rates:        make(map[SampleID]int),
		pending:      make(map[SampleID]pendingEntry),
		removed:      newRemovedSet(maxRemembered),
		registry:     o.registry,
		logger:       o.logger,
		expectedRate: o.expectedRate,
		hashBufSize:  o.hashBufSize,
		mtx:          &sync.RWMutex{},
	}
}

// Registry returns the decoders the pool opens files with.
func (p *Pool) Registry() *audio.Registry { return p.registry }

// insert stores buf under a fresh ID. rate is the sample rate of the file
// buf was decoded from.
func (p *Pool) insert(buf *buffer.AudioBuffer, path string, rate int) SampleID {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.sweepLocked()

	id := NewSampleID()
	p.samples[id] = buf
	p.files[id] = path
	p.rates[id] = rate

	return id
}

// forgetLocked removes id from the live maps without touching its buffer.
func (p *Pool) forgetLocked(id SampleID) {
	delete(p.samples, id)
	delete(p.files, id)
	delete(p.rates, id)
}

// ids returns live IDs ordered by path, then ID.
func (p *Pool) ids() []SampleID {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	ids := slices.Collect(maps.Keys(p.samples))
	slices.SortFunc(ids, func(a, b SampleID) int {
		return cmp.Or(
			cmp.Compare(p.files[a], p.files[b]),
			slices.Compare(a[:], b[:]),
		)
	})

	return ids
}

// Samples yields every live sample with a cloned handle, ordered by source
// path. The pool is not locked while the caller handles a sample, so it may
// add or remove samples from inside the loop; samples removed before they
// are reached are skipped. The caller owns each yielded buffer and must
// Release it.
func (p *Pool) Samples() iter.Seq2[SampleID, *buffer.AudioBuffer] {
	return func(yield func(SampleID, *buffer.AudioBuffer) bool) {
		for _, id := range p.ids() {
			buf, ok := p.Sample(id)
			if !ok {
				continue
			}
			if !yield(id, buf) {
				return
			}
		}
	}
}

// Sample returns a clone of the live sample id. The caller must Release it.
func (p *Pool) Sample(id SampleID) (*buffer.AudioBuffer, bool) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	buf, ok := p.samples[id]
	if !ok {
		return nil, false
	}

	return buf.Clone(), true
}

// Path returns the file the live sample id was loaded from.
func (p *Pool) Path(id SampleID) (string, bool) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	path, ok := p.files[id]
	return path, ok
}

// SampleRate returns the sample rate of the file the live sample id was
// decoded from. Samples are stored at that rate; the pool never resamples.
func (p *Pool) SampleRate(id SampleID) (int, bool) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	rate, ok := p.rates[id]
	return rate, ok
}

// Lookup returns the live samples loaded from path, in ID order. The same
// file can be added more than once.
func (p *Pool) Lookup(path string) []SampleID {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	var ids []SampleID
	for id, src := range p.files {
		if src == path {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b SampleID) int { return slices.Compare(a[:], b[:]) })

	return ids
}

// LookupDir returns the live samples loaded from any file below dir, in path
// order.
func (p *Pool) LookupDir(dir string) []SampleID {
	prefix := filepath.Clean(dir)
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	var ids []SampleID
	for _, id := range p.ids() {
		path, ok := p.Path(id)
		if ok && strings.HasPrefix(path, prefix) {
			ids = append(ids, id)
		}
	}

	return ids
}

// SampleCount returns the number of live samples.
func (p *Pool) SampleCount() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	return len(p.samples)
}

// LiveMemory is the total number of stored samples, over every channel of
// every live sample.
func (p *Pool) LiveMemory() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	total := 0
	for _, buf := range p.samples {
		total += buf.Size()
	}

	return total
}
