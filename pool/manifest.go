// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"fmt"

	"github.com/ik5/samplepool/manifest"
)

// BuildManifest hashes the source file of every live sample and pairs it
// with the stored sample count. Files are read again on every call.
func (p *Pool) BuildManifest() (*manifest.Manifest, error) {
	type tracked struct {
		path string
		size int
	}

	p.mtx.RLock()
	files := make([]tracked, 0, len(p.files))
	for id, path := range p.files {
		files = append(files, tracked{path: path, size: p.samples[id].Size()})
	}
	p.mtx.RUnlock()

	buf := make([]byte, p.hashBufSize)
	entries := make([]manifest.Entry, 0, len(files))

	for _, f := range files {
		sum, _, err := manifest.HashFile(f.path, buf)
		if err != nil {
			return nil, sampleError(f.path, ErrFileError, err)
		}

		entries = append(entries, manifest.Entry{
			Path: f.path,
			Size: uint64(f.size),
			Name: manifest.DisplayName(f.path),
			Hash: sum,
		})
	}

	return manifest.New(entries), nil
}

// FromManifest builds a pool by loading every entry's path again. The
// recorded hashes are not used to skip work. The first entry that fails to
// load aborts the whole reconstruction.
func FromManifest(m *manifest.Manifest, opts ...Option) (*Pool, error) {
	p := New(opts...)

	for i, e := range m.Entries {
		if _, err := p.AddSample(e.Path); err != nil {
			p.release()
			return nil, fmt.Errorf("manifest entry %d: %w", i, err)
		}
	}

	return p, nil
}

// release drops the pool's handles. Used when a pool under construction is
// discarded.
func (p *Pool) release() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	for id, buf := range p.samples {
		buf.Release()
		p.forgetLocked(id)
	}
}
