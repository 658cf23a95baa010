// SPDX-License-Identifier: EPL-2.0

package pool

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// AddSamples walks dir recursively and adds every file with a registered
// extension, in lexical path order. A file that fails to load is logged and
// skipped. A dir that does not exist or is not a directory yields no
// samples. The walk itself stops on the first unreadable directory; the
// IDs added before that point are returned with the error.
func (p *Pool) AddSamples(dir string) ([]SampleID, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		p.logger.Warn("not a directory, nothing to scan", "dir", dir)
		return nil, nil
	}

	var ids []SampleID
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !p.registry.Supports(path) {
			return nil
		}

		id, err := p.AddSample(path)
		if err != nil {
			p.logger.Warn("skipping file", "path", path, "err", err)
			return nil
		}

		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return ids, fmt.Errorf("%w: scanning %s: %w", ErrFileError, dir, err)
	}

	return ids, nil
}

// FromDir returns a pool holding every loadable sample under dir.
func FromDir(dir string, opts ...Option) (*Pool, error) {
	p := New(opts...)

	if _, err := p.AddSamples(dir); err != nil {
		p.release()
		return nil, err
	}

	return p, nil
}
