// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"hash/crc32"
	"io/fs"
	"slices"
)

// Manifest is a fingerprinted list of sample sources.
type Manifest struct {
	// Hash is the aggregate CRC-32 over every entry, in path order.
	Hash    uint32  `json:"aggregate_hash" yaml:"aggregate_hash"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// New sorts a copy of entries by path and computes the aggregate hash, so
// the same set of entries always produces the same manifest.
func New(entries []Entry) *Manifest {
	sorted := append(make([]Entry, 0, len(entries)), entries...)
	slices.SortStableFunc(sorted, compareEntries)

	return &Manifest{
		Hash:    AggregateHash(sorted),
		Entries: sorted,
	}
}

func compareEntries(a, b Entry) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Hash, b.Hash),
		cmp.Compare(a.Size, b.Size),
	)
}

// AggregateHash hashes entries in the order given.
func AggregateHash(entries []Entry) uint32 {
	h := crc32.NewIEEE()

	var scratch []byte
	for _, e := range entries {
		scratch = e.appendCanonical(scratch[:0])
		h.Write(scratch)
	}

	return h.Sum32()
}

// Len returns the number of entries.
func (m *Manifest) Len() int { return len(m.Entries) }

// Verify recomputes the aggregate hash. It fails with ErrHashMismatch when
// the entries were edited or reordered after the manifest was built.
func (m *Manifest) Verify() error {
	for i, e := range m.Entries {
		if e.Path == "" {
			return fmt.Errorf("entry %d: %w", i, ErrMalformedEntry)
		}
	}

	if got := AggregateHash(m.Entries); got != m.Hash {
		return fmt.Errorf("%w: stored %08x, computed %08x", ErrHashMismatch, m.Hash, got)
	}

	return nil
}

// Stale re-hashes every entry's file and returns the entries whose content
// changed or whose file no longer exists. Other I/O failures abort the
// check.
func (m *Manifest) Stale(buf []byte) ([]Entry, error) {
	var stale []Entry

	for _, e := range m.Entries {
		sum, _, err := HashFile(e.Path, buf)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, e)
		case err != nil:
			return nil, err
		case sum != e.Hash:
			stale = append(stale, e)
		}
	}

	return stale, nil
}
