// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"iter"
	"sync/atomic"
)

// storage is the backing array shared by every SharedBuffer handle cloned
// from the same origin. data is never written after the first handle is
// returned to a caller.
type storage struct {
	data []float32
	refs atomic.Int32
}

// SharedBuffer is a reference-counted handle to an immutable sequence of
// float32 samples. Clone is O(1) and aliases the same storage.
//
// A handle belongs to one holder. Each holder releases its own handle when
// done; the storage is dropped by the garbage collector after the last
// handle goes away.
type SharedBuffer struct {
	st       *storage
	released atomic.Bool
}

func newShared(data []float32) *SharedBuffer {
	st := &storage{data: data}
	st.refs.Store(1)

	return &SharedBuffer{st: st}
}

// FromSlice copies values into new shared storage.
func FromSlice(values []float32) *SharedBuffer {
	data := make([]float32, len(values))
	copy(data, values)

	return newShared(data)
}

// FromValues is FromSlice for literal sample lists.
func FromValues(values ...float32) *SharedBuffer {
	return FromSlice(values)
}

// FromOwned takes ownership of data without copying it. The caller must not
// keep or modify data afterwards.
func FromOwned(data []float32) *SharedBuffer {
	return newShared(data)
}

// FromSeq allocates the final storage for n samples once and fills it in
// place from seq. If seq yields fewer than n samples the buffer is shortened
// to what was produced; values beyond n are ignored.
func FromSeq(seq iter.Seq[float32], n int) *SharedBuffer {
	data := make([]float32, max(n, 0))

	filled := 0
	for v := range seq {
		if filled == len(data) {
			break
		}
		data[filled] = v
		filled++
	}

	return newShared(data[:filled:filled])
}

// Clone returns a new handle sharing the same storage. Cloning a released
// handle panics.
func (b *SharedBuffer) Clone() *SharedBuffer {
	if b.released.Load() {
		panic("buffer: Clone of released SharedBuffer")
	}

	b.st.refs.Add(1)

	return &SharedBuffer{st: b.st}
}

// Release gives up this handle's share of the storage. Calling it more
// than once is a no-op.
func (b *SharedBuffer) Release() {
	if b == nil || !b.released.CompareAndSwap(false, true) {
		return
	}

	b.st.refs.Add(-1)
}

// Released reports whether Release was called on this handle.
func (b *SharedBuffer) Released() bool {
	return b.released.Load()
}

// IsUnique reports whether this handle is the only live reference to its
// storage. The answer is a snapshot: another holder of this handle's clones
// may change it at any moment.
func (b *SharedBuffer) IsUnique() bool {
	return !b.released.Load() && b.st.refs.Load() == 1
}

// RefCount returns the number of live handles sharing the storage.
func (b *SharedBuffer) RefCount() int {
	return int(b.st.refs.Load())
}

// Len returns the number of samples.
func (b *SharedBuffer) Len() int {
	if b == nil || b.released.Load() {
		return 0
	}

	return len(b.st.data)
}

// Samples returns a read-only view of the storage. The slice aliases memory
// shared with other handles and must not be written to. A released handle
// returns nil.
func (b *SharedBuffer) Samples() []float32 {
	if b == nil || b.released.Load() {
		return nil
	}

	return b.st.data
}

// At returns the i-th sample.
func (b *SharedBuffer) At(i int) float32 {
	return b.st.data[i]
}

// All yields every sample in order.
func (b *SharedBuffer) All() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, v := range b.Samples() {
			if !yield(v) {
				return
			}
		}
	}
}
