// SPDX-License-Identifier: EPL-2.0

package pool

// State is where a sample is in its lifecycle.
type State int

const (
	// StateUnknown is reported for IDs this pool never issued, and for IDs
	// removed so long ago that the pool no longer remembers them.
	StateUnknown State = iota
	StateLive
	// StatePendingRemoval samples are hidden from every accessor but their
	// storage is still shared with a clone held elsewhere.
	StatePendingRemoval
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StatePendingRemoval:
		return "pending removal"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// RemovalState is the outcome of RemoveSample.
type RemovalState int

const (
	// NotFound means the ID is not live; nothing changed.
	NotFound RemovalState = iota
	// Removed means the sample was dropped immediately.
	Removed
	// PendingRemoval means the sample was hidden and will be dropped by a
	// later Sweep once no clone of it is live.
	PendingRemoval
)

func (r RemovalState) String() string {
	switch r {
	case Removed:
		return "removed"
	case PendingRemoval:
		return "pending"
	default:
		return "not found"
	}
}

// RemoveSample takes id out of the pool. If a clone handed out earlier is
// still live the storage is kept and the sample moves to
// StatePendingRemoval; it no longer appears in any accessor or manifest.
//
// The uniqueness check and the removal happen under the same lock that
// clones are taken under, so no new clone can slip in between them.
func (p *Pool) RemoveSample(id SampleID) RemovalState {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.sweepLocked()

	buf, ok := p.samples[id]
	if !ok {
		return NotFound
	}

	path := p.files[id]
	p.forgetLocked(id)

	if buf.IsUnique() {
		buf.Release()
		p.removed.add(id)

		return Removed
	}

	p.pending[id] = pendingEntry{buf: buf, path: path}
	p.logger.Debug("removal deferred", "id", id, "path", path)

	return PendingRemoval
}

// Sweep drops pending samples that are no longer shared and returns how
// many were dropped. It also runs at the start of every call that adds or
// removes samples.
func (p *Pool) Sweep() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.sweepLocked()
}

func (p *Pool) sweepLocked() int {
	dropped := 0
	for id, e := range p.pending {
		if !e.buf.IsUnique() {
			continue
		}

		e.buf.Release()
		delete(p.pending, id)
		p.removed.add(id)
		dropped++

		p.logger.Debug("pending removal completed", "id", id, "path", e.path)
	}

	return dropped
}

// State reports the lifecycle state of id.
func (p *Pool) State(id SampleID) State {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	if _, ok := p.samples[id]; ok {
		return StateLive
	}
	if _, ok := p.pending[id]; ok {
		return StatePendingRemoval
	}
	if p.removed.has(id) {
		return StateRemoved
	}

	return StateUnknown
}

// PendingCount returns the number of samples awaiting removal.
func (p *Pool) PendingCount() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	return len(p.pending)
}

// PendingMemory is LiveMemory for samples awaiting removal.
func (p *Pool) PendingMemory() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	total := 0
	for _, e := range p.pending {
		total += e.buf.Size()
	}

	return total
}

// maxRemembered is how many dropped IDs State can still report as
// StateRemoved.
const maxRemembered = 4096

// removedSet remembers the most recently dropped IDs. Once full, adding an
// ID forgets the oldest one.
type removedSet struct {
	ids   map[SampleID]struct{}
	order []SampleID // ring, next is the slot to overwrite once full
	next  int
}

func newRemovedSet(limit int) removedSet {
	return removedSet{
		ids:   make(map[SampleID]struct{}, limit),
		order: make([]SampleID, 0, limit),
	}
}

func (r *removedSet) add(id SampleID) {
	if _, ok := r.ids[id]; ok || cap(r.order) == 0 {
		return
	}

	if len(r.order) < cap(r.order) {
		r.order = append(r.order, id)
	} else {
		delete(r.ids, r.order[r.next])
		r.order[r.next] = id
		r.next = (r.next + 1) % len(r.order)
	}

	r.ids[id] = struct{}{}
}

func (r *removedSet) has(id SampleID) bool {
	_, ok := r.ids[id]
	return ok
}

func (r *removedSet) len() int { return len(r.ids) }
