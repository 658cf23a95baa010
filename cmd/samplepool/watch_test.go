// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/ik5/samplepool/internal/audiotest"
	"github.com/ik5/samplepool/pool"
)

func newSyncer(t *testing.T) (*syncer, string) {
	t.Helper()

	l := log.New(io.Discard)
	return &syncer{pool: pool.New(pool.WithLogger(l)), logger: l}, t.TempDir()
}

func frames(t *testing.T, p *pool.Pool, path string) int {
	t.Helper()

	ids := p.Lookup(path)
	if len(ids) != 1 {
		t.Fatalf("Lookup(%s) = %d ids, want 1", path, len(ids))
	}
	buf, _ := p.Sample(ids[0])
	defer buf.Release()
	return buf.Len()
}

func TestSyncer_CreateWriteRemove(t *testing.T) {
	t.Parallel()

	s, dir := newSyncer(t)

	path := audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(10, 0))
	s.handle(fsnotify.Event{Name: path, Op: fsnotify.Create})
	if got := frames(t, s.pool, path); got != 10 {
		t.Fatalf("after create: %d frames, want 10", got)
	}

	audiotest.WriteWAV16(t, dir, "kick.wav", 48000, 1, audiotest.Ramp16(20, 0))
	s.handle(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if s.pool.SampleCount() != 1 {
		t.Fatalf("after write: %d samples, want 1", s.pool.SampleCount())
	}
	if got := frames(t, s.pool, path); got != 20 {
		t.Errorf("after write: %d frames, want 20", got)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	s.handle(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	if s.pool.SampleCount() != 0 {
		t.Errorf("after remove: %d samples, want 0", s.pool.SampleCount())
	}
}

func TestSyncer_RemoveWhilePlaying(t *testing.T) {
	t.Parallel()

	s, dir := newSyncer(t)
	path := audiotest.WriteWAV16(t, dir, "snare.wav", 48000, 1, audiotest.Ramp16(4, 0))
	s.handle(fsnotify.Event{Name: path, Op: fsnotify.Create})

	id := s.pool.Lookup(path)[0]
	held, _ := s.pool.Sample(id)

	s.handle(fsnotify.Event{Name: path, Op: fsnotify.Rename})
	if s.pool.State(id) != pool.StatePendingRemoval {
		t.Errorf("State() = %v, want pending removal", s.pool.State(id))
	}

	held.Release()
	if s.pool.Sweep() != 1 {
		t.Error("Sweep() did not drop the released sample")
	}
}

func TestSyncer_Ignores(t *testing.T) {
	t.Parallel()

	s, dir := newSyncer(t)

	notes := audiotest.WriteFile(t, dir, "notes.txt", []byte("hello"))
	broken := audiotest.WriteFile(t, dir, "half.wav", []byte("RIFF"))

	s.handle(fsnotify.Event{Name: notes, Op: fsnotify.Create})
	s.handle(fsnotify.Event{Name: broken, Op: fsnotify.Write})
	s.handle(fsnotify.Event{Name: filepath.Join(dir, "vanished.wav"), Op: fsnotify.Create})
	s.handle(fsnotify.Event{Name: notes, Op: fsnotify.Chmod})

	if s.pool.SampleCount() != 0 {
		t.Errorf("SampleCount() = %d, want 0", s.pool.SampleCount())
	}
}

func TestSyncer_NewDirectory(t *testing.T) {
	t.Parallel()

	s, dir := newSyncer(t)

	sub := filepath.Join(dir, "toms")
	audiotest.WriteWAV16(t, sub, "hi.wav", 48000, 1, audiotest.Ramp16(4, 0))
	audiotest.WriteWAV16(t, sub, "lo.wav", 48000, 2, audiotest.Ramp16(8, 0))

	s.handle(fsnotify.Event{Name: sub, Op: fsnotify.Create})
	if s.pool.SampleCount() != 2 {
		t.Errorf("SampleCount() = %d, want 2", s.pool.SampleCount())
	}
}

func TestSyncer_DirectoryGone(t *testing.T) {
	t.Parallel()

	for _, op := range []fsnotify.Op{fsnotify.Remove, fsnotify.Rename} {
		t.Run(op.String(), func(t *testing.T) {
			t.Parallel()

			s, dir := newSyncer(t)

			toms := filepath.Join(dir, "toms")
			audiotest.WriteWAV16(t, toms, "hi.wav", 48000, 1, audiotest.Ramp16(4, 0))
			audiotest.WriteWAV16(t, filepath.Join(toms, "floor"), "lo.wav", 48000, 1, audiotest.Ramp16(4, 0))
			keep := audiotest.WriteWAV16(t, filepath.Join(dir, "toms2"), "mid.wav", 48000, 1, audiotest.Ramp16(4, 0))

			s.handle(fsnotify.Event{Name: dir, Op: fsnotify.Create})
			if s.pool.SampleCount() != 3 {
				t.Fatalf("SampleCount() = %d, want 3", s.pool.SampleCount())
			}

			if err := os.RemoveAll(toms); err != nil {
				t.Fatal(err)
			}
			s.handle(fsnotify.Event{Name: toms, Op: op})

			if s.pool.SampleCount() != 1 {
				t.Errorf("SampleCount() = %d, want 1", s.pool.SampleCount())
			}
			if len(s.pool.Lookup(keep)) != 1 {
				t.Error("sample outside the removed directory was dropped")
			}
		})
	}
}

func TestSyncer_AddTreeWatchesSubdirectories(t *testing.T) {
	t.Parallel()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	dir := t.TempDir()
	for _, d := range []string{"a", "a/b", "c"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	s := &syncer{watcher: w, logger: log.New(io.Discard)}
	if err := s.addTree(dir); err != nil {
		t.Fatalf("addTree() error = %v", err)
	}
	if got := len(w.WatchList()); got != 4 {
		t.Errorf("watching %d directories, want 4", got)
	}
}
