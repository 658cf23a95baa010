// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/ik5/samplepool/pool"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Load a directory and keep the pool in sync with it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return watchDir(ctx, args[0])
	},
}

// syncer applies file system events to a pool.
type syncer struct {
	pool    *pool.Pool
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

func watchDir(ctx context.Context, dir string) error {
	p, err := pool.FromDir(dir, cfg.PoolOptions(logger)...)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer w.Close()

	s := &syncer{pool: p, watcher: w, logger: logger}
	if err := s.addTree(dir); err != nil {
		return err
	}

	s.logger.Info("watching", "dir", dir, "samples", p.SampleCount())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.handle(event)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("fsnotify error", "dir", dir, "error", err)
		}
	}
}

// addTree watches dir and every directory below it. fsnotify is not
// recursive.
func (s *syncer) addTree(dir string) error {
	if s.watcher == nil {
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := s.watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func (s *syncer) handle(event fsnotify.Event) {
	s.logger.Debug("fsnotify event", "file", event.Name, "event", event.Op)

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		s.drop(event.Name)
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			// Gone again before we got to it.
			s.drop(event.Name)
			return
		}
		if info.IsDir() {
			s.addDir(event.Name)
			return
		}
		s.reload(event.Name)
	default:
		return
	}

	s.logger.Info("pool updated",
		"samples", s.pool.SampleCount(),
		"memory", humanize.IBytes(uint64(s.pool.LiveMemory())*4),
		"pending", s.pool.PendingCount(),
	)
}

// drop removes the samples loaded from path. The event does not say whether
// path was a file or a directory, and a directory is gone by the time it
// arrives, so samples below path are dropped too.
func (s *syncer) drop(path string) {
	ids := append(s.pool.Lookup(path), s.pool.LookupDir(path)...)
	for _, id := range ids {
		s.logger.Debug("removing sample", "path", path, "result", s.pool.RemoveSample(id))
	}
}

func (s *syncer) reload(path string) {
	if !s.pool.Registry().Supports(path) {
		return
	}

	s.drop(path)

	// Writes arrive in pieces; a later event retries.
	if _, err := s.pool.AddSample(path); err != nil {
		s.logger.Debug("sample not loaded", "path", path, "err", err)
	}
}

func (s *syncer) addDir(dir string) {
	if err := s.addTree(dir); err != nil {
		s.logger.Warn("could not watch directory", "dir", dir, "err", err)
	}
	if _, err := s.pool.AddSamples(dir); err != nil {
		s.logger.Warn("could not scan directory", "dir", dir, "err", err)
	}
}
