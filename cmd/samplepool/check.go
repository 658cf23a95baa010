// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/samplepool/manifest"
	"github.com/spf13/cobra"
)

var errStale = errors.New("manifest is out of date")

var checkCmd = &cobra.Command{
	Use:   "check MANIFEST",
	Short: "Verify a manifest and list entries whose files changed or vanished",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.FromFile(args[0])
		if err != nil {
			return err
		}

		stale, err := checkManifest(m, cfg.HashBufferSize)
		if err != nil {
			return err
		}

		printStale(cmd.OutOrStdout(), m, stale)
		if len(stale) > 0 {
			return fmt.Errorf("%w: %d of %d entries", errStale, len(stale), m.Len())
		}

		return nil
	},
}

func checkManifest(m *manifest.Manifest, bufSize int) ([]manifest.Entry, error) {
	if err := m.Verify(); err != nil {
		return nil, err
	}

	return m.Stale(make([]byte, max(bufSize, 1)))
}

func printStale(w io.Writer, m *manifest.Manifest, stale []manifest.Entry) {
	if len(stale) == 0 {
		fmt.Fprintf(w, "%d entries up to date (hash %08x)\n", m.Len(), m.Hash)
		return
	}

	for _, e := range stale {
		fmt.Fprintf(w, "stale  %s\n", e.Path)
	}
}
