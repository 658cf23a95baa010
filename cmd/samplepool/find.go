// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/ik5/samplepool/manifest"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var findLimit int

var findCmd = &cobra.Command{
	Use:   "find QUERY",
	Short: "Fuzzy search the loaded samples by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPool()
		if err != nil {
			return err
		}

		m, err := p.BuildManifest()
		if err != nil {
			return fmt.Errorf("building manifest: %w", err)
		}

		printMatches(cmd.OutOrStdout(), findEntries(m, args[0], findLimit))
		return nil
	},
}

func init() {
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 10, "maximum number of results (0 for all)")
}

// entryNames lets fuzzy match against display names.
type entryNames []manifest.Entry

func (e entryNames) String(i int) string { return e[i].Name }
func (e entryNames) Len() int            { return len(e) }

// findEntries returns the entries whose display name matches query, best
// match first.
func findEntries(m *manifest.Manifest, query string, limit int) []manifest.Entry {
	matches := fuzzy.FindFrom(query, entryNames(m.Entries))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]manifest.Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.Entries[match.Index])
	}

	return out
}

func printMatches(w io.Writer, entries []manifest.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-24s %10s values  %s\n", e.Name, humanize.Comma(int64(e.Size)), e.Path)
	}
}
