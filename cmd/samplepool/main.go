// SPDX-License-Identifier: EPL-2.0

// Command samplepool loads audio samples into a pool and reports on them.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/ik5/samplepool/internal/config"
	"github.com/ik5/samplepool/manifest"
	"github.com/ik5/samplepool/pool"
	"github.com/spf13/cobra"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	savePath   string
	printOut   bool

	cfg    = config.Default()
	logger = log.Default()

	errNoSource = errors.New("nothing to load: pass --dir or --manifest")

	rootCmd = &cobra.Command{
		Use:   "samplepool",
		Short: "Load audio samples into a pool and describe them with manifests",
		Long: `samplepool decodes every supported audio file below a directory, or
every file listed in a manifest, and keeps the result in a sample pool.
The pool can be saved as a manifest, printed, searched or rendered.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runRoot,
	}
)

func runRoot(cmd *cobra.Command, _ []string) error {
	p, err := loadPool()
	if err != nil {
		return err
	}

	if savePath == "" && !printOut {
		report(cmd.OutOrStdout(), p)
		return nil
	}

	m, err := p.BuildManifest()
	if err != nil {
		return fmt.Errorf("building manifest: %w", err)
	}

	if savePath != "" {
		if err := m.Save(savePath); err != nil {
			return err
		}
		logger.Info("manifest saved", "path", savePath, "entries", m.Len())
	}

	if printOut {
		format, _ := manifest.FormatFor(savePath)
		data, err := m.Marshal(format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(append(data, '\n')); err != nil {
			return fmt.Errorf("unable to write to writer: %w", err)
		}
	}

	return nil
}

// loadPool mirrors the flag order of the original tool: the manifest is
// loaded first and the directory is scanned into the same pool.
func loadPool() (*pool.Pool, error) {
	opts := cfg.PoolOptions(logger)

	var p *pool.Pool
	switch {
	case cfg.ManifestPath != "":
		m, err := manifest.FromFile(cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
		if p, err = pool.FromManifest(m, opts...); err != nil {
			return nil, err
		}
	case cfg.SampleDir != "":
		p = pool.New(opts...)
	default:
		return nil, errNoSource
	}

	if cfg.SampleDir != "" {
		if _, err := p.AddSamples(cfg.SampleDir); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// report prints a one-line summary of the pool.
func report(w io.Writer, p *pool.Pool) {
	samples := p.LiveMemory()
	fmt.Fprintf(w, "%s samples loaded, %s stored values (%s)\n",
		humanize.Comma(int64(p.SampleCount())),
		humanize.Comma(int64(samples)),
		humanize.IBytes(uint64(samples)*4),
	)
	if n := p.PendingCount(); n > 0 {
		fmt.Fprintf(w, "%d samples waiting for removal\n", n)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is samplepool.yml in the user config dir)")
	flags.StringP("dir", "d", "", "directory to scan for samples")
	flags.StringP("manifest", "m", "", "manifest to load samples from")
	flags.Int("expected-rate", pool.DefaultSampleRate, "sample rate files are checked against (0 disables)")
	flags.Int("hash-buffer", manifest.DefaultHashBufferSize, "read size used when hashing files")
	flags.Bool("debug", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&savePath, "save", "s", "", "save a manifest of the pool (.json, .yaml, optional .zst)")
	rootCmd.Flags().BoolVarP(&printOut, "print", "p", false, "print the manifest of the pool")

	bindFlags(flags)

	rootCmd.AddCommand(findCmd, checkCmd, renderCmd, exportCmd, watchCmd)
}
