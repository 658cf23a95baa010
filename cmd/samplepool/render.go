// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ik5/samplepool/playback"
	"github.com/ik5/samplepool/pool"
	"github.com/spf13/cobra"
)

var (
	renderOut  string
	renderOpts playback.RenderOptions
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Load one file through the pool and render it to a stereo WAV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderFile(args[0], renderOut, renderOpts)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "out.wav", "output file")
	renderCmd.Flags().IntVar(&renderOpts.SampleRate, "rate", 0, "output sample rate, 0 keeps the source rate")
	renderCmd.Flags().IntVar(&renderOpts.Precision, "precision", 2, "output bytes per sample (1, 2 or 3)")
	renderCmd.Flags().Float64Var(&renderOpts.Gain, "gain", 0, "gain added to unity (-1 mutes)")
}

func renderFile(in, out string, opts playback.RenderOptions) error {
	p := pool.New(cfg.PoolOptions(logger)...)

	id, err := p.AddSample(in)
	if err != nil {
		return err
	}

	buf, _ := p.Sample(id)
	defer buf.Release()

	if opts.SampleRate <= 0 {
		opts.SampleRate, _ = p.SampleRate(id)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := playback.Render(f, buf, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	length := time.Duration(buf.Len()) * time.Second / time.Duration(opts.SampleRate)
	logger.Info("rendered", "in", in, "out", out, "length", length, "frames", humanize.Comma(int64(buf.Len())))

	return nil
}
