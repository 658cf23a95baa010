// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/ik5/samplepool/buffer"
	"github.com/ik5/samplepool/formats/wav"
	"github.com/ik5/samplepool/manifest"
	"github.com/ik5/samplepool/pool"
	"github.com/ik5/samplepool/utils"
	"github.com/spf13/cobra"
)

var errExportBits = errors.New("unsupported export bit depth")

var (
	exportDir  string
	exportBits int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every loaded sample as a normalized WAV file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := loadPool()
		if err != nil {
			return err
		}

		n, err := exportPool(p, exportDir, cfg.ExpectedSampleRate, exportBits)
		if err != nil {
			return err
		}

		logger.Info("exported", "dir", exportDir, "files", n)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "export", "output directory")
	exportCmd.Flags().IntVar(&exportBits, "bits", 32, "32 for float output, 16 for integer PCM")
}

// exportPool writes one file per live sample into dir and returns how many
// were written. Files are named after the sample plus a short id so that
// equal names from different folders do not collide. Each file keeps the
// rate of its source; fallbackRate is only used when that is unknown.
func exportPool(p *pool.Pool, dir string, fallbackRate, bits int) (int, error) {
	if fallbackRate <= 0 {
		fallbackRate = pool.DefaultSampleRate
	}
	if bits != 16 && bits != 32 {
		return 0, fmt.Errorf("%w: %d bits", errExportBits, bits)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating export dir: %w", err)
	}

	written := 0
	for id, buf := range p.Samples() {
		path, _ := p.Path(id)
		name := fmt.Sprintf("%s-%s.wav", manifest.DisplayName(path), id.String()[:8])

		rate, ok := p.SampleRate(id)
		if !ok || rate <= 0 {
			rate = fallbackRate
		}

		err := exportSample(filepath.Join(dir, name), buf, rate, bits)
		buf.Release()
		if err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

func exportSample(path string, buf *buffer.AudioBuffer, sampleRate, bits int) error {
	samples := buf.Left()
	if buf.IsStereo() {
		samples = make([]float32, 2*buf.Len())
		utils.InterleaveStereo(buf.Left(), buf.Right(), samples)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := writeWAV(f, sampleRate, buf.Channels(), bits, samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Debug("exported sample", "path", path, "size", humanize.IBytes(uint64(len(samples)*bits/8)))
	return nil
}

func writeWAV(w io.Writer, sampleRate, channels, bits int, samples []float32) error {
	if bits == 32 {
		return wav.WriteWAVFloat32(w, sampleRate, channels, samples)
	}

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return wav.WriteWAV16(w, sampleRate, channels, pcm)
}
