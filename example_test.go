// SPDX-License-Identifier: EPL-2.0

package samplepool_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ik5/samplepool"
	"github.com/ik5/samplepool/formats/wav"
	"github.com/ik5/samplepool/pool"
)

func ExampleLoadDir() {
	dir, err := os.MkdirTemp("", "kit")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	var buf bytes.Buffer
	_ = wav.WriteWAV16(&buf, 48000, 1, []int16{0, 16384, -16384, 32767})
	_ = os.WriteFile(filepath.Join(dir, "kick.wav"), buf.Bytes(), 0o644)

	p, err := samplepool.LoadDir(dir, pool.WithLogger(log.New(io.Discard)))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, sample := range p.Samples() {
		fmt.Printf("%.2f\n", sample.Left())
		sample.Release()
	}
	// Output: [0.00 0.50 -0.50 1.00]
}
