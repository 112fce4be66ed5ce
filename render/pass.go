// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"time"

	"github.com/gogpu/postfx"
	"github.com/gogpu/postfx/internal/parallel"
)

// FragmentPass runs a fragment kernel over every pixel of a target.
//
// The kernel's uniforms are validated once, before the first invocation;
// a validation failure aborts the whole pass with no pixels written, so a
// frame is never half-shaded. Invocations are distributed across CPU cores
// by row band and are fully independent.
type FragmentPass struct {
	// Kernel is the fragment computation to run.
	Kernel postfx.Kernel

	// Workers caps the number of row bands. Zero means GOMAXPROCS.
	Workers int
}

// Run shades every pixel of the target. Fragment coordinates are sampled at
// pixel centers: u = (x+0.5)/width, v = (y+0.5)/height, v increasing
// downward.
func (p *FragmentPass) Run(target RenderTarget) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	pix := target.Pixels()
	if pix == nil {
		return errors.New("render: target does not support CPU rendering")
	}
	if p.Kernel == nil {
		return errors.New("render: nil kernel")
	}
	if err := p.Kernel.Validate(); err != nil {
		return err
	}

	w := target.Width()
	h := target.Height()
	stride := target.Stride()
	start := time.Now()

	parallel.Rows(h, p.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			v := (float64(y) + 0.5) / float64(h)
			row := pix[y*stride:]
			for x := 0; x < w; x++ {
				u := (float64(x) + 0.5) / float64(w)
				c := p.Kernel.Shade(u, v)

				i := x * 4
				row[i+0] = clampByte(c.R)
				row[i+1] = clampByte(c.G)
				row[i+2] = clampByte(c.B)
				row[i+3] = clampByte(c.A)
			}
		}
	})

	postfx.Logger().Debug("fragment pass complete",
		"width", w, "height", h, "elapsed", time.Since(start))
	return nil
}

// clampByte converts a [0,1] component to an 8-bit channel value, clamping
// out-of-range kernel output the way a unorm render attachment would.
func clampByte(v float64) byte {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
