// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/postfx"
)

// Upscale scales a composited frame by an integer factor with
// nearest-neighbor filtering, preserving the crisp pixel-art look of a
// low-resolution internal target presented on a larger window.
func Upscale(src *postfx.Pixmap, factor int) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("render: nil pixmap")
	}
	if factor < 1 {
		return nil, errors.New("render: upscale factor must be >= 1")
	}

	in := src.ToImage()
	if factor == 1 {
		return in, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, src.Width()*factor, src.Height()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)
	return out, nil
}
