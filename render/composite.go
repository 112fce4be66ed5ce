// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/postfx"
	"github.com/gogpu/postfx/internal/blend"
)

// CompositeMode selects how a post-process layer is laid over the base.
type CompositeMode uint8

const (
	// CompositeSourceOver alpha-blends the layer over the base. This is
	// what the bloom layer's fixed 0.1 alpha is tuned for.
	CompositeSourceOver CompositeMode = iota

	// CompositePlus adds the layer onto the base, clamped to white.
	CompositePlus
)

// Composite lays layer over base in place. Both pixmaps must have identical
// dimensions.
func Composite(base, layer *postfx.Pixmap, mode CompositeMode) error {
	if base == nil || layer == nil {
		return errors.New("render: nil pixmap")
	}
	if base.Width() != layer.Width() || base.Height() != layer.Height() {
		return errors.New("render: composite dimension mismatch")
	}

	op := blend.SourceOver
	if mode == CompositePlus {
		op = blend.Plus
	}

	for y := 0; y < base.Height(); y++ {
		for x := 0; x < base.Width(); x++ {
			src := layer.GetPixel(x, y)
			dst := base.GetPixel(x, y)
			base.SetPixel(x, y, op(src, dst))
		}
	}
	return nil
}
