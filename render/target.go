// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/postfx"
)

// RenderTarget defines where kernel output goes.
//
// Targets may support CPU access (Pixels) or GPU access; the CPU pass
// executor requires Pixels. A GPU-backed implementation would return nil
// from Pixels and be driven by the internal/gpu pipeline instead.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, 4 bytes per pixel RGBA.
	// Returns nil for GPU-only targets.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target over a postfx.Pixmap.
type PixmapTarget struct {
	pix *postfx.Pixmap
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{pix: postfx.NewPixmap(width, height)}
}

// NewPixmapTargetFromPixmap wraps an existing pixmap as a render target.
// The pixmap is used directly without copying.
func NewPixmapTargetFromPixmap(pix *postfx.Pixmap) *PixmapTarget {
	return &PixmapTarget{pix: pix}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.pix.Width()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.pix.Height()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.pix.Data()
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.pix.Width() * 4
}

// Pixmap returns the underlying pixmap. The returned pixmap shares memory
// with the target.
func (t *PixmapTarget) Pixmap() *postfx.Pixmap {
	return t.pix
}

// Image returns a copy of the target as an image.RGBA.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.pix.ToImage()
}

var _ RenderTarget = (*PixmapTarget)(nil)
