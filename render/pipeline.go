// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/postfx"
)

// ErrNotResolved is returned when a bloom pass is requested before the base
// scene has been resolved into a screen texture.
var ErrNotResolved = errors.New("render: frame not resolved before bloom")

// Frame owns one frame's pass ordering.
//
// The required barrier is: sky is rendered into the base target first (or
// as part of the base scene), the base scene is resolved into an immutable
// texture, and only then may bloom sample that texture and composite over
// the base. Resolve clones the base pixels, so the bloom kernel never reads
// a buffer that is concurrently written.
//
// A Frame is not safe for concurrent use; it models a single frame in
// flight, the way the host's scheduler drives it.
type Frame struct {
	base     *PixmapTarget
	resolved *postfx.ScreenTexture
}

// NewFrame creates a frame with a CPU base target of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{base: NewPixmapTarget(width, height)}
}

// Base returns the base target. The host draws its scene here between the
// sky pass and Resolve.
func (f *Frame) Base() *PixmapTarget {
	return f.base
}

// Target returns the frame's output target (the base, after compositing).
func (f *Frame) Target() *PixmapTarget {
	return f.base
}

// DrawSky runs the sky gradient pass into the base target. Any previous
// resolve becomes stale.
func (f *Frame) DrawSky(sky *postfx.SkyGradient) error {
	f.resolved = nil
	pass := FragmentPass{Kernel: sky}
	return pass.Run(f.base)
}

// Resolve snapshots the base scene into an immutable clamp-to-edge screen
// texture. Call after the scene, sky included, is fully drawn.
func (f *Frame) Resolve() *postfx.ScreenTexture {
	f.resolved = postfx.NewScreenTexture(f.base.Pixmap().Clone())
	return f.resolved
}

// ApplyBloom runs the bloom pass over the resolved frame with default
// intensity and alpha, then composites the glow layer source-over onto the
// base. Returns ErrNotResolved if Resolve has not been called since the
// base last changed.
func (f *Frame) ApplyBloom(scale float64) error {
	return f.ApplyBloomFilter(&postfx.BloomFilter{Scale: scale})
}

// ApplyBloomFilter is ApplyBloom with a caller-tuned filter. The filter's
// Screen sampler is bound to the frame's resolve for the duration of the
// pass and unbound again on return, so one tuned filter can be applied
// frame after frame. A sampler already set on it is an error, since that
// would bypass the barrier.
func (f *Frame) ApplyBloomFilter(k *postfx.BloomFilter) error {
	if f.resolved == nil {
		return ErrNotResolved
	}
	if k.Screen != nil {
		return errors.New("render: bloom filter already bound to a texture")
	}
	k.Screen = f.resolved
	defer func() { k.Screen = nil }()

	layer := NewPixmapTarget(f.base.Width(), f.base.Height())
	pass := FragmentPass{Kernel: k}
	if err := pass.Run(layer); err != nil {
		return err
	}

	// Compositing writes the base, so the resolve is stale from here on.
	f.resolved = nil
	return Composite(f.base.Pixmap(), layer.Pixmap(), CompositeSourceOver)
}
