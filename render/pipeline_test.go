// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/postfx"
)

func TestFrameBloomRequiresResolve(t *testing.T) {
	frame := NewFrame(16, 16)
	if err := frame.DrawSky(testSky()); err != nil {
		t.Fatalf("DrawSky() = %v", err)
	}

	// The barrier: bloom may not run before the base scene is resolved.
	if err := frame.ApplyBloom(1.0); !errors.Is(err, ErrNotResolved) {
		t.Fatalf("ApplyBloom() before resolve = %v, want ErrNotResolved", err)
	}

	frame.Resolve()
	if err := frame.ApplyBloom(1.0); err != nil {
		t.Fatalf("ApplyBloom() after resolve = %v", err)
	}
}

func TestFrameDrawSkyInvalidatesResolve(t *testing.T) {
	frame := NewFrame(8, 8)
	if err := frame.DrawSky(testSky()); err != nil {
		t.Fatalf("DrawSky() = %v", err)
	}
	frame.Resolve()

	// Redrawing the base makes the snapshot stale.
	if err := frame.DrawSky(testSky()); err != nil {
		t.Fatalf("DrawSky() = %v", err)
	}
	if err := frame.ApplyBloom(1.0); !errors.Is(err, ErrNotResolved) {
		t.Errorf("ApplyBloom() after redraw = %v, want ErrNotResolved", err)
	}
}

func TestFrameBloomBrightensDimScene(t *testing.T) {
	// A uniformly dim scene gains light from the composited glow layer:
	// blur of a constant is the constant, the knee keeps some of it, and
	// source-over at the bloom alpha adds a fraction on top.
	frame := NewFrame(8, 8)
	frame.Base().Pixmap().Clear(postfx.RGB(0.4, 0, 0))
	before := frame.Base().Pixmap().GetPixel(4, 4)

	frame.Resolve()
	if err := frame.ApplyBloom(1.0); err != nil {
		t.Fatalf("ApplyBloom() = %v", err)
	}

	after := frame.Base().Pixmap().GetPixel(4, 4)
	if after.R <= before.R {
		t.Errorf("bloom did not brighten: before R=%v, after R=%v", before.R, after.R)
	}
	if after.A != 1 {
		t.Errorf("composited frame alpha = %v, want 1", after.A)
	}
}

func TestFrameBloomSnapshotIsImmutable(t *testing.T) {
	// Resolve clones the base: mutating the base afterwards must not change
	// what the bloom pass samples.
	frame := NewFrame(8, 8)
	frame.Base().Pixmap().Clear(postfx.Black)
	tex := frame.Resolve()

	frame.Base().Pixmap().Clear(postfx.White)
	if got := tex.Sample(0.5, 0.5); got != postfx.Black {
		t.Errorf("resolved texture changed with base: %v, want %v", got, postfx.Black)
	}
}

func TestFrameRejectsPreboundFilter(t *testing.T) {
	frame := NewFrame(4, 4)
	frame.Resolve()

	k := &postfx.BloomFilter{Scale: 1, Screen: postfx.NewScreenTexture(postfx.NewPixmap(4, 4))}
	if err := frame.ApplyBloomFilter(k); err == nil {
		t.Error("ApplyBloomFilter() with pre-bound texture = nil, want error")
	}
}

func TestFrameReusesFilterAcrossFrames(t *testing.T) {
	// Hosts build one tuned filter at startup and apply it every frame;
	// the frame must unbind the screen sampler after each pass.
	k := &postfx.BloomFilter{Scale: 1}
	frame := NewFrame(8, 8)

	for i := 0; i < 3; i++ {
		if err := frame.DrawSky(testSky()); err != nil {
			t.Fatalf("frame %d: DrawSky() = %v", i+1, err)
		}
		frame.Resolve()
		if err := frame.ApplyBloomFilter(k); err != nil {
			t.Fatalf("frame %d: ApplyBloomFilter() = %v", i+1, err)
		}
		if k.Screen != nil {
			t.Fatalf("frame %d: filter still bound after pass", i+1)
		}
	}
}

func TestFrameUnbindsFilterOnError(t *testing.T) {
	k := &postfx.BloomFilter{Scale: 1, Intensity: -2}
	frame := NewFrame(4, 4)
	frame.Resolve()

	if err := frame.ApplyBloomFilter(k); err == nil {
		t.Fatal("ApplyBloomFilter() with bad intensity = nil, want error")
	}
	if k.Screen != nil {
		t.Error("filter still bound after failed pass")
	}
}

func TestFrameInvalidBloomScale(t *testing.T) {
	frame := NewFrame(4, 4)
	frame.Resolve()

	err := frame.ApplyBloom(-1)
	var perr *postfx.InvalidRenderParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("ApplyBloom(-1) = %v, want InvalidRenderParameterError", err)
	}
	if perr.Param != "scale" {
		t.Errorf("param = %q, want scale", perr.Param)
	}
}
