// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/postfx"
)

func testSky() *postfx.SkyGradient {
	return &postfx.SkyGradient{
		Y:              0,
		Height:         40,
		MaxTowerHeight: 30,
		Palette:        postfx.Palette{postfx.Red, postfx.Green, postfx.Blue},
	}
}

func TestFragmentPassMatchesKernel(t *testing.T) {
	// The pass must write exactly what the kernel shades at pixel centers,
	// independent of how rows are split across workers.
	sky := testSky()
	target := NewPixmapTarget(16, 16)

	pass := FragmentPass{Kernel: sky}
	if err := pass.Run(target); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	for _, workers := range []int{1, 3} {
		other := NewPixmapTarget(16, 16)
		p := FragmentPass{Kernel: sky, Workers: workers}
		if err := p.Run(other); err != nil {
			t.Fatalf("Run(workers=%d) = %v", workers, err)
		}
		for i, b := range other.Pixels() {
			if b != target.Pixels()[i] {
				t.Fatalf("workers=%d: pixel byte %d = %d, want %d", workers, i, b, target.Pixels()[i])
			}
		}
	}

	// Spot-check one pixel against a direct kernel invocation.
	x, y := 5, 11
	u := (float64(x) + 0.5) / 16
	v := (float64(y) + 0.5) / 16
	want := sky.Shade(u, v).Color()
	got := target.Pixmap().GetPixel(x, y).Color()
	if got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestFragmentPassTopBottomSaturation(t *testing.T) {
	// With the test viewport, the top rows are above MaxTowerHeight and
	// the bottom rows below zero; saturation colors must land on the right
	// screen edge, confirming the v flip direction.
	sky := testSky()
	sky.Y = 5 // camera above the horizon so the bottom rows sample below 0
	target := NewPixmapTarget(8, 64)

	pass := FragmentPass{Kernel: sky}
	if err := pass.Run(target); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	top := target.Pixmap().GetPixel(4, 0)
	if top != postfx.Blue {
		t.Errorf("top row = %v, want topmost palette color %v", top, postfx.Blue)
	}
	bottom := target.Pixmap().GetPixel(4, 63)
	if bottom != postfx.Red {
		t.Errorf("bottom row = %v, want horizon color %v", bottom, postfx.Red)
	}
}

func TestFragmentPassValidatesBeforeRunning(t *testing.T) {
	sky := testSky()
	sky.MaxTowerHeight = 0

	target := NewPixmapTarget(4, 4)
	target.Pixmap().Clear(postfx.White)

	pass := FragmentPass{Kernel: sky}
	err := pass.Run(target)

	var perr *postfx.InvalidRenderParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("Run() = %v, want InvalidRenderParameterError", err)
	}

	// No pixels may have been written: the frame fails as a unit.
	if got := target.Pixmap().GetPixel(2, 2); got != postfx.White {
		t.Errorf("target written despite validation failure: %v", got)
	}
}

func TestFragmentPassNilChecks(t *testing.T) {
	pass := FragmentPass{Kernel: testSky()}
	if err := pass.Run(nil); err == nil {
		t.Error("Run(nil target) = nil, want error")
	}

	empty := FragmentPass{}
	if err := empty.Run(NewPixmapTarget(2, 2)); err == nil {
		t.Error("Run() with nil kernel = nil, want error")
	}
}
