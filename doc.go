// Package postfx provides the background and post-process fragment kernels
// used by 2D platformers in the GoGPU ecosystem: a height-based sky-color
// gradient and a screen-space bloom filter.
//
// # Overview
//
// Both kernels are stateless per-pixel computations. The package defines the
// canonical math once, as a CPU reference implementation, and ships matching
// GPU realizations:
//
//   - Root package: deterministic CPU kernels (SkyGradient, BloomFilter)
//   - internal/gpu: WGSL sources compiled via gogpu/naga for gogpu/wgpu hosts
//   - opengl:       generated GLSL sources plus an OpenGL program host
//
// # Quick Start
//
//	import "github.com/gogpu/postfx"
//	import "github.com/gogpu/postfx/render"
//
//	sky := postfx.SkyGradient{
//	    Height:         144,
//	    MaxTowerHeight: 30,
//	    Palette:        postfx.Palette{postfx.Hex("#1b2a5a"), postfx.Hex("#5aa9e6"), postfx.Hex("#b8e3ff")},
//	}
//
//	frame := render.NewFrame(256, 144)
//	frame.DrawSky(&sky)
//	// ... draw the scene onto frame.Base() ...
//	frame.Resolve()
//	frame.ApplyBloom(1.0)
//	frame.Target().Image() // composited output
//
// # Pass Ordering
//
// The kernels are independent but the host must respect the render-pass
// barrier: the sky is part of the base scene, the base scene must be fully
// resolved into a texture before BloomFilter samples it, and the bloom layer
// is composited after that resolve. render.Frame enforces this ordering.
//
// # Coordinate Convention
//
// Fragment coordinates are normalized with uv.y increasing downward (screen
// space). Both kernels flip to an upward world-space convention internally
// with 1-uv.y; the flip is part of the kernel contract.
package postfx
