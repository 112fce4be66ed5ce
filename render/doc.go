// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes postfx fragment kernels on the CPU and enforces
// the frame's render-pass ordering.
//
// A FragmentPass runs one kernel over every pixel of a target, data
// parallel by row band. Frame strings passes together with the required
// barrier: the sky is drawn into the base target, the base scene is
// resolved into an immutable screen texture, and only then may the bloom
// pass sample it and composite over the base.
//
// All uniform validation happens here, before any kernel invocation, so a
// degenerate parameter surfaces as an error instead of a frame full of
// non-finite pixels.
package render
