package postfx

// Kernel is a per-pixel fragment computation. One invocation runs
// independently for every covered pixel of a draw; there is no shared
// mutable state across invocations and no state carried between frames.
//
// Shade receives normalized screen coordinates u, v in [0,1] with v
// increasing downward (the host vertex stage convention). Kernels that work
// in world space flip with 1-v internally.
//
// Shade has no failure channel: it always produces a color. Degenerate
// uniform values are rejected before any invocation by Validate, which the
// host (render.FragmentPass, the GPU uniform uploaders) calls at the frame
// boundary. A kernel with Validate() != nil must never be invoked.
type Kernel interface {
	Shade(u, v float64) RGBA
	Validate() error
}

// Sampler is a read-only 2D texture queried by normalized coordinate.
// The addressing mode (clamp-to-edge for bloom) and filtering are fixed by
// the host when the sampler is created; kernels cannot change them.
type Sampler interface {
	Sample(u, v float64) RGBA
}
