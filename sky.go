package postfx

// SkyGradient is the background fragment kernel: it maps a pixel's implied
// world-space height to a color by piecewise-linear interpolation across an
// ordered palette.
//
// The per-pixel height sample is
//
//	value = (1 - uv.y) * Height - Y
//
// where uv.y is the normalized screen coordinate (0 at top), Height is the
// world-space viewport height scale and Y is a world-space reference offset
// such as the camera height. Heights at or below zero saturate to the
// horizon color Palette[0]; heights at or above MaxTowerHeight saturate to
// the topmost color Palette[len-1]. In between, the palette spans
// MaxTowerHeight evenly.
//
// SkyGradient output is always opaque (alpha 1).
type SkyGradient struct {
	// Y is the world-space vertical reference offset, typically the camera
	// or player height. Raising Y scrolls the gradient downward.
	Y float64

	// Height is the world-space viewport height scale.
	Height float64

	// MaxTowerHeight is the saturation height: the world-space height at
	// which the gradient reaches its final color. Must be > 0.
	MaxTowerHeight float64

	// Palette holds the interpolation anchors, horizon first. At least two
	// colors.
	Palette Palette
}

// skyKernelName is the kernel name reported in parameter errors and used
// for shader labels across backends.
const skyKernelName = "SkyGradient"

// Shade computes the sky color for the fragment at normalized screen
// coordinates (u, v), v increasing downward. u is unused: the gradient
// varies only with height.
func (k *SkyGradient) Shade(_, v float64) RGBA {
	value := (1-v)*k.Height - k.Y

	switch {
	case value >= k.MaxTowerHeight:
		c := k.Palette.At(len(k.Palette) - 1)
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	case value <= 0:
		c := k.Palette.At(0)
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	}

	c := k.Palette.blend(value, k.MaxTowerHeight)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Validate checks the kernel's uniforms at the host boundary.
// MaxTowerHeight <= 0 would divide the segment math by zero or flip its
// sign, and non-finite uniforms poison every pixel; neither can be handled
// inside the kernel, so both fail fast here with an
// InvalidRenderParameterError.
func (k *SkyGradient) Validate() error {
	if err := k.Palette.validate(skyKernelName); err != nil {
		return err
	}
	if err := positiveParam(skyKernelName, "maxTowerHeight", k.MaxTowerHeight); err != nil {
		return err
	}
	if err := finiteParam(skyKernelName, "y", k.Y); err != nil {
		return err
	}
	return finiteParam(skyKernelName, "height", k.Height)
}
