package postfx

// Bloom tuning constants. These are hand-tuned visual values, not physical
// units; they are named here so hosts can retune a frame without touching
// the kernel math (see the config package).
const (
	// DefaultBloomIntensity is the brightness boost applied to the blurred
	// frame before the squaring knee.
	DefaultBloomIntensity = 2.0

	// DefaultBloomAlpha is the fixed alpha the bloom layer is emitted at,
	// regardless of color magnitude. The layer is meant to be alpha-blended
	// over the base scene, not to replace it.
	DefaultBloomAlpha = 0.1

	// bloomRadius is the half-width of the box filter: 9x9 taps.
	bloomRadius = 4

	// bloomTaps is the number of taps along one axis.
	bloomTaps = 2*bloomRadius + 1

	// bloomReferenceWidth anchors the spread to the default 256x144
	// internal target, so one tap step covers 4 source pixels at Scale 1.
	bloomReferenceWidth = 256.0
)

// BloomFilter is the post-process fragment kernel: a 9x9 normalized box
// blur over a previously resolved frame, brightness boosted and squared per
// channel. The squaring is the glow knee: bright areas amplify
// superlinearly while dim areas are suppressed further, a cheap substitute
// for a brightness threshold.
//
// Screen must contain the fully composed scene, sky included; the kernel
// only reads it. Sampling near the screen edge relies on the texture being
// configured clamp-to-edge by the host. That addressing mode is a required
// external contract; the kernel cannot enforce it.
type BloomFilter struct {
	// Scale controls the blur spread inversely: the per-tap offset is
	// 4 / (256 * Scale), so doubling Scale halves the sampling offsets.
	// Must be > 0.
	Scale float64

	// Intensity is the pre-knee brightness boost. Zero means
	// DefaultBloomIntensity.
	Intensity float64

	// Alpha is the fixed output alpha. Zero means DefaultBloomAlpha.
	Alpha float64

	// Screen samples the resolved frame.
	Screen Sampler
}

const bloomKernelName = "BloomFilter"

// Spread returns the per-tap sampling offset in normalized texture
// coordinates.
func (k *BloomFilter) Spread() float64 {
	return 4.0 / (bloomReferenceWidth * k.Scale)
}

// Shade computes the bloom color for the fragment at normalized screen
// coordinates (u, v), v increasing downward. The sample coordinates flip v
// with 1-v into the resolved frame's upward orientation; the flip is part
// of the kernel contract.
func (k *BloomFilter) Shade(u, v float64) RGBA {
	spread := k.Spread()
	intensity := k.Intensity
	if intensity == 0 {
		intensity = DefaultBloomIntensity
	}
	alpha := k.Alpha
	if alpha == 0 {
		alpha = DefaultBloomAlpha
	}

	var sumR, sumG, sumB float64
	for n := -bloomRadius; n <= bloomRadius; n++ {
		sampleV := (1 - v) + spread*float64(n)

		var rowR, rowG, rowB float64
		for t := -bloomRadius; t <= bloomRadius; t++ {
			c := k.Screen.Sample(u+spread*float64(t), sampleV)
			rowR += c.R
			rowG += c.G
			rowB += c.B
		}
		sumR += rowR / bloomTaps
		sumG += rowG / bloomTaps
		sumB += rowB / bloomTaps
	}

	r := sumR / bloomTaps * intensity
	g := sumG / bloomTaps * intensity
	b := sumB / bloomTaps * intensity

	// Glow knee.
	r *= r
	g *= g
	b *= b

	return RGBA{R: r, G: g, B: b, A: alpha}
}

// ValidateUniforms checks the kernel's scalar uniforms at the host
// boundary. Scale <= 0 means a zero, negative or infinite blur spread,
// which cannot be handled inside the kernel. The GPU backends call this
// before uploading; their screen texture is bound out of band.
func (k *BloomFilter) ValidateUniforms() error {
	if err := positiveParam(bloomKernelName, "scale", k.Scale); err != nil {
		return err
	}
	if k.Intensity != 0 {
		if err := positiveParam(bloomKernelName, "intensity", k.Intensity); err != nil {
			return err
		}
	}
	if k.Alpha != 0 {
		if err := positiveParam(bloomKernelName, "alpha", k.Alpha); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks everything a CPU invocation needs: the scalar uniforms
// plus a bound screen texture.
func (k *BloomFilter) Validate() error {
	if err := k.ValidateUniforms(); err != nil {
		return err
	}
	if k.Screen == nil {
		return &InvalidRenderParameterError{
			Kernel: bloomKernelName,
			Param:  "_ScreenTexture",
			Reason: "no screen texture bound",
		}
	}
	return nil
}
