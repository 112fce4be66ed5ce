package postfx

import "math"

// Palette is an ordered sequence of sky colors, bottom-of-sky (horizon)
// first, top-of-sky last. A palette is immutable for the duration of a
// frame; the host supplies it once and the kernel only reads it.
//
// Palette is the single lookup capability shared by every realization of
// the sky gradient: the CPU kernel indexes it directly, the GLSL generator
// realizes it as either a dynamically indexed array or an unrolled branch
// chain depending on the target profile, and the WGSL path uploads it as a
// uniform array. All realizations produce identical results for the same
// inputs.
type Palette []RGBA

// MinPaletteSize is the smallest palette the gradient math is defined for.
// With fewer than two anchors there is no segment to interpolate across.
const MinPaletteSize = 2

// At returns the palette color at index i. Indices produced by the segment
// math are always in [0, len-1] for in-range height values; At clamps
// anyway so a misbehaving caller reads an edge color rather than panicking
// in the middle of a frame.
func (p Palette) At(i int) RGBA {
	if i < 0 {
		return p[0]
	}
	if i >= len(p) {
		return p[len(p)-1]
	}
	return p[i]
}

// SegmentSize returns the world-space height covered by one palette
// segment: maxTowerHeight spread evenly across len-1 segments.
func (p Palette) SegmentSize(maxTowerHeight float64) float64 {
	return maxTowerHeight / float64(len(p)-1)
}

// blend maps an in-range height value to the piecewise-linear blend of the
// two adjacent palette anchors.
//
// The weight is computed as 1 - (stepHigh - t). When t lands exactly on an
// integer, stepLow == stepHigh and the weight collapses to 1 with both mix
// operands identical, so boundary pixels reproduce the anchor color with no
// blend artifact. The formula is kept in this exact form: the algebraically
// equivalent t - stepHigh + 1 rounds differently at boundaries.
func (p Palette) blend(value, maxTowerHeight float64) RGBA {
	segment := p.SegmentSize(maxTowerHeight)
	t := value / segment

	stepLow := math.Floor(t)
	stepHigh := math.Ceil(t)
	diff := stepHigh - t
	weight := 1 - diff

	return p.At(int(stepLow)).Lerp(p.At(int(stepHigh)), weight)
}

// validate checks the palette at the host boundary.
func (p Palette) validate(kernel string) error {
	if len(p) < MinPaletteSize {
		return &InvalidRenderParameterError{
			Kernel: kernel,
			Param:  "palette",
			Value:  float64(len(p)),
			Reason: "needs at least 2 colors",
		}
	}
	return nil
}
