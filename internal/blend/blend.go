// Package blend implements the compositing operators used when layering
// post-process output over a base frame.
//
// Values are straight (non-premultiplied) float components. The bloom layer
// carries a fixed low alpha and is laid over the base scene with source-over;
// Plus exists for hosts that prefer additive glow.
//
// Reference: Porter-Duff, "Compositing Digital Images" (1984).
package blend

import "github.com/gogpu/postfx"

// SourceOver composites src over dst: S + D*(1-Sa). The blend runs in
// premultiplied space and the result is divided back out, so the returned
// color is straight-alpha even when dst is translucent.
func SourceOver(src, dst postfx.RGBA) postfx.RGBA {
	inv := 1 - src.A
	a := src.A + dst.A*inv
	if a <= 0 {
		return postfx.RGBA{}
	}
	return postfx.RGBA{
		R: (src.R*src.A + dst.R*dst.A*inv) / a,
		G: (src.G*src.A + dst.G*dst.A*inv) / a,
		B: (src.B*src.A + dst.B*dst.A*inv) / a,
		A: a,
	}
}

// Plus composites src additively onto dst: S*Sa + D. Channels are left
// unclamped; the 8-bit store clamps.
func Plus(src, dst postfx.RGBA) postfx.RGBA {
	return postfx.RGBA{
		R: src.R*src.A + dst.R,
		G: src.G*src.A + dst.G,
		B: src.B*src.A + dst.B,
		A: dst.A,
	}
}
