package postfx

import "math"

// AddressMode defines how sample coordinates outside [0,1] are resolved.
type AddressMode uint8

const (
	// AddressClampToEdge clamps coordinates to the edge texel. This is the
	// mode the bloom kernel assumes; the host is responsible for
	// configuring it on whichever backend actually owns the texture.
	AddressClampToEdge AddressMode = iota

	// AddressRepeat wraps coordinates, tiling the texture.
	AddressRepeat
)

// String returns a string representation of the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressClampToEdge:
		return "ClampToEdge"
	case AddressRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// ScreenTexture samples a resolved frame with nearest filtering, keeping
// the low-res pixel-art look crisp. Coordinates are normalized
// with v increasing upward (render-target orientation); the kernels' 1-uv.y
// flip converts screen space into this convention before sampling.
//
// ScreenTexture is read-only over the pixmap it wraps. Hosts that keep
// drawing into a frame after wrapping it violate the render-pass barrier;
// render.Frame avoids this by cloning the base buffer at resolve time.
type ScreenTexture struct {
	pix  *Pixmap
	mode AddressMode
}

// NewScreenTexture wraps a resolved frame as a clamp-to-edge sampler.
func NewScreenTexture(pix *Pixmap) *ScreenTexture {
	return &ScreenTexture{pix: pix, mode: AddressClampToEdge}
}

// NewScreenTextureMode wraps a resolved frame with an explicit address
// mode. Bloom assumes clamp-to-edge; other modes exist for hosts reusing
// the sampler for tiled backgrounds.
func NewScreenTextureMode(pix *Pixmap, mode AddressMode) *ScreenTexture {
	return &ScreenTexture{pix: pix, mode: mode}
}

// Mode returns the configured address mode.
func (t *ScreenTexture) Mode() AddressMode {
	return t.mode
}

// Sample returns the texel color at normalized coordinates (u, v) with v
// increasing upward. Out-of-range coordinates are resolved by the
// configured address mode.
func (t *ScreenTexture) Sample(u, v float64) RGBA {
	w := t.pix.Width()
	h := t.pix.Height()

	x := t.resolve(int(math.Floor(u*float64(w))), w)
	// v=0 addresses the bottom row of the stored buffer.
	yUp := t.resolve(int(math.Floor(v*float64(h))), h)
	y := h - 1 - yUp

	return t.pix.GetPixel(x, y)
}

// resolve maps a texel index onto [0, n-1] per the address mode.
func (t *ScreenTexture) resolve(i, n int) int {
	switch t.mode {
	case AddressRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default: // AddressClampToEdge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
