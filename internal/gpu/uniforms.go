package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/postfx"
)

// MaxPaletteSize is the palette capacity of the sky uniform block. The
// WGSL array is fixed-size; palette_len selects how much of it is live.
const MaxPaletteSize = 8

// SkyUniformBytes is the std140 size of the sky uniform block:
// three f32 scalars plus a u32 length (one 16-byte row), then the palette
// array of vec4s.
const SkyUniformBytes = 16 + MaxPaletteSize*16

// BloomUniformBytes is the std140 size of the bloom uniform block.
const BloomUniformBytes = 16

// PackSkyUniforms validates the kernel at the host boundary and packs its
// uniforms into a buffer laid out to match SkyUniforms in sky.wgsl.
// Validation failure means nothing is uploaded; non-finite values never
// reach the kernel.
func PackSkyUniforms(k *postfx.SkyGradient) ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if len(k.Palette) > MaxPaletteSize {
		return nil, &postfx.InvalidRenderParameterError{
			Kernel: "SkyGradient",
			Param:  "palette",
			Value:  float64(len(k.Palette)),
			Reason: "exceeds uniform palette capacity",
		}
	}

	buf := make([]byte, SkyUniformBytes)
	putF32(buf[0:], float32(k.Y))
	putF32(buf[4:], float32(k.Height))
	putF32(buf[8:], float32(k.MaxTowerHeight))
	binary.LittleEndian.PutUint32(buf[12:], uint32(len(k.Palette)))

	for i, c := range k.Palette {
		off := 16 + i*16
		putF32(buf[off+0:], float32(c.R))
		putF32(buf[off+4:], float32(c.G))
		putF32(buf[off+8:], float32(c.B))
		putF32(buf[off+12:], float32(c.A))
	}
	return buf, nil
}

// PackBloomUniforms validates the kernel and packs its uniforms to match
// BloomUniforms in bloom.wgsl. The filter's Screen sampler is a separate
// binding and is not part of the uniform block; callers bind the resolved
// frame's texture view themselves.
func PackBloomUniforms(k *postfx.BloomFilter) ([]byte, error) {
	// The GPU path binds the screen texture out of band; only the scalar
	// uniforms go through the block.
	if err := k.ValidateUniforms(); err != nil {
		return nil, err
	}

	intensity := k.Intensity
	if intensity == 0 {
		intensity = postfx.DefaultBloomIntensity
	}
	alpha := k.Alpha
	if alpha == 0 {
		alpha = postfx.DefaultBloomAlpha
	}

	buf := make([]byte, BloomUniformBytes)
	putF32(buf[0:], float32(k.Scale))
	putF32(buf[4:], float32(intensity))
	putF32(buf[8:], float32(alpha))
	return buf, nil
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
