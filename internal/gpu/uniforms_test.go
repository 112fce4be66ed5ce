package gpu

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/postfx"
)

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestPackSkyUniforms(t *testing.T) {
	k := &postfx.SkyGradient{
		Y:              6,
		Height:         36,
		MaxTowerHeight: 30,
		Palette:        postfx.Palette{postfx.Red, postfx.Green, postfx.Blue},
	}

	buf, err := PackSkyUniforms(k)
	if err != nil {
		t.Fatalf("PackSkyUniforms() = %v", err)
	}
	if len(buf) != SkyUniformBytes {
		t.Fatalf("len = %d, want %d", len(buf), SkyUniformBytes)
	}

	if got := f32At(buf, 0); got != 6 {
		t.Errorf("y = %v, want 6", got)
	}
	if got := f32At(buf, 4); got != 36 {
		t.Errorf("height = %v, want 36", got)
	}
	if got := f32At(buf, 8); got != 30 {
		t.Errorf("maxTowerHeight = %v, want 30", got)
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 3 {
		t.Errorf("palette_len = %d, want 3", got)
	}

	// Palette vec4s start at the second 16-byte row.
	if got := f32At(buf, 16); got != 1 {
		t.Errorf("palette[0].r = %v, want 1", got)
	}
	if got := f32At(buf, 16+16+4); got != 1 {
		t.Errorf("palette[1].g = %v, want 1", got)
	}
	if got := f32At(buf, 16+32+8); got != 1 {
		t.Errorf("palette[2].b = %v, want 1", got)
	}
}

func TestPackSkyUniformsValidates(t *testing.T) {
	k := &postfx.SkyGradient{
		MaxTowerHeight: 0,
		Palette:        postfx.Palette{postfx.Red, postfx.Blue},
	}

	_, err := PackSkyUniforms(k)
	var perr *postfx.InvalidRenderParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("PackSkyUniforms() = %v, want InvalidRenderParameterError", err)
	}
}

func TestPackSkyUniformsPaletteCapacity(t *testing.T) {
	pal := make(postfx.Palette, MaxPaletteSize+1)
	for i := range pal {
		pal[i] = postfx.White
	}
	k := &postfx.SkyGradient{MaxTowerHeight: 30, Palette: pal}

	_, err := PackSkyUniforms(k)
	var perr *postfx.InvalidRenderParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("PackSkyUniforms() = %v, want InvalidRenderParameterError", err)
	}
	if perr.Param != "palette" {
		t.Errorf("param = %q, want palette", perr.Param)
	}
}

func TestPackBloomUniforms(t *testing.T) {
	k := &postfx.BloomFilter{Scale: 2}

	buf, err := PackBloomUniforms(k)
	if err != nil {
		t.Fatalf("PackBloomUniforms() = %v", err)
	}
	if len(buf) != BloomUniformBytes {
		t.Fatalf("len = %d, want %d", len(buf), BloomUniformBytes)
	}

	if got := f32At(buf, 0); got != 2 {
		t.Errorf("scale = %v, want 2", got)
	}
	// Zero-valued tuning falls back to the named defaults.
	if got := f32At(buf, 4); got != float32(postfx.DefaultBloomIntensity) {
		t.Errorf("intensity = %v, want default %v", got, postfx.DefaultBloomIntensity)
	}
	if got := f32At(buf, 8); got != float32(postfx.DefaultBloomAlpha) {
		t.Errorf("alpha = %v, want default %v", got, postfx.DefaultBloomAlpha)
	}
}

func TestPackBloomUniformsValidates(t *testing.T) {
	_, err := PackBloomUniforms(&postfx.BloomFilter{Scale: -1})
	var perr *postfx.InvalidRenderParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("PackBloomUniforms() = %v, want InvalidRenderParameterError", err)
	}
	if perr.Param != "scale" {
		t.Errorf("param = %q, want scale", perr.Param)
	}
}
