// Package gpu provides the WGSL realization of the postfx kernels for
// WebGPU hosts.
//
// The shader sources are embedded at build time and compiled to SPIR-V
// through gogpu/naga; module creation goes through gogpu/wgpu's HAL. Uniform
// packing and validation live in uniforms.go and mirror the CPU kernels'
// host-boundary checks exactly.
package gpu

import (
	_ "embed"
	"errors"
)

// Embedded WGSL shader sources.

//go:embed shaders/sky.wgsl
var skyShaderSource string

//go:embed shaders/bloom.wgsl
var bloomShaderSource string

// SkyShaderSource returns the WGSL source for the sky gradient kernel.
func SkyShaderSource() string { return skyShaderSource }

// BloomShaderSource returns the WGSL source for the bloom kernel.
func BloomShaderSource() string { return bloomShaderSource }

// ValidateSources checks that the embedded sources are present. A failed
// embed produces an empty string rather than a build error, so this is
// checked once before any compilation is attempted.
func ValidateSources() error {
	if skyShaderSource == "" {
		return errors.New("gpu: sky shader source is empty")
	}
	if bloomShaderSource == "" {
		return errors.New("gpu: bloom shader source is empty")
	}
	return nil
}
