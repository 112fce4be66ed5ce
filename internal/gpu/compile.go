package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// CompileToSPIRV compiles WGSL source to a SPIR-V word slice.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// ShaderModules holds the compiled kernel modules for one device.
type ShaderModules struct {
	Sky   hal.ShaderModule
	Bloom hal.ShaderModule
}

// CompileShaders compiles both kernels and creates their HAL modules on
// the given device.
func CompileShaders(device hal.Device) (*ShaderModules, error) {
	if err := ValidateSources(); err != nil {
		return nil, err
	}

	sky, err := createModule(device, "postfx_sky", skyShaderSource)
	if err != nil {
		return nil, err
	}
	bloom, err := createModule(device, "postfx_bloom", bloomShaderSource)
	if err != nil {
		device.DestroyShaderModule(sky)
		return nil, err
	}

	return &ShaderModules{Sky: sky, Bloom: bloom}, nil
}

// Destroy releases both modules.
func (m *ShaderModules) Destroy(device hal.Device) {
	if device == nil {
		return
	}
	if m.Bloom != nil {
		device.DestroyShaderModule(m.Bloom)
	}
	if m.Sky != nil {
		device.DestroyShaderModule(m.Sky)
	}
}

func createModule(device hal.Device, label, source string) (hal.ShaderModule, error) {
	code, err := CompileToSPIRV(source)
	if err != nil {
		return nil, fmt.Errorf("gpu: %s: %w", label, err)
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}
