package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/gogpu/postfx"
)

// Program wraps a compiled and linked GL shader program.
type Program struct {
	handle uint32
}

// CompileProgram compiles vertex and fragment sources and links them into a
// program. The caller must have a current GL context.
func CompileProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(handle, logLen, nil, &log[0])
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("opengl: link: %s", string(log[:logLen]))
	}

	return &Program{handle: handle}, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("opengl: %s shader: %s", name, string(log[:logLen]))
	}

	return shader, nil
}

// Handle returns the GL program name.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// uniform returns the location of a uniform, -1 if inactive.
func (p *Program) uniform(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

// SkyProgram hosts the sky gradient shader. The palette is baked into the
// fragment source at compile time; per-frame uniforms are uploaded by Bind.
type SkyProgram struct {
	prog       *Program
	paletteLen int

	locY       int32
	locHeight  int32
	locMax     int32
	locTexture int32
}

// NewSkyProgram generates, compiles and links the sky shader for the given
// profile and palette.
func NewSkyProgram(p Profile, palette postfx.Palette) (*SkyProgram, error) {
	frag, err := SkyFragmentSource(p, palette)
	if err != nil {
		return nil, err
	}
	prog, err := CompileProgram(VertexSource(p), frag)
	if err != nil {
		return nil, err
	}

	return &SkyProgram{
		prog:       prog,
		paletteLen: len(palette),
		locY:       prog.uniform("y"),
		locHeight:  prog.uniform("height"),
		locMax:     prog.uniform("maxTowerHeight"),
		locTexture: prog.uniform("Texture"),
	}, nil
}

// Bind validates the kernel's uniforms, activates the program and uploads
// them. textureUnit is the unit bound to the reserved Texture sampler; the
// host must still bind a valid texture there even though the gradient math
// never reads it.
func (s *SkyProgram) Bind(k *postfx.SkyGradient, textureUnit int32) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if len(k.Palette) != s.paletteLen {
		return &postfx.InvalidRenderParameterError{
			Kernel: "SkyGradient",
			Param:  "palette",
			Value:  float64(len(k.Palette)),
			Reason: fmt.Sprintf("compiled for %d colors", s.paletteLen),
		}
	}

	gl.UseProgram(s.prog.handle)
	gl.Uniform1f(s.locY, float32(k.Y))
	gl.Uniform1f(s.locHeight, float32(k.Height))
	gl.Uniform1f(s.locMax, float32(k.MaxTowerHeight))
	gl.Uniform1i(s.locTexture, textureUnit)
	return nil
}

// Destroy releases the program.
func (s *SkyProgram) Destroy() {
	s.prog.Destroy()
}

// BloomProgram hosts the bloom shader.
//
// The _ScreenTexture sampler must be configured clamp-to-edge by the host;
// the kernel's edge behavior depends on it and the shader cannot enforce an
// addressing mode itself.
type BloomProgram struct {
	prog *Program

	locScale  int32
	locScreen int32
}

// NewBloomProgram generates, compiles and links the bloom shader.
func NewBloomProgram(p Profile) (*BloomProgram, error) {
	prog, err := CompileProgram(VertexSource(p), BloomFragmentSource(p))
	if err != nil {
		return nil, err
	}

	return &BloomProgram{
		prog:      prog,
		locScale:  prog.uniform("scale"),
		locScreen: prog.uniform("_ScreenTexture"),
	}, nil
}

// Bind validates the kernel's scalar uniforms, activates the program and
// uploads them. textureUnit is the unit holding the resolved frame.
func (b *BloomProgram) Bind(k *postfx.BloomFilter, textureUnit int32) error {
	if err := k.ValidateUniforms(); err != nil {
		return err
	}

	gl.UseProgram(b.prog.handle)
	gl.Uniform1f(b.locScale, float32(k.Scale))
	gl.Uniform1i(b.locScreen, textureUnit)
	return nil
}

// Destroy releases the program.
func (b *BloomProgram) Destroy() {
	b.prog.Destroy()
}
