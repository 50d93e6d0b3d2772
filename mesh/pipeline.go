package mesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Embedded text quad shader source.
//
//go:embed shaders/text_quad.wgsl
var textShaderSource string

// Pipeline constants for drawing a Mesh.
const (
	IndexFormat = gputypes.IndexFormatUint32
	Topology    = gputypes.PrimitiveTopologyTriangleList
)

// UniformSize is the byte size of the text uniform buffer.
// Layout: transform (mat4x4<f32>) = 64 bytes + color (vec4<f32>) = 16 bytes.
const UniformSize = 80

// VertexLayout describes Vertex for pipeline creation.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}

// ShaderSource returns the WGSL source of the text quad shader.
// Entry points: vs_main, fs_main.
func ShaderSource() string {
	return textShaderSource
}

// CompileShader compiles the text quad shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(textShaderSource)
	if err != nil {
		return nil, fmt.Errorf("mesh: compile text shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("mesh: compile text shader: SPIR-V size %d not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

// Ortho returns a column-major matrix mapping y-up layout pixels to clip
// space, with the layout origin placed originX, originY pixels from the
// top-left corner of a width x height viewport.
func Ortho(width, height, originX, originY float32) [16]float32 {
	sx := 2 / width
	sy := 2 / height
	return [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		-1 + originX*sx, 1 - originY*sy, 0, 1,
	}
}

// Uniforms serializes the shader uniforms.
func Uniforms(transform [16]float32, color [4]float32) []byte {
	buf := make([]byte, UniformSize)
	for i, f := range transform {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	for i, f := range color {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(f))
	}
	return buf
}
