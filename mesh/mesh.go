package mesh

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 16 bytes per vertex.
const VertexStride = 16

// Per-quad counts. Every character slot of a layout emits exactly one quad.
const (
	VerticesPerQuad = 4
	IndicesPerQuad  = 6
)

// Quad is a single glyph quad in pixel space, y-up.
// (X0, Y0) is the bottom-left corner; V0 is sampled at Y0.
type Quad struct {
	X0, Y0, X1, Y1 float32

	// UV coordinates in the glyph atlas [0, 1].
	U0, V0, U1, V1 float32
}

// Degenerate reports whether the quad has zero area.
func (q Quad) Degenerate() bool {
	return q.X0 == q.X1 || q.Y0 == q.Y1
}

// Vertex is a single vertex. Matches VertexInput in text_quad.wgsl.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Mesh is an indexed triangle list with two triangles per quad.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// New returns an empty mesh with room for n quads.
func New(n int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, n*VerticesPerQuad),
		Indices:  make([]uint32, 0, n*IndicesPerQuad),
	}
}

// FromQuads builds a mesh from quads.
func FromQuads(quads []Quad) *Mesh {
	m := New(len(quads))
	for _, q := range quads {
		m.AppendQuad(q)
	}
	return m
}

// AppendQuad appends q as 4 vertices and 6 indices.
func (m *Mesh) AppendQuad(q Quad) {
	base := uint32(len(m.Vertices)) //nolint:gosec // vertex count fits in uint32 for any drawable mesh
	m.Vertices = append(m.Vertices,
		Vertex{X: q.X0, Y: q.Y0, U: q.U0, V: q.V0}, // bottom-left
		Vertex{X: q.X1, Y: q.Y0, U: q.U1, V: q.V0}, // bottom-right
		Vertex{X: q.X1, Y: q.Y1, U: q.U1, V: q.V1}, // top-right
		Vertex{X: q.X0, Y: q.Y1, U: q.U0, V: q.V1}, // top-left
	)
	m.Indices = append(m.Indices,
		base+0, base+1, base+2,
		base+2, base+3, base+0,
	)
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.Vertices) / VerticesPerQuad
}

// Quad reconstructs quad i from its vertices.
func (m *Mesh) Quad(i int) Quad {
	v := m.Vertices[i*VerticesPerQuad : (i+1)*VerticesPerQuad]
	return Quad{
		X0: v[0].X, Y0: v[0].Y, X1: v[2].X, Y1: v[2].Y,
		U0: v[0].U, V0: v[0].V, U1: v[2].U, V1: v[2].V,
	}
}

// Equal reports whether two meshes hold identical vertex and index data.
func (m *Mesh) Equal(o *Mesh) bool {
	if len(m.Vertices) != len(o.Vertices) || len(m.Indices) != len(o.Indices) {
		return false
	}
	for i := range m.Vertices {
		if m.Vertices[i] != o.Vertices[i] {
			return false
		}
	}
	for i := range m.Indices {
		if m.Indices[i] != o.Indices[i] {
			return false
		}
	}
	return true
}

// QuadIndices generates index data for n quads.
// Uses the pattern: 0,1,2, 2,3,0 for each quad (two triangles).
func QuadIndices(n int) []uint32 {
	indices := make([]uint32, n*IndicesPerQuad)
	for i := 0; i < n; i++ {
		base := i * IndicesPerQuad
		vertex := uint32(i * VerticesPerQuad) //nolint:gosec // bounded by caller's quad count

		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2

		indices[base+3] = vertex + 2
		indices[base+4] = vertex + 3
		indices[base+5] = vertex + 0
	}
	return indices
}

// VertexBytes serializes the vertices for GPU upload, little-endian.
func (m *Mesh) VertexBytes() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	data := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		writeVertex(data[i*VertexStride:], v)
	}
	return data
}

// IndexBytes serializes the indices for GPU upload, little-endian.
func (m *Mesh) IndexBytes() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	data := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	return data
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.U))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.V))
}
