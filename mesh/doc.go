// Package mesh turns glyph quads into vertex and index buffers.
//
// Each quad becomes four vertices (position + atlas coordinate) and six
// uint32 indices forming two triangles. The package also describes the
// vertex layout and ships the WGSL shader that draws the quads, so a GPU
// backend can upload a Mesh without knowing anything about text layout.
package mesh
