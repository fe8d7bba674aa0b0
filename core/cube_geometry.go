package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VerticesPerCell is the vertex count of one cube: 6 faces, 2 triangles each.
const VerticesPerCell = 12 * 3

// Template is the canonical geometry of a single axis-aligned cube spanning
// [-1, 1] on every axis. Three consecutive vertices form a triangle, so the
// order of the entries is the topology.
type Template [VerticesPerCell]mgl32.Vec3

// VertexData holds one cell's translated copy of a Template.
type VertexData [VerticesPerCell]mgl32.Vec3

// CubeTemplate is shared read-only by every cell of the grid.
var CubeTemplate = Template{
	{-1, -1, -1},
	{-1, -1, 1},
	{-1, 1, 1},
	{1, 1, -1},
	{-1, -1, -1},
	{-1, 1, -1},
	{1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, -1},
	{-1, -1, -1},
	{-1, 1, 1},
	{-1, 1, -1},
	{1, -1, 1},
	{-1, -1, 1},
	{-1, -1, -1},
	{-1, 1, 1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{1, -1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{1, 1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{1, 1, -1},
	{-1, 1, -1},
	{1, 1, 1},
	{-1, 1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{1, -1, 1},
}

// BuildCell translates every template vertex by offset, keeping the
// template's vertex order.
func BuildCell(template *Template, offset mgl32.Vec3) VertexData {
	var out VertexData
	for v := range template {
		out[v] = template[v].Add(offset)
	}
	return out
}

// Floats flattens the vertex data into x, y, z triples for buffer upload.
func (d *VertexData) Floats() []float32 {
	return flatten(d[:])
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
