package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"cubegrid/core"
)

// CellBufferSet holds one vertex buffer and one color buffer per grid cell.
// The buffers are filled once with STATIC_DRAW and never rewritten.
type CellBufferSet struct {
	vertex []uint32
	color  []uint32
}

// NewCellBufferSet uploads every cell of the grid, in id order.
func NewCellBufferSet(grid *core.Grid) *CellBufferSet {
	cells := grid.Cells()
	s := &CellBufferSet{
		vertex: make([]uint32, len(cells)),
		color:  make([]uint32, len(cells)),
	}
	for i := range cells {
		cell := &cells[i]
		colors := cell.ColorData()
		s.vertex[i] = uploadStatic(cell.Vertices.Floats())
		s.color[i] = uploadStatic(colors.Floats())
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return s
}

func uploadStatic(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return buf
}

// Len returns the number of cells with buffers.
func (s *CellBufferSet) Len() int {
	return len(s.vertex)
}

// Draw binds the cell's buffers to the position and color attributes and
// draws its 12 triangles.
func (s *CellBufferSet) Draw(id int, position, color uint32) {
	gl.EnableVertexAttribArray(position)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vertex[id])
	gl.VertexAttribPointerWithOffset(position, 3, gl.FLOAT, false, 0, 0)

	gl.EnableVertexAttribArray(color)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.color[id])
	gl.VertexAttribPointerWithOffset(color, 3, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, core.VerticesPerCell)
}

// Release deletes the buffers, last cell first.
func (s *CellBufferSet) Release() {
	for i := len(s.vertex) - 1; i >= 0; i-- {
		gl.DeleteBuffers(1, &s.color[i])
		gl.DeleteBuffers(1, &s.vertex[i])
	}
	s.vertex = nil
	s.color = nil
}
