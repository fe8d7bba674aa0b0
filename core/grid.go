package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// CellCount is the number of cubes in the grid.
	CellCount = 27
	// GroupASize is the number of leading cells drawn with the primary transform.
	// The remaining cells form group B.
	GroupASize = 18
	// GroupBSize is the number of trailing cells drawn with the doubled transform.
	GroupBSize = CellCount - GroupASize
)

// ErrGridConfig reports an offset or palette list of the wrong length.
var ErrGridConfig = errors.New("invalid grid configuration")

// Group identifies which transform a cell is drawn with.
type Group int

const (
	GroupA Group = iota
	GroupB
)

func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// DefaultOffsets positions the 27 cells relative to cell 0. Cells 0-17 fill
// the back and middle layers (z = -2 and z = 0); cells 18-26 are the front
// layer at z = +2.
var DefaultOffsets = []mgl32.Vec3{
	{0, 0, 0},
	{0, -2, 0},
	{0, 2, 0},
	{-2, 0, 0},
	{2, 0, 0},

	{0, 0, -2},
	{-2, 2, -2},
	{0, 2, -2},
	{2, 2, -2},
	{2, 0, -2},
	{-2, 0, -2},
	{-2, -2, -2},
	{0, -2, -2},
	{2, -2, -2},

	{-2, 2, 0},
	{2, 2, 0},
	{-2, -2, 0},
	{2, -2, 0},

	{0, 0, 2},
	{-2, 2, 2},
	{0, 2, 2},
	{2, 2, 2},
	{2, 0, 2},
	{-2, 0, 2},
	{-2, -2, 2},
	{0, -2, 2},
	{2, -2, 2},
}

// CubeCell is one positioned, colored cube of the grid.
type CubeCell struct {
	ID         int
	Offset     mgl32.Vec3
	ColorIndex int
	Color      mgl32.Vec3
	Vertices   VertexData
}

// ColorData broadcasts the cell's color over all of its vertices.
func (c *CubeCell) ColorData() ColorData {
	return BuildColor(Palette{c.Color}, 0)
}

// Grid is the ordered collection of cells, split once into group A and
// group B. It is not modified after construction.
type Grid struct {
	cells []CubeCell
}

// NewGrid builds every cell from the template, an offset and its palette
// color. The offset list must hold exactly CellCount entries and the palette
// exactly PaletteSize.
func NewGrid(template *Template, offsets []mgl32.Vec3, palette Palette) (*Grid, error) {
	if len(offsets) != CellCount {
		return nil, fmt.Errorf("%w: want %d offsets, got %d", ErrGridConfig, CellCount, len(offsets))
	}
	if len(palette) != PaletteSize {
		return nil, fmt.Errorf("%w: want %d palette colors, got %d", ErrGridConfig, PaletteSize, len(palette))
	}

	cells := make([]CubeCell, CellCount)
	for id, offset := range offsets {
		idx := ColorIndex(id)
		cells[id] = CubeCell{
			ID:         id,
			Offset:     offset,
			ColorIndex: idx,
			Color:      palette[idx],
			Vertices:   BuildCell(template, offset),
		}
	}
	return &Grid{cells: cells}, nil
}

// DefaultGrid builds the grid from CubeTemplate, DefaultOffsets and
// DefaultPalette.
func DefaultGrid() *Grid {
	g, err := NewGrid(&CubeTemplate, DefaultOffsets, DefaultPalette)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells returns all cells in id order.
func (g *Grid) Cells() []CubeCell {
	return g.cells
}

// GroupA returns cells [0, GroupASize).
func (g *Grid) GroupA() []CubeCell {
	return g.cells[:GroupASize:GroupASize]
}

// GroupB returns cells [GroupASize, CellCount).
func (g *Grid) GroupB() []CubeCell {
	return g.cells[GroupASize:]
}

// GroupOf reports which group a cell id belongs to.
func GroupOf(id int) Group {
	if id < GroupASize {
		return GroupA
	}
	return GroupB
}
