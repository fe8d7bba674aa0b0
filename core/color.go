package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PaletteSize is the number of colors cycled over the grid cells.
const PaletteSize = 6

// Palette is the ordered set of RGB colors a cell picks from by id mod 6.
type Palette []mgl32.Vec3

// ColorData is one color per cell vertex.
type ColorData [VerticesPerCell]mgl32.Vec3

// DefaultPalette is red, green, blue, olive, purple, teal.
var DefaultPalette = Palette{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0.5, 0.5, 0},
	{0.5, 0, 0.5},
	{0, 0.5, 0.5},
}

// ColorIndex returns the palette slot for a cell id.
func ColorIndex(id int) int {
	return id % PaletteSize
}

// BuildColor broadcasts palette[colorIndex] to every vertex of a cell, giving
// one flat color for the whole cube.
func BuildColor(palette Palette, colorIndex int) ColorData {
	var out ColorData
	c := palette[colorIndex]
	for k := range out {
		out[k] = c
	}
	return out
}

// Floats flattens the color data into r, g, b triples for buffer upload.
func (d *ColorData) Floats() []float32 {
	return flatten(d[:])
}
