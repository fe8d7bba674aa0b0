package inspect

import (
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"cubegrid/core"
)

// CellData describes one cell of the grid for inspector clients.
type CellData struct {
	ID         int        `json:"id"`
	Group      string     `json:"group"`
	Offset     [3]float32 `json:"offset"`
	ColorIndex int        `json:"colorIndex"`
	Color      string     `json:"color"`
}

// GridData is sent once to every client when it connects.
type GridData struct {
	Type  string     `json:"type"`
	Cells []CellData `json:"cells"`
}

// FrameData is broadcast for every observed frame. Matrices are column-major.
type FrameData struct {
	Type     string      `json:"type"`
	Frame    uint64      `json:"frame"`
	Elapsed  float64     `json:"elapsed"`
	Model    [16]float32 `json:"model"`
	Primary  [16]float32 `json:"primary"`
	Double   [16]float32 `json:"double"`
	Baseline [16]float32 `json:"baseline"`
}

// ColorHex formats a palette color as #rrggbb.
func ColorHex(c mgl32.Vec3) string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

func createGridData(grid *core.Grid) GridData {
	cells := grid.Cells()
	data := GridData{
		Type:  "grid",
		Cells: make([]CellData, len(cells)),
	}
	for i, c := range cells {
		data.Cells[i] = CellData{
			ID:         c.ID,
			Group:      core.GroupOf(c.ID).String(),
			Offset:     c.Offset,
			ColorIndex: c.ColorIndex,
			Color:      ColorHex(c.Color),
		}
	}
	return data
}

func createFrameData(frame uint64, ft core.FrameTransforms, next core.TransformState) FrameData {
	return FrameData{
		Type:     "frame",
		Frame:    frame,
		Elapsed:  ft.Elapsed,
		Model:    ft.Model,
		Primary:  ft.Primary,
		Double:   ft.Double,
		Baseline: next.Baseline,
	}
}
