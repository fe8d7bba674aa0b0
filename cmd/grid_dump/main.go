package main

import (
	"flag"
	"fmt"

	"cubegrid/core"
	"cubegrid/inspect"
)

func main() {
	var (
		frames = flag.Int("frames", 5, "Number of pipeline frames to print")
		step   = flag.Float64("step", 1.0/60.0, "Seconds between frames")
	)
	flag.Parse()

	fmt.Println("=== Cube Grid Dump ===")

	grid := core.DefaultGrid()

	fmt.Println("\nCells:")
	for _, c := range grid.Cells() {
		fmt.Printf("  %2d  group %s  offset (%+.0f, %+.0f, %+.0f)  color %d %s  v0 (%+.0f, %+.0f, %+.0f)\n",
			c.ID, core.GroupOf(c.ID), c.Offset[0], c.Offset[1], c.Offset[2],
			c.ColorIndex, inspect.ColorHex(c.Color),
			c.Vertices[0][0], c.Vertices[0][1], c.Vertices[0][2])
	}
	fmt.Printf("Group A: %d cells, group B: %d cells\n", len(grid.GroupA()), len(grid.GroupB()))

	fmt.Println("\nTransform pipeline:")
	state := core.InitialState(core.DefaultCamera())
	for i := 1; i <= *frames; i++ {
		var ft core.FrameTransforms
		ft, state = state.Advance(float64(i) * *step)
		fmt.Printf("Frame %d (t=%.4fs):\n", i, ft.Elapsed)
		printMatrix("  primary ", ft.Primary)
		printMatrix("  double  ", ft.Double)
	}
}

func printMatrix(label string, m [16]float32) {
	for row := 0; row < 4; row++ {
		prefix := label
		if row > 0 {
			prefix = fmt.Sprintf("%*s", len(label), "")
		}
		fmt.Printf("%s[%9.4f %9.4f %9.4f %9.4f]\n", prefix, m[row], m[row+4], m[row+8], m[row+12])
	}
}
