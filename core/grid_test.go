package core

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridPartition(t *testing.T) {
	g := DefaultGrid()

	a, b := g.GroupA(), g.GroupB()
	if len(a) != 18 {
		t.Errorf("group A: got %d cells, want 18", len(a))
	}
	if len(b) != 9 {
		t.Errorf("group B: got %d cells, want 9", len(b))
	}

	seen := make(map[int]Group)
	for i, c := range a {
		if c.ID != i {
			t.Errorf("group A position %d holds cell %d", i, c.ID)
		}
		seen[c.ID] = GroupA
	}
	for i, c := range b {
		if c.ID != GroupASize+i {
			t.Errorf("group B position %d holds cell %d", i, c.ID)
		}
		if _, dup := seen[c.ID]; dup {
			t.Errorf("cell %d is in both groups", c.ID)
		}
		seen[c.ID] = GroupB
	}
	if len(seen) != CellCount {
		t.Errorf("groups cover %d cells, want %d", len(seen), CellCount)
	}
	for id, grp := range seen {
		if GroupOf(id) != grp {
			t.Errorf("GroupOf(%d) = %v, want %v", id, GroupOf(id), grp)
		}
	}
}

func TestGridCells(t *testing.T) {
	g := DefaultGrid()
	cells := g.Cells()
	if len(cells) != CellCount {
		t.Fatalf("got %d cells", len(cells))
	}
	for id, c := range cells {
		if c.ID != id {
			t.Errorf("cell %d has id %d", id, c.ID)
		}
		if c.Offset != DefaultOffsets[id] {
			t.Errorf("cell %d offset: got %v, want %v", id, c.Offset, DefaultOffsets[id])
		}
		if c.ColorIndex != id%6 {
			t.Errorf("cell %d color index: got %d", id, c.ColorIndex)
		}
		if c.Vertices != BuildCell(&CubeTemplate, DefaultOffsets[id]) {
			t.Errorf("cell %d vertices do not match the translated template", id)
		}
		colors := c.ColorData()
		for k := range colors {
			if colors[k] != DefaultPalette[id%6] {
				t.Errorf("cell %d color entry %d: got %v", id, k, colors[k])
				break
			}
		}
	}
	if cells[0].Vertices != VertexData(CubeTemplate) {
		t.Error("cell 0 should be the template itself")
	}
}

func TestDefaultOffsetsFormGrid(t *testing.T) {
	seen := make(map[mgl32.Vec3]int)
	for id, o := range DefaultOffsets {
		for axis := 0; axis < 3; axis++ {
			if o[axis] != -2 && o[axis] != 0 && o[axis] != 2 {
				t.Errorf("offset %d axis %d: %v off the lattice", id, axis, o[axis])
			}
		}
		if prev, ok := seen[o]; ok {
			t.Errorf("offset %d duplicates offset %d", id, prev)
		}
		seen[o] = id
	}
	for _, c := range DefaultGrid().GroupB() {
		if c.Offset[2] != 2 {
			t.Errorf("group B cell %d is not in the front layer: %v", c.ID, c.Offset)
		}
	}
}

func TestNewGridRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name    string
		offsets []mgl32.Vec3
		palette Palette
	}{
		{name: "Too few offsets", offsets: DefaultOffsets[:26], palette: DefaultPalette},
		{name: "Too many offsets", offsets: append(append([]mgl32.Vec3{}, DefaultOffsets...), mgl32.Vec3{4, 4, 4}), palette: DefaultPalette},
		{name: "No offsets", offsets: nil, palette: DefaultPalette},
		{name: "Short palette", offsets: DefaultOffsets, palette: DefaultPalette[:5]},
		{name: "Long palette", offsets: DefaultOffsets, palette: append(append(Palette{}, DefaultPalette...), mgl32.Vec3{1, 1, 1})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(&CubeTemplate, tc.offsets, tc.palette)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrGridConfig) {
				t.Errorf("error %v is not ErrGridConfig", err)
			}
			if g != nil {
				t.Error("expected a nil grid")
			}
		})
	}
}

func TestGroupString(t *testing.T) {
	if GroupA.String() != "A" || GroupB.String() != "B" {
		t.Errorf("got %q and %q", GroupA, GroupB)
	}
	if Group(7).String() != "Group(7)" {
		t.Errorf("got %q", Group(7))
	}
}
