package rendering

import (
	"testing"
)

func TestResourcesReleaseInReverseOrder(t *testing.T) {
	var order []string
	res := NewResources(nil)
	for _, name := range []string{"window", "program", "vertex array", "cell buffers"} {
		name := name
		res.Acquire(name, func() { order = append(order, name) })
	}
	if res.Len() != 4 {
		t.Fatalf("holding %d resources", res.Len())
	}

	res.Release()

	want := []string{"cell buffers", "vertex array", "program", "window"}
	if len(order) != len(want) {
		t.Fatalf("released %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("release %d: got %q, want %q", i, order[i], want[i])
		}
	}
	if res.Len() != 0 {
		t.Errorf("still holding %d resources", res.Len())
	}
}

func TestResourcesReleaseIsIdempotent(t *testing.T) {
	calls := 0
	res := NewResources(nil)
	res.Acquire("program", func() { calls++ })
	res.Release()
	res.Release()
	if calls != 1 {
		t.Errorf("release ran %d times", calls)
	}
}

func TestResourcesPartialAcquisition(t *testing.T) {
	// A failed startup releases only what was acquired before the failure.
	var released []string
	res := NewResources(nil)
	res.Acquire("window", func() { released = append(released, "window") })
	func() {
		defer res.Release()
		// program compilation fails here; nothing else is acquired
	}()
	if len(released) != 1 || released[0] != "window" {
		t.Errorf("released %v", released)
	}
}
