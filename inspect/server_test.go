package inspect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"

	"cubegrid/core"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color mgl32.Vec3
		want  string
	}{
		{name: "Red", color: mgl32.Vec3{1, 0, 0}, want: "#ff0000"},
		{name: "Green", color: mgl32.Vec3{0, 1, 0}, want: "#00ff00"},
		{name: "Olive", color: mgl32.Vec3{0.5, 0.5, 0}, want: "#808000"},
		{name: "Out of range", color: mgl32.Vec3{2, -1, 0}, want: "#ff0000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColorHex(tc.color); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestServeGrid(t *testing.T) {
	hub := NewHub(core.DefaultGrid(), nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/grid")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var grid GridData
	if err := json.NewDecoder(resp.Body).Decode(&grid); err != nil {
		t.Fatal(err)
	}
	if grid.Type != "grid" || len(grid.Cells) != core.CellCount {
		t.Fatalf("got type %q with %d cells", grid.Type, len(grid.Cells))
	}
	groups := map[string]int{}
	for i, c := range grid.Cells {
		if c.ID != i {
			t.Errorf("cell %d has id %d", i, c.ID)
		}
		groups[c.Group]++
		if c.ColorIndex != i%6 {
			t.Errorf("cell %d color index %d", i, c.ColorIndex)
		}
	}
	if groups["A"] != 18 || groups["B"] != 9 {
		t.Errorf("groups: %v", groups)
	}
	if grid.Cells[7].Color != "#00ff00" {
		t.Errorf("cell 7 color: got %s", grid.Cells[7].Color)
	}
	if grid.Cells[4].Offset != [3]float32{2, 0, 0} {
		t.Errorf("cell 4 offset: got %v", grid.Cells[4].Offset)
	}
}

func TestWebSocketStreamsFrames(t *testing.T) {
	hub := NewHub(core.DefaultGrid(), nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var grid GridData
	if err := conn.ReadJSON(&grid); err != nil {
		t.Fatal(err)
	}
	if grid.Type != "grid" || len(grid.Cells) != core.CellCount {
		t.Fatalf("first message: type %q, %d cells", grid.Type, len(grid.Cells))
	}
	if hub.Clients() != 1 {
		t.Fatalf("hub has %d clients", hub.Clients())
	}

	initial := core.InitialState(core.DefaultCamera())
	ft, next := initial.Advance(0.5)
	hub.ObserveFrame(1, ft, next)

	var frame FrameData
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "frame" || frame.Frame != 1 || frame.Elapsed != 0.5 {
		t.Errorf("frame header: %+v", frame)
	}
	if mgl32.Mat4(frame.Primary) != ft.Primary {
		t.Error("primary matrix did not round-trip")
	}
	if mgl32.Mat4(frame.Double) != ft.Double {
		t.Error("double matrix did not round-trip")
	}
	if mgl32.Mat4(frame.Baseline) != next.Baseline {
		t.Error("baseline matrix did not round-trip")
	}

	cancel()
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close on shutdown")
	}
}

func TestObserveFrameNeverBlocks(t *testing.T) {
	hub := NewHub(core.DefaultGrid(), nil)
	state := core.InitialState(core.DefaultCamera())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < queueSize*4; i++ {
			var ft core.FrameTransforms
			ft, state = state.Advance(float64(i) * 0.01)
			hub.ObserveFrame(uint64(i+1), ft, state)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ObserveFrame blocked with no broadcaster running")
	}
	if len(hub.frames) != queueSize {
		t.Errorf("queue holds %d frames, want %d", len(hub.frames), queueSize)
	}
	if hub.dropped != uint64(queueSize*3) {
		t.Errorf("dropped %d frames, want %d", hub.dropped, queueSize*3)
	}
}
