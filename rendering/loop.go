// Package rendering drives the per-frame draw sequence of the cube grid
// against an abstract drawing device.
package rendering

import (
	"github.com/go-gl/mathgl/mgl32"

	"cubegrid/core"
)

// Device is the immediate-mode drawing surface the loop issues calls to.
type Device interface {
	// Clear clears the color and depth targets.
	Clear()
	// UseProgram binds the cube shader program.
	UseProgram()
	// SetMVP uploads the shared transform uniform.
	SetMVP(mvp mgl32.Mat4)
	// DrawCell draws the 12 triangles of one cell from its buffers.
	DrawCell(id int)
	// DisableAttributes turns off the position and color attribute arrays.
	DisableAttributes()
	// Present swaps buffers and processes pending window events.
	Present()
	// ShouldClose reports an escape key press or a window close request.
	ShouldClose() bool
}

// Clock returns monotonic seconds since start.
type Clock interface {
	Seconds() float64
}

// Observer is told about every frame after it is presented.
type Observer interface {
	ObserveFrame(frame uint64, ft core.FrameTransforms, next core.TransformState)
}

// Loop owns the transform state and renders the grid one frame at a time.
type Loop struct {
	dev       Device
	clock     Clock
	grid      *core.Grid
	state     core.TransformState
	observers []Observer
	frames    uint64
}

func NewLoop(dev Device, clock Clock, grid *core.Grid, initial core.TransformState) *Loop {
	return &Loop{
		dev:   dev,
		clock: clock,
		grid:  grid,
		state: initial,
	}
}

// Observe registers o to be called after each frame.
func (l *Loop) Observe(o Observer) {
	l.observers = append(l.observers, o)
}

// State returns the transform state the next frame starts from.
func (l *Loop) State() core.TransformState {
	return l.state
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame renders one frame: group A with the primary transform, then group B
// with the doubled one, then presents.
func (l *Loop) Frame() core.FrameTransforms {
	l.dev.Clear()
	l.dev.UseProgram()

	ft, next := l.state.Advance(l.clock.Seconds())

	l.dev.SetMVP(ft.Primary)
	for _, cell := range l.grid.GroupA() {
		l.dev.DrawCell(cell.ID)
	}

	l.dev.SetMVP(ft.Double)
	for _, cell := range l.grid.GroupB() {
		l.dev.DrawCell(cell.ID)
	}

	l.state = next

	l.dev.DisableAttributes()
	l.dev.Present()

	l.frames++
	for _, o := range l.observers {
		o.ObserveFrame(l.frames, ft, next)
	}
	return ft
}

// Run renders frames until the device asks to close. The close signal is
// checked after each presented frame, so at least one frame is drawn.
func (l *Loop) Run() uint64 {
	for {
		l.Frame()
		if l.dev.ShouldClose() {
			return l.frames
		}
	}
}
