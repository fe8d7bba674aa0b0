package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes the fixed view and projection the grid is rendered with.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultCamera looks at the origin from (16, 6, 20) with a 45 degree field of
// view and a 4:3 aspect ratio.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{16, 6, 20},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(45),
		Aspect: 4.0 / 3.0,
		Near:   0.1,
		Far:    100,
	}
}

// Projection returns the perspective matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// View returns the look-at matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// MVP returns projection * view * model with an identity model.
func (c Camera) MVP() mgl32.Mat4 {
	return c.Projection().Mul4(c.View()).Mul4(mgl32.Ident4())
}
