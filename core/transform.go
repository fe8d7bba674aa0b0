package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RotationAxis is the axis every cell group spins around.
var RotationAxis = mgl32.Vec3{0, 0, 1}

// TransformState is carried from one frame into the next. Only Baseline
// influences the following frame; Model and Elapsed record what produced it.
type TransformState struct {
	Baseline mgl32.Mat4
	Model    mgl32.Mat4
	Elapsed  float64
}

// FrameTransforms are the matrices one frame draws with.
type FrameTransforms struct {
	Elapsed float64
	Model   mgl32.Mat4
	// Primary is uploaded for group A.
	Primary mgl32.Mat4
	// Double applies Model a second time on top of Primary and is uploaded
	// for group B. It never feeds into the next baseline.
	Double mgl32.Mat4
}

// InitialState starts the pipeline from the camera's MVP.
func InitialState(cam Camera) TransformState {
	return TransformState{
		Baseline: cam.MVP(),
		Model:    mgl32.Ident4(),
	}
}

// ModelAt is the rotation about RotationAxis by elapsed seconds, in radians.
// The angle is never wrapped.
func ModelAt(elapsed float64) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(float32(elapsed))
}

// Advance runs one frame of the pipeline. The returned state carries Primary
// forward as the next baseline, so the baseline picks up one rotation per
// frame:
//
//	baseline_N = R(t_N) * R(t_N-1) * ... * R(t_1) * baseline_0
//
// Advance is pure; equal inputs give bit-identical outputs.
func (s TransformState) Advance(elapsed float64) (FrameTransforms, TransformState) {
	model := ModelAt(elapsed)
	primary := model.Mul4(s.Baseline)
	double := model.Mul4(primary)

	ft := FrameTransforms{
		Elapsed: elapsed,
		Model:   model,
		Primary: primary,
		Double:  double,
	}
	next := TransformState{
		Baseline: primary,
		Model:    model,
		Elapsed:  elapsed,
	}
	return ft, next
}
