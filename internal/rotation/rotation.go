package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AngularVelocity is the spin rate in radians per second.
const AngularVelocity = 1.0

const fullTurn = 2 * math.Pi

// State holds the current angle and the 3x3 matrix derived from it.
// Matrix is stored row-major:
//
//	[0] [1] [2]     cos -sin 0
//	[3] [4] [5]  =  sin  cos 0
//	[6] [7] [8]      0    0  1
type State struct {
	Angle  float32
	Matrix [9]float32
}

// New returns a state at angle zero with an identity rotation.
func New() *State {
	s := &State{}
	s.Matrix[8] = 1
	s.writeRotation()
	return s
}

// Update advances the angle by AngularVelocity*dt, wraps it to [0, 2π) and
// rewrites the rotation-bearing entries of the matrix.
func (s *State) Update(dt float32) {
	a := math.Mod(float64(s.Angle)+AngularVelocity*float64(dt), fullTurn)
	if a < 0 {
		a += fullTurn
	}
	s.Angle = float32(a)
	// float32 rounding can land exactly on 2π
	if s.Angle >= float32(fullTurn) {
		s.Angle = 0
	}
	s.writeRotation()
}

func (s *State) writeRotation() {
	r := mgl32.Rotate2D(s.Angle)
	s.Matrix[0] = r.At(0, 0)
	s.Matrix[1] = r.At(0, 1)
	s.Matrix[3] = r.At(1, 0)
	s.Matrix[4] = r.At(1, 1)
	s.Matrix[8] = 1
}
