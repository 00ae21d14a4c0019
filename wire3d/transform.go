package wire3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationMatrix is the 3x3 model rotation for one frame.
type RotationMatrix = mgl64.Mat3

// degreesPerRadian converts with angle / degreesPerRadian, so any angle range works.
const degreesPerRadian = 180 / math.Pi

// BuildRotation composes the Y-then-X rotation for the given angles in degrees.
//
//	row 1: ( cosY,       0,     -sinY      )
//	row 2: ( sinY*sinX,  cosX,   cosY*sinX )
//	row 3: ( sinY*cosX, -sinX,   cosY*cosX )
//
// It is pure; the matrix is rebuilt from the angles every frame so no drift
// accumulates.
func BuildRotation(xan, yan float64) RotationMatrix {
	x := xan / degreesPerRadian
	y := yan / degreesPerRadian

	s1, c1 := math.Sincos(y)
	s2, c2 := math.Sincos(x)

	return mgl64.Mat3FromRows(
		mgl64.Vec3{c1, 0, -s1},
		mgl64.Vec3{s1 * s2, c2, c1 * s2},
		mgl64.Vec3{s1 * c2, -s2, c1 * c2},
	)
}
