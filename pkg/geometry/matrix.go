package geometry

import (
	"math"

	"github.com/soniakeys/unit"
)

// Matrix3 is a row-major 3x3 matrix, used for rotations
type Matrix3 [3][3]float64

// Identity returns the identity matrix
func Identity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationX returns the matrix rotating a vector by angle about the X axis
func RotationX(angle unit.Angle) Matrix3 {
	s, c := math.Sincos(angle.Rad())
	return Matrix3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the matrix rotating a vector by angle about the Y axis
func RotationY(angle unit.Angle) Matrix3 {
	s, c := math.Sincos(angle.Rad())
	return Matrix3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the matrix rotating a vector by angle about the Z axis
func RotationZ(angle unit.Angle) Matrix3 {
	s, c := math.Sincos(angle.Rad())
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// MulVec returns the product m * v
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose, which is the inverse of a rotation
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}
