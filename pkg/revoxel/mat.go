// Package revoxel resamples a source VoxelSolid into a target lattice
// under an arbitrary rotation about a pivot, via either a conservative
// oriented-bounding-box intersection test or deterministic
// supersampling.
package revoxel

import (
	"math"

	"github.com/chazu/strata/pkg/kernel"
)

// Vec3 is a double-precision 3D point or vector, used throughout this
// package's continuous-space rotation math.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Mat3 is a 3x3 matrix stored row-major: Rows[i][j] is row i, column j.
type Mat3 struct {
	Rows [3][3]float64
}

// MulVec applies the matrix to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	r := m.Rows
	return Vec3{
		r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// Transpose returns the matrix transpose, which equals the inverse for
// an orthonormal rotation matrix.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Rows[i][j] = m.Rows[j][i]
		}
	}
	return out
}

// Col returns column j as a Vec3.
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m.Rows[0][j], m.Rows[1][j], m.Rows[2][j]}
}

// RotationAboutAxis builds the double-precision rotation matrix for a
// right-handed rotation by degrees around one of the three lattice axes.
func RotationAboutAxis(axis kernel.Axis, degrees float64) Mat3 {
	theta := degrees * math.Pi / 180.0
	c, s := math.Cos(theta), math.Sin(theta)
	switch axis {
	case kernel.AxisX:
		return Mat3{Rows: [3][3]float64{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		}}
	case kernel.AxisY:
		return Mat3{Rows: [3][3]float64{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		}}
	default: // kernel.AxisZ
		return Mat3{Rows: [3][3]float64{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		}}
	}
}
