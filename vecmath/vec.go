// seehuhn.de/go/shape - a 2D geometry kernel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package vecmath provides small value types for 2D and 3D points and a
// 3×3 matrix.
//
// Single precision types (Vec2f, Vec3f, Matrix3f) are used at the API
// boundary of the geometry kernel.  Vec2d is the double precision point
// used by the curve algorithms.
package vecmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/vec"
)

// Vec2f is a 2D point or vector in single precision.
type Vec2f struct {
	X, Y float32
}

// Add returns v+w.
func (v Vec2f) Add(w Vec2f) Vec2f {
	return Vec2f{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2f) Sub(w Vec2f) Vec2f {
	return Vec2f{v.X - w.X, v.Y - w.Y}
}

// Mul returns s*v.
func (v Vec2f) Mul(s float32) Vec2f {
	return Vec2f{v.X * s, v.Y * s}
}

// Dot returns the scalar product of v and w.
func (v Vec2f) Dot(w Vec2f) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of v.
func (v Vec2f) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// DistanceSq returns the squared distance between v and w.
func (v Vec2f) DistanceSq(w Vec2f) float32 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	return dx*dx + dy*dy
}

// Distance returns the distance between v and w.
func (v Vec2f) Distance(w Vec2f) float32 {
	return math32.Sqrt(v.DistanceSq(w))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2f) Normalize() Vec2f {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2f{v.X / l, v.Y / l}
}

// F32 converts v to the x/image representation.
func (v Vec2f) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vec2fFromF32 converts an x/image vector.
func Vec2fFromF32(v f32.Vec2) Vec2f {
	return Vec2f{v[0], v[1]}
}

// Vec2d is a 2D point or vector in double precision.
type Vec2d struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2d) Add(w Vec2d) Vec2d {
	return Vec2d{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2d) Sub(w Vec2d) Vec2d {
	return Vec2d{v.X - w.X, v.Y - w.Y}
}

// Mul returns s*v.
func (v Vec2d) Mul(s float64) Vec2d {
	return Vec2d{v.X * s, v.Y * s}
}

// Dot returns the scalar product of v and w.
func (v Vec2d) Dot(w Vec2d) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of v.
func (v Vec2d) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between v and w.
func (v Vec2d) Distance(w Vec2d) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Vec returns v as a seehuhn.de/go/geom vector.
func (v Vec2d) Vec() vec.Vec2 {
	return vec.Vec2{X: v.X, Y: v.Y}
}

// Vec2dFromVec converts a seehuhn.de/go/geom vector.
func Vec2dFromVec(v vec.Vec2) Vec2d {
	return Vec2d{X: v.X, Y: v.Y}
}

// Float returns v rounded to single precision.
func (v Vec2d) Float() Vec2f {
	return Vec2f{float32(v.X), float32(v.Y)}
}

// Vec3f is a 3D point or vector in single precision.
type Vec3f struct {
	X, Y, Z float32
}

// Add returns v+w.
func (v Vec3f) Add(w Vec3f) Vec3f {
	return Vec3f{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3f) Sub(w Vec3f) Vec3f {
	return Vec3f{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns s*v.
func (v Vec3f) Mul(s float32) Vec3f {
	return Vec3f{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product of v and w.
func (v Vec3f) Dot(w Vec3f) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v×w.
func (v Vec3f) Cross(w Vec3f) Vec3f {
	return Vec3f{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3f) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3f) Normalize() Vec3f {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// F32 converts v to the x/image representation.
func (v Vec3f) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vec3fFromF32 converts an x/image vector.
func Vec3fFromF32(v f32.Vec3) Vec3f {
	return Vec3f{v[0], v[1], v[2]}
}
