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

package vecmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix3f is a 3×3 matrix in single precision.
// Mij is the element in row i and column j.
type Matrix3f struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

// Identity3f is the 3×3 identity matrix.
var Identity3f = Matrix3f{
	M00: 1,
	M11: 1,
	M22: 1,
}

// NewMatrix3f returns the matrix with the given elements in row-major order.
func NewMatrix3f(v [9]float32) Matrix3f {
	return Matrix3f{
		v[0], v[1], v[2],
		v[3], v[4], v[5],
		v[6], v[7], v[8],
	}
}

// NewMatrix3fFromRows returns the matrix whose i-th row is rows[i].
// The middle row is (rows[1].X, rows[1].Y, rows[1].Z), not rows[1].X
// repeated three times as in the JavaFX constructor this mirrors.
func NewMatrix3fFromRows(rows [3]Vec3f) Matrix3f {
	return Matrix3f{
		rows[0].X, rows[0].Y, rows[0].Z,
		rows[1].X, rows[1].Y, rows[1].Z,
		rows[2].X, rows[2].Y, rows[2].Z,
	}
}

// Row returns row i of m.  It panics if i is not 0, 1 or 2.
func (m Matrix3f) Row(i int) Vec3f {
	switch i {
	case 0:
		return Vec3f{m.M00, m.M01, m.M02}
	case 1:
		return Vec3f{m.M10, m.M11, m.M12}
	case 2:
		return Vec3f{m.M20, m.M21, m.M22}
	}
	panic(fmt.Sprintf("vecmath: row index %d out of range", i))
}

// Column returns column j of m.  It panics if j is not 0, 1 or 2.
func (m Matrix3f) Column(j int) Vec3f {
	switch j {
	case 0:
		return Vec3f{m.M00, m.M10, m.M20}
	case 1:
		return Vec3f{m.M01, m.M11, m.M21}
	case 2:
		return Vec3f{m.M02, m.M12, m.M22}
	}
	panic(fmt.Sprintf("vecmath: column index %d out of range", j))
}

// WithRow returns a copy of m with row i replaced by v.
func (m Matrix3f) WithRow(i int, v Vec3f) Matrix3f {
	switch i {
	case 0:
		m.M00, m.M01, m.M02 = v.X, v.Y, v.Z
	case 1:
		m.M10, m.M11, m.M12 = v.X, v.Y, v.Z
	case 2:
		m.M20, m.M21, m.M22 = v.X, v.Y, v.Z
	default:
		panic(fmt.Sprintf("vecmath: row index %d out of range", i))
	}
	return m
}

// Mul returns the matrix product m·n.
func (m Matrix3f) Mul(n Matrix3f) Matrix3f {
	return Matrix3f{
		M00: m.M00*n.M00 + m.M01*n.M10 + m.M02*n.M20,
		M01: m.M00*n.M01 + m.M01*n.M11 + m.M02*n.M21,
		M02: m.M00*n.M02 + m.M01*n.M12 + m.M02*n.M22,

		M10: m.M10*n.M00 + m.M11*n.M10 + m.M12*n.M20,
		M11: m.M10*n.M01 + m.M11*n.M11 + m.M12*n.M21,
		M12: m.M10*n.M02 + m.M11*n.M12 + m.M12*n.M22,

		M20: m.M20*n.M00 + m.M21*n.M10 + m.M22*n.M20,
		M21: m.M20*n.M01 + m.M21*n.M11 + m.M22*n.M21,
		M22: m.M20*n.M02 + m.M21*n.M12 + m.M22*n.M22,
	}
}

// Transform returns m·v.
func (m Matrix3f) Transform(v Vec3f) Vec3f {
	return Vec3f{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix3f) Transpose() Matrix3f {
	return Matrix3f{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Determinant returns det(m).
func (m Matrix3f) Determinant() float32 {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// Invert returns the inverse of m.  The second return value is false
// if m is singular, in which case the zero matrix is returned.
func (m Matrix3f) Invert() (Matrix3f, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3f{}, false
	}
	inv := 1 / det
	return Matrix3f{
		M00: (m.M11*m.M22 - m.M12*m.M21) * inv,
		M01: (m.M02*m.M21 - m.M01*m.M22) * inv,
		M02: (m.M01*m.M12 - m.M02*m.M11) * inv,

		M10: (m.M12*m.M20 - m.M10*m.M22) * inv,
		M11: (m.M00*m.M22 - m.M02*m.M20) * inv,
		M12: (m.M02*m.M10 - m.M00*m.M12) * inv,

		M20: (m.M10*m.M21 - m.M11*m.M20) * inv,
		M21: (m.M01*m.M20 - m.M00*m.M21) * inv,
		M22: (m.M00*m.M11 - m.M01*m.M10) * inv,
	}, true
}

// F32 converts m to the row-major x/image representation.
func (m Matrix3f) F32() f32.Mat3 {
	return f32.Mat3{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// Matrix3fFromF32 converts a row-major x/image matrix.
func Matrix3fFromF32(a f32.Mat3) Matrix3f {
	return NewMatrix3f(a)
}
