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

package curve

import "math"

// SolveQuadratic stores the real roots of eqn[0] + eqn[1]·x + eqn[2]·x² = 0
// in res and returns their number.  If eqn[1] and eqn[2] are both zero, the
// equation has no solution (or every x is a solution) and -1 is returned.
// A double root is reported twice.  res must have room for two values.
//
// The roots are computed in the form q/a and c/q, which avoids the
// cancellation of the textbook formula when b² ≫ 4ac.
func SolveQuadratic(eqn [3]float64, res []float64) int {
	a, b, c := eqn[2], eqn[1], eqn[0]
	if a == 0 {
		if b == 0 {
			return -1
		}
		res[0] = -c / b
		return 1
	}

	d := b*b - 4*a*c
	if d < 0 {
		return 0
	}
	d = math.Sqrt(d)
	if b < 0 {
		d = -d
	}
	q := (b + d) / -2
	res[0] = q / a
	if q == 0 {
		return 1
	}
	res[1] = c / q
	return 2
}
