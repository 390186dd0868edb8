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

package fixtures

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pathiter"
)

var ctmFixtures = []Fixture{
	{
		Name:   "scale_2x",
		Shape:  rectangle(pathiter.NonZero, 0, 0, 20, 20),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{2, 0, 0, 2, 12, 12},
		Probes: []Probe{in(10, 10), out(25, 10), out(-2, 10)},
	},
	{
		Name:   "rotate_45deg",
		Shape:  rectangle(pathiter.NonZero, -10, -10, 10, 10),
		Width:  64,
		Height: 64,
		CTM:    rotateAbout(45, 32, 32),
		Probes: []Probe{in(0, 0), in(8, 8), out(14, 0)},
	},
	{
		Name:   "circle_to_ellipse",
		Shape:  circle(0, 0, 15),
		Width:  128,
		Height: 64,
		CTM:    matrix.Matrix{2, 0, 0, 1, 64, 32},
		Probes: []Probe{in(0, 0), in(0, 12), out(12, 12)},
	},
	{
		Name:   "shear_horizontal",
		Shape:  &shape.RoundRectangle2D{X: -15, Y: -15, W: 30, H: 30, ArcW: 10, ArcH: 10},
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
		Probes: []Probe{in(0, 0), in(-13, 0), out(0, 20)},
	},
}

// rotateAbout returns a rotation by deg degrees which maps the origin to
// (cx, cy).
func rotateAbout(deg, cx, cy float64) matrix.Matrix {
	m := matrix.RotateDeg(deg)
	m[4], m[5] = cx, cy
	return m
}
