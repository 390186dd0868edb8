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
	"github.com/chewxy/math32"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pathiter"
)

var triangleProbes = []Probe{
	in(32, 40),
	out(12, 12),
	out(32, 55),
	out(60, 30),
}

// The centre of the star has winding number 2.
var starNonZeroProbes = []Probe{
	in(32, 32),
	in(32, 16),
	out(32, 50),
	out(5, 5),
}

var starEvenOddProbes = []Probe{
	out(32, 32),
	in(32, 16),
	out(32, 50),
	out(5, 5),
}

var fillFixtures = []Fixture{
	{
		Name:   "triangle_nonzero",
		Shape:  triangle(pathiter.NonZero, 10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Probes: triangleProbes,
	},
	{
		Name:   "triangle_evenodd",
		Shape:  triangle(pathiter.EvenOdd, 10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Probes: triangleProbes,
	},
	{
		Name:   "star_nonzero",
		Shape:  fivePointStar(pathiter.NonZero, 32, 32, 25),
		Width:  64,
		Height: 64,
		Probes: starNonZeroProbes,
	},
	{
		Name:   "star_evenodd",
		Shape:  fivePointStar(pathiter.EvenOdd, 32, 32, 25),
		Width:  64,
		Height: 64,
		Probes: starEvenOddProbes,
	},
	{
		Name:   "rectangle",
		Shape:  rectangle(pathiter.NonZero, 10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(27, 27), out(5, 27), out(50, 50)},
	},
}

func triangle(rule pathiter.WindingRule, x1, y1, x2, y2, x3, y3 float32) *shape.Path2D {
	return shape.NewPath2D(rule).MoveTo(x1, y1).LineTo(x2, y2).LineTo(x3, y3).Close()
}

// fivePointStar builds a self-intersecting five-pointed star with one
// point straight up.
func fivePointStar(rule pathiter.WindingRule, cx, cy, r float32) *shape.Path2D {
	var pts [5][2]float32
	for i := range pts {
		angle := float32(i)*2*math32.Pi/5 - math32.Pi/2
		pts[i] = [2]float32{cx + r*math32.Cos(angle), cy + r*math32.Sin(angle)}
	}

	// connect every second point
	p := shape.NewPath2D(rule).MoveTo(pts[0][0], pts[0][1])
	for _, i := range []int{2, 4, 1, 3} {
		p.LineTo(pts[i][0], pts[i][1])
	}
	return p.Close()
}
