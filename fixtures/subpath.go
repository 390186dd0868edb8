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

var subpathFixtures = []Fixture{
	{
		Name:   "nested_nonzero",
		Shape:  nestedSquares(pathiter.NonZero),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), in(12, 32), out(60, 60)},
	},
	{
		Name:   "nested_evenodd",
		Shape:  nestedSquares(pathiter.EvenOdd),
		Width:  64,
		Height: 64,
		Probes: []Probe{out(32, 32), in(12, 32), out(60, 60)},
	},
	{
		Name:   "overlapping_nonzero",
		Shape:  overlappingRectangles(pathiter.NonZero),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), in(15, 15), in(50, 50), out(50, 15)},
	},
	{
		Name:   "overlapping_evenodd",
		Shape:  overlappingRectangles(pathiter.EvenOdd),
		Width:  64,
		Height: 64,
		Probes: []Probe{out(32, 32), in(15, 15), in(50, 50), out(50, 15)},
	},
	{
		Name:   "ring",
		Shape:  ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Probes: []Probe{out(32, 32), in(32, 12), in(52, 32), out(5, 5)},
	},
	{
		Name:   "ring_curveset",
		Shape:  shape.CurveSetOf(ring(32, 32, 25, 12)),
		Width:  64,
		Height: 64,
		Probes: []Probe{out(32, 32), in(32, 12), in(52, 32), out(5, 5)},
	},
	{
		Name:   "disjoint",
		Shape:  disjointShapes(),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(16, 32), in(48, 32), out(32, 32), out(16, 50)},
	},
}

func nestedSquares(rule pathiter.WindingRule) *shape.Path2D {
	p := rectangle(rule, 8, 8, 56, 56)
	p.AppendShape(rectangle(rule, 20, 20, 44, 44), false)
	return p
}

func overlappingRectangles(rule pathiter.WindingRule) *shape.Path2D {
	p := rectangle(rule, 10, 10, 40, 40)
	p.AppendShape(rectangle(rule, 24, 24, 54, 54), false)
	return p
}

// ring builds an annulus.  The inner circle is mirrored so that it runs
// against the outer one, which leaves a hole under the non-zero rule.
func ring(cx, cy, outerR, innerR float32) *shape.Path2D {
	p := shape.NewPath2D(pathiter.NonZero)
	p.AppendShape(circle(cx, cy, outerR), false)
	mirror := matrix.Matrix{-1, 0, 0, 1, 2 * float64(cx), 0}
	p.Append(circle(cx, cy, innerR).PathIterator(&mirror), false)
	return p
}

// disjointShapes combines a circle and a square which do not touch.
func disjointShapes() *shape.Path2D {
	p := shape.NewPath2D(pathiter.NonZero)
	p.AppendShape(circle(16, 32, 10), false)
	p.AppendShape(rectangle(pathiter.NonZero, 38, 22, 58, 42), false)
	return p
}
