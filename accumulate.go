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

package shape

import (
	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape/pathiter"
)

// EmptyBBox is the starting value for [Accumulate].  Every point enlarges
// it.
var EmptyBBox = [4]float32{
	math32.Inf(1), math32.Inf(1),
	math32.Inf(-1), math32.Inf(-1),
}

// Accumulate enlarges bbox, given as {minX, minY, maxX, maxY}, to include
// the outline of s mapped through tx.  Unlike s.Bounds(), the result is
// tight for curves: the extrema of every quadratic and cubic segment are
// computed exactly instead of using the control points.
func Accumulate(bbox *[4]float32, s Shape, tx *matrix.Matrix) {
	it := s.PathIterator(tx)
	var coords [pathiter.MaxCoords]float32
	var mx, my, x0, y0 float32
	for ; !it.IsDone(); it.Next() {
		switch it.CurrentSegment(coords[:]) {
		case pathiter.MoveTo:
			mx, my = coords[0], coords[1]
			x0, y0 = mx, my
			includePoint(bbox, x0, y0)
		case pathiter.LineTo:
			x0, y0 = coords[0], coords[1]
			includePoint(bbox, x0, y0)
		case pathiter.QuadTo:
			x1, y1 := coords[2], coords[3]
			includePoint(bbox, x1, y1)
			if bbox[0] > coords[0] || bbox[2] < coords[0] {
				AccumulateQuad(bbox, 0, x0, coords[0], x1)
			}
			if bbox[1] > coords[1] || bbox[3] < coords[1] {
				AccumulateQuad(bbox, 1, y0, coords[1], y1)
			}
			x0, y0 = x1, y1
		case pathiter.CubicTo:
			x1, y1 := coords[4], coords[5]
			includePoint(bbox, x1, y1)
			if bbox[0] > coords[0] || bbox[2] < coords[0] ||
				bbox[0] > coords[2] || bbox[2] < coords[2] {
				AccumulateCubic(bbox, 0, x0, coords[0], coords[2], x1)
			}
			if bbox[1] > coords[1] || bbox[3] < coords[1] ||
				bbox[1] > coords[3] || bbox[3] < coords[3] {
				AccumulateCubic(bbox, 1, y0, coords[1], coords[3], y1)
			}
			x0, y0 = x1, y1
		case pathiter.Close:
			x0, y0 = mx, my
		}
	}
}

func includePoint(bbox *[4]float32, x, y float32) {
	includeValue(bbox, 0, x)
	includeValue(bbox, 1, y)
}

func includeValue(bbox *[4]float32, off int, v float32) {
	if bbox[off] > v {
		bbox[off] = v
	}
	if bbox[off+2] < v {
		bbox[off+2] = v
	}
}

// AccumulateQuad enlarges one axis of bbox to include the interior
// extremum of the quadratic Bézier function with coefficients v0, vc, v1.
// Off is 0 for the x axis and 1 for the y axis.  The end points are not
// included.
func AccumulateQuad(bbox *[4]float32, off int, v0, vc, v1 float32) {
	// the derivative vanishes at t = (v0-vc) / (v1-vc+v0-vc)
	num := v0 - vc
	den := v1 - vc + num
	if den == 0 {
		return
	}
	t := num / den
	if t > 0 && t < 1 {
		u := 1 - t
		includeValue(bbox, off, v0*u*u+2*vc*t*u+v1*t*t)
	}
}

// AccumulateCubic enlarges one axis of bbox to include the interior
// extrema of the cubic Bézier function with coefficients v0, vc0, vc1, v1.
// Off is 0 for the x axis and 1 for the y axis.  The end points are not
// included.
func AccumulateCubic(bbox *[4]float32, off int, v0, vc0, vc1, v1 float32) {
	// derivative / 3 = a t² + b t + c
	c := vc0 - v0
	b := 2 * ((vc1 - vc0) - c)
	a := (v1 - vc1) - b - c
	if a == 0 {
		if b == 0 {
			return
		}
		accumulateCubicAt(bbox, off, -c/b, v0, vc0, vc1, v1)
		return
	}
	d := b*b - 4*a*c
	if d < 0 {
		return
	}
	d = math32.Sqrt(d)
	if b < 0 {
		d = -d
	}
	q := (b + d) / -2
	accumulateCubicAt(bbox, off, q/a, v0, vc0, vc1, v1)
	if q != 0 {
		accumulateCubicAt(bbox, off, c/q, v0, vc0, vc1, v1)
	}
}

func accumulateCubicAt(bbox *[4]float32, off int, t, v0, vc0, vc1, v1 float32) {
	if t > 0 && t < 1 {
		u := 1 - t
		v := v0*u*u*u + 3*vc0*t*u*u + 3*vc1*t*t*u + v1*t*t*t
		includeValue(bbox, off, v)
	}
}
