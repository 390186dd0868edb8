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

package pathiter

import "seehuhn.de/go/geom/matrix"

// CubicIterator walks a single cubic Bézier curve.  It yields exactly two
// segments: a MoveTo to the start point and a CubicTo.
//
// The control points are copied when the iterator is created, so later
// changes to the originating shape do not affect it.
type CubicIterator struct {
	pts   [8]float32
	tx    *matrix.Matrix
	index int
}

// NewCubicIterator returns an iterator for the cubic curve from (x0, y0)
// to (x1, y1) with control points (cx0, cy0) and (cx1, cy1).
func NewCubicIterator(x0, y0, cx0, cy0, cx1, cy1, x1, y1 float32, tx *matrix.Matrix) *CubicIterator {
	it := &CubicIterator{
		pts: [8]float32{x0, y0, cx0, cy0, cx1, cy1, x1, y1},
	}
	if tx != nil {
		m := *tx
		it.tx = &m
	}
	return it
}

// WindingRule implements the [Iterator] interface.
func (it *CubicIterator) WindingRule() WindingRule { return NonZero }

// IsDone implements the [Iterator] interface.
func (it *CubicIterator) IsDone() bool { return it.index > 1 }

// Next implements the [Iterator] interface.
func (it *CubicIterator) Next() { it.index++ }

// CurrentSegment implements the [Iterator] interface.
func (it *CubicIterator) CurrentSegment(coords []float32) SegmentType {
	switch it.index {
	case 0:
		copy(coords, it.pts[:2])
		transform(it.tx, coords, 1)
		return MoveTo
	case 1:
		copy(coords, it.pts[2:])
		transform(it.tx, coords, 3)
		return CubicTo
	}
	panic(ErrExhausted)
}

// QuadIterator walks a single quadratic Bézier curve.  It yields a MoveTo
// followed by a QuadTo.  Like CubicIterator it works on a private copy of
// the control points.
type QuadIterator struct {
	pts   [6]float32
	tx    *matrix.Matrix
	index int
}

// NewQuadIterator returns an iterator for the quadratic curve from
// (x0, y0) to (x1, y1) with control point (cx, cy).
func NewQuadIterator(x0, y0, cx, cy, x1, y1 float32, tx *matrix.Matrix) *QuadIterator {
	it := &QuadIterator{
		pts: [6]float32{x0, y0, cx, cy, x1, y1},
	}
	if tx != nil {
		m := *tx
		it.tx = &m
	}
	return it
}

// WindingRule implements the [Iterator] interface.
func (it *QuadIterator) WindingRule() WindingRule { return NonZero }

// IsDone implements the [Iterator] interface.
func (it *QuadIterator) IsDone() bool { return it.index > 1 }

// Next implements the [Iterator] interface.
func (it *QuadIterator) Next() { it.index++ }

// CurrentSegment implements the [Iterator] interface.
func (it *QuadIterator) CurrentSegment(coords []float32) SegmentType {
	switch it.index {
	case 0:
		copy(coords, it.pts[:2])
		transform(it.tx, coords, 1)
		return MoveTo
	case 1:
		copy(coords, it.pts[2:])
		transform(it.tx, coords, 2)
		return QuadTo
	}
	panic(ErrExhausted)
}
