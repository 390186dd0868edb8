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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/curve"
	"seehuhn.de/go/shape/pathiter"
)

// Decompose converts the path read from it into y-monotonic curves.
// Every subpath starts with an order 0 curve at its move point and is
// closed by a straight line.  Horizontal pieces are dropped.
//
// Decompose panics with [ErrMissingMoveTo] if the first segment is not
// a MoveTo.
func Decompose(it pathiter.Iterator) []curve.Curve {
	var curves []curve.Curve
	var buf [pathiter.MaxCoords]float32
	var coords [pathiter.MaxCoords]float64
	var movx, movy, curx, cury float64
	first := true
	for ; !it.IsDone(); it.Next() {
		seg := it.CurrentSegment(buf[:])
		if first && seg != pathiter.MoveTo {
			panic(ErrMissingMoveTo)
		}
		first = false
		for i := range 2 * seg.NumPoints() {
			coords[i] = float64(buf[i])
		}
		switch seg {
		case pathiter.MoveTo:
			curves = curve.InsertLine(curves, curx, cury, movx, movy)
			movx, movy = coords[0], coords[1]
			curx, cury = movx, movy
			curves = curve.InsertMove(curves, movx, movy)
		case pathiter.LineTo:
			curves = curve.InsertLine(curves, curx, cury, coords[0], coords[1])
			curx, cury = coords[0], coords[1]
		case pathiter.QuadTo:
			curves = curve.InsertQuad(curves, curx, cury, coords[:4])
			curx, cury = coords[2], coords[3]
		case pathiter.CubicTo:
			curves = curve.InsertCubic(curves, curx, cury, coords[:6])
			curx, cury = coords[4], coords[5]
		case pathiter.Close:
			curves = curve.InsertLine(curves, curx, cury, movx, movy)
			curx, cury = movx, movy
		}
	}
	return curve.InsertLine(curves, curx, cury, movx, movy)
}

// CurveSet is a region bounded by y-monotonic curves.  Containment and
// intersection queries are answered exactly in double precision, using
// the winding rule of the path the set was built from.
//
// A CurveSet is immutable after construction.
type CurveSet struct {
	rule   pathiter.WindingRule
	curves []curve.Curve
	bbox   rect.Rect
}

// NewCurveSet decomposes the path read from it.
func NewCurveSet(it pathiter.Iterator) *CurveSet {
	rule := it.WindingRule()
	curves := Decompose(it)
	return &CurveSet{
		rule:   rule,
		curves: curves,
		bbox:   curve.Bounds(curves),
	}
}

// CurveSetOf returns the curve set for the outline of s.
func CurveSetOf(s Shape) *CurveSet {
	return NewCurveSet(s.PathIterator(nil))
}

// Rule returns the winding rule used by the queries.
func (s *CurveSet) Rule() pathiter.WindingRule { return s.rule }

// Curves returns the curves of s.  The curves themselves are shared and
// must not be modified.
func (s *CurveSet) Curves() []curve.Curve { return slices.Clone(s.curves) }

// IsEmpty reports whether s encloses no area.
func (s *CurveSet) IsEmpty() bool {
	for _, c := range s.curves {
		if c.Order() > 0 {
			return false
		}
	}
	return true
}

// Bounds implements the [Shape] interface.  The bounds are tight: curve
// extrema are split points of the decomposition, so every end point lies
// on the outline.
func (s *CurveSet) Bounds() bounds.RectBounds {
	if len(s.curves) == 0 {
		return bounds.NewRect(0, 0, 0, 0)
	}
	return bounds.FromRect(s.bbox)
}

// Contains implements the [Shape] interface.
func (s *CurveSet) Contains(x, y float32) bool {
	fx, fy := float64(x), float64(y)
	b := s.bbox
	if !(fx >= b.LLx && fy >= b.LLy && fx < b.URx && fy < b.URy) {
		return false
	}
	crossings := 0
	for _, c := range s.curves {
		crossings += curve.CrossingsFor(c, fx, fy) * int(c.Direction())
	}
	if s.rule == pathiter.NonZero {
		return crossings != 0
	}
	return crossings&1 == 1
}

// ContainsRect implements the [Shape] interface.
func (s *CurveSet) ContainsRect(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	x0, y0 := float64(x), float64(y)
	x1, y1 := x0+float64(w), y0+float64(h)
	b := s.bbox
	if !(x0 >= b.LLx && y0 >= b.LLy && x1 <= b.URx && y1 <= b.URy) {
		return false
	}
	cr := curve.FindCrossings(s.curves, s.rule, x0, y0, x1, y1)
	return cr != nil && cr.Covers(y0, y1)
}

// Intersects implements the [Shape] interface.
func (s *CurveSet) Intersects(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	x0, y0 := float64(x), float64(y)
	x1, y1 := x0+float64(w), y0+float64(h)
	b := s.bbox
	if !(x1 > b.LLx && y1 > b.LLy && x0 < b.URx && y0 < b.URy) {
		return false
	}
	cr := curve.FindCrossings(s.curves, s.rule, x0, y0, x1, y1)
	return cr == nil || !cr.IsEmpty()
}

// Spans calls visit for every horizontal band in which the set of curves
// crossing the band does not change, with the curves ordered from left to
// right.  Iteration stops when visit returns false.
func (s *CurveSet) Spans(visit func(curve.Span) bool) {
	curve.Sweep(s.curves, visit)
}

// PathIterator implements the [Shape] interface.  The outline is rebuilt
// from the curves; gaps left by dropped horizontal pieces are bridged by
// straight lines.
func (s *CurveSet) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	it := &curveSetIterator{set: s}
	if tx != nil {
		m := *tx
		it.tx = &m
	}
	if len(s.curves) > 0 {
		it.this = s.curves[0]
	}
	return it
}

// FlatPathIterator implements the [Shape] interface.
func (s *CurveSet) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return flat(s.PathIterator(tx), flatness)
}

type curveSetIterator struct {
	set   *CurveSet
	tx    *matrix.Matrix
	index int

	// prev is non-nil while the junction between prev and this still
	// has to be emitted.
	prev, this curve.Curve
}

func (it *curveSetIterator) WindingRule() pathiter.WindingRule { return it.set.rule }

func (it *curveSetIterator) IsDone() bool {
	return it.prev == nil && it.this == nil
}

func (it *curveSetIterator) Next() {
	if it.prev != nil {
		it.prev = nil
		return
	}
	it.prev = it.this
	it.index++
	if it.index >= len(it.set.curves) {
		it.this = nil
		return
	}
	it.this = it.set.curves[it.index]
	if it.this.Order() != 0 &&
		it.prev.X1() == it.this.X0() && it.prev.Y1() == it.this.Y0() {
		it.prev = nil
	}
}

func (it *curveSetIterator) CurrentSegment(coords []float32) pathiter.SegmentType {
	var buf [pathiter.MaxCoords]float64
	var seg pathiter.SegmentType
	switch {
	case it.prev != nil:
		if it.this == nil || it.this.Order() == 0 {
			return pathiter.Close
		}
		buf[0], buf[1] = it.this.X0(), it.this.Y0()
		seg = pathiter.LineTo
	case it.this == nil:
		panic(pathiter.ErrExhausted)
	default:
		seg = it.this.Segment(buf[:])
	}
	for i := range 2 * seg.NumPoints() {
		coords[i] = float32(buf[i])
	}
	if it.tx != nil {
		m := it.tx
		for i := 0; i < 2*seg.NumPoints(); i += 2 {
			x, y := float64(coords[i]), float64(coords[i+1])
			coords[i] = float32(m[0]*x + m[2]*y + m[4])
			coords[i+1] = float32(m[1]*x + m[3]*y + m[5])
		}
	}
	return seg
}
