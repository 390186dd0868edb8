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

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/pathiter"
	"seehuhn.de/go/shape/vecmath"
)

// Line2D is a line segment from (X1, Y1) to (X2, Y2).
//
// A line encloses no area: Contains and ContainsRect always report false.
type Line2D struct {
	X1, Y1, X2, Y2 float32
}

// Bounds implements the [Shape] interface.
func (l *Line2D) Bounds() bounds.RectBounds {
	return bounds.NewRectSorted(l.X1, l.Y1, l.X2, l.Y2)
}

// Contains implements the [Shape] interface.
func (l *Line2D) Contains(x, y float32) bool { return false }

// ContainsRect implements the [Shape] interface.
func (l *Line2D) ContainsRect(x, y, w, h float32) bool { return false }

// Intersects implements the [Shape] interface.
func (l *Line2D) Intersects(x, y, w, h float32) bool {
	return IntersectsLine(x, y, w, h, l.X1, l.Y1, l.X2, l.Y2)
}

// IntersectsLine reports whether l and o have a point in common.
func (l *Line2D) IntersectsLine(o *Line2D) bool {
	return LinesIntersect(l.X1, l.Y1, l.X2, l.Y2, o.X1, o.Y1, o.X2, o.Y2)
}

// RelativeCCW reports where (px, py) lies relative to l.  See the
// package-level [RelativeCCW].
func (l *Line2D) RelativeCCW(px, py float32) int {
	return RelativeCCW(l.X1, l.Y1, l.X2, l.Y2, px, py)
}

// PtSegDistSq returns the squared distance from (px, py) to the segment.
func (l *Line2D) PtSegDistSq(px, py float32) float32 {
	return PtSegDistSq(l.X1, l.Y1, l.X2, l.Y2, px, py)
}

// PtSegDist returns the distance from (px, py) to the segment.
func (l *Line2D) PtSegDist(px, py float32) float32 {
	return PtSegDist(l.X1, l.Y1, l.X2, l.Y2, px, py)
}

// PtLineDistSq returns the squared distance from (px, py) to the infinite
// line through l.
func (l *Line2D) PtLineDistSq(px, py float32) float32 {
	return PtLineDistSq(l.X1, l.Y1, l.X2, l.Y2, px, py)
}

// PtLineDist returns the distance from (px, py) to the infinite line
// through l.
func (l *Line2D) PtLineDist(px, py float32) float32 {
	return PtLineDist(l.X1, l.Y1, l.X2, l.Y2, px, py)
}

// PathIterator implements the [Shape] interface.
//
// The iterator reads the end points of l each time a segment is
// requested, so changes to l during iteration are visible.
func (l *Line2D) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	it := &lineIterator{line: l}
	if tx != nil {
		m := *tx
		it.tx = &m
	}
	return it
}

// FlatPathIterator implements the [Shape] interface.  A line is already
// flat, so this is the same as PathIterator.
func (l *Line2D) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return l.PathIterator(tx)
}

type lineIterator struct {
	line  *Line2D
	tx    *matrix.Matrix
	index int
}

func (it *lineIterator) WindingRule() pathiter.WindingRule { return pathiter.NonZero }
func (it *lineIterator) IsDone() bool                      { return it.index > 1 }
func (it *lineIterator) Next()                             { it.index++ }

func (it *lineIterator) CurrentSegment(coords []float32) pathiter.SegmentType {
	var seg pathiter.SegmentType
	switch it.index {
	case 0:
		coords[0], coords[1] = it.line.X1, it.line.Y1
		seg = pathiter.MoveTo
	case 1:
		coords[0], coords[1] = it.line.X2, it.line.Y2
		seg = pathiter.LineTo
	default:
		panic(pathiter.ErrExhausted)
	}
	if it.tx != nil {
		x, y := float64(coords[0]), float64(coords[1])
		coords[0] = float32(it.tx[0]*x + it.tx[2]*y + it.tx[4])
		coords[1] = float32(it.tx[1]*x + it.tx[3]*y + it.tx[5])
	}
	return seg
}

// RelativeCCW reports on which side of the segment (x1, y1)–(x2, y2) the
// point (px, py) lies.  The result is 1 if the point is reached by
// turning counter-clockwise from the segment direction (in a coordinate
// system with y pointing down), -1 if it is clockwise, and 0 if the point
// lies on the segment.  Collinear points beyond either end give -1
// (behind the start) or 1 (past the end).
func RelativeCCW(x1, y1, x2, y2, px, py float32) int {
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1
	ccw := px*y2 - py*x2
	if ccw == 0 {
		// collinear: project onto the segment
		ccw = px*x2 + py*y2
		if ccw > 0 {
			px -= x2
			py -= y2
			ccw = px*x2 + py*y2
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	switch {
	case ccw < 0:
		return -1
	case ccw > 0:
		return 1
	}
	return 0
}

// LinesIntersect reports whether the segments (x1, y1)–(x2, y2) and
// (x3, y3)–(x4, y4) have a point in common.
func LinesIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float32) bool {
	return RelativeCCW(x1, y1, x2, y2, x3, y3)*RelativeCCW(x1, y1, x2, y2, x4, y4) <= 0 &&
		RelativeCCW(x3, y3, x4, y4, x1, y1)*RelativeCCW(x3, y3, x4, y4, x2, y2) <= 0
}

// PtSegDistSq returns the squared distance from (px, py) to the segment
// (x1, y1)–(x2, y2).
func PtSegDistSq(x1, y1, x2, y2, px, py float32) float32 {
	a := vecmath.Vec2f{X: x1, Y: y1}
	d := vecmath.Vec2f{X: x2, Y: y2}.Sub(a)
	p := vecmath.Vec2f{X: px, Y: py}.Sub(a)
	dot := p.Dot(d)
	var projLenSq float32
	if dot > 0 {
		// measure from the far end instead
		p = d.Sub(p)
		dot = p.Dot(d)
		if dot > 0 {
			projLenSq = dot * dot / d.Dot(d)
		}
	}
	return max(p.Dot(p)-projLenSq, 0)
}

// PtSegDist returns the distance from (px, py) to the segment
// (x1, y1)–(x2, y2).
func PtSegDist(x1, y1, x2, y2, px, py float32) float32 {
	return math32.Sqrt(PtSegDistSq(x1, y1, x2, y2, px, py))
}

// PtLineDistSq returns the squared distance from (px, py) to the infinite
// line through (x1, y1) and (x2, y2).
func PtLineDistSq(x1, y1, x2, y2, px, py float32) float32 {
	a := vecmath.Vec2f{X: x1, Y: y1}
	d := vecmath.Vec2f{X: x2, Y: y2}.Sub(a)
	p := vecmath.Vec2f{X: px, Y: py}.Sub(a)
	dot := p.Dot(d)
	return max(p.Dot(p)-dot*dot/d.Dot(d), 0)
}

// PtLineDist returns the distance from (px, py) to the infinite line
// through (x1, y1) and (x2, y2).
func PtLineDist(x1, y1, x2, y2, px, py float32) float32 {
	return math32.Sqrt(PtLineDistSq(x1, y1, x2, y2, px, py))
}
