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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxFlattenSegments bounds the number of line segments used for a single
// curve.
const maxFlattenSegments = 1024

// Flattening wraps an iterator and replaces every quadratic and cubic
// segment by a sequence of LineTo segments.  The number of line segments
// per curve is chosen from a closed formula, so that the distance between
// the curve and its polygon is at most the flatness.
//
// The output contains only MoveTo, LineTo and Close segments.
type Flattening struct {
	src      Iterator
	flatness float64

	buf  [MaxCoords]float32
	seg  SegmentType
	pts  []vec.Vec2 // output points of the current source segment
	pos  int
	cur  vec.Vec2
	mov  vec.Vec2
	done bool
}

// NewFlattening returns a flattening view of src.  The flatness is
// measured in the coordinate system of src and must be positive.
func NewFlattening(src Iterator, flatness float64) *Flattening {
	if !(flatness > 0) {
		panic("pathiter: flatness must be positive")
	}
	f := &Flattening{src: src, flatness: flatness}
	f.load()
	return f
}

// WindingRule implements the [Iterator] interface.
func (f *Flattening) WindingRule() WindingRule { return f.src.WindingRule() }

// IsDone implements the [Iterator] interface.
func (f *Flattening) IsDone() bool { return f.done }

// Next implements the [Iterator] interface.
func (f *Flattening) Next() {
	if f.done {
		return
	}
	if f.pos+1 < len(f.pts) {
		f.pos++
		return
	}
	f.src.Next()
	f.load()
}

// CurrentSegment implements the [Iterator] interface.
func (f *Flattening) CurrentSegment(coords []float32) SegmentType {
	if f.done {
		panic(ErrExhausted)
	}
	if f.seg != Close {
		p := f.pts[f.pos]
		coords[0] = float32(p.X)
		coords[1] = float32(p.Y)
	}
	return f.seg
}

// load reads the current segment of the source.
func (f *Flattening) load() {
	f.pts = f.pts[:0]
	f.pos = 0
	if f.src.IsDone() {
		f.done = true
		return
	}

	seg := f.src.CurrentSegment(f.buf[:])
	c := f.buf
	pt := func(i int) vec.Vec2 {
		return vec.Vec2{X: float64(c[2*i]), Y: float64(c[2*i+1])}
	}
	emit := func(p vec.Vec2) {
		f.pts = append(f.pts, p)
	}

	switch seg {
	case MoveTo:
		f.seg = MoveTo
		f.cur = pt(0)
		f.mov = f.cur
		emit(f.cur)
	case LineTo:
		f.seg = LineTo
		f.cur = pt(0)
		emit(f.cur)
	case QuadTo:
		f.seg = LineTo
		flattenQuad(f.cur, pt(0), pt(1), f.flatness, emit)
		f.cur = pt(1)
	case CubicTo:
		f.seg = LineTo
		flattenCubic(f.cur, pt(0), pt(1), pt(2), f.flatness, emit)
		f.cur = pt(2)
	default:
		f.seg = Close
		f.cur = f.mov
	}
}

// QuadSegments returns the number of line segments needed to approximate
// the quadratic curve p0, p1, p2 within the given flatness.
func QuadSegments(p0, p1, p2 vec.Vec2, flatness float64) int {
	// e = (P0 - 2*P1 + P2) / 4 is the maximal deviation of the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if e > flatness {
		n = segmentCount(math.Sqrt(e / flatness))
	}
	return n
}

// CubicSegments returns the number of line segments needed to approximate
// the cubic curve p0, p1, p2, p3 within the given flatness, using Wang's
// formula.
func CubicSegments(p0, p1, p2, p3 vec.Vec2, flatness float64) int {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		n = segmentCount(math.Sqrt(3 * m / (4 * flatness)))
	}
	return n
}

func segmentCount(x float64) int {
	switch {
	case math.IsNaN(x) || x <= 1:
		return 1
	case x >= maxFlattenSegments:
		return maxFlattenSegments
	}
	return int(math.Ceil(x))
}

// flattenQuad calls emit with the end points of the line segments which
// approximate the quadratic curve p0, p1, p2.  The start point p0 is not
// emitted.
func flattenQuad(p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	n := QuadSegments(p0, p1, p2, flatness)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// flattenCubic is the cubic version of flattenQuad.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	n := CubicSegments(p0, p1, p2, p3, flatness)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
	emit(p3)
}
