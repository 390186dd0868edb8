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

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/pathiter"
)

// Path2D is a general path made of lines, quadratic and cubic Bézier
// curves.  The outline is stored as a seehuhn.de/go/geom path.
//
// The zero value is an empty path with the even-odd winding rule.
type Path2D struct {
	Rule pathiter.WindingRule

	data       path.Data
	movX, movY float32
	curX, curY float32
}

// NewPath2D returns an empty path with the given winding rule.
func NewPath2D(rule pathiter.WindingRule) *Path2D {
	return &Path2D{Rule: rule}
}

// PathFromShape returns a new path with the outline of s, mapped
// through tx, and the winding rule of its iterator.
func PathFromShape(s Shape, tx *matrix.Matrix) *Path2D {
	it := s.PathIterator(tx)
	p := NewPath2D(it.WindingRule())
	p.Append(it, false)
	return p
}

func pt(x, y float32) vec.Vec2 {
	return vec.Vec2{X: float64(x), Y: float64(y)}
}

func (p *Path2D) lastCmd() (path.Command, bool) {
	n := len(p.data.Cmds)
	if n == 0 {
		return 0, false
	}
	return p.data.Cmds[n-1], true
}

func (p *Path2D) needMoveTo() {
	if len(p.data.Cmds) == 0 {
		panic(ErrMissingMoveTo)
	}
}

// MoveTo starts a new subpath at (x, y).  A MoveTo directly following
// another MoveTo replaces it.
func (p *Path2D) MoveTo(x, y float32) *Path2D {
	if cmd, ok := p.lastCmd(); ok && cmd == path.CmdMoveTo {
		p.data.Coords[len(p.data.Coords)-1] = pt(x, y)
	} else {
		p.data.Cmds = append(p.data.Cmds, path.CmdMoveTo)
		p.data.Coords = append(p.data.Coords, pt(x, y))
	}
	p.movX, p.movY = x, y
	p.curX, p.curY = x, y
	return p
}

// LineTo adds a straight line to (x, y).  It panics with
// [ErrMissingMoveTo] on an empty path.
func (p *Path2D) LineTo(x, y float32) *Path2D {
	p.needMoveTo()
	p.data.Cmds = append(p.data.Cmds, path.CmdLineTo)
	p.data.Coords = append(p.data.Coords, pt(x, y))
	p.curX, p.curY = x, y
	return p
}

// QuadTo adds a quadratic Bézier curve with control point (cx, cy) ending
// at (x, y).
func (p *Path2D) QuadTo(cx, cy, x, y float32) *Path2D {
	p.needMoveTo()
	p.data.Cmds = append(p.data.Cmds, path.CmdQuadTo)
	p.data.Coords = append(p.data.Coords, pt(cx, cy), pt(x, y))
	p.curX, p.curY = x, y
	return p
}

// CubeTo adds a cubic Bézier curve with control points (cx1, cy1) and
// (cx2, cy2) ending at (x, y).
func (p *Path2D) CubeTo(cx1, cy1, cx2, cy2, x, y float32) *Path2D {
	p.needMoveTo()
	p.data.Cmds = append(p.data.Cmds, path.CmdCubeTo)
	p.data.Coords = append(p.data.Coords, pt(cx1, cy1), pt(cx2, cy2), pt(x, y))
	p.curX, p.curY = x, y
	return p
}

// Close closes the current subpath.  The current point moves back to the
// start of the subpath.  Closing an already closed subpath does nothing.
func (p *Path2D) Close() *Path2D {
	p.needMoveTo()
	if cmd, _ := p.lastCmd(); cmd != path.CmdClose {
		p.data.Cmds = append(p.data.Cmds, path.CmdClose)
		p.curX, p.curY = p.movX, p.movY
	}
	return p
}

// Append adds the segments read from it to p.  If connect is true, an
// initial MoveTo of it is turned into a LineTo, which is omitted if it
// would lead to the current point.
func (p *Path2D) Append(it pathiter.Iterator, connect bool) {
	var c [pathiter.MaxCoords]float32
	for ; !it.IsDone(); it.Next() {
		switch it.CurrentSegment(c[:]) {
		case pathiter.MoveTo:
			last, ok := p.lastCmd()
			if !connect || !ok {
				p.MoveTo(c[0], c[1])
				break
			}
			if last != path.CmdClose {
				end := p.data.Coords[len(p.data.Coords)-1]
				if end == pt(c[0], c[1]) {
					break
				}
			}
			p.LineTo(c[0], c[1])
		case pathiter.LineTo:
			p.LineTo(c[0], c[1])
		case pathiter.QuadTo:
			p.QuadTo(c[0], c[1], c[2], c[3])
		case pathiter.CubicTo:
			p.CubeTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case pathiter.Close:
			p.Close()
		}
		connect = false
	}
}

// AppendShape appends the outline of s.  See [Path2D.Append].
func (p *Path2D) AppendShape(s Shape, connect bool) {
	p.Append(s.PathIterator(nil), connect)
}

// Transform maps all points of p, including the current point, through m.
func (p *Path2D) Transform(m matrix.Matrix) {
	if len(p.data.Coords) == 0 {
		return
	}
	apply := func(x, y float32) (float32, float32) {
		fx, fy := float64(x), float64(y)
		return float32(m[0]*fx + m[2]*fy + m[4]), float32(m[1]*fx + m[3]*fy + m[5])
	}
	for i, c := range p.data.Coords {
		x, y := apply(float32(c.X), float32(c.Y))
		p.data.Coords[i] = pt(x, y)
	}
	p.movX, p.movY = apply(p.movX, p.movY)
	p.curX, p.curY = apply(p.curX, p.curY)
}

// Reset removes all segments.  The winding rule is kept.
func (p *Path2D) Reset() {
	p.data.Cmds = p.data.Cmds[:0]
	p.data.Coords = p.data.Coords[:0]
	p.movX, p.movY, p.curX, p.curY = 0, 0, 0, 0
}

// CurrentPoint returns the end point of the last segment.  It panics with
// [ErrNoCurrentPoint] if the path is empty.
func (p *Path2D) CurrentPoint() (x, y float32) {
	if len(p.data.Cmds) == 0 {
		panic(ErrNoCurrentPoint)
	}
	return p.curX, p.curY
}

// NumCommands returns the number of segments in p.
func (p *Path2D) NumCommands() int {
	return len(p.data.Cmds)
}

// Data returns a copy of the outline.
func (p *Path2D) Data() *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(p.data.Cmds),
		Coords: slices.Clone(p.data.Coords),
	}
}

// Clone returns an independent copy of p.
func (p *Path2D) Clone() *Path2D {
	q := *p
	q.data = *p.Data()
	return &q
}

// Equal reports whether p and q have the same winding rule and segments.
func (p *Path2D) Equal(q *Path2D) bool {
	return p.Rule == q.Rule &&
		slices.Equal(p.data.Cmds, q.data.Cmds) &&
		slices.Equal(p.data.Coords, q.data.Coords)
}

// Bounds implements the [Shape] interface.  The rectangle encloses all
// points including control points.  An empty path has the bounds
// (0, 0, 0, 0).
func (p *Path2D) Bounds() bounds.RectBounds {
	if len(p.data.Coords) == 0 {
		return bounds.NewRect(0, 0, 0, 0)
	}
	c0 := p.data.Coords[0]
	x0, y0 := float32(c0.X), float32(c0.Y)
	x1, y1 := x0, y0
	for _, c := range p.data.Coords[1:] {
		x, y := float32(c.X), float32(c.Y)
		x0, x1 = min(x0, x), max(x1, x)
		y0, y1 = min(y0, y), max(y1, y)
	}
	return bounds.NewRect(x0, y0, x1, y1)
}

// Contains implements the [Shape] interface.
func (p *Path2D) Contains(x, y float32) bool {
	if !finite(x, y) || len(p.data.Cmds) < 2 {
		return false
	}
	return PathContains(p.PathIterator(nil), x, y)
}

// ContainsRect implements the [Shape] interface.
func (p *Path2D) ContainsRect(x, y, w, h float32) bool {
	return PathContainsRect(p.PathIterator(nil), x, y, w, h)
}

// Intersects implements the [Shape] interface.
func (p *Path2D) Intersects(x, y, w, h float32) bool {
	return PathIntersects(p.PathIterator(nil), x, y, w, h)
}

// PathIterator implements the [Shape] interface.  The iterator works on a
// copy of the path.
func (p *Path2D) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	return pathiter.NewDataIterator(&p.data, p.Rule, tx)
}

// FlatPathIterator implements the [Shape] interface.
func (p *Path2D) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return flat(p.PathIterator(tx), flatness)
}

// PathContains reports whether (x, y) is inside the path read from it,
// using the winding rule of the iterator.
func PathContains(it pathiter.Iterator, x, y float32) bool {
	if !finite(x, y) {
		return false
	}
	mask := 1
	if it.WindingRule() == pathiter.NonZero {
		mask = -1
	}
	return PointCrossingsForPath(it, x, y)&mask != 0
}

// rectMask returns the bit mask applied to rectangle crossing counts.
// A full crossing of the rectangle's y-range counts 2.
func rectMask(rule pathiter.WindingRule) int {
	if rule == pathiter.NonZero {
		return -1
	}
	return 2
}

// PathContainsRect reports whether the rectangle lies entirely inside the
// path read from it.
func PathContainsRect(it pathiter.Iterator, x, y, w, h float32) bool {
	if math32.IsNaN(x+w) || math32.IsNaN(y+h) {
		return false
	}
	if w <= 0 || h <= 0 {
		return false
	}
	mask := rectMask(it.WindingRule())
	crossings := RectCrossingsForPath(it, x, y, x+w, y+h)
	return crossings != RectIntersects && crossings&mask != 0
}

// PathIntersects reports whether the rectangle and the interior of the
// path read from it have a point in common.  The answer is conservative:
// a path passing through the rectangle counts as intersecting.
func PathIntersects(it pathiter.Iterator, x, y, w, h float32) bool {
	if math32.IsNaN(x+w) || math32.IsNaN(y+h) {
		return false
	}
	if w <= 0 || h <= 0 {
		return false
	}
	mask := rectMask(it.WindingRule())
	crossings := RectCrossingsForPath(it, x, y, x+w, y+h)
	return crossings == RectIntersects || crossings&mask != 0
}
