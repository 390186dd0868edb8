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

import (
	"seehuhn.de/go/shape/pathiter"
)

// Crossings accumulates the crossings of a path with the left edge of a
// rectangular window, as a function of y.
//
// The window is [xlo, xhi] × [ylo, yhi].  Every path piece which passes
// left of the window adds its direction to the y-range it spans.  A piece
// which enters the window ends the computation: in this case the path
// intersects the window and the accumulate methods return true.
type Crossings struct {
	rule pathiter.WindingRule

	xlo, ylo float64
	xhi, yhi float64

	// ranges is sorted by y and the ranges are disjoint.  Ranges with
	// count zero are not stored.
	ranges []Range

	tmp []Curve
}

// Range is a y-interval with a crossing count.  For the even-odd rule the
// count is always 1.
type Range struct {
	Y0, Y1 float64
	Count  int
}

// NewCrossings returns an empty accumulator for the given window.
func NewCrossings(rule pathiter.WindingRule, xlo, ylo, xhi, yhi float64) *Crossings {
	return &Crossings{
		rule: rule,
		xlo:  xlo,
		ylo:  ylo,
		xhi:  xhi,
		yhi:  yhi,
	}
}

// Rule returns the winding rule used to combine crossings.
func (c *Crossings) Rule() pathiter.WindingRule {
	return c.rule
}

// Window returns the window of c.
func (c *Crossings) Window() (xlo, ylo, xhi, yhi float64) {
	return c.xlo, c.ylo, c.xhi, c.yhi
}

// Ranges returns a copy of the recorded y-ranges, in increasing order.
func (c *Crossings) Ranges() []Range {
	res := make([]Range, len(c.ranges))
	copy(res, c.ranges)
	return res
}

// IsEmpty reports whether no y-range has a non-zero count.
func (c *Crossings) IsEmpty() bool {
	return len(c.ranges) == 0
}

// Record adds a crossing in direction dir on the range [ystart, yend).
// Empty and inverted ranges are ignored.
func (c *Crossings) Record(ystart, yend float64, dir Direction) {
	if ystart >= yend {
		return
	}

	update := func(count int) int {
		if c.rule == pathiter.EvenOdd {
			return count ^ 1
		}
		return count + int(dir)
	}

	old := c.ranges
	res := make([]Range, 0, len(old)+2)
	i := 0
	for i < len(old) && old[i].Y1 <= ystart {
		res = append(res, old[i])
		i++
	}
	y := ystart
	for i < len(old) && old[i].Y0 < yend {
		r := old[i]
		if r.Y0 < y {
			res = appendRange(res, Range{r.Y0, y, r.Count})
		} else if r.Y0 > y {
			res = appendRange(res, Range{y, r.Y0, update(0)})
			y = r.Y0
		}
		end := min(r.Y1, yend)
		res = appendRange(res, Range{y, end, update(r.Count)})
		if r.Y1 > yend {
			res = appendRange(res, Range{yend, r.Y1, r.Count})
		}
		y = end
		i++
	}
	if y < yend {
		res = appendRange(res, Range{y, yend, update(0)})
	}
	for ; i < len(old); i++ {
		res = appendRange(res, old[i])
	}
	c.ranges = res
}

// appendRange appends r to ranges, dropping it if its count is zero and
// merging it with the last range if they touch and have the same count.
func appendRange(ranges []Range, r Range) []Range {
	if r.Count == 0 || r.Y0 >= r.Y1 {
		return ranges
	}
	if n := len(ranges); n > 0 {
		last := &ranges[n-1]
		if last.Y1 == r.Y0 && last.Count == r.Count {
			last.Y1 = r.Y1
			return ranges
		}
	}
	return append(ranges, r)
}

// Covers reports whether every y in [ystart, yend) has a non-zero count.
func (c *Crossings) Covers(ystart, yend float64) bool {
	for _, r := range c.ranges {
		if r.Y1 <= ystart {
			continue
		}
		if r.Y0 > ystart {
			return false
		}
		ystart = r.Y1
		if ystart >= yend {
			return true
		}
	}
	return ystart >= yend
}

// AccumulateLine adds the line from (x0, y0) to (x1, y1).  It returns true
// if the line enters the window.
func (c *Crossings) AccumulateLine(x0, y0, x1, y1 float64) bool {
	if y0 <= y1 {
		return c.accumulateLine(x0, y0, x1, y1, Increasing)
	}
	return c.accumulateLine(x1, y1, x0, y0, Decreasing)
}

func (c *Crossings) accumulateLine(x0, y0, x1, y1 float64, dir Direction) bool {
	if c.yhi <= y0 || c.ylo >= y1 {
		return false
	}
	if x0 >= c.xhi && x1 >= c.xhi {
		return false
	}
	if y0 == y1 {
		return x0 >= c.xlo || x1 >= c.xlo
	}

	dx := x1 - x0
	dy := y1 - y0
	var xstart, ystart, xend, yend float64
	if y0 < c.ylo {
		xstart = x0 + (c.ylo-y0)*dx/dy
		ystart = c.ylo
	} else {
		xstart = x0
		ystart = y0
	}
	if c.yhi < y1 {
		xend = x0 + (c.yhi-y0)*dx/dy
		yend = c.yhi
	} else {
		xend = x1
		yend = y1
	}
	if xstart >= c.xhi && xend >= c.xhi {
		return false
	}
	if xstart > c.xlo || xend > c.xlo {
		return true
	}
	c.Record(ystart, yend, dir)
	return false
}

// AccumulateQuad adds the quadratic curve which starts at (x0, y0) and has
// control point and end point stored in coords[0:4].  It returns true if
// the curve enters the window.
func (c *Crossings) AccumulateQuad(x0, y0 float64, coords []float64) bool {
	if y0 < c.ylo && coords[1] < c.ylo && coords[3] < c.ylo {
		return false
	}
	if y0 > c.yhi && coords[1] > c.yhi && coords[3] > c.yhi {
		return false
	}
	if x0 > c.xhi && coords[0] > c.xhi && coords[2] > c.xhi {
		return false
	}
	if x0 < c.xlo && coords[0] < c.xlo && coords[2] < c.xlo {
		if y0 < coords[3] {
			c.Record(max(y0, c.ylo), min(coords[3], c.yhi), Increasing)
		} else if y0 > coords[3] {
			c.Record(max(coords[3], c.ylo), min(y0, c.yhi), Decreasing)
		}
		return false
	}
	c.tmp = InsertQuad(c.tmp[:0], x0, y0, coords)
	return c.accumulateTmp()
}

// AccumulateCubic adds the cubic curve which starts at (x0, y0) and has
// control points and end point stored in coords[0:6].  It returns true if
// the curve enters the window.
func (c *Crossings) AccumulateCubic(x0, y0 float64, coords []float64) bool {
	if y0 < c.ylo && coords[1] < c.ylo && coords[3] < c.ylo && coords[5] < c.ylo {
		return false
	}
	if y0 > c.yhi && coords[1] > c.yhi && coords[3] > c.yhi && coords[5] > c.yhi {
		return false
	}
	if x0 > c.xhi && coords[0] > c.xhi && coords[2] > c.xhi && coords[4] > c.xhi {
		return false
	}
	if x0 < c.xlo && coords[0] < c.xlo && coords[2] < c.xlo && coords[4] < c.xlo {
		if y0 <= coords[5] {
			c.Record(max(y0, c.ylo), min(coords[5], c.yhi), Increasing)
		} else {
			c.Record(max(coords[5], c.ylo), min(y0, c.yhi), Decreasing)
		}
		return false
	}
	c.tmp = InsertCubic(c.tmp[:0], x0, y0, coords)
	return c.accumulateTmp()
}

func (c *Crossings) accumulateTmp() bool {
	for _, cv := range c.tmp {
		if AccumulateCrossings(cv, c) {
			return true
		}
	}
	return false
}

// FindCrossings accumulates the crossings of the given curves with the
// window [xlo, xhi] × [ylo, yhi].  The result is nil if one of the curves
// enters the window.
func FindCrossings(curves []Curve, rule pathiter.WindingRule, xlo, ylo, xhi, yhi float64) *Crossings {
	cr := NewCrossings(rule, xlo, ylo, xhi, yhi)
	for _, c := range curves {
		if AccumulateCrossings(c, cr) {
			return nil
		}
	}
	return cr
}

// FindCrossingsPath accumulates the crossings of the path read from it
// with the window [xlo, xhi] × [ylo, yhi], using the winding rule of the
// path.  Open subpaths are closed with a straight line.  The result is nil
// if the path enters the window.
func FindCrossingsPath(it pathiter.Iterator, xlo, ylo, xhi, yhi float64) *Crossings {
	cr := NewCrossings(it.WindingRule(), xlo, ylo, xhi, yhi)

	var buf [pathiter.MaxCoords]float32
	var coords [pathiter.MaxCoords]float64
	var movx, movy, curx, cury float64
	for ; !it.IsDone(); it.Next() {
		tp := it.CurrentSegment(buf[:])
		for i := range 2 * tp.NumPoints() {
			coords[i] = float64(buf[i])
		}
		switch tp {
		case pathiter.MoveTo:
			if movy != cury && cr.AccumulateLine(curx, cury, movx, movy) {
				return nil
			}
			movx, movy = coords[0], coords[1]
			curx, cury = movx, movy
		case pathiter.LineTo:
			if cr.AccumulateLine(curx, cury, coords[0], coords[1]) {
				return nil
			}
			curx, cury = coords[0], coords[1]
		case pathiter.QuadTo:
			if cr.AccumulateQuad(curx, cury, coords[:4]) {
				return nil
			}
			curx, cury = coords[2], coords[3]
		case pathiter.CubicTo:
			if cr.AccumulateCubic(curx, cury, coords[:6]) {
				return nil
			}
			curx, cury = coords[4], coords[5]
		case pathiter.Close:
			if movy != cury && cr.AccumulateLine(curx, cury, movx, movy) {
				return nil
			}
			curx, cury = movx, movy
		}
	}
	if movy != cury && cr.AccumulateLine(curx, cury, movx, movy) {
		return nil
	}
	return cr
}
