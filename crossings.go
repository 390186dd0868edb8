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
	"math"

	"github.com/chewxy/math32"

	"seehuhn.de/go/shape/pathiter"
)

// RectIntersects is returned by the RectCrossings functions when a path
// segment passes through the interior of the rectangle.  No valid crossing
// count has this value.
const RectIntersects = math.MinInt32

// MaxSubdivisionLevel limits the recursive subdivision of curves in the
// crossing functions.  Beyond this depth a curve is replaced by its chord.
const MaxSubdivisionLevel = 52

// PointCrossingsForPath counts the crossings of the ray from (px, py)
// towards +x with the path read from it.  Segments crossing the ray
// downwards (increasing y) count +1, upwards -1.  Every subpath is closed
// implicitly with a straight line.
//
// The point is inside the path if the count is odd (even-odd rule) or
// non-zero (non-zero rule).  PointCrossingsForPath panics with
// [ErrMissingMoveTo] if the first segment is not a MoveTo.
func PointCrossingsForPath(it pathiter.Iterator, px, py float32) int {
	if it.IsDone() {
		return 0
	}
	var coords [pathiter.MaxCoords]float32
	if it.CurrentSegment(coords[:]) != pathiter.MoveTo {
		panic(ErrMissingMoveTo)
	}
	it.Next()
	movx, movy := coords[0], coords[1]
	curx, cury := movx, movy
	crossings := 0
	for ; !it.IsDone(); it.Next() {
		switch it.CurrentSegment(coords[:]) {
		case pathiter.MoveTo:
			if cury != movy {
				crossings += PointCrossingsForLine(px, py, curx, cury, movx, movy)
			}
			movx, movy = coords[0], coords[1]
			curx, cury = movx, movy
		case pathiter.LineTo:
			crossings += PointCrossingsForLine(px, py, curx, cury, coords[0], coords[1])
			curx, cury = coords[0], coords[1]
		case pathiter.QuadTo:
			crossings += PointCrossingsForQuad(px, py, curx, cury,
				coords[0], coords[1], coords[2], coords[3], 0)
			curx, cury = coords[2], coords[3]
		case pathiter.CubicTo:
			crossings += PointCrossingsForCubic(px, py, curx, cury,
				coords[0], coords[1], coords[2], coords[3], coords[4], coords[5], 0)
			curx, cury = coords[4], coords[5]
		case pathiter.Close:
			if cury != movy {
				crossings += PointCrossingsForLine(px, py, curx, cury, movx, movy)
			}
			curx, cury = movx, movy
		}
	}
	if cury != movy {
		crossings += PointCrossingsForLine(px, py, curx, cury, movx, movy)
	}
	return crossings
}

// PointCrossingsForLine returns the crossing count of the ray from
// (px, py) towards +x with the line from (x0, y0) to (x1, y1).
// The line is treated as half open in y: it includes its smaller y end.
func PointCrossingsForLine(px, py, x0, y0, x1, y1 float32) int {
	if py < y0 && py < y1 {
		return 0
	}
	if py >= y0 && py >= y1 {
		return 0
	}
	// y0 != y1 from here on
	if px >= x0 && px >= x1 {
		return 0
	}
	if px < x0 && px < x1 {
		if y0 < y1 {
			return 1
		}
		return -1
	}
	xint := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px >= xint {
		return 0
	}
	if y0 < y1 {
		return 1
	}
	return -1
}

// PointCrossingsForQuad returns the crossing count of the ray from
// (px, py) towards +x with a quadratic Bézier curve.  Level is the current
// subdivision depth; callers pass 0.
func PointCrossingsForQuad(px, py, x0, y0, xc, yc, x1, y1 float32, level int) int {
	if py < y0 && py < yc && py < y1 {
		return 0
	}
	if py >= y0 && py >= yc && py >= y1 {
		return 0
	}
	if px >= x0 && px >= xc && px >= x1 {
		return 0
	}
	if px < x0 && px < xc && px < x1 {
		return halfOpenCount(py, y0, y1)
	}
	if level > MaxSubdivisionLevel {
		return PointCrossingsForLine(px, py, x0, y0, x1, y1)
	}
	x0c := (x0 + xc) / 2
	y0c := (y0 + yc) / 2
	xc1 := (xc + x1) / 2
	yc1 := (yc + y1) / 2
	xc = (x0c + xc1) / 2
	yc = (y0c + yc1) / 2
	if math32.IsNaN(xc) || math32.IsNaN(yc) {
		// some coordinate was NaN, or opposing infinities were added
		return 0
	}
	return PointCrossingsForQuad(px, py, x0, y0, x0c, y0c, xc, yc, level+1) +
		PointCrossingsForQuad(px, py, xc, yc, xc1, yc1, x1, y1, level+1)
}

// PointCrossingsForCubic returns the crossing count of the ray from
// (px, py) towards +x with a cubic Bézier curve.  Level is the current
// subdivision depth; callers pass 0.
func PointCrossingsForCubic(px, py, x0, y0, xc0, yc0, xc1, yc1, x1, y1 float32, level int) int {
	if py < y0 && py < yc0 && py < yc1 && py < y1 {
		return 0
	}
	if py >= y0 && py >= yc0 && py >= yc1 && py >= y1 {
		return 0
	}
	if px >= x0 && px >= xc0 && px >= xc1 && px >= x1 {
		return 0
	}
	if px < x0 && px < xc0 && px < xc1 && px < x1 {
		return halfOpenCount(py, y0, y1)
	}
	if level > MaxSubdivisionLevel {
		return PointCrossingsForLine(px, py, x0, y0, x1, y1)
	}
	xmid := (xc0 + xc1) / 2
	ymid := (yc0 + yc1) / 2
	xc0 = (x0 + xc0) / 2
	yc0 = (y0 + yc0) / 2
	xc1 = (xc1 + x1) / 2
	yc1 = (yc1 + y1) / 2
	xc0m := (xc0 + xmid) / 2
	yc0m := (yc0 + ymid) / 2
	xmc1 := (xmid + xc1) / 2
	ymc1 := (ymid + yc1) / 2
	xmid = (xc0m + xmc1) / 2
	ymid = (yc0m + ymc1) / 2
	if math32.IsNaN(xmid) || math32.IsNaN(ymid) {
		return 0
	}
	return PointCrossingsForCubic(px, py, x0, y0, xc0, yc0, xc0m, yc0m, xmid, ymid, level+1) +
		PointCrossingsForCubic(px, py, xmid, ymid, xmc1, ymc1, xc1, yc1, x1, y1, level+1)
}

// halfOpenCount is the crossing count of a curve which lies entirely to
// the right of the test point.  Only the end points matter.
func halfOpenCount(py, y0, y1 float32) int {
	if py >= y0 {
		if py < y1 {
			return 1
		}
	} else if py >= y1 {
		return -1
	}
	return 0
}

// RectCrossingsForPath counts the crossings of the path read from it with
// the right edge of the rectangle [rxmin, rxmax] × [rymin, rymax], where
// crossings of the top and bottom edge rays are counted separately, so
// that one full crossing of the rectangle's y-range adds ±2.
//
// The result is [RectIntersects] if the path enters the interior of the
// rectangle.  Otherwise the rectangle is inside the path if the count is
// non-zero (non-zero rule) or if bit 1 of the count is set (even-odd
// rule).  Empty rectangles give 0.
func RectCrossingsForPath(it pathiter.Iterator, rxmin, rymin, rxmax, rymax float32) int {
	if rxmax <= rxmin || rymax <= rymin {
		return 0
	}
	if it.IsDone() {
		return 0
	}
	var coords [pathiter.MaxCoords]float32
	if it.CurrentSegment(coords[:]) != pathiter.MoveTo {
		panic(ErrMissingMoveTo)
	}
	it.Next()
	movx, movy := coords[0], coords[1]
	curx, cury := movx, movy
	crossings := 0
	for ; crossings != RectIntersects && !it.IsDone(); it.Next() {
		switch it.CurrentSegment(coords[:]) {
		case pathiter.MoveTo:
			if curx != movx || cury != movy {
				crossings = RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax,
					curx, cury, movx, movy)
			}
			movx, movy = coords[0], coords[1]
			curx, cury = movx, movy
		case pathiter.LineTo:
			crossings = RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax,
				curx, cury, coords[0], coords[1])
			curx, cury = coords[0], coords[1]
		case pathiter.QuadTo:
			crossings = RectCrossingsForQuad(crossings, rxmin, rymin, rxmax, rymax,
				curx, cury, coords[0], coords[1], coords[2], coords[3], 0)
			curx, cury = coords[2], coords[3]
		case pathiter.CubicTo:
			crossings = RectCrossingsForCubic(crossings, rxmin, rymin, rxmax, rymax,
				curx, cury, coords[0], coords[1], coords[2], coords[3], coords[4], coords[5], 0)
			curx, cury = coords[4], coords[5]
		case pathiter.Close:
			if curx != movx || cury != movy {
				crossings = RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax,
					curx, cury, movx, movy)
			}
			curx, cury = movx, movy
		}
	}
	if crossings != RectIntersects && (curx != movx || cury != movy) {
		crossings = RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax,
			curx, cury, movx, movy)
	}
	return crossings
}

// RectCrossingsForLine adds the crossings of the line from (x0, y0) to
// (x1, y1) with the rectangle to crossings and returns the result, or
// [RectIntersects] if the line enters the rectangle.
func RectCrossingsForLine(crossings int, rxmin, rymin, rxmax, rymax, x0, y0, x1, y1 float32) int {
	if y0 >= rymax && y1 >= rymax {
		return crossings
	}
	if y0 <= rymin && y1 <= rymin {
		return crossings
	}
	if x0 <= rxmin && x1 <= rxmin {
		return crossings
	}
	if x0 >= rxmax && x1 >= rxmax {
		return rightOfRect(crossings, rymin, rymax, y0, y1)
	}
	if (x0 > rxmin && x0 < rxmax && y0 > rymin && y0 < rymax) ||
		(x1 > rxmin && x1 < rxmax && y1 > rymin && y1 < rymax) {
		return RectIntersects
	}
	// Clip the line to the y-range of the rectangle and look at the
	// x coordinates of the clipped end points.
	xi0 := x0
	if y0 < rymin {
		xi0 += (rymin - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > rymax {
		xi0 += (rymax - y0) * (x1 - x0) / (y1 - y0)
	}
	xi1 := x1
	if y1 < rymin {
		xi1 += (rymin - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > rymax {
		xi1 += (rymax - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 <= rxmin && xi1 <= rxmin {
		return crossings
	}
	if xi0 >= rxmax && xi1 >= rxmax {
		return rightOfRect(crossings, rymin, rymax, y0, y1)
	}
	return RectIntersects
}

// rightOfRect counts a line to the right of the rectangle.  Touching the
// top or bottom edge counts as crossing it.
func rightOfRect(crossings int, rymin, rymax, y0, y1 float32) int {
	if y0 < y1 {
		if y0 <= rymin {
			crossings++
		}
		if y1 >= rymax {
			crossings++
		}
	} else if y1 < y0 {
		if y1 <= rymin {
			crossings--
		}
		if y0 >= rymax {
			crossings--
		}
	}
	return crossings
}

// curveRightOfRect counts a curve to the right of the rectangle.  An end
// point on the top or bottom edge counts only if the curve leaves the
// edge towards the other side.
func curveRightOfRect(crossings int, rymin, rymax, y0, y1 float32) int {
	if y0 < y1 {
		if y0 <= rymin && y1 > rymin {
			crossings++
		}
		if y0 < rymax && y1 >= rymax {
			crossings++
		}
	} else if y1 < y0 {
		if y1 <= rymin && y0 > rymin {
			crossings--
		}
		if y1 < rymax && y0 >= rymax {
			crossings--
		}
	}
	return crossings
}

// RectCrossingsForQuad adds the crossings of a quadratic Bézier curve with
// the rectangle to crossings.  Level is the current subdivision depth;
// callers pass 0.
func RectCrossingsForQuad(crossings int, rxmin, rymin, rxmax, rymax, x0, y0, xc, yc, x1, y1 float32, level int) int {
	if y0 >= rymax && yc >= rymax && y1 >= rymax {
		return crossings
	}
	if y0 <= rymin && yc <= rymin && y1 <= rymin {
		return crossings
	}
	if x0 <= rxmin && xc <= rxmin && x1 <= rxmin {
		return crossings
	}
	if x0 >= rxmax && xc >= rxmax && x1 >= rxmax {
		return curveRightOfRect(crossings, rymin, rymax, y0, y1)
	}
	if (x0 < rxmax && x0 > rxmin && y0 < rymax && y0 > rymin) ||
		(x1 < rxmax && x1 > rxmin && y1 < rymax && y1 > rymin) {
		return RectIntersects
	}
	if level > MaxSubdivisionLevel {
		return RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax, x0, y0, x1, y1)
	}
	x0c := (x0 + xc) / 2
	y0c := (y0 + yc) / 2
	xc1 := (xc + x1) / 2
	yc1 := (yc + y1) / 2
	xc = (x0c + xc1) / 2
	yc = (y0c + yc1) / 2
	if math32.IsNaN(xc) || math32.IsNaN(yc) {
		return 0
	}
	crossings = RectCrossingsForQuad(crossings, rxmin, rymin, rxmax, rymax,
		x0, y0, x0c, y0c, xc, yc, level+1)
	if crossings != RectIntersects {
		crossings = RectCrossingsForQuad(crossings, rxmin, rymin, rxmax, rymax,
			xc, yc, xc1, yc1, x1, y1, level+1)
	}
	return crossings
}

// RectCrossingsForCubic adds the crossings of a cubic Bézier curve with
// the rectangle to crossings.  Level is the current subdivision depth;
// callers pass 0.
func RectCrossingsForCubic(crossings int, rxmin, rymin, rxmax, rymax, x0, y0, xc0, yc0, xc1, yc1, x1, y1 float32, level int) int {
	if y0 >= rymax && yc0 >= rymax && yc1 >= rymax && y1 >= rymax {
		return crossings
	}
	if y0 <= rymin && yc0 <= rymin && yc1 <= rymin && y1 <= rymin {
		return crossings
	}
	if x0 <= rxmin && xc0 <= rxmin && xc1 <= rxmin && x1 <= rxmin {
		return crossings
	}
	if x0 >= rxmax && xc0 >= rxmax && xc1 >= rxmax && x1 >= rxmax {
		return curveRightOfRect(crossings, rymin, rymax, y0, y1)
	}
	if (x0 > rxmin && x0 < rxmax && y0 > rymin && y0 < rymax) ||
		(x1 > rxmin && x1 < rxmax && y1 > rymin && y1 < rymax) {
		return RectIntersects
	}
	if level > MaxSubdivisionLevel {
		return RectCrossingsForLine(crossings, rxmin, rymin, rxmax, rymax, x0, y0, x1, y1)
	}
	xmid := (xc0 + xc1) / 2
	ymid := (yc0 + yc1) / 2
	xc0 = (x0 + xc0) / 2
	yc0 = (y0 + yc0) / 2
	xc1 = (xc1 + x1) / 2
	yc1 = (yc1 + y1) / 2
	xc0m := (xc0 + xmid) / 2
	yc0m := (yc0 + ymid) / 2
	xmc1 := (xmid + xc1) / 2
	ymc1 := (ymid + yc1) / 2
	xmid = (xc0m + xmc1) / 2
	ymid = (yc0m + ymc1) / 2
	if math32.IsNaN(xmid) || math32.IsNaN(ymid) {
		return 0
	}
	crossings = RectCrossingsForCubic(crossings, rxmin, rymin, rxmax, rymax,
		x0, y0, xc0, yc0, xc0m, yc0m, xmid, ymid, level+1)
	if crossings != RectIntersects {
		crossings = RectCrossingsForCubic(crossings, rxmin, rymin, rxmax, rymax,
			xmid, ymid, xmc1, ymc1, xc1, yc1, x1, y1, level+1)
	}
	return crossings
}

// Outcode bits, as returned by [Outcode].
const (
	OutLeft   = 1
	OutTop    = 2
	OutRight  = 4
	OutBottom = 8
)

// Outcode classifies (x, y) relative to the rectangle with corner
// (rx, ry), width rw and height rh.  A rectangle with non-positive width
// reports every point as both left and right of it; likewise for height.
func Outcode(rx, ry, rw, rh, x, y float32) int {
	out := 0
	if rw <= 0 {
		out |= OutLeft | OutRight
	} else if x < rx {
		out |= OutLeft
	} else if float64(x) > float64(rx)+float64(rw) {
		out |= OutRight
	}
	if rh <= 0 {
		out |= OutTop | OutBottom
	} else if y < ry {
		out |= OutTop
	} else if float64(y) > float64(ry)+float64(rh) {
		out |= OutBottom
	}
	return out
}

// IntersectsLine reports whether the line segment from (x1, y1) to
// (x2, y2) meets the rectangle with corner (rx, ry), width rw and
// height rh.  The rectangle is treated as closed.
func IntersectsLine(rx, ry, rw, rh, x1, y1, x2, y2 float32) bool {
	out2 := Outcode(rx, ry, rw, rh, x2, y2)
	if out2 == 0 {
		return true
	}
	for {
		out1 := Outcode(rx, ry, rw, rh, x1, y1)
		if out1 == 0 {
			return true
		}
		if out1&out2 != 0 {
			return false
		}
		// move (x1, y1) onto the edge it lies beyond
		if out1&(OutLeft|OutRight) != 0 {
			x := rx
			if out1&OutRight != 0 {
				x += rw
			}
			y1 += (x - x1) * (y2 - y1) / (x2 - x1)
			x1 = x
		} else {
			y := ry
			if out1&OutBottom != 0 {
				y += rh
			}
			x1 += (y - y1) * (x2 - x1) / (y2 - y1)
			y1 = y
		}
	}
}
