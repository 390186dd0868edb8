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
	"slices"

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/pathiter"
)

// CubicCurve2D is a cubic Bézier curve from (X1, Y1) to (X2, Y2) with
// control points (CtrlX1, CtrlY1) and (CtrlX2, CtrlY2).  As a region, the
// curve is closed by the straight line between its end points and filled
// with the even-odd rule.
type CubicCurve2D struct {
	X1, Y1         float32
	CtrlX1, CtrlY1 float32
	CtrlX2, CtrlY2 float32
	X2, Y2         float32
}

// Bounds implements the [Shape] interface.  The rectangle encloses all
// four control points.
func (c *CubicCurve2D) Bounds() bounds.RectBounds {
	return bounds.NewRect(
		min(c.X1, c.X2, c.CtrlX1, c.CtrlX2),
		min(c.Y1, c.Y2, c.CtrlY1, c.CtrlY2),
		max(c.X1, c.X2, c.CtrlX1, c.CtrlX2),
		max(c.Y1, c.Y2, c.CtrlY1, c.CtrlY2))
}

// Eval returns the point of the curve at parameter t.
func (c *CubicCurve2D) Eval(t float32) (x, y float32) {
	return bernstein3(t, c.X1, c.CtrlX1, c.CtrlX2, c.X2),
		bernstein3(t, c.Y1, c.CtrlY1, c.CtrlY2, c.Y2)
}

// EvalDt returns the derivative of the curve at parameter t.
func (c *CubicCurve2D) EvalDt(t float32) (dx, dy float32) {
	u := 1 - t
	dx = 3 * ((c.CtrlX1-c.X1)*u*u + 2*(c.CtrlX2-c.CtrlX1)*u*t + (c.X2-c.CtrlX2)*t*t)
	dy = 3 * ((c.CtrlY1-c.Y1)*u*u + 2*(c.CtrlY2-c.CtrlY1)*u*t + (c.Y2-c.CtrlY2)*t*t)
	return dx, dy
}

func bernstein3(t, v0, v1, v2, v3 float32) float32 {
	u := 1 - t
	return u*u*u*v0 + 3*(t*u*u*v1+t*t*u*v2) + t*t*t*v3
}

// FlatnessSq returns the square of the largest distance of a control
// point from the chord.
func (c *CubicCurve2D) FlatnessSq() float32 {
	return CubicFlatnessSq(c.X1, c.Y1, c.CtrlX1, c.CtrlY1, c.CtrlX2, c.CtrlY2, c.X2, c.Y2)
}

// Flatness returns the largest distance of a control point from the
// chord.
func (c *CubicCurve2D) Flatness() float32 {
	return math32.Sqrt(c.FlatnessSq())
}

// CubicFlatnessSq returns the square of the largest distance of the
// control points (cx1, cy1) and (cx2, cy2) from the segment
// (x1, y1)–(x2, y2).
func CubicFlatnessSq(x1, y1, cx1, cy1, cx2, cy2, x2, y2 float32) float32 {
	return max(PtSegDistSq(x1, y1, x2, y2, cx1, cy1),
		PtSegDistSq(x1, y1, x2, y2, cx2, cy2))
}

// Subdivide splits c at parameter t and returns both halves.
func (c *CubicCurve2D) Subdivide(t float32) (left, right CubicCurve2D) {
	npx, npy := c.Eval(t)
	u := 1 - t
	hx := u*c.CtrlX1 + t*c.CtrlX2
	hy := u*c.CtrlY1 + t*c.CtrlY2

	left.X1, left.Y1 = c.X1, c.Y1
	left.CtrlX1 = u*c.X1 + t*c.CtrlX1
	left.CtrlY1 = u*c.Y1 + t*c.CtrlY1
	left.CtrlX2 = u*left.CtrlX1 + t*hx
	left.CtrlY2 = u*left.CtrlY1 + t*hy
	left.X2, left.Y2 = npx, npy

	right.X1, right.Y1 = npx, npy
	right.CtrlX2 = u*c.CtrlX2 + t*c.X2
	right.CtrlY2 = u*c.CtrlY2 + t*c.Y2
	right.CtrlX1 = u*hx + t*right.CtrlX2
	right.CtrlY1 = u*hy + t*right.CtrlY2
	right.X2, right.Y2 = c.X2, c.Y2
	return left, right
}

// SubdivideHalf splits c at t = 1/2 using only additions and halvings.
func (c *CubicCurve2D) SubdivideHalf() (left, right CubicCurve2D) {
	cx := (c.CtrlX1 + c.CtrlX2) / 2
	cy := (c.CtrlY1 + c.CtrlY2) / 2
	cx1 := (c.X1 + c.CtrlX1) / 2
	cy1 := (c.Y1 + c.CtrlY1) / 2
	cx2 := (c.X2 + c.CtrlX2) / 2
	cy2 := (c.Y2 + c.CtrlY2) / 2
	lcx2 := (cx1 + cx) / 2
	lcy2 := (cy1 + cy) / 2
	rcx1 := (cx2 + cx) / 2
	rcy1 := (cy2 + cy) / 2
	mx := (lcx2 + rcx1) / 2
	my := (lcy2 + rcy1) / 2
	left = CubicCurve2D{c.X1, c.Y1, cx1, cy1, lcx2, lcy2, mx, my}
	right = CubicCurve2D{mx, my, rcx1, rcy1, cx2, cy2, c.X2, c.Y2}
	return left, right
}

// Contains implements the [Shape] interface.
func (c *CubicCurve2D) Contains(x, y float32) bool {
	if !finite(x, y) {
		return false
	}
	crossings := PointCrossingsForLine(x, y, c.X1, c.Y1, c.X2, c.Y2) +
		PointCrossingsForCubic(x, y, c.X1, c.Y1, c.CtrlX1, c.CtrlY1,
			c.CtrlX2, c.CtrlY2, c.X2, c.Y2, 0)
	return crossings&1 == 1
}

// ContainsRect implements the [Shape] interface.
func (c *CubicCurve2D) ContainsRect(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	// The closed curve consists of one or two convex parts which share
	// the closing line as an edge.  A rectangle with all corners inside
	// lies in one part unless it crosses the closing line.
	if !(c.Contains(x, y) && c.Contains(x+w, y) &&
		c.Contains(x+w, y+h) && c.Contains(x, y+h)) {
		return false
	}
	return !IntersectsLine(x, y, w, h, c.X1, c.Y1, c.X2, c.Y2)
}

// position of a coordinate relative to an interval
const (
	tagBelow    = -2
	tagLowEdge  = -1
	tagInside   = 0
	tagHighEdge = 1
	tagAbove    = 2
)

func getTag(coord, low, high float32) int {
	if coord <= low {
		if coord < low {
			return tagBelow
		}
		return tagLowEdge
	}
	if coord >= high {
		if coord > high {
			return tagAbove
		}
		return tagHighEdge
	}
	return tagInside
}

// inwards reports whether a curve starting at a point with tag pttag
// heads into the interval, given the tags of two other points.
func inwards(pttag, opt1tag, opt2tag int) bool {
	switch pttag {
	case tagLowEdge:
		return opt1tag >= tagInside || opt2tag >= tagInside
	case tagInside:
		return true
	case tagHighEdge:
		return opt1tag <= tagInside || opt2tag <= tagInside
	}
	return false
}

// Intersects implements the [Shape] interface.  The answer is exact: the
// crossings of the curve with the rectangle edges are computed by solving
// the cubic equations.
func (c *CubicCurve2D) Intersects(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	// An end point strictly inside the rectangle.
	x1tag := getTag(c.X1, x, x+w)
	y1tag := getTag(c.Y1, y, y+h)
	if x1tag == tagInside && y1tag == tagInside {
		return true
	}
	x2tag := getTag(c.X2, x, x+w)
	y2tag := getTag(c.Y2, y, y+h)
	if x2tag == tagInside && y2tag == tagInside {
		return true
	}

	ctrlx1tag := getTag(c.CtrlX1, x, x+w)
	ctrly1tag := getTag(c.CtrlY1, y, y+h)
	ctrlx2tag := getTag(c.CtrlX2, x, x+w)
	ctrly2tag := getTag(c.CtrlY2, y, y+h)

	// All four points on one side.
	if x1tag < tagInside && x2tag < tagInside && ctrlx1tag < tagInside && ctrlx2tag < tagInside {
		return false
	}
	if y1tag < tagInside && y2tag < tagInside && ctrly1tag < tagInside && ctrly2tag < tagInside {
		return false
	}
	if x1tag > tagInside && x2tag > tagInside && ctrlx1tag > tagInside && ctrlx2tag > tagInside {
		return false
	}
	if y1tag > tagInside && y2tag > tagInside && ctrly1tag > tagInside && ctrly2tag > tagInside {
		return false
	}

	// An end point on the border, with the chord or the curve heading
	// into the rectangle.
	if inwards(x1tag, x2tag, ctrlx1tag) && inwards(y1tag, y2tag, ctrly1tag) {
		return true
	}
	if inwards(x2tag, x1tag, ctrlx2tag) && inwards(y2tag, y1tag, ctrly2tag) {
		return true
	}

	// The end points span the rectangle directly.
	xoverlap := x1tag*x2tag <= 0
	yoverlap := y1tag*y2tag <= 0
	if x1tag == tagInside && x2tag == tagInside && yoverlap {
		return true
	}
	if y1tag == tagInside && y2tag == tagInside && xoverlap {
		return true
	}

	// Both end points are outside the rectangle, but not all points are
	// on one side of it.
	var eqn [4]float32
	var res [4]float32
	if !yoverlap {
		// Both end points above (or below): the curve must cross the top
		// (or bottom) edge twice, on opposite sides of the x-range.
		edge := y + h
		if y1tag < tagInside {
			edge = y
		}
		fillEqn(&eqn, edge, c.Y1, c.CtrlY1, c.CtrlY2, c.Y2)
		num := SolveCubic(eqn, res[:])
		num = evalCubic(res[:], num, c.X1, c.CtrlX1, c.CtrlX2, c.X2)
		return num == 2 && getTag(res[0], x, x+w)*getTag(res[1], x, x+w) <= 0
	}
	if !xoverlap {
		edge := x + w
		if x1tag < tagInside {
			edge = x
		}
		fillEqn(&eqn, edge, c.X1, c.CtrlX1, c.CtrlX2, c.X2)
		num := SolveCubic(eqn, res[:])
		num = evalCubic(res[:], num, c.Y1, c.CtrlY1, c.CtrlY2, c.Y2)
		return num == 2 && getTag(res[0], y, y+h)*getTag(res[1], y, y+h) <= 0
	}

	// The x and y ranges of the end points both overlap the rectangle.
	// Classify where the chord meets the y-range of the rectangle.
	dx := c.X2 - c.X1
	dy := c.Y2 - c.Y1
	k := c.Y2*c.X1 - c.X2*c.Y1
	var c1tag, c2tag int
	if y1tag == tagInside {
		c1tag = x1tag
	} else {
		edge := y + h
		if y1tag < tagInside {
			edge = y
		}
		c1tag = getTag((k+dx*edge)/dy, x, x+w)
	}
	if y2tag == tagInside {
		c2tag = x2tag
	} else {
		edge := y + h
		if y2tag < tagInside {
			edge = y
		}
		c2tag = getTag((k+dx*edge)/dy, x, x+w)
	}
	if c1tag*c2tag <= 0 {
		// the chord crosses the rectangle
		return true
	}

	// The chord crosses the near vertical edge once and the curve crosses
	// it once or three times.  Sort the y-tags of all crossings; the
	// curve intersects iff one of the pairs spans the y-range.
	if c1tag*x1tag <= 0 {
		c1tag = y1tag
	} else {
		c1tag = y2tag
	}
	edge := x + w
	if c2tag < tagInside {
		edge = x
	}
	fillEqn(&eqn, edge, c.X1, c.CtrlX1, c.CtrlX2, c.X2)
	num := SolveCubic(eqn, res[:])
	num = evalCubic(res[:], num, c.Y1, c.CtrlY1, c.CtrlY2, c.Y2)

	tags := make([]int, num+1)
	for i := range num {
		tags[i] = getTag(res[i], y, y+h)
	}
	tags[num] = c1tag
	slices.Sort(tags)
	return (num >= 1 && tags[0]*tags[1] <= 0) ||
		(num >= 3 && tags[2]*tags[3] <= 0)
}

// fillEqn stores the power basis coefficients of the cubic Bézier
// function with coefficients c1, cp1, cp2, c2, minus val.
func fillEqn(eqn *[4]float32, val, c1, cp1, cp2, c2 float32) {
	eqn[0] = c1 - val
	eqn[1] = (cp1 - c1) * 3
	eqn[2] = (cp2 - cp1 - cp1 + c1) * 3
	eqn[3] = c2 + (cp1-cp2)*3 - c1
}

// evalCubic replaces the roots in vals[:num] which lie in [0, 1] by the
// value of the Bézier function at that root, discarding the others.  It
// returns the number of values kept.
func evalCubic(vals []float32, num int, c1, cp1, cp2, c2 float32) int {
	j := 0
	for i := range num {
		t := vals[i]
		if t >= 0 && t <= 1 {
			vals[j] = bernstein3(t, c1, cp1, cp2, c2)
			j++
		}
	}
	return j
}

// PathIterator implements the [Shape] interface.
func (c *CubicCurve2D) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	return pathiter.NewCubicIterator(c.X1, c.Y1, c.CtrlX1, c.CtrlY1,
		c.CtrlX2, c.CtrlY2, c.X2, c.Y2, tx)
}

// FlatPathIterator implements the [Shape] interface.
func (c *CubicCurve2D) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return flat(c.PathIterator(tx), flatness)
}

// SolveQuadratic stores the real roots of eqn[2]·t² + eqn[1]·t + eqn[0]
// in res and returns their number.  A double root is reported once per
// factor.  The result is -1 if the equation is constant.
func SolveQuadratic(eqn [3]float32, res []float32) int {
	a, b, c := eqn[2], eqn[1], eqn[0]
	if a == 0 {
		if b == 0 {
			return -1
		}
		res[0] = -c / b
		return 1
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0
	}
	d = math32.Sqrt(d)
	if b < 0 {
		d = -d
	}
	q := (b + d) / -2
	n := 0
	res[n] = q / a
	n++
	if q != 0 {
		res[n] = c / q
		n++
	}
	return n
}

// SolveCubic stores the real roots of
// eqn[3]·t³ + eqn[2]·t² + eqn[1]·t + eqn[0] in res, which must have room
// for three values, and returns their number.  If eqn[3] is zero the
// equation is solved as a quadratic, and the result is -1 for a constant
// equation.  Roots close to 0 and 1 are polished by Newton iteration.
func SolveCubic(eqn [4]float32, res []float32) int {
	d := eqn[3]
	if d == 0 {
		return SolveQuadratic([3]float32{eqn[0], eqn[1], eqn[2]}, res)
	}
	a := eqn[2] / d
	b := eqn[1] / d
	c := eqn[0] / d
	Q := (a*a - 3*b) / 9
	R := (2*a*a*a - 9*a*b + 27*c) / 54
	R2 := R * R
	Q3 := Q * Q * Q
	a /= 3
	if R2 < Q3 {
		// three real roots
		theta := math.Acos(float64(R) / math.Sqrt(float64(Q3)))
		q := -2 * math.Sqrt(float64(Q))
		fa := float64(a)
		res[0] = float32(q*math.Cos(theta/3) - fa)
		res[1] = float32(q*math.Cos((theta+2*math.Pi)/3) - fa)
		res[2] = float32(q*math.Cos((theta-2*math.Pi)/3) - fa)
		fixRoots(res[:3], &eqn)
		return 3
	}
	neg := R < 0
	S := math32.Sqrt(R2 - Q3)
	if neg {
		R = -R
	}
	A := float32(math.Pow(float64(R+S), 1.0/3))
	if !neg {
		A = -A
	}
	var B float32
	if A != 0 {
		B = Q / A
	}
	res[0] = (A + B) - a
	return 1
}

// fixRoots polishes roots near the ends of the unit interval.
func fixRoots(res []float32, eqn *[4]float32) {
	const eps = 1e-5
	for i, t := range res {
		if math32.Abs(t) < eps {
			res[i] = findZero(t, 0, eqn)
		} else if math32.Abs(t-1) < eps {
			res[i] = findZero(t, 1, eqn)
		}
	}
}

func solveEqn(eqn []float32, t float32) float32 {
	order := len(eqn) - 1
	v := eqn[order]
	for order--; order >= 0; order-- {
		v = v*t + eqn[order]
	}
	return v
}

// findZero runs Newton's method from t, looking for a root of eqn near
// target.
func findZero(t, target float32, eqn *[4]float32) float32 {
	slope := [3]float32{eqn[1], 2 * eqn[2], 3 * eqn[3]}
	var origDelta float32
	origT := t
	for {
		s := solveEqn(slope[:], t)
		if s == 0 {
			// local extremum
			return t
		}
		y := solveEqn(eqn[:], t)
		if y == 0 {
			return t
		}
		delta := -(y / s)
		if origDelta == 0 {
			origDelta = delta
		}
		switch {
		case t < target:
			if delta < 0 {
				return t
			}
		case t > target:
			if delta > 0 {
				return t
			}
		default:
			if delta > 0 {
				return target + math.SmallestNonzeroFloat32
			}
			return target - math.SmallestNonzeroFloat32
		}
		newT := t + delta
		if t == newT {
			return t
		}
		if delta*origDelta < 0 {
			// Newton reversed direction
			var tag int
			if origT < t {
				tag = getTag(target, origT, t)
			} else {
				tag = getTag(target, t, origT)
			}
			if tag != tagInside {
				return (origT + t) / 2
			}
			t = target
		} else {
			t = newT
		}
	}
}
