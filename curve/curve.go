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

// Package curve decomposes path segments into y-monotonic curve pieces and
// implements the crossing, ordering and intersection algorithms on them.
//
// Every [Curve] is oriented so that y is non-decreasing in the curve
// parameter t ∈ [0,1].  The winding sense of the original path segment is
// kept separately as the curve's [Direction].  Curves are created only by
// the Insert functions, which split quadratic and cubic segments at their
// y-extrema and drop horizontal pieces.
//
// All computations use double precision.
package curve

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shape/internal/logger"
	"seehuhn.de/go/shape/pathiter"
)

// Direction records whether a curve piece was traversed downwards or
// upwards in the original path.
type Direction int

const (
	Increasing Direction = 1
	Decreasing Direction = -1
)

func (d Direction) String() string {
	if d == Increasing {
		return "increasing"
	}
	return "decreasing"
}

// Curve is a directed, y-monotonic polynomial segment.
type Curve interface {
	// Order is the polynomial degree: 0 for a point, 1 for a line,
	// 2 for a quadratic and 3 for a cubic Bézier curve.
	Order() int
	Direction() Direction

	// XTop, YTop is the point with t=0 and XBot, YBot the point with t=1.
	// YTop <= YBot always holds.
	XTop() float64
	YTop() float64
	XBot() float64
	YBot() float64

	XMin() float64
	XMax() float64

	// X0, Y0 and X1, Y1 are the start and end point in the original
	// path direction.
	X0() float64
	Y0() float64
	X1() float64
	Y1() float64

	XforY(y float64) float64
	TforY(y float64) float64
	XforT(t float64) float64
	YforT(t float64) float64
	DXforT(t float64, deriv int) float64
	DYforT(t float64, deriv int) float64

	// NextVertical returns the first parameter in (t0, t1) at which dx/dt
	// changes sign, or t1 if there is none.
	NextVertical(t0, t1 float64) float64

	// Enlarge grows r to include the curve.
	Enlarge(r *rect.Rect)

	// SubCurve returns the part of the curve between ystart and yend,
	// with the given direction.
	SubCurve(ystart, yend float64, dir Direction) Curve

	// Reversed returns the same curve with the opposite direction.
	Reversed() Curve

	// Segment stores the path segment leading to X1, Y1 in coords and
	// returns its type.  coords must have room for 6 values.
	Segment(coords []float64) pathiter.SegmentType
}

// InternalError is the panic value used when an internal invariant of the
// curve algorithms is violated.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "curve: " + e.Msg
}

func internalError(msg string, args ...any) {
	logger.Get().Error("curve: internal error", append([]any{"msg", msg}, args...)...)
	panic(&InternalError{Msg: msg})
}

// WithDirection returns c if it already has direction dir, and the
// reversed curve otherwise.
func WithDirection(c Curve, dir Direction) Curve {
	if c.Direction() == dir {
		return c
	}
	return c.Reversed()
}

// InsertMove appends the point (x, y) as an order 0 curve.
func InsertMove(curves []Curve, x, y float64) []Curve {
	return append(curves, newOrder0(x, y))
}

// InsertLine appends the line from (x0, y0) to (x1, y1).
// Horizontal lines are dropped.
func InsertLine(curves []Curve, x0, y0, x1, y1 float64) []Curve {
	switch {
	case y0 < y1:
		curves = append(curves, newOrder1(x0, y0, x1, y1, Increasing))
	case y0 > y1:
		curves = append(curves, newOrder1(x1, y1, x0, y0, Decreasing))
	}
	return curves
}

// InsertQuad appends the monotonic pieces of the quadratic curve which
// starts at (x0, y0) and has control point and end point stored in
// coords[0:4].
func InsertQuad(curves []Curve, x0, y0 float64, coords []float64) []Curve {
	y1 := coords[3]
	switch {
	case y0 > y1:
		return order2Insert(curves, coords[2], y1, coords[0], coords[1], x0, y0, Decreasing)
	case y0 == y1 && y0 == coords[1]:
		return curves
	default:
		return order2Insert(curves, x0, y0, coords[0], coords[1], coords[2], y1, Increasing)
	}
}

// InsertCubic appends the monotonic pieces of the cubic curve which starts
// at (x0, y0) and has control points and end point stored in coords[0:6].
func InsertCubic(curves []Curve, x0, y0 float64, coords []float64) []Curve {
	y1 := coords[5]
	switch {
	case y0 > y1:
		return order3Insert(curves, coords[4], y1, coords[2], coords[3], coords[0], coords[1], x0, y0, Decreasing)
	case y0 == y1 && y0 == coords[1] && y0 == coords[3]:
		return curves
	default:
		return order3Insert(curves, x0, y0, coords[0], coords[1], coords[2], coords[3], coords[4], y1, Increasing)
	}
}

// CrossingsFor returns 1 if a ray from (x, y) to the right crosses c, and
// 0 otherwise.  The top end point of c is included and the bottom end
// point is excluded, so that a ray through a vertex shared by two curves
// is counted once.
func CrossingsFor(c Curve, x, y float64) int {
	if _, ok := c.(*Order0); ok {
		return 0
	}
	if y >= c.YTop() && y < c.YBot() {
		if x < c.XMax() && (x < c.XMin() || x < c.XforY(y)) {
			return 1
		}
	}
	return 0
}

// AccumulateCrossings adds the crossings of c with the left edge of the
// window of cr to cr.  It returns true if c enters the window, in which
// case the crossing count is meaningless and the caller can stop.
func AccumulateCrossings(c Curve, cr *Crossings) bool {
	switch c := c.(type) {
	case *Order0:
		return c.accumulateCrossings(cr)
	case *Order1:
		return c.accumulateCrossings(cr)
	}

	xhi := cr.xhi
	if c.XMin() >= xhi {
		return false
	}
	xlo := cr.xlo
	ylo := cr.ylo
	yhi := cr.yhi
	y0 := c.YTop()
	y1 := c.YBot()

	var tstart, ystart, tend, yend float64
	if y0 < ylo {
		if y1 <= ylo {
			return false
		}
		ystart = ylo
		tstart = c.TforY(ylo)
	} else {
		if y0 >= yhi {
			return false
		}
		ystart = y0
		tstart = 0
	}
	if y1 > yhi {
		yend = yhi
		tend = c.TforY(yhi)
	} else {
		yend = y1
		tend = 1
	}

	// Walk the x-monotonic pieces of the curve.  The curve enters the
	// window if some piece starts inside it, or if the curve is seen on
	// both sides of it.
	hitLo := false
	hitHi := false
	for {
		x := c.XforT(tstart)
		if x < xhi {
			if hitHi || x > xlo {
				return true
			}
			hitLo = true
		} else {
			if hitLo {
				return true
			}
			hitHi = true
		}
		if tstart >= tend {
			break
		}
		tstart = c.NextVertical(tstart, tend)
	}
	if hitLo {
		cr.Record(ystart, yend, c.Direction())
	}
	return false
}

// Bounds returns the smallest rectangle containing all the given curves.
// If there are no curves, the result has LLx > URx.
func Bounds(curves []Curve) rect.Rect {
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range curves {
		c.Enlarge(&r)
	}
	return r
}

func enlarge(r *rect.Rect, x, y float64) {
	r.LLx = min(r.LLx, x)
	r.LLy = min(r.LLy, y)
	r.URx = max(r.URx, x)
	r.URy = max(r.URy, y)
}

// orderOf returns -1, 0 or 1 depending on whether x1 is left of, equal to
// or right of x2.
func orderOf(x1, x2 float64) int {
	switch {
	case x1 < x2:
		return -1
	case x1 > x2:
		return 1
	}
	return 0
}

// FairlyClose reports whether v1 and v2 agree to a relative precision of
// 1e-10.
func FairlyClose(v1, v2 float64) bool {
	return math.Abs(v1-v2) < max(math.Abs(v1), math.Abs(v2))*1e-10
}

// RefineTforY improves an estimate t0 with YforT(t0) < y0 by bisection
// on [t0, 1].  The result t satisfies YforT(t) >= y0.
func RefineTforY(c Curve, t0, y0 float64) float64 {
	t1 := 1.0
	for {
		th := (t0 + t1) / 2
		if th == t0 || th == t1 {
			return t1
		}
		y := c.YforT(th)
		switch {
		case y < y0:
			t0 = th
		case y > y0:
			t1 = th
		default:
			return t1
		}
	}
}

func directionString(d Direction) string {
	if d == Increasing {
		return "+"
	}
	return "-"
}

func curveString(name string, d Direction, pts ...float64) string {
	return fmt.Sprintf("%s[%s]%v", name, directionString(d), pts)
}
