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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shape/pathiter"
)

// Order3 is a y-monotonic cubic Bézier curve.
//
// TforY keeps a small cache of recent results, so an Order3 must not be
// used by several goroutines at once.
type Order3 struct {
	x0, y0    float64
	cx0, cy0  float64
	cx1, cy1  float64
	x1, y1    float64
	xmin      float64
	xmax      float64
	direction Direction

	xc0, xc1, xc2, xc3 float64
	yc0, yc1, yc2, yc3 float64

	cache [3]struct{ y, t float64 }
}

// order3Insert splits the cubic curve at its y-extrema inside (0, 1) and
// appends the pieces in path order.
func order3Insert(curves []Curve, x0, y0, cx0, cy0, cx1, cy1, x1, y1 float64, dir Direction) []Curve {
	var params [2]float64
	n := cubicHorizontalParams(y0, cy0, cy1, y1, params[:])
	if n == 0 {
		return order3Add(curves, x0, y0, cx0, cy0, cx1, cy1, x1, y1, dir)
	}

	var tmp [20]float64
	tmp[0], tmp[1] = x0, y0
	tmp[2], tmp[3] = cx0, cy0
	tmp[4], tmp[5] = cx1, cy1
	tmp[6], tmp[7] = x1, y1

	t := params[0]
	if n > 1 && t > params[1] {
		params[0], params[1] = params[1], t
		t = params[0]
	}
	splitCubic(tmp[:], 0, t)
	if n > 1 {
		// the second parameter, relative to the remaining piece [t, 1]
		splitCubic(tmp[:], 6, (params[1]-t)/(1-t))
	}

	index, step := 0, 6
	if dir == Decreasing {
		index, step = n*6, -6
	}
	for range n + 1 {
		curves = order3Add(curves,
			tmp[index], tmp[index+1], tmp[index+2], tmp[index+3],
			tmp[index+4], tmp[index+5], tmp[index+6], tmp[index+7], dir)
		index += step
	}
	return curves
}

func order3Add(curves []Curve, x0, y0, cx0, cy0, cx1, cy1, x1, y1 float64, dir Direction) []Curve {
	switch {
	case y0 > y1:
		curves = append(curves, newOrder3(x1, y1, cx1, cy1, cx0, cy0, x0, y0, -dir))
	case y1 > y0:
		curves = append(curves, newOrder3(x0, y0, cx0, cy0, cx1, cy1, x1, y1, dir))
	}
	return curves
}

// cubicHorizontalParams stores the parameters in (0, 1) where the cubic
// with Bézier coefficients c0, cp0, cp1, c1 has a horizontal tangent in
// ret, and returns their number.  The parameters are not sorted.
func cubicHorizontalParams(c0, cp0, cp1, c1 float64, ret []float64) int {
	if c0 <= cp0 && cp0 <= cp1 && cp1 <= c1 {
		return 0
	}
	c1 -= cp1
	cp1 -= cp0
	cp0 -= c0
	eqn := [3]float64{cp0, (cp1 - cp0) * 2, c1 - cp1 - cp1 + cp0}
	var roots [2]float64
	n := SolveQuadratic(eqn, roots[:])
	j := 0
	for i := 0; i < n; i++ {
		t := roots[i]
		if t > 0 && t < 1 {
			ret[j] = t
			j++
		}
	}
	return j
}

// splitCubic splits the cubic curve stored at coords[pos:pos+8] at t.
// The two halves are written to coords[pos:pos+8] and coords[pos+6:pos+14].
func splitCubic(coords []float64, pos int, t float64) {
	x1 := coords[pos+6]
	y1 := coords[pos+7]
	coords[pos+12] = x1
	coords[pos+13] = y1

	cx1 := coords[pos+4]
	cy1 := coords[pos+5]
	x1 = cx1 + (x1-cx1)*t
	y1 = cy1 + (y1-cy1)*t
	x0 := coords[pos+0]
	y0 := coords[pos+1]
	cx0 := coords[pos+2]
	cy0 := coords[pos+3]
	x0 = x0 + (cx0-x0)*t
	y0 = y0 + (cy0-y0)*t
	cx0 = cx0 + (cx1-cx0)*t
	cy0 = cy0 + (cy1-cy0)*t
	cx1 = cx0 + (x1-cx0)*t
	cy1 = cy0 + (y1-cy0)*t
	cx0 = x0 + (cx0-x0)*t
	cy0 = y0 + (cy0-y0)*t

	coords[pos+2] = x0
	coords[pos+3] = y0
	coords[pos+4] = cx0
	coords[pos+5] = cy0
	coords[pos+6] = cx0 + (cx1-cx0)*t
	coords[pos+7] = cy0 + (cy1-cy0)*t
	coords[pos+8] = cx1
	coords[pos+9] = cy1
	coords[pos+10] = x1
	coords[pos+11] = y1
}

func newOrder3(x0, y0, cx0, cy0, cx1, cy1, x1, y1 float64, dir Direction) *Order3 {
	cy0 = max(cy0, y0)
	cy1 = min(cy1, y1)
	c := &Order3{
		x0: x0, y0: y0,
		cx0: cx0, cy0: cy0,
		cx1: cx1, cy1: cy1,
		x1: x1, y1: y1,
		xmin:      min(x0, x1, cx0, cx1),
		xmax:      max(x0, x1, cx0, cx1),
		direction: dir,

		xc0: x0,
		xc1: (cx0 - x0) * 3,
		xc2: (cx1 - cx0 - cx0 + x0) * 3,
		xc3: x1 - (cx1-cx0)*3 - x0,
		yc0: y0,
		yc1: (cy0 - y0) * 3,
		yc2: (cy1 - cy0 - cy0 + y0) * 3,
		yc3: y1 - (cy1-cy0)*3 - y0,
	}
	for i := range c.cache {
		c.cache[i].y = y0
	}
	return c
}

func (c *Order3) String() string {
	return curveString("Order3", c.direction,
		c.x0, c.y0, c.cx0, c.cy0, c.cx1, c.cy1, c.x1, c.y1)
}

func (c *Order3) Order() int           { return 3 }
func (c *Order3) Direction() Direction { return c.direction }

func (c *Order3) XTop() float64 { return c.x0 }
func (c *Order3) YTop() float64 { return c.y0 }
func (c *Order3) XBot() float64 { return c.x1 }
func (c *Order3) YBot() float64 { return c.y1 }
func (c *Order3) XMin() float64 { return c.xmin }
func (c *Order3) XMax() float64 { return c.xmax }

func (c *Order3) X0() float64 {
	if c.direction == Increasing {
		return c.x0
	}
	return c.x1
}

func (c *Order3) Y0() float64 {
	if c.direction == Increasing {
		return c.y0
	}
	return c.y1
}

func (c *Order3) X1() float64 {
	if c.direction == Decreasing {
		return c.x0
	}
	return c.x1
}

func (c *Order3) Y1() float64 {
	if c.direction == Decreasing {
		return c.y0
	}
	return c.y1
}

// CX0, CY0 is the first and CX1, CY1 the second control point, in the
// order of increasing y.
func (c *Order3) CX0() float64 { return c.cx0 }
func (c *Order3) CY0() float64 { return c.cy0 }
func (c *Order3) CX1() float64 { return c.cx1 }
func (c *Order3) CY1() float64 { return c.cy1 }

func (c *Order3) XforY(y float64) float64 {
	if y <= c.y0 {
		return c.x0
	}
	if y >= c.y1 {
		return c.x1
	}
	return c.XforT(c.TforY(y))
}

// TforY solves y(t) = y.  The cubic is solved in closed form (with the
// trigonometric method if there are three real roots), each candidate is
// polished by refine, and bisection is used if no candidate lies in [0, 1].
func (c *Order3) TforY(y float64) float64 {
	if y <= c.y0 {
		return 0
	}
	if y >= c.y1 {
		return 1
	}
	for _, e := range c.cache {
		if e.y == y {
			return e.t
		}
	}
	if c.yc3 == 0 {
		return quadTforY(y, c.yc0, c.yc1, c.yc2)
	}

	a := c.yc2 / c.yc3
	b := c.yc1 / c.yc3
	q := (a*a - 3*b) / 9
	r := (2*a*a*a - 9*a*b + 27*(c.yc0-y)/c.yc3) / 54
	r2 := r * r
	q3 := q * q * q
	a3 := a / 3

	var t float64
	if r2 < q3 {
		theta := math.Acos(r / math.Sqrt(q3))
		q = -2 * math.Sqrt(q)
		t = c.refine(y, q*math.Cos(theta/3)-a3)
		if t < 0 {
			t = c.refine(y, q*math.Cos((theta+2*math.Pi)/3)-a3)
		}
		if t < 0 {
			t = c.refine(y, q*math.Cos((theta-2*math.Pi)/3)-a3)
		}
	} else {
		neg := r < 0
		s := math.Sqrt(r2 - q3)
		if neg {
			r = -r
		}
		aa := math.Pow(r+s, 1.0/3)
		if !neg {
			aa = -aa
		}
		bb := 0.0
		if aa != 0 {
			bb = q / aa
		}
		t = c.refine(y, (aa+bb)-a3)
	}

	if t < 0 {
		t0, t1 := 0.0, 1.0
		for {
			t = (t0 + t1) / 2
			if t == t0 || t == t1 {
				break
			}
			yt := c.YforT(t)
			if yt < y {
				t0 = t
			} else if yt > y {
				t1 = t
			} else {
				break
			}
		}
	}
	if t >= 0 {
		c.cache[2] = c.cache[1]
		c.cache[1] = c.cache[0]
		c.cache[0].y = y
		c.cache[0].t = t
	}
	return t
}

// refine polishes the root estimate t of y(t) = target with Newton steps,
// falling back to bisection once a step leaves the bracket.  It returns -1
// if the estimate is too far outside [0, 1].
func (c *Order3) refine(target, t float64) float64 {
	if t < -0.1 || t > 1.1 {
		return -1
	}
	y := c.YforT(t)
	var t0, t1 float64
	if y < target {
		t0, t1 = t, 1
	} else {
		t0, t1 = 0, t
	}

	useSlope := true
	for y != target {
		if useSlope {
			slope := c.DYforT(t, 1)
			if slope == 0 {
				useSlope = false
				continue
			}
			t2 := t + (target-y)/slope
			if t2 == t || t2 <= t0 || t2 >= t1 {
				useSlope = false
				continue
			}
			t = t2
		} else {
			t2 := (t0 + t1) / 2
			if t2 == t0 || t2 == t1 {
				break
			}
			t = t2
		}
		y = c.YforT(t)
		if y < target {
			t0 = t
		} else if y > target {
			t1 = t
		} else {
			break
		}
	}
	if t > 1 {
		return -1
	}
	return t
}

func (c *Order3) XforT(t float64) float64 {
	return ((c.xc3*t+c.xc2)*t+c.xc1)*t + c.xc0
}

func (c *Order3) YforT(t float64) float64 {
	return ((c.yc3*t+c.yc2)*t+c.yc1)*t + c.yc0
}

func (c *Order3) DXforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return ((c.xc3*t+c.xc2)*t+c.xc1)*t + c.xc0
	case 1:
		return (3*c.xc3*t+2*c.xc2)*t + c.xc1
	case 2:
		return 6*c.xc3*t + 2*c.xc2
	case 3:
		return 6 * c.xc3
	}
	return 0
}

func (c *Order3) DYforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return ((c.yc3*t+c.yc2)*t+c.yc1)*t + c.yc0
	case 1:
		return (3*c.yc3*t+2*c.yc2)*t + c.yc1
	case 2:
		return 6*c.yc3*t + 2*c.yc2
	case 3:
		return 6 * c.yc3
	}
	return 0
}

func (c *Order3) NextVertical(t0, t1 float64) float64 {
	eqn := [3]float64{c.xc1, 2 * c.xc2, 3 * c.xc3}
	var roots [2]float64
	n := SolveQuadratic(eqn, roots[:])
	for i := 0; i < n; i++ {
		if roots[i] > t0 && roots[i] < t1 {
			t1 = roots[i]
		}
	}
	return t1
}

func (c *Order3) Enlarge(r *rect.Rect) {
	enlarge(r, c.x0, c.y0)
	eqn := [3]float64{c.xc1, 2 * c.xc2, 3 * c.xc3}
	var roots [2]float64
	n := SolveQuadratic(eqn, roots[:])
	for i := 0; i < n; i++ {
		t := roots[i]
		if t > 0 && t < 1 {
			enlarge(r, c.XforT(t), c.YforT(t))
		}
	}
	enlarge(r, c.x1, c.y1)
}

func (c *Order3) SubCurve(ystart, yend float64, dir Direction) Curve {
	if ystart <= c.y0 && yend >= c.y1 {
		return WithDirection(c, dir)
	}
	t0 := c.TforY(ystart)
	t1 := c.TforY(yend)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var eqn [14]float64
	eqn[0], eqn[1] = c.x0, c.y0
	eqn[2], eqn[3] = c.cx0, c.cy0
	eqn[4], eqn[5] = c.cx1, c.cy1
	eqn[6], eqn[7] = c.x1, c.y1
	if t1 < 1 {
		splitCubic(eqn[:], 0, t1)
	}
	i := 0
	if t0 > 0 {
		splitCubic(eqn[:], 0, t0/t1)
		i = 6
	}
	return newOrder3(eqn[i], ystart,
		eqn[i+2], eqn[i+3], eqn[i+4], eqn[i+5],
		eqn[i+6], yend, dir)
}

func (c *Order3) Reversed() Curve {
	return newOrder3(c.x0, c.y0, c.cx0, c.cy0, c.cx1, c.cy1, c.x1, c.y1, -c.direction)
}

func (c *Order3) Segment(coords []float64) pathiter.SegmentType {
	if c.direction == Increasing {
		coords[0], coords[1] = c.cx0, c.cy0
		coords[2], coords[3] = c.cx1, c.cy1
		coords[4], coords[5] = c.x1, c.y1
	} else {
		coords[0], coords[1] = c.cx1, c.cy1
		coords[2], coords[3] = c.cx0, c.cy0
		coords[4], coords[5] = c.x0, c.y0
	}
	return pathiter.CubicTo
}
