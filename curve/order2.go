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

// Order2 is a y-monotonic quadratic Bézier curve.
type Order2 struct {
	x0, y0    float64
	cx0, cy0  float64
	x1, y1    float64
	xmin      float64
	xmax      float64
	direction Direction

	// polynomial coefficients, x(t) = xc0 + xc1·t + xc2·t²
	xc0, xc1, xc2 float64
	yc0, yc1, yc2 float64
}

// order2Insert splits the quadratic curve at its y-extremum, if there is
// one inside (0, 1), and appends the pieces.  The points are given in
// increasing y order of the end points, dir tells the path direction.
func order2Insert(curves []Curve, x0, y0, cx0, cy0, x1, y1 float64, dir Direction) []Curve {
	t, ok := quadHorizontalParam(y0, cy0, y1)
	if !ok {
		return order2Add(curves, x0, y0, cx0, cy0, x1, y1, dir)
	}

	var tmp [10]float64
	tmp[0], tmp[1] = x0, y0
	tmp[2], tmp[3] = cx0, cy0
	tmp[4], tmp[5] = x1, y1
	splitQuad(tmp[:], 0, t)

	// keep the pieces in path order
	i0 := 0
	if dir == Decreasing {
		i0 = 4
	}
	i1 := 4 - i0
	curves = order2Add(curves, tmp[i0], tmp[i0+1], tmp[i0+2], tmp[i0+3], tmp[i0+4], tmp[i0+5], dir)
	curves = order2Add(curves, tmp[i1], tmp[i1+1], tmp[i1+2], tmp[i1+3], tmp[i1+4], tmp[i1+5], dir)
	return curves
}

func order2Add(curves []Curve, x0, y0, cx0, cy0, x1, y1 float64, dir Direction) []Curve {
	switch {
	case y0 > y1:
		curves = append(curves, newOrder2(x1, y1, cx0, cy0, x0, y0, -dir))
	case y1 > y0:
		curves = append(curves, newOrder2(x0, y0, cx0, cy0, x1, y1, dir))
	}
	return curves
}

// quadHorizontalParam returns the parameter of the extremum of the
// quadratic polynomial with Bézier coefficients c0, cp, c1.  The second
// return value is false if the polynomial is monotonic on [0, 1].
func quadHorizontalParam(c0, cp, c1 float64) (float64, bool) {
	if c0 <= cp && cp <= c1 {
		return 0, false
	}
	c0 -= cp
	c1 -= cp
	denom := c0 + c1
	if denom == 0 {
		return 0, false
	}
	t := c0 / denom
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// splitQuad splits the quadratic curve stored at coords[pos:pos+6] at t.
// The two halves are written to coords[pos:pos+6] and coords[pos+4:pos+10].
func splitQuad(coords []float64, pos int, t float64) {
	x1 := coords[pos+4]
	y1 := coords[pos+5]
	coords[pos+8] = x1
	coords[pos+9] = y1

	cx := coords[pos+2]
	cy := coords[pos+3]
	x1 = cx + (x1-cx)*t
	y1 = cy + (y1-cy)*t
	x0 := coords[pos+0]
	y0 := coords[pos+1]
	x0 = x0 + (cx-x0)*t
	y0 = y0 + (cy-y0)*t
	cx = x0 + (x1-x0)*t
	cy = y0 + (y1-y0)*t

	coords[pos+2] = x0
	coords[pos+3] = y0
	coords[pos+4] = cx
	coords[pos+5] = cy
	coords[pos+6] = x1
	coords[pos+7] = y1
}

func newOrder2(x0, y0, cx0, cy0, x1, y1 float64, dir Direction) *Order2 {
	// rounding in the split can move the control point just outside
	// the y-range of the end points
	cy0 = min(max(cy0, y0), y1)
	return &Order2{
		x0: x0, y0: y0,
		cx0: cx0, cy0: cy0,
		x1: x1, y1: y1,
		xmin:      min(x0, x1, cx0),
		xmax:      max(x0, x1, cx0),
		direction: dir,

		xc0: x0,
		xc1: cx0 + cx0 - x0 - x0,
		xc2: x0 - cx0 - cx0 + x1,
		yc0: y0,
		yc1: cy0 + cy0 - y0 - y0,
		yc2: y0 - cy0 - cy0 + y1,
	}
}

func (c *Order2) String() string {
	return curveString("Order2", c.direction, c.x0, c.y0, c.cx0, c.cy0, c.x1, c.y1)
}

func (c *Order2) Order() int           { return 2 }
func (c *Order2) Direction() Direction { return c.direction }

func (c *Order2) XTop() float64 { return c.x0 }
func (c *Order2) YTop() float64 { return c.y0 }
func (c *Order2) XBot() float64 { return c.x1 }
func (c *Order2) YBot() float64 { return c.y1 }
func (c *Order2) XMin() float64 { return c.xmin }
func (c *Order2) XMax() float64 { return c.xmax }

func (c *Order2) X0() float64 {
	if c.direction == Increasing {
		return c.x0
	}
	return c.x1
}

func (c *Order2) Y0() float64 {
	if c.direction == Increasing {
		return c.y0
	}
	return c.y1
}

func (c *Order2) X1() float64 {
	if c.direction == Decreasing {
		return c.x0
	}
	return c.x1
}

func (c *Order2) Y1() float64 {
	if c.direction == Decreasing {
		return c.y0
	}
	return c.y1
}

// CX0 and CY0 give the control point.
func (c *Order2) CX0() float64 { return c.cx0 }
func (c *Order2) CY0() float64 { return c.cy0 }

func (c *Order2) XforY(y float64) float64 {
	if y <= c.y0 {
		return c.x0
	}
	if y >= c.y1 {
		return c.x1
	}
	return c.XforT(c.TforY(y))
}

func (c *Order2) TforY(y float64) float64 {
	if y <= c.y0 {
		return 0
	}
	if y >= c.y1 {
		return 1
	}
	return quadTforY(y, c.yc0, c.yc1, c.yc2)
}

// quadTforY solves c0 + c1·t + c2·t² = y for t in [0, 1].  If rounding
// pushes all roots out of the interval, the nearer end is returned.
func quadTforY(y, c0, c1, c2 float64) float64 {
	c0 -= y
	if c2 == 0 {
		root := -c0 / c1
		if root >= 0 && root <= 1 {
			return root
		}
	} else {
		d := c1*c1 - 4*c2*c0
		if d >= 0 {
			d = math.Sqrt(d)
			if c1 < 0 {
				d = -d
			}
			q := (c1 + d) / -2
			root := q / c2
			if root >= 0 && root <= 1 {
				return root
			}
			if q != 0 {
				root = c0 / q
				if root >= 0 && root <= 1 {
					return root
				}
			}
		}
	}
	y0 := c0
	y1 := c0 + c1 + c2
	if 0 < (y0+y1)/2 {
		return 0
	}
	return 1
}

func (c *Order2) XforT(t float64) float64 {
	return (c.xc2*t+c.xc1)*t + c.xc0
}

func (c *Order2) YforT(t float64) float64 {
	return (c.yc2*t+c.yc1)*t + c.yc0
}

func (c *Order2) DXforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return (c.xc2*t+c.xc1)*t + c.xc0
	case 1:
		return 2*c.xc2*t + c.xc1
	case 2:
		return 2 * c.xc2
	}
	return 0
}

func (c *Order2) DYforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return (c.yc2*t+c.yc1)*t + c.yc0
	case 1:
		return 2*c.yc2*t + c.yc1
	case 2:
		return 2 * c.yc2
	}
	return 0
}

func (c *Order2) NextVertical(t0, t1 float64) float64 {
	t := -c.xc1 / (2 * c.xc2)
	if t > t0 && t < t1 {
		return t
	}
	return t1
}

func (c *Order2) Enlarge(r *rect.Rect) {
	enlarge(r, c.x0, c.y0)
	t := -c.xc1 / (2 * c.xc2)
	if t > 0 && t < 1 {
		enlarge(r, c.XforT(t), c.YforT(t))
	}
	enlarge(r, c.x1, c.y1)
}

func (c *Order2) SubCurve(ystart, yend float64, dir Direction) Curve {
	var t0, t1 float64
	if ystart <= c.y0 {
		if yend >= c.y1 {
			return WithDirection(c, dir)
		}
		t0 = 0
	} else {
		t0 = quadTforY(ystart, c.yc0, c.yc1, c.yc2)
	}
	if yend >= c.y1 {
		t1 = 1
	} else {
		t1 = quadTforY(yend, c.yc0, c.yc1, c.yc2)
	}

	var eqn [10]float64
	eqn[0], eqn[1] = c.x0, c.y0
	eqn[2], eqn[3] = c.cx0, c.cy0
	eqn[4], eqn[5] = c.x1, c.y1
	if t1 < 1 {
		splitQuad(eqn[:], 0, t1)
	}
	i := 0
	if t0 > 0 {
		splitQuad(eqn[:], 0, t0/t1)
		i = 4
	}
	return newOrder2(eqn[i], ystart, eqn[i+2], eqn[i+3], eqn[i+4], yend, dir)
}

func (c *Order2) Reversed() Curve {
	return newOrder2(c.x0, c.y0, c.cx0, c.cy0, c.x1, c.y1, -c.direction)
}

func (c *Order2) Segment(coords []float64) pathiter.SegmentType {
	coords[0] = c.cx0
	coords[1] = c.cy0
	if c.direction == Increasing {
		coords[2] = c.x1
		coords[3] = c.y1
	} else {
		coords[2] = c.x0
		coords[3] = c.y0
	}
	return pathiter.QuadTo
}
