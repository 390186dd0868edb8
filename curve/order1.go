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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shape/pathiter"
)

// Order1 is a line segment with y0 < y1.
type Order1 struct {
	x0, y0    float64
	x1, y1    float64
	xmin      float64
	xmax      float64
	direction Direction
}

func newOrder1(x0, y0, x1, y1 float64, dir Direction) *Order1 {
	return &Order1{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		xmin:      min(x0, x1),
		xmax:      max(x0, x1),
		direction: dir,
	}
}

func (c *Order1) String() string {
	return curveString("Order1", c.direction, c.x0, c.y0, c.x1, c.y1)
}

func (c *Order1) Order() int           { return 1 }
func (c *Order1) Direction() Direction { return c.direction }

func (c *Order1) XTop() float64 { return c.x0 }
func (c *Order1) YTop() float64 { return c.y0 }
func (c *Order1) XBot() float64 { return c.x1 }
func (c *Order1) YBot() float64 { return c.y1 }
func (c *Order1) XMin() float64 { return c.xmin }
func (c *Order1) XMax() float64 { return c.xmax }

func (c *Order1) X0() float64 {
	if c.direction == Increasing {
		return c.x0
	}
	return c.x1
}

func (c *Order1) Y0() float64 {
	if c.direction == Increasing {
		return c.y0
	}
	return c.y1
}

func (c *Order1) X1() float64 {
	if c.direction == Decreasing {
		return c.x0
	}
	return c.x1
}

func (c *Order1) Y1() float64 {
	if c.direction == Decreasing {
		return c.y0
	}
	return c.y1
}

func (c *Order1) XforY(y float64) float64 {
	if c.x0 == c.x1 || y <= c.y0 {
		return c.x0
	}
	if y >= c.y1 {
		return c.x1
	}
	return c.x0 + (y-c.y0)*(c.x1-c.x0)/(c.y1-c.y0)
}

func (c *Order1) TforY(y float64) float64 {
	if y <= c.y0 {
		return 0
	}
	if y >= c.y1 {
		return 1
	}
	return (y - c.y0) / (c.y1 - c.y0)
}

func (c *Order1) XforT(t float64) float64 {
	return c.x0 + t*(c.x1-c.x0)
}

func (c *Order1) YforT(t float64) float64 {
	return c.y0 + t*(c.y1-c.y0)
}

func (c *Order1) DXforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return c.x0 + t*(c.x1-c.x0)
	case 1:
		return c.x1 - c.x0
	}
	return 0
}

func (c *Order1) DYforT(t float64, deriv int) float64 {
	switch deriv {
	case 0:
		return c.y0 + t*(c.y1-c.y0)
	case 1:
		return c.y1 - c.y0
	}
	return 0
}

func (c *Order1) NextVertical(_, t1 float64) float64 {
	return t1
}

func (c *Order1) Enlarge(r *rect.Rect) {
	enlarge(r, c.x0, c.y0)
	enlarge(r, c.x1, c.y1)
}

func (c *Order1) SubCurve(ystart, yend float64, dir Direction) Curve {
	if ystart == c.y0 && yend == c.y1 {
		return WithDirection(c, dir)
	}
	if c.x0 == c.x1 {
		return newOrder1(c.x0, ystart, c.x1, yend, dir)
	}
	num := c.x0 - c.x1
	denom := c.y0 - c.y1
	xstart := c.x0 + (ystart-c.y0)*num/denom
	xend := c.x0 + (yend-c.y0)*num/denom
	return newOrder1(xstart, ystart, xend, yend, dir)
}

func (c *Order1) Reversed() Curve {
	return newOrder1(c.x0, c.y0, c.x1, c.y1, -c.direction)
}

func (c *Order1) Segment(coords []float64) pathiter.SegmentType {
	if c.direction == Increasing {
		coords[0] = c.x1
		coords[1] = c.y1
	} else {
		coords[0] = c.x0
		coords[1] = c.y0
	}
	return pathiter.LineTo
}

func (c *Order1) accumulateCrossings(cr *Crossings) bool {
	xlo, ylo := cr.xlo, cr.ylo
	xhi, yhi := cr.xhi, cr.yhi
	if c.xmin >= xhi {
		return false
	}

	var xstart, ystart, xend, yend float64
	if c.y0 < ylo {
		if c.y1 <= ylo {
			return false
		}
		ystart = ylo
		xstart = c.XforY(ylo)
	} else {
		if c.y0 >= yhi {
			return false
		}
		ystart = c.y0
		xstart = c.x0
	}
	if c.y1 > yhi {
		yend = yhi
		xend = c.XforY(yhi)
	} else {
		yend = c.y1
		xend = c.x1
	}

	if xstart >= xhi && xend >= xhi {
		return false
	}
	if xstart > xlo || xend > xlo {
		return true
	}
	cr.Record(ystart, yend, c.direction)
	return false
}

// compareLines orders two lines.  The intersection y of the two lines is
// computed in closed form: for dxA = x1A-x0A, dyA = y1A-y0A and likewise
// for B,
//
//	y = ((x0A-x0B)·dyA·dyB - y0A·dxA·dyB + y0B·dxB·dyA) / (dxB·dyA - dxA·dyB).
func (c *Order1) compareLines(o *Order1, yrange *[2]float64) int {
	if yrange[1] <= yrange[0] {
		internalError("yrange already inverted",
			"y0", yrange[0], "y1", yrange[1])
	}
	yrange[1] = min(yrange[1], c.y1, o.y1)
	if yrange[1] <= yrange[0] {
		internalError("backstepping",
			"from", yrange[0], "to", yrange[1], "this", c, "that", o)
	}
	if c.xmax <= o.xmin {
		if c.xmin == o.xmax {
			return 0
		}
		return -1
	}
	if c.xmin >= o.xmax {
		return 1
	}

	dxa := c.x1 - c.x0
	dya := c.y1 - c.y0
	dxb := o.x1 - o.x0
	dyb := o.y1 - o.y0
	denom := dxb*dya - dxa*dyb
	var y float64
	if denom != 0 {
		num := (c.x0-o.x0)*dya*dyb - c.y0*dxa*dyb + o.y0*dxb*dya
		y = num / denom
		if y <= yrange[0] {
			// the lines cross above the range, compare at the bottom
			y = min(c.y1, o.y1)
		} else {
			if y < yrange[1] {
				yrange[1] = y
			}
			y = max(c.y0, o.y0)
		}
	} else {
		// parallel lines; prefer an end point, where XforY is exact
		y = max(c.y0, o.y0)
	}
	return orderOf(c.XforY(y), o.XforY(y))
}
