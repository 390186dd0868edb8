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

// Order0 is a single point, the start of a subpath.  It never contributes
// crossings, but a point strictly inside a crossing window counts as a
// direct hit.
type Order0 struct {
	x, y float64
}

func newOrder0(x, y float64) *Order0 {
	return &Order0{x: x, y: y}
}

func (c *Order0) String() string {
	return curveString("Order0", Increasing, c.x, c.y)
}

func (c *Order0) Order() int           { return 0 }
func (c *Order0) Direction() Direction { return Increasing }

func (c *Order0) XTop() float64 { return c.x }
func (c *Order0) YTop() float64 { return c.y }
func (c *Order0) XBot() float64 { return c.x }
func (c *Order0) YBot() float64 { return c.y }
func (c *Order0) XMin() float64 { return c.x }
func (c *Order0) XMax() float64 { return c.x }
func (c *Order0) X0() float64   { return c.x }
func (c *Order0) Y0() float64   { return c.y }
func (c *Order0) X1() float64   { return c.x }
func (c *Order0) Y1() float64   { return c.y }

func (c *Order0) XforY(float64) float64              { return c.x }
func (c *Order0) TforY(float64) float64              { return 0 }
func (c *Order0) XforT(float64) float64              { return c.x }
func (c *Order0) YforT(float64) float64              { return c.y }
func (c *Order0) DXforT(float64, int) float64        { return 0 }
func (c *Order0) DYforT(float64, int) float64        { return 0 }
func (c *Order0) NextVertical(_, t1 float64) float64 { return t1 }

func (c *Order0) Enlarge(r *rect.Rect) {
	enlarge(r, c.x, c.y)
}

func (c *Order0) SubCurve(float64, float64, Direction) Curve { return c }
func (c *Order0) Reversed() Curve                              { return c }

func (c *Order0) Segment(coords []float64) pathiter.SegmentType {
	coords[0] = c.x
	coords[1] = c.y
	return pathiter.MoveTo
}

func (c *Order0) accumulateCrossings(cr *Crossings) bool {
	return c.x > cr.xlo && c.x < cr.xhi && c.y > cr.ylo && c.y < cr.yhi
}
