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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/pathiter"
)

// CtrlVal is the relative distance of the control points from the end
// points when a quarter circle is approximated by a cubic Bézier curve.
const CtrlVal = 0.5522847498307933

const (
	pcv = 0.5 + CtrlVal*0.5
	ncv = 0.5 - CtrlVal*0.5
)

// ellipseCtrl gives the three points of each of the four cubic quadrants,
// relative to the unit square.  The outline starts at (1, 0.5).
var ellipseCtrl = [4][6]float64{
	{1, pcv, pcv, 1, 0.5, 1},
	{ncv, 1, 0, pcv, 0, 0.5},
	{0, ncv, ncv, 0, 0.5, 0},
	{pcv, 0, 1, ncv, 1, 0.5},
}

// Ellipse2D is the ellipse inscribed in the rectangle with corner (X, Y),
// width W and height H.
type Ellipse2D struct {
	X, Y, W, H float32
}

// Bounds implements the [Shape] interface.
func (e *Ellipse2D) Bounds() bounds.RectBounds {
	return bounds.NewRect(e.X, e.Y, e.X+e.W, e.Y+e.H)
}

// Contains implements the [Shape] interface.  Points on the boundary are
// outside.
func (e *Ellipse2D) Contains(x, y float32) bool {
	if e.W <= 0 || e.H <= 0 {
		return false
	}
	nx := (x-e.X)/e.W - 0.5
	ny := (y-e.Y)/e.H - 0.5
	return nx*nx+ny*ny < 0.25
}

// ContainsRect implements the [Shape] interface.  An ellipse is convex,
// so it is enough to test the corners.
func (e *Ellipse2D) ContainsRect(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return e.Contains(x, y) && e.Contains(x+w, y) &&
		e.Contains(x, y+h) && e.Contains(x+w, y+h)
}

// Intersects implements the [Shape] interface.  The answer is exact:
// the point of the rectangle nearest to the centre is tested, after
// normalising the ellipse to a circle.
func (e *Ellipse2D) Intersects(x, y, w, h float32) bool {
	if w <= 0 || h <= 0 || e.W <= 0 || e.H <= 0 {
		return false
	}
	nx0 := (x-e.X)/e.W - 0.5
	nx1 := nx0 + w/e.W
	ny0 := (y-e.Y)/e.H - 0.5
	ny1 := ny0 + h/e.H
	nearx := nearestToZero(nx0, nx1)
	neary := nearestToZero(ny0, ny1)
	return nearx*nearx+neary*neary < 0.25
}

// nearestToZero returns the point of [lo, hi] closest to 0.
func nearestToZero(lo, hi float32) float32 {
	switch {
	case lo > 0:
		return lo
	case hi < 0:
		return hi
	}
	return 0
}

// Data returns the outline of e as four cubic Bézier curves.  An ellipse
// with negative width or height has an empty outline.
func (e *Ellipse2D) Data() *path.Data {
	p := &path.Data{}
	if e.W < 0 || e.H < 0 {
		return p
	}
	x, y := float64(e.X), float64(e.Y)
	w, h := float64(e.W), float64(e.H)
	pt := func(u, v float64) vec.Vec2 {
		return vec.Vec2{X: x + u*w, Y: y + v*h}
	}
	p = p.MoveTo(pt(1, 0.5))
	for _, c := range ellipseCtrl {
		p = p.CubeTo(pt(c[0], c[1]), pt(c[2], c[3]), pt(c[4], c[5]))
	}
	return p.Close()
}

// PathIterator implements the [Shape] interface.
func (e *Ellipse2D) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	return pathiter.NewDataIterator(e.Data(), pathiter.NonZero, tx)
}

// FlatPathIterator implements the [Shape] interface.
func (e *Ellipse2D) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return flat(e.PathIterator(tx), flatness)
}
