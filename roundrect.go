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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/pathiter"
)

// Control value for a quarter circle, computed from the 45 degree
// construction.
var (
	rrCV  = roundRectCtrl()
	rrACV = (1 - rrCV) / 2
)

func roundRectCtrl() float64 {
	angle := math.Pi / 4
	a := 1 - math.Cos(angle)
	b := math.Tan(angle)
	c := math.Sqrt(1+b*b) - 1 + a
	return 4.0 / 3.0 * a * b / c
}

// roundRectSegs lists the outline, starting at the upper end of the left
// edge.  Every point is (x + p[0]·w + p[1]·aw, y + p[2]·h + p[3]·ah)
// where aw and ah are the full arc width and height.
var roundRectSegs = []struct {
	seg pathiter.SegmentType
	pts [][4]float64
}{
	{pathiter.MoveTo, [][4]float64{{0, 0, 0, 0.5}}},
	{pathiter.LineTo, [][4]float64{{0, 0, 1, -0.5}}},
	{pathiter.CubicTo, [][4]float64{{0, 0, 1, -rrACV}, {0, rrACV, 1, 0}, {0, 0.5, 1, 0}}},
	{pathiter.LineTo, [][4]float64{{1, -0.5, 1, 0}}},
	{pathiter.CubicTo, [][4]float64{{1, -rrACV, 1, 0}, {1, 0, 1, -rrACV}, {1, 0, 1, -0.5}}},
	{pathiter.LineTo, [][4]float64{{1, 0, 0, 0.5}}},
	{pathiter.CubicTo, [][4]float64{{1, 0, 0, rrACV}, {1, -rrACV, 0, 0}, {1, -0.5, 0, 0}}},
	{pathiter.LineTo, [][4]float64{{0, 0.5, 0, 0}}},
	{pathiter.CubicTo, [][4]float64{{0, rrACV, 0, 0}, {0, 0, 0, rrACV}, {0, 0, 0, 0.5}}},
	{pathiter.Close, nil},
}

// RoundRectangle2D is a rectangle with corner (X, Y), width W and height
// H whose corners are rounded by quarter ellipses of width ArcW and height
// ArcH.  Arc sizes larger than the rectangle are clamped.
type RoundRectangle2D struct {
	X, Y, W, H float32
	ArcW, ArcH float32
}

func (r *RoundRectangle2D) isEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// arcRadii returns half the clamped arc width and height.
func (r *RoundRectangle2D) arcRadii() (aw, ah float32) {
	aw = min(r.W, math32.Abs(r.ArcW)) / 2
	ah = min(r.H, math32.Abs(r.ArcH)) / 2
	return aw, ah
}

// Bounds implements the [Shape] interface.
func (r *RoundRectangle2D) Bounds() bounds.RectBounds {
	return bounds.NewRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Contains implements the [Shape] interface.  The rectangle is half open:
// the left and top edges belong to it, the right and bottom edges do not.
func (r *RoundRectangle2D) Contains(x, y float32) bool {
	if r.isEmpty() {
		return false
	}
	x0, y0 := r.X, r.Y
	x1, y1 := x0+r.W, y0+r.H
	if x < x0 || y < y0 || x >= x1 || y >= y1 {
		return false
	}
	aw, ah := r.arcRadii()

	// Find the centre of the corner arc nearest to (x, y).  Points in the
	// horizontal or vertical band between the arcs are inside.
	cx := x0 + aw
	if x >= cx {
		if x < x1-aw {
			return true
		}
		cx = x1 - aw
	}
	cy := y0 + ah
	if y >= cy {
		if y < y1-ah {
			return true
		}
		cy = y1 - ah
	}
	dx := (x - cx) / aw
	dy := (y - cy) / ah
	return dx*dx+dy*dy <= 1
}

// ContainsRect implements the [Shape] interface.
func (r *RoundRectangle2D) ContainsRect(x, y, w, h float32) bool {
	if r.isEmpty() || w <= 0 || h <= 0 {
		return false
	}
	return r.Contains(x, y) && r.Contains(x+w, y) &&
		r.Contains(x, y+h) && r.Contains(x+w, y+h)
}

// Intersects implements the [Shape] interface.
func (r *RoundRectangle2D) Intersects(x, y, w, h float32) bool {
	if r.isEmpty() || w <= 0 || h <= 0 {
		return false
	}
	x0, y0 := r.X, r.Y
	x1, y1 := x0+r.W, y0+r.H
	if x+w <= x0 || x >= x1 || y+h <= y0 || y >= y1 {
		return false
	}
	aw, ah := r.arcRadii()
	x0class := classify(x, x0, x1, aw)
	x1class := classify(x+w, x0, x1, aw)
	y0class := classify(y, y0, y1, ah)
	y1class := classify(y+h, y0, y1, ah)

	// a corner of the rectangle inside the straight part
	if x0class == 2 || x1class == 2 || y0class == 2 || y1class == 2 {
		return true
	}
	// an edge of the rectangle spanning the straight part
	if (x0class < 2 && x1class > 2) || (y0class < 2 && y1class > 2) {
		return true
	}

	// test the point of the rectangle nearest to the arc
	var dx, dy float32
	if x1class == 1 {
		dx = x + w - (x0 + aw)
	} else {
		dx = x - (x1 - aw)
	}
	if y1class == 1 {
		dy = y + h - (y0 + ah)
	} else {
		dy = y - (y1 - ah)
	}
	dx /= aw
	dy /= ah
	return dx*dx+dy*dy <= 1
}

// classify returns 0 left of the shape, 1 in the left arc, 2 in the
// straight part, 3 in the right arc and 4 right of the shape.
func classify(coord, left, right, arcSize float32) int {
	switch {
	case coord < left:
		return 0
	case coord < left+arcSize:
		return 1
	case coord < right-arcSize:
		return 2
	case coord < right:
		return 3
	}
	return 4
}

// Data returns the outline of r: four lines and four cubic corners.  A
// rectangle with negative width or height has an empty outline.
func (r *RoundRectangle2D) Data() *path.Data {
	p := &path.Data{}
	if r.W < 0 || r.H < 0 {
		return p
	}
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.W), float64(r.H)
	aw := min(w, math.Abs(float64(r.ArcW)))
	ah := min(h, math.Abs(float64(r.ArcH)))
	pt := func(c [4]float64) vec.Vec2 {
		return vec.Vec2{X: x + c[0]*w + c[1]*aw, Y: y + c[2]*h + c[3]*ah}
	}
	for _, s := range roundRectSegs {
		switch s.seg {
		case pathiter.MoveTo:
			p = p.MoveTo(pt(s.pts[0]))
		case pathiter.LineTo:
			p = p.LineTo(pt(s.pts[0]))
		case pathiter.CubicTo:
			p = p.CubeTo(pt(s.pts[0]), pt(s.pts[1]), pt(s.pts[2]))
		case pathiter.Close:
			p = p.Close()
		}
	}
	return p
}

// PathIterator implements the [Shape] interface.
func (r *RoundRectangle2D) PathIterator(tx *matrix.Matrix) pathiter.Iterator {
	return pathiter.NewDataIterator(r.Data(), pathiter.NonZero, tx)
}

// FlatPathIterator implements the [Shape] interface.
func (r *RoundRectangle2D) FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator {
	return flat(r.PathIterator(tx), flatness)
}
