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

package bounds

import (
	"fmt"

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/rect"
)

// RectBounds is a 2D axis-aligned bounding box.
// The zero value is the degenerate box containing only the origin.
type RectBounds struct {
	minX, minY float32
	maxX, maxY float32
}

// EmptyRect is the empty 2D bounds.
var EmptyRect = RectBounds{minX: inf, minY: inf, maxX: negInf, maxY: negInf}

// NewRect returns the 2D bounds with the given corners.
// No sorting is done: if min > max on an axis the result is empty.
func NewRect(minX, minY, maxX, maxY float32) RectBounds {
	return RectBounds{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

// NewRectSorted returns the smallest bounds containing both points.
func NewRectSorted(x0, y0, x1, y1 float32) RectBounds {
	return RectBounds{
		minX: min(x0, x1), minY: min(y0, y1),
		maxX: max(x0, x1), maxY: max(y0, y1),
	}
}

// FromRect converts a seehuhn.de/go/geom rectangle.
func FromRect(r rect.Rect) RectBounds {
	return NewRect(float32(r.LLx), float32(r.LLy), float32(r.URx), float32(r.URy))
}

// ToRect converts b to a seehuhn.de/go/geom rectangle.
func (b RectBounds) ToRect() rect.Rect {
	return rect.Rect{
		LLx: float64(b.minX), LLy: float64(b.minY),
		URx: float64(b.maxX), URy: float64(b.maxY),
	}
}

func (b RectBounds) String() string {
	if b.IsEmpty() {
		return "RectBounds{empty}"
	}
	return fmt.Sprintf("RectBounds{%g,%g - %g,%g}", b.minX, b.minY, b.maxX, b.maxY)
}

func (RectBounds) Kind() Kind { return KindRect }
func (RectBounds) Is2D() bool { return true }

func (b RectBounds) MinX() float32 { return b.minX }
func (b RectBounds) MinY() float32 { return b.minY }
func (b RectBounds) MinZ() float32 { return 0 }
func (b RectBounds) MaxX() float32 { return b.maxX }
func (b RectBounds) MaxY() float32 { return b.maxY }
func (b RectBounds) MaxZ() float32 { return 0 }

func (b RectBounds) Width() float32  { return b.maxX - b.minX }
func (b RectBounds) Height() float32 { return b.maxY - b.minY }
func (b RectBounds) Depth() float32  { return 0 }

// IsEmpty reports whether b contains no points.  Bounds with NaN
// coordinates are empty.
func (b RectBounds) IsEmpty() bool {
	return !(b.maxX >= b.minX && b.maxY >= b.minY)
}

func (b RectBounds) Copy() Bounds { return b }

// Union returns the smallest 2D bounds containing both b and o.
func (b RectBounds) Union(o RectBounds) RectBounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return RectBounds{
		minX: min(b.minX, o.minX), minY: min(b.minY, o.minY),
		maxX: max(b.maxX, o.maxX), maxY: max(b.maxY, o.maxY),
	}
}

// Intersect returns the intersection of b and o.
func (b RectBounds) Intersect(o RectBounds) RectBounds {
	if b.IsEmpty() {
		return b
	}
	if o.IsEmpty() {
		return EmptyRect
	}
	return RectBounds{
		minX: max(b.minX, o.minX), minY: max(b.minY, o.minY),
		maxX: min(b.maxX, o.maxX), maxY: min(b.maxY, o.maxY),
	}
}

// AddPoint returns the smallest bounds containing b and (x, y).
func (b RectBounds) AddPoint(x, y float32) RectBounds {
	return b.Union(RectBounds{x, y, x, y})
}

func (b RectBounds) DeriveWithUnion(other Bounds) Bounds {
	if o, ok := other.(RectBounds); ok {
		return b.Union(o)
	}
	if other.IsEmpty() {
		return b
	}
	return b.toBox().DeriveWithUnion(other)
}

// DeriveWithPadding grows b by h horizontally and v vertically on each
// side.  A non-zero d promotes the result to a BoxBounds of depth 2d.
func (b RectBounds) DeriveWithPadding(h, v, d float32) Bounds {
	if d == 0 {
		return RectBounds{b.minX - h, b.minY - v, b.maxX + h, b.maxY + v}
	}
	return b.toBox().DeriveWithPadding(h, v, d)
}

func (b RectBounds) DeriveWithNewBounds(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	return New(minX, minY, minZ, maxX, maxY, maxZ)
}

func (b RectBounds) DeriveWithNewBoundsOf(other Bounds) Bounds {
	if other.IsEmpty() {
		return b.MakeEmpty()
	}
	return New(other.MinX(), other.MinY(), other.MinZ(), other.MaxX(), other.MaxY(), other.MaxZ())
}

func (b RectBounds) DeriveWithNewBoundsAndSort(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	return NewSorted(minX, minY, minZ, maxX, maxY, maxZ)
}

// IntersectWith intersects b with the x and y extent of other.
func (b RectBounds) IntersectWith(other Bounds) Bounds {
	if b.IsEmpty() {
		return b
	}
	if other.IsEmpty() {
		return EmptyRect
	}
	return b.Intersect(RectBounds{other.MinX(), other.MinY(), other.MaxX(), other.MaxY()})
}

// Add includes the point (x, y, z).  A non-zero z promotes the result to
// a BoxBounds.
func (b RectBounds) Add(x, y, z float32) Bounds {
	if z == 0 {
		return b.AddPoint(x, y)
	}
	return b.toBox().Add(x, y, z)
}

// RoundOut expands b outwards to the nearest integer coordinates.
func (b RectBounds) RoundOut() Bounds {
	return RectBounds{
		minX: math32.Floor(b.minX), minY: math32.Floor(b.minY),
		maxX: math32.Ceil(b.maxX), maxY: math32.Ceil(b.maxY),
	}
}

func (RectBounds) MakeEmpty() Bounds { return EmptyRect }

// Contains reports whether (x, y) lies in the closed box b.
func (b RectBounds) Contains(x, y float32) bool {
	if b.IsEmpty() {
		return false
	}
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// ContainsRect reports whether the rectangle with corner (x, y), width w
// and height h lies in b.
func (b RectBounds) ContainsRect(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return false
	}
	if !b.Contains(x, y) {
		return false
	}
	// x+w may round past maxX even when x = minX and w = maxX-minX
	return w <= b.maxX-x && h <= b.maxY-y && x+w >= b.minX && y+h >= b.minY
}

// Intersects reports whether b and the given rectangle share a point.
// Touching edges count as an intersection.
func (b RectBounds) Intersects(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return false
	}
	return x <= b.maxX && x+w >= b.minX && y <= b.maxY && y+h >= b.minY
}

// Disjoint reports whether b and the given rectangle share no point.
func (b RectBounds) Disjoint(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return true
	}
	return x > b.maxX || x+w < b.minX || y > b.maxY || y+h < b.minY
}

func (b RectBounds) toBox() BoxBounds {
	if b.IsEmpty() {
		return EmptyBox
	}
	return BoxBounds{b.minX, b.minY, 0, b.maxX, b.maxY, 0}
}
