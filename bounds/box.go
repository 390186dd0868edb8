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
)

// BoxBounds is a 3D axis-aligned bounding box.
type BoxBounds struct {
	minX, minY, minZ float32
	maxX, maxY, maxZ float32
}

// EmptyBox is the empty 3D bounds.
var EmptyBox = BoxBounds{inf, inf, inf, negInf, negInf, negInf}

// flatZ is the largest |z| which Is2D treats as zero.
const flatZ = 1e-5

// NewBox returns the 3D bounds with the given corners.  The result stays
// 3D even if the z-extent is zero; use New to get the 2D fast path.
func NewBox(minX, minY, minZ, maxX, maxY, maxZ float32) BoxBounds {
	return BoxBounds{minX, minY, minZ, maxX, maxY, maxZ}
}

func (b BoxBounds) String() string {
	if b.IsEmpty() {
		return "BoxBounds{empty}"
	}
	return fmt.Sprintf("BoxBounds{%g,%g,%g - %g,%g,%g}",
		b.minX, b.minY, b.minZ, b.maxX, b.maxY, b.maxZ)
}

func (BoxBounds) Kind() Kind { return KindBox }

// Is2D reports whether the z-extent of b is (almost) zero.
func (b BoxBounds) Is2D() bool {
	return math32.Abs(b.minZ) < flatZ && math32.Abs(b.maxZ) < flatZ
}

func (b BoxBounds) MinX() float32 { return b.minX }
func (b BoxBounds) MinY() float32 { return b.minY }
func (b BoxBounds) MinZ() float32 { return b.minZ }
func (b BoxBounds) MaxX() float32 { return b.maxX }
func (b BoxBounds) MaxY() float32 { return b.maxY }
func (b BoxBounds) MaxZ() float32 { return b.maxZ }

func (b BoxBounds) Width() float32  { return b.maxX - b.minX }
func (b BoxBounds) Height() float32 { return b.maxY - b.minY }
func (b BoxBounds) Depth() float32  { return b.maxZ - b.minZ }

func (b BoxBounds) IsEmpty() bool {
	return !(b.maxX >= b.minX && b.maxY >= b.minY && b.maxZ >= b.minZ)
}

func (b BoxBounds) Copy() Bounds { return b }

// Rect returns the x and y extent of b.
func (b BoxBounds) Rect() RectBounds {
	if b.IsEmpty() {
		return EmptyRect
	}
	return RectBounds{b.minX, b.minY, b.maxX, b.maxY}
}

func (b BoxBounds) DeriveWithUnion(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return boxOf(other)
	}
	return BoxBounds{
		minX: min(b.minX, other.MinX()),
		minY: min(b.minY, other.MinY()),
		minZ: min(b.minZ, other.MinZ()),
		maxX: max(b.maxX, other.MaxX()),
		maxY: max(b.maxY, other.MaxY()),
		maxZ: max(b.maxZ, other.MaxZ()),
	}
}

func (b BoxBounds) DeriveWithPadding(h, v, d float32) Bounds {
	return BoxBounds{
		b.minX - h, b.minY - v, b.minZ - d,
		b.maxX + h, b.maxY + v, b.maxZ + d,
	}
}

func (b BoxBounds) DeriveWithNewBounds(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	return BoxBounds{minX, minY, minZ, maxX, maxY, maxZ}
}

func (b BoxBounds) DeriveWithNewBoundsOf(other Bounds) Bounds {
	if other.IsEmpty() {
		return EmptyBox
	}
	return boxOf(other)
}

func (b BoxBounds) DeriveWithNewBoundsAndSort(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	return BoxBounds{
		min(minX, maxX), min(minY, maxY), min(minZ, maxZ),
		max(minX, maxX), max(minY, maxY), max(minZ, maxZ),
	}
}

func (b BoxBounds) IntersectWith(other Bounds) Bounds {
	if b.IsEmpty() {
		return b
	}
	if other.IsEmpty() {
		return EmptyBox
	}
	return BoxBounds{
		minX: max(b.minX, other.MinX()),
		minY: max(b.minY, other.MinY()),
		minZ: max(b.minZ, other.MinZ()),
		maxX: min(b.maxX, other.MaxX()),
		maxY: min(b.maxY, other.MaxY()),
		maxZ: min(b.maxZ, other.MaxZ()),
	}
}

func (b BoxBounds) Add(x, y, z float32) Bounds {
	return b.DeriveWithUnion(BoxBounds{x, y, z, x, y, z})
}

func (b BoxBounds) RoundOut() Bounds {
	return BoxBounds{
		math32.Floor(b.minX), math32.Floor(b.minY), math32.Floor(b.minZ),
		math32.Ceil(b.maxX), math32.Ceil(b.maxY), math32.Ceil(b.maxZ),
	}
}

func (BoxBounds) MakeEmpty() Bounds { return EmptyBox }

func (b BoxBounds) Contains(x, y float32) bool {
	if b.IsEmpty() {
		return false
	}
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// Contains3 reports whether the point (x, y, z) lies in b.
func (b BoxBounds) Contains3(x, y, z float32) bool {
	if b.IsEmpty() {
		return false
	}
	return b.Contains(x, y) && z >= b.minZ && z <= b.maxZ
}

func (b BoxBounds) ContainsRect(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return false
	}
	if !b.Contains(x, y) {
		return false
	}
	// x+w may round past maxX even when x = minX and w = maxX-minX
	return w <= b.maxX-x && h <= b.maxY-y && x+w >= b.minX && y+h >= b.minY
}

func (b BoxBounds) Intersects(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return false
	}
	return x <= b.maxX && x+w >= b.minX && y <= b.maxY && y+h >= b.minY
}

func (b BoxBounds) Disjoint(x, y, w, h float32) bool {
	if b.IsEmpty() {
		return true
	}
	return x > b.maxX || x+w < b.minX || y > b.maxY || y+h < b.minY
}

func boxOf(o Bounds) BoxBounds {
	return BoxBounds{o.MinX(), o.MinY(), o.MinZ(), o.MaxX(), o.MaxY(), o.MaxZ()}
}
