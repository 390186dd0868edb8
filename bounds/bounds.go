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

// Package bounds implements axis-aligned bounding boxes in two and three
// dimensions.
//
// Both variants are small immutable value types.  Every operation which
// changes a bounds value returns the changed value and leaves the receiver
// untouched, so a caller never has to wonder whether a result aliases its
// input.  Operations which need a third dimension promote a [RectBounds]
// to a [BoxBounds]; nothing ever demotes a [BoxBounds] except [New].
//
// A bounds value is empty if min > max on any axis.  Empty bounds are the
// identity for unions and absorb intersections.  None of the operations
// panic on empty or malformed input.
package bounds

import (
	"math"
)

// Kind identifies the concrete representation of a Bounds value.
type Kind int

// These are the supported bounds representations.
const (
	KindRect Kind = iota // 2D, see RectBounds
	KindBox              // 3D, see BoxBounds
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindBox:
		return "box"
	}
	return "unknown"
}

// Bounds is the common interface of RectBounds and BoxBounds.
type Bounds interface {
	Kind() Kind
	Is2D() bool

	MinX() float32
	MinY() float32
	MinZ() float32
	MaxX() float32
	MaxY() float32
	MaxZ() float32

	Width() float32
	Height() float32
	Depth() float32

	IsEmpty() bool

	// Copy returns an independent copy.  Since bounds are values this is
	// the identity, but the method keeps generic code explicit about
	// ownership.
	Copy() Bounds

	DeriveWithUnion(other Bounds) Bounds
	DeriveWithPadding(h, v, d float32) Bounds
	DeriveWithNewBounds(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds
	DeriveWithNewBoundsOf(other Bounds) Bounds
	DeriveWithNewBoundsAndSort(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds
	IntersectWith(other Bounds) Bounds
	Add(x, y, z float32) Bounds
	RoundOut() Bounds
	MakeEmpty() Bounds

	Contains(x, y float32) bool
	ContainsRect(x, y, w, h float32) bool
	Intersects(x, y, w, h float32) bool
	Disjoint(x, y, w, h float32) bool
}

var (
	inf    = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// New returns bounds with the given extent.  If the z-extent is exactly
// zero the result is a RectBounds, otherwise it is a BoxBounds.
func New(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	if minZ == 0 && maxZ == 0 {
		return NewRect(minX, minY, maxX, maxY)
	}
	return NewBox(minX, minY, minZ, maxX, maxY, maxZ)
}

// NewSorted is like New, but first orders each pair of coordinates so that
// min <= max.
func NewSorted(x0, y0, z0, x1, y1, z1 float32) Bounds {
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)
	z0, z1 = min(z0, z1), max(z0, z1)
	return New(x0, y0, z0, x1, y1, z1)
}

// Equal reports whether a and b describe the same extent.  Two empty
// bounds are always equal, independent of their representation.
func Equal(a, b Bounds) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.MinX() == b.MinX() && a.MinY() == b.MinY() && a.MinZ() == b.MinZ() &&
		a.MaxX() == b.MaxX() && a.MaxY() == b.MaxY() && a.MaxZ() == b.MaxZ()
}
