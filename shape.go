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

// Package shape implements 2D shapes and the crossing-number algorithms
// used to answer containment and intersection queries on them.
//
// Coordinates are float32 at the API boundary.  Every shape describes its
// outline through a [pathiter.Iterator]; the crossing functions
// [PointCrossingsForPath] and [RectCrossingsForPath] work on any such
// iterator.  Region queries on decomposed monotonic curves are answered by
// [CurveSet], which uses the double precision kernel in package curve.
//
// Shapes are not safe for concurrent mutation.  Iterators returned by
// PathIterator work on a snapshot of the shape, with the exception of
// [Line2D], whose iterator reads the live segment.
package shape

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/internal/logger"
	"seehuhn.de/go/shape/pathiter"
)

// ErrMissingMoveTo is the panic value used when a path does not start
// with a MoveTo segment.
var ErrMissingMoveTo = errors.New("shape: missing initial moveto in path definition")

// ErrNoCurrentPoint is the panic value used when the current point of an
// empty path is requested.
var ErrNoCurrentPoint = errors.New("shape: no current point in empty path")

// Shape is a closed 2D region described by its outline.
type Shape interface {
	// Bounds returns a rectangle enclosing the shape.  For curved shapes
	// the rectangle may enclose the control points rather than only the
	// curve.
	Bounds() bounds.RectBounds

	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float32) bool

	// ContainsRect reports whether the rectangle with corner (x, y),
	// width w and height h lies entirely inside the shape.  Rectangles
	// with w <= 0 or h <= 0 are never contained.
	ContainsRect(x, y, w, h float32) bool

	// Intersects reports whether the interior of the shape and the
	// rectangle have a point in common.  The answer may be conservative
	// for some shapes.
	Intersects(x, y, w, h float32) bool

	// PathIterator returns an iterator over the outline, with all
	// coordinates mapped through tx.  A nil tx means the identity.
	PathIterator(tx *matrix.Matrix) pathiter.Iterator

	// FlatPathIterator is like PathIterator, but curves are replaced by
	// line segments which deviate from the curve by at most flatness.
	FlatPathIterator(tx *matrix.Matrix, flatness float64) pathiter.Iterator
}

// IntersectsBounds reports whether s intersects the x/y extent of b.
func IntersectsBounds(s Shape, b bounds.Bounds) bool {
	return s.Intersects(b.MinX(), b.MinY(), b.Width(), b.Height())
}

// ContainsBounds reports whether s contains the x/y extent of b.
func ContainsBounds(s Shape, b bounds.Bounds) bool {
	return s.ContainsRect(b.MinX(), b.MinY(), b.Width(), b.Height())
}

// SetLogger installs the logger used by this module.  The default logger
// discards everything.  Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// flat wraps it in a flattening iterator.
func flat(it pathiter.Iterator, flatness float64) pathiter.Iterator {
	return pathiter.NewFlattening(it, flatness)
}

// finite reports whether neither x nor y is infinite or NaN.
func finite(x, y float32) bool {
	return x*0+y*0 == 0
}
