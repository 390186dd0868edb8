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

// Package pathiter defines the cursor protocol used to walk the outline of
// a shape segment by segment.
//
// An [Iterator] is lazy, forward-only and single-use.  The caller checks
// IsDone, reads the current segment with CurrentSegment and advances with
// Next.  The first segment of every well-formed path is a MoveTo.
//
// Coordinates are single precision.  If an iterator was created with a
// transformation matrix, every coordinate is transformed before it is
// handed to the caller.  A nil matrix means the identity.
package pathiter

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
)

// SegmentType identifies the kind of a path segment.
type SegmentType int

// These are the segment types.  The comment lists the number of points
// written to the coordinate slice by CurrentSegment.
const (
	MoveTo  SegmentType = iota // 1 point
	LineTo                     // 1 point
	QuadTo                     // 2 points: control, end
	CubicTo                    // 3 points: control 1, control 2, end
	Close                      // no points
)

// NumPoints returns the number of points which make up a segment of type s.
func (s SegmentType) NumPoints() int {
	switch s {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	default:
		return 0
	}
}

func (s SegmentType) String() string {
	switch s {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	}
	return "invalid"
}

// WindingRule selects how the interior of a path is determined.
type WindingRule int

const (
	// EvenOdd treats a point as inside if a ray from the point crosses the
	// outline an odd number of times.
	EvenOdd WindingRule = iota

	// NonZero treats a point as inside if the signed number of crossings
	// of a ray from the point is non-zero.
	NonZero
)

func (w WindingRule) String() string {
	if w == EvenOdd {
		return "EvenOdd"
	}
	return "NonZero"
}

// ErrExhausted is the panic value of CurrentSegment when called on an
// iterator which is done.
var ErrExhausted = errors.New("pathiter: iteration exhausted")

// MaxCoords is the minimum length of the slice passed to CurrentSegment.
const MaxCoords = 6

// Iterator is a cursor over the segments of a path.
type Iterator interface {
	// WindingRule returns the fill rule of the path.  It does not change
	// during iteration.
	WindingRule() WindingRule

	// IsDone reports whether all segments have been read.
	IsDone() bool

	// Next advances to the next segment.
	Next()

	// CurrentSegment copies the points of the current segment into coords,
	// which must have length at least MaxCoords, and returns the segment
	// type.  The iterator is not advanced.  CurrentSegment panics with
	// ErrExhausted if the iterator is done.
	CurrentSegment(coords []float32) SegmentType
}

// transform applies tx to the first n points stored in coords.
func transform(tx *matrix.Matrix, coords []float32, n int) {
	if tx == nil {
		return
	}
	for i := 0; i < 2*n; i += 2 {
		x := float64(coords[i])
		y := float64(coords[i+1])
		coords[i] = float32(tx[0]*x + tx[2]*y + tx[4])
		coords[i+1] = float32(tx[1]*x + tx[3]*y + tx[5])
	}
}
