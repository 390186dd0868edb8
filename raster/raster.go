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

// Package raster converts the outline of a shape into anti-aliased pixel
// coverage values.
//
// The rasteriser reads its input through a [pathiter.Iterator], so every
// shape of this module can be drawn, and uses the winding rule reported by
// the iterator.  Coverage is computed exactly for the flattened outline:
// each pixel receives the fraction of its area which lies inside.
package raster

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/internal/logger"
	"seehuhn.de/go/shape/pathiter"
)

// DefaultFlatness is the curve flattening tolerance used by
// [NewRasteriser], in device pixels.
const DefaultFlatness = 0.25

// horizontalEdgeThreshold is the smallest vertical extent of an edge which
// still contributes coverage.
const horizontalEdgeThreshold = 1e-10

// edge is a line segment in device coordinates, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64

	// dir is +1 if the path runs downwards along the edge, -1 otherwise
	dir float32
}

// Rasteriser converts paths into coverage values.
//
// Create one instance and reuse it for many paths.  Internal buffers grow
// as needed and are kept between calls.  A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip limits the output to this device rectangle.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.  It must be positive.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	splits []float64
}

// NewRasteriser returns a rasteriser for the given clip rectangle, with
// the identity transformation and [DefaultFlatness].
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the defaults of [NewRasteriser] for the given clip
// rectangle.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillShape fills the outline of s.  See [Rasteriser.Fill].
func (r *Rasteriser) FillShape(s shape.Shape, emit func(y, xMin int, coverage []float32)) {
	r.Fill(s.PathIterator(nil), emit)
}

// Fill consumes it and fills the path using the iterator's winding rule.
// Open subpaths are closed implicitly.
//
// Coverage is delivered one row at a time: emit receives the row y, the
// x coordinate of the first value and the coverage values, in [0, 1], of
// consecutive pixels.  Rows without coverage are skipped.  The coverage
// slice is only valid during the call.
func (r *Rasteriser) Fill(it pathiter.Iterator, emit func(y, xMin int, coverage []float32)) {
	rule := it.WindingRule()
	xMin, xMax, yMin, yMax, ok := r.collectEdges(it)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}

		if rule == pathiter.NonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// collectEdges flattens the path in device space and stores its
// non-horizontal edges.  The returned pixel range covers all edges and is
// clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(it pathiter.Iterator) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	bbox := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}

	src := pathiter.NewFlattening(pathiter.Transformed(it, r.CTM), r.Flatness)
	var c [pathiter.MaxCoords]float32
	var start, cur vec.Vec2
	for ; !src.IsDone(); src.Next() {
		seg := src.CurrentSegment(c[:])
		switch seg {
		case pathiter.MoveTo:
			r.addEdge(cur, start, &bbox)
			start = vec.Vec2{X: float64(c[0]), Y: float64(c[1])}
			cur = start
		case pathiter.Close:
			r.addEdge(cur, start, &bbox)
			cur = start
		default:
			n := 2 * (seg.NumPoints() - 1)
			p := vec.Vec2{X: float64(c[n]), Y: float64(c[n+1])}
			r.addEdge(cur, p, &bbox)
			cur = p
		}
	}
	r.addEdge(cur, start, &bbox)

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) addEdge(p, q vec.Vec2, bbox *rect.Rect) {
	if !finite(p) || !finite(q) {
		logger.Get().Debug("raster: skipping edge with non-finite coordinates",
			"from", p, "to", q)
		return
	}
	if math.Abs(q.Y-p.Y) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1}
	if q.Y < p.Y {
		p, q = q, p
		e.dir = -1
	}
	e.x0, e.y0 = p.X, p.Y
	e.x1, e.y1 = q.X, q.Y
	e.dxdy = (q.X - p.X) / (q.Y - p.Y)
	r.edges = append(r.edges, e)

	bbox.LLx = min(bbox.LLx, p.X, q.X)
	bbox.URx = max(bbox.URx, p.X, q.X)
	bbox.LLy = min(bbox.LLy, p.Y)
	bbox.URy = max(bbox.URy, q.Y)
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X-p.X) && !math.IsNaN(p.Y-p.Y)
}

// Coverage model
//
// For every pixel of the current row two values are collected:
//
//	cover: the signed height of the edge pieces inside the pixel
//	area:  cover, weighted by the fraction of the pixel right of the piece
//
// The coverage of pixel i is then |sum(cover[:i]) + area[i]|, clamped to
// 1 for the non-zero rule or folded into [0, 1] for the even-odd rule.
// Pieces left of the output range act on the first pixel with full
// weight; pieces right of it have no effect.

// accumulate adds the part of e between the scan lines top and bot.
func (r *Rasteriser) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	y0 := max(top, e.y0)
	y1 := min(bot, e.y1)
	if y1 <= y0 {
		return
	}

	// Split the piece where it crosses pixel column boundaries inside
	// the output range.
	xa := e.x0 + e.dxdy*(y0-e.y0)
	xb := e.x0 + e.dxdy*(y1-e.y0)
	lo, hi := min(xa, xb), max(xa, xb)
	r.splits = append(r.splits[:0], y0, y1)
	if hi > lo {
		kStart := max(math.Floor(lo)+1, float64(xMin))
		kEnd := min(math.Ceil(hi)-1, float64(xMax))
		for k := kStart; k <= kEnd; k++ {
			y := e.y0 + (k-e.x0)/e.dxdy
			if y > y0 && y < y1 {
				r.splits = append(r.splits, y)
			}
		}
		slices.Sort(r.splits)
	}

	left, right := float64(xMin), float64(xMax)
	for i := 1; i < len(r.splits); i++ {
		a, b := r.splits[i-1], r.splits[i]
		if b <= a {
			continue
		}
		c := e.dir * float32(b-a)
		xm := e.x0 + e.dxdy*((a+b)/2-e.y0)
		switch {
		case xm < left:
			r.cover[0] += c
			r.area[0] += c
		case xm < right:
			pix := math.Floor(xm)
			idx := int(pix) - xMin
			r.cover[idx] += c
			r.area[idx] += c * float32(1-(xm-pix))
		}
	}
}

// integrateNonZero turns the accumulated values of a row into coverage,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		v := math32.Abs(acc + area[i])
		acc += c
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but folds the winding number
// into [0, 1].
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		v := math32.Mod(math32.Abs(acc+area[i]), 2)
		acc += c
		cover[i] = 1 - math32.Abs(1-v)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of this part.  The result is nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := slices.IndexFunc(coverage, isNonZero)
	if lo < 0 {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

func isNonZero(v float32) bool { return v != 0 }

// AlphaWriter returns an emit function for [Rasteriser.Fill] which stores
// the coverage in dst.  Pixels outside dst are ignored.
func AlphaWriter(dst *image.Alpha) func(y, xMin int, coverage []float32) {
	b := dst.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			dst.Pix[dst.PixOffset(x, y)] = uint8(c*255 + 0.5)
		}
	}
}
