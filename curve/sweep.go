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
	"cmp"
	"slices"
)

// Span is a horizontal band [Y0, Y1] in which the left-to-right order of
// the curves crossing the band does not change.
type Span struct {
	Y0, Y1 float64

	// Active lists the curves crossing the band, ordered from left to
	// right.
	Active []Curve

	// Classes[i] is zero if Active[i] is distinct from its neighbours.
	// Curves which coincide on the band share the same non-zero value.
	Classes []int
}

// Sweep moves a scan line down through the given curves and calls visit
// for every band between consecutive events.  Events are the tops and
// bottoms of curves and the points where two curves cross or start to
// coincide.  Order 0 curves are ignored.  The sweep stops early if visit
// returns false.
//
// Sweep panics with an *InternalError if the curve ordering fails to make
// progress in y.
func Sweep(curves []Curve, visit func(Span) bool) {
	edges := make([]Curve, 0, len(curves))
	for _, c := range curves {
		if c.Order() > 0 {
			edges = append(edges, c)
		}
	}
	slices.SortStableFunc(edges, func(a, b Curve) int {
		if r := cmp.Compare(a.YTop(), b.YTop()); r != 0 {
			return r
		}
		return cmp.Compare(a.XTop(), b.XTop())
	})
	classes := make([]int, len(edges))

	n := len(edges)
	var yrange [2]float64
	left, right := 0, 0
	for left < n {
		y := yrange[0]

		// drop the curves which end above the scan line
		next := right - 1
		for cur := right - 1; cur >= left; cur-- {
			if edges[cur].YBot() > y {
				edges[next] = edges[cur]
				next--
			}
		}
		left = next + 1

		if left >= right {
			if right >= n {
				break
			}
			y = edges[right].YTop()
			yrange[0] = y
		}

		// add the curves which start on the scan line
		for right < n && edges[right].YTop() <= y {
			right++
		}

		yrange[1] = edges[left].YBot()
		if right < n {
			yrange[1] = min(yrange[1], edges[right].YTop())
		}

		// insertion sort of the active curves
		nextClass := 1
		for cur := left; cur < right; cur++ {
			e := edges[cur]
			eClass := 0
			pos := cur
			for ; pos > left; pos-- {
				prev := edges[pos-1]
				order := Compare(e, prev, &yrange)
				if yrange[1] <= yrange[0] {
					internalError("backstepping",
						"from", yrange[0], "to", yrange[1])
				}
				if order >= 0 {
					if order == 0 {
						if classes[pos-1] == 0 {
							classes[pos-1] = nextClass
							nextClass++
						}
						eClass = classes[pos-1]
					}
					break
				}
				edges[pos] = prev
				classes[pos] = classes[pos-1]
			}
			edges[pos] = e
			classes[pos] = eClass
		}

		span := Span{
			Y0:      yrange[0],
			Y1:      yrange[1],
			Active:  slices.Clone(edges[left:right]),
			Classes: slices.Clone(classes[left:right]),
		}
		if !visit(span) {
			return
		}
		yrange[0] = yrange[1]
	}
}
