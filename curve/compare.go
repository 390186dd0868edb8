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

import "math"

// TMin is the parameter width below which FindIntersect stops bisecting
// and intersects the chords of the two curve pieces.
const TMin = 1e-3

// Compare orders the curves a and b on the y-range yrange.  It returns -1
// if a is left of b, 1 if a is right of b and 0 if the curves coincide.
//
// On entry, yrange[0] is the current scan line and yrange[1] a candidate
// end of the range.  Compare lowers yrange[1] to the first y where the
// answer could change, for example to an intersection of the two curves.
// Compare panics with an *InternalError if yrange would become empty.
func Compare(a, b Curve, yrange *[2]float64) int {
	if la, ok := a.(*Order1); ok {
		if lb, ok := b.(*Order1); ok {
			return la.compareLines(lb, yrange)
		}
	}

	y0 := yrange[0]
	y1 := min(yrange[1], a.YBot(), b.YBot())
	if y1 <= yrange[0] {
		internalError("backstepping",
			"from", yrange[0], "to", y1, "a", a, "b", b)
	}
	yrange[1] = y1
	if a.XMax() <= b.XMin() {
		if a.XMin() == b.XMax() {
			return 0
		}
		return -1
	}
	if a.XMin() >= b.XMax() {
		return 1
	}

	// s parametrises a, t parametrises b
	s0 := a.TforY(y0)
	ys0 := a.YforT(s0)
	if ys0 < y0 {
		s0 = RefineTforY(a, s0, y0)
		ys0 = a.YforT(s0)
	}
	s1 := a.TforY(y1)
	if a.YforT(s1) < y0 {
		s1 = RefineTforY(a, s1, y0)
	}
	t0 := b.TforY(y0)
	yt0 := b.YforT(t0)
	if yt0 < y0 {
		t0 = RefineTforY(b, t0, y0)
		yt0 = b.YforT(t0)
	}
	t1 := b.TforY(y1)
	if b.YforT(t1) < y0 {
		t1 = RefineTforY(b, t1, y0)
	}
	xs0 := a.XforT(s0)
	xt0 := b.XforT(t0)

	scale := max(math.Abs(y0), math.Abs(y1))
	ymin := max(scale*1e-14, 1e-300)
	if FairlyClose(xs0, xt0) {
		// Find how far down the curves stay together, with exponentially
		// growing steps followed by a binary search for the exact end.
		bump := ymin
		maxBump := min(ymin*1e13, (y1-y0)*0.1)
		y := y0 + bump
		for y <= y1 {
			if FairlyClose(a.XforY(y), b.XforY(y)) {
				bump = min(bump*2, maxBump)
			} else {
				y -= bump
				for {
					bump /= 2
					newY := y + bump
					if newY <= y {
						break
					}
					if FairlyClose(a.XforY(newY), b.XforY(newY)) {
						y = newY
					}
				}
				break
			}
			next := y + bump
			if next <= y {
				break
			}
			y = next
		}
		if y > y0 {
			if y < y1 {
				yrange[1] = y
			}
			return 0
		}
	}

	for s0 < s1 && t0 < t1 {
		sh := a.NextVertical(s0, s1)
		xsh := a.XforT(sh)
		ysh := a.YforT(sh)
		th := b.NextVertical(t0, t1)
		xth := b.XforT(th)
		yth := b.YforT(th)

		found, err := findIntersectSafe(a, b, yrange,
			piece{s0, xs0, ys0, sh, xsh, ysh},
			piece{t0, xt0, yt0, th, xth, yth})
		if err != nil {
			return 0
		}
		if found {
			break
		}

		if ysh < yth {
			if ysh > yrange[0] {
				if ysh < yrange[1] {
					yrange[1] = ysh
				}
				break
			}
			s0, xs0, ys0 = sh, xsh, ysh
		} else {
			if yth > yrange[0] {
				if yth < yrange[1] {
					yrange[1] = yth
				}
				break
			}
			t0, xt0, yt0 = th, xth, yth
		}
	}
	ymid := (yrange[0] + yrange[1]) / 2
	return orderOf(a.XforY(ymid), b.XforY(ymid))
}

// piece is the part of a curve between the parameters t0 and t1, together
// with the end points.
type piece struct {
	t0, x0, y0 float64
	t1, x1, y1 float64
}

// FindIntersect searches for an intersection of a on [s0, s1] and b on
// [t0, t1] inside the y-range (yrange[0], yrange[1]].  If one is found,
// yrange[1] is lowered to its y-coordinate and true is returned.
//
// The search bisects both parameter ranges until they are narrower than
// TMin and then intersects the chords.  FindIntersect panics with an
// *InternalError if bisection stops making progress.
func FindIntersect(a, b Curve, yrange *[2]float64, s0, s1, t0, t1 float64) bool {
	s := piece{s0, a.XforT(s0), a.YforT(s0), s1, a.XforT(s1), a.YforT(s1)}
	t := piece{t0, b.XforT(t0), b.YforT(t0), t1, b.XforT(t1), b.YforT(t1)}
	return findIntersect(a, b, yrange, 0, 0, s, t)
}

// findIntersectSafe runs findIntersect and converts an *InternalError panic
// into an error.
func findIntersectSafe(a, b Curve, yrange *[2]float64, s, t piece) (found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*InternalError)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return findIntersect(a, b, yrange, 0, 0, s, t), nil
}

func findIntersect(a, b Curve, yrange *[2]float64, slevel, tlevel int, s, t piece) bool {
	if s.y0 > t.y1 || t.y0 > s.y1 {
		return false
	}
	if min(s.x0, s.x1) > max(t.x0, t.x1) || max(s.x0, s.x1) < min(t.x0, t.x1) {
		return false
	}

	switch {
	case s.t1-s.t0 > TMin:
		sa, sb := bisect(a, s)
		if sa.t1 == s.t0 || sa.t1 == s.t1 {
			internalError("no s progress", "level", slevel, "a", a, "b", b)
		}
		if t.t1-t.t0 > TMin {
			ta, tb := bisect(b, t)
			if ta.t1 == t.t0 || ta.t1 == t.t1 {
				internalError("no t progress", "level", tlevel, "a", a, "b", b)
			}
			ys, yt := sa.y1, ta.y1
			if ys >= t.y0 && yt >= s.y0 {
				if findIntersect(a, b, yrange, slevel+1, tlevel+1, sa, ta) {
					return true
				}
			}
			if ys >= yt {
				if findIntersect(a, b, yrange, slevel+1, tlevel+1, sa, tb) {
					return true
				}
			}
			if yt >= ys {
				if findIntersect(a, b, yrange, slevel+1, tlevel+1, sb, ta) {
					return true
				}
			}
			if s.y1 >= yt && t.y1 >= ys {
				if findIntersect(a, b, yrange, slevel+1, tlevel+1, sb, tb) {
					return true
				}
			}
		} else {
			ys := sa.y1
			if ys >= t.y0 {
				if findIntersect(a, b, yrange, slevel+1, tlevel, sa, t) {
					return true
				}
			}
			if t.y1 >= ys {
				if findIntersect(a, b, yrange, slevel+1, tlevel, sb, t) {
					return true
				}
			}
		}

	case t.t1-t.t0 > TMin:
		ta, tb := bisect(b, t)
		if ta.t1 == t.t0 || ta.t1 == t.t1 {
			internalError("no t progress", "level", tlevel, "a", a, "b", b)
		}
		yt := ta.y1
		if yt >= s.y0 {
			if findIntersect(a, b, yrange, slevel, tlevel+1, s, ta) {
				return true
			}
		}
		if s.y1 >= yt {
			if findIntersect(a, b, yrange, slevel, tlevel+1, s, tb) {
				return true
			}
		}

	default:
		// Both pieces are short enough to be replaced by their chords.
		xlk := s.x1 - s.x0
		ylk := s.y1 - s.y0
		xnm := t.x1 - t.x0
		ynm := t.y1 - t.y0
		xmk := t.x0 - s.x0
		ymk := t.y0 - s.y0
		det := xnm*ylk - ynm*xlk
		if det != 0 {
			detinv := 1 / det
			u := (xnm*ymk - ynm*xmk) * detinv
			v := (xlk*ymk - ylk*xmk) * detinv
			if u >= 0 && u <= 1 && v >= 0 && v <= 1 {
				u = s.t0 + u*(s.t1-s.t0)
				v = t.t0 + v*(t.t1-t.t0)
				y := (a.YforT(u) + b.YforT(v)) / 2
				if y <= yrange[1] && y > yrange[0] {
					yrange[1] = y
					return true
				}
			}
		}
	}
	return false
}

// bisect splits p at its parameter midpoint.
func bisect(c Curve, p piece) (piece, piece) {
	m := (p.t0 + p.t1) / 2
	x := c.XforT(m)
	y := c.YforT(m)
	return piece{p.t0, p.x0, p.y0, m, x, y}, piece{m, x, y, p.t1, p.x1, p.y1}
}
