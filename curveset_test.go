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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/bounds"
	"seehuhn.de/go/shape/curve"
	"seehuhn.de/go/shape/pathiter"
)

func TestDecompose(t *testing.T) {
	sq := squarePath(pathiter.NonZero, 0, 0, 10, 10)
	curves := Decompose(sq.PathIterator(nil))
	var orders []int
	for _, c := range curves {
		orders = append(orders, c.Order())
	}
	if d := cmp.Diff([]int{0, 1, 1}, orders); d != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", d)
	}

	// the arch splits at its apex into two monotonic pieces
	curves = Decompose(arch.PathIterator(nil))
	orders = orders[:0]
	for _, c := range curves {
		orders = append(orders, c.Order())
	}
	if d := cmp.Diff([]int{0, 3, 3}, orders); d != "" {
		t.Errorf("arch orders mismatch (-want +got):\n%s", d)
	}
}

func TestCurveSetMatchesShapes(t *testing.T) {
	e := &Ellipse2D{X: 0, Y: 0, W: 100, H: 100}
	es := CurveSetOf(e)
	r := &RoundRectangle2D{X: 0, Y: 0, W: 100, H: 100, ArcW: 20, ArcH: 20}
	rs := CurveSetOf(r)
	rp := PathFromShape(r, nil)

	for i := range 15 {
		for j := range 15 {
			x := 0.5 + 7*float32(i)
			y := 0.5 + 7*float32(j)

			// Skip points close to the ellipse, where the Bézier
			// approximation and the exact ellipse may disagree.
			nx, ny := x/100-0.5, y/100-0.5
			d := nx*nx + ny*ny
			if d < 0.23 || d > 0.27 {
				if got, want := es.Contains(x, y), e.Contains(x, y); got != want {
					t.Errorf("ellipse (%g, %g): got %t, want %t", x, y, got, want)
				}
			}

			want := r.Contains(x, y)
			if got := rs.Contains(x, y); got != want {
				t.Errorf("round rect (%g, %g): got %t, want %t", x, y, got, want)
			}
			if got := rp.Contains(x, y); got != want {
				t.Errorf("round rect path (%g, %g): got %t, want %t", x, y, got, want)
			}
		}
	}
}

func TestCurveSetRules(t *testing.T) {
	for _, rule := range []pathiter.WindingRule{pathiter.EvenOdd, pathiter.NonZero} {
		p := squarePath(rule, 0, 0, 20, 20)
		p.AppendShape(squarePath(rule, 4, 4, 16, 16), false)
		s := NewCurveSet(p.PathIterator(nil))
		if s.Rule() != rule {
			t.Errorf("Rule() = %v, want %v", s.Rule(), rule)
		}
		if got, want := s.Contains(10, 10), rule == pathiter.NonZero; got != want {
			t.Errorf("%v: Contains(10, 10) = %t, want %t", rule, got, want)
		}
		if !s.Contains(2, 10) {
			t.Errorf("%v: ring not filled", rule)
		}
	}
}

func TestCurveSetRects(t *testing.T) {
	s := CurveSetOf(squarePath(pathiter.NonZero, 0, 0, 10, 10))
	cases := []struct {
		name                 string
		x, y, w, h           float32
		intersects, contains bool
	}{
		{"inside", 2, 2, 4, 4, true, true},
		{"across the edge", 8, 2, 4, 4, true, false},
		{"outside", 20, 2, 4, 4, false, false},
		{"empty", 2, 2, 4, 0, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.Intersects(c.x, c.y, c.w, c.h); got != c.intersects {
				t.Errorf("Intersects = %t, want %t", got, c.intersects)
			}
			if got := s.ContainsRect(c.x, c.y, c.w, c.h); got != c.contains {
				t.Errorf("ContainsRect = %t, want %t", got, c.contains)
			}
		})
	}
}

func TestCurveSetBounds(t *testing.T) {
	s := CurveSetOf(&arch)
	if b := s.Bounds(); b != bounds.NewRect(0, 0, 10, 7.5) {
		t.Errorf("Bounds() = %v", b)
	}
	if s.IsEmpty() {
		t.Error("arch is empty")
	}

	line := CurveSetOf(&Line2D{X1: 0, Y1: 5, X2: 10, Y2: 5})
	if !line.IsEmpty() {
		t.Error("horizontal line encloses an area")
	}
}

func TestCurveSetPathIterator(t *testing.T) {
	s := CurveSetOf(squarePath(pathiter.NonZero, 0, 0, 10, 10))
	got := pathiter.ToData(s.PathIterator(nil))
	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}
	wantCoords := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
		{X: 0, Y: 10}, {X: 0, Y: 0},
	}
	if d := cmp.Diff(wantCmds, got.Cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantCoords, got.Coords); d != "" {
		t.Errorf("coordinates (-want +got):\n%s", d)
	}

	// the rebuilt outline encloses the same region
	p := PathFromShape(s, nil)
	if !p.Contains(5, 5) || p.Contains(15, 5) {
		t.Error("rebuilt outline has the wrong interior")
	}
}

func TestCurveSetSpans(t *testing.T) {
	s := CurveSetOf(squarePath(pathiter.NonZero, 0, 0, 10, 10))
	var n int
	s.Spans(func(sp curve.Span) bool {
		n++
		if sp.Y0 != 0 || sp.Y1 != 10 {
			t.Errorf("span [%g, %g], want [0, 10]", sp.Y0, sp.Y1)
		}
		if len(sp.Active) != 2 {
			t.Fatalf("%d active curves, want 2", len(sp.Active))
		}
		if sp.Active[0].XTop() != 0 || sp.Active[1].XTop() != 10 {
			t.Errorf("curves not ordered left to right")
		}
		return true
	})
	if n != 1 {
		t.Errorf("got %d spans, want 1", n)
	}
}
