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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestRoundRectContains(t *testing.T) {
	r := &RoundRectangle2D{X: 0, Y: 0, W: 100, H: 100, ArcW: 20, ArcH: 20}
	cases := []struct {
		x, y float32
		want bool
	}{
		{1, 1, false},
		{50, 1, true},
		{5, 5, true},
		{100, 50, false},
		{0, 50, true},
		{50, 0, true},
		{50, 100, false},
		{99, 99, false},
		{95, 95, true},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%g, %g) = %t, want %t", c.x, c.y, got, c.want)
		}
	}
}

func TestRoundRectRects(t *testing.T) {
	r := &RoundRectangle2D{X: 0, Y: 0, W: 100, H: 100, ArcW: 20, ArcH: 20}
	cases := []struct {
		name                 string
		x, y, w, h           float32
		intersects, contains bool
	}{
		{"corner gap", -5, -5, 6, 6, false, false},
		{"corner arc", -5, -5, 8, 8, true, false},
		{"top edge", 40, -5, 20, 10, true, false},
		{"inside", 10, 10, 80, 80, true, true},
		{"outside", 150, 0, 10, 10, false, false},
		{"covering", -10, -10, 120, 120, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Intersects(c.x, c.y, c.w, c.h); got != c.intersects {
				t.Errorf("Intersects = %t, want %t", got, c.intersects)
			}
			if got := r.ContainsRect(c.x, c.y, c.w, c.h); got != c.contains {
				t.Errorf("ContainsRect = %t, want %t", got, c.contains)
			}
		})
	}
}

func TestRoundRectArcClamp(t *testing.T) {
	// oversized arcs are clamped, which turns the outline into an ellipse
	r := &RoundRectangle2D{X: 0, Y: 0, W: 40, H: 20, ArcW: 100, ArcH: 100}
	if r.Contains(1, 1) {
		t.Error("(1, 1) is outside the rounded corner")
	}
	if !r.Contains(20, 10) {
		t.Error("centre not contained")
	}
}

func TestRoundRectData(t *testing.T) {
	r := &RoundRectangle2D{X: 0, Y: 0, W: 100, H: 100, ArcW: 20, ArcH: 20}
	p := r.Data()
	want := []path.Command{
		path.CmdMoveTo,
		path.CmdLineTo, path.CmdCubeTo,
		path.CmdLineTo, path.CmdCubeTo,
		path.CmdLineTo, path.CmdCubeTo,
		path.CmdLineTo, path.CmdCubeTo,
		path.CmdClose,
	}
	if len(p.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(want))
	}
	for i := range want {
		if p.Cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, p.Cmds[i], want[i])
		}
	}
	if p.Coords[0] != (vec.Vec2{X: 0, Y: 10}) {
		t.Errorf("start point %v, want (0, 10)", p.Coords[0])
	}
	if p.Coords[1] != (vec.Vec2{X: 0, Y: 90}) {
		t.Errorf("left edge ends at %v, want (0, 90)", p.Coords[1])
	}
	last := p.Coords[len(p.Coords)-1]
	if last != (vec.Vec2{X: 0, Y: 10}) {
		t.Errorf("end point %v, want (0, 10)", last)
	}

	neg := &RoundRectangle2D{W: 10, H: -1}
	if n := len(neg.Data().Cmds); n != 0 {
		t.Errorf("negative height: got %d commands", n)
	}
}
