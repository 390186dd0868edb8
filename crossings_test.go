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
	"errors"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/pathiter"
)

// squarePath returns the closed axis-aligned square with corners
// (x0, y0) and (x1, y1), traversed in the order given.
func squarePath(rule pathiter.WindingRule, x0, y0, x1, y1 float32) *Path2D {
	return NewPath2D(rule).
		MoveTo(x0, y0).
		LineTo(x1, y0).
		LineTo(x1, y1).
		LineTo(x0, y1).
		Close()
}

func mustPanicWith(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("got panic %v, want %v", r, want)
		}
	}()
	f()
}

func TestPointCrossingsForLine(t *testing.T) {
	cases := []struct {
		name           string
		px, py         float32
		x0, y0, x1, y1 float32
		want           int
	}{
		{"left of downward", -1, 5, 0, 0, 0, 10, 1},
		{"left of upward", -1, 5, 0, 10, 0, 0, -1},
		{"right", 1, 5, 0, 0, 0, 10, 0},
		{"bottom end excluded", -1, 10, 0, 0, 0, 10, 0},
		{"top end included", -1, 0, 0, 0, 0, 10, 1},
		{"above", -1, -1, 0, 0, 0, 10, 0},
		{"diagonal left", 2, 5, 0, 0, 10, 10, 1},
		{"diagonal right", 6, 5, 0, 0, 10, 10, 0},
		{"diagonal on line", 5, 5, 0, 0, 10, 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := PointCrossingsForLine(c.px, c.py, c.x0, c.y0, c.x1, c.y1)
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestPointCrossingsForPath(t *testing.T) {
	sq := squarePath(pathiter.NonZero, 0, 0, 10, 10)
	cases := []struct {
		x, y float32
		want int
	}{
		{5, 5, 1},
		{15, 5, 0},
		{-5, 5, 0},
		{5, 15, 0},
	}
	for _, c := range cases {
		got := PointCrossingsForPath(sq.PathIterator(nil), c.x, c.y)
		if got != c.want {
			t.Errorf("(%g, %g): got %d, want %d", c.x, c.y, got, c.want)
		}
	}

	empty := pathiter.NewDataIterator(&path.Data{}, pathiter.NonZero, nil)
	if n := PointCrossingsForPath(empty, 0, 0); n != 0 {
		t.Errorf("empty path: got %d", n)
	}
}

func TestPointCrossingsCurveParity(t *testing.T) {
	e := &Ellipse2D{X: 0, Y: 0, W: 100, H: 100}
	n := PointCrossingsForPath(e.PathIterator(nil), 50, 50)
	if n&1 != 1 {
		t.Errorf("centre: got %d crossings, want an odd number", n)
	}
	n = PointCrossingsForPath(e.PathIterator(nil), 150, 50)
	if n != 0 {
		t.Errorf("outside: got %d crossings", n)
	}
}

func TestOpenSubpathIsClosed(t *testing.T) {
	// a triangle without Close; the missing edge is added implicitly
	p := NewPath2D(pathiter.EvenOdd).MoveTo(0, 0).LineTo(10, 10).LineTo(0, 10)
	if n := PointCrossingsForPath(p.PathIterator(nil), -1, 5); n != 0 {
		t.Errorf("got %d, want 0", n)
	}
	if !p.Contains(2, 5) {
		t.Error("point inside the open triangle not contained")
	}
}

func TestMissingMoveTo(t *testing.T) {
	bad := &path.Data{
		Cmds:   []path.Command{path.CmdLineTo},
		Coords: []vec.Vec2{{X: 1, Y: 1}},
	}
	it := func() pathiter.Iterator {
		return pathiter.NewDataIterator(bad, pathiter.NonZero, nil)
	}
	mustPanicWith(t, ErrMissingMoveTo, func() { PointCrossingsForPath(it(), 0, 0) })
	mustPanicWith(t, ErrMissingMoveTo, func() { RectCrossingsForPath(it(), 0, 0, 1, 1) })
	mustPanicWith(t, ErrMissingMoveTo, func() { Decompose(it()) })
}

func TestRectCrossingsForPath(t *testing.T) {
	sq := squarePath(pathiter.NonZero, 0, 0, 10, 10)
	cases := []struct {
		name                       string
		rxmin, rymin, rxmax, rymax float32
		want                       int
	}{
		{"inside", 2, 2, 6, 6, 2},
		{"across right edge", 8, 2, 12, 6, RectIntersects},
		{"outside", 20, 2, 24, 6, 0},
		{"empty", 2, 2, 2, 6, 0},
		{"covering", -1, -1, 11, 11, RectIntersects},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RectCrossingsForPath(sq.PathIterator(nil), c.rxmin, c.rymin, c.rxmax, c.rymax)
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestRectCrossingsForLine(t *testing.T) {
	// a line to the right of the rectangle, spanning its y-range
	if got := RectCrossingsForLine(0, 0, 0, 1, 1, 2, -1, 2, 2); got != 2 {
		t.Errorf("spanning: got %d, want 2", got)
	}
	if got := RectCrossingsForLine(0, 0, 0, 1, 1, 2, 2, 2, -1); got != -2 {
		t.Errorf("spanning upwards: got %d, want -2", got)
	}
	// ending inside the y-range counts once
	if got := RectCrossingsForLine(5, 0, 0, 1, 1, 2, -1, 2, 0.5); got != 6 {
		t.Errorf("half: got %d, want 6", got)
	}
	// an end point inside the rectangle
	if got := RectCrossingsForLine(0, 0, 0, 1, 1, 0.5, 0.5, 3, 3); got != RectIntersects {
		t.Errorf("inside: got %d", got)
	}
	// a diagonal entirely to the right
	if got := RectCrossingsForLine(0, 0, 0, 1, 1, 3, -1, 5, 3); got != 2 {
		t.Errorf("diagonal right: got %d, want 2", got)
	}
}

func TestRectCrossingsForCurves(t *testing.T) {
	// An arch bulging into the rectangle although both its end points
	// are outside.
	got := RectCrossingsForCubic(0, 4, 6, 6, 8, 0, 0, 0, 10, 10, 10, 10, 0, 0)
	if got != RectIntersects {
		t.Errorf("cubic: got %d, want RectIntersects", got)
	}
	// The same arch around a rectangle below its apex.  Only the
	// descending right half is to the right of the rectangle.
	got = RectCrossingsForCubic(0, 2, 2, 6, 6, 0, 0, 0, 10, 10, 10, 10, 0, 0)
	if got != -2 {
		t.Errorf("cubic: got %d, want -2", got)
	}
	// A quadratic to the right of the rectangle.
	got = RectCrossingsForQuad(0, 0, 0, 1, 1, 5, -1, 6, 0.5, 5, 2, 0)
	if got != 2 {
		t.Errorf("quad: got %d, want 2", got)
	}
}

func TestOutcode(t *testing.T) {
	cases := []struct {
		x, y float32
		want int
	}{
		{5, 5, 0},
		{0, 0, 0},
		{10, 10, 0},
		{-1, 5, OutLeft},
		{11, 5, OutRight},
		{5, -1, OutTop},
		{5, 11, OutBottom},
		{-1, -1, OutLeft | OutTop},
		{11, 11, OutRight | OutBottom},
	}
	for _, c := range cases {
		if got := Outcode(0, 0, 10, 10, c.x, c.y); got != c.want {
			t.Errorf("(%g, %g): got %d, want %d", c.x, c.y, got, c.want)
		}
	}
	if got := Outcode(0, 0, 0, 10, 0, 5); got != OutLeft|OutRight {
		t.Errorf("zero width: got %d", got)
	}
}

func TestIntersectsLine(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 float32
		want           bool
	}{
		{"through", -5, 5, 15, 5, true},
		{"inside", 2, 2, 3, 3, true},
		{"one end inside", 5, 5, 50, 50, true},
		{"same side", -5, -5, -1, 20, false},
		{"diagonal miss", -10, 5, 5, 20, false},
		{"corner", 10, 10, 20, 20, true},
		{"vertical through", 5, -5, 5, 15, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := IntersectsLine(0, 0, 10, 10, c.x1, c.y1, c.x2, c.y2)
			if got != c.want {
				t.Errorf("got %t, want %t", got, c.want)
			}
		})
	}
}
