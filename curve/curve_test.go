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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/shape/pathiter"
)

func TestInsertLine(t *testing.T) {
	var curves []Curve
	curves = InsertLine(curves, 0, 0, 10, 0) // horizontal, dropped
	curves = InsertLine(curves, 0, 0, 10, 10)
	curves = InsertLine(curves, 0, 20, 10, 10)
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	if curves[0].Direction() != Increasing || curves[1].Direction() != Decreasing {
		t.Errorf("wrong directions: %v, %v", curves[0].Direction(), curves[1].Direction())
	}
	c := curves[1]
	if c.YTop() != 10 || c.YBot() != 20 {
		t.Errorf("YTop, YBot = %g, %g", c.YTop(), c.YBot())
	}
	if c.X0() != 0 || c.Y0() != 20 || c.X1() != 10 || c.Y1() != 10 {
		t.Errorf("path order end points wrong: %v", c)
	}
}

func TestInsertQuadSplit(t *testing.T) {
	curves := InsertQuad(nil, 0, 0, []float64{5, 10, 10, 0})
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	a, b := curves[0], curves[1]
	if a.Direction() != Increasing || b.Direction() != Decreasing {
		t.Errorf("wrong directions: %v, %v", a.Direction(), b.Direction())
	}
	if a.X0() != 0 || a.Y0() != 0 || a.X1() != 5 || a.Y1() != 5 {
		t.Errorf("first piece %v", a)
	}
	if b.X0() != 5 || b.Y0() != 5 || b.X1() != 10 || b.Y1() != 0 {
		t.Errorf("second piece %v", b)
	}
}

func TestInsertHorizontalDropped(t *testing.T) {
	if c := InsertQuad(nil, 0, 3, []float64{5, 3, 10, 3}); len(c) != 0 {
		t.Errorf("horizontal quad gave %d curves", len(c))
	}
	if c := InsertCubic(nil, 0, 3, []float64{2, 3, 5, 3, 10, 3}); len(c) != 0 {
		t.Errorf("horizontal cubic gave %d curves", len(c))
	}
}

// TestMonotonic checks that all inserted pieces are y-monotonic and that
// TforY inverts YforT.
func TestMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		var coords [6]float64
		for i := range coords {
			coords[i] = rng.Float64() * 100
		}
		x0 := rng.Float64() * 100
		y0 := rng.Float64() * 100

		var curves []Curve
		curves = InsertQuad(curves, x0, y0, coords[:4])
		curves = InsertCubic(curves, x0, y0, coords[:])
		for _, c := range curves {
			if c.YTop() > c.YBot() {
				t.Fatalf("%v: YTop > YBot", c)
			}
			prev := c.YforT(0)
			for i := 1; i <= 1000; i++ {
				y := c.YforT(float64(i) / 1000)
				if y < prev-1e-9 {
					t.Fatalf("%v: y decreases at t=%g", c, float64(i)/1000)
				}
				prev = y
			}
			for i := 0; i <= 20; i++ {
				y := c.YTop() + (c.YBot()-c.YTop())*float64(i)/20
				tt := c.TforY(y)
				if tt < 0 || tt > 1 {
					t.Fatalf("%v: TforY(%g) = %g", c, y, tt)
				}
				if d := math.Abs(c.YforT(tt) - y); d > 1e-6 {
					t.Fatalf("%v: YforT(TforY(%g)) off by %g", c, y, d)
				}
			}
		}
	}
}

func TestCrossingsFor(t *testing.T) {
	c := InsertLine(nil, 0, 0, 0, 10)[0]
	cases := []struct {
		x, y float64
		want int
	}{
		{-1, 5, 1},
		{1, 5, 0},
		{-1, 0, 1},
		{-1, 10, 0},
		{-1, -1, 0},
	}
	for _, tc := range cases {
		if got := CrossingsFor(c, tc.x, tc.y); got != tc.want {
			t.Errorf("CrossingsFor(%g, %g) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
	if got := CrossingsFor(newOrder0(5, 5), 0, 5); got != 0 {
		t.Errorf("Order0 crossings = %d", got)
	}
}

func TestCompareDisjoint(t *testing.T) {
	a := InsertLine(nil, 0, 0, 0, 10)[0]
	b := InsertLine(nil, 5, 0, 5, 10)[0]

	yrange := [2]float64{0, 100}
	if got := Compare(a, b, &yrange); got != -1 {
		t.Errorf("Compare(a, b) = %d, want -1", got)
	}
	if yrange != [2]float64{0, 10} {
		t.Errorf("yrange = %v", yrange)
	}
	yrange = [2]float64{0, 10}
	if got := Compare(b, a, &yrange); got != 1 {
		t.Errorf("Compare(b, a) = %d, want 1", got)
	}
}

func TestCompareCrossingLines(t *testing.T) {
	a := InsertLine(nil, 0, 0, 10, 10)[0]
	b := InsertLine(nil, 10, 0, 0, 10)[0]

	yrange := [2]float64{0, 10}
	if got := Compare(a, b, &yrange); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if yrange[1] != 5 {
		t.Errorf("yrange[1] = %g, want 5", yrange[1])
	}

	yrange = [2]float64{5, 10}
	if got := Compare(a, b, &yrange); got != 1 {
		t.Errorf("Compare below the crossing = %d, want 1", got)
	}
}

func TestCompareQuadLine(t *testing.T) {
	a := InsertQuad(nil, 0, 0, []float64{2, 5, 0, 10})[0]
	b := InsertLine(nil, 0.5, 0, 0.5, 10)[0]

	yrange := [2]float64{0, 10}
	if got := Compare(a, b, &yrange); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	want := 5 * (1 - math.Sqrt(0.5))
	if math.Abs(yrange[1]-want) > 1e-4 {
		t.Errorf("yrange[1] = %g, want %g", yrange[1], want)
	}
}

func TestCompareCoincident(t *testing.T) {
	a := InsertQuad(nil, 0, 0, []float64{4, 5, 0, 10})[0]
	b := InsertQuad(nil, 0, 10, []float64{4, 5, 0, 0})[0]
	yrange := [2]float64{0, 10}
	if got := Compare(a, b, &yrange); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}
	if yrange[1] <= 0 {
		t.Errorf("yrange[1] = %g", yrange[1])
	}
}

func TestCompareSharedStretch(t *testing.T) {
	a := InsertCubic(nil, 100, 0, []float64{110, 3, 110, 7, 100, 10})[0]
	b := a.SubCurve(0, 6, Decreasing)
	yrange := [2]float64{0, 10}
	if got := Compare(a, b, &yrange); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}
	if yrange != [2]float64{0, 6} {
		t.Errorf("yrange = %v, want [0 6]", yrange)
	}
}

func TestCompareSeparating(t *testing.T) {
	// both start at (100, 0); the line moves away at slope 0.05 while
	// the cubic stays within 1e-20 of x=100, so the curves are no longer
	// fairly close once 0.05*y exceeds 100*1e-10.
	a := InsertLine(nil, 100, 0, 100.5, 10)[0]
	b := InsertCubic(nil, 100, 0, []float64{100, 3, 100, 7, 101, 10})[0]
	yrange := [2]float64{0, 10}
	if got := Compare(a, b, &yrange); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}
	if yrange[1] < 1.5e-7 || yrange[1] > 2.5e-7 {
		t.Errorf("yrange[1] = %g, want about 2e-7", yrange[1])
	}
}

func TestCompareBackstepping(t *testing.T) {
	a := InsertQuad(nil, 0, 0, []float64{2, 5, 0, 10})[0]
	b := InsertLine(nil, 0.5, 0, 0.5, 20)[0]

	defer func() {
		r := recover()
		if _, ok := r.(*InternalError); !ok {
			t.Errorf("expected *InternalError panic, got %v", r)
		}
	}()
	yrange := [2]float64{10, 20}
	Compare(a, b, &yrange)
}

func TestFindIntersect(t *testing.T) {
	a := InsertLine(nil, 0, 0, 10, 10)[0]
	b := InsertLine(nil, 10, 0, 0, 10)[0]

	yrange := [2]float64{0, 10}
	if !FindIntersect(a, b, &yrange, 0, 1, 0, 1) {
		t.Fatal("no intersection found")
	}
	if math.Abs(yrange[1]-5) > 1e-6 {
		t.Errorf("intersection at y=%g, want 5", yrange[1])
	}

	c := InsertLine(nil, 20, 0, 30, 10)[0]
	yrange = [2]float64{0, 10}
	if FindIntersect(a, c, &yrange, 0, 1, 0, 1) {
		t.Error("intersection found for disjoint lines")
	}
	if yrange[1] != 10 {
		t.Errorf("yrange changed to %v", yrange)
	}
}

func TestSubCurve(t *testing.T) {
	line := InsertLine(nil, 0, 0, 10, 10)[0]
	sub := line.SubCurve(2, 4, Decreasing)
	if sub.Direction() != Decreasing || sub.X0() != 4 || sub.Y0() != 4 {
		t.Errorf("line sub-curve %v", sub)
	}
	var coords [6]float64
	if tp := sub.Segment(coords[:]); tp != pathiter.LineTo || coords[0] != 2 || coords[1] != 2 {
		t.Errorf("segment %v %v", tp, coords[:2])
	}

	quad := InsertQuad(nil, 0, 0, []float64{10, 5, 0, 10})[0]
	if quad.SubCurve(0, 10, Increasing) != quad {
		t.Error("full range sub-curve should be the curve itself")
	}
	cubic := InsertCubic(nil, 0, 0, []float64{10, 3, 10, 7, 0, 10})[0]
	for _, c := range []Curve{quad, cubic} {
		s := c.SubCurve(2.5, 7.5, Increasing)
		if s.YTop() != 2.5 || s.YBot() != 7.5 {
			t.Errorf("%v: sub-curve range [%g, %g]", c, s.YTop(), s.YBot())
		}
		if d := math.Abs(s.XforY(5) - c.XforY(5)); d > 1e-9 {
			t.Errorf("%v: sub-curve is off by %g", c, d)
		}
	}
}

func TestReversed(t *testing.T) {
	c := InsertCubic(nil, 0, 0, []float64{10, 3, 10, 7, 0, 10})[0]
	r := c.Reversed()
	if r.Direction() != Decreasing {
		t.Fatal("direction not reversed")
	}
	if r.X0() != c.X1() || r.Y0() != c.Y1() || r.X1() != c.X0() || r.Y1() != c.Y0() {
		t.Errorf("end points not swapped: %v, %v", c, r)
	}
	if WithDirection(r, Decreasing) != r {
		t.Error("WithDirection should not copy")
	}
}

func TestBounds(t *testing.T) {
	curves := InsertCubic(nil, 0, 0, []float64{10, 0, 10, 10, 0, 10})
	if len(curves) != 1 {
		t.Fatalf("got %d curves", len(curves))
	}
	r := Bounds(curves)
	if r.LLx != 0 || r.LLy != 0 || r.URy != 10 || math.Abs(r.URx-7.5) > 1e-12 {
		t.Errorf("bounds %v", r)
	}
}

func TestSolveQuadratic(t *testing.T) {
	var res [2]float64
	if n := SolveQuadratic([3]float64{-1, 0, 1}, res[:]); n != 2 ||
		min(res[0], res[1]) != -1 || max(res[0], res[1]) != 1 {
		t.Errorf("x²-1: %d %v", n, res)
	}
	if n := SolveQuadratic([3]float64{1, 0, 0}, res[:]); n != -1 {
		t.Errorf("constant: %d", n)
	}
	if n := SolveQuadratic([3]float64{1, 2, 0}, res[:]); n != 1 || res[0] != -0.5 {
		t.Errorf("linear: %d %v", n, res)
	}
	if n := SolveQuadratic([3]float64{1, 0, 1}, res[:]); n != 0 {
		t.Errorf("x²+1: %d", n)
	}
}

func TestRecordNonZero(t *testing.T) {
	c := NewCrossings(pathiter.NonZero, 0, 0, 1, 1)
	c.Record(0, 10, Increasing)
	c.Record(5, 15, Increasing)
	want := []Range{{0, 5, 1}, {5, 10, 2}, {10, 15, 1}}
	if d := cmp.Diff(want, c.Ranges()); d != "" {
		t.Errorf("ranges (-want +got):\n%s", d)
	}
	if !c.Covers(0, 15) || c.Covers(-1, 5) {
		t.Error("wrong coverage")
	}

	c.Record(0, 10, Decreasing)
	want = []Range{{5, 15, 1}}
	if d := cmp.Diff(want, c.Ranges()); d != "" {
		t.Errorf("ranges (-want +got):\n%s", d)
	}

	c.Record(3, 3, Increasing)
	c.Record(8, 2, Increasing)
	if d := cmp.Diff(want, c.Ranges()); d != "" {
		t.Errorf("empty ranges were recorded (-want +got):\n%s", d)
	}
}

func TestRecordSpanning(t *testing.T) {
	c := NewCrossings(pathiter.NonZero, 0, 0, 1, 1)
	c.Record(0, 2, Increasing)
	c.Record(4, 6, Increasing)
	c.Record(-1, 10, Increasing)
	want := []Range{{-1, 0, 1}, {0, 2, 2}, {2, 4, 1}, {4, 6, 2}, {6, 10, 1}}
	if d := cmp.Diff(want, c.Ranges()); d != "" {
		t.Errorf("ranges (-want +got):\n%s", d)
	}
}

func TestRecordEvenOdd(t *testing.T) {
	c := NewCrossings(pathiter.EvenOdd, 0, 0, 1, 1)
	c.Record(0, 10, Increasing)
	c.Record(5, 15, Decreasing)
	want := []Range{{0, 5, 1}, {10, 15, 1}}
	if d := cmp.Diff(want, c.Ranges()); d != "" {
		t.Errorf("ranges (-want +got):\n%s", d)
	}
	if c.Covers(0, 15) || !c.Covers(0, 5) {
		t.Error("wrong coverage")
	}
	c.Record(5, 10, Increasing)
	if !c.Covers(0, 15) {
		t.Error("gap not filled")
	}
	c.Record(0, 15, Increasing)
	if !c.IsEmpty() {
		t.Errorf("ranges left: %v", c.Ranges())
	}
}

func TestAccumulateLine(t *testing.T) {
	c := NewCrossings(pathiter.NonZero, 0, 0, 10, 10)
	if c.AccumulateLine(-5, -5, -5, 15) {
		t.Error("line left of the window reported as hit")
	}
	if !c.Covers(0, 10) {
		t.Errorf("ranges %v", c.Ranges())
	}
	if !c.AccumulateLine(-5, 5, 5, 5) {
		t.Error("horizontal line into the window not detected")
	}
	if !c.AccumulateLine(5, -5, 5, 15) {
		t.Error("vertical line through the window not detected")
	}
	if c.AccumulateLine(15, -5, 15, 15) {
		t.Error("line right of the window reported as hit")
	}
}

func TestAccumulateCurvesLeft(t *testing.T) {
	c := NewCrossings(pathiter.NonZero, 0, 0, 10, 10)
	if c.AccumulateQuad(-5, -5, []float64{-8, 5, -5, 15}) {
		t.Error("quad reported as hit")
	}
	if c.AccumulateCubic(-5, 15, []float64{-8, 10, -8, 0, -5, -5}) {
		t.Error("cubic reported as hit")
	}
	if !c.IsEmpty() {
		t.Errorf("opposite curves should cancel: %v", c.Ranges())
	}
	if !c.AccumulateCubic(-5, 5, []float64{5, 0, 5, 10, 20, 5}) {
		t.Error("cubic through the window not detected")
	}
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestFindCrossingsPath(t *testing.T) {
	outer := square(-5, -5, 15, 15)
	cr := FindCrossingsPath(pathiter.NewDataIterator(outer, pathiter.NonZero, nil), 0, 0, 10, 10)
	if cr == nil {
		t.Fatal("window inside the square reported as hit")
	}
	if !cr.Covers(0, 10) {
		t.Errorf("ranges %v", cr.Ranges())
	}

	inner := square(2, 2, 8, 8)
	cr = FindCrossingsPath(pathiter.NewDataIterator(inner, pathiter.NonZero, nil), 0, 0, 10, 10)
	if cr != nil {
		t.Errorf("square inside the window not detected: %v", cr.Ranges())
	}

	// an open subpath is closed implicitly
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: -5, Y: -5}).
		LineTo(vec.Vec2{X: 15, Y: -5}).
		LineTo(vec.Vec2{X: 15, Y: 15}).
		LineTo(vec.Vec2{X: -5, Y: 15})
	cr = FindCrossingsPath(pathiter.NewDataIterator(open, pathiter.EvenOdd, nil), 0, 0, 10, 10)
	if cr == nil || !cr.Covers(0, 10) {
		t.Error("open subpath not closed")
	}
}

func TestFindCrossings(t *testing.T) {
	var curves []Curve
	curves = InsertMove(curves, -5, -5)
	curves = InsertLine(curves, -5, -5, 15, -5)
	curves = InsertLine(curves, 15, -5, 15, 15)
	curves = InsertLine(curves, 15, 15, -5, 15)
	curves = InsertLine(curves, -5, 15, -5, -5)

	cr := FindCrossings(curves, pathiter.NonZero, 0, 0, 10, 10)
	if cr == nil || !cr.Covers(0, 10) {
		t.Error("window should be covered")
	}
	if FindCrossings(curves, pathiter.NonZero, 10, 10, 20, 20) != nil {
		t.Error("window across the outline not detected")
	}
	// the start point alone, strictly inside the window, is a hit
	if FindCrossings(curves[:1], pathiter.NonZero, -10, -10, 0, 0) != nil {
		t.Error("point inside the window not detected")
	}
}

func TestSweepCrossing(t *testing.T) {
	a := InsertLine(nil, 0, 0, 10, 10)[0]
	b := InsertLine(nil, 10, 0, 0, 10)[0]

	var spans []Span
	Sweep([]Curve{b, newOrder0(3, 3), a}, func(s Span) bool {
		spans = append(spans, s)
		return true
	})
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Y0 != 0 || spans[0].Y1 != 5 || spans[1].Y0 != 5 || spans[1].Y1 != 10 {
		t.Errorf("span ranges: [%g,%g] [%g,%g]",
			spans[0].Y0, spans[0].Y1, spans[1].Y0, spans[1].Y1)
	}
	if spans[0].Active[0] != a || spans[0].Active[1] != b {
		t.Error("wrong order above the crossing")
	}
	if spans[1].Active[0] != b || spans[1].Active[1] != a {
		t.Error("wrong order below the crossing")
	}
}

func TestSweepCoincident(t *testing.T) {
	a := InsertLine(nil, 0, 0, 0, 10)[0]
	b := InsertLine(nil, 0, 10, 0, 0)[0]
	c := InsertLine(nil, 5, 0, 5, 10)[0]

	var spans []Span
	Sweep([]Curve{c, a, b}, func(s Span) bool {
		spans = append(spans, s)
		return true
	})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	cl := spans[0].Classes
	if len(cl) != 3 || cl[0] == 0 || cl[0] != cl[1] || cl[2] != 0 {
		t.Errorf("classes %v", cl)
	}
	if spans[0].Active[2] != c {
		t.Error("wrong order")
	}
}

func TestSweepStop(t *testing.T) {
	a := InsertLine(nil, 0, 0, 0, 10)[0]
	b := InsertLine(nil, 0, 20, 0, 30)[0]
	calls := 0
	Sweep([]Curve{a, b}, func(Span) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("visit called %d times", calls)
	}
}
