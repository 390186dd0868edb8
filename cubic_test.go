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
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/shape/bounds"
)

// arch is a symmetric cubic from (0, 0) to (10, 0) with its apex at
// (5, 7.5).
var arch = CubicCurve2D{0, 0, 0, 10, 10, 10, 10, 0}

func TestSolveCubic(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-4)
	cases := []struct {
		name string
		eqn  [4]float32
		want []float32
	}{
		{"three roots", [4]float32{-6, 11, -6, 1}, []float32{1, 2, 3}},
		{"one root", [4]float32{-1, 0, 0, 1}, []float32{1}},
		{"quadratic", [4]float32{-4, 0, 1, 0}, []float32{-2, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var res [3]float32
			n := SolveCubic(c.eqn, res[:])
			got := slices.Clone(res[:max(n, 0)])
			slices.Sort(got)
			if d := cmp.Diff(c.want, got, approx); d != "" {
				t.Errorf("roots mismatch (-want +got):\n%s", d)
			}
		})
	}

	var res [3]float32
	if n := SolveCubic([4]float32{1, 0, 0, 0}, res[:]); n != -1 {
		t.Errorf("constant equation: got %d, want -1", n)
	}
}

func TestSolveQuadratic(t *testing.T) {
	var res [2]float32
	n := SolveQuadratic([3]float32{2, -3, 1}, res[:])
	got := res[:n]
	slices.Sort(got)
	if d := cmp.Diff([]float32{1, 2}, got); d != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", d)
	}
	if n := SolveQuadratic([3]float32{1, 0, 1}, res[:]); n != 0 {
		t.Errorf("no real roots: got %d", n)
	}
	if n := SolveQuadratic([3]float32{5, 0, 0}, res[:]); n != -1 {
		t.Errorf("constant: got %d", n)
	}
}

func TestCubicContains(t *testing.T) {
	cases := []struct {
		x, y float32
		want bool
	}{
		{5, 5, true},
		{5, -1, false},
		{5, 9, false},
		{5, 7, true},
		{0.5, 5, false},
		{5, math32.NaN(), false},
	}
	for _, c := range cases {
		if got := arch.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%g, %g) = %t, want %t", c.x, c.y, got, c.want)
		}
	}
}

func TestCubicRects(t *testing.T) {
	cases := []struct {
		name                 string
		x, y, w, h           float32
		intersects, contains bool
	}{
		{"inside", 4, 4, 2, 2, true, true},
		{"far away", 20, 20, 2, 2, false, false},
		{"around the apex", 4, 7, 2, 2, true, false},
		{"above the apex", 4, 8, 2, 2, false, false},
		{"across the chord", 4, -1, 2, 2, true, false},
		{"end point inside", -1, -1, 2, 2, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := arch.Intersects(c.x, c.y, c.w, c.h); got != c.intersects {
				t.Errorf("Intersects = %t, want %t", got, c.intersects)
			}
			if got := arch.ContainsRect(c.x, c.y, c.w, c.h); got != c.contains {
				t.Errorf("ContainsRect = %t, want %t", got, c.contains)
			}
		})
	}
}

func TestCubicSubdivide(t *testing.T) {
	l1, r1 := arch.Subdivide(0.5)
	l2, r2 := arch.SubdivideHalf()
	if l1 != l2 || r1 != r2 {
		t.Errorf("Subdivide(0.5) = %v %v, SubdivideHalf() = %v %v", l1, r1, l2, r2)
	}
	if l1.X2 != 5 || l1.Y2 != 7.5 {
		t.Errorf("split point (%g, %g), want (5, 7.5)", l1.X2, l1.Y2)
	}

	// the pieces of a split at t lie on the original curve
	left, right := arch.Subdivide(0.25)
	x, y := arch.Eval(0.25)
	if left.X2 != x || left.Y2 != y || right.X1 != x || right.Y1 != y {
		t.Errorf("split point mismatch")
	}
	lx, ly := left.Eval(0.5)
	ox, oy := arch.Eval(0.125)
	if math32.Abs(lx-ox) > 1e-5 || math32.Abs(ly-oy) > 1e-5 {
		t.Errorf("left half at 0.5 = (%g, %g), want (%g, %g)", lx, ly, ox, oy)
	}
}

func TestCubicMisc(t *testing.T) {
	if f := arch.Flatness(); f != 10 {
		t.Errorf("Flatness() = %g, want 10", f)
	}
	if b := arch.Bounds(); b != bounds.NewRect(0, 0, 10, 10) {
		t.Errorf("Bounds() = %v", b)
	}
	dx, dy := arch.EvalDt(0)
	if dx != 0 || dy != 30 {
		t.Errorf("EvalDt(0) = (%g, %g), want (0, 30)", dx, dy)
	}
	line := CubicCurve2D{0, 0, 1, 0, 2, 0, 3, 0}
	if f := line.FlatnessSq(); f != 0 {
		t.Errorf("straight curve: FlatnessSq() = %g", f)
	}
}
