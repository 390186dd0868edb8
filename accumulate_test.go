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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape/pathiter"
)

func TestAccumulateQuad(t *testing.T) {
	p := NewPath2D(pathiter.EvenOdd).MoveTo(0, 0).QuadTo(5, 10, 10, 0)
	bbox := EmptyBBox
	Accumulate(&bbox, p, nil)
	want := [4]float32{0, 0, 10, 5}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}

	// the control point bounds are not tight
	if b := p.Bounds(); b.MaxY() != 10 {
		t.Errorf("Bounds().MaxY() = %g, want 10", b.MaxY())
	}
}

func TestAccumulateCubic(t *testing.T) {
	c := &CubicCurve2D{0, 0, 0, 10, 10, 10, 10, 0}

	bbox := EmptyBBox
	Accumulate(&bbox, c, nil)
	want := [4]float32{0, 0, 10, 7.5}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}

	bbox = EmptyBBox
	Accumulate(&bbox, c, &matrix.Matrix{2, 0, 0, 2, 1, 1})
	want = [4]float32{1, 1, 21, 16}
	if bbox != want {
		t.Errorf("transformed: got %v, want %v", bbox, want)
	}
}

func TestAccumulateKeepsExisting(t *testing.T) {
	bbox := [4]float32{-5, -5, 0, 0}
	Accumulate(&bbox, &Line2D{X1: 1, Y1: 1, X2: 2, Y2: -1}, nil)
	want := [4]float32{-5, -5, 2, 1}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}
}

func TestAccumulateIgnoresNaN(t *testing.T) {
	bbox := EmptyBBox
	includePoint(&bbox, float32(math.NaN()), 3)
	includePoint(&bbox, 1, 2)
	want := [4]float32{1, 2, 1, 3}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}
}

func TestAccumulateCubicNoInteriorExtremum(t *testing.T) {
	// monotonic in x: nothing to add beyond the end points
	bbox := [4]float32{0, 0, 3, 0}
	AccumulateCubic(&bbox, 0, 0, 1, 2, 3)
	want := [4]float32{0, 0, 3, 0}
	if bbox != want {
		t.Errorf("got %v, want %v", bbox, want)
	}
}
