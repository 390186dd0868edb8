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

package pathiter

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type segment struct {
	Type   SegmentType
	Coords []float32
}

// collect reads all segments of it.
func collect(it Iterator) []segment {
	var res []segment
	var buf [MaxCoords]float32
	for ; !it.IsDone(); it.Next() {
		t := it.CurrentSegment(buf[:])
		res = append(res, segment{t, append([]float32(nil), buf[:2*t.NumPoints()]...)})
	}
	return res
}

func expectExhausted(t *testing.T, it Iterator) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrExhausted) {
			t.Errorf("recovered %v, want ErrExhausted", r)
		}
	}()
	var buf [MaxCoords]float32
	it.CurrentSegment(buf[:])
}

func TestCubicIterator(t *testing.T) {
	it := NewCubicIterator(0, 0, 1, 2, 3, 4, 5, 6, nil)
	want := []segment{
		{MoveTo, []float32{0, 0}},
		{CubicTo, []float32{1, 2, 3, 4, 5, 6}},
	}
	if d := cmp.Diff(want, collect(it)); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
	if it.WindingRule() != NonZero {
		t.Errorf("winding rule = %v", it.WindingRule())
	}
	expectExhausted(t, it)
}

func TestCubicIteratorTransform(t *testing.T) {
	tx := matrix.Matrix{2, 0, 0, 3, 1, 1}
	it := NewCubicIterator(0, 0, 1, 1, 2, 2, 3, 3, &tx)
	tx = matrix.Identity // the iterator keeps its own copy
	got := collect(it)
	want := []segment{
		{MoveTo, []float32{1, 1}},
		{CubicTo, []float32{3, 4, 5, 7, 7, 10}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
}

func TestQuadIterator(t *testing.T) {
	it := NewQuadIterator(0, 0, 5, 10, 10, 0, nil)
	want := []segment{
		{MoveTo, []float32{0, 0}},
		{QuadTo, []float32{5, 10, 10, 0}},
	}
	if d := cmp.Diff(want, collect(it)); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
	expectExhausted(t, it)
}

func TestDataIteratorSnapshot(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		QuadTo(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10}).
		Close()
	it := NewDataIterator(p, EvenOdd, nil)

	// mutate the path after the iterator was created
	p.Coords[1] = vec.Vec2{X: 99, Y: 99}
	p.LineTo(vec.Vec2{X: 5, Y: 5})

	want := []segment{
		{MoveTo, []float32{0, 0}},
		{LineTo, []float32{10, 0}},
		{QuadTo, []float32{10, 10, 0, 10}},
		{Close, nil},
	}
	if d := cmp.Diff(want, collect(it)); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
	if it.WindingRule() != EvenOdd {
		t.Errorf("winding rule = %v", it.WindingRule())
	}
	expectExhausted(t, it)
}

func TestToData(t *testing.T) {
	it := NewCubicIterator(0, 0, 1, 2, 3, 4, 5, 6, nil)
	p := ToData(it)
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdCubeTo}
	if d := cmp.Diff(wantCmds, p.Cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	if len(p.Coords) != 4 || p.Coords[3] != (vec.Vec2{X: 5, Y: 6}) {
		t.Errorf("coords = %v", p.Coords)
	}
	if !it.IsDone() {
		t.Error("ToData did not consume the iterator")
	}
}

func TestToPathStopsEarly(t *testing.T) {
	it := NewCubicIterator(0, 0, 1, 2, 3, 4, 5, 6, nil)
	n := 0
	for range ToPath(it) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("visited %d segments", n)
	}
	if it.IsDone() {
		t.Error("iterator was advanced past the break")
	}
}

func TestTransformed(t *testing.T) {
	it := Transformed(NewQuadIterator(1, 1, 2, 2, 3, 3, nil), matrix.Matrix{1, 0, 0, 1, 10, 0})
	want := []segment{
		{MoveTo, []float32{11, 1}},
		{QuadTo, []float32{12, 2, 13, 3}},
	}
	if d := cmp.Diff(want, collect(it)); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}

	src := NewQuadIterator(1, 1, 2, 2, 3, 3, nil)
	if Transformed(src, matrix.Identity) != Iterator(src) {
		t.Error("identity transform should not wrap")
	}
}

func TestFlatteningLinesOnly(t *testing.T) {
	src := NewCubicIterator(0, 0, 0, 100, 100, 100, 100, 0, nil)
	segs := collect(NewFlattening(src, 0.25))
	if len(segs) < 3 {
		t.Fatalf("only %d segments", len(segs))
	}
	if segs[0].Type != MoveTo {
		t.Errorf("first segment is %v", segs[0].Type)
	}
	for _, s := range segs[1:] {
		if s.Type != LineTo {
			t.Fatalf("unexpected segment type %v", s.Type)
		}
	}
	last := segs[len(segs)-1].Coords
	if last[0] != 100 || last[1] != 0 {
		t.Errorf("last point = %v", last)
	}

	// all points lie within the flatness of the true curve's hull
	for _, s := range segs {
		y := s.Coords[1]
		if y < 0 || y > 75.25 {
			t.Errorf("point %v outside the curve's y-range", s.Coords)
		}
	}
}

func TestFlatteningPassThrough(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		Close().
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		QuadTo(vec.Vec2{X: 5.5, Y: 5}, vec.Vec2{X: 6, Y: 5})
	got := collect(NewFlattening(NewDataIterator(p, EvenOdd, nil), 1))
	want := []segment{
		{MoveTo, []float32{0, 0}},
		{LineTo, []float32{10, 0}},
		{Close, nil},
		{MoveTo, []float32{5, 5}},
		{LineTo, []float32{6, 5}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
}

func TestSegmentCounts(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 50, Y: 100}
	p2 := vec.Vec2{X: 100, Y: 0}
	// deviation |p0-2p1+p2|/4 = 50, sqrt(50/0.5) = 10
	if n := QuadSegments(p0, p1, p2, 0.5); n != 10 {
		t.Errorf("QuadSegments = %d, want 10", n)
	}
	if n := QuadSegments(p0, p0, p0, 0.5); n != 1 {
		t.Errorf("degenerate QuadSegments = %d, want 1", n)
	}
	if n := CubicSegments(p0, p1, p1, p2, 1e-300); n != maxFlattenSegments {
		t.Errorf("CubicSegments = %d, want cap %d", n, maxFlattenSegments)
	}
	nan := vec.Vec2{X: math.NaN(), Y: 0}
	if n := CubicSegments(p0, nan, p1, p2, 1); n != 1 {
		t.Errorf("NaN CubicSegments = %d, want 1", n)
	}
}

func TestSegmentTypeNumPoints(t *testing.T) {
	want := map[SegmentType]int{MoveTo: 1, LineTo: 1, QuadTo: 2, CubicTo: 3, Close: 0}
	for seg, n := range want {
		if got := seg.NumPoints(); got != n {
			t.Errorf("%v.NumPoints() = %d, want %d", seg, got, n)
		}
	}
}
