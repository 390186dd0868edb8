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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DataIterator walks a seehuhn.de/go/geom path.
//
// The command and coordinate slices are copied when the iterator is
// created.  Changing the path afterwards does not affect the iterator.
type DataIterator struct {
	cmds   []path.Command
	coords []vec.Vec2
	rule   WindingRule
	tx     *matrix.Matrix

	cmdIdx   int
	coordIdx int
}

// NewDataIterator returns an iterator over p.
func NewDataIterator(p *path.Data, rule WindingRule, tx *matrix.Matrix) *DataIterator {
	it := &DataIterator{rule: rule}
	if p != nil {
		it.cmds = slices.Clone(p.Cmds)
		it.coords = slices.Clone(p.Coords)
	}
	if tx != nil {
		m := *tx
		it.tx = &m
	}
	return it
}

// WindingRule implements the [Iterator] interface.
func (it *DataIterator) WindingRule() WindingRule { return it.rule }

// IsDone implements the [Iterator] interface.
func (it *DataIterator) IsDone() bool { return it.cmdIdx >= len(it.cmds) }

// Next implements the [Iterator] interface.
func (it *DataIterator) Next() {
	if it.IsDone() {
		return
	}
	it.coordIdx += commandPoints(it.cmds[it.cmdIdx])
	it.cmdIdx++
}

// CurrentSegment implements the [Iterator] interface.
func (it *DataIterator) CurrentSegment(coords []float32) SegmentType {
	if it.IsDone() {
		panic(ErrExhausted)
	}
	cmd := it.cmds[it.cmdIdx]
	n := commandPoints(cmd)
	for i, p := range it.coords[it.coordIdx : it.coordIdx+n] {
		coords[2*i] = float32(p.X)
		coords[2*i+1] = float32(p.Y)
	}
	transform(it.tx, coords, n)
	return segmentType(cmd)
}

func commandPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

func segmentType(cmd path.Command) SegmentType {
	switch cmd {
	case path.CmdMoveTo:
		return MoveTo
	case path.CmdLineTo:
		return LineTo
	case path.CmdQuadTo:
		return QuadTo
	case path.CmdCubeTo:
		return CubicTo
	default:
		return Close
	}
}

func command(t SegmentType) path.Command {
	switch t {
	case MoveTo:
		return path.CmdMoveTo
	case LineTo:
		return path.CmdLineTo
	case QuadTo:
		return path.CmdQuadTo
	case CubicTo:
		return path.CmdCubeTo
	default:
		return path.CmdClose
	}
}

// ToPath returns a seehuhn.de/go/geom path which consumes it.
// Since iterators are single use, the returned path can be ranged over
// only once.
func ToPath(it Iterator) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var coords [MaxCoords]float32
		var pts [3]vec.Vec2
		for ; !it.IsDone(); it.Next() {
			t := it.CurrentSegment(coords[:])
			n := t.NumPoints()
			for i := range n {
				pts[i] = vec.Vec2{X: float64(coords[2*i]), Y: float64(coords[2*i+1])}
			}
			if !yield(command(t), pts[:n]) {
				return
			}
		}
	}
}

// ToData reads all remaining segments of it into a new path.
func ToData(it Iterator) *path.Data {
	p := &path.Data{}
	for cmd, pts := range ToPath(it) {
		p.Cmds = append(p.Cmds, cmd)
		p.Coords = append(p.Coords, pts...)
	}
	return p
}

// Transformed wraps it so that every coordinate is mapped through tx.
func Transformed(it Iterator, tx matrix.Matrix) Iterator {
	if tx == matrix.Identity {
		return it
	}
	return &transformed{Iterator: it, tx: tx}
}

type transformed struct {
	Iterator
	tx matrix.Matrix
}

func (t *transformed) CurrentSegment(coords []float32) SegmentType {
	seg := t.Iterator.CurrentSegment(coords)
	transform(&t.tx, coords, seg.NumPoints())
	return seg
}
