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

package fixtures

import (
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pathiter"
)

var largeFixtures = []Fixture{
	{
		Name:   "diamond",
		Shape:  diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Probes: []Probe{in(256, 256), in(350, 256), out(400, 400), out(100, 100)},
	},
	{
		Name:   "grid",
		Shape:  rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Probes: []Probe{in(32, 32), in(480, 480), out(64, 32), out(64, 64), out(2, 2)},
	},
	{
		Name:   "clipped", // extends beyond the canvas
		Shape:  rectangle(pathiter.NonZero, -100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Probes: []Probe{in(256, 256), in(5, 200), out(256, 450), out(256, 50)},
	},
}

func diamond(cx, cy, r float32) *shape.Path2D {
	return shape.NewPath2D(pathiter.NonZero).
		MoveTo(cx, cy-r).LineTo(cx+r, cy).LineTo(cx, cy+r).LineTo(cx-r, cy).Close()
}

// rectangleGrid builds rows x cols rectangles, separated by gaps of twice
// the given size.
func rectangleGrid(rows, cols, width, height int, gap float32) *shape.Path2D {
	cellW := float32(width) / float32(cols)
	cellH := float32(height) / float32(rows)

	p := shape.NewPath2D(pathiter.NonZero)
	for row := range rows {
		for col := range cols {
			x1 := float32(col)*cellW + gap
			y1 := float32(row)*cellH + gap
			x2 := float32(col+1)*cellW - gap
			y2 := float32(row+1)*cellH - gap
			p.MoveTo(x1, y1).LineTo(x2, y1).LineTo(x2, y2).LineTo(x1, y2).Close()
		}
	}
	return p
}
