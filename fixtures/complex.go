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

var complexFixtures = []Fixture{
	{
		Name:   "mixed_lines_curves",
		Shape:  mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 40), in(32, 25), in(32, 55), out(32, 15), out(32, 60), out(5, 30)},
	},
	{
		Name:   "mixed_curveset",
		Shape:  shape.CurveSetOf(mixedLinesCurves()),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 40), in(32, 25), in(32, 55), out(32, 15), out(32, 60), out(5, 30)},
	},
}

// mixedLinesCurves combines all segment types in one closed outline.
func mixedLinesCurves() *shape.Path2D {
	return shape.NewPath2D(pathiter.NonZero).
		MoveTo(10, 50).
		LineTo(20, 30).
		QuadTo(32, 10, 44, 30).
		LineTo(54, 50).
		CubeTo(48, 60, 16, 60, 10, 50).
		Close()
}
