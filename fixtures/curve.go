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

var curveFixtures = []Fixture{
	{
		Name:   "circle",
		Shape:  circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), in(32, 10), out(9, 9), out(32, 60)},
	},
	{
		Name:   "ellipse",
		Shape:  &shape.Ellipse2D{X: 4, Y: 18, W: 56, H: 28}, // stretched circle
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), in(10, 32), out(8, 20), out(32, 50)},
	},
	{
		Name:   "round_rectangle",
		Shape:  &shape.RoundRectangle2D{X: 8, Y: 8, W: 48, H: 48, ArcW: 24, ArcH: 24},
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), in(12, 32), in(14, 14), out(9, 9), out(60, 32)},
	},
	{
		Name:   "cubic",
		Shape:  &shape.CubicCurve2D{X1: 10, Y1: 50, CtrlX1: 20, CtrlY1: 10, CtrlX2: 44, CtrlY2: 10, X2: 54, Y2: 50},
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 40), in(32, 25), out(32, 15), out(32, 55), out(12, 20)},
	},
	{
		Name:   "quadratic",
		Shape:  shape.NewPath2D(pathiter.NonZero).MoveTo(10, 50).QuadTo(32, 10, 54, 50).Close(),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 40), out(32, 25), out(32, 55)},
	},
	{
		Name:   "line",
		Shape:  &shape.Line2D{X1: 8, Y1: 8, X2: 56, Y2: 56}, // encloses no area
		Width:  64,
		Height: 64,
		Probes: []Probe{out(32, 20), out(10, 50)},
	},
}
