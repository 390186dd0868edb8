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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape/pathiter"
)

var precisionFixtures = []Fixture{
	{
		Name:   "subpixel_offset_25",
		Shape:  rectangle(pathiter.NonZero, 20.25, 20.25, 44.25, 44.25),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), out(18, 32)},
	},
	{
		Name:   "subpixel_offset_50",
		Shape:  rectangle(pathiter.NonZero, 20.5, 20.5, 44.5, 44.5),
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 32), out(18, 32)},
	},
	{
		Name:   "thin_sliver",
		Shape:  rectangle(pathiter.NonZero, 4, 30, 60, 30.5), // half a pixel high
		Width:  64,
		Height: 64,
		Probes: []Probe{in(32, 30.25), out(32, 32), out(2, 30.25)},
	},
	{
		// float32 has a resolution of 1/16 at this offset
		Name:   "large_coordinates",
		Shape:  rectangle(pathiter.NonZero, 1e6, 1e6, 1e6+40, 1e6+40),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, 1, -1e6 + 12, -1e6 + 12},
		Probes: []Probe{in(1e6+20, 1e6+20), out(1e6+50, 1e6+20)},
	},
}
