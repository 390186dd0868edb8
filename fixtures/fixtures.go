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

// Package fixtures provides a catalogue of named shapes for tests and for
// the inspection tools under cmd/.
//
// Every fixture comes with probe points whose containment is known, so
// that the different implementations of the containment tests can be
// checked against each other and against the rasteriser.
package fixtures

import (
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/pathiter"
	"seehuhn.de/go/shape/vecmath"
)

// Fixture is a named test geometry.
type Fixture struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shape  shape.Shape   // the geometry, in shape coordinates
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // shape to canvas coordinates (zero value means identity)
	Probes []Probe       // points with known containment, in shape coordinates
}

// Probe is a point together with its expected containment.
type Probe struct {
	X, Y   float32
	Inside bool
}

// Transform returns the map from shape coordinates to canvas coordinates.
func (f *Fixture) Transform() matrix.Matrix {
	if f.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return f.CTM
}

// Device maps the location of p to device space.
func (f *Fixture) Device(p Probe) vecmath.Vec2d {
	m := f.Transform()
	x, y := float64(p.X), float64(p.Y)
	return vecmath.Vec2d{X: m[0]*x + m[2]*y + m[4], Y: m[1]*x + m[3]*y + m[5]}
}

// Rule returns the winding rule of the fixture's outline.
func (f *Fixture) Rule() pathiter.WindingRule {
	return f.Shape.PathIterator(nil).WindingRule()
}

// All contains all fixtures, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Fixture{
	"fill":      fillFixtures,
	"curve":     curveFixtures,
	"subpath":   subpathFixtures,
	"ctm":       ctmFixtures,
	"precision": precisionFixtures,
	"large":     largeFixtures,
	"complex":   complexFixtures,
}

// Sorted iterates over all fixtures in a deterministic order.  The keys are
// the full fixture names, formed as category + "_" + name.
func Sorted() iter.Seq2[string, *Fixture] {
	return func(yield func(string, *Fixture) bool) {
		for _, category := range slices.Sorted(maps.Keys(All)) {
			list := All[category]
			for i := range list {
				if !yield(category+"_"+list[i].Name, &list[i]) {
					return
				}
			}
		}
	}
}

// in and out are shorthands for writing probe lists.
func in(x, y float32) Probe  { return Probe{X: x, Y: y, Inside: true} }
func out(x, y float32) Probe { return Probe{X: x, Y: y} }

// rectangle returns a closed axis-aligned rectangle.
func rectangle(rule pathiter.WindingRule, x0, y0, x1, y1 float32) *shape.Path2D {
	return shape.NewPath2D(rule).
		MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close()
}

// circle returns the circle with centre (cx, cy) and radius r.
func circle(cx, cy, r float32) *shape.Ellipse2D {
	return &shape.Ellipse2D{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}
