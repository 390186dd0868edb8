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

// Command export writes the fixture catalogue to JSON or YAML, together
// with the bounds of every fixture and the containment results of the
// different implementations at the probe points.  The output can be
// compared against other geometry libraries.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/fixtures"
	"seehuhn.de/go/shape/pathiter"
)

func main() {
	outFile := flag.String("o", "", "output file (default: standard output)")
	format := flag.String("format", "json", "output format: json or yaml")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	shape.SetLogger(logger)

	if err := run(*outFile, *format); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	logger.Info("export done", "format", *format)
}

func run(outFile, format string) error {
	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export(out, format)
}

type catalogue struct {
	Fixtures []jsonFixture `json:"fixtures" yaml:"fixtures"`
}

type jsonFixture struct {
	Name   string        `json:"name" yaml:"name"`
	Width  int           `json:"width" yaml:"width"`
	Height int           `json:"height" yaml:"height"`
	CTM    [6]float64    `json:"ctm" yaml:"ctm,flow"`
	Rule   string        `json:"fill_rule" yaml:"fill_rule"`
	Path   []jsonSegment `json:"path" yaml:"path"`
	Bounds [4]float32    `json:"bounds" yaml:"bounds,flow"`
	Probes []jsonProbe   `json:"probes" yaml:"probes"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd" yaml:"cmd"`
	Pts [][]float64 `json:"pts" yaml:"pts,flow"`
}

type jsonProbe struct {
	X      float32 `json:"x" yaml:"x"`
	Y      float32 `json:"y" yaml:"y"`
	Inside bool    `json:"inside" yaml:"inside"`

	// containment as reported by the shape and by its curve set
	Shape  bool `json:"shape" yaml:"shape"`
	Curves bool `json:"curves" yaml:"curves"`
}

func export(w io.Writer, format string) error {
	var out catalogue
	for name, f := range fixtures.Sorted() {
		out.Fixtures = append(out.Fixtures, toJSON(name, f))
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func toJSON(name string, f *fixtures.Fixture) jsonFixture {
	b := f.Shape.Bounds()
	jf := jsonFixture{
		Name:   name,
		Width:  f.Width,
		Height: f.Height,
		CTM:    f.Transform(),
		Rule:   f.Rule().String(),
		Path:   pathToJSON(pathiter.ToPath(f.Shape.PathIterator(nil))),
		Bounds: [4]float32{b.MinX(), b.MinY(), b.MaxX(), b.MaxY()},
	}

	curves := shape.CurveSetOf(f.Shape)
	for _, p := range f.Probes {
		jf.Probes = append(jf.Probes, jsonProbe{
			X:      p.X,
			Y:      p.Y,
			Inside: p.Inside,
			Shape:  f.Shape.Contains(p.X, p.Y),
			Curves: curves.Contains(p.X, p.Y),
		})
	}
	return jf
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
