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

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/shape/fixtures"
)

func names(c *catalogue) []string {
	var res []string
	for _, f := range c.Fixtures {
		res = append(res, f.Name)
	}
	return res
}

func TestExport(t *testing.T) {
	var want []string
	for name := range fixtures.Sorted() {
		want = append(want, name)
	}

	buf := &bytes.Buffer{}
	if err := export(buf, "json"); err != nil {
		t.Fatal(err)
	}
	var fromJSON catalogue
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, names(&fromJSON)); d != "" {
		t.Errorf("fixture names (-want +got):\n%s", d)
	}

	for _, f := range fromJSON.Fixtures {
		if len(f.Path) == 0 || f.Path[0].Cmd != "M" {
			t.Errorf("%s: path does not start with a move", f.Name)
		}
		for _, p := range f.Probes {
			if p.Shape != p.Inside || p.Curves != p.Inside {
				t.Errorf("%s: probe (%g, %g) inside=%t, shape=%t, curves=%t",
					f.Name, p.X, p.Y, p.Inside, p.Shape, p.Curves)
			}
		}
	}

	buf.Reset()
	if err := export(buf, "yaml"); err != nil {
		t.Fatal(err)
	}
	var fromYAML catalogue
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, names(&fromYAML)); d != "" {
		t.Errorf("YAML fixture names (-want +got):\n%s", d)
	}

	if err := export(buf, "xml"); err == nil {
		t.Error("unknown format accepted")
	}
}
