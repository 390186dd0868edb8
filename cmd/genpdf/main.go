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

// Command genpdf draws every fixture into its own PDF file, for visual
// inspection.  Inside probes are marked by filled squares, outside probes
// by outlined squares.  Optionally, the PDF files are rendered to PNG
// images using Ghostscript.
//
// Settings are read from an optional TOML file:
//
//	output_dir = "testdata/fixtures"
//	scale = 4.0
//	categories = ["curve", "subpath"]
//	render_png = false
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/fixtures"
	"seehuhn.de/go/shape/pathiter"
)

type config struct {
	OutputDir  string   `toml:"output_dir"`
	Scale      float64  `toml:"scale"`
	Categories []string `toml:"categories"`
	RenderPNG  bool     `toml:"render_png"`
}

func defaultConfig() *config {
	return &config{
		OutputDir: "testdata/fixtures",
		Scale:     4,
	}
}

// loadConfig reads the settings from fname.  A missing file leaves the
// defaults unchanged.
func loadConfig(fname string) (*config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if !(cfg.Scale > 0) {
		return nil, fmt.Errorf("%s: invalid scale %g", fname, cfg.Scale)
	}
	return cfg, nil
}

// selected reports whether the fixture with the given full name belongs
// to one of the configured categories.
func (cfg *config) selected(name string) bool {
	if len(cfg.Categories) == 0 {
		return true
	}
	category, _, _ := strings.Cut(name, "_")
	return slices.Contains(cfg.Categories, category)
}

func main() {
	configFile := flag.String("config", "genpdf.toml", "configuration file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	shape.SetLogger(logger)

	cfg, err := loadConfig(*configFile)
	if err == nil {
		err = run(cfg, logger)
	}
	if err != nil {
		logger.Error("genpdf failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	count := 0
	for name, f := range fixtures.Sorted() {
		if !cfg.selected(name) {
			continue
		}
		pdfPath := filepath.Join(cfg.OutputDir, name+".pdf")
		if err := generatePDF(f, pdfPath, cfg.Scale); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("wrote fixture", "name", name, "file", pdfPath)

		if cfg.RenderPNG {
			pngPath := filepath.Join(cfg.OutputDir, name+".png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		count++
	}
	logger.Info("done", "fixtures", count, "dir", cfg.OutputDir)
	return nil
}

func generatePDF(f *fixtures.Fixture, pdfPath string, scale float64) error {
	w := float64(f.Width)
	h := float64(f.Height)
	paper := &pdf.Rectangle{URx: w * scale, URy: h * scale}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Canvas coordinates have the origin at the top left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h * scale})

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF has no quadratic segments.
	tx := f.Transform()
	outline := pathiter.ToData(f.Shape.PathIterator(&tx))
	page.SetFillColor(color.DeviceGray(0.7))
	for cmd, pts := range outline.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if f.Rule() == pathiter.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	const r = 0.75
	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.25)
	for _, p := range f.Probes {
		x, y := float64(p.X), float64(p.Y)
		cx := tx[0]*x + tx[2]*y + tx[4]
		cy := tx[1]*x + tx[3]*y + tx[5]
		page.Rectangle(cx-r, cy-r, 2*r, 2*r)
		if p.Inside {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	return page.Close()
}

// renderPNG uses one pixel per PDF point.
func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
