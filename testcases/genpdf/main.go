// seehuhn.de/go/vac - topological cell complexes for vector graphics
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

// Command genpdf draws every test case before and after its operation.
// It writes one PDF per scene and renders it to PNG using Ghostscript.
package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/vac"
	"seehuhn.de/go/vac/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.Case, name string) error {
	s, err := tc.New()
	if err != nil {
		return err
	}
	if err := draw(tc, s, name+"_before"); err != nil {
		return err
	}
	err = tc.Op.Apply(s)
	if err != nil && !errors.Is(err, testcases.ErrRejected) {
		return err
	}
	return draw(tc, s, name+"_after")
}

func draw(tc testcases.Case, s *testcases.Scene, name string) error {
	pdfPath := filepath.Join(refDir, name+".pdf")
	pngPath := filepath.Join(refDir, name+".png")
	if err := generatePDF(tc, s, pdfPath); err != nil {
		return err
	}
	return renderPNG(pdfPath, pngPath)
}

func generatePDF(tc testcases.Case, s *testcases.Scene, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	polygon := func(pts []vec.Vec2) {
		for i, p := range pts {
			if i == 0 {
				page.MoveTo(p.X, p.Y)
			} else {
				page.LineTo(p.X, p.Y)
			}
		}
		page.ClosePath()
	}

	cells := s.Complex.Cells()

	// Faces are drawn as their fill mesh, below all edges.
	page.SetFillColor(color.DeviceGray(0.7))
	for _, cell := range cells {
		f, ok := cell.(*vac.KeyFace)
		if !ok {
			continue
		}
		m := f.FillMesh()
		if m == nil || len(m.Triangles) == 0 {
			continue
		}
		for i := 0; i+2 < len(m.Triangles); i += 3 {
			polygon(m.Triangles[i : i+3])
		}
		page.Fill()
	}

	page.SetFillColor(color.DeviceGray(0))
	for _, cell := range cells {
		e, ok := cell.(*vac.KeyEdge)
		if !ok {
			continue
		}
		outline := e.Outline()
		if len(outline) == 0 {
			continue
		}
		for _, poly := range outline {
			polygon(poly)
		}
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
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
