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

// Command export writes the scenes of all test cases, before and after
// their operation, to testdata/scenes.json.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/vac"
	"seehuhn.de/go/vac/curve"
	"seehuhn.de/go/vac/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string    `json:"name"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Op       string    `json:"op"`
	Rejected bool      `json:"rejected,omitempty"`
	Before   jsonScene `json:"before"`
	After    jsonScene `json:"after"`
}

type jsonScene struct {
	Vertices []jsonVertex `json:"vertices,omitempty"`
	Edges    []jsonEdge   `json:"edges,omitempty"`
	Faces    []jsonFace   `json:"faces,omitempty"`
}

type jsonVertex struct {
	Name string    `json:"name"`
	Pos  []float64 `json:"pos"`
}

type jsonEdge struct {
	Name   string      `json:"name"`
	Start  string      `json:"start,omitempty"`
	End    string      `json:"end,omitempty"`
	Width  float64     `json:"width"`
	Points [][]float64 `json:"points"`
}

type jsonFace struct {
	Name     string     `json:"name"`
	FillRule string     `json:"fill_rule"`
	Cycles   [][]string `json:"cycles"`
	Area     float64    `json:"area"`
}

func toJSON(category string, tc testcases.Case) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Op:     tc.Op.String(),
	}

	s, err := tc.New()
	if err != nil {
		return jtc, err
	}
	jtc.Before = sceneToJSON(s)
	err = tc.Op.Apply(s)
	if errors.Is(err, testcases.ErrRejected) {
		jtc.Rejected = true
	} else if err != nil {
		return jtc, fmt.Errorf("%s: %w", jtc.Name, err)
	}
	jtc.After = sceneToJSON(s)
	return jtc, nil
}

func sceneToJSON(s *testcases.Scene) jsonScene {
	var js jsonScene
	for _, cell := range s.Complex.Cells() {
		switch x := cell.(type) {
		case *vac.KeyVertex:
			p := x.Position()
			js.Vertices = append(js.Vertices, jsonVertex{
				Name: s.Name(x),
				Pos:  []float64{p.X, p.Y},
			})
		case *vac.KeyEdge:
			je := jsonEdge{
				Name:  s.Name(x),
				Width: x.Stroke().Width,
			}
			if !x.IsClosed() {
				je.Start = s.Name(x.StartVertex())
				je.End = s.Name(x.EndVertex())
			}
			for _, sample := range x.Samples() {
				je.Points = append(je.Points, []float64{sample.Pos.X, sample.Pos.Y})
			}
			js.Edges = append(js.Edges, je)
		case *vac.KeyFace:
			jf := jsonFace{
				Name:     s.Name(x),
				FillRule: x.WindingRule().String(),
			}
			for _, cyc := range x.Cycles() {
				jf.Cycles = append(jf.Cycles, cycleToJSON(s, cyc))
			}
			if m := x.FillMesh(); m != nil {
				jf.Area = curve.TriangleArea(m.Triangles)
			}
			js.Faces = append(js.Faces, jf)
		}
	}
	return js
}

// cycleToJSON uses the notation of testcases.Builder.Face.
func cycleToJSON(s *testcases.Scene, cyc vac.KeyCycle) []string {
	if v := cyc.SteinerVertex(); v != nil {
		return []string{"@" + s.Name(v)}
	}
	var res []string
	for _, h := range cyc.Halfedges() {
		name := s.Name(h.Edge())
		if !h.Direction() {
			name = "-" + name
		}
		res = append(res, name)
	}
	return res
}
