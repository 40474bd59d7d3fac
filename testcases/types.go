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

package testcases

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac"
	"seehuhn.de/go/vac/curve"
)

// Case defines a scene together with an operation to apply to it.
type Case struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width, in scene units
	Height int    // canvas height, in scene units
	Build  func(b *Builder)
	Op     Operation
	Want   Counts // the expected state after Op
}

// New builds a fresh copy of the scene of the test case.
func (tc Case) New() (*Scene, error) {
	b := &Builder{
		c:     vac.NewComplex(),
		cells: make(map[string]vac.Cell),
	}
	tc.Build(b)
	if b.err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, b.err)
	}
	return &Scene{Complex: b.c, cells: b.cells}, nil
}

// Counts summarizes the cells of a scene.
type Counts struct {
	Vertices  int // key vertices
	Edges     int // key edges
	Faces     int // key faces
	Inbetween int // inbetween cells of all dimensions

	// Area is the total area of all face fill meshes.
	Area float64

	// Rejected is set if the operation refused to change the scene.
	Rejected bool
}

// Scene is a complex whose cells are known by name.
type Scene struct {
	Complex *vac.Complex
	cells   map[string]vac.Cell
}

// Cell returns the cell with the given name, or nil if the name is unknown
// or the cell has been destroyed.
func (s *Scene) Cell(name string) vac.Cell {
	cell := s.cells[name]
	if cell == nil || s.Complex.FindCell(cell.ID()) == nil {
		return nil
	}
	return cell
}

// Names returns the names of all cells of the scene which are still alive,
// in alphabetical order.
func (s *Scene) Names() []string {
	return slices.DeleteFunc(slices.Sorted(maps.Keys(s.cells)), func(name string) bool {
		return s.Cell(name) == nil
	})
}

// Name returns the name of a cell.  Cells created by an operation have
// no name and are identified by their ID instead.
func (s *Scene) Name(cell vac.Cell) string {
	for name, c := range s.cells {
		if c == cell {
			return name
		}
	}
	return fmt.Sprintf("#%d", cell.ID())
}

// Count returns the number of cells of each kind.
func (s *Scene) Count() Counts {
	var res Counts
	for _, cell := range s.Complex.Cells() {
		switch x := cell.(type) {
		case *vac.KeyVertex:
			res.Vertices++
		case *vac.KeyEdge:
			res.Edges++
		case *vac.KeyFace:
			res.Faces++
			if m := x.FillMesh(); m != nil {
				res.Area += curve.TriangleArea(m.Triangles)
			}
		default:
			res.Inbetween++
		}
	}
	return res
}

// ErrRejected is returned when an uncut operation cannot be applied.
var ErrRejected = errors.New("operation rejected")

// Operation is a structural change applied to a scene.
type Operation interface {
	Apply(s *Scene) error
	String() string
}

// HardDelete deletes the named cells with vac.Complex.HardDelete.
type HardDelete struct {
	Cells                  []string
	DeleteIsolatedVertices bool
}

// Apply hard-deletes the named cells of s.
func (op HardDelete) Apply(s *Scene) error {
	nodes, err := s.nodes(op.Cells)
	if err != nil {
		return err
	}
	return s.Complex.HardDelete(nodes, op.DeleteIsolatedVertices)
}

// String describes the operation for test output.
func (op HardDelete) String() string {
	return "hard delete " + strings.Join(op.Cells, " ")
}

// SoftDelete deletes the named cells with vac.Complex.SoftDelete.
type SoftDelete struct {
	Cells                  []string
	DeleteIsolatedVertices bool
}

// Apply soft-deletes the named cells of s.
func (op SoftDelete) Apply(s *Scene) error {
	nodes, err := s.nodes(op.Cells)
	if err != nil {
		return err
	}
	return s.Complex.SoftDelete(nodes, op.DeleteIsolatedVertices)
}

// String describes the operation for test output.
func (op SoftDelete) String() string {
	return "soft delete " + strings.Join(op.Cells, " ")
}

// UncutVertex removes the named key vertex with
// vac.Complex.UncutAtKeyVertex.
type UncutVertex struct {
	Cell       string
	SmoothJoin bool
}

// Apply uncuts s at the named vertex.  It returns ErrRejected if the
// vertex cannot be uncut.
func (op UncutVertex) Apply(s *Scene) error {
	v, ok := s.Cell(op.Cell).(*vac.KeyVertex)
	if !ok {
		return fmt.Errorf("%q is not a key vertex", op.Cell)
	}
	if !s.Complex.UncutAtKeyVertex(v, op.SmoothJoin).Success {
		return ErrRejected
	}
	return nil
}

// String describes the operation for test output.
func (op UncutVertex) String() string {
	return "uncut at vertex " + op.Cell
}

// UncutEdge removes the named key edge with vac.Complex.UncutAtKeyEdge.
type UncutEdge struct {
	Cell string
}

// Apply uncuts s at the named edge.  It returns ErrRejected if the edge
// cannot be uncut.
func (op UncutEdge) Apply(s *Scene) error {
	e, ok := s.Cell(op.Cell).(*vac.KeyEdge)
	if !ok {
		return fmt.Errorf("%q is not a key edge", op.Cell)
	}
	if !s.Complex.UncutAtKeyEdge(e).Success {
		return ErrRejected
	}
	return nil
}

// String describes the operation for test output.
func (op UncutEdge) String() string {
	return "uncut at edge " + op.Cell
}

func (s *Scene) nodes(names []string) ([]vac.Node, error) {
	res := make([]vac.Node, len(names))
	for i, name := range names {
		cell := s.Cell(name)
		if cell == nil {
			return nil, fmt.Errorf("unknown cell %q", name)
		}
		res[i] = cell
	}
	return res, nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
