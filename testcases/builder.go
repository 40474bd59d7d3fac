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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac"
	"seehuhn.de/go/vac/curve"
)

// Builder creates the named cells of a scene.  After the first error all
// further calls are ignored; the error is reported by Case.New.
type Builder struct {
	c     *vac.Complex
	cells map[string]vac.Cell
	err   error
}

// Vertex adds a key vertex.
func (b *Builder) Vertex(name string, x, y float64) {
	if b.err != nil {
		return
	}
	v, err := b.c.CreateKeyVertex(pt(x, y), vac.Placement{})
	b.add(name, v, err)
}

// Edge adds an open key edge between two named vertices, passing through
// the given points.
func (b *Builder) Edge(name, from, to string, via ...vec.Vec2) {
	start, end := b.vertex(from), b.vertex(to)
	if b.err != nil {
		return
	}
	pts := append([]vec.Vec2{start.Position()}, via...)
	pts = append(pts, end.Position())
	e, err := b.c.CreateKeyOpenEdge(start, end, curve.Polyline(vac.DefaultEdgeWidth, pts...), vac.Placement{})
	b.add(name, e, err)
}

// ClosedEdge adds a closed key edge through the given points.
func (b *Builder) ClosedEdge(name string, pts ...vec.Vec2) {
	if b.err != nil {
		return
	}
	pts = append(pts, pts[0])
	e, err := b.c.CreateKeyClosedEdge(curve.Polyline(vac.DefaultEdgeWidth, pts...), vac.Placement{})
	b.add(name, e, err)
}

// Face adds a key face.  Each cycle is a list of halfedges given by edge
// name; a leading "-" reverses the halfedge.  A cycle consisting of a
// single entry "@v" is the Steiner cycle of vertex v.
func (b *Builder) Face(name string, cycles ...[]string) {
	if b.err != nil {
		return
	}
	var kcs []vac.KeyCycle
	for _, names := range cycles {
		if len(names) == 1 && strings.HasPrefix(names[0], "@") {
			v := b.vertex(names[0][1:])
			kcs = append(kcs, vac.NewSteinerCycle(v))
			continue
		}
		hs := make([]vac.KeyHalfedge, len(names))
		for i, h := range names {
			e, dir := strings.CutPrefix(h, "-")
			hs[i] = vac.NewKeyHalfedge(b.edge(e), !dir)
		}
		kcs = append(kcs, vac.NewKeyCycle(hs...))
	}
	if b.err != nil {
		return
	}
	f, err := b.c.CreateKeyFace(kcs, vac.Placement{})
	b.add(name, f, err)
}

// InbetweenVertex adds an inbetween vertex between two named key
// vertices.
func (b *Builder) InbetweenVertex(name, before, after string) {
	v0, v1 := b.vertex(before), b.vertex(after)
	if b.err != nil {
		return
	}
	v, err := b.c.CreateInbetweenVertex(v0, v1, vac.Placement{})
	b.add(name, v, err)
}

// Square adds the four vertices and edges of an axis-parallel square,
// named by the given letters in counter-clockwise order starting at the
// lower left corner.  The edges are named by pairs of letters, e.g. "ab".
func (b *Builder) Square(names string, x, y, size float64) {
	if len(names) != 4 {
		b.fail(fmt.Errorf("square needs four names, got %q", names))
		return
	}
	corners := []vec.Vec2{pt(x, y), pt(x+size, y), pt(x+size, y+size), pt(x, y+size)}
	for i, p := range corners {
		b.Vertex(names[i:i+1], p.X, p.Y)
	}
	for i := range 4 {
		from, to := names[i:i+1], names[(i+1)%4:(i+1)%4+1]
		b.Edge(from+to, from, to)
	}
}

// SquareCycle returns the cycle around a square added by Square.
func SquareCycle(names string) []string {
	res := make([]string, 4)
	for i := range 4 {
		res[i] = names[i:i+1] + names[(i+1)%4:(i+1)%4+1]
	}
	return res
}

func (b *Builder) vertex(name string) *vac.KeyVertex {
	v, ok := b.cells[name].(*vac.KeyVertex)
	if !ok {
		b.fail(fmt.Errorf("no key vertex %q", name))
	}
	return v
}

func (b *Builder) edge(name string) *vac.KeyEdge {
	e, ok := b.cells[name].(*vac.KeyEdge)
	if !ok {
		b.fail(fmt.Errorf("no key edge %q", name))
	}
	return e
}

func (b *Builder) add(name string, cell vac.Cell, err error) {
	switch {
	case err != nil:
		b.fail(fmt.Errorf("%s: %w", name, err))
	case b.cells[name] != nil:
		b.fail(fmt.Errorf("duplicate cell name %q", name))
	default:
		b.cells[name] = cell
	}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
