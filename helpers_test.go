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

package vac

import (
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac/curve"
)

// builder creates cells and fails the test on any error.
type builder struct {
	t testing.TB
	c *Complex
}

func newBuilder(t testing.TB) *builder {
	t.Helper()
	return &builder{t: t, c: NewComplex()}
}

func (b *builder) vertex(x, y float64) *KeyVertex {
	b.t.Helper()
	v, err := b.c.CreateKeyVertex(vec.Vec2{X: x, Y: y}, Placement{})
	if err != nil {
		b.t.Fatal(err)
	}
	return v
}

// edge creates a straight edge between two vertices.
func (b *builder) edge(start, end *KeyVertex) *KeyEdge {
	b.t.Helper()
	e, err := b.c.CreateKeyOpenEdge(start, end, curve.Stroke{}, Placement{})
	if err != nil {
		b.t.Fatal(err)
	}
	return e
}

// path creates an edge through the given intermediate points.
func (b *builder) path(start, end *KeyVertex, via ...vec.Vec2) *KeyEdge {
	b.t.Helper()
	pts := append([]vec.Vec2{start.pos}, via...)
	pts = append(pts, end.pos)
	e, err := b.c.CreateKeyOpenEdge(start, end, curve.Polyline(DefaultEdgeWidth, pts...), Placement{})
	if err != nil {
		b.t.Fatal(err)
	}
	return e
}

func (b *builder) face(cycles ...KeyCycle) *KeyFace {
	b.t.Helper()
	f, err := b.c.CreateKeyFace(cycles, Placement{})
	if err != nil {
		b.t.Fatal(err)
	}
	return f
}

func (b *builder) check() {
	b.t.Helper()
	if err := b.c.Check(); err != nil {
		b.t.Fatal(err)
	}
}

func fwd(e *KeyEdge) KeyHalfedge { return KeyHalfedge{edge: e, direction: true} }
func rev(e *KeyEdge) KeyHalfedge { return KeyHalfedge{edge: e, direction: false} }

// square is the 10x10 square with corners a, b, c, d in counter-clockwise
// order, as a single face.
type square struct {
	a, b, c, d     *KeyVertex
	ab, bc, cd, da *KeyEdge
	f              *KeyFace
}

func (b *builder) square(x, y, size float64) *square {
	b.t.Helper()
	s := b.squareEdges(x, y, size)
	s.f = b.face(s.cycle())
	return s
}

// squareEdges is like square but does not create the face.
func (b *builder) squareEdges(x, y, size float64) *square {
	b.t.Helper()
	s := &square{
		a: b.vertex(x, y),
		b: b.vertex(x+size, y),
		c: b.vertex(x+size, y+size),
		d: b.vertex(x, y+size),
	}
	s.ab = b.edge(s.a, s.b)
	s.bc = b.edge(s.b, s.c)
	s.cd = b.edge(s.c, s.d)
	s.da = b.edge(s.d, s.a)
	return s
}

func (s *square) cycle() KeyCycle {
	return NewKeyCycle(fwd(s.ab), fwd(s.bc), fwd(s.cd), fwd(s.da))
}

// record collects the diffs reported by a complex.
type record struct {
	diffs []Diff
}

func (r *record) observe(c *Complex) (cancel func()) {
	return c.Observe(func(d Diff) { r.diffs = append(r.diffs, d) })
}

func (r *record) flags(id ID) ModifiedFlags {
	var res ModifiedFlags
	for _, d := range r.diffs {
		for _, m := range d.Modified {
			if m.ID == id {
				res |= m.Flags
			}
		}
	}
	return res
}

func (r *record) destroyed(id ID) bool {
	for _, d := range r.diffs {
		for _, x := range d.Destroyed {
			if x == id {
				return true
			}
		}
	}
	return false
}

func meshArea(f *KeyFace) float64 {
	m := f.FillMesh()
	if m == nil {
		return 0
	}
	return curve.TriangleArea(m.Triangles)
}

func alive(nodes ...Node) bool {
	for _, n := range nodes {
		if !n.node().alive() {
			return false
		}
	}
	return true
}

func dead(nodes ...Node) bool {
	for _, n := range nodes {
		if n.node().alive() {
			return false
		}
	}
	return true
}
