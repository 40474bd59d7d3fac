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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac/curve"
)

// snapshot captures the topology of a complex for comparison.
func snapshot(c *Complex) map[ID][2][]ID {
	res := make(map[ID][2][]ID)
	for _, cell := range c.Cells() {
		cb := cell.cell()
		res[cb.id] = [2][]ID{slices.Clone(cb.boundary), slices.Clone(cb.star)}
	}
	return res
}

func sameSnapshot(a, b map[ID][2][]ID) bool {
	if len(a) != len(b) {
		return false
	}
	for id, x := range a {
		y, ok := b[id]
		if !ok || !slices.Equal(x[0], y[0]) || !slices.Equal(x[1], y[1]) {
			return false
		}
	}
	return true
}

// squareWithDiagonal splits the square into the triangles abc and acd.
func squareWithDiagonal(b *builder) (s *square, ac *KeyEdge, f1, f2 *KeyFace) {
	s = b.squareEdges(0, 0, 10)
	ac = b.edge(s.a, s.c)
	f1 = b.face(NewKeyCycle(fwd(s.ab), fwd(s.bc), rev(ac)))
	f2 = b.face(NewKeyCycle(fwd(ac), fwd(s.cd), fwd(s.da)))
	return s, ac, f1, f2
}

func TestUncutAtKeyEdgeMergesFaces(t *testing.T) {
	b := newBuilder(t)
	s, ac, f1, f2 := squareWithDiagonal(b)
	if err := b.c.SetFaceProperty(f1, "fill", "red"); err != nil {
		t.Fatal(err)
	}
	if err := b.c.SetFaceProperty(f2, "fill", "blue"); err != nil {
		t.Fatal(err)
	}
	if err := b.c.SetFaceProperty(f2, "stroke", "black"); err != nil {
		t.Fatal(err)
	}

	res := b.c.UncutAtKeyEdge(ac)
	if !res.Success {
		t.Fatal("uncut failed")
	}
	b.check()

	f := res.Face
	if !dead(ac, f1, f2) || !alive(f) {
		t.Fatal("wrong cells destroyed")
	}
	want := NewKeyCycle(fwd(s.ab), fwd(s.bc), fwd(s.cd), fwd(s.da))
	if f.NumCycles() != 1 || !f.cycles[0].Equal(want) {
		t.Errorf("got cycles %v", f.cycles)
	}
	if a := meshArea(f); math.Abs(a-100) > 1e-6 {
		t.Errorf("got area %g, want 100", a)
	}
	if v, _ := f.Property("fill"); v != "red" {
		t.Errorf("fill: got %q, want %q", v, "red")
	}
	if v, _ := f.Property("stroke"); v != "black" {
		t.Errorf("stroke: got %q, want %q", v, "black")
	}

	// The new face takes the place of f1, below all other children.
	children := b.c.Root().Children()
	if i := slices.Index(children, Node(f)); i != len(children)-1 {
		t.Errorf("new face at index %d of %d", i, len(children))
	}
}

func TestUncutAtKeyEdgeRejects(t *testing.T) {
	b := newBuilder(t)
	s := b.square(0, 0, 10)
	lone := b.edge(b.vertex(20, 0), b.vertex(30, 0))

	for _, e := range []*KeyEdge{s.ab, lone} {
		before := snapshot(b.c)
		n := b.c.NumNodes()
		if res := b.c.UncutAtKeyEdge(e); res.Success {
			t.Errorf("uncut at edge %d succeeded", e.id)
		}
		if b.c.NumNodes() != n || !sameSnapshot(before, snapshot(b.c)) {
			t.Error("failed uncut modified the complex")
		}
	}
}

func TestUncutAtKeyEdgeDangling(t *testing.T) {
	b := newBuilder(t)
	s := b.squareEdges(0, 0, 10)
	p := b.vertex(5, 5)
	bp := b.edge(s.b, p)
	f := b.face(NewKeyCycle(fwd(s.ab), fwd(bp), rev(bp), fwd(s.bc), fwd(s.cd), fwd(s.da)))

	res := b.c.UncutAtKeyEdge(bp)
	if !res.Success || res.Face != f {
		t.Fatal("uncut failed")
	}
	b.check()
	if f.NumCycles() != 2 {
		t.Fatalf("got %d cycles, want 2", f.NumCycles())
	}
	if f.cycles[0].SteinerVertex() != p {
		t.Errorf("first cycle should be the Steiner vertex p")
	}
	if f.cycles[1].NumHalfedges() != 4 || !f.cycles[1].IsValid() {
		t.Errorf("second cycle should be the square")
	}
	if a := meshArea(f); math.Abs(a-100) > 1e-6 {
		t.Errorf("got area %g, want 100", a)
	}
}

func TestUncutAtKeyEdgeHole(t *testing.T) {
	// A face whose outer boundary and hole are joined by a bridge edge
	// used twice in opposite directions.
	b := newBuilder(t)
	outer := b.squareEdges(0, 0, 10)
	inner := b.squareEdges(3, 3, 4)
	bridge := b.edge(outer.a, inner.a)
	innerCW := inner.cycle().Reversed().halfedges
	hs := []KeyHalfedge{fwd(bridge)}
	hs = append(hs, innerCW...)
	hs = append(hs, rev(bridge))
	hs = append(hs, outer.cycle().halfedges...)
	f := b.face(NewKeyCycle(hs...))
	if a := meshArea(f); math.Abs(a-84) > 1e-3 {
		t.Fatalf("got area %g, want 84", a)
	}

	res := b.c.UncutAtKeyEdge(bridge)
	if !res.Success {
		t.Fatal("uncut failed")
	}
	b.check()
	if f.NumCycles() != 2 {
		t.Fatalf("got %d cycles, want 2", f.NumCycles())
	}
	if a := meshArea(f); math.Abs(a-84) > 1e-3 {
		t.Errorf("got area %g, want 84", a)
	}
}

func TestUncutAtKeyEdgeSameDirection(t *testing.T) {
	// Two triangles of opposite orientation, both walking along uv from u
	// to v.
	b := newBuilder(t)
	u := b.vertex(0, 0)
	v := b.vertex(0, 10)
	l := b.vertex(-10, 5)
	r := b.vertex(10, 5)
	uv := b.edge(u, v)
	vl := b.edge(v, l)
	lu := b.edge(l, u)
	ur := b.edge(u, r)
	rv := b.edge(r, v)
	f1 := b.face(NewKeyCycle(fwd(uv), fwd(vl), fwd(lu)))
	f2 := b.face(NewKeyCycle(fwd(uv), rev(rv), rev(ur)))

	res := b.c.UncutAtKeyEdge(uv)
	if !res.Success {
		t.Fatal("uncut failed")
	}
	b.check()
	f := res.Face
	if !dead(f1, f2, uv) {
		t.Error("old cells not destroyed")
	}
	want := NewKeyCycle(fwd(vl), fwd(lu), fwd(ur), fwd(rv))
	if f.NumCycles() != 1 || !f.cycles[0].Equal(want) {
		t.Errorf("got cycles %v", f.cycles)
	}
	if a := meshArea(f); math.Abs(a-100) > 1e-6 {
		t.Errorf("got area %g, want 100", a)
	}
}

func TestUncutAtKeyEdgeClosed(t *testing.T) {
	b := newBuilder(t)
	sq := b.squareEdges(0, 0, 10)
	circle, err := b.c.CreateKeyClosedEdge(curve.Polyline(1,
		vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 7, Y: 3}, vec.Vec2{X: 7, Y: 7}, vec.Vec2{X: 3, Y: 7}, vec.Vec2{X: 3, Y: 3}),
		Placement{})
	if err != nil {
		t.Fatal(err)
	}
	disk := b.face(NewKeyCycle(fwd(circle)))
	ring := b.face(sq.cycle(), NewKeyCycle(rev(circle)))

	res := b.c.UncutAtKeyEdge(circle)
	if !res.Success {
		t.Fatal("uncut failed")
	}
	b.check()
	if !dead(disk, ring, circle) {
		t.Error("old cells not destroyed")
	}
	f := res.Face
	if f.NumCycles() != 1 || !f.cycles[0].Equal(sq.cycle()) {
		t.Errorf("got cycles %v", f.cycles)
	}
	if a := meshArea(f); math.Abs(a-100) > 1e-6 {
		t.Errorf("got area %g, want 100", a)
	}
}

func TestUncutAtKeyVertexConcat(t *testing.T) {
	b := newBuilder(t)
	a := b.vertex(0, 0)
	m := b.vertex(10, 0)
	c := b.vertex(10, 10)
	am := b.edge(a, m)
	mc := b.edge(m, c)
	if err := b.c.SetEdgeLineStyle(am, 0, 0); err != nil {
		t.Fatal(err)
	}

	res := b.c.UncutAtKeyVertex(m, false)
	if !res.Success || res.Edge == nil {
		t.Fatal("uncut failed")
	}
	b.check()
	e := res.Edge
	if !dead(m, am, mc) {
		t.Error("old cells not destroyed")
	}
	if e.StartVertex() != a || e.EndVertex() != c {
		t.Errorf("new edge runs from %v to %v", e.StartVertex(), e.EndVertex())
	}
	if l := curve.Length(e.Samples()); math.Abs(l-20) > 1e-6 {
		t.Errorf("got length %g, want 20", l)
	}
	if lc, lj := e.LineStyle(); lc != 0 || lj != 0 {
		t.Errorf("line style not inherited: %v %v", lc, lj)
	}
	if d := e.DistanceTo(vec.Vec2{X: 10, Y: 0}); d.Distance > 1e-9 {
		t.Errorf("corner lost, distance %g", d.Distance)
	}
}

func TestUncutAtKeyVertexKeepsFace(t *testing.T) {
	// A pentagon with a straight corner at m: removing m leaves the
	// filled area unchanged.
	b := newBuilder(t)
	a := b.vertex(0, 0)
	m := b.vertex(5, 0)
	c := b.vertex(10, 0)
	d := b.vertex(10, 10)
	e := b.vertex(0, 10)
	am, mc := b.edge(a, m), b.edge(m, c)
	cd, de, ea := b.edge(c, d), b.edge(d, e), b.edge(e, a)
	f := b.face(NewKeyCycle(fwd(am), fwd(mc), fwd(cd), fwd(de), fwd(ea)))
	hole := b.face(NewKeyCycle(rev(ea), rev(de), rev(cd), rev(mc), rev(am)))

	res := b.c.UncutAtKeyVertex(m, true)
	if !res.Success {
		t.Fatal("uncut failed")
	}
	b.check()
	k := res.Edge
	want := NewKeyCycle(fwd(k), fwd(cd), fwd(de), fwd(ea))
	if f.NumCycles() != 1 || !f.cycles[0].Equal(want) {
		t.Errorf("got cycles %v", f.cycles)
	}
	wantHole := NewKeyCycle(rev(ea), rev(de), rev(cd), rev(k))
	if !hole.cycles[0].Equal(wantHole) {
		t.Errorf("got hole cycles %v", hole.cycles)
	}
	if a := meshArea(f); math.Abs(a-100) > 1e-6 {
		t.Errorf("got area %g, want 100", a)
	}
}

func TestUncutAtKeyVertexRejects(t *testing.T) {
	b := newBuilder(t)
	o := b.vertex(0, 0)
	for _, p := range []vec.Vec2{{X: 10}, {Y: 10}, {X: -10}} {
		b.edge(o, b.vertex(p.X, p.Y))
	}
	end := b.vertex(20, 20)
	b.edge(end, b.vertex(30, 30))
	iso := b.vertex(40, 40)
	iv1 := b.vertex(50, 50)
	iv2 := b.vertex(60, 60)
	if _, err := b.c.CreateInbetweenVertex(iv1, iv2, Placement{}); err != nil {
		t.Fatal(err)
	}

	var r record
	r.observe(b.c)
	tests := []struct {
		name string
		v    *KeyVertex
	}{
		{"junction", o},
		{"dangling", end},
		{"isolated", iso},
		{"inbetween", iv1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := snapshot(b.c)
			n := b.c.NumNodes()
			if res := b.c.UncutAtKeyVertex(tt.v, false); res.Success {
				t.Fatal("uncut succeeded")
			}
			if b.c.NumNodes() != n || !sameSnapshot(before, snapshot(b.c)) {
				t.Error("failed uncut modified the complex")
			}
		})
	}
	if len(r.diffs) != 0 {
		t.Errorf("got %d notifications, want none", len(r.diffs))
	}
}

func TestUncutAtKeyVertexSteiner(t *testing.T) {
	b := newBuilder(t)
	sq := b.squareEdges(0, 0, 10)
	v := b.vertex(5, 5)
	f := b.face(sq.cycle(), NewSteinerCycle(v))

	res := b.c.UncutAtKeyVertex(v, false)
	if !res.Success || res.Face != f {
		t.Fatal("uncut failed")
	}
	b.check()
	if !dead(v) || f.NumCycles() != 1 || !f.cycles[0].Equal(sq.cycle()) {
		t.Error("Steiner cycle not removed")
	}

	// A vertex used as Steiner vertex by two faces stays.
	w := b.vertex(6, 6)
	b.face(NewSteinerCycle(w))
	b.face(NewSteinerCycle(w))
	if b.c.UncutAtKeyVertex(w, false).Success {
		t.Error("uncut of shared Steiner vertex succeeded")
	}
}

func TestUncutAtKeyVertexLoop(t *testing.T) {
	t.Run("lone", func(t *testing.T) {
		b := newBuilder(t)
		v := b.vertex(0, 0)
		e := b.path(v, v, vec.Vec2{X: 10}, vec.Vec2{X: 10, Y: 10})

		res := b.c.UncutAtKeyVertex(v, false)
		if !res.Success {
			t.Fatal("uncut failed")
		}
		b.check()
		k := res.Edge
		if !dead(v, e) || !k.IsClosed() {
			t.Error("loop not replaced by a closed edge")
		}
		if l := curve.Length(k.Samples()); math.Abs(l-(20+10*math.Sqrt2)) > 1e-6 {
			t.Errorf("got length %g", l)
		}
		if b.c.NumNodes() != 2 {
			t.Errorf("got %d nodes, want 2", b.c.NumNodes())
		}
	})

	t.Run("face", func(t *testing.T) {
		b := newBuilder(t)
		v := b.vertex(0, 0)
		e := b.path(v, v, vec.Vec2{X: 10}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{Y: 10})
		f := b.face(NewKeyCycle(fwd(e)))

		res := b.c.UncutAtKeyVertex(v, false)
		if !res.Success {
			t.Fatal("uncut failed")
		}
		b.check()
		want := NewKeyCycle(fwd(res.Edge))
		if f.NumCycles() != 1 || !f.cycles[0].Equal(want) {
			t.Errorf("got cycles %v", f.cycles)
		}
		if a := meshArea(f); math.Abs(a-100) > 1e-6 {
			t.Errorf("got area %g, want 100", a)
		}
	})

	t.Run("mixed directions", func(t *testing.T) {
		b := newBuilder(t)
		v := b.vertex(0, 0)
		e := b.path(v, v, vec.Vec2{X: 10}, vec.Vec2{X: 10, Y: 10})
		b.face(NewKeyCycle(fwd(e), rev(e)))

		if b.c.UncutAtKeyVertex(v, false).Success {
			t.Error("uncut succeeded")
		}
	})
}
