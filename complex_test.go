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
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac/curve"
)

func TestCreateSquare(t *testing.T) {
	b := newBuilder(t)
	s := b.square(0, 0, 10)
	b.check()

	if n := b.c.NumNodes(); n != 10 {
		t.Errorf("got %d nodes, want 10", n)
	}
	if n := len(s.f.Boundary()); n != 8 {
		t.Errorf("face boundary has %d cells, want 8", n)
	}
	star := idsOf(s.a.Star())
	slices.Sort(star)
	want := []ID{s.ab.id, s.da.id, s.f.id}
	slices.Sort(want)
	if !slices.Equal(star, want) {
		t.Errorf("star of a: got %v, want %v", star, want)
	}
	if got := b.c.Find(s.cd.id); got != Node(s.cd) {
		t.Errorf("Find(%d) = %v", s.cd.id, got)
	}
	if got := b.c.Root().Children(); len(got) != 9 || got[8] != Node(s.f) {
		t.Errorf("unexpected children of the root group")
	}
}

func TestCreateErrors(t *testing.T) {
	b := newBuilder(t)
	v := b.vertex(0, 0)
	w := b.vertex(1, 0)
	e := b.edge(v, w)

	other := NewComplex()
	foreign, err := other.CreateKeyVertex(vec.Vec2{}, Placement{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.c.CreateKeyOpenEdge(v, foreign, curve.Stroke{}, Placement{}); !errors.Is(err, ErrNotInComplex) {
		t.Errorf("foreign vertex: got %v", err)
	}
	if _, err := b.c.CreateKeyFace([]KeyCycle{NewKeyCycle(fwd(e))}, Placement{}); !errors.Is(err, ErrInvalidCycle) {
		t.Errorf("open walk: got %v", err)
	}
	if _, err := b.c.CreateKeyVertex(vec.Vec2{}, Placement{Before: foreign}); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("foreign sibling: got %v", err)
	}
	if _, err := b.c.CreateGroup(Placement{Parent: other.Root()}); !errors.Is(err, ErrNotInComplex) {
		t.Errorf("foreign parent: got %v", err)
	}
	var nilVertex *KeyVertex
	if _, err := b.c.CreateInbetweenVertex(v, nilVertex, Placement{}); !errors.Is(err, ErrNotInComplex) {
		t.Errorf("nil vertex: got %v", err)
	}
	b.check()
}

func TestPlacement(t *testing.T) {
	b := newBuilder(t)
	g, err := b.c.CreateGroup(Placement{})
	if err != nil {
		t.Fatal(err)
	}
	v1, err := b.c.CreateKeyVertex(vec.Vec2{}, Placement{Parent: g})
	if err != nil {
		t.Fatal(err)
	}
	v2, err := b.c.CreateKeyVertex(vec.Vec2{}, Placement{Parent: g, Before: v1, Time: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Children(); len(got) != 2 || got[0] != Node(v2) || got[1] != Node(v1) {
		t.Errorf("wrong order of children")
	}
	if v2.Time() != 2 {
		t.Errorf("got time %g, want 2", v2.Time())
	}
	if bottommost(v1, v2) != v2 {
		t.Error("v2 should be drawn first")
	}
	if bottommost[Node](v1, g) != g {
		t.Error("a group is drawn before its children")
	}
	b.check()
}

func TestObserve(t *testing.T) {
	b := newBuilder(t)
	var r record
	cancel := r.observe(b.c)

	v := b.vertex(0, 0)
	if len(r.diffs) != 1 {
		t.Fatalf("got %d diffs, want 1", len(r.diffs))
	}
	d := r.diffs[0]
	if !slices.Equal(d.Created, []ID{v.id}) {
		t.Errorf("created: got %v", d.Created)
	}
	if len(d.Modified) != 1 || d.Modified[0] != (ModifiedNode{ID: b.c.root.id, Flags: ChildrenChanged}) {
		t.Errorf("modified: got %v", d.Modified)
	}

	// A failing operation reports nothing.
	if _, err := b.c.CreateKeyOpenEdge(v, nil, curve.Stroke{}, Placement{}); err == nil {
		t.Error("missing error")
	}
	if len(r.diffs) != 1 {
		t.Errorf("got %d diffs, want 1", len(r.diffs))
	}

	cancel()
	b.vertex(1, 1)
	if len(r.diffs) != 1 {
		t.Errorf("cancelled observer was called")
	}
}

func TestObserverCannotModify(t *testing.T) {
	b := newBuilder(t)
	b.c.Observe(func(Diff) {
		b.c.CreateKeyVertex(vec.Vec2{}, Placement{})
	})

	defer func() {
		if recover() == nil {
			t.Error("nested operation did not panic")
		}
		// the complex is usable again once the observer has returned
		b.c.observers = map[int]func(Diff){}
		b.vertex(2, 2)
		b.check()
	}()
	b.c.CreateKeyVertex(vec.Vec2{X: 1}, Placement{})
}

func TestModifiedFlagsString(t *testing.T) {
	tests := []struct {
		flags ModifiedFlags
		want  string
	}{
		{0, "0"},
		{ChildrenChanged, "ChildrenChanged"},
		{BoundaryChanged | Style, "BoundaryChanged|Style"},
		{GeometryChanged | 1<<10, "GeometryChanged|0x400"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestCheckReportsCorruption(t *testing.T) {
	b := newBuilder(t)
	s := b.square(0, 0, 10)
	s.a.star = slices.DeleteFunc(s.a.star, func(id ID) bool { return id == s.f.id })
	s.bc.parent = nil

	err := b.c.Check()
	if err == nil {
		t.Fatal("corruption not detected")
	}
	var n int
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		n = len(joined.Unwrap())
	}
	if n < 2 {
		t.Errorf("got %d errors, want at least 2: %v", n, err)
	}
}

func TestCellType(t *testing.T) {
	tests := []struct {
		typ    CellType
		key    bool
		vertex bool
		dim    int
	}{
		{KeyVertexType, true, true, 0},
		{KeyEdgeType, true, false, 1},
		{KeyFaceType, true, false, 2},
		{InbetweenVertexType, false, true, 0},
		{InbetweenEdgeType, false, false, 1},
		{InbetweenFaceType, false, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if tt.typ.IsKey() != tt.key || tt.typ.IsVertex() != tt.vertex || tt.typ.Dimension() != tt.dim {
				t.Errorf("got key=%t vertex=%t dim=%d",
					tt.typ.IsKey(), tt.typ.IsVertex(), tt.typ.Dimension())
			}
		})
	}
}
