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
	"fmt"
	"maps"
	"slices"
)

// ResolvedSelection is a selection of nodes with groups expanded into
// their contents.  Every node appears once.
type ResolvedSelection struct {
	groups   []*Group
	cells    []Cell
	topLevel map[ID]bool
}

// NewResolvedSelection expands the groups among nodes.  A node is top
// level if none of its ancestors is part of the selection.
func NewResolvedSelection(nodes []Node) *ResolvedSelection {
	sel := &ResolvedSelection{topLevel: make(map[ID]bool)}
	seen := make(map[ID]bool)
	for _, n := range nodes {
		for _, d := range descendants(n, nil) {
			if seen[d.ID()] {
				continue
			}
			seen[d.ID()] = true
			switch x := d.(type) {
			case *Group:
				sel.groups = append(sel.groups, x)
			case Cell:
				sel.cells = append(sel.cells, x)
			}
		}
	}
	for _, n := range nodes {
		top := true
		for p := n.Parent(); p != nil; p = p.parent {
			if seen[p.id] {
				top = false
				break
			}
		}
		if top {
			sel.topLevel[n.ID()] = true
		}
	}
	return sel
}

// Groups returns the selected groups, including groups inside selected
// groups.
func (s *ResolvedSelection) Groups() []*Group { return slices.Clone(s.groups) }

// Cells returns the selected cells, including cells inside selected
// groups.
func (s *ResolvedSelection) Cells() []Cell { return slices.Clone(s.cells) }

// TopLevelGroups returns the selected groups which are not inside another
// selected group.
func (s *ResolvedSelection) TopLevelGroups() []*Group {
	return slices.DeleteFunc(s.Groups(), func(g *Group) bool { return !s.topLevel[g.id] })
}

// TopLevelCells returns the selected cells which are not inside a
// selected group.
func (s *ResolvedSelection) TopLevelCells() []Cell {
	return slices.DeleteFunc(s.Cells(), func(c Cell) bool { return !s.topLevel[c.ID()] })
}

// SoftDelete removes the given nodes while keeping the rest of the
// drawing intact where possible.  Instead of destroying the faces around
// a deleted edge or vertex, the cut is undone: adjacent faces are merged
// and edges meeting at a removed vertex are joined.  Cells which cannot
// be uncut are deleted, and the faces depending on them keep their
// remaining valid cycles.
//
// Selected groups are destroyed once they are empty.  If
// deleteIsolatedVertices is set, vertices next to the deleted cells which
// are left without any edges or faces are destroyed as well.
func (c *Complex) SoftDelete(nodes []Node, deleteIsolatedVertices bool) error {
	for _, n := range nodes {
		if !c.owns(n) {
			return fmt.Errorf("soft delete: %w", ErrNotInComplex)
		}
	}

	end := c.beginOperation()
	defer end()

	sel := NewResolvedSelection(nodes)
	c.temporaryCellSet = touchedCells(sel.cells)
	defer func() { c.temporaryCellSet = nil }()

	var others []Node
	var edges []*KeyEdge
	var vertices []*KeyVertex
	for _, cell := range sel.cells {
		switch x := cell.(type) {
		case *KeyVertex:
			vertices = append(vertices, x)
		case *KeyEdge:
			edges = append(edges, x)
		case *KeyFace, *InbetweenVertex, *InbetweenEdge, *InbetweenFace:
			others = append(others, x)
		}
	}

	c.deleteWithDependents(others, false, true)

	var rest []Cell
	for _, e := range edges {
		if !e.alive() || c.UncutAtKeyEdge(e).Success {
			continue
		}
		rest = append(rest, e)
	}
	c.deleteAndJoin(rest)

	rest = rest[:0]
	for _, v := range vertices {
		if !v.alive() || c.UncutAtKeyVertex(v, false).Success {
			continue
		}
		for _, e := range keyEdgesOf(v) {
			c.UncutAtKeyEdge(e)
		}
		if c.UncutAtKeyVertex(v, false).Success {
			continue
		}
		rest = append(rest, v)
	}
	c.deleteAndJoin(rest)

	for _, g := range sel.TopLevelGroups() {
		c.deleteEmptyGroups(g)
	}

	if deleteIsolatedVertices {
		var isolated []Node
		for _, id := range slices.Sorted(maps.Keys(c.temporaryCellSet)) {
			if v, ok := c.nodes[id].(*KeyVertex); ok && len(v.star) == 0 {
				isolated = append(isolated, v)
			}
		}
		c.deleteWithDependents(isolated, false, false)
	}
	return nil
}

// deleteEmptyGroups destroys g and the groups below it which are left
// without children.  The root group is never destroyed.
func (c *Complex) deleteEmptyGroups(g *Group) {
	for _, child := range slices.Clone(g.children) {
		if cg, ok := child.(*Group); ok {
			c.deleteEmptyGroups(cg)
		}
	}
	if g.alive() && !g.isRoot() && len(g.children) == 0 {
		c.deleteWithDependents([]Node{g}, false, false)
	}
}

// deleteAndJoin deletes cells, repairing the faces around them.  Vertices
// which lose edges this way and are left between exactly two edge ends
// are uncut.
func (c *Complex) deleteAndJoin(cells []Cell) {
	if len(cells) == 0 {
		return
	}
	var affected []*KeyVertex
	before := make(map[ID]int)
	record := func(v *KeyVertex) {
		if _, ok := before[v.id]; !ok {
			before[v.id] = edgeIncidences(v)
			affected = append(affected, v)
		}
	}
	nodes := make([]Node, len(cells))
	for i, cell := range cells {
		nodes[i] = cell
		switch x := cell.(type) {
		case *KeyEdge:
			if !x.IsClosed() {
				record(x.start)
				record(x.end)
			}
		case *KeyVertex:
			for _, e := range keyEdgesOf(x) {
				record(e.start)
				record(e.end)
			}
		}
	}

	c.deleteWithDependents(nodes, false, true)

	for _, v := range affected {
		if v.alive() && before[v.id] >= 3 && edgeIncidences(v) == 2 {
			c.UncutAtKeyVertex(v, false)
		}
	}
}

// touchedCells returns the IDs of the cells depending on cells, together
// with everything these depend on.
func touchedCells(cells []Cell) map[ID]struct{} {
	res := make(map[ID]struct{})
	var opening []Cell
	var up func(Cell)
	up = func(cell Cell) {
		if _, ok := res[cell.ID()]; ok {
			return
		}
		res[cell.ID()] = struct{}{}
		opening = append(opening, cell)
		for _, s := range cell.Star() {
			up(s)
		}
	}
	for _, cell := range cells {
		up(cell)
	}

	var down func(Cell)
	down = func(cell Cell) {
		for _, b := range cell.Boundary() {
			if _, ok := res[b.ID()]; !ok {
				res[b.ID()] = struct{}{}
				down(b)
			}
		}
	}
	for _, cell := range opening {
		down(cell)
	}
	return res
}
