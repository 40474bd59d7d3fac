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
	"slices"
)

// CellType enumerates the kinds of cells.
type CellType int

const (
	KeyVertexType CellType = iota
	KeyEdgeType
	KeyFaceType
	InbetweenVertexType
	InbetweenEdgeType
	InbetweenFaceType
)

func (t CellType) String() string {
	switch t {
	case KeyVertexType:
		return "KeyVertex"
	case KeyEdgeType:
		return "KeyEdge"
	case KeyFaceType:
		return "KeyFace"
	case InbetweenVertexType:
		return "InbetweenVertex"
	case InbetweenEdgeType:
		return "InbetweenEdge"
	case InbetweenFaceType:
		return "InbetweenFace"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// IsKey reports whether cells of this type exist at a single time.
func (t CellType) IsKey() bool {
	return t == KeyVertexType || t == KeyEdgeType || t == KeyFaceType
}

// IsVertex reports whether t is one of the two vertex types.
func (t CellType) IsVertex() bool {
	return t == KeyVertexType || t == InbetweenVertexType
}

// Dimension returns the spatial dimension of the cell type: 0 for
// vertices, 1 for edges and 2 for faces.
func (t CellType) Dimension() int {
	switch t {
	case KeyVertexType, InbetweenVertexType:
		return 0
	case KeyEdgeType, InbetweenEdgeType:
		return 1
	case KeyFaceType, InbetweenFaceType:
		return 2
	default:
		panic(fmt.Sprintf("vac: unknown cell type %d", int(t)))
	}
}

// Cell is a node of the complex which takes part in the topology.  The
// concrete types are [*KeyVertex], [*KeyEdge], [*KeyFace],
// [*InbetweenVertex], [*InbetweenEdge] and [*InbetweenFace].
type Cell interface {
	Node

	// Type returns the kind of the cell.
	Type() CellType

	// Boundary returns the cells this cell depends on.
	Boundary() []Cell

	// Star returns the cells which depend on this cell.
	Star() []Cell

	cell() *cellBase
}

// cellBase stores the incidence relations of a cell.  The two slices are
// only modified by Complex.addToBoundary and Complex.removeFromBoundary.
type cellBase struct {
	nodeBase
	boundary []ID
	star     []ID
}

func (c *cellBase) cell() *cellBase { return c }

func (c *cellBase) Boundary() []Cell { return c.resolve(c.boundary) }

func (c *cellBase) Star() []Cell { return c.resolve(c.star) }

func (c *cellBase) resolve(ids []ID) []Cell {
	if c.cx == nil {
		return nil
	}
	res := make([]Cell, 0, len(ids))
	for _, id := range ids {
		if cell, ok := c.cx.nodes[id].(Cell); ok {
			res = append(res, cell)
		}
	}
	return res
}

func (c *cellBase) inBoundary(id ID) bool { return slices.Contains(c.boundary, id) }

func (c *cellBase) inStar(id ID) bool { return slices.Contains(c.star, id) }

// addToBoundary makes member part of the boundary of c and, symmetrically,
// c part of the star of member.
func (cx *Complex) addToBoundary(c, member Cell) {
	cb, mb := c.cell(), member.cell()
	if cb.inBoundary(mb.id) {
		return
	}
	cb.boundary = append(cb.boundary, mb.id)
	mb.star = append(mb.star, cb.id)
	cx.markModified(c, BoundaryChanged)
	cx.markModified(member, StarChanged)
}

// removeFromBoundary is the inverse of addToBoundary.
func (cx *Complex) removeFromBoundary(c, member Cell) {
	cb, mb := c.cell(), member.cell()
	i := slices.Index(cb.boundary, mb.id)
	if i < 0 {
		return
	}
	cb.boundary = slices.Delete(cb.boundary, i, i+1)
	if j := slices.Index(mb.star, cb.id); j >= 0 {
		mb.star = slices.Delete(mb.star, j, j+1)
	} else {
		panic(fmt.Sprintf("vac: %d in boundary of %d but not vice versa", mb.id, cb.id))
	}
	cx.markModified(c, BoundaryChanged)
	cx.markModified(member, StarChanged)
}

// keyEdgesOf returns the key edges in the star of a vertex.
func keyEdgesOf(v Cell) []*KeyEdge {
	var res []*KeyEdge
	for _, s := range v.Star() {
		if e, ok := s.(*KeyEdge); ok {
			res = append(res, e)
		}
	}
	return res
}

// edgeIncidences counts how often v is used as an end point of a key edge.
// A loop edge counts twice.
func edgeIncidences(v *KeyVertex) int {
	n := 0
	for _, e := range keyEdgesOf(v) {
		if e.start == v {
			n++
		}
		if e.end == v {
			n++
		}
	}
	return n
}
