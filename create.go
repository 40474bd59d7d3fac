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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/vac/curve"
)

// DefaultEdgeWidth is the stroke width of edges created without geometry.
const DefaultEdgeWidth = 1.0

// Placement tells where a new node goes in the group tree, and at which
// time a new key cell exists.
type Placement struct {
	// Parent is the group receiving the node.  Nil selects the root group.
	Parent *Group

	// Before is the sibling the node is inserted below.  Nil places the
	// node on top of all children.
	Before Node

	Time float64
}

func (c *Complex) resolvePlacement(p Placement) (*Group, int, error) {
	parent := p.Parent
	if parent == nil {
		parent = c.root
	}
	if !c.owns(parent) {
		return nil, 0, fmt.Errorf("parent group: %w", ErrNotInComplex)
	}
	if p.Before == nil {
		return parent, len(parent.children), nil
	}
	i := parent.indexOf(p.Before)
	if i < 0 {
		return nil, 0, fmt.Errorf("node %d is not a child of group %d: %w",
			p.Before.ID(), parent.id, ErrInvalidPlacement)
	}
	return parent, i, nil
}

// insertNode registers n with the complex and inserts it into the children
// of parent at position idx.
func (c *Complex) insertNode(n Node, parent *Group, idx int) {
	nb := n.node()
	nb.id = c.allocID()
	nb.cx = c
	nb.parent = parent
	parent.children = slices.Insert(parent.children, idx, n)
	c.nodes[nb.id] = n
	c.markCreated(n)
	c.markModified(parent, ChildrenChanged)
}

// insertBefore inserts n directly below the sibling ref.
func (c *Complex) insertBefore(n Node, ref Node) {
	parent := ref.Parent()
	c.insertNode(n, parent, parent.indexOf(ref))
}

func (c *Complex) checkOwned(cells ...Cell) error {
	for _, cell := range cells {
		if !c.owns(cell) {
			return ErrNotInComplex
		}
	}
	return nil
}

// CreateGroup adds an empty group.
func (c *Complex) CreateGroup(p Placement) (*Group, error) {
	end := c.beginOperation()
	defer end()

	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	g := &Group{}
	c.insertNode(g, parent, idx)
	return g, nil
}

// CreateKeyVertex adds a key vertex at pos.
func (c *Complex) CreateKeyVertex(pos vec.Vec2, p Placement) (*KeyVertex, error) {
	end := c.beginOperation()
	defer end()

	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	v := &KeyVertex{pos: pos, time: p.Time}
	c.insertNode(v, parent, idx)
	return v, nil
}

// CreateKeyOpenEdge adds an open edge from start to end.  The end points
// of the stroke are moved onto the vertices.  An empty stroke gives a
// straight line of width DefaultEdgeWidth.
func (c *Complex) CreateKeyOpenEdge(start, end *KeyVertex, stroke curve.Stroke, p Placement) (*KeyEdge, error) {
	done := c.beginOperation()
	defer done()

	if err := c.checkOwned(start, end); err != nil {
		return nil, fmt.Errorf("edge vertices: %w", err)
	}
	if stroke.IsEmpty() {
		stroke = curve.Line(start.pos, end.pos, DefaultEdgeWidth)
	} else if stroke.IsClosed() {
		return nil, fmt.Errorf("closed stroke for an open edge: %w", ErrInvalidStroke)
	}
	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	e := c.newKeyEdge(start, end, stroke.SnapEnds(start.pos, end.pos), p.Time)
	c.insertNode(e, parent, idx)
	c.addToBoundary(e, start)
	c.addToBoundary(e, end)
	return e, nil
}

// CreateKeyClosedEdge adds a closed edge.  An open stroke is closed
// first; its end point should coincide with its start point.
func (c *Complex) CreateKeyClosedEdge(stroke curve.Stroke, p Placement) (*KeyEdge, error) {
	end := c.beginOperation()
	defer end()

	if stroke.IsEmpty() {
		return nil, fmt.Errorf("empty stroke for a closed edge: %w", ErrInvalidStroke)
	}
	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	e := c.newKeyEdge(nil, nil, stroke.Closed(false), p.Time)
	c.insertNode(e, parent, idx)
	return e, nil
}

func (c *Complex) newKeyEdge(start, end *KeyVertex, stroke curve.Stroke, t float64) *KeyEdge {
	e := &KeyEdge{
		start: start,
		end:   end,
		time:  t,
		cap:   graphics.LineCapRound,
		join:  graphics.LineJoinRound,
	}
	e.geometry = EdgeGeometry{edge: e, stroke: stroke}
	return e
}

// CreateKeyFace adds a face bounded by the given cycles, using the
// even-odd winding rule.
func (c *Complex) CreateKeyFace(cycles []KeyCycle, p Placement) (*KeyFace, error) {
	end := c.beginOperation()
	defer end()

	for i, cyc := range cycles {
		if !cyc.IsValid() {
			return nil, fmt.Errorf("cycle %d: %w", i, ErrInvalidCycle)
		}
		if err := c.checkOwned(cyc.cells()...); err != nil {
			return nil, fmt.Errorf("cycle %d: %w", i, err)
		}
	}
	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	f := &KeyFace{rule: curve.Odd, time: p.Time}
	c.insertNode(f, parent, idx)
	c.setFaceCycles(f, cycles)
	return f, nil
}

// CreateInbetweenVertex adds an inbetween vertex interpolating between
// two key vertices.
func (c *Complex) CreateInbetweenVertex(before, after *KeyVertex, p Placement) (*InbetweenVertex, error) {
	end := c.beginOperation()
	defer end()

	if err := c.checkOwned(before, after); err != nil {
		return nil, err
	}
	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return nil, err
	}
	v := &InbetweenVertex{before: before, after: after}
	c.insertNode(v, parent, idx)
	c.addToBoundary(v, before)
	c.addToBoundary(v, after)
	return v, nil
}

// CreateInbetweenEdge adds an inbetween edge depending on the given cells.
func (c *Complex) CreateInbetweenEdge(boundary []Cell, p Placement) (*InbetweenEdge, error) {
	e := &InbetweenEdge{}
	if err := c.createInbetween(e, boundary, p); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateInbetweenFace adds an inbetween face depending on the given cells.
func (c *Complex) CreateInbetweenFace(boundary []Cell, p Placement) (*InbetweenFace, error) {
	f := &InbetweenFace{}
	if err := c.createInbetween(f, boundary, p); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *Complex) createInbetween(cell Cell, boundary []Cell, p Placement) error {
	end := c.beginOperation()
	defer end()

	if err := c.checkOwned(boundary...); err != nil {
		return err
	}
	parent, idx, err := c.resolvePlacement(p)
	if err != nil {
		return err
	}
	c.insertNode(cell, parent, idx)
	for _, b := range boundary {
		c.addToBoundary(cell, b)
	}
	return nil
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Group:
		return x == nil
	case *KeyVertex:
		return x == nil
	case *KeyEdge:
		return x == nil
	case *KeyFace:
		return x == nil
	case *InbetweenVertex:
		return x == nil
	case *InbetweenEdge:
		return x == nil
	case *InbetweenFace:
		return x == nil
	default:
		panic(fmt.Sprintf("vac: unexpected node type %T", n))
	}
}
