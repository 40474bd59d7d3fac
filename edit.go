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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/vac/curve"
)

// SetKeyVertexPosition moves a vertex.  The ends of all incident edges
// follow the vertex, and the fill meshes of dependent faces are
// invalidated.
func (c *Complex) SetKeyVertexPosition(v *KeyVertex, pos vec.Vec2) error {
	if err := c.checkOwned(v); err != nil {
		return err
	}
	end := c.beginOperation()
	defer end()

	v.pos = pos
	c.markModified(v, GeometryChanged)
	for _, s := range v.Star() {
		switch x := s.(type) {
		case *KeyEdge:
			c.setEdgeStroke(x, x.geometry.stroke.SnapEnds(x.start.pos, x.end.pos))
		case *KeyFace:
			c.markModified(x, BoundaryMeshChanged)
			c.dirtyFillMesh(x)
		}
	}
	return nil
}

// TransformKeyEdge applies the affine map m to the stroke of an edge.  The
// ends of an open edge stay attached to its vertices.
func (c *Complex) TransformKeyEdge(e *KeyEdge, m matrix.Matrix) error {
	if err := c.checkOwned(e); err != nil {
		return err
	}
	s := e.geometry.stroke.Transform(m)
	if !e.IsClosed() {
		s = s.SnapEnds(e.start.pos, e.end.pos)
	}

	end := c.beginOperation()
	defer end()
	c.setEdgeStroke(e, s)
	return nil
}

// SetEdgeLineStyle sets the cap and join style used for the outline of an
// edge.
func (c *Complex) SetEdgeLineStyle(e *KeyEdge, lineCap graphics.LineCapStyle, lineJoin graphics.LineJoinStyle) error {
	if err := c.checkOwned(e); err != nil {
		return err
	}
	if e.cap == lineCap && e.join == lineJoin {
		return nil
	}
	end := c.beginOperation()
	defer end()

	e.cap, e.join = lineCap, lineJoin
	e.outline = nil
	c.markModified(e, Style)
	return nil
}

// SetFaceWindingRule changes the rule deciding which points lie inside a
// face.
func (c *Complex) SetFaceWindingRule(f *KeyFace, rule curve.WindingRule) error {
	if err := c.checkOwned(f); err != nil {
		return err
	}
	switch rule {
	case curve.Odd, curve.NonZero, curve.Positive, curve.Negative:
	default:
		return fmt.Errorf("vac: unknown winding rule %d", int(rule))
	}
	if f.rule == rule {
		return nil
	}
	end := c.beginOperation()
	defer end()

	f.rule = rule
	c.markModified(f, Style)
	c.dirtyFillMesh(f)
	return nil
}

// SetFaceProperty stores a value under key in the property map of a face.
func (c *Complex) SetFaceProperty(f *KeyFace, key, value string) error {
	if err := c.checkOwned(f); err != nil {
		return err
	}
	end := c.beginOperation()
	defer end()

	if f.properties == nil {
		f.properties = make(map[string]string)
	}
	f.properties[key] = value
	c.markModified(f, Style)
	return nil
}

// setEdgeStroke replaces the stroke of e and invalidates everything
// derived from it.
func (c *Complex) setEdgeStroke(e *KeyEdge, s curve.Stroke) {
	end := c.beginOperation()
	defer end()

	e.geometry.stroke = s
	e.samples = nil
	e.outline = nil
	c.markModified(e, GeometryChanged)
	for _, cell := range e.Star() {
		if f, ok := cell.(*KeyFace); ok {
			c.markModified(f, BoundaryMeshChanged)
			c.dirtyFillMesh(f)
		}
	}
}

// dirtyFillMesh drops the cached fill mesh of f.  Observers are only told
// if there was a mesh to drop.
func (c *Complex) dirtyFillMesh(f *KeyFace) {
	if f.mesh == nil {
		return
	}
	f.mesh = nil
	c.markModified(f, FaceFillMesh)
}

// setFaceCycles replaces the cycles of f and updates its boundary to
// match.
func (c *Complex) setFaceCycles(f *KeyFace, cycles []KeyCycle) {
	oldCells := make(map[ID]Cell)
	for _, cyc := range f.cycles {
		for _, cell := range cyc.cells() {
			oldCells[cell.ID()] = cell
		}
	}
	newCells := make(map[ID]Cell)
	f.cycles = make([]KeyCycle, len(cycles))
	for i, cyc := range cycles {
		f.cycles[i] = KeyCycle{steiner: cyc.steiner, halfedges: slices.Clone(cyc.halfedges)}
		for _, cell := range cyc.cells() {
			newCells[cell.ID()] = cell
		}
	}

	for _, id := range slices.Sorted(maps.Keys(oldCells)) {
		if _, keep := newCells[id]; !keep {
			c.removeFromBoundary(f, oldCells[id])
		}
	}
	for _, id := range slices.Sorted(maps.Keys(newCells)) {
		c.addToBoundary(f, newCells[id])
	}
	c.markModified(f, BoundaryChanged)
	c.dirtyFillMesh(f)
}
