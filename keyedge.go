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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/vac/curve"
)

// KeyEdge is a curve at a single instant of time.  An open edge runs from
// its start vertex to its end vertex, which may coincide.  A closed edge
// has no vertices.
type KeyEdge struct {
	cellBase
	start, end *KeyVertex
	time       float64
	geometry   EdgeGeometry

	cap  graphics.LineCapStyle
	join graphics.LineJoinStyle

	// caches, cleared when the geometry changes
	samples []curve.Sample
	outline [][]vec.Vec2
}

func (e *KeyEdge) Type() CellType { return KeyEdgeType }

// StartVertex returns the start vertex, or nil for a closed edge.
func (e *KeyEdge) StartVertex() *KeyVertex { return e.start }

// EndVertex returns the end vertex, or nil for a closed edge.
func (e *KeyEdge) EndVertex() *KeyVertex { return e.end }

// IsClosed reports whether the edge is a closed curve without vertices.
func (e *KeyEdge) IsClosed() bool { return e.start == nil }

// Time returns the time at which the edge exists.
func (e *KeyEdge) Time() float64 { return e.time }

// Geometry returns the handle used to read and edit the stroke of the edge.
func (e *KeyEdge) Geometry() *EdgeGeometry { return &e.geometry }

// Stroke returns a copy of the centerline of the edge.
func (e *KeyEdge) Stroke() curve.Stroke { return e.geometry.stroke.Clone() }

// LineStyle returns the cap and join style used by Outline.
func (e *KeyEdge) LineStyle() (graphics.LineCapStyle, graphics.LineJoinStyle) {
	return e.cap, e.join
}

// Samples returns the flattened centerline of the edge.  The result is
// cached until the geometry changes and must not be modified.
func (e *KeyEdge) Samples() []curve.Sample {
	if e.samples == nil {
		flatness := curve.DefaultFlatness
		if e.cx != nil {
			flatness = e.cx.opts.flatness
		}
		e.samples = e.geometry.stroke.Sample(flatness)
	}
	return e.samples
}

// DistanceTo returns the distance from p to the centerline of the edge,
// together with the location of the closest point.
func (e *KeyEdge) DistanceTo(p vec.Vec2) curve.Distance {
	return curve.DistanceToCurve(e.Samples(), p)
}

// Outline returns the polygons covered by the stroked edge, to be filled
// with the non-zero winding rule.  The result is cached until the geometry
// or the line style changes.
func (e *KeyEdge) Outline() [][]vec.Vec2 {
	if e.outline == nil {
		style := curve.DefaultOutlineStyle(e.geometry.stroke.Width)
		style.Cap = e.cap
		style.Join = e.join
		if e.cx != nil {
			style.Flatness = e.cx.opts.flatness
		}
		e.outline = curve.Outline(e.Samples(), e.IsClosed(), style)
	}
	return e.outline
}

// EdgeGeometry is the stroke of a key edge.  Changes can be grouped into
// an edit: StartEdit records the current stroke, ResetEdit returns to it
// and FinishEdit ends the edit.
type EdgeGeometry struct {
	edge   *KeyEdge
	stroke curve.Stroke
	saved  *curve.Stroke // non-nil during an edit
}

// Stroke returns a copy of the current stroke.
func (g *EdgeGeometry) Stroke() curve.Stroke { return g.stroke.Clone() }

// IsEditing reports whether an edit is in progress.
func (g *EdgeGeometry) IsEditing() bool { return g.saved != nil }

// StartEdit begins an edit.  Calling StartEdit during an edit has no
// effect.
func (g *EdgeGeometry) StartEdit() {
	if g.saved == nil {
		s := g.stroke.Clone()
		g.saved = &s
	}
}

// SetStroke replaces the stroke of the edge.  The end points of a stroke
// for an open edge are moved onto the edge vertices.
func (g *EdgeGeometry) SetStroke(s curve.Stroke) error {
	e := g.edge
	if !e.alive() {
		return ErrNotInComplex
	}
	if s.IsEmpty() || s.IsClosed() != e.IsClosed() {
		return fmt.Errorf("edge %d: %w", e.id, ErrInvalidStroke)
	}
	if !e.IsClosed() {
		s = s.SnapEnds(e.start.pos, e.end.pos)
	}
	e.cx.setEdgeStroke(e, s.Clone())
	return nil
}

// ResetEdit restores the stroke recorded by StartEdit.  The edit stays in
// progress.
func (g *EdgeGeometry) ResetEdit() {
	if g.saved == nil || !g.edge.alive() {
		return
	}
	if !g.saved.Equal(g.stroke) {
		g.edge.cx.setEdgeStroke(g.edge, g.saved.Clone())
	}
}

// FinishEdit ends the edit, keeping the current stroke.
func (g *EdgeGeometry) FinishEdit() {
	g.saved = nil
}
