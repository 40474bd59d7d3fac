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
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac/curve"
)

// KeyCycle is one boundary component of a key face: either a single
// Steiner vertex, or a closed walk of halfedges.
type KeyCycle struct {
	steiner   *KeyVertex
	halfedges []KeyHalfedge
}

// NewSteinerCycle returns the cycle consisting of the single vertex v.
func NewSteinerCycle(v *KeyVertex) KeyCycle {
	return KeyCycle{steiner: v}
}

// NewKeyCycle returns the cycle which traverses the given halfedges in
// order.  Use IsValid to check that they form a closed walk.
func NewKeyCycle(halfedges ...KeyHalfedge) KeyCycle {
	return KeyCycle{halfedges: slices.Clone(halfedges)}
}

// SteinerVertex returns the vertex of a Steiner cycle, or nil.
func (c KeyCycle) SteinerVertex() *KeyVertex { return c.steiner }

// Halfedges returns the halfedges of the cycle.
func (c KeyCycle) Halfedges() []KeyHalfedge { return slices.Clone(c.halfedges) }

// NumHalfedges returns the number of halfedges of the cycle.
func (c KeyCycle) NumHalfedges() int { return len(c.halfedges) }

// IsValid reports whether the cycle is a Steiner cycle, or a non-empty
// closed walk.  A walk over a closed edge must repeat the same halfedge;
// otherwise every halfedge must be open and end where the next one
// starts.  Walks which turn back on an edge are allowed.
func (c KeyCycle) IsValid() bool {
	if c.steiner != nil {
		return len(c.halfedges) == 0
	}
	if len(c.halfedges) == 0 {
		return false
	}
	first := c.halfedges[0]
	if first.edge == nil {
		return false
	}
	if first.IsClosed() {
		for _, h := range c.halfedges {
			if h != first {
				return false
			}
		}
		return true
	}
	for i, h := range c.halfedges {
		if h.edge == nil || h.IsClosed() {
			return false
		}
		next := c.halfedges[(i+1)%len(c.halfedges)]
		if h.EndVertex() != next.StartVertex() {
			return false
		}
	}
	return true
}

// Reversed returns the cycle traversed in the opposite direction.
func (c KeyCycle) Reversed() KeyCycle {
	if c.steiner != nil {
		return c
	}
	rev := make([]KeyHalfedge, len(c.halfedges))
	for i, h := range c.halfedges {
		rev[len(rev)-1-i] = h.Opposite()
	}
	return KeyCycle{halfedges: rev}
}

// Equal reports whether both cycles have the same Steiner vertex and the
// same halfedges in the same order.
func (c KeyCycle) Equal(other KeyCycle) bool {
	return c.steiner == other.steiner && slices.Equal(c.halfedges, other.halfedges)
}

// cells returns the cells the cycle depends on: the Steiner vertex, or
// every edge together with its end vertices.
func (c KeyCycle) cells() []Cell {
	if c.steiner != nil {
		return []Cell{c.steiner}
	}
	var res []Cell
	for _, h := range c.halfedges {
		res = append(res, h.edge)
		if !h.IsClosed() {
			res = append(res, h.edge.start, h.edge.end)
		}
	}
	return res
}

// contour returns the closed polygon traced by the cycle.  A Steiner
// cycle gives its single vertex position.
func (c KeyCycle) contour() []vec.Vec2 {
	if c.steiner != nil {
		return []vec.Vec2{c.steiner.pos}
	}
	var pts []vec.Vec2
	for _, h := range c.halfedges {
		samples := h.Samples()
		if len(samples) > 1 {
			// the last sample is the start of the next halfedge
			samples = samples[:len(samples)-1]
		}
		for _, s := range samples {
			pts = append(pts, s.Pos)
		}
	}
	return pts
}

// samplePoints returns n points spread uniformly by arc length along the
// closed contour of the cycle, at the centres of n equal intervals.
func (c KeyCycle) samplePoints(n int) []vec.Vec2 {
	pts := c.contour()
	if len(pts) <= 1 {
		return pts
	}
	closed := make([]curve.Sample, 0, len(pts)+1)
	var s float64
	for i, p := range append(pts, pts[0]) {
		if i > 0 {
			s += p.Sub(closed[i-1].Pos).Length()
		}
		closed = append(closed, curve.Sample{Pos: p, S: s})
	}
	res := make([]vec.Vec2, n)
	for i := range n {
		res[i] = curve.PointAt(closed, (float64(i)+0.5)/float64(n)*s)
	}
	return res
}
