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

	"seehuhn.de/go/vac/curve"
)

// KeyHalfedge is a key edge traversed in a given direction.  Direction
// true follows the stroke of the edge, false runs against it.
//
// KeyHalfedge values are comparable.
type KeyHalfedge struct {
	edge      *KeyEdge
	direction bool
}

// NewKeyHalfedge returns the halfedge of e with the given direction.
func NewKeyHalfedge(e *KeyEdge, direction bool) KeyHalfedge {
	return KeyHalfedge{edge: e, direction: direction}
}

// Edge returns the underlying edge.
func (h KeyHalfedge) Edge() *KeyEdge { return h.edge }

// Direction reports whether h runs along the stroke of its edge.
func (h KeyHalfedge) Direction() bool { return h.direction }

// Opposite returns the same edge traversed the other way.
func (h KeyHalfedge) Opposite() KeyHalfedge {
	return KeyHalfedge{edge: h.edge, direction: !h.direction}
}

// IsClosed reports whether the underlying edge is closed.
func (h KeyHalfedge) IsClosed() bool { return h.edge.IsClosed() }

// StartVertex returns the vertex where h begins, or nil for a closed edge.
func (h KeyHalfedge) StartVertex() *KeyVertex {
	if h.direction {
		return h.edge.start
	}
	return h.edge.end
}

// EndVertex returns the vertex where h ends, or nil for a closed edge.
func (h KeyHalfedge) EndVertex() *KeyVertex {
	if h.direction {
		return h.edge.end
	}
	return h.edge.start
}

// Stroke returns the stroke of the edge in the direction of h.
func (h KeyHalfedge) Stroke() curve.Stroke {
	if h.direction {
		return h.edge.Stroke()
	}
	return h.edge.geometry.stroke.Reversed()
}

// Samples returns the flattened centerline in the direction of h.
func (h KeyHalfedge) Samples() []curve.Sample {
	if h.direction {
		return h.edge.Samples()
	}
	return curve.Reverse(h.edge.Samples())
}

// Next returns the halfedge which follows h when turning around the end
// vertex of h.  The candidates are all halfedges leaving the end vertex;
// the first one found by rotating clockwise from the reversed direction of
// h is chosen, so that h.Opposite() is only returned for a dangling edge.
// For a closed edge, Next returns h.
func (h KeyHalfedge) Next() KeyHalfedge {
	v := h.EndVertex()
	if v == nil {
		return h
	}

	back := h.Opposite()
	a0, ok := leavingAngle(back)
	if !ok {
		return back
	}

	best := back
	bestDelta := 2 * math.Pi
	for _, e := range keyEdgesOf(v) {
		for _, c := range [2]KeyHalfedge{{e, true}, {e, false}} {
			if c.StartVertex() != v || c == back {
				continue
			}
			a, ok := leavingAngle(c)
			if !ok {
				continue
			}
			delta := math.Mod(a0-a, 2*math.Pi)
			if delta <= 0 {
				delta += 2 * math.Pi
			}
			if delta < bestDelta {
				best, bestDelta = c, delta
			}
		}
	}
	return best
}

// leavingAngle returns the direction in which h leaves its start vertex.
func leavingAngle(h KeyHalfedge) (float64, bool) {
	t, ok := curve.StartTangent(h.Samples())
	if !ok {
		return 0, false
	}
	return math.Atan2(t.Y, t.X), true
}
