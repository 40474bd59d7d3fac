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

	"seehuhn.de/go/vac/curve"
)

// UncutAtKeyVertexResult describes the outcome of UncutAtKeyVertex.
type UncutAtKeyVertexResult struct {
	Success bool

	// Face is the face which lost a Steiner cycle, if any.
	Face *KeyFace

	// Edge is the edge which replaced the edges meeting at the vertex,
	// if any.
	Edge *KeyEdge
}

// UncutAtKeyEdgeResult describes the outcome of UncutAtKeyEdge.
type UncutAtKeyEdgeResult struct {
	Success bool

	// Face is the face which used to be on both sides of the edge.  This
	// is a new face if two faces were merged.
	Face *KeyFace
}

type uncutAtKeyVertexInfo struct {
	kf   *KeyFace    // face using the vertex as a Steiner cycle
	khe1 KeyHalfedge // halfedge ending at the vertex
	khe2 KeyHalfedge // halfedge starting at the vertex
}

// UncutAtKeyVertex removes the vertex kv if it only separates geometry
// which can be joined without it:
//
//   - A Steiner vertex used by exactly one cycle of one face is removed
//     from that face.
//   - A vertex which is both ends of a single edge is removed and the edge
//     is replaced by a closed edge.
//   - A vertex joining two edges which every cycle traverses in sequence
//     is removed and the two edges are replaced by their concatenation.
//
// If smoothJoin is set, the new edge has no corner where kv used to be.
// In all other situations nothing is changed and Success is false.
func (c *Complex) UncutAtKeyVertex(kv *KeyVertex, smoothJoin bool) UncutAtKeyVertexResult {
	if !c.owns(kv) {
		return UncutAtKeyVertexResult{}
	}
	info, ok := c.prepareUncutAtKeyVertex(kv)
	if !ok {
		c.logger().Debug("cannot uncut at vertex", "vertex", kv.id)
		return UncutAtKeyVertexResult{}
	}

	end := c.beginOperation()
	defer end()

	switch {
	case info.kf != nil:
		f := info.kf
		cycles := slices.DeleteFunc(f.Cycles(), func(cyc KeyCycle) bool {
			return cyc.steiner == kv
		})
		c.setFaceCycles(f, cycles)
		c.deleteWithDependents([]Node{kv}, false, false)
		return UncutAtKeyVertexResult{Success: true, Face: f}

	case info.khe1.edge == info.khe2.edge:
		old := info.khe1.edge
		k := c.newKeyEdge(nil, nil, old.geometry.stroke.Closed(smoothJoin), old.time)
		k.cap, k.join = old.cap, old.join
		c.insertBefore(k, old)
		c.substituteHalfedges(starFaces(old), func(h KeyHalfedge) (KeyHalfedge, bool) {
			if h.edge == old {
				return KeyHalfedge{edge: k, direction: h.direction}, true
			}
			return h, true
		})
		c.deleteWithDependents([]Node{old, kv}, false, false)
		return UncutAtKeyVertexResult{Success: true, Edge: k}

	default:
		khe1, khe2 := info.khe1, info.khe2
		e1, e2 := khe1.edge, khe2.edge
		from, to := khe1.StartVertex(), khe2.EndVertex()
		stroke := curve.Concat(khe1.Stroke(), khe2.Stroke(), smoothJoin)
		k := c.newKeyEdge(from, to, stroke.SnapEnds(from.pos, to.pos), kv.time)
		k.cap, k.join = e1.cap, e1.join
		c.insertBefore(k, bottommost(e1, e2))
		c.addToBoundary(k, from)
		c.addToBoundary(k, to)

		faces := starFaces(e1)
		for _, f := range starFaces(e2) {
			if !slices.Contains(faces, f) {
				faces = append(faces, f)
			}
		}
		c.substituteHalfedges(faces, func(h KeyHalfedge) (KeyHalfedge, bool) {
			switch h {
			case khe1:
				return KeyHalfedge{edge: k, direction: true}, true
			case khe1.Opposite():
				return KeyHalfedge{edge: k, direction: false}, true
			}
			return h, h.edge != e2
		})
		c.deleteWithDependents([]Node{e1, e2, kv}, false, false)
		return UncutAtKeyVertexResult{Success: true, Edge: k}
	}
}

// prepareUncutAtKeyVertex classifies the star of kv.  The second result
// is false if kv cannot be uncut.
func (c *Complex) prepareUncutAtKeyVertex(kv *KeyVertex) (uncutAtKeyVertexInfo, bool) {
	var info uncutAtKeyVertexInfo
	for _, s := range kv.Star() {
		switch x := s.(type) {
		case *KeyEdge:
			if x.start == kv {
				switch {
				case info.khe1.edge == nil:
					info.khe1 = KeyHalfedge{edge: x, direction: false}
				case info.khe2.edge == nil:
					info.khe2 = KeyHalfedge{edge: x, direction: true}
				default:
					return info, false
				}
			}
			if x.end == kv {
				switch {
				case info.khe1.edge == nil:
					info.khe1 = KeyHalfedge{edge: x, direction: true}
				case info.khe2.edge == nil:
					info.khe2 = KeyHalfedge{edge: x, direction: false}
				default:
					return info, false
				}
			}
		case *KeyFace:
			for _, cyc := range x.cycles {
				if cyc.steiner != kv {
					continue
				}
				if info.kf != nil {
					return info, false
				}
				info.kf = x
			}
		case *InbetweenVertex, *InbetweenEdge, *InbetweenFace:
			return info, false
		default:
			panic(fmt.Sprintf("vac: unexpected %s in the star of vertex %d", s.Type(), kv.id))
		}
	}

	switch {
	case info.kf != nil:
		return info, info.khe1.edge == nil

	case info.khe1.edge == nil || info.khe2.edge == nil:
		return info, false

	case info.khe1.edge == info.khe2.edge:
		// A loop edge becomes a closed edge, so every cycle using it must
		// keep going around it in the same direction.
		e := info.khe1.edge
		if !onlyFacesInStar(e) {
			return info, false
		}
		for _, f := range starFaces(e) {
			for _, cyc := range f.cycles {
				n := len(cyc.halfedges)
				for i, h := range cyc.halfedges {
					if h.edge == e && cyc.halfedges[(i+1)%n] != h {
						return info, false
					}
				}
			}
		}
		return info, true

	default:
		// Every walk through kv must continue from one edge into the
		// other.
		khe1, khe2 := info.khe1, info.khe2
		if !onlyFacesInStar(khe1.edge) || !onlyFacesInStar(khe2.edge) {
			return info, false
		}
		for _, s := range kv.Star() {
			f, ok := s.(*KeyFace)
			if !ok {
				continue
			}
			for _, cyc := range f.cycles {
				n := len(cyc.halfedges)
				for i, h := range cyc.halfedges {
					if h.EndVertex() != kv {
						continue
					}
					next := cyc.halfedges[(i+1)%n]
					if !(h == khe1 && next == khe2) && !(h == khe2.Opposite() && next == khe1.Opposite()) {
						return info, false
					}
				}
			}
		}
		return info, true
	}
}

// keyEdgeUsage locates one use of an edge in the cycles of a face.
type keyEdgeUsage struct {
	face      *KeyFace
	cycle     int
	component int
}

// UncutAtKeyEdge removes the edge ke if it is used exactly twice by the
// cycles of the faces around it, joining what it separates.  Two faces
// on either side of ke are replaced by a single new face; a face which
// meets itself along ke gets new cycles.  Cycles which become empty turn
// into Steiner cycles.  If the edge cannot be removed this way, nothing
// is changed and Success is false.
func (c *Complex) UncutAtKeyEdge(ke *KeyEdge) UncutAtKeyEdgeResult {
	if !c.owns(ke) {
		return UncutAtKeyEdgeResult{}
	}
	usages, ok := prepareUncutAtKeyEdge(ke)
	if !ok {
		c.logger().Debug("cannot uncut at edge", "edge", ke.id)
		return UncutAtKeyEdgeResult{}
	}

	end := c.beginOperation()
	defer end()

	u1, u2 := usages[0], usages[1]
	f1, f2 := u1.face, u2.face
	var result *KeyFace
	switch {
	case ke.IsClosed():
		// The cycles using a closed edge consist of nothing else.
		if f1 == f2 {
			cycles := removeCycles(f1.cycles, u1.cycle, u2.cycle)
			c.setFaceCycles(f1, cycles)
			result = f1
		} else {
			cycles := append(removeCycles(f1.cycles, u1.cycle), removeCycles(f2.cycles, u2.cycle)...)
			result = c.mergeFaces(f1, f2, cycles)
		}

	case f1 == f2 && u1.cycle == u2.cycle:
		cyc := f1.cycles[u1.cycle]
		replacement := splitCycle(cyc, u1.component, u2.component)
		cycles := slices.Clone(f1.cycles)
		cycles = slices.Replace(cycles, u1.cycle, u1.cycle+1, replacement...)
		c.setFaceCycles(f1, cycles)
		result = f1

	default:
		merged := spliceCycles(f1.cycles[u1.cycle], u1.component, f2.cycles[u2.cycle], u2.component)
		if f1 == f2 {
			cycles := slices.Clone(f1.cycles)
			cycles[u1.cycle] = merged
			cycles = slices.Delete(cycles, u2.cycle, u2.cycle+1)
			c.setFaceCycles(f1, cycles)
			result = f1
		} else {
			cycles := slices.Clone(f1.cycles)
			cycles[u1.cycle] = merged
			cycles = append(cycles, removeCycles(f2.cycles, u2.cycle)...)
			result = c.mergeFaces(f1, f2, cycles)
		}
	}

	if result != f1 {
		c.deleteWithDependents([]Node{f1, f2, ke}, false, false)
	} else {
		c.deleteWithDependents([]Node{ke}, false, false)
	}
	return UncutAtKeyEdgeResult{Success: true, Face: result}
}

// prepareUncutAtKeyEdge collects the uses of ke.  The second result is
// false unless ke is used exactly twice and only key faces depend on it.
func prepareUncutAtKeyEdge(ke *KeyEdge) ([]keyEdgeUsage, bool) {
	var usages []keyEdgeUsage
	for _, s := range ke.Star() {
		f, ok := s.(*KeyFace)
		if !ok {
			return nil, false
		}
		for ci, cyc := range f.cycles {
			for hi, h := range cyc.halfedges {
				if h.edge != ke {
					continue
				}
				if len(usages) == 2 {
					return nil, false
				}
				usages = append(usages, keyEdgeUsage{face: f, cycle: ci, component: hi})
			}
		}
	}
	if len(usages) != 2 {
		return nil, false
	}
	if u1, u2 := usages[0], usages[1]; u1.face == u2.face && u1.cycle == u2.cycle && u1.component > u2.component {
		usages[0], usages[1] = u2, u1
	}
	return usages, true
}

// splitCycle removes the two uses i < j of an open edge from a single
// cycle.  The rest of the walk falls apart into the part between the two
// uses and the part after them.
func splitCycle(cyc KeyCycle, i, j int) []KeyCycle {
	hs := cyc.halfedges
	h1, h2 := hs[i], hs[j]
	between := slices.Clone(hs[i+1 : j])
	after := slices.Concat(hs[j+1:], hs[:i])

	if h1.direction == h2.direction {
		// h1, between, h1, after: the two parts form one walk once the
		// second is reversed.
		merged := append(between, reverseHalfedges(after)...)
		if len(merged) == 0 {
			return []KeyCycle{NewSteinerCycle(h1.StartVertex())}
		}
		return []KeyCycle{{halfedges: merged}}
	}

	// h1, between, h1.Opposite(), after: each part is a closed walk of its
	// own, around the end and the start of h1 respectively.
	if len(between) == 0 && len(after) == 0 && h1.StartVertex() == h1.EndVertex() {
		return []KeyCycle{NewSteinerCycle(h1.StartVertex())}
	}
	res := make([]KeyCycle, 0, 2)
	if len(between) == 0 {
		res = append(res, NewSteinerCycle(h1.EndVertex()))
	} else {
		res = append(res, KeyCycle{halfedges: between})
	}
	if len(after) == 0 {
		res = append(res, NewSteinerCycle(h1.StartVertex()))
	} else {
		res = append(res, KeyCycle{halfedges: after})
	}
	return res
}

// spliceCycles joins two cycles which both use the same open edge, at
// positions i and j, into one cycle without that edge.
func spliceCycles(c1 KeyCycle, i int, c2 KeyCycle, j int) KeyCycle {
	h1, h2 := c1.halfedges[i], c2.halfedges[j]
	a := slices.Concat(c1.halfedges[i+1:], c1.halfedges[:i])
	b := slices.Concat(c2.halfedges[j+1:], c2.halfedges[:j])
	var merged []KeyHalfedge
	if h1.direction != h2.direction {
		merged = append(a, b...)
	} else {
		merged = append(a, reverseHalfedges(b)...)
	}
	if len(merged) == 0 {
		return NewSteinerCycle(h1.StartVertex())
	}
	return KeyCycle{halfedges: merged}
}

func reverseHalfedges(hs []KeyHalfedge) []KeyHalfedge {
	res := make([]KeyHalfedge, len(hs))
	for i, h := range hs {
		res[len(hs)-1-i] = h.Opposite()
	}
	return res
}

// removeCycles returns a copy of cycles without the given indices.
func removeCycles(cycles []KeyCycle, indices ...int) []KeyCycle {
	res := make([]KeyCycle, 0, len(cycles))
	for i, cyc := range cycles {
		if !slices.Contains(indices, i) {
			res = append(res, cyc)
		}
	}
	return res
}

// mergeFaces creates the face replacing f1 and f2, placed directly below
// the bottommost of the two.  The old faces are left in place.
func (c *Complex) mergeFaces(f1, f2 *KeyFace, cycles []KeyCycle) *KeyFace {
	f := &KeyFace{
		rule:       f1.rule,
		time:       f1.time,
		properties: assignFromConcatStep(f1.properties, f2.properties),
	}
	c.insertBefore(f, bottommost(f1, f2))
	c.setFaceCycles(f, cycles)
	return f
}

// substituteHalfedges rewrites the cycles of the given faces.  The
// function returns the replacement for a halfedge and false if the
// halfedge is to be dropped.
func (c *Complex) substituteHalfedges(faces []*KeyFace, fn func(KeyHalfedge) (KeyHalfedge, bool)) {
	for _, f := range faces {
		cycles := f.Cycles()
		for i, cyc := range cycles {
			if cyc.steiner != nil {
				continue
			}
			var hs []KeyHalfedge
			for _, h := range cyc.halfedges {
				if h2, keep := fn(h); keep {
					hs = append(hs, h2)
				}
			}
			cycles[i] = KeyCycle{halfedges: hs}
		}
		c.setFaceCycles(f, cycles)
	}
}

// starFaces returns the key faces depending on a cell.
func starFaces(cell Cell) []*KeyFace {
	var res []*KeyFace
	for _, s := range cell.Star() {
		if f, ok := s.(*KeyFace); ok {
			res = append(res, f)
		}
	}
	return res
}

func onlyFacesInStar(cell Cell) bool {
	for _, s := range cell.Star() {
		if s.Type() != KeyFaceType {
			return false
		}
	}
	return true
}
