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

package curve

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polyEdge is a non-horizontal polygon edge, stored with y0 < y1.
type polyEdge struct {
	x0, y0 float64 // lower end point
	x1, y1 float64 // upper end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    int     // +1 if the contour runs towards increasing y, -1 otherwise
}

func (e *polyEdge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// crossing is an active edge together with its x-intercept at the middle of
// the current slab.
type crossing struct {
	x   float64
	idx int
}

// Tessellator converts closed contours into a list of triangles covering
// the region selected by a winding rule. Create one instance and reuse it
// for many polygons; internal buffers grow as needed but never shrink.
//
// The plane is cut into horizontal slabs at every vertex and every edge
// intersection. Inside a slab no two edges cross, so the region within the
// slab is a union of trapezoids, each of which is emitted as two triangles.
//
// A Tessellator is not safe for concurrent use.
type Tessellator struct {
	edges     []polyEdge
	ys        []float64
	active    []int
	crossings []crossing
	out       []vec.Vec2
}

// Tessellate is a convenience wrapper which uses a fresh Tessellator.
func Tessellate(contours [][]vec.Vec2, rule WindingRule) []vec.Vec2 {
	var t Tessellator
	return t.Tessellate(contours, rule)
}

// Tessellate returns the triangles covering the region enclosed by the
// contours under the given winding rule, as a flat list of vertices where
// each group of three consecutive points forms one triangle. Every contour
// is closed implicitly. The returned slice is owned by the caller.
func (t *Tessellator) Tessellate(contours [][]vec.Vec2, rule WindingRule) []vec.Vec2 {
	t.collectEdges(contours)
	if len(t.edges) == 0 {
		return nil
	}
	t.collectSlabBoundaries()

	slices.SortFunc(t.edges, func(a, b polyEdge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	t.out = t.out[:0]
	t.active = t.active[:0]
	nextEdge := 0
	for k := 0; k+1 < len(t.ys); k++ {
		ya, yb := t.ys[k], t.ys[k+1]
		if yb-ya < horizontalEdgeThreshold {
			continue
		}
		ym := (ya + yb) / 2

		// Add edges that start below the middle of this slab.
		for nextEdge < len(t.edges) && t.edges[nextEdge].y0 < ym {
			t.active = append(t.active, nextEdge)
			nextEdge++
		}

		t.crossings = t.crossings[:0]
		for i := 0; i < len(t.active); {
			e := &t.edges[t.active[i]]
			if e.y1 <= ym {
				// Remove from active list (swap with last)
				t.active[i] = t.active[len(t.active)-1]
				t.active = t.active[:len(t.active)-1]
				continue
			}
			t.crossings = append(t.crossings, crossing{x: e.xAt(ym), idx: t.active[i]})
			i++
		}
		slices.SortFunc(t.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		// Sweep from left to right. Edges to the right of a point
		// determine its winding number, so passing an edge subtracts its
		// direction.
		w := 0
		inside := false
		var left *polyEdge
		for _, c := range t.crossings {
			e := &t.edges[c.idx]
			w -= e.dir
			now := rule.Contains(w)
			switch {
			case now && !inside:
				left = e
			case !now && inside:
				t.emitTrapezoid(left, e, ya, yb)
			}
			inside = now
		}
	}

	return slices.Clone(t.out)
}

// collectEdges builds the edge list of all contours, skipping horizontal
// edges.
func (t *Tessellator) collectEdges(contours [][]vec.Vec2) {
	t.edges = t.edges[:0]
	for _, contour := range contours {
		n := len(contour)
		if n < 3 {
			continue
		}
		for i := range n {
			t.addEdge(contour[i], contour[(i+1)%n])
		}
	}
}

func (t *Tessellator) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	e := polyEdge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e = polyEdge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	t.edges = append(t.edges, e)
}

// collectSlabBoundaries gathers the sorted, de-duplicated y coordinates of
// all edge end points and of all proper edge intersections.
func (t *Tessellator) collectSlabBoundaries() {
	t.ys = t.ys[:0]
	for i := range t.edges {
		t.ys = append(t.ys, t.edges[i].y0, t.edges[i].y1)
	}
	for i := range t.edges {
		ei := &t.edges[i]
		for j := i + 1; j < len(t.edges); j++ {
			ej := &t.edges[j]
			lo := max(ei.y0, ej.y0)
			hi := min(ei.y1, ej.y1)
			if hi-lo < horizontalEdgeThreshold {
				continue
			}
			dLo := ei.xAt(lo) - ej.xAt(lo)
			dHi := ei.xAt(hi) - ej.xAt(hi)
			if (dLo < 0 && dHi > 0) || (dLo > 0 && dHi < 0) {
				t.ys = append(t.ys, lo+(hi-lo)*dLo/(dLo-dHi))
			}
		}
	}
	slices.Sort(t.ys)
	t.ys = slices.CompactFunc(t.ys, func(a, b float64) bool {
		return math.Abs(a-b) < horizontalEdgeThreshold
	})
}

// emitTrapezoid emits the part of the slab [ya, yb] between the edges l and
// r as up to two triangles. Triangles without width are dropped.
func (t *Tessellator) emitTrapezoid(l, r *polyEdge, ya, yb float64) {
	la, lb := l.xAt(ya), l.xAt(yb)
	ra, rb := r.xAt(ya), r.xAt(yb)
	p0 := vec.Vec2{X: la, Y: ya}
	p1 := vec.Vec2{X: ra, Y: ya}
	p2 := vec.Vec2{X: rb, Y: yb}
	p3 := vec.Vec2{X: lb, Y: yb}
	if ra-la > horizontalEdgeThreshold {
		t.out = append(t.out, p0, p1, p2)
	}
	if rb-lb > horizontalEdgeThreshold {
		t.out = append(t.out, p0, p2, p3)
	}
}

// TriangleArea returns the total area of a flat triangle list as produced
// by Tessellate.
func TriangleArea(triangles []vec.Vec2) float64 {
	var area float64
	for i := 0; i+2 < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		area += math.Abs(b.Sub(a).X*c.Sub(a).Y-b.Sub(a).Y*c.Sub(a).X) / 2
	}
	return area
}

// Bounds returns the smallest axis-aligned rectangle containing all points.
// The zero rectangle is returned for an empty list.
func Bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}
