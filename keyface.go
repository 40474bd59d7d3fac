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
	"maps"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vac/curve"
)

// KeyFace is a region at a single instant of time, bounded by an ordered
// list of cycles.  The cells used by the cycles form the boundary of the
// face.
type KeyFace struct {
	cellBase
	cycles     []KeyCycle
	rule       curve.WindingRule
	time       float64
	properties map[string]string

	mesh         *FillMesh // nil until computed
	computing    bool
	computeCount int
}

// FillMesh is the triangulated interior of a face.
type FillMesh struct {
	// Triangles lists the triangle corners, three consecutive points per
	// triangle.
	Triangles []vec.Vec2

	// Bounds is the bounding box of all triangles.
	Bounds rect.Rect
}

// KeyFaceVertexUsageIndex locates a vertex within the cycles of a face.
// For a Steiner cycle the only component is the Steiner vertex; for a
// cycle of open halfedges component i is the start vertex of halfedge i.
type KeyFaceVertexUsageIndex struct {
	Cycle     int
	Component int
}

func (f *KeyFace) Type() CellType { return KeyFaceType }

// Cycles returns the boundary cycles of the face.
func (f *KeyFace) Cycles() []KeyCycle {
	res := make([]KeyCycle, len(f.cycles))
	for i, c := range f.cycles {
		res[i] = KeyCycle{steiner: c.steiner, halfedges: slices.Clone(c.halfedges)}
	}
	return res
}

// NumCycles returns the number of boundary cycles.
func (f *KeyFace) NumCycles() int { return len(f.cycles) }

// WindingRule returns the rule used to decide which points are inside.
func (f *KeyFace) WindingRule() curve.WindingRule { return f.rule }

// Time returns the time at which the face exists.
func (f *KeyFace) Time() float64 { return f.time }

// Property returns the value stored under key.
func (f *KeyFace) Property(key string) (string, bool) {
	v, ok := f.properties[key]
	return v, ok
}

// Properties returns a copy of all properties of the face.
func (f *KeyFace) Properties() map[string]string {
	return maps.Clone(f.properties)
}

// FillMesh returns the triangulation of the face interior.  The mesh is
// computed on first use and cached until the boundary or its geometry
// changes.  The returned value is shared and must not be modified.  FillMesh
// returns nil when called while the mesh is being computed.
func (f *KeyFace) FillMesh() *FillMesh {
	if f.mesh != nil {
		return f.mesh
	}
	if f.computing {
		return nil
	}
	f.computing = true
	defer func() { f.computing = false }()

	contours := make([][]vec.Vec2, 0, len(f.cycles))
	for _, c := range f.cycles {
		contours = append(contours, c.contour())
	}
	tris := curve.Tessellate(contours, f.rule)
	f.mesh = &FillMesh{
		Triangles: tris,
		Bounds:    curve.Bounds(tris),
	}
	f.computeCount++
	return f.mesh
}

// Bounds returns the bounding box of the face interior.
func (f *KeyFace) Bounds() rect.Rect {
	if m := f.FillMesh(); m != nil {
		return m.Bounds
	}
	return rect.Rect{}
}

// WindingNumberAt returns the sum of the winding numbers of all cycles
// around p.
func (f *KeyFace) WindingNumberAt(p vec.Vec2) int {
	w := 0
	for _, c := range f.cycles {
		w += curve.WindingNumber(c.contour(), p)
	}
	return w
}

// InteriorContains reports whether p lies inside the face under its
// winding rule.
func (f *KeyFace) InteriorContains(p vec.Vec2) bool {
	return f.rule.Contains(f.WindingNumberAt(p))
}

// VertexUsage returns the vertex at the given position of the cycles.  An
// invalid index gives a *IndexError.
func (f *KeyFace) VertexUsage(idx KeyFaceVertexUsageIndex) (*KeyVertex, error) {
	if idx.Cycle < 0 || idx.Cycle >= len(f.cycles) {
		return nil, &IndexError{Index: idx, NumCycles: len(f.cycles), NumComponents: -1}
	}
	c := f.cycles[idx.Cycle]
	n := numVertexUsages(c)
	if idx.Component < 0 || idx.Component >= n {
		return nil, &IndexError{Index: idx, NumCycles: len(f.cycles), NumComponents: n}
	}
	if c.steiner != nil {
		return c.steiner, nil
	}
	return c.halfedges[idx.Component].StartVertex(), nil
}

// MustVertexUsage is like VertexUsage but panics with a *IndexError if
// the index is invalid.
func (f *KeyFace) MustVertexUsage(idx KeyFaceVertexUsageIndex) *KeyVertex {
	v, err := f.VertexUsage(idx)
	if err != nil {
		panic(err)
	}
	return v
}

func numVertexUsages(c KeyCycle) int {
	switch {
	case c.steiner != nil:
		return 1
	case len(c.halfedges) > 0 && c.halfedges[0].IsClosed():
		return 0
	default:
		return len(c.halfedges)
	}
}

// containedRatio returns the fraction of sample points of c which lie
// inside other, using the even-odd rule.
func containedRatio(c, other KeyCycle, n int) float64 {
	if other.steiner != nil {
		return 0
	}
	pts := c.samplePoints(n)
	if len(pts) == 0 {
		return 0
	}
	contour := other.contour()
	inside := 0
	for _, p := range pts {
		if curve.Odd.Contains(curve.WindingNumber(contour, p)) {
			inside++
		}
	}
	return float64(inside) / float64(len(pts))
}

// assignFromConcatStep combines the properties of two faces which are
// merged into one.  Values of a take precedence.
func assignFromConcatStep(a, b map[string]string) map[string]string {
	res := maps.Clone(a)
	if res == nil {
		res = make(map[string]string)
	}
	for k, v := range b {
		if _, ok := res[k]; !ok {
			res[k] = v
		}
	}
	return res
}
