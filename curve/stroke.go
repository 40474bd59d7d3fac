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

// Package curve implements the geometry of edges: strokes made of Bézier
// segments, their sampling, outlines and the tessellation of closed
// polygons under a winding rule.
package curve

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke is the centerline geometry of an edge together with its width.
//
// Path must consist of a single subpath: one MoveTo followed by LineTo,
// QuadTo and CubeTo commands. A closed stroke ends with a Close command.
type Stroke struct {
	Path  *path.Data
	Width float64
}

// segment is one drawing command of a single-subpath stroke.
// pts holds the control points following the current point;
// the last element is the end point of the segment.
type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

// Line returns an open stroke along the straight line from a to b.
func Line(a, b vec.Vec2, width float64) Stroke {
	return Stroke{
		Path:  (&path.Data{}).MoveTo(a).LineTo(b),
		Width: width,
	}
}

// Polyline returns an open stroke through the given points.
func Polyline(width float64, pts ...vec.Vec2) Stroke {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
	}
	return Stroke{Path: p, Width: width}
}

// IsEmpty reports whether the stroke has no starting point.
func (s Stroke) IsEmpty() bool {
	return s.Path == nil || len(s.Path.Cmds) == 0
}

// IsClosed reports whether the stroke ends with a Close command.
func (s Stroke) IsClosed() bool {
	if s.IsEmpty() {
		return false
	}
	return s.Path.Cmds[len(s.Path.Cmds)-1] == path.CmdClose
}

// Start returns the first point of the stroke.
func (s Stroke) Start() vec.Vec2 {
	if s.IsEmpty() {
		return vec.Vec2{}
	}
	return s.Path.Coords[0]
}

// End returns the last point of the stroke. For a closed stroke this is the
// start point.
func (s Stroke) End() vec.Vec2 {
	if s.IsEmpty() {
		return vec.Vec2{}
	}
	if s.IsClosed() {
		return s.Path.Coords[0]
	}
	return s.Path.Coords[len(s.Path.Coords)-1]
}

// Clone returns a deep copy of the stroke.
func (s Stroke) Clone() Stroke {
	if s.Path == nil {
		return s
	}
	return Stroke{
		Path: &path.Data{
			Cmds:   slices.Clone(s.Path.Cmds),
			Coords: slices.Clone(s.Path.Coords),
		},
		Width: s.Width,
	}
}

// Equal reports whether two strokes have identical commands, coordinates
// and width.
func (s Stroke) Equal(other Stroke) bool {
	if s.Width != other.Width || s.IsEmpty() != other.IsEmpty() {
		return false
	}
	if s.IsEmpty() {
		return true
	}
	return slices.Equal(s.Path.Cmds, other.Path.Cmds) &&
		slices.Equal(s.Path.Coords, other.Path.Coords)
}

// Reversed returns the stroke traversed from its end to its start.
func (s Stroke) Reversed() Stroke {
	if s.IsEmpty() {
		return s
	}
	start, segs, closed := split(s.Path)
	if closed && start != endOf(start, segs) {
		// make the implicit closing line explicit, so that reversal keeps it
		segs = append(segs, segment{cmd: path.CmdLineTo, pts: []vec.Vec2{start}})
	}

	rev := make([]segment, 0, len(segs))
	cur := endOf(start, segs)
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		prev := start
		if i > 0 {
			prev = segs[i-1].pts[len(segs[i-1].pts)-1]
		}
		pts := make([]vec.Vec2, len(seg.pts))
		// control points in reverse order, then the old start as new end
		for j := 0; j < len(seg.pts)-1; j++ {
			pts[j] = seg.pts[len(seg.pts)-2-j]
		}
		pts[len(pts)-1] = prev
		rev = append(rev, segment{cmd: seg.cmd, pts: pts})
	}
	return Stroke{Path: join(cur, rev, closed), Width: s.Width}
}

// Concat returns the stroke a followed by the stroke b. The end of a is
// expected to coincide with the start of b; the start of b is dropped.
// If smoothJoin is set, the tangents on both sides of the junction are made
// collinear.
func Concat(a, b Stroke, smoothJoin bool) Stroke {
	if a.IsEmpty() {
		return b.Clone()
	}
	if b.IsEmpty() {
		return a.Clone()
	}
	startA, segsA, _ := split(a.Path)
	_, segsB, _ := split(b.Path)

	segs := make([]segment, 0, len(segsA)+len(segsB))
	segs = append(segs, segsA...)
	segs = append(segs, segsB...)
	if smoothJoin && len(segsA) > 0 && len(segsB) > 0 {
		i := len(segsA) - 1
		prevA := startA
		if i > 0 {
			prevA = segsA[i-1].pts[len(segsA[i-1].pts)-1]
		}
		segs[i], segs[i+1] = smoothCorner(prevA, segs[i], segs[i+1])
	}

	return Stroke{
		Path:  join(startA, segs, false),
		Width: (a.Width + b.Width) / 2,
	}
}

// Closed returns a closed version of the open stroke s. The end point of s
// is expected to coincide with its start point. If smoothJoin is set, the
// tangents at the junction are made collinear.
func (s Stroke) Closed(smoothJoin bool) Stroke {
	if s.IsEmpty() || s.IsClosed() {
		return s.Clone()
	}
	start, segs, _ := split(s.Path)
	segs = slices.Clone(segs)
	if n := len(segs); n > 0 {
		// the end point of the last segment becomes the start point exactly
		last := segs[n-1]
		pts := slices.Clone(last.pts)
		pts[len(pts)-1] = start
		segs[n-1] = segment{cmd: last.cmd, pts: pts}

		if smoothJoin {
			prev := start
			if n > 1 {
				prev = segs[n-2].pts[len(segs[n-2].pts)-1]
			}
			if n == 1 {
				// a single segment joins with itself
				in, out := smoothCorner(prev, segs[0], segs[0])
				in.pts[0] = out.pts[0]
				segs[0] = in
			} else {
				segs[n-1], segs[0] = smoothCorner(prev, segs[n-1], segs[0])
			}
		}
	}
	return Stroke{Path: join(start, segs, true), Width: s.Width}
}

// SnapEnds returns a copy of the open stroke s whose end points are moved to
// start and end. The control points adjacent to each end point move by the
// same offset, so tangent directions at the ends are preserved.
func (s Stroke) SnapEnds(start, end vec.Vec2) Stroke {
	if s.IsEmpty() || s.IsClosed() {
		return s.Clone()
	}
	p0, segs, _ := split(s.Path)
	if len(segs) == 0 {
		return Stroke{Path: join(start, nil, false), Width: s.Width}
	}
	dStart := start.Sub(p0)
	dEnd := end.Sub(endOf(p0, segs))

	segs = cloneSegments(segs)
	first := &segs[0]
	last := &segs[len(segs)-1]
	if len(segs) == 1 && first.cmd == path.CmdQuadTo {
		first.pts[0] = first.pts[0].Add(dStart.Add(dEnd).Mul(0.5))
	} else {
		if len(first.pts) > 1 {
			first.pts[0] = first.pts[0].Add(dStart)
		}
		if len(last.pts) > 1 {
			last.pts[len(last.pts)-2] = last.pts[len(last.pts)-2].Add(dEnd)
		}
	}
	last.pts[len(last.pts)-1] = end
	return Stroke{Path: join(start, segs, false), Width: s.Width}
}

// Transform applies the affine transformation m to all points of the stroke.
// The width is scaled by the square root of the absolute determinant.
func (s Stroke) Transform(m matrix.Matrix) Stroke {
	out := s.Clone()
	if out.IsEmpty() {
		return out
	}
	for i, p := range out.Path.Coords {
		out.Path.Coords[i] = apply(m, p)
	}
	det := m[0]*m[3] - m[1]*m[2]
	if det < 0 {
		det = -det
	}
	out.Width *= math.Sqrt(det)
	return out
}

// apply maps p through the affine matrix m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// split decomposes a single-subpath path into its start point, its drawing
// segments and a flag telling whether it is closed.
func split(p *path.Data) (start vec.Vec2, segs []segment, closed bool) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			start = p.Coords[coordIdx]
			coordIdx++
		case path.CmdLineTo:
			segs = append(segs, segment{cmd: cmd, pts: p.Coords[coordIdx : coordIdx+1]})
			coordIdx++
		case path.CmdQuadTo:
			segs = append(segs, segment{cmd: cmd, pts: p.Coords[coordIdx : coordIdx+2]})
			coordIdx += 2
		case path.CmdCubeTo:
			segs = append(segs, segment{cmd: cmd, pts: p.Coords[coordIdx : coordIdx+3]})
			coordIdx += 3
		case path.CmdClose:
			closed = true
		}
	}
	return start, segs, closed
}

// join is the inverse of split. The resulting path does not share memory
// with segs.
func join(start vec.Vec2, segs []segment, closed bool) *path.Data {
	p := &path.Data{
		Cmds:   make([]path.Command, 0, len(segs)+2),
		Coords: make([]vec.Vec2, 0, 3*len(segs)+1),
	}
	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, start)
	for _, seg := range segs {
		p.Cmds = append(p.Cmds, seg.cmd)
		p.Coords = append(p.Coords, seg.pts...)
	}
	if closed {
		p.Cmds = append(p.Cmds, path.CmdClose)
	}
	return p
}

func endOf(start vec.Vec2, segs []segment) vec.Vec2 {
	if len(segs) == 0 {
		return start
	}
	last := segs[len(segs)-1]
	return last.pts[len(last.pts)-1]
}

func cloneSegments(segs []segment) []segment {
	out := make([]segment, len(segs))
	for i, seg := range segs {
		out[i] = segment{cmd: seg.cmd, pts: slices.Clone(seg.pts)}
	}
	return out
}

// toCubic converts a segment starting at p0 into an equivalent cubic segment.
func toCubic(p0 vec.Vec2, seg segment) segment {
	switch seg.cmd {
	case path.CmdLineTo:
		p1 := seg.pts[0]
		d := p1.Sub(p0).Mul(1.0 / 3)
		return segment{cmd: path.CmdCubeTo, pts: []vec.Vec2{p0.Add(d), p1.Sub(d), p1}}
	case path.CmdQuadTo:
		c, p1 := seg.pts[0], seg.pts[1]
		return segment{cmd: path.CmdCubeTo, pts: []vec.Vec2{
			p0.Add(c.Sub(p0).Mul(2.0 / 3)),
			p1.Add(c.Sub(p1).Mul(2.0 / 3)),
			p1,
		}}
	default:
		return segment{cmd: seg.cmd, pts: slices.Clone(seg.pts)}
	}
}

// smoothCorner makes the tangents at the junction between in (which starts
// at p0) and out collinear. Both segments are returned as cubic segments.
func smoothCorner(p0 vec.Vec2, in, out segment) (segment, segment) {
	in = toCubic(p0, in)
	junction := in.pts[2]
	out = toCubic(junction, out)

	tIn := junction.Sub(in.pts[1])
	tOut := out.pts[0].Sub(junction)
	lIn, lOut := tIn.Length(), tOut.Length()
	if lIn < zeroLengthThreshold || lOut < zeroLengthThreshold {
		return in, out
	}
	dir := tIn.Mul(1 / lIn).Add(tOut.Mul(1 / lOut))
	l := dir.Length()
	if l < zeroLengthThreshold {
		// the stroke doubles back at the junction, nothing sensible to do
		return in, out
	}
	dir = dir.Mul(1 / l)
	in.pts[1] = junction.Sub(dir.Mul(lIn))
	out.pts[0] = junction.Add(dir.Mul(lOut))
	return in, out
}
