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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// OutlineStyle describes how the centerline of an edge is widened into an
// area.
type OutlineStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Flatness is the maximum distance between round caps and joins and
	// their polygonal approximation.  Zero selects DefaultFlatness.
	Flatness float64
}

// DefaultOutlineStyle returns the style used for edges which do not set
// their own: round caps, round joins and a miter limit of 10.
func DefaultOutlineStyle(width float64) OutlineStyle {
	return OutlineStyle{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
		Flatness:   DefaultFlatness,
	}
}

// piece is one straight piece of a sampled centerline.
type piece struct {
	A, B vec.Vec2 // start and end point
	T    vec.Vec2 // unit tangent
	N    vec.Vec2 // unit normal, T rotated by +90°
}

func (p piece) reversed() piece {
	return piece{A: p.B, B: p.A, T: p.T.Mul(-1), N: p.N.Mul(-1)}
}

// outliner accumulates the polygons of a stroke outline.
type outliner struct {
	OutlineStyle
	d   float64 // half width
	cur []vec.Vec2
}

// Outline returns the closed polygons whose union, under the non-zero
// winding rule, is the area covered by drawing the polyline through samples
// with the given style. If closed is set, the last sample is expected to
// coincide with the first and no caps are drawn.
//
// An open outline is a single polygon: the start cap, the left side, the
// end cap and the right side. A closed outline consists of two rings of
// opposite orientation.
func Outline(samples []Sample, closed bool, style OutlineStyle) [][]vec.Vec2 {
	if style.Width <= 0 || len(samples) == 0 {
		return nil
	}
	if style.Flatness <= 0 {
		style.Flatness = DefaultFlatness
	}
	o := &outliner{OutlineStyle: style, d: style.Width / 2}

	pieces := make([]piece, 0, len(samples))
	for i := 0; i+1 < len(samples); i++ {
		a, b := samples[i].Pos, samples[i+1].Pos
		l := b.Sub(a).Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := b.Sub(a).Mul(1 / l)
		pieces = append(pieces, piece{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
	}

	if len(pieces) == 0 {
		return o.dot(samples[0].Pos)
	}

	back := make([]piece, len(pieces))
	for i, p := range pieces {
		back[len(pieces)-1-i] = p.reversed()
	}

	if closed {
		o.side(pieces, true)
		front := o.take()
		o.side(back, true)
		return [][]vec.Vec2{front, o.take()}
	}

	first, last := pieces[0], pieces[len(pieces)-1]
	o.addCap(first.A, first.T.Mul(-1))
	o.side(pieces, false)
	o.addCap(last.B, last.T)
	o.side(back, false)
	return [][]vec.Vec2{o.take()}
}

// dot returns the outline of a stroke without extent.
func (o *outliner) dot(p vec.Vec2) [][]vec.Vec2 {
	switch o.Cap {
	case graphics.LineCapRound:
		o.addArc(p, vec.Vec2{X: 1}, -2*math.Pi, true)
	case graphics.LineCapSquare:
		d := o.d
		o.cur = append(o.cur,
			vec.Vec2{X: p.X + d, Y: p.Y + d},
			vec.Vec2{X: p.X + d, Y: p.Y - d},
			vec.Vec2{X: p.X - d, Y: p.Y - d},
			vec.Vec2{X: p.X - d, Y: p.Y + d},
		)
	default:
		return nil
	}
	return [][]vec.Vec2{o.take()}
}

func (o *outliner) take() []vec.Vec2 {
	res := o.cur
	o.cur = nil
	return res
}

// side emits the offset curve on the +N side of the pieces. For a closed
// polyline the corner between the last and the first piece is included and
// no end points are emitted.
func (o *outliner) side(pieces []piece, closed bool) {
	d := o.d
	if !closed {
		o.cur = append(o.cur, pieces[0].A.Add(pieces[0].N.Mul(d)))
	}
	for i, p := range pieces {
		if i+1 < len(pieces) {
			o.corner(p, pieces[i+1])
		} else if closed {
			o.corner(p, pieces[0])
		}
	}
	if !closed {
		last := pieces[len(pieces)-1]
		o.cur = append(o.cur, last.B.Add(last.N.Mul(d)))
	}
}

// corner emits the +N side geometry where piece p turns into piece q.
func (o *outliner) corner(p, q piece) {
	d := o.d
	sin := p.T.X*q.T.Y - p.T.Y*q.T.X
	switch {
	case math.Abs(sin) < collinearityThreshold:
		o.cur = append(o.cur, p.B.Add(p.N.Mul(d)))
	case sin > 0:
		// The path turns towards +N, this is the inner side.
		if pt, ok := innerIntersection(p.B, p.T, q.T, d); ok {
			o.cur = append(o.cur, pt)
		} else {
			o.cur = append(o.cur, p.B.Add(p.N.Mul(d)), q.A.Add(q.N.Mul(d)))
		}
	default:
		o.cur = append(o.cur, p.B.Add(p.N.Mul(d)))
		o.addJoin(p.B, p.T, q.T)
		o.cur = append(o.cur, q.A.Add(q.N.Mul(d)))
	}
}

// innerIntersection returns the point where the +N offset lines of two
// pieces meeting at P intersect. ok is false if the corner is too close to
// straight or to a cusp for the intersection to be meaningful.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 || cos < cuspCosineThreshold {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cos) / 2)

	bisector := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
	l := bisector.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(bisector.Mul(d / (l * cosHalf))), true
}

// addJoin adds the join geometry on the outer (+N) side of a corner at P
// where the tangent changes from T1 to T2. The offset points on both sides
// of the join are emitted by the caller.
func (o *outliner) addJoin(P, T1, T2 vec.Vec2) {
	cos := T1.Dot(T2)
	if cos < cuspCosineThreshold {
		// The path doubles back; a cap around the turning point covers it.
		o.addCap(P, T1)
		return
	}

	switch o.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the half width is 1/cos(θ/2),
		// where θ is the angle between the tangents.
		cosHalf := math.Sqrt((1 + cos) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= o.MiterLimit+miterEpsilon {
			bisector := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
			if l := bisector.Length(); l > zeroLengthThreshold {
				o.cur = append(o.cur, P.Add(bisector.Mul(o.d/(l*cosHalf))))
			}
		}
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		o.addArc(P, vec.Vec2{X: -T1.Y, Y: T1.X}, -angle, false)
	}
	// LineJoinBevel needs no extra points.
}

// addCap adds a cap at P, where T is the unit tangent pointing away from
// the stroke. The cap runs from the +N side to the -N side of T.
func (o *outliner) addCap(P, T vec.Vec2) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch o.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(o.d))
		o.cur = append(o.cur, ext.Add(N.Mul(o.d)), ext.Sub(N.Mul(o.d)))
	case graphics.LineCapRound:
		o.addArc(P, N, -math.Pi, true)
	}
	// LineCapButt needs no extra points.
}

// addArc adds points along a circular arc of radius o.d around center,
// starting in direction startDir and sweeping by sweep radians
// (positive is counter-clockwise).  The start point is only emitted if
// includeStart is set.
func (o *outliner) addArc(center, startDir vec.Vec2, sweep float64, includeStart bool) {
	radius := o.d

	// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
	n := 1
	if radius > o.Flatness {
		step := 2 * math.Acos(1-o.Flatness/radius)
		if step > 0 && !math.IsNaN(step) {
			n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
		}
	}

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		o.cur = append(o.cur, center.Add(dir.Mul(radius)))
	}
}
