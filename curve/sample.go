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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Sample is a point on the flattened centerline of a stroke.
type Sample struct {
	Pos vec.Vec2
	S   float64 // arc length from the start of the stroke
}

// Position returns the position of the sample.
func (s Sample) Position() vec.Vec2 {
	return s.Pos
}

// Sample flattens the stroke into a polyline. Curves are subdivided until
// the flattening error is below flatness. For a closed stroke the last
// sample coincides with the first one. Consecutive duplicate points are
// dropped.
func (s Stroke) Sample(flatness float64) []Sample {
	if s.IsEmpty() {
		return nil
	}
	if flatness <= 0 {
		flatness = DefaultFlatness
	}
	start, segs, closed := split(s.Path)

	samples := []Sample{{Pos: start}}
	emit := func(_, to vec.Vec2) {
		last := samples[len(samples)-1]
		d := to.Sub(last.Pos).Length()
		if d < zeroLengthThreshold {
			return
		}
		samples = append(samples, Sample{Pos: to, S: last.S + d})
	}

	cur := start
	for _, seg := range segs {
		switch seg.cmd {
		case path.CmdLineTo:
			emit(cur, seg.pts[0])
		case path.CmdQuadTo:
			flattenQuadratic(cur, seg.pts[0], seg.pts[1], flatness, emit)
		case path.CmdCubeTo:
			flattenCubic(cur, seg.pts[0], seg.pts[1], seg.pts[2], flatness, emit)
		}
		cur = seg.pts[len(seg.pts)-1]
	}
	if closed {
		emit(cur, start)
	}
	return samples
}

// Reverse returns the samples of the reversed stroke. Arc lengths are
// recomputed from the new start.
func Reverse(samples []Sample) []Sample {
	out := slices.Clone(samples)
	slices.Reverse(out)
	if len(out) == 0 {
		return out
	}
	total := out[0].S
	for i := range out {
		out[i].S = total - out[i].S
	}
	return out
}

// Length returns the arc length of the sampled polyline.
func Length(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[len(samples)-1].S
}

// PointAt returns the point at arc length s along the samples. Values
// outside the valid range are clamped.
func PointAt(samples []Sample, s float64) vec.Vec2 {
	switch len(samples) {
	case 0:
		return vec.Vec2{}
	case 1:
		return samples[0].Pos
	}
	if s <= 0 {
		return samples[0].Pos
	}
	if s >= Length(samples) {
		return samples[len(samples)-1].Pos
	}
	i, _ := slices.BinarySearchFunc(samples, s, func(a Sample, s float64) int {
		switch {
		case a.S < s:
			return -1
		case a.S > s:
			return 1
		}
		return 0
	})
	if i == 0 {
		return samples[0].Pos
	}
	a, b := samples[i-1], samples[i]
	if b.S <= a.S {
		return a.Pos
	}
	t := (s - a.S) / (b.S - a.S)
	return a.Pos.Add(b.Pos.Sub(a.Pos).Mul(t))
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line
// segment. p0 is the start point, p1 is the control point, p2 the end point.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > flatness {
		n = int(math.Ceil(math.Sqrt(errLen / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment,
// choosing the number of segments with Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// Default values and numerical tolerances.
const (
	// DefaultFlatness is the default curve flattening tolerance, in the
	// same units as the stroke coordinates.
	DefaultFlatness = 0.25

	// zeroLengthThreshold is the minimum length for a polyline segment.
	// Shorter segments are dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	// (path doubling back on itself). cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999

	// horizontalEdgeThreshold is the minimum vertical extent for a polygon
	// edge to take part in tessellation.
	horizontalEdgeThreshold = 1e-10
)
