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
)

// Distance describes the point of a sampled curve closest to a query point.
type Distance struct {
	// Distance is the Euclidean distance to the curve.
	// It is +Inf for an empty curve.
	Distance float64

	// SegmentIndex is the index i of the closest polyline segment, going
	// from samples[i] to samples[i+1]. It is -1 for an empty curve.
	SegmentIndex int

	// SegmentParameter is the position of the closest point within the
	// segment, between 0 and 1.
	SegmentParameter float64

	// Angle is the tangent angle of the segment at the closest point,
	// in radians.
	Angle float64
}

// DistanceToCurve returns the point of the polyline through samples closest
// to p. Ties are resolved in favour of the earliest segment.
func DistanceToCurve(samples []Sample, p vec.Vec2) Distance {
	switch len(samples) {
	case 0:
		return Distance{Distance: math.Inf(1), SegmentIndex: -1}
	case 1:
		return Distance{Distance: p.Sub(samples[0].Pos).Length()}
	}

	best := Distance{Distance: math.Inf(1), SegmentIndex: -1}
	for i := 0; i+1 < len(samples); i++ {
		a, b := samples[i].Pos, samples[i+1].Pos
		ab := b.Sub(a)
		l2 := ab.Dot(ab)
		var t float64
		if l2 > 0 {
			t = max(0, min(1, p.Sub(a).Dot(ab)/l2))
		}
		q := a.Add(ab.Mul(t))
		d := p.Sub(q).Length()
		if d < best.Distance {
			best = Distance{
				Distance:         d,
				SegmentIndex:     i,
				SegmentParameter: t,
				Angle:            math.Atan2(ab.Y, ab.X),
			}
		}
	}
	return best
}

// StartTangent returns the unit direction in which the polyline leaves its
// first sample, ignoring leading segments shorter than zeroLengthThreshold.
// The second result is false if the polyline has no extent.
func StartTangent(samples []Sample) (vec.Vec2, bool) {
	if len(samples) == 0 {
		return vec.Vec2{}, false
	}
	p0 := samples[0].Pos
	for _, s := range samples[1:] {
		d := s.Pos.Sub(p0)
		if l := d.Length(); l > zeroLengthThreshold {
			return d.Mul(1 / l), true
		}
	}
	return vec.Vec2{}, false
}
