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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// WindingRule decides from a winding number whether a point is inside a
// region bounded by several contours.
type WindingRule int

const (
	// Odd selects points with an odd winding number (the even-odd rule).
	Odd WindingRule = iota

	// NonZero selects points with a non-zero winding number.
	NonZero

	// Positive selects points with a positive winding number.
	Positive

	// Negative selects points with a negative winding number.
	Negative
)

func (r WindingRule) String() string {
	switch r {
	case Odd:
		return "odd"
	case NonZero:
		return "nonzero"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(r))
	}
}

// Contains reports whether winding number w counts as inside.
func (r WindingRule) Contains(w int) bool {
	switch r {
	case Odd:
		return w%2 != 0
	case NonZero:
		return w != 0
	case Positive:
		return w > 0
	case Negative:
		return w < 0
	default:
		panic(fmt.Sprintf("curve: unknown winding rule %d", int(r)))
	}
}

// WindingNumber returns the signed number of times the closed polygon
// contour winds around p. The polygon is closed implicitly from its last
// point back to the first. Contours with fewer than three points enclose
// nothing.
//
// Upward crossings (increasing y) to the right of p count +1, downward
// crossings count -1.
func WindingNumber(contour []vec.Vec2, p vec.Vec2) int {
	n := len(contour)
	if n < 3 {
		return 0
	}
	w := 0
	a := contour[n-1]
	for _, b := range contour {
		if a.Y <= p.Y {
			if b.Y > p.Y && isLeft(a, b, p) > 0 {
				w++
			}
		} else {
			if b.Y <= p.Y && isLeft(a, b, p) < 0 {
				w--
			}
		}
		a = b
	}
	return w
}

// isLeft returns a positive value if p lies left of the directed line
// through a and b, a negative value if it lies right of it, and zero if
// the three points are collinear.
func isLeft(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// SignedArea returns the signed area enclosed by the closed polygon
// contour. The sign follows the orientation used by WindingNumber.
func SignedArea(contour []vec.Vec2) float64 {
	n := len(contour)
	if n < 3 {
		return 0
	}
	var sum float64
	a := contour[n-1]
	for _, b := range contour {
		sum += a.X*b.Y - b.X*a.Y
		a = b
	}
	return sum / 2
}
