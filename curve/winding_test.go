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
	"testing"

	"seehuhn.de/go/geom/vec"
)

var unitSquare = []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

func reversedContour(c []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

func TestWindingNumber(t *testing.T) {
	inside := vec.Vec2{X: 0.5, Y: 0.5}
	outside := vec.Vec2{X: 1.5, Y: 0.5}

	if w := WindingNumber(unitSquare, inside); w != 1 {
		t.Errorf("counter-clockwise square: got %d, want 1", w)
	}
	if w := WindingNumber(reversedContour(unitSquare), inside); w != -1 {
		t.Errorf("clockwise square: got %d, want -1", w)
	}
	if w := WindingNumber(unitSquare, outside); w != 0 {
		t.Errorf("outside point: got %d, want 0", w)
	}
	if w := WindingNumber(unitSquare[:2], inside); w != 0 {
		t.Errorf("degenerate contour: got %d, want 0", w)
	}

	// a contour going around twice
	double := append(append([]vec.Vec2{}, unitSquare...), unitSquare...)
	if w := WindingNumber(double, inside); w != 2 {
		t.Errorf("double square: got %d, want 2", w)
	}
}

func TestWindingRuleContains(t *testing.T) {
	cases := []struct {
		rule WindingRule
		w    int
		want bool
	}{
		{Odd, 0, false},
		{Odd, 1, true},
		{Odd, -1, true},
		{Odd, 2, false},
		{NonZero, 0, false},
		{NonZero, -2, true},
		{NonZero, 2, true},
		{Positive, 1, true},
		{Positive, -1, false},
		{Negative, -1, true},
		{Negative, 1, false},
		{Negative, 0, false},
	}
	for _, tc := range cases {
		if got := tc.rule.Contains(tc.w); got != tc.want {
			t.Errorf("%s.Contains(%d) = %t, want %t", tc.rule, tc.w, got, tc.want)
		}
	}
}

func TestWindingRuleUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown winding rule")
		}
	}()
	WindingRule(17).Contains(1)
}

func TestSignedArea(t *testing.T) {
	if a := SignedArea(unitSquare); math.Abs(a-1) > 1e-12 {
		t.Errorf("counter-clockwise area: got %g, want 1", a)
	}
	if a := SignedArea(reversedContour(unitSquare)); math.Abs(a+1) > 1e-12 {
		t.Errorf("clockwise area: got %g, want -1", a)
	}
}
