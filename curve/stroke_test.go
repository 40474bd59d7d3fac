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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestStrokeEnds(t *testing.T) {
	a, b, c := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}
	s := Polyline(1, a, b, c)
	if s.IsClosed() {
		t.Error("polyline should be open")
	}
	if s.Start() != a || s.End() != c {
		t.Errorf("got ends %v, %v", s.Start(), s.End())
	}

	closed := s.SnapEnds(a, a).Closed(false)
	if !closed.IsClosed() {
		t.Error("Closed() should give a closed stroke")
	}
	if closed.End() != a {
		t.Errorf("closed stroke should end at its start, got %v", closed.End())
	}

	var empty Stroke
	if !empty.IsEmpty() || empty.IsClosed() {
		t.Error("zero stroke should be empty and open")
	}
}

func TestStrokeReversed(t *testing.T) {
	a, b, c := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}
	s := Stroke{
		Path:  (&path.Data{}).MoveTo(a).LineTo(b).QuadTo(vec.Vec2{X: 2, Y: 0.5}, c),
		Width: 3,
	}
	r := s.Reversed()
	if r.Start() != c || r.End() != a {
		t.Errorf("reversed ends %v, %v", r.Start(), r.End())
	}
	if r.Width != 3 {
		t.Errorf("width changed to %g", r.Width)
	}
	if !r.Reversed().Equal(s) {
		t.Error("reversing twice should give the original stroke")
	}

	// The reversed samples trace the same points.
	fwd := s.Sample(0.01)
	bwd := r.Sample(0.01)
	if math.Abs(Length(fwd)-Length(bwd)) > 1e-9 {
		t.Errorf("lengths differ: %g vs %g", Length(fwd), Length(bwd))
	}
}

func TestStrokeReversedClosed(t *testing.T) {
	s := Polyline(1,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 1, Y: 1},
		vec.Vec2{X: 0, Y: 1},
	)
	s.Path = s.Path.Close()
	r := s.Reversed()
	if !r.IsClosed() {
		t.Fatal("reversed closed stroke should be closed")
	}
	samples := r.Sample(0)
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i, p := range want {
		if !near(samples[i].Pos, p) {
			t.Errorf("sample %d: got %v, want %v", i, samples[i].Pos, p)
		}
	}
}

func TestConcat(t *testing.T) {
	a := Line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, 2)
	b := Line(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}, 4)

	plain := Concat(a, b, false)
	if plain.Start() != a.Start() || plain.End() != b.End() {
		t.Errorf("concat ends %v, %v", plain.Start(), plain.End())
	}
	if plain.Width != 3 {
		t.Errorf("width = %g, want 3", plain.Width)
	}
	if got := Length(plain.Sample(0)); math.Abs(got-2) > 1e-9 {
		t.Errorf("length = %g, want 2", got)
	}

	smooth := Concat(a, b, true)
	_, segs, _ := split(smooth.Path)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	junction := segs[0].pts[2]
	if !near(junction, vec.Vec2{X: 1, Y: 0}) {
		t.Errorf("junction moved to %v", junction)
	}
	tIn := junction.Sub(segs[0].pts[1])
	tOut := segs[1].pts[0].Sub(junction)
	if cross := tIn.X*tOut.Y - tIn.Y*tOut.X; math.Abs(cross) > 1e-9 {
		t.Errorf("tangents at the junction are not collinear: %v, %v", tIn, tOut)
	}
	if tIn.Dot(tOut) <= 0 {
		t.Errorf("tangents at the junction point in opposite directions")
	}
}

func TestClosedSmooth(t *testing.T) {
	s := Polyline(1,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 2, Y: 0},
		vec.Vec2{X: 1, Y: 2},
		vec.Vec2{X: 0, Y: 0},
	).Closed(true)
	start, segs, closed := split(s.Path)
	if !closed {
		t.Fatal("stroke should be closed")
	}
	last := segs[len(segs)-1]
	if last.pts[len(last.pts)-1] != start {
		t.Errorf("last point %v should equal start %v", last.pts[len(last.pts)-1], start)
	}
	tIn := start.Sub(last.pts[len(last.pts)-2])
	tOut := segs[0].pts[0].Sub(start)
	if cross := tIn.X*tOut.Y - tIn.Y*tOut.X; math.Abs(cross) > 1e-9 {
		t.Errorf("tangents at the closing point are not collinear: %v, %v", tIn, tOut)
	}
}

func TestSnapEnds(t *testing.T) {
	s := Stroke{
		Path: (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).
			CubeTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 3, Y: 0}),
		Width: 1,
	}
	start := vec.Vec2{X: -1, Y: 0}
	end := vec.Vec2{X: 3, Y: 2}
	snapped := s.SnapEnds(start, end)
	if snapped.Start() != start || snapped.End() != end {
		t.Fatalf("snapped ends %v, %v", snapped.Start(), snapped.End())
	}
	_, segs, _ := split(snapped.Path)
	if !near(segs[0].pts[0], vec.Vec2{X: 0, Y: 1}) {
		t.Errorf("first control point %v, want (0,1)", segs[0].pts[0])
	}
	if !near(segs[0].pts[1], vec.Vec2{X: 2, Y: 3}) {
		t.Errorf("second control point %v, want (2,3)", segs[0].pts[1])
	}

	// the original is unchanged
	if s.Start() != (vec.Vec2{}) {
		t.Errorf("SnapEnds modified its receiver")
	}
}

func TestTransform(t *testing.T) {
	s := Line(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 1}, 1)
	m := matrix.Scale(2, 8).Translate(1, 0)
	out := s.Transform(m)
	if math.Abs(out.Width-4) > 1e-12 {
		t.Errorf("width = %g, want 4", out.Width)
	}
	if want := apply(m, s.End()); out.End() != want {
		t.Errorf("end = %v, want %v", out.End(), want)
	}
	if s.Width != 1 {
		t.Error("Transform modified its receiver")
	}
}
