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

package testcases

var uncutCases = []Case{
	{
		Name:   "square_diagonal",
		Width:  100,
		Height: 100,
		Build:  squareDiagonal,
		Op:     UncutEdge{Cell: "ac"},
		Want:   Counts{Vertices: 4, Edges: 4, Faces: 1, Area: 6400},
	},
	{
		Name:   "chain_abc",
		Width:  100,
		Height: 100,
		Build:  chain,
		Op:     UncutVertex{Cell: "b"},
		Want:   Counts{Vertices: 2, Edges: 1},
	},
	{
		Name:   "chain_smooth",
		Width:  100,
		Height: 100,
		Build:  chain,
		Op:     UncutVertex{Cell: "b", SmoothJoin: true},
		Want:   Counts{Vertices: 2, Edges: 1},
	},
	{
		Name:   "self_loop",
		Width:  100,
		Height: 100,
		Build:  selfLoop,
		Op:     UncutVertex{Cell: "v"},
		Want:   Counts{Edges: 1},
	},
	{
		Name:   "self_loop_face",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			selfLoop(b)
			b.Face("f", []string{"loop"})
		},
		Op:   UncutVertex{Cell: "v"},
		Want: Counts{Edges: 1, Faces: 1, Area: 3600},
	},
	{
		Name:   "steiner",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			b.Square("abcd", 10, 10, 80)
			b.Vertex("s", 50, 50)
			b.Face("f", SquareCycle("abcd"), []string{"@s"})
		},
		Op:   UncutVertex{Cell: "s"},
		Want: Counts{Vertices: 4, Edges: 4, Faces: 1, Area: 6400},
	},
	{
		Name:   "t_junction",
		Width:  100,
		Height: 100,
		Build:  tJunction,
		Op:     UncutVertex{Cell: "o"},
		Want:   Counts{Vertices: 4, Edges: 3, Rejected: true},
	},
	{
		Name:   "dangling_edge",
		Width:  100,
		Height: 100,
		Build:  danglingEdge,
		Op:     UncutEdge{Cell: "bp"},
		Want:   Counts{Vertices: 5, Edges: 4, Faces: 1, Area: 6400},
	},
	{
		Name:   "border_edge",
		Width:  100,
		Height: 100,
		Build:  squareDiagonal,
		Op:     UncutEdge{Cell: "ab"},
		Want:   Counts{Vertices: 4, Edges: 5, Faces: 2, Area: 6400, Rejected: true},
	},
	{
		Name:   "disk",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			b.Square("abcd", 10, 10, 80)
			b.ClosedEdge("circle", pt(30, 30), pt(70, 30), pt(70, 70), pt(30, 70))
			b.Face("inside", []string{"circle"})
			b.Face("outside", SquareCycle("abcd"), []string{"-circle"})
		},
		Op:   UncutEdge{Cell: "circle"},
		Want: Counts{Vertices: 4, Edges: 4, Faces: 1, Area: 6400},
	},
}

// squareDiagonal is a square split into two triangles along ac.
func squareDiagonal(b *Builder) {
	b.Square("abcd", 10, 10, 80)
	b.Edge("ac", "a", "c")
	b.Face("lower", []string{"ab", "bc", "-ac"})
	b.Face("upper", []string{"ac", "cd", "da"})
}

// chain is a path of two edges.
func chain(b *Builder) {
	b.Vertex("a", 10, 20)
	b.Vertex("b", 50, 80)
	b.Vertex("c", 90, 20)
	b.Edge("ab", "a", "b")
	b.Edge("bc", "b", "c", pt(70, 60))
}

// selfLoop is a single edge starting and ending at v.
func selfLoop(b *Builder) {
	b.Vertex("v", 20, 20)
	b.Edge("loop", "v", "v", pt(80, 20), pt(80, 80), pt(20, 80))
}

// tJunction has three edges meeting at o.
func tJunction(b *Builder) {
	b.Vertex("o", 50, 50)
	b.Vertex("x", 90, 50)
	b.Vertex("y", 50, 90)
	b.Vertex("z", 10, 50)
	b.Edge("ox", "o", "x")
	b.Edge("oy", "o", "y")
	b.Edge("oz", "o", "z")
}

// danglingEdge is a square face with an edge sticking into it from b.
func danglingEdge(b *Builder) {
	b.Square("abcd", 10, 10, 80)
	b.Vertex("p", 50, 50)
	b.Edge("bp", "b", "p")
	b.Face("f", []string{"ab", "bp", "-bp", "bc", "cd", "da"})
}
