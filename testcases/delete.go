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

var deleteCases = []Case{
	{
		Name:   "square_vertex",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			b.Square("abcd", 10, 10, 80)
			b.Face("f", SquareCycle("abcd"))
		},
		Op:   HardDelete{Cells: []string{"a"}},
		Want: Counts{Vertices: 3, Edges: 2},
	},
	{
		Name:   "chain_edge_isolated",
		Width:  100,
		Height: 100,
		Build:  chain,
		Op:     HardDelete{Cells: []string{"ab"}, DeleteIsolatedVertices: true},
		Want:   Counts{Vertices: 2, Edges: 1},
	},
	{
		Name:   "annulus_hole",
		Width:  100,
		Height: 100,
		Build:  annulus,
		Op:     HardDelete{Cells: []string{"ef"}},
		Want:   Counts{Vertices: 8, Edges: 7},
	},
	{
		Name:   "inbetween",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			b.Vertex("v0", 20, 50)
			b.Vertex("v1", 80, 50)
			b.InbetweenVertex("iv", "v0", "v1")
		},
		Op:   HardDelete{Cells: []string{"v0"}},
		Want: Counts{Vertices: 1},
	},
	{
		Name:   "inbetween_isolated",
		Width:  100,
		Height: 100,
		Build: func(b *Builder) {
			b.Vertex("v0", 20, 50)
			b.Vertex("v1", 80, 50)
			b.InbetweenVertex("iv", "v0", "v1")
		},
		Op:   HardDelete{Cells: []string{"iv"}, DeleteIsolatedVertices: true},
		Want: Counts{},
	},
}

var softCases = []Case{
	{
		Name:   "square_diagonal",
		Width:  100,
		Height: 100,
		Build:  squareDiagonal,
		Op:     SoftDelete{Cells: []string{"ac"}},
		Want:   Counts{Vertices: 4, Edges: 4, Faces: 1, Area: 6400},
	},
	{
		Name:   "chain_abc",
		Width:  100,
		Height: 100,
		Build:  chain,
		Op:     SoftDelete{Cells: []string{"b"}},
		Want:   Counts{Vertices: 2, Edges: 1},
	},
	{
		Name:   "t_junction",
		Width:  100,
		Height: 100,
		Build:  tJunction,
		Op:     SoftDelete{Cells: []string{"o"}, DeleteIsolatedVertices: true},
		Want:   Counts{},
	},
	{
		Name:   "t_junction_branch",
		Width:  100,
		Height: 100,
		Build:  tJunction,
		Op:     SoftDelete{Cells: []string{"oy"}},
		Want:   Counts{Vertices: 3, Edges: 1},
	},
	{
		Name:   "annulus_hole",
		Width:  100,
		Height: 100,
		Build:  annulus,
		Op:     SoftDelete{Cells: []string{"ef"}},
		Want:   Counts{Vertices: 8, Edges: 7, Faces: 1, Area: 6400},
	},
	{
		Name:   "annulus_outer",
		Width:  100,
		Height: 100,
		Build:  annulus,
		Op:     SoftDelete{Cells: []string{"ab"}},
		Want:   Counts{Vertices: 8, Edges: 7},
	},
	{
		Name:   "dangling_edge",
		Width:  100,
		Height: 100,
		Build:  danglingEdge,
		Op:     SoftDelete{Cells: []string{"p"}, DeleteIsolatedVertices: true},
		Want:   Counts{Vertices: 4, Edges: 4, Faces: 1, Area: 6400},
	},
	{
		Name:   "shared_corner",
		Width:  100,
		Height: 100,
		Build:  twoSquares,
		Op:     SoftDelete{Cells: []string{"m"}},
		Want:   Counts{Vertices: 5, Edges: 5, Faces: 1, Area: 3200},
	},
}

// annulus is a square face with a square hole.
func annulus(b *Builder) {
	b.Square("abcd", 10, 10, 80)
	b.Square("efgh", 30, 30, 40)
	b.Face("f", SquareCycle("abcd"), SquareCycle("efgh"))
}

// twoSquares is a pair of square faces sharing the edge nm.
func twoSquares(b *Builder) {
	b.Vertex("a", 10, 30)
	b.Vertex("n", 50, 30)
	b.Vertex("b", 90, 30)
	b.Vertex("c", 90, 70)
	b.Vertex("m", 50, 70)
	b.Vertex("d", 10, 70)
	b.Edge("an", "a", "n")
	b.Edge("nb", "n", "b")
	b.Edge("bc", "b", "c")
	b.Edge("cm", "c", "m")
	b.Edge("md", "m", "d")
	b.Edge("da", "d", "a")
	b.Edge("nm", "n", "m")
	b.Face("left", []string{"an", "nm", "md", "da"})
	b.Face("right", []string{"nb", "bc", "cm", "-nm"})
}
