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

import "slices"

// treePath returns the child indices leading from the root group to n.
func treePath(n Node) []int {
	var path []int
	for n.Parent() != nil {
		p := n.Parent()
		path = append(path, p.indexOf(n))
		n = p
	}
	slices.Reverse(path)
	return path
}

// preorderCompare orders nodes by a depth-first traversal of the group
// tree, in which a group comes before its children and earlier children
// come before later ones.  Nodes earlier in this order are drawn first.
func preorderCompare(a, b Node) int {
	return slices.Compare(treePath(a), treePath(b))
}

// bottommost returns the node which is drawn first.
func bottommost[T Node](nodes ...T) T {
	return slices.MinFunc(nodes, func(a, b T) int {
		return preorderCompare(a, b)
	})
}
