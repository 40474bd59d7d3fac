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

// ID identifies a node within its complex.  IDs are never reused.
type ID int64

// Node is an element of the group tree of a complex: either a [*Group] or
// a [Cell].
type Node interface {
	// ID returns the identifier of the node.
	ID() ID

	// Parent returns the group containing the node.  It returns nil for
	// the root group and for destroyed nodes.
	Parent() *Group

	// Complex returns the complex owning the node.
	Complex() *Complex

	node() *nodeBase
}

type nodeBase struct {
	id     ID
	cx     *Complex
	parent *Group
}

func (n *nodeBase) ID() ID            { return n.id }
func (n *nodeBase) Parent() *Group    { return n.parent }
func (n *nodeBase) Complex() *Complex { return n.cx }
func (n *nodeBase) node() *nodeBase   { return n }
func (n *nodeBase) alive() bool       { return n.cx != nil && n.cx.nodes[n.id] != nil }
func (n *nodeBase) isRoot() bool      { return n.cx != nil && n.cx.root != nil && n.id == n.cx.root.id }

// Group is an inner node of the group tree.  Its children are ordered
// from bottom to top: earlier children are drawn first.
type Group struct {
	nodeBase
	children []Node
}

// Children returns the children of the group, bottommost first.
func (g *Group) Children() []Node {
	return slices.Clone(g.children)
}

// NumChildren returns the number of children of the group.
func (g *Group) NumChildren() int {
	return len(g.children)
}

func (g *Group) indexOf(n Node) int {
	return slices.IndexFunc(g.children, func(c Node) bool {
		return c.node() == n.node()
	})
}

// isAncestorOf reports whether n lies strictly below g in the tree.
func (g *Group) isAncestorOf(n Node) bool {
	for p := n.Parent(); p != nil; p = p.parent {
		if p == g {
			return true
		}
	}
	return false
}

// descendants appends g and all nodes below it in preorder.
func descendants(n Node, out []Node) []Node {
	out = append(out, n)
	if g, ok := n.(*Group); ok {
		for _, c := range g.children {
			out = descendants(c, out)
		}
	}
	return out
}
