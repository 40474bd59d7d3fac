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

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Complex owns a tree of groups and cells.  Nodes are created and
// destroyed only through the methods of the complex, and all changes are
// reported to observers once the outermost operation completes.
type Complex struct {
	nodes  map[ID]Node
	root   *Group
	nextID ID
	opts   options

	// temporaryCellSet holds the cells touched by a running soft delete.
	temporaryCellSet map[ID]struct{}

	op        opState
	observers map[int]func(Diff)
	nextObs   int
}

// NewComplex returns a complex which contains only an empty root group.
func NewComplex(opts ...Option) *Complex {
	c := &Complex{
		nodes:     make(map[ID]Node),
		opts:      defaultOptions(),
		observers: make(map[int]func(Diff)),
	}
	for _, o := range opts {
		o(&c.opts)
	}
	c.root = &Group{nodeBase: nodeBase{id: c.allocID(), cx: c}}
	c.nodes[c.root.id] = c.root
	return c
}

func (c *Complex) allocID() ID {
	c.nextID++
	return c.nextID
}

func (c *Complex) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return Logger()
}

// Root returns the root group.  The root group is never destroyed.
func (c *Complex) Root() *Group { return c.root }

// Find returns the node with the given id, or nil if there is no such node
// or if the node has been destroyed.
func (c *Complex) Find(id ID) Node {
	return c.nodes[id]
}

// FindCell returns the cell with the given id, or nil.
func (c *Complex) FindCell(id ID) Cell {
	cell, _ := c.nodes[id].(Cell)
	return cell
}

// NumNodes returns the number of nodes, including the root group.
func (c *Complex) NumNodes() int { return len(c.nodes) }

// Nodes returns all nodes ordered by id.
func (c *Complex) Nodes() []Node {
	ids := slices.Sorted(maps.Keys(c.nodes))
	res := make([]Node, len(ids))
	for i, id := range ids {
		res[i] = c.nodes[id]
	}
	return res
}

// Cells returns all cells ordered by id.
func (c *Complex) Cells() []Cell {
	var res []Cell
	for _, n := range c.Nodes() {
		if cell, ok := n.(Cell); ok {
			res = append(res, cell)
		}
	}
	return res
}

func (c *Complex) owns(n Node) bool {
	return !isNilNode(n) && c.nodes[n.ID()] == n
}

// ModifiedFlags describes which aspects of a node changed.
type ModifiedFlags uint32

const (
	ChildrenChanged ModifiedFlags = 1 << iota
	StarChanged
	BoundaryChanged
	BoundaryMeshChanged
	FaceFillMesh
	Style
	GeometryChanged
)

var flagNames = []string{
	"ChildrenChanged",
	"StarChanged",
	"BoundaryChanged",
	"BoundaryMeshChanged",
	"FaceFillMesh",
	"Style",
	"GeometryChanged",
}

func (f ModifiedFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if rest := f &^ (1<<len(flagNames) - 1); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ModifiedNode is one entry of [Diff.Modified].
type ModifiedNode struct {
	ID    ID
	Flags ModifiedFlags
}

// Diff summarizes the changes made by one operation.  Every node appears
// at most once.  Nodes created during the operation are only listed in
// Created, and nodes both created and destroyed are not listed at all.
type Diff struct {
	Created   []ID
	Modified  []ModifiedNode
	Destroyed []ID
}

// IsEmpty reports whether the diff contains no changes.
func (d Diff) IsEmpty() bool {
	return len(d.Created) == 0 && len(d.Modified) == 0 && len(d.Destroyed) == 0
}

// Observe registers fn to be called with the changes of every operation.
// Observers must not modify the complex; doing so panics.  The returned
// function unregisters fn.
func (c *Complex) Observe(fn func(Diff)) (cancel func()) {
	key := c.nextObs
	c.nextObs++
	c.observers[key] = fn
	return func() { delete(c.observers, key) }
}

type opState struct {
	depth     int
	notifying bool
	created   []ID
	modified  map[ID]ModifiedFlags
	destroyed []ID
}

// beginOperation opens an operation scope.  Scopes nest; observers are
// notified when the outermost scope is closed by calling the returned
// function.
func (c *Complex) beginOperation() (end func()) {
	if c.op.notifying {
		panic("vac: operation in progress")
	}
	if c.op.depth == 0 {
		c.op.modified = make(map[ID]ModifiedFlags)
	}
	c.op.depth++
	return func() {
		c.op.depth--
		if c.op.depth == 0 {
			c.flush()
		}
	}
}

func (c *Complex) markCreated(n Node) {
	c.op.created = append(c.op.created, n.ID())
}

func (c *Complex) markModified(n Node, flags ModifiedFlags) {
	if c.op.modified == nil {
		panic("vac: modification outside of an operation")
	}
	c.op.modified[n.ID()] |= flags
}

func (c *Complex) markDestroyed(id ID) {
	c.op.destroyed = append(c.op.destroyed, id)
}

func (c *Complex) flush() {
	created := make(map[ID]bool, len(c.op.created))
	var d Diff
	for _, id := range c.op.created {
		created[id] = true
		if c.nodes[id] != nil {
			d.Created = append(d.Created, id)
		}
	}
	for _, id := range slices.Sorted(maps.Keys(c.op.modified)) {
		if created[id] || c.nodes[id] == nil {
			continue
		}
		d.Modified = append(d.Modified, ModifiedNode{ID: id, Flags: c.op.modified[id]})
	}
	for _, id := range c.op.destroyed {
		if !created[id] {
			d.Destroyed = append(d.Destroyed, id)
		}
	}
	c.op = opState{}

	if d.IsEmpty() || len(c.observers) == 0 {
		return
	}
	c.op.notifying = true
	defer func() { c.op.notifying = false }()
	for _, key := range slices.Sorted(maps.Keys(c.observers)) {
		if fn, ok := c.observers[key]; ok {
			fn(d)
		}
	}
}

// Check verifies the structural invariants of the complex: parent and
// child links agree, boundary and star are symmetric and refer to live
// cells, edges depend on their vertices and faces depend on exactly the
// cells used by their cycles.  All violations found are returned together.
func (c *Complex) Check() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("vac: "+format, args...))
	}

	for _, n := range c.Nodes() {
		nb := n.node()
		if nb.cx != c {
			fail("node %d belongs to another complex", nb.id)
		}
		if n == Node(c.root) {
			if nb.parent != nil {
				fail("root group has a parent")
			}
		} else {
			switch {
			case nb.parent == nil:
				fail("node %d has no parent", nb.id)
			case !c.owns(nb.parent):
				fail("node %d has dead parent %d", nb.id, nb.parent.id)
			case nb.parent.indexOf(n) < 0:
				fail("node %d missing from children of %d", nb.id, nb.parent.id)
			}
		}
		if g, ok := n.(*Group); ok {
			for _, child := range g.children {
				if !c.owns(child) {
					fail("group %d has dead child %d", g.id, child.ID())
				} else if child.Parent() != g {
					fail("child %d of group %d has parent %v", child.ID(), g.id, child.Parent())
				}
			}
		}

		cell, ok := n.(Cell)
		if !ok {
			continue
		}
		cb := cell.cell()
		for _, id := range cb.boundary {
			other, ok := c.nodes[id].(Cell)
			switch {
			case !ok:
				fail("cell %d has dangling boundary member %d", cb.id, id)
			case !other.cell().inStar(cb.id):
				fail("cell %d is in the boundary of %d but not in its star", id, cb.id)
			}
		}
		for _, id := range cb.star {
			other, ok := c.nodes[id].(Cell)
			switch {
			case !ok:
				fail("cell %d has dangling star member %d", cb.id, id)
			case !other.cell().inBoundary(cb.id):
				fail("cell %d is in the star of %d but not in its boundary", id, cb.id)
			}
		}

		var want []Cell
		switch x := cell.(type) {
		case *KeyVertex:
		case *KeyEdge:
			if x.start != nil {
				want = []Cell{x.start, x.end}
			}
		case *KeyFace:
			for i, cyc := range x.cycles {
				if !cyc.IsValid() {
					fail("face %d has invalid cycle %d", x.id, i)
				}
				want = append(want, cyc.cells()...)
			}
		case *InbetweenVertex:
			want = []Cell{x.before, x.after}
		case *InbetweenEdge, *InbetweenFace:
			continue
		default:
			panic(fmt.Sprintf("vac: unexpected cell type %T", cell))
		}
		if !sameIDSet(want, cb.boundary) {
			fail("cell %d has boundary %v, expected the cells of %v", cb.id, cb.boundary, idsOf(want))
		}
	}
	return errors.Join(errs...)
}

func idsOf[T Node](nodes []T) []ID {
	res := make([]ID, len(nodes))
	for i, n := range nodes {
		res[i] = n.ID()
	}
	return res
}

func sameIDSet(cells []Cell, ids []ID) bool {
	a := slices.Compact(slices.Sorted(slices.Values(idsOf(cells))))
	b := slices.Compact(slices.Sorted(slices.Values(ids)))
	return slices.Equal(a, b)
}
