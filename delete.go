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
	"fmt"
	"slices"
)

// deletionClosure is the ordered set of nodes scheduled for destruction.
type deletionClosure struct {
	nodes []Node
	ids   map[ID]bool
}

func newDeletionClosure() *deletionClosure {
	return &deletionClosure{ids: make(map[ID]bool)}
}

func (d *deletionClosure) add(n Node) {
	id := n.ID()
	if !d.ids[id] {
		d.ids[id] = true
		d.nodes = append(d.nodes, n)
	}
}

func (d *deletionClosure) has(n Node) bool {
	return d.ids[n.ID()]
}

// HardDelete destroys the given nodes, everything below them in the group
// tree and every cell depending on them.  Faces are never repaired.  If
// deleteIsolatedVertices is set, vertices whose star becomes empty are
// destroyed as well.  The root group is emptied but not destroyed.
func (c *Complex) HardDelete(nodes []Node, deleteIsolatedVertices bool) error {
	for _, n := range nodes {
		if !c.owns(n) {
			return fmt.Errorf("hard delete: %w", ErrNotInComplex)
		}
	}
	c.deleteWithDependents(nodes, deleteIsolatedVertices, false)
	return nil
}

// deleteWithDependents computes the deletion closure of nodes and destroys
// it.  With tryRepairingStarCells, key faces which lose part of their
// boundary keep those cycles which are still valid.
func (c *Complex) deleteWithDependents(nodes []Node, deleteIsolatedVertices, tryRepairingStarCells bool) {
	end := c.beginOperation()
	defer end()

	closure := newDeletionClosure()
	for _, n := range nodes {
		if !c.owns(n) {
			continue
		}
		for _, d := range descendants(n, nil) {
			if !d.node().isRoot() {
				closure.add(d)
			}
		}
	}
	if len(closure.nodes) == 0 {
		return
	}

	// Cells depending on a deleted cell are deleted too.  Key faces may
	// survive with fewer cycles, so they are collected for repair.
	var candidates []*KeyFace
	isCandidate := make(map[ID]bool)
	propagate := func(from int) {
		for i := from; i < len(closure.nodes); i++ {
			cell, ok := closure.nodes[i].(Cell)
			if !ok {
				continue
			}
			for _, s := range cell.Star() {
				if closure.has(s) {
					continue
				}
				if f, ok := s.(*KeyFace); ok && tryRepairingStarCells {
					if !isCandidate[f.id] {
						isCandidate[f.id] = true
						candidates = append(candidates, f)
					}
					continue
				}
				closure.add(s)
			}
		}
	}
	propagate(0)
	repaired := 0
	for len(candidates) > 0 {
		from := len(closure.nodes)
		batch := candidates
		candidates = nil
		for _, f := range batch {
			if closure.has(f) {
				continue
			}
			if c.repairFace(f, closure) {
				repaired++
			} else {
				closure.add(f)
			}
		}
		propagate(from)
	}

	// Detach the closure from the surviving cells.
	var isolatedInbetween []*InbetweenVertex
	var isolatedKey []*KeyVertex
	detach := func(cell Cell) {
		for _, b := range cell.Boundary() {
			c.removeFromBoundary(cell, b)
			if !deleteIsolatedVertices || closure.has(b) || len(b.cell().star) > 0 {
				continue
			}
			switch v := b.(type) {
			case *KeyVertex:
				isolatedKey = append(isolatedKey, v)
			case *InbetweenVertex:
				isolatedInbetween = append(isolatedInbetween, v)
			}
		}
	}
	for i := range len(closure.nodes) {
		if cell, ok := closure.nodes[i].(Cell); ok {
			detach(cell)
		}
	}
	// Removing an inbetween vertex can isolate the key vertices it
	// interpolates, so these go first.
	for _, v := range isolatedInbetween {
		if !closure.has(v) && len(v.star) == 0 {
			closure.add(v)
			detach(v)
		}
	}
	for _, v := range isolatedKey {
		if !closure.has(v) && len(v.star) == 0 {
			closure.add(v)
		}
	}

	c.logger().Debug("delete",
		"nodes", len(closure.nodes),
		"repairedFaces", repaired,
		"isolatedVertices", len(isolatedKey)+len(isolatedInbetween))
	c.destroyNodes(closure.nodes)
}

// repairFace drops the cycles of f which use deleted cells.  A cycle which
// still forms a closed walk without its deleted edges is kept.  Cycles
// lying mostly inside a dropped cycle are dropped as well.  It returns
// false if no cycle survives; f is then left unchanged.
func (c *Complex) repairFace(f *KeyFace, closure *deletionClosure) bool {
	var kept, rejected []KeyCycle
	for _, cyc := range f.cycles {
		if cyc.steiner != nil {
			if closure.has(cyc.steiner) {
				rejected = append(rejected, cyc)
			} else {
				kept = append(kept, cyc)
			}
			continue
		}
		hs := make([]KeyHalfedge, 0, len(cyc.halfedges))
		for _, h := range cyc.halfedges {
			if !closure.has(h.edge) {
				hs = append(hs, h)
			}
		}
		if len(hs) == len(cyc.halfedges) {
			kept = append(kept, cyc)
			continue
		}
		if repairedCycle := (KeyCycle{halfedges: hs}); len(hs) > 0 && repairedCycle.IsValid() {
			kept = append(kept, repairedCycle)
		} else {
			rejected = append(rejected, cyc)
		}
	}

	// Dropping a cycle can change which of the remaining cycles lie inside
	// a dropped one, so the scan restarts after every rejection.
	n, ratio := c.opts.containmentSamples, c.opts.containmentRatio
	for i := 0; i < len(kept); i++ {
		for _, r := range rejected {
			if containedRatio(kept[i], r, n) > ratio {
				rejected = append(rejected, kept[i])
				kept = slices.Delete(kept, i, i+1)
				i = -1
				break
			}
		}
	}

	if len(kept) == 0 {
		c.logger().Debug("face not repairable", "face", f.id)
		return false
	}
	c.setFaceCycles(f, kept)
	c.logger().Debug("face repaired", "face", f.id, "cycles", len(kept), "dropped", len(rejected))
	return true
}

// destroyNodes removes nodes which have already been detached from all
// other cells.  All nodes are first removed from their parents, then
// erased from the complex.
func (c *Complex) destroyNodes(nodes []Node) {
	for _, n := range nodes {
		if cell, ok := n.(Cell); ok {
			cb := cell.cell()
			if len(cb.boundary) > 0 || len(cb.star) > 0 {
				panic(fmt.Sprintf("vac: destroying cell %d which is still attached", cb.id))
			}
		}
		if p := n.Parent(); p != nil {
			if i := p.indexOf(n); i >= 0 {
				p.children = slices.Delete(p.children, i, i+1)
				c.markModified(p, ChildrenChanged)
			}
		}
	}
	for _, n := range nodes {
		nb := n.node()
		delete(c.nodes, nb.id)
		nb.parent = nil
		if f, ok := n.(*KeyFace); ok {
			f.mesh = nil
		}
		c.markDestroyed(nb.id)
	}
}
