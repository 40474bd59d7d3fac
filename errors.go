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
)

// Sentinel errors returned by the creation and editing operators.
var (
	// ErrNotInComplex is returned when a node argument does not belong to
	// the complex, or has already been destroyed.
	ErrNotInComplex = errors.New("vac: node is not part of the complex")

	// ErrInvalidPlacement is returned when the sibling given as insertion
	// point is not a child of the parent group.
	ErrInvalidPlacement = errors.New("vac: invalid placement")

	// ErrInvalidCycle is returned when a face is created from a cycle
	// which is not a closed walk.
	ErrInvalidCycle = errors.New("vac: invalid cycle")

	// ErrInvalidStroke is returned when edge geometry does not match the
	// kind of edge, for example a closed stroke for an open edge.
	ErrInvalidStroke = errors.New("vac: invalid stroke")

	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("vac: index out of range")
)

// IndexError reports an invalid vertex usage index of a face.
type IndexError struct {
	Index KeyFaceVertexUsageIndex

	// NumCycles is the number of cycles of the face.
	NumCycles int

	// NumComponents is the number of vertex usages of the indexed cycle,
	// or -1 if the cycle index itself is out of range.
	NumComponents int
}

func (e *IndexError) Error() string {
	if e.NumComponents < 0 {
		return fmt.Sprintf("vac: cycle index %d out of range [0, %d)",
			e.Index.Cycle, e.NumCycles)
	}
	return fmt.Sprintf("vac: component index %d of cycle %d out of range [0, %d)",
		e.Index.Component, e.Index.Cycle, e.NumComponents)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
