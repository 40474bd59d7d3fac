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

// InbetweenVertex interpolates between a key vertex before and a key
// vertex after it in time.
type InbetweenVertex struct {
	cellBase
	before, after *KeyVertex
}

func (v *InbetweenVertex) Type() CellType { return InbetweenVertexType }

// Before returns the key vertex at the start of the time interval.
func (v *InbetweenVertex) Before() *KeyVertex { return v.before }

// After returns the key vertex at the end of the time interval.
func (v *InbetweenVertex) After() *KeyVertex { return v.after }

// InbetweenEdge sweeps edges through time.  Only its incidences are
// modelled; the interpolated geometry is not.
type InbetweenEdge struct {
	cellBase
}

func (e *InbetweenEdge) Type() CellType { return InbetweenEdgeType }

// InbetweenFace sweeps faces through time.  Only its incidences are
// modelled.
type InbetweenFace struct {
	cellBase
}

func (f *InbetweenFace) Type() CellType { return InbetweenFaceType }
