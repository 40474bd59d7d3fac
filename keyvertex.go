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

import "seehuhn.de/go/geom/vec"

// KeyVertex is a point at a single instant of time.
type KeyVertex struct {
	cellBase
	pos  vec.Vec2
	time float64
}

func (v *KeyVertex) Type() CellType { return KeyVertexType }

// Position returns the location of the vertex.
func (v *KeyVertex) Position() vec.Vec2 { return v.pos }

// Time returns the time at which the vertex exists.
func (v *KeyVertex) Time() float64 { return v.time }
