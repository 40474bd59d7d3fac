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

// Package vac implements a topological cell complex for vector graphics.
//
// A [Complex] holds key vertices, key edges and key faces together with
// inbetween cells, arranged in a tree of groups.  Every cell records its
// boundary (the cells it depends on) and its star (the cells depending on
// it).  The structural operators [Complex.HardDelete], [Complex.SoftDelete],
// [Complex.UncutAtKeyVertex] and [Complex.UncutAtKeyEdge] keep these
// relations consistent and report every change to observers registered
// with [Complex.Observe].
//
// A Complex is not safe for concurrent use.
package vac

//go:generate go run ./testcases/export
