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
	"log/slog"

	"seehuhn.de/go/vac/curve"
)

// Option configures a Complex during creation.
//
// Example:
//
//	c := vac.NewComplex(
//	    vac.WithLogger(slog.Default()),
//	    vac.WithFlatness(0.1),
//	)
type Option func(*options)

type options struct {
	logger *slog.Logger

	// flatness is the tolerance used when sampling edge geometry.
	flatness float64

	// containmentSamples and containmentRatio control face repair: a
	// surviving cycle is dropped if more than containmentRatio of its
	// containmentSamples sample points lie inside a rejected cycle.
	containmentSamples int
	containmentRatio   float64
}

func defaultOptions() options {
	return options{
		flatness:           curve.DefaultFlatness,
		containmentSamples: 20,
		containmentRatio:   0.5,
	}
}

// WithLogger sets the logger of the complex.  Without this option the
// package-level logger from [Logger] is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFlatness sets the maximal distance between an edge and the polyline
// used to approximate it.  Non-positive values are ignored.
func WithFlatness(flatness float64) Option {
	return func(o *options) {
		if flatness > 0 {
			o.flatness = flatness
		}
	}
}

// WithContainmentSampling sets the number of sample points and the
// threshold ratio used to decide whether a cycle lies inside another one
// while repairing faces.
func WithContainmentSampling(n int, ratio float64) Option {
	return func(o *options) {
		if n > 0 {
			o.containmentSamples = n
		}
		if ratio > 0 && ratio < 1 {
			o.containmentRatio = ratio
		}
	}
}
