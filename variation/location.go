// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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

// Package variation implements the OpenType variation model: the
// construction of a canonical master ordering, the derivation of each
// master's box-shaped support region, the back-substitution that
// turns master values into additive deltas, and the scalar evaluation
// that blends them at an arbitrary location.
package variation

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/variation/varaxis"
)

// NormalizedLocation maps an axis tag to a coordinate in [-1, +1].
// Axes absent from the map are treated as 0.
type NormalizedLocation map[varaxis.Tag]float64

// FromAxisLocation converts a varaxis.Location[varaxis.NormalizedCoord],
// as returned by varaxis.NormalizeLocation, into the NormalizedLocation
// this package's constructor and evaluation functions consume.
func FromAxisLocation(loc varaxis.Location[varaxis.NormalizedCoord]) NormalizedLocation {
	out := make(NormalizedLocation, len(loc))
	for tag, v := range loc {
		out[tag] = float64(v)
	}
	return out
}

// At returns the coordinate of loc along tag, or 0 if tag is absent.
func (loc NormalizedLocation) At(tag varaxis.Tag) float64 {
	return loc[tag]
}

// Sparse returns a copy of loc with every entry whose value is
// exactly 0 removed.
func (loc NormalizedLocation) Sparse() NormalizedLocation {
	out := make(NormalizedLocation, len(loc))
	for tag, v := range loc {
		if v != 0 {
			out[tag] = v
		}
	}
	return out
}

// Equal reports whether loc and other describe the same location,
// after dropping explicit-zero entries from both sides.
func (loc NormalizedLocation) Equal(other NormalizedLocation) bool {
	a := loc.Sparse()
	b := other.Sparse()
	if len(a) != len(b) {
		return false
	}
	for tag, v := range a {
		if b[tag] != v {
			return false
		}
	}
	return true
}

// sortedTags returns the axis tags present in loc, sorted
// alphabetically. Used wherever a deterministic iteration order over
// a location's axes is required.
func (loc NormalizedLocation) sortedTags() []varaxis.Tag {
	tags := maps.Keys(loc)
	slices.Sort(tags)
	return tags
}
