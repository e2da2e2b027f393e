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

// Package varaxis implements the three disjoint coordinate spaces used
// by variable-font tooling (user, design, normalized) and the
// piecewise-linear mapping between them.
package varaxis

// Tag identifies an axis, typically a four-character OpenType tag such
// as "wght" or "wdth". Tags are compared as opaque strings; no
// structural interpretation is performed.
type Tag string

// UserCoord is a coordinate in user space, the space in which a font's
// public API exposes axis values (e.g. "wght=400").
type UserCoord float64

// DesignCoord is a coordinate in design space, the space a font
// designer works in internally. DesignCoord and UserCoord are related
// by the per-axis Map break table on Axis.
type DesignCoord float64

// NormalizedCoord is a coordinate in normalized space, the range
// [-1, +1] used for interpolation.
type NormalizedCoord float64

// Location is a mapping from axis tag to a coordinate value in some
// single coordinate space. The zero value of the coordinate type
// denotes an axis at its default; absent keys are treated the same
// way by callers that consult a Location.
type Location[C any] map[Tag]C

// Clone returns a shallow copy of loc.
func (loc Location[C]) Clone() Location[C] {
	out := make(Location[C], len(loc))
	for k, v := range loc {
		out[k] = v
	}
	return out
}
