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

package varaxis

import (
	"fmt"

	"seehuhn.de/go/variation/varerr"
)

// BreakPoint is one entry of a piecewise-linear mapping table: an
// input value ("from") and the value it maps to ("to").
type BreakPoint struct {
	From UserCoord
	To   DesignCoord
}

// Axis describes one axis of variation, in user coordinates, together
// with an optional user-to-design break table.
type Axis struct {
	Tag  Tag
	Name string

	Min     UserCoord
	Default UserCoord
	Max     UserCoord

	// Map is an optional user-to-design break table, sorted by From.
	// A nil or empty Map means user and design coordinates coincide.
	Map []BreakPoint

	Hidden bool
}

// DesignAxis is Axis expressed in design coordinates, the form
// NormalizeValue and NormalizeLocation require.
type DesignAxis struct {
	Tag     Tag
	Min     DesignCoord
	Default DesignCoord
	Max     DesignCoord
}

// errInvalidAxis reports an axis whose min/default/max are not in
// non-decreasing order.
func errInvalidAxis(tag Tag, min, def, max DesignCoord) error {
	return fmt.Errorf("%w %q: min=%v default=%v max=%v does not satisfy min <= default <= max",
		varerr.ErrInvalidAxis, tag, min, def, max)
}
