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

// Package varerr defines the error kinds raised by the varaxis and
// variation packages. All errors are synchronous and raised at the
// call site; none are retried internally.
package varerr

import "errors"

// ErrInvalidAxis is returned when an axis's min/default/max do not
// satisfy min <= default <= max.
var ErrInvalidAxis = errors.New("varaxis: invalid axis")

// ErrLengthMismatch is returned when a values slice does not match a
// model's master count, or a values/scalars pair has unequal lengths.
var ErrLengthMismatch = errors.New("variation: length mismatch")

// ErrDuplicateMaster is returned when two original master locations
// are equal after sparsification.
var ErrDuplicateMaster = errors.New("variation: duplicate master location")

// ErrOutOfRange is returned, in strict mode, when a normalized
// coordinate outside [-1, +1] is supplied to the VariationModel
// constructor.
var ErrOutOfRange = errors.New("variation: coordinate out of range")
