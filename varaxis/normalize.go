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

// NormalizeValue maps a design-space value v to normalized space
// [-1, +1] given axis's (min, default, max), also in design space.
//
// Returns varerr.ErrInvalidAxis if axis.Min <= axis.Default <=
// axis.Max does not hold. Unless extrapolate is set, v is first
// clamped to [axis.Min, axis.Max].
func NormalizeValue(v DesignCoord, axis DesignAxis, extrapolate bool) (NormalizedCoord, error) {
	if !(axis.Min <= axis.Default && axis.Default <= axis.Max) {
		return 0, errInvalidAxis(axis.Tag, axis.Min, axis.Default, axis.Max)
	}

	if !extrapolate {
		if v < axis.Min {
			v = axis.Min
		} else if v > axis.Max {
			v = axis.Max
		}
	}

	switch {
	case v == axis.Default || axis.Min == axis.Max:
		return 0, nil
	case (v < axis.Default && axis.Min != axis.Default) ||
		(v > axis.Default && axis.Max == axis.Default):
		return NormalizedCoord(float64(v-axis.Default) / float64(axis.Default-axis.Min)), nil
	default:
		return NormalizedCoord(float64(v-axis.Default) / float64(axis.Max-axis.Default)), nil
	}
}

// NormalizeLocation applies NormalizeValue to every axis in axes,
// filling axes absent from loc with the axis's default (which always
// normalizes to 0). The result omits axes that normalize to exactly
// 0, matching the sparse representation NormalizedLocation requires.
func NormalizeLocation(loc Location[DesignCoord], axes []DesignAxis) (Location[NormalizedCoord], error) {
	out := make(Location[NormalizedCoord])
	for _, axis := range axes {
		v, ok := loc[axis.Tag]
		if !ok {
			v = axis.Default
		}
		n, err := NormalizeValue(v, axis, false)
		if err != nil {
			return nil, err
		}
		if n != 0 {
			out[axis.Tag] = n
		}
	}
	return out, nil
}

// UserToDesign converts a location in user coordinates to design
// coordinates using each axis's Map break table.
func UserToDesign(loc Location[UserCoord], axes []Axis) Location[DesignCoord] {
	out := make(Location[DesignCoord], len(loc))
	for _, axis := range axes {
		v, ok := loc[axis.Tag]
		if !ok {
			continue
		}
		out[axis.Tag] = PiecewiseLinearMap(v, axis.Map)
	}
	return out
}

// DesignToUserspace converts a location in design coordinates back to
// user coordinates using each axis's Map break table.
func DesignToUserspace(loc Location[DesignCoord], axes []Axis) Location[UserCoord] {
	out := make(Location[UserCoord], len(loc))
	for _, axis := range axes {
		v, ok := loc[axis.Tag]
		if !ok {
			continue
		}
		out[axis.Tag] = inversePiecewiseLinearMap(v, axis.Map)
	}
	return out
}
