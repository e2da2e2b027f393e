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

package variation

import "seehuhn.de/go/variation/varaxis"

// Triple is the (lower, peak, upper) box-edge triple of a Support
// along one axis. Influence rises linearly from 0 at Lower to 1 at
// Peak, then falls linearly from 1 to 0 at Upper.
type Triple struct {
	Lower, Peak, Upper float64
}

// Support maps an axis tag to the box edges of a master's region of
// influence along that axis. Axes absent from a Support are
// unconstrained: the scalar contribution along that axis is 1.
type Support map[varaxis.Tag]Triple

// SupportScalar returns the blend weight, in [0, 1], that a master
// with support s contributes to location loc.
func SupportScalar(loc NormalizedLocation, s Support) float64 {
	scalar := 1.0
	for tag, t := range s {
		lower, peak, upper := t.Lower, t.Peak, t.Upper

		if peak == 0 {
			continue
		}
		if lower > peak || peak > upper {
			continue
		}
		if lower < 0 && upper > 0 {
			continue
		}

		v := loc.At(tag)
		if v == peak {
			continue
		}
		if v <= lower || v >= upper {
			return 0
		}
		if v < peak {
			scalar *= (v - lower) / (peak - lower)
		} else {
			scalar *= (v - upper) / (peak - upper)
		}
	}
	return scalar
}
