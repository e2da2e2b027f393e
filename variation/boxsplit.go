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

// deriveSupports computes the box-shaped support region for each
// sorted master, given the already-sorted master locations. It
// implements the IUP-compatible region-shrinking algorithm used by
// OpenType's variation store: an initial axis-aligned box per master,
// refined against every earlier master by a sequence of single-axis
// box splits.
func deriveSupports(sortedLocations []NormalizedLocation) []Support {
	n := len(sortedLocations)
	supports := make([]Support, n)

	minV, maxV := axisExtrema(sortedLocations)

	for i, loc := range sortedLocations {
		region := make(Support)
		for tag, v := range loc {
			switch {
			case v > 0:
				region[tag] = Triple{Lower: 0, Peak: v, Upper: maxV[tag]}
			case v < 0:
				region[tag] = Triple{Lower: minV[tag], Peak: v, Upper: 0}
			}
		}
		supports[i] = region
	}

	for i := 1; i < n; i++ {
		region := supports[i]
		for j := 0; j < i; j++ {
			prev := supports[j]
			if !containsAllAxes(region, prev) {
				continue
			}
			if !isRelevant(region, prev) {
				continue
			}
			boxSplit(region, prev)
		}
	}

	return supports
}

// axisExtrema returns, for every axis tag appearing in locs, the
// minimum and maximum value taken by that axis across all locations.
func axisExtrema(locs []NormalizedLocation) (min, max map[varaxis.Tag]float64) {
	min = make(map[varaxis.Tag]float64)
	max = make(map[varaxis.Tag]float64)
	for _, loc := range locs {
		for tag, v := range loc {
			if cur, ok := min[tag]; !ok || v < cur {
				min[tag] = v
			}
			if cur, ok := max[tag]; !ok || v > cur {
				max[tag] = v
			}
		}
	}
	return min, max
}

// containsAllAxes reports whether every axis of prev also appears in
// region.
func containsAllAxes(region, prev Support) bool {
	for tag := range prev {
		if _, ok := region[tag]; !ok {
			return false
		}
	}
	return true
}

// isRelevant reports whether prev's box constrains region: every axis
// of region must appear in prev, with prev's peak on that axis either
// equal to region's peak, or strictly between region's lower and
// upper bounds. Combined with containsAllAxes (which requires the
// reverse inclusion), a non-skipped pair always has identical axis
// sets.
func isRelevant(region, prev Support) bool {
	for tag, r := range region {
		p, ok := prev[tag]
		if !ok {
			return false
		}
		if p.Peak == r.Peak {
			continue
		}
		if r.Lower < p.Peak && p.Peak < r.Upper {
			continue
		}
		return false
	}
	return true
}

// boxSplit performs a single box split of region against prev: for
// each axis of prev, it computes the ratio by which region's bound on
// that axis would move toward prev's peak, keeps only the axis (or
// axes, on an exact tie) with the greatest ratio, and applies those
// updates to region in place.
func boxSplit(region, prev Support) {
	type update struct {
		tag    varaxis.Tag
		triple Triple
	}

	var best []update
	bestRatio := -1.0

	for tag, p := range prev {
		val := p.Peak
		r := region[tag]
		lower, locV, upper := r.Lower, r.Peak, r.Upper

		var ratio float64
		newLower, newUpper := lower, upper
		switch {
		case val < locV:
			newLower = val
			ratio = (val - locV) / (lower - locV)
		case val > locV:
			newUpper = val
			ratio = (val - locV) / (upper - locV)
		default:
			continue
		}

		if ratio > bestRatio {
			bestRatio = ratio
			best = best[:0]
		}
		if ratio == bestRatio {
			best = append(best, update{tag, Triple{Lower: newLower, Peak: locV, Upper: newUpper}})
		}
	}

	for _, u := range best {
		region[u.tag] = u.triple
	}
}
