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

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/variation/varaxis"
	"seehuhn.de/go/variation/varerr"
)

func duplicateMasterError(loc NormalizedLocation) error {
	return fmt.Errorf("%w: %v", varerr.ErrDuplicateMaster, loc)
}

// unlistedAxisRank is the index used in the axisOrder-position key for
// an axis not named in axisOrder.
const unlistedAxisRank = 0x10000

// axisPoints collects, for every axis mentioned by exactly one axis in
// some sparsified location, the set of values seen on that axis
// (always including 0).
func axisPoints(sparse []NormalizedLocation) map[varaxis.Tag]map[float64]bool {
	points := make(map[varaxis.Tag]map[float64]bool)
	ensure := func(tag varaxis.Tag) map[float64]bool {
		m, ok := points[tag]
		if !ok {
			m = map[float64]bool{0: true}
			points[tag] = m
		}
		return m
	}
	for _, loc := range sparse {
		if len(loc) != 1 {
			continue
		}
		for tag, v := range loc {
			ensure(tag)[v] = true
		}
	}
	return points
}

// orderedAxes returns loc's axis tags ordered as the canonical sort
// requires: axes named in axisOrder first (in axisOrder's sequence),
// followed by the remaining axes of loc sorted alphabetically.
func orderedAxes(loc NormalizedLocation, axisOrder []varaxis.Tag) []varaxis.Tag {
	seen := make(map[varaxis.Tag]bool, len(loc))
	var ordered []varaxis.Tag
	for _, tag := range axisOrder {
		if _, ok := loc[tag]; ok {
			ordered = append(ordered, tag)
			seen[tag] = true
		}
	}
	rest := make([]varaxis.Tag, 0, len(loc))
	for _, tag := range maps.Keys(loc) {
		if !seen[tag] {
			rest = append(rest, tag)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}

// sortKey is the precomputed total-order key for one sparsified
// location, per spec.md's five-criterion canonical sort.
type sortKey struct {
	rank      int
	onPoint   int // negated, so that ascending sort gives descending on-point count
	axisOrder []int
	axisTags  []varaxis.Tag
	signs     []int
	mags      []float64
}

func makeSortKey(loc NormalizedLocation, order []varaxis.Tag, points map[varaxis.Tag]map[float64]bool) sortKey {
	axes := orderedAxes(loc, order)

	onPoint := 0
	for tag, v := range loc {
		if points[tag] != nil && points[tag][v] {
			onPoint++
		}
	}

	posKey := make([]int, len(axes))
	signs := make([]int, len(axes))
	mags := make([]float64, len(axes))
	for i, tag := range axes {
		posKey[i] = axisPosition(tag, order)
		v := loc[tag]
		signs[i] = sign(v)
		mags[i] = math.Abs(v)
	}

	return sortKey{
		rank:      len(loc),
		onPoint:   -onPoint,
		axisOrder: posKey,
		axisTags:  axes,
		signs:     signs,
		mags:      mags,
	}
}

func axisPosition(tag varaxis.Tag, order []varaxis.Tag) int {
	for i, t := range order {
		if t == tag {
			return i
		}
	}
	return unlistedAxisRank
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// lessKey implements the canonical total order of spec.md §4.4.
func lessKey(a, b sortKey) bool {
	if a.rank != b.rank {
		return a.rank < b.rank
	}
	if a.onPoint != b.onPoint {
		return a.onPoint < b.onPoint
	}
	if c := compareIntSlices(a.axisOrder, b.axisOrder); c != 0 {
		return c < 0
	}
	if c := compareTagSlices(a.axisTags, b.axisTags); c != 0 {
		return c < 0
	}
	n := len(a.signs)
	if len(b.signs) < n {
		n = len(b.signs)
	}
	for i := 0; i < n; i++ {
		if a.signs[i] != b.signs[i] {
			return a.signs[i] < b.signs[i]
		}
		if a.mags[i] != b.mags[i] {
			return a.mags[i] < b.mags[i]
		}
	}
	return len(a.signs) < len(b.signs)
}

// compareIntSlices compares two slices element-wise; a shorter slice
// that is a prefix of the longer one compares as smaller.
func compareIntSlices(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareTagSlices(a, b []varaxis.Tag) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return compareLen(len(a), len(b))
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortMasters sparsifies every original location, sorts them into
// canonical order, and returns the sorted locations together with the
// mapping between original and sorted indices.
//
// Fails with varerr.ErrDuplicateMaster if two original locations are
// equal after sparsification.
func sortMasters(original []NormalizedLocation, order []varaxis.Tag) (sorted []NormalizedLocation, mapping, reverseMapping []int, err error) {
	sparse := make([]NormalizedLocation, len(original))
	for i, loc := range original {
		sparse[i] = loc.Sparse()
	}

	for i := 0; i < len(sparse); i++ {
		for j := i + 1; j < len(sparse); j++ {
			if sparse[i].Equal(sparse[j]) {
				return nil, nil, nil, duplicateMasterError(sparse[i])
			}
		}
	}

	points := axisPoints(sparse)

	type indexed struct {
		loc NormalizedLocation
		key sortKey
		idx int
	}
	items := make([]indexed, len(sparse))
	for i, loc := range sparse {
		items[i] = indexed{loc: loc, key: makeSortKey(loc, order, points), idx: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return lessKey(items[i].key, items[j].key)
	})

	sorted = make([]NormalizedLocation, len(items))
	mapping = make([]int, len(original))
	reverseMapping = make([]int, len(items))
	for newIdx, it := range items {
		sorted[newIdx] = it.loc
		mapping[it.idx] = newIdx
		reverseMapping[newIdx] = it.idx
	}

	return sorted, mapping, reverseMapping, nil
}
