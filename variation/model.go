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
	"sync"

	"seehuhn.de/go/variation/varaxis"
	"seehuhn.de/go/variation/varerr"
	"seehuhn.de/go/variation/varopt"
)

// VariationModel owns the canonical master ordering, the per-master
// support regions, and the triangular matrix of delta weights derived
// from a set of master locations. A VariationModel is immutable after
// construction, except for its submodel cache (see GetSubModel).
type VariationModel struct {
	originalLocations []NormalizedLocation
	axisOrder         []varaxis.Tag

	sortedLocations []NormalizedLocation
	mapping         []int // original index -> sorted index
	reverseMapping  []int // sorted index -> original index
	supports        []Support

	// deltaWeights[i][j] is the weight with which sorted master j's
	// (j < i) delta contributes to sorted master i's own value.
	// Rows with no nonzero weight are nil.
	deltaWeights []map[int]float64

	mu        sync.Mutex
	subModels []subModelEntry
}

// subModelEntry caches one submodel built by GetSubModel, keyed by the
// sequence of original indices that were present when it was built.
type subModelEntry struct {
	present []int
	model   *VariationModel
}

// New constructs a VariationModel from a set of master locations, in
// the order the caller wants interpolated values reported back in.
// axisOrder is the caller's preferred axis ordering, used as a
// tie-breaker during canonical sorting (see spec.md §4.4); submodels
// built by GetSubModel always use an empty axisOrder.
//
// New fails with varerr.ErrDuplicateMaster if two locations are equal
// after dropping their explicit-zero entries. Coordinates are not
// range-checked; use NewStrict to additionally reject coordinates
// outside [-1, +1].
func New(locations []NormalizedLocation, axisOrder []varaxis.Tag) (*VariationModel, error) {
	sorted, mapping, reverseMapping, err := sortMasters(locations, axisOrder)
	if err != nil {
		return nil, err
	}

	supports := deriveSupports(sorted)
	deltaWeights := make([]map[int]float64, len(sorted))
	for i := range sorted {
		var row map[int]float64
		for j := 0; j < i; j++ {
			w := SupportScalar(sorted[i], supports[j])
			if w != 0 {
				if row == nil {
					row = make(map[int]float64)
				}
				row[j] = w
			}
		}
		deltaWeights[i] = row
	}

	return &VariationModel{
		originalLocations: locations,
		axisOrder:         axisOrder,
		sortedLocations:   sorted,
		mapping:           mapping,
		reverseMapping:    reverseMapping,
		supports:          supports,
		deltaWeights:      deltaWeights,
	}, nil
}

// NewStrict is like New, but additionally fails with
// varerr.ErrOutOfRange if any location contains a coordinate outside
// [-1, +1].
func NewStrict(locations []NormalizedLocation, axisOrder []varaxis.Tag) (*VariationModel, error) {
	for _, loc := range locations {
		for tag, v := range loc {
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("%w: axis %q coordinate %v", varerr.ErrOutOfRange, tag, v)
			}
		}
	}
	return New(locations, axisOrder)
}

// NumMasters returns the number of masters in the model.
func (m *VariationModel) NumMasters() int {
	return len(m.originalLocations)
}

// SortedLocations returns the masters' locations in canonical sorted
// order. The returned slice must not be modified.
func (m *VariationModel) SortedLocations() []NormalizedLocation {
	return m.sortedLocations
}

// Supports returns the masters' support regions, in the same order as
// SortedLocations. The returned slice must not be modified.
func (m *VariationModel) Supports() []Support {
	return m.supports
}

func lengthMismatchError(got, want int) error {
	return fmt.Errorf("%w: got %d values, want %d", varerr.ErrLengthMismatch, got, want)
}

// GetDeltas computes, for each sorted master in turn, the additive
// delta that master contributes on top of the weighted sum of the
// preceding masters' deltas, such that the deltas reproduce every
// entry of values exactly at its own master's location.
func (m *VariationModel) GetDeltas(values []float64) ([]float64, error) {
	if len(values) != len(m.originalLocations) {
		return nil, lengthMismatchError(len(values), len(m.originalLocations))
	}

	deltas := make([]float64, len(m.sortedLocations))
	for i := range m.sortedLocations {
		v := values[m.reverseMapping[i]]
		for j, w := range m.deltaWeights[i] {
			v -= w * deltas[j]
		}
		deltas[i] = v
	}
	return deltas, nil
}

// GetScalars returns the support scalar of every sorted master at
// loc, in sorted order.
func (m *VariationModel) GetScalars(loc NormalizedLocation) []float64 {
	out := make([]float64, len(m.sortedLocations))
	for i, s := range m.supports {
		out[i] = SupportScalar(loc, s)
	}
	return out
}

// GetMasterScalars returns, in original master order, the
// coefficients c such that the interpolated value at loc equals the
// dot product of c with the original master values.
func (m *VariationModel) GetMasterScalars(loc NormalizedLocation) []float64 {
	out := m.GetScalars(loc)
	for i := len(out) - 1; i >= 0; i-- {
		for j, w := range m.deltaWeights[i] {
			out[j] -= out[i] * w
		}
	}

	result := make([]float64, len(out))
	for origIdx, sortedIdx := range m.mapping {
		result[origIdx] = out[sortedIdx]
	}
	return result
}

// InterpolateFromValuesAndScalars sums values[i]*scalars[i], skipping
// any term whose scalar is 0 (including -0). It returns an unset
// varopt.Float if every term was skipped, distinguishing "the sum is
// 0" from "nothing contributed".
func InterpolateFromValuesAndScalars(values, scalars []float64) (varopt.Float, error) {
	if len(values) != len(scalars) {
		return varopt.Float{}, lengthMismatchError(len(values), len(scalars))
	}

	var sum float64
	var any bool
	for i, s := range scalars {
		if s == 0 {
			continue
		}
		sum += values[i] * s
		any = true
	}
	if !any {
		return varopt.Float{}, nil
	}
	return varopt.NewFloat(sum), nil
}

// InterpolateFromDeltas blends deltas (as returned by GetDeltas) at
// loc.
func (m *VariationModel) InterpolateFromDeltas(loc NormalizedLocation, deltas []float64) (varopt.Float, error) {
	return InterpolateFromValuesAndScalars(deltas, m.GetScalars(loc))
}

// InterpolateFromMasters blends masterValues (in original master
// order) at loc.
func (m *VariationModel) InterpolateFromMasters(loc NormalizedLocation, masterValues []float64) (varopt.Float, error) {
	return InterpolateFromValuesAndScalars(masterValues, m.GetMasterScalars(loc))
}

// InterpolateFromMastersAndScalars blends masterValues (in original
// master order) using scalars that came from GetScalars, i.e. delta
// scalars rather than master scalars. It computes the deltas
// internally before blending; this is a distinct operation from
// InterpolateFromValuesAndScalars(masterValues, someMasterScalars).
func (m *VariationModel) InterpolateFromMastersAndScalars(masterValues, scalars []float64) (varopt.Float, error) {
	deltas, err := m.GetDeltas(masterValues)
	if err != nil {
		return varopt.Float{}, err
	}
	return InterpolateFromValuesAndScalars(deltas, scalars)
}
