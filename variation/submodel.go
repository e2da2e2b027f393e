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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/variation/varopt"
)

// GetSubModel restricts the model to the masters for which a value is
// present in items (in original master order; missing entries are
// represented by an unset varopt.Float). If every item is present, m
// itself is returned unchanged together with the values in original
// order. Otherwise a VariationModel over just the present masters'
// original locations is built (with an empty axisOrder) and returned
// together with the values in present order.
//
// Two calls with equal sequences of present indices always observe
// the same submodel instance.
func (m *VariationModel) GetSubModel(items []varopt.Float) (*VariationModel, []float64) {
	present := make([]int, 0, len(items))
	values := make([]float64, 0, len(items))
	missing := false
	for i, it := range items {
		v, ok := it.Get()
		if !ok {
			missing = true
			continue
		}
		present = append(present, i)
		values = append(values, v)
	}

	if !missing {
		return m, values
	}

	m.mu.Lock()
	sub, ok := m.lookupSubModel(present)
	m.mu.Unlock()
	if ok {
		return sub, values
	}

	locs := make([]NormalizedLocation, len(present))
	for i, idx := range present {
		locs[i] = m.originalLocations[idx]
	}
	sub, err := New(locs, nil)
	if err != nil {
		// present is a subset of indices into a location set that
		// already passed the no-duplicate check at construction time;
		// a subset cannot introduce a fresh duplicate.
		panic(fmt.Sprintf("variation: unexpected error building submodel: %v", err))
	}

	m.mu.Lock()
	if existing, ok := m.lookupSubModel(present); ok {
		sub = existing
	} else {
		m.subModels = append(m.subModels, subModelEntry{present: present, model: sub})
	}
	m.mu.Unlock()

	return sub, values
}

// lookupSubModel scans the submodel cache for an entry whose present
// set equals present. Callers must hold m.mu.
func (m *VariationModel) lookupSubModel(present []int) (*VariationModel, bool) {
	for _, entry := range m.subModels {
		if slices.Equal(entry.present, present) {
			return entry.model, true
		}
	}
	return nil, false
}
