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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/variation/varaxis"
	"seehuhn.de/go/variation/varopt"
)

func TestVariationModelSixMaster(t *testing.T) {
	locations := []NormalizedLocation{
		{},
		{"A": 1},
		{"B": 1},
		{"A": 1, "B": 1},
		{"A": 0.5, "B": 1},
		{"A": 1, "B": 0.5},
	}
	values := []float64{0, 10, 20, 70, 50, 60}

	m, err := New(locations, []varaxis.Tag{"A", "B"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := m.GetMasterScalars(NormalizedLocation{"A": 0.5, "B": 0.5})
	if diff := cmp.Diff([]float64{0.25, 0, 0, -0.25, 0.5, 0.5}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("GetMasterScalars mismatch (-want +got):\n%s", diff)
	}

	result, err := m.InterpolateFromMasters(NormalizedLocation{"A": 0.5, "B": 0.5}, values)
	if err != nil {
		t.Fatalf("InterpolateFromMasters: %v", err)
	}
	v, ok := result.Get()
	if !ok {
		t.Fatal("expected a contributing interpolation, got none")
	}
	if diff := cmp.Diff(37.5, v, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("interpolated value mismatch (-want +got):\n%s", diff)
	}
}

func TestVariationModelThreeMaster(t *testing.T) {
	locations := []NormalizedLocation{
		{},
		{"wght": 1},
		{"wdth": 1},
	}
	m, err := New(locations, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		loc  NormalizedLocation
		want []float64
	}{
		{NormalizedLocation{"wght": 0, "wdth": 0}, []float64{1, 0, 0}},
		{NormalizedLocation{"wght": 0.5, "wdth": 0}, []float64{0.5, 0.5, 0}},
		{NormalizedLocation{"wght": 1, "wdth": 1}, []float64{-1, 1, 1}},
		{NormalizedLocation{"wght": 0.75, "wdth": 0.75}, []float64{-0.5, 0.75, 0.75}},
	}
	for _, c := range cases {
		got := m.GetMasterScalars(c.loc)
		if diff := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("GetMasterScalars at %s mismatch (-want +got):\n%s", formatLoc(c.loc), diff)
		}
	}
}

func TestVariationModelFourMasterCorner(t *testing.T) {
	locations := []NormalizedLocation{
		{},
		{"wght": 1},
		{"wdth": 1},
		{"wght": 1, "wdth": 1},
	}
	m, err := New(locations, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := m.GetMasterScalars(NormalizedLocation{"wght": 0.5, "wdth": 0.5})
	if diff := cmp.Diff([]float64{0.25, 0.25, 0.25, 0.25}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("GetMasterScalars mismatch (-want +got):\n%s", diff)
	}
}

func formatLoc(loc NormalizedLocation) string {
	s := ""
	for _, tag := range loc.sortedTags() {
		if s != "" {
			s += ","
		}
		s += string(tag)
	}
	return s
}

func TestVariationModelExactAtEveryMaster(t *testing.T) {
	locations, order := nineMasterExample()
	m, err := New(locations, order)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	values := make([]float64, len(locations))
	for i := range values {
		values[i] = float64(i) * 1.5
	}

	for i, loc := range locations {
		result, err := m.InterpolateFromMasters(loc, values)
		if err != nil {
			t.Fatalf("InterpolateFromMasters: %v", err)
		}
		v, ok := result.Get()
		if !ok {
			t.Fatalf("master %d: expected a contributing interpolation", i)
		}
		if diff := cmp.Diff(values[i], v, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("master %d: interpolated value mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestVariationModelLinearInMasterValues(t *testing.T) {
	locations, order := nineMasterExample()
	m, err := New(locations, order)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a := make([]float64, len(locations))
	b := make([]float64, len(locations))
	for i := range locations {
		a[i] = float64(i)
		b[i] = float64(2*i + 1)
	}
	sum := make([]float64, len(locations))
	for i := range locations {
		sum[i] = a[i] + b[i]
	}

	loc := NormalizedLocation{"wght": 0.3, "wdth": 0.2}
	ra, _ := m.InterpolateFromMasters(loc, a)
	rb, _ := m.InterpolateFromMasters(loc, b)
	rsum, _ := m.InterpolateFromMasters(loc, sum)

	va, _ := ra.Get()
	vb, _ := rb.Get()
	vsum, okSum := rsum.Get()
	if !okSum {
		t.Fatal("expected sum interpolation to contribute")
	}
	if diff := cmp.Diff(va+vb, vsum, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("interpolation is not linear: f(a)+f(b) vs f(a+b) mismatch (-want +got):\n%s", diff)
	}
}

func TestVariationModelDuplicateMasterLocation(t *testing.T) {
	locations := []NormalizedLocation{
		{"wght": 1},
		{"wght": 1},
	}
	_, err := New(locations, nil)
	if err == nil {
		t.Fatal("expected an error for duplicate master locations")
	}
}

func TestVariationModelLengthMismatch(t *testing.T) {
	m, err := New([]NormalizedLocation{{}, {"wght": 1}}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := m.GetDeltas([]float64{1, 2, 3}); err == nil {
		t.Fatal("expected a length-mismatch error")
	}
}

func TestNewStrictRejectsOutOfRange(t *testing.T) {
	_, err := NewStrict([]NormalizedLocation{{"wght": 1.5}}, nil)
	if err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestGetSubModelIdentityForEqualPresentSets(t *testing.T) {
	locations, order := nineMasterExample()
	m, err := New(locations, order)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	items := make([]varopt.Float, m.NumMasters())
	for i := range items {
		if i%3 != 0 {
			items[i] = varopt.NewFloat(float64(i))
		}
	}

	sub1, vals1 := m.GetSubModel(items)
	sub2, vals2 := m.GetSubModel(items)
	if sub1 != sub2 {
		t.Error("expected GetSubModel to return the cached submodel for the same present-set")
	}
	if diff := cmp.Diff(vals1, vals2, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("GetSubModel values mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSubModelReturnsSelfWhenComplete(t *testing.T) {
	locations, order := nineMasterExample()
	m, err := New(locations, order)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	items := make([]varopt.Float, m.NumMasters())
	for i := range items {
		items[i] = varopt.NewFloat(float64(i))
	}

	sub, _ := m.GetSubModel(items)
	if sub != m {
		t.Error("expected GetSubModel to return m itself when every item is present")
	}
}

func TestNormalizeThenInterpolate(t *testing.T) {
	axes := []varaxis.DesignAxis{
		{Tag: "wght", Min: 100, Default: 400, Max: 900},
		{Tag: "wdth", Min: 50, Default: 100, Max: 200},
	}

	locations := []NormalizedLocation{
		{},
		{"wght": 1},
		{"wdth": 1},
	}
	m, err := New(locations, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	values := []float64{1, 0, 0}

	designLoc := varaxis.Location[varaxis.DesignCoord]{"wght": 900, "wdth": 100}
	normalized, err := varaxis.NormalizeLocation(designLoc, axes)
	if err != nil {
		t.Fatalf("NormalizeLocation: %v", err)
	}

	loc := FromAxisLocation(normalized)
	result, err := m.InterpolateFromMasters(loc, values)
	if err != nil {
		t.Fatalf("InterpolateFromMasters: %v", err)
	}
	v, ok := result.Get()
	if !ok {
		t.Fatal("expected a contributing interpolation")
	}
	if diff := cmp.Diff(0.0, v, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("interpolated value mismatch (-want +got):\n%s", diff)
	}
}
