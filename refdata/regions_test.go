// Package refdata - Regional lookup tests
package refdata

import (
	"testing"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// TestStateFromZIP resolves well-known ZIP codes, including a
// multi-range state.
func TestStateFromZIP(t *testing.T) {
	tests := []struct {
		zip  string
		want string
	}{
		{"90210", "CA"},
		{"10001", "NY"},
		{"60601", "IL"},
		{"30301", "GA"},
		{"39900", "GA"}, // second Georgia range
		{"02101", "MA"}, // leading zero
		{"43123", "OH"},
	}

	for _, tt := range tests {
		got, err := StateFromZIP(tt.zip)
		if err != nil {
			t.Errorf("StateFromZIP(%s): %v", tt.zip, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StateFromZIP(%s) = %s, want %s", tt.zip, got, tt.want)
		}
	}
}

// TestStateFromZIPErrors distinguishes malformed input from unmapped
// but well-formed codes.
func TestStateFromZIPErrors(t *testing.T) {
	malformed := []string{"", "1234", "123456", "abcde", "12a45"}
	for _, zip := range malformed {
		_, err := StateFromZIP(zip)
		if !errors.IsType(err, errors.TypeInput) {
			t.Errorf("StateFromZIP(%q) error = %v, want input error", zip, err)
		}
	}

	// 00501 is well-formed but outside every mapped range
	_, err := StateFromZIP("00501")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unmapped ZIP error = %v, want not-found", err)
	}
}

// TestGeographyFromZIP classifies metro cores, rural ranges and the
// suburban default.
func TestGeographyFromZIP(t *testing.T) {
	tests := []struct {
		zip  string
		want types.GeographyType
	}{
		{"10001", types.GeographyUrban},    // Manhattan
		{"98101", types.GeographyUrban},    // Seattle
		{"59001", types.GeographyRural},    // Montana
		{"82001", types.GeographyRural},    // Wyoming
		{"43123", types.GeographySuburban}, // Ohio suburb
		{"bogus", types.GeographySuburban}, // malformed defaults suburban
	}

	for _, tt := range tests {
		if got := GeographyFromZIP(tt.zip); got != tt.want {
			t.Errorf("GeographyFromZIP(%s) = %s, want %s", tt.zip, got, tt.want)
		}
	}
}

// TestCostMultiplier covers the geography bases and the state
// adjustments.
func TestCostMultiplier(t *testing.T) {
	r := NewRegions()

	tests := []struct {
		state     string
		geography types.GeographyType
		want      float64
	}{
		{"OH", types.GeographyUrban, 1.15},
		{"OH", types.GeographySuburban, 1.00},
		{"OH", types.GeographyRural, 0.85},
		{"CA", types.GeographySuburban, 1.10},        // high-cost state
		{"MS", types.GeographySuburban, 0.90},        // low-cost state
		{"CA", types.GeographyUrban, 1.15 * 1.1},     // stacked
		{"ND", types.GeographyRural, 0.85 * 0.9},     // stacked low
		{"OH", types.GeographyType("unknown"), 1.00}, // unknown geography
	}

	for _, tt := range tests {
		got, err := r.CostMultiplier(tt.state, tt.geography)
		if err != nil {
			t.Errorf("CostMultiplier(%s, %s): %v", tt.state, tt.geography, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CostMultiplier(%s, %s) = %f, want %f", tt.state, tt.geography, got, tt.want)
		}
	}

	if _, err := r.CostMultiplier("ZZ", types.GeographySuburban); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unknown state error = %v, want not-found", err)
	}
}

// TestEnergyPrices proves every state with a fuel price also has an
// electricity rate, and unknown states fail typed.
func TestEnergyPrices(t *testing.T) {
	r := NewRegions()

	for state := range stateFuelPrices {
		price, err := r.FuelPrice(state)
		if err != nil || !price.IsPositive() {
			t.Errorf("FuelPrice(%s) = %s, %v", state, price, err)
		}
		rate, err := r.ElectricityRate(state)
		if err != nil || !rate.IsPositive() {
			t.Errorf("ElectricityRate(%s) = %s, %v", state, rate, err)
		}
	}

	if _, err := r.FuelPrice("ZZ"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unknown state fuel price error = %v, want not-found", err)
	}
}

// TestResolveLocation proves ZIP resolution fills only the fields the
// caller left empty.
func TestResolveLocation(t *testing.T) {
	r := NewRegions()

	loc, err := r.ResolveLocation(types.Location{ZIP: "90210"})
	if err != nil {
		t.Fatalf("ResolveLocation: %v", err)
	}
	if loc.State != "CA" {
		t.Errorf("state = %s, want CA", loc.State)
	}
	if loc.Geography != types.GeographyUrban {
		t.Errorf("geography = %s, want urban", loc.Geography)
	}
	if !loc.FuelPrice.IsPositive() || !loc.ElectricityRate.IsPositive() {
		t.Error("energy prices not filled")
	}

	// Caller-set state wins over the ZIP
	loc, err = r.ResolveLocation(types.Location{ZIP: "90210", State: "NV", Geography: types.GeographyRural})
	if err != nil {
		t.Fatalf("ResolveLocation: %v", err)
	}
	if loc.State != "NV" || loc.Geography != types.GeographyRural {
		t.Errorf("caller-set fields overwritten: %s %s", loc.State, loc.Geography)
	}

	// No ZIP: nothing to resolve, nothing fails
	loc, err = r.ResolveLocation(types.Location{State: "OH"})
	if err != nil || loc.State != "OH" {
		t.Errorf("ZIP-less location changed: %+v, %v", loc, err)
	}
}
