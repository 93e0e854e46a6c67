// Package refdata - Static catalog tests
package refdata

import (
	"testing"

	"vehicle-cost/internal/errors"
)

// TestCharacteristicsLookup proves lookups are case- and
// padding-insensitive and return complete records.
func TestCharacteristicsLookup(t *testing.T) {
	v := NewStaticVehicles()

	chars, err := v.Characteristics("Toyota", "Camry", 2025)
	if err != nil {
		t.Fatalf("Characteristics: %v", err)
	}
	if chars.MPG <= 0 {
		t.Errorf("Camry MPG = %f", chars.MPG)
	}
	if chars.IsElectric {
		t.Error("Camry marked electric")
	}
	if chars.ReliabilityScore < 1 || chars.ReliabilityScore > 5 {
		t.Errorf("reliability %f out of 1-5", chars.ReliabilityScore)
	}

	upper, err := v.Characteristics("TOYOTA", "  CAMRY ", 2025)
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if upper != chars {
		t.Error("case variant returned a different record")
	}
}

// TestElectricVehicleRecord proves EV records carry MPGe and the
// electric flag instead of MPG.
func TestElectricVehicleRecord(t *testing.T) {
	v := NewStaticVehicles()

	chars, err := v.Characteristics("Tesla", "Model 3", 2025)
	if err != nil {
		t.Fatalf("Characteristics: %v", err)
	}
	if !chars.IsElectric {
		t.Error("Model 3 not marked electric")
	}
	if chars.MPGe <= 0 {
		t.Errorf("Model 3 MPGe = %f", chars.MPGe)
	}
}

// TestUnknownVehicleIsNotFound proves misses surface as typed
// not-found errors the calculator can degrade on.
func TestUnknownVehicleIsNotFound(t *testing.T) {
	v := NewStaticVehicles()

	_, err := v.Characteristics("Yugo", "GV", 1987)
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("error = %v, want not-found", err)
	}

	_, err = v.TrimPrice("Yugo", "GV", 1987, "")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("trim error = %v, want not-found", err)
	}
}

// TestTrimPrice proves exact, base and case-insensitive trim lookups.
func TestTrimPrice(t *testing.T) {
	v := NewStaticVehicles()

	base, err := v.TrimPrice("Toyota", "Camry", 2025, "")
	if err != nil {
		t.Fatalf("base trim: %v", err)
	}
	if !base.IsPositive() {
		t.Errorf("base MSRP = %s", base)
	}

	le, err := v.TrimPrice("Toyota", "Camry", 2025, "LE")
	if err != nil {
		t.Fatalf("LE trim: %v", err)
	}
	lower, err := v.TrimPrice("Toyota", "Camry", 2025, "le")
	if err != nil {
		t.Fatalf("lowercase trim: %v", err)
	}
	if !le.Equal(lower) {
		t.Errorf("trim lookup case-sensitive: %s vs %s", le, lower)
	}

	if _, err := v.TrimPrice("Toyota", "Camry", 2025, "Ludicrous"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("unknown trim error = %v, want not-found", err)
	}
}

// TestCatalogRecordsAreWellFormed sweeps the catalog for impossible
// records: EVs need MPGe, combustion vehicles need MPG, every record
// needs a base trim.
func TestCatalogRecordsAreWellFormed(t *testing.T) {
	for vehicleMake, models := range vehicleCatalog {
		for model, rec := range models {
			if rec.electric && rec.mpge <= 0 {
				t.Errorf("%s %s: electric without MPGe", vehicleMake, model)
			}
			if !rec.electric && rec.mpg <= 0 {
				t.Errorf("%s %s: combustion without MPG", vehicleMake, model)
			}
			if rec.reliability < 1 || rec.reliability > 5 {
				t.Errorf("%s %s: reliability %f out of range", vehicleMake, model, rec.reliability)
			}
			if _, ok := rec.trims[""]; !ok {
				t.Errorf("%s %s: no base trim price", vehicleMake, model)
			}
		}
	}
}
