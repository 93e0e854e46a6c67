// Package insurance - Rating model tests
package insurance

import (
	"testing"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

func baseProfile() Profile {
	return Profile{
		VehicleValue:          decimal.NewFromInt(30000),
		Make:                  "Toyota",
		Model:                 "Camry",
		ModelYear:             2024,
		DriverAge:             40,
		State:                 "OH",
		Coverage:              types.CoverageComprehensive,
		AnnualMileage:         12000,
		HouseholdVehicleCount: 1,
	}
}

// TestPremiumIsDeterministic proves the same profile always rates to
// the same premium.
func TestPremiumIsDeterministic(t *testing.T) {
	e := NewEstimator()
	p := baseProfile()

	first := e.AnnualPremium(p)
	for i := 0; i < 10; i++ {
		if got := e.AnnualPremium(p); !got.Equal(first) {
			t.Fatalf("premium varied between runs: %s vs %s", got, first)
		}
	}
	if !first.IsPositive() {
		t.Fatalf("premium %s not positive", first)
	}
}

// TestPremiumFallsWithVehicleValue proves the premium tracks the
// depreciated value down as the vehicle ages.
func TestPremiumFallsWithVehicleValue(t *testing.T) {
	e := NewEstimator()

	high := baseProfile()
	low := baseProfile()
	low.VehicleValue = decimal.NewFromInt(8000)

	if !e.AnnualPremium(low).LessThan(e.AnnualPremium(high)) {
		t.Error("premium did not fall with vehicle value")
	}
}

// TestYoungDriverSurcharge proves drivers under 25 rate well above the
// mid-life band.
func TestYoungDriverSurcharge(t *testing.T) {
	e := NewEstimator()

	young := baseProfile()
	young.DriverAge = 19
	adult := baseProfile()

	ratio := e.AnnualPremium(young).Div(e.AnnualPremium(adult))
	if ratio.LessThan(decimal.NewFromFloat(1.5)) {
		t.Errorf("young-driver ratio %s below expected surcharge", ratio.StringFixed(2))
	}
}

// TestCoverageOrdering proves liability < standard < comprehensive.
func TestCoverageOrdering(t *testing.T) {
	e := NewEstimator()

	p := baseProfile()
	p.Coverage = types.CoverageLiability
	liability := e.AnnualPremium(p)
	p.Coverage = types.CoverageStandard
	standard := e.AnnualPremium(p)
	p.Coverage = types.CoverageComprehensive
	comprehensive := e.AnnualPremium(p)

	if !liability.LessThan(standard) || !standard.LessThan(comprehensive) {
		t.Errorf("coverage ordering violated: %s, %s, %s", liability, standard, comprehensive)
	}
}

// TestMultiVehicleDiscount proves additional household vehicles lower
// the premium.
func TestMultiVehicleDiscount(t *testing.T) {
	e := NewEstimator()

	single := baseProfile()
	fleet := baseProfile()
	fleet.HouseholdVehicleCount = 3

	if !e.AnnualPremium(fleet).LessThan(e.AnnualPremium(single)) {
		t.Error("multi-vehicle discount not applied")
	}
}

// TestSegmentRisk proves a sports car rates above the same-value sedan.
func TestSegmentRisk(t *testing.T) {
	e := NewEstimator()

	sedan := baseProfile()
	sports := baseProfile()
	sports.Make = "Chevrolet"
	sports.Model = "Corvette"

	if !e.AnnualPremium(sports).GreaterThan(e.AnnualPremium(sedan)) {
		t.Error("sports segment did not raise the premium")
	}
}

// TestUnknownStateUsesDefaultRate proves rating still works for states
// absent from the base-rate table.
func TestUnknownStateUsesDefaultRate(t *testing.T) {
	e := NewEstimator()

	p := baseProfile()
	p.State = "PR"

	if !e.AnnualPremium(p).IsPositive() {
		t.Error("unknown state produced a non-positive premium")
	}
}

// TestPremiumNeverNegative proves extreme discount stacking still
// floors at zero.
func TestPremiumNeverNegative(t *testing.T) {
	e := NewEstimator()

	p := baseProfile()
	p.VehicleValue = decimal.Zero
	p.AnnualMileage = 1000
	p.HouseholdVehicleCount = 4
	p.Coverage = types.CoverageLiability
	p.RegionalMultiplier = 0.5

	if e.AnnualPremium(p).IsNegative() {
		t.Error("premium went negative")
	}
}
