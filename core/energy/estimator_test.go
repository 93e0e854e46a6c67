// Package energy - Fuel and charging cost tests
package energy

import (
	"testing"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// TestZeroMileageCostsNothing proves a parked vehicle burns nothing.
func TestZeroMileageCostsNothing(t *testing.T) {
	fuel := AnnualFuelCost(0, 30, decimal.NewFromFloat(3.50), types.DrivingNormal, types.TerrainFlat)
	if !fuel.IsZero() {
		t.Errorf("zero-mileage fuel cost = %s, want 0", fuel)
	}

	elec := AnnualElectricityCost(0, 120, decimal.NewFromFloat(0.12), types.ChargingHome)
	if !elec.IsZero() {
		t.Errorf("zero-mileage electricity cost = %s, want 0", elec)
	}
}

// TestKnownFuelCost checks the arithmetic on a round case: 12000 miles
// at 30 MPG and $3.50/gal, normal style on flat terrain.
func TestKnownFuelCost(t *testing.T) {
	got := AnnualFuelCost(12000, 30, decimal.NewFromFloat(3.50), types.DrivingNormal, types.TerrainFlat)

	// 400 gallons * 1.00 * 0.95 * 3.50 = 1330.00
	want := decimal.NewFromFloat(1330.00)
	if !got.Equal(want) {
		t.Errorf("fuel cost = %s, want %s", got, want)
	}
}

// TestNonPositiveMPGFallsBack proves a missing MPG uses the fleet
// default instead of dividing by zero.
func TestNonPositiveMPGFallsBack(t *testing.T) {
	got := AnnualFuelCost(12000, 0, decimal.NewFromFloat(3.50), types.DrivingNormal, types.TerrainFlat)
	want := AnnualFuelCost(12000, 25, decimal.NewFromFloat(3.50), types.DrivingNormal, types.TerrainFlat)
	if !got.Equal(want) {
		t.Errorf("zero-MPG cost %s != 25 MPG default cost %s", got, want)
	}
}

// TestDrivingStyleOrdering proves gentle < normal < aggressive.
func TestDrivingStyleOrdering(t *testing.T) {
	price := decimal.NewFromFloat(3.50)

	gentle := AnnualFuelCost(12000, 30, price, types.DrivingGentle, types.TerrainFlat)
	normal := AnnualFuelCost(12000, 30, price, types.DrivingNormal, types.TerrainFlat)
	aggressive := AnnualFuelCost(12000, 30, price, types.DrivingAggressive, types.TerrainFlat)

	if !gentle.LessThan(normal) || !normal.LessThan(aggressive) {
		t.Errorf("style ordering violated: %s, %s, %s", gentle, normal, aggressive)
	}
}

// TestHillyTerrainCostsMore proves terrain raises consumption.
func TestHillyTerrainCostsMore(t *testing.T) {
	price := decimal.NewFromFloat(3.50)

	flat := AnnualFuelCost(12000, 30, price, types.DrivingNormal, types.TerrainFlat)
	hilly := AnnualFuelCost(12000, 30, price, types.DrivingNormal, types.TerrainHilly)

	if !hilly.GreaterThan(flat) {
		t.Errorf("hilly cost %s not above flat cost %s", hilly, flat)
	}
}

// TestChargingMixOrdering proves home < mixed < public charging cost,
// and that an unknown preference rates as the mixed blend.
func TestChargingMixOrdering(t *testing.T) {
	rate := decimal.NewFromFloat(0.12)

	home := AnnualElectricityCost(12000, 120, rate, types.ChargingHome)
	mixed := AnnualElectricityCost(12000, 120, rate, types.ChargingMixed)
	public := AnnualElectricityCost(12000, 120, rate, types.ChargingPublic)

	if !home.LessThan(mixed) || !mixed.LessThan(public) {
		t.Errorf("charging ordering violated: %s, %s, %s", home, mixed, public)
	}

	unknown := AnnualElectricityCost(12000, 120, rate, "")
	if !unknown.Equal(mixed) {
		t.Errorf("unknown charging preference %s != mixed %s", unknown, mixed)
	}
}

// TestElectricIsCheaperThanGas compares a typical EV against a typical
// combustion vehicle at average national prices.
func TestElectricIsCheaperThanGas(t *testing.T) {
	fuel := AnnualFuelCost(12000, 28, decimal.NewFromFloat(3.50), types.DrivingNormal, types.TerrainFlat)
	elec := AnnualElectricityCost(12000, 120, decimal.NewFromFloat(0.12), types.ChargingHome)

	if !elec.LessThan(fuel) {
		t.Errorf("EV charging %s not below fuel %s", elec, fuel)
	}
}
