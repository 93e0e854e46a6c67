// Package energy estimates annual fuel and electricity costs.
package energy

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// KWhPerGallonEquivalent converts an MPGe rating into kWh per mile.
// EPA defines one gallon of gasoline as 33.7 kWh.
const KWhPerGallonEquivalent = 33.7

var drivingStyleFactors = map[types.DrivingStyle]float64{
	types.DrivingGentle:     0.90,
	types.DrivingNormal:     1.00,
	types.DrivingAggressive: 1.15,
}

var terrainFactors = map[types.Terrain]float64{
	types.TerrainFlat:  0.95,
	types.TerrainHilly: 1.10,
}

// chargingMixFactors reflect the blended price of home, workplace and
// public charging relative to the home rate.
var chargingMixFactors = map[types.ChargingPreference]float64{
	types.ChargingHome:   1.00,
	types.ChargingMixed:  1.15,
	types.ChargingPublic: 1.45,
}

// AnnualFuelCost computes the fuel spend for a combustion vehicle.
// Zero mileage costs zero; a non-positive MPG is treated as the
// 25 MPG fleet default rather than dividing by zero.
func AnnualFuelCost(annualMileage int, mpg float64, fuelPrice decimal.Decimal, style types.DrivingStyle, terrain types.Terrain) decimal.Decimal {
	if annualMileage <= 0 {
		return decimal.Zero
	}
	if mpg <= 0 {
		mpg = 25
	}

	gallons := float64(annualMileage) / mpg
	adjusted := gallons * styleFactor(style) * terrainFactor(terrain)

	return fuelPrice.Mul(decimal.NewFromFloat(adjusted)).Round(2)
}

// AnnualElectricityCost computes the charging spend for an electric
// vehicle. Zero mileage costs zero; a non-positive MPGe is treated as
// the 100 MPGe fleet default.
func AnnualElectricityCost(annualMileage int, mpge float64, electricityRate decimal.Decimal, charging types.ChargingPreference) decimal.Decimal {
	if annualMileage <= 0 {
		return decimal.Zero
	}
	if mpge <= 0 {
		mpge = 100
	}

	kwhPerMile := KWhPerGallonEquivalent / mpge
	kwh := float64(annualMileage) * kwhPerMile * chargingFactor(charging)

	return electricityRate.Mul(decimal.NewFromFloat(kwh)).Round(2)
}

func styleFactor(style types.DrivingStyle) float64 {
	if f, ok := drivingStyleFactors[style]; ok {
		return f
	}
	return 1.0
}

func terrainFactor(terrain types.Terrain) float64 {
	if f, ok := terrainFactors[terrain]; ok {
		return f
	}
	return 1.0
}

func chargingFactor(pref types.ChargingPreference) float64 {
	if f, ok := chargingMixFactors[pref]; ok {
		return f
	}
	return chargingMixFactors[types.ChargingMixed]
}
