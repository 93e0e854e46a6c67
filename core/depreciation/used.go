// Package depreciation - Used-vehicle model
package depreciation

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// UsedVehicleSchedule computes the linear-decay value curve for a
// vehicle already owned at acquisition. The curve starts from the
// purchase price, not the original MSRP, decays at modest annual rates
// that fall with the vehicle's age at purchase, and never drops below
// the residual floor.
func (e *Engine) UsedVehicleSchedule(
	purchasePrice decimal.Decimal,
	vehicleMake string,
	ageAtPurchase, years int,
) []types.DepreciationPoint {
	rates := e.usedRateLadder(ageAtPurchase)
	brand := e.cal.UsedBrandFactor(vehicleMake)
	floor := purchasePrice.Mul(decimal.NewFromFloat(e.cal.UsedResidualFloor)).Round(2)

	schedule := make([]types.DepreciationPoint, 0, years)
	current := purchasePrice

	for year := 1; year <= years; year++ {
		idx := year - 1
		if idx >= len(rates) {
			idx = len(rates) - 1
		}
		rate := rates[idx] * brand

		value := current.Mul(decimal.NewFromFloat(1 - rate)).Round(2)
		if value.LessThan(floor) {
			value = floor
		}

		schedule = append(schedule, types.DepreciationPoint{
			Year:                   year,
			Value:                  value,
			AnnualDepreciation:     current.Sub(value),
			CumulativeDepreciation: purchasePrice.Sub(value),
			Rate:                   rate,
		})
		current = value
	}

	return schedule
}

func (e *Engine) usedRateLadder(ageAtPurchase int) [5]float64 {
	switch {
	case ageAtPurchase <= 3:
		return e.cal.UsedRatesRecent
	case ageAtPurchase <= 7:
		return e.cal.UsedRatesMidAge
	default:
		return e.cal.UsedRatesOlder
	}
}

// EstimateCurrentValue estimates the present market value of an aged
// vehicle from its original MSRP, age and odometer. Used to suggest a
// purchase price when a caller supplies none for a used vehicle.
func (e *Engine) EstimateCurrentValue(
	originalMSRP decimal.Decimal,
	vehicleMake, model string,
	vehicleAge, currentMileage int,
) decimal.Decimal {
	if vehicleAge <= 0 {
		// Current-year vehicle: depreciation driven by odometer only
		rate := float64(currentMileage) / 100000 * 0.3
		if rate > 0.15 {
			rate = 0.15
		}
		annualEstimate := currentMileage * 4 // extrapolate a partial year
		value := originalMSRP.
			Mul(decimal.NewFromFloat(1 - rate)).
			Mul(decimal.NewFromFloat(MileageMultiplier(annualEstimate)))
		return e.applyValueFloor(value, originalMSRP)
	}

	annualMileage := currentMileage / vehicleAge
	if annualMileage > 30000 {
		annualMileage = 30000
	}

	schedule := e.ProjectValueSchedule(originalMSRP, vehicleMake, model, 0, annualMileage, vehicleAge)
	value := schedule[len(schedule)-1].Value

	// High-mileage penalty beyond 20% over the standard pace
	if annualMileage > 14400 {
		excess := float64(currentMileage - 12000*vehicleAge)
		factor := 0.95 - excess/100000*0.1
		if factor < 0.3 {
			factor = 0.3
		}
		value = value.Mul(decimal.NewFromFloat(factor))
	}

	return e.applyValueFloor(value, originalMSRP)
}

// applyValueFloor keeps the estimate at or above 10% of original MSRP.
func (e *Engine) applyValueFloor(value, originalMSRP decimal.Decimal) decimal.Decimal {
	floor := originalMSRP.Mul(decimal.NewFromFloat(0.10))
	if value.LessThan(floor) {
		value = floor
	}
	return value.Round(2)
}
