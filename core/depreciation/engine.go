// Package depreciation projects vehicle value curves.
// Two distinct models: a market-curve model for new vehicles and a
// gentler linear-decay model for vehicles bought used. Used vehicles
// must not re-experience new-vehicle depreciation shock.
package depreciation

import (
	"strings"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/segment"
	"vehicle-cost/core/types"
)

// Engine computes depreciation schedules from one calibration set.
// Safe for concurrent use; the calibration is never mutated.
type Engine struct {
	cal *Calibration
}

// NewEngine creates an engine with the canonical calibration.
func NewEngine() *Engine {
	return &Engine{cal: DefaultCalibration()}
}

// NewEngineWithCalibration creates an engine with a custom calibration.
func NewEngineWithCalibration(cal *Calibration) *Engine {
	return &Engine{cal: cal}
}

// ProjectValueSchedule computes the year-by-year value curve for a new
// vehicle. Unknown makes and models never fail: they fall back to a
// 1.0 brand multiplier and the sedan segment curve.
func (e *Engine) ProjectValueSchedule(
	initialValue decimal.Decimal,
	vehicleMake, model string,
	modelYear, annualMileage, years int,
) []types.DepreciationPoint {
	seg := segment.Classify(vehicleMake, model)
	brand := e.adjustedBrandMultiplier(vehicleMake, model)
	mileage := MileageMultiplier(annualMileage)
	cap := e.cal.Cap(seg)
	curve := e.cal.Curve(seg)

	schedule := make([]types.DepreciationPoint, 0, years)
	prev := initialValue

	for year := 1; year <= years; year++ {
		rate := e.cumulativeRate(curve, year) * brand * mileage
		if rate > cap {
			rate = cap
		}

		value := initialValue.Mul(decimal.NewFromFloat(1 - rate)).Round(2)
		schedule = append(schedule, types.DepreciationPoint{
			Year:                   year,
			Value:                  value,
			AnnualDepreciation:     prev.Sub(value),
			CumulativeDepreciation: initialValue.Sub(value),
			Rate:                   rate,
		})
		prev = value
	}

	return schedule
}

// cumulativeRate returns the base cumulative fraction lost by a given
// year, extrapolating slowly past the 15-year table.
func (e *Engine) cumulativeRate(curve [15]float64, year int) float64 {
	if year <= len(curve) {
		return curve[year-1]
	}
	extra := float64(year-len(curve)) * e.cal.ExtrapolationPerYear
	rate := curve[len(curve)-1] + extra
	if rate > e.cal.ExtrapolationCeiling {
		rate = e.cal.ExtrapolationCeiling
	}
	return rate
}

// adjustedBrandMultiplier applies the model-specific retention override
// on top of the brand factor. Matching is case-insensitive substring.
func (e *Engine) adjustedBrandMultiplier(vehicleMake, model string) float64 {
	base := e.cal.BrandMultiplier(vehicleMake)
	modelLower := strings.ToLower(model)

	for _, name := range e.cal.HighRetentionModels[vehicleMake] {
		if strings.Contains(modelLower, strings.ToLower(name)) {
			return base * e.cal.HighRetentionFactor
		}
	}
	for _, name := range e.cal.PoorRetentionModels[vehicleMake] {
		if strings.Contains(modelLower, strings.ToLower(name)) {
			return base * e.cal.PoorRetentionFactor
		}
	}
	return base
}

// MileageMultiplier maps annual mileage to a depreciation scaling
// factor. The curve is piecewise linear and continuous at every
// breakpoint: 100, 1000, 5000, 12000 and 20000 miles.
func MileageMultiplier(annualMileage int) float64 {
	m := float64(annualMileage)
	switch {
	case m <= 100:
		// Near-zero use bonus
		return 0.60
	case m <= 1000:
		return 0.60 + (m-100)/900*0.15
	case m <= 5000:
		return 0.75 + (m-1000)/4000*0.10
	case m <= 12000:
		return 0.85 + (m-5000)/7000*0.15
	case m <= 20000:
		return 1.0 + (m-12000)/8000*0.25
	default:
		mult := 1.25 + (m-20000)/20000*0.25
		if mult > 1.5 {
			mult = 1.5
		}
		return mult
	}
}

// RetentionRating grades a make/model's value retention for display.
func (e *Engine) RetentionRating(vehicleMake, model string) string {
	mult := e.adjustedBrandMultiplier(vehicleMake, model)
	switch {
	case mult <= 0.80:
		return "Exceptional"
	case mult <= 0.90:
		return "Excellent"
	case mult <= 1.00:
		return "Good"
	case mult <= 1.10:
		return "Average"
	case mult <= 1.20:
		return "Below Average"
	default:
		return "Poor"
	}
}
