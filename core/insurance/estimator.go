// Package insurance estimates annual premiums.
// The rating model is multiplicative: a state base rate scaled by
// vehicle value, driver age band, coverage level, household fleet
// size, annual mileage and the regional cost factor. Premiums are
// deterministic and always non-negative.
package insurance

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/segment"
	"vehicle-cost/core/types"
)

// Profile is the rating input for one policy year.
type Profile struct {
	// VehicleValue is the current depreciated value, not the
	// original price. Premiums fall as the vehicle ages.
	VehicleValue decimal.Decimal

	Make      string
	Model     string
	ModelYear int

	// DriverAge selects the age-band factor
	DriverAge int

	// State is the two-letter rating state
	State string

	Coverage types.CoverageType

	AnnualMileage int

	// HouseholdVehicleCount drives the multi-vehicle discount
	HouseholdVehicleCount int

	// RegionalMultiplier is the location cost factor, zero means 1.0
	RegionalMultiplier float64
}

// Estimator computes annual premiums. Safe for concurrent use.
type Estimator struct {
	baseRates map[string]float64
}

// NewEstimator creates an estimator with the canonical state rates.
func NewEstimator() *Estimator {
	return &Estimator{baseRates: stateBaseRates}
}

// stateBaseRates are annual full-coverage base premiums by state for an
// average driver and vehicle. States absent from the table use
// defaultBaseRate.
var stateBaseRates = map[string]float64{
	"MI": 2680, "LA": 2550, "FL": 2430, "NY": 2220, "NV": 2060,
	"KY": 2040, "GA": 1980, "DE": 1930, "RI": 1890, "CT": 1850,
	"TX": 1820, "CO": 1780, "SC": 1760, "MO": 1720, "CA": 1710,
	"AZ": 1680, "OK": 1660, "MS": 1640, "WV": 1620, "NJ": 1610,
	"MD": 1590, "AR": 1580, "AL": 1560, "NM": 1540, "MT": 1520,
	"KS": 1500, "MN": 1480, "IL": 1460, "PA": 1450, "TN": 1430,
	"OR": 1420, "UT": 1400, "NE": 1380, "WA": 1370, "MA": 1360,
	"ND": 1340, "SD": 1330, "WY": 1320, "AK": 1310, "IN": 1300,
	"WI": 1280, "IA": 1260, "NC": 1240, "VA": 1220, "HI": 1200,
	"OH": 1180, "ID": 1150, "VT": 1120, "NH": 1100, "ME": 1080,
	"DC": 1980,
}

const defaultBaseRate = 1500

// segmentRiskFactors reflect repair cost and claim frequency by market
// segment.
var segmentRiskFactors = map[types.Segment]float64{
	types.SegmentSports:   1.45,
	types.SegmentLuxury:   1.30,
	types.SegmentElectric: 1.20,
	types.SegmentTruck:    1.05,
	types.SegmentSUV:      1.00,
	types.SegmentSedan:    1.00,
	types.SegmentCompact:  0.95,
	types.SegmentEconomy:  0.90,
}

var coverageFactors = map[types.CoverageType]float64{
	types.CoverageLiability:     0.55,
	types.CoverageStandard:      0.85,
	types.CoverageComprehensive: 1.00,
}

// AnnualPremium computes the premium for one policy year.
func (e *Estimator) AnnualPremium(p Profile) decimal.Decimal {
	state := p.State
	base, ok := e.baseRates[state]
	if !ok {
		base = defaultBaseRate
	}

	factor := valueFactor(p.VehicleValue) *
		ageBandFactor(p.DriverAge) *
		coverageFactor(p.Coverage) *
		multiVehicleFactor(p.HouseholdVehicleCount) *
		mileageFactor(p.AnnualMileage) *
		riskFactor(p.Make, p.Model) *
		regional(p.RegionalMultiplier)

	premium := decimal.NewFromFloat(base * factor).Round(2)
	if premium.IsNegative() {
		return decimal.Zero
	}
	return premium
}

// valueFactor scales the premium with the current vehicle value: the
// comprehensive/collision portion tracks what the insurer would pay
// out on a total loss. A $30k vehicle rates 1.0.
func valueFactor(value decimal.Decimal) float64 {
	v, _ := value.Float64()
	if v < 0 {
		v = 0
	}
	f := 0.55 + v/30000*0.45
	if f > 2.2 {
		f = 2.2
	}
	return f
}

func ageBandFactor(age int) float64 {
	switch {
	case age <= 0:
		// Unknown age rates as an average adult
		return 1.0
	case age < 21:
		return 2.10
	case age < 25:
		return 1.60
	case age < 30:
		return 1.25
	case age < 65:
		return 1.00
	case age < 75:
		return 1.12
	default:
		return 1.30
	}
}

func coverageFactor(c types.CoverageType) float64 {
	if f, ok := coverageFactors[c]; ok {
		return f
	}
	return coverageFactors[types.CoverageStandard]
}

// multiVehicleFactor applies the household multi-policy discount.
func multiVehicleFactor(count int) float64 {
	switch {
	case count >= 3:
		return 0.85
	case count == 2:
		return 0.90
	default:
		return 1.00
	}
}

func mileageFactor(annualMileage int) float64 {
	switch {
	case annualMileage <= 7500:
		return 0.90
	case annualMileage <= 15000:
		return 1.00
	case annualMileage <= 20000:
		return 1.10
	default:
		return 1.20
	}
}

func riskFactor(vehicleMake, model string) float64 {
	seg := segment.Classify(vehicleMake, model)
	if f, ok := segmentRiskFactors[seg]; ok {
		return f
	}
	return 1.0
}

func regional(m float64) float64 {
	if m == 0 {
		return 1.0
	}
	if m < 0.8 {
		return 0.8
	}
	if m > 1.3 {
		return 1.3
	}
	return m
}
