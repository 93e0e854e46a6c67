// Package engine orchestrates a full cost-of-ownership calculation.
// A calculation is a pure function of its scenario: resolve reference
// data, project each cost engine across the horizon, reconcile the
// yearly rows, summarize. No hidden state, no wall-clock reads.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vehicle-cost/core/depreciation"
	"vehicle-cost/core/insurance"
	"vehicle-cost/core/maintenance"
	"vehicle-cost/core/segment"
	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

// VehicleSource resolves vehicle reference data. Implementations must
// be safe for concurrent use.
type VehicleSource interface {
	// Characteristics returns fuel economy and reliability data for a
	// vehicle. An error means the vehicle is unknown; the calculator
	// degrades to documented defaults.
	Characteristics(vehicleMake, model string, year int) (types.VehicleCharacteristics, error)

	// TrimPrice returns the MSRP for a specific trim
	TrimPrice(vehicleMake, model string, year int, trim string) (decimal.Decimal, error)
}

// RegionSource resolves location-dependent pricing data.
type RegionSource interface {
	// CostMultiplier returns the regional cost scaling factor
	CostMultiplier(state string, geography types.GeographyType) (float64, error)

	// FuelPrice returns the state average fuel price, $/gallon
	FuelPrice(state string) (decimal.Decimal, error)

	// ElectricityRate returns the state average rate, $/kWh
	ElectricityRate(state string) (decimal.Decimal, error)
}

// Config holds the calculator's policy constants. The reference year
// is injected so identical inputs always produce identical outputs.
type Config struct {
	// ReferenceYear anchors vehicle-age and new-vs-used decisions
	ReferenceYear int

	// UsedMileageThreshold marks a current-year vehicle as used once
	// its odometer exceeds this value
	UsedMileageThreshold int

	// Defaults used when reference lookups fail
	DefaultMPG              float64
	DefaultMPGe             float64
	DefaultReliabilityScore float64
	DefaultFuelPrice        decimal.Decimal
	DefaultElectricityRate  decimal.Decimal

	// AffordabilityMaxPercent is the recommended ceiling on annual
	// cost as a share of gross income
	AffordabilityMaxPercent float64

	// Logger is an optional trace hook. Nil disables tracing.
	Logger *zap.Logger
}

// DefaultConfig returns the standard policy constants for a reference
// year.
func DefaultConfig(referenceYear int) Config {
	return Config{
		ReferenceYear:           referenceYear,
		UsedMileageThreshold:    3000,
		DefaultMPG:              25,
		DefaultMPGe:             100,
		DefaultReliabilityScore: 3.5,
		DefaultFuelPrice:        decimal.NewFromFloat(3.50),
		DefaultElectricityRate:  decimal.NewFromFloat(0.12),
		AffordabilityMaxPercent: 10,
	}
}

// Calculator runs TCO calculations. Safe for concurrent use: every
// calculation is independent and side-effect-free.
type Calculator struct {
	cfg      Config
	vehicles VehicleSource
	regions  RegionSource

	dep   *depreciation.Engine
	maint *maintenance.Engine
	ins   *insurance.Estimator
}

// New creates a calculator with the given collaborators.
func New(vehicles VehicleSource, regions RegionSource, cfg Config) *Calculator {
	return &Calculator{
		cfg:      cfg,
		vehicles: vehicles,
		regions:  regions,
		dep:      depreciation.NewEngine(),
		maint:    maintenance.NewEngine(),
		ins:      insurance.NewEstimator(),
	}
}

// Depreciation exposes the depreciation engine for direct use.
func (c *Calculator) Depreciation() *depreciation.Engine { return c.dep }

// Maintenance exposes the maintenance engine for direct use.
func (c *Calculator) Maintenance() *maintenance.Engine { return c.maint }

// Calculate runs one full calculation. The returned error is an
// *errors.Error for contractually invalid input; use FailureFrom to
// render it as a structured failure.
func (c *Calculator) Calculate(scenario types.OwnershipScenario) (*types.Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	scenario.Normalize()

	res := c.resolve(scenario)

	c.trace("scenario resolved",
		zap.String("make", scenario.Vehicle.Make),
		zap.String("model", scenario.Vehicle.Model),
		zap.String("segment", res.segment.String()),
		zap.Bool("used", res.used),
		zap.Bool("degraded", res.degraded))

	switch scenario.Transaction {
	case types.TransactionLease:
		return c.calculateLease(scenario, res)
	default:
		return c.calculatePurchase(scenario, res)
	}
}

// FailureFrom renders a calculation error as the structured failure
// result surfaced to callers.
func FailureFrom(err error) *types.Failure {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errors.Error); ok {
		return &types.Failure{
			Code:    string(e.Type),
			Message: e.Message,
		}
	}
	return &types.Failure{
		Code:    string(errors.TypeInternal),
		Message: err.Error(),
	}
}

// resolved carries the reference data for one calculation.
type resolved struct {
	segment     types.Segment
	chars       types.VehicleCharacteristics
	regional    float64
	fuelPrice   decimal.Decimal
	elecRate    decimal.Decimal
	used        bool
	ageAtStart  int
	assumptions []string
	degraded    bool
}

// resolve gathers reference data, substituting documented defaults
// and recording each substitution in the assumptions list.
func (c *Calculator) resolve(s types.OwnershipScenario) resolved {
	res := resolved{regional: 1.0}

	chars, err := c.vehicles.Characteristics(s.Vehicle.Make, s.Vehicle.Model, s.Vehicle.ModelYear)
	if err != nil {
		chars = types.VehicleCharacteristics{
			MPG:              c.cfg.DefaultMPG,
			MPGe:             c.cfg.DefaultMPGe,
			ReliabilityScore: c.cfg.DefaultReliabilityScore,
			IsElectric:       segment.Classify(s.Vehicle.Make, s.Vehicle.Model) == types.SegmentElectric,
		}
		res.assume("vehicle data unavailable for %s %s; using %.0f MPG and reliability %.1f",
			s.Vehicle.Make, s.Vehicle.Model, c.cfg.DefaultMPG, c.cfg.DefaultReliabilityScore)
	}
	if !chars.IsElectric && chars.MPG <= 0 {
		chars.MPG = c.cfg.DefaultMPG
		res.assume("fuel economy unknown; assuming %.0f MPG", c.cfg.DefaultMPG)
	}
	if chars.IsElectric && chars.MPGe <= 0 {
		chars.MPGe = c.cfg.DefaultMPGe
		res.assume("efficiency unknown; assuming %.0f MPGe", c.cfg.DefaultMPGe)
	}
	res.chars = chars

	if chars.MarketSegment != "" {
		res.segment = chars.MarketSegment
	} else {
		res.segment = segment.Classify(s.Vehicle.Make, s.Vehicle.Model)
	}

	if mult, err := c.regions.CostMultiplier(s.Location.State, s.Location.Geography); err == nil {
		res.regional = mult
	} else {
		res.assume("regional cost data unavailable for %q; using national average", s.Location.State)
	}

	res.fuelPrice = s.Location.FuelPrice
	if !res.fuelPrice.IsPositive() {
		if price, err := c.regions.FuelPrice(s.Location.State); err == nil {
			res.fuelPrice = price
		} else {
			res.fuelPrice = c.cfg.DefaultFuelPrice
			res.assume("fuel price unavailable for %q; assuming $%s/gal", s.Location.State, c.cfg.DefaultFuelPrice)
		}
	}

	res.elecRate = s.Location.ElectricityRate
	if chars.IsElectric && !res.elecRate.IsPositive() {
		if rate, err := c.regions.ElectricityRate(s.Location.State); err == nil {
			res.elecRate = rate
		} else {
			res.elecRate = c.cfg.DefaultElectricityRate
			res.assume("electricity rate unavailable for %q; assuming $%s/kWh", s.Location.State, c.cfg.DefaultElectricityRate)
		}
	}

	res.ageAtStart = c.cfg.ReferenceYear - s.Vehicle.ModelYear
	if res.ageAtStart < 0 {
		res.ageAtStart = 0
	}
	res.used = s.Vehicle.ModelYear < c.cfg.ReferenceYear ||
		(s.Vehicle.ModelYear == c.cfg.ReferenceYear && s.CurrentMileage > c.cfg.UsedMileageThreshold)

	return res
}

func (r *resolved) assume(format string, args ...interface{}) {
	r.assumptions = append(r.assumptions, fmt.Sprintf(format, args...))
	r.degraded = true
}

func (c *Calculator) trace(msg string, fields ...zap.Field) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug(msg, fields...)
	}
}
