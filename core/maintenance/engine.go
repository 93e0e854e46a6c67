// Package maintenance builds year-by-year service schedules.
// Services are generated by counting interval crossings against
// cumulative mileage, so re-chunking the same total mileage into
// different year splits always yields the same total occurrence count.
package maintenance

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// Engine computes maintenance schedules from one table set.
// Safe for concurrent use; the tables are never mutated.
type Engine struct {
	t *Tables
}

// NewEngine creates an engine with the canonical tables.
func NewEngine() *Engine {
	return &Engine{t: DefaultTables()}
}

// NewEngineWithTables creates an engine with a custom table set.
func NewEngineWithTables(t *Tables) *Engine {
	return &Engine{t: t}
}

// Options adjust a schedule for one vehicle and owner.
type Options struct {
	// Make selects the brand reliability multiplier
	Make string

	// Shop selects the labor-rate multiplier
	Shop types.ShopType

	// RegionalMultiplier is the location cost factor, clamped to
	// [0.8, 1.3]. Zero means 1.0.
	RegionalMultiplier float64

	// AgeAtStart is the vehicle's age in years when ownership begins.
	// Non-zero for used vehicles; shifts the wear brackets.
	AgeAtStart int
}

// BuildSchedule computes the ownership maintenance schedule.
// startingMileage is the odometer at acquisition; interval services
// already due before acquisition are not re-billed.
func (e *Engine) BuildSchedule(annualMileage, years, startingMileage int, opts Options) []types.MaintenanceYear {
	mult := e.combinedMultiplier(opts)

	schedule := make([]types.MaintenanceYear, 0, years)
	for year := 1; year <= years; year++ {
		mileageStart := startingMileage + (year-1)*annualMileage
		mileageEnd := startingMileage + year*annualMileage

		items := e.intervalServices(mileageStart, mileageEnd, mult)

		age := opts.AgeAtStart + year
		if wear, ok := e.wearItem(age, mult); ok {
			items = append(items, wear)
		}

		schedule = append(schedule, buildYear(year, mileageEnd, items))
	}

	return schedule
}

// BuildLeaseSchedule computes the schedule for a leased vehicle.
// Warranty coverage absorbs a declining share of each year's cost
// (60% in years 1-2, 40% in year 3, 20% after), the shop is
// always the dealership, and wear items use a reduced base since the
// vehicle is returned before heavy wear sets in.
func (e *Engine) BuildLeaseSchedule(annualMileage, years, startingMileage int, vehicleMake string, regionalMultiplier float64) []types.MaintenanceYear {
	mult := e.combinedMultiplier(Options{
		Make:               vehicleMake,
		Shop:               types.ShopDealership,
		RegionalMultiplier: regionalMultiplier,
	})

	schedule := make([]types.MaintenanceYear, 0, years)
	for year := 1; year <= years; year++ {
		mileageStart := startingMileage + (year-1)*annualMileage
		mileageEnd := startingMileage + year*annualMileage
		coverage := warrantyCoverage(year)

		items := e.intervalServices(mileageStart, mileageEnd, mult)
		if year > 3 {
			if wear, ok := e.leaseWearItem(mult); ok {
				items = append(items, wear)
			}
		}

		kept := items[:0]
		for _, item := range items {
			covered := item.TotalCost.Mul(decimal.NewFromFloat(coverage)).Round(2)
			item.WarrantyCovered = covered
			item.TotalCost = item.TotalCost.Sub(covered)
			if item.TotalCost.LessThanOrEqual(e.t.LeaseMinimumItemCost) {
				continue
			}
			kept = append(kept, item)
		}

		schedule = append(schedule, buildYear(year, mileageEnd, kept))
	}

	return schedule
}

// intervalServices emits one line item per service with at least one
// occurrence in the (mileageStart, mileageEnd] window. The occurrence
// count is the number of interval multiples crossed.
func (e *Engine) intervalServices(mileageStart, mileageEnd int, mult float64) []types.ServiceLineItem {
	var items []types.ServiceLineItem
	for _, svc := range e.t.Services {
		freq := mileageEnd/svc.IntervalMiles - mileageStart/svc.IntervalMiles
		if freq <= 0 {
			continue
		}

		cost := svc.BaseCost.Mul(decimal.NewFromFloat(mult)).Round(2)
		items = append(items, types.ServiceLineItem{
			ServiceName:       svc.Name,
			Frequency:         freq,
			CostPerOccurrence: cost,
			TotalCost:         cost.Mul(decimal.NewFromInt(int64(freq))),
			IntervalBased:     true,
		})
	}
	return items
}

// wearItem returns the age-driven wear and repair line for a vehicle
// age, or false when the vehicle is too new or the adjusted cost falls
// below the materiality threshold.
func (e *Engine) wearItem(age int, mult float64) (types.ServiceLineItem, bool) {
	base := e.t.WearBase(age)
	if base == 0 {
		return types.ServiceLineItem{}, false
	}

	cost := decimal.NewFromFloat(base * mult).Round(2)
	if cost.LessThanOrEqual(e.t.WearMaterialityThreshold) {
		return types.ServiceLineItem{}, false
	}

	return types.ServiceLineItem{
		ServiceName:       "Wear and Repair",
		Frequency:         1,
		CostPerOccurrence: cost,
		TotalCost:         cost,
		IntervalBased:     false,
	}, true
}

func (e *Engine) leaseWearItem(mult float64) (types.ServiceLineItem, bool) {
	cost := decimal.NewFromFloat(e.t.LeaseWearBase * mult).Round(2)
	if !cost.IsPositive() {
		return types.ServiceLineItem{}, false
	}
	return types.ServiceLineItem{
		ServiceName:       "Wear and Repair",
		Frequency:         1,
		CostPerOccurrence: cost,
		TotalCost:         cost,
		IntervalBased:     false,
	}, true
}

// warrantyCoverage is the share of a year's maintenance absorbed by
// the factory warranty during a lease.
func warrantyCoverage(year int) float64 {
	switch {
	case year <= 2:
		return 0.60
	case year == 3:
		return 0.40
	default:
		return 0.20
	}
}

func (e *Engine) combinedMultiplier(opts Options) float64 {
	regional := opts.RegionalMultiplier
	if regional == 0 {
		regional = 1.0
	}
	return e.t.BrandMultiplier(opts.Make) *
		e.t.ShopMultiplier(opts.Shop) *
		e.t.ClampRegional(regional)
}

func buildYear(year, mileageEnd int, items []types.ServiceLineItem) types.MaintenanceYear {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalCost)
	}
	return types.MaintenanceYear{
		Year:                  year,
		TotalMileageAtYearEnd: mileageEnd,
		Services:              items,
		TotalYearCost:         total,
	}
}

// ReliabilityRating grades a make's maintenance burden for display.
func (e *Engine) ReliabilityRating(vehicleMake string) string {
	mult := e.t.BrandMultiplier(vehicleMake)
	switch {
	case mult <= 0.90:
		return "Excellent"
	case mult <= 1.00:
		return "Good"
	case mult <= 1.15:
		return "Average"
	case mult <= 1.30:
		return "Below Average"
	default:
		return "Poor"
	}
}
