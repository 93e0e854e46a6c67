package engine

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/energy"
	"vehicle-cost/core/finance"
	"vehicle-cost/core/insurance"
	"vehicle-cost/core/maintenance"
	"vehicle-cost/core/types"
)

// calculatePurchase projects and reconciles a purchase scenario.
// Insurance is rated per year against that year's depreciated value.
func (c *Calculator) calculatePurchase(s types.OwnershipScenario, res resolved) (*types.Result, error) {
	horizon := s.HorizonYears

	var depSchedule []types.DepreciationPoint
	if res.used {
		depSchedule = c.dep.UsedVehicleSchedule(s.AcquisitionValue, s.Vehicle.Make, res.ageAtStart, horizon)
	} else {
		depSchedule = c.dep.ProjectValueSchedule(
			s.AcquisitionValue, s.Vehicle.Make, s.Vehicle.Model,
			s.Vehicle.ModelYear, s.AnnualMileage, horizon)
	}

	maintSchedule := c.maint.BuildSchedule(s.AnnualMileage, horizon, s.CurrentMileage, maintenance.Options{
		Make:               s.Vehicle.Make,
		Shop:               s.Insurance.Shop,
		RegionalMultiplier: res.regional,
		AgeAtStart:         res.ageAtStart,
	})

	var finSchedule []types.FinancingYear
	if s.Financing != nil && s.Financing.LoanAmount.IsPositive() {
		finSchedule = finance.Amortize(
			s.Financing.LoanAmount, s.Financing.AnnualRatePercent,
			s.Financing.TermYears, horizon)
	}

	fuel := c.annualFuelCost(s, res)

	rows := make([]types.AnnualCostRow, 0, horizon)
	totals := map[types.CostCategory]decimal.Decimal{}

	for year := 1; year <= horizon; year++ {
		dp := depSchedule[year-1]
		my := maintSchedule[year-1]

		premium := c.ins.AnnualPremium(insurance.Profile{
			VehicleValue:          dp.Value,
			Make:                  s.Vehicle.Make,
			Model:                 s.Vehicle.Model,
			ModelYear:             s.Vehicle.ModelYear,
			DriverAge:             s.Driver.Age,
			State:                 s.Location.State,
			Coverage:              s.Insurance.Coverage,
			AnnualMileage:         s.AnnualMileage,
			HouseholdVehicleCount: s.Driver.HouseholdVehicleCount,
			RegionalMultiplier:    res.regional,
		})

		financing := decimal.Zero
		if finSchedule != nil {
			financing = finSchedule[year-1].AnnualPayment
		}

		total := dp.AnnualDepreciation.
			Add(my.TotalYearCost).
			Add(premium).
			Add(fuel).
			Add(financing)

		rows = append(rows, types.AnnualCostRow{
			Year:                  year,
			CalendarYear:          c.cfg.ReferenceYear + year - 1,
			VehicleAgeAtYearEnd:   res.ageAtStart + year,
			CumulativeMileage:     s.CurrentMileage + s.AnnualMileage*year,
			Depreciation:          dp.AnnualDepreciation,
			Maintenance:           my.TotalYearCost,
			MaintenanceActivities: cleanActivities(my.Services),
			Insurance:             premium,
			FuelEnergy:            fuel,
			Financing:             financing,
			TotalAnnualCost:       total,
		})

		addTotal(totals, types.CategoryDepreciation, dp.AnnualDepreciation)
		addTotal(totals, types.CategoryMaintenance, my.TotalYearCost)
		addTotal(totals, types.CategoryInsurance, premium)
		addTotal(totals, types.CategoryFuelEnergy, fuel)
		addTotal(totals, types.CategoryFinancing, financing)
	}

	result := c.buildResult(s, res, rows, totals)
	result.Summary.FinalVehicleValue = depSchedule[horizon-1].Value
	result.Summary.IsUsedVehicle = res.used
	result.DepreciationSchedule = depSchedule
	result.MaintenanceSchedule = maintSchedule
	result.FinancingSchedule = finSchedule
	return result, nil
}

// annualFuelCost routes to the fuel or electricity model. The cost is
// the same for every year of the horizon.
func (c *Calculator) annualFuelCost(s types.OwnershipScenario, res resolved) decimal.Decimal {
	if res.chars.IsElectric {
		return energy.AnnualElectricityCost(s.AnnualMileage, res.chars.MPGe, res.elecRate, s.Charging)
	}
	return energy.AnnualFuelCost(s.AnnualMileage, res.chars.MPG, res.fuelPrice, s.Driver.DrivingStyle, s.Driver.Terrain)
}

func addTotal(totals map[types.CostCategory]decimal.Decimal, cat types.CostCategory, amount decimal.Decimal) {
	totals[cat] = totals[cat].Add(amount)
}

// cleanActivities is the display-layer guarantee on service lists:
// zero-cost and unnamed items are dropped, duplicates collapse on the
// normalized name.
func cleanActivities(items []types.ServiceLineItem) []types.ServiceLineItem {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]types.ServiceLineItem, 0, len(items))
	for _, item := range items {
		key := item.NormalizedName()
		if key == "" || !item.TotalCost.IsPositive() || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
