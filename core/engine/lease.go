package engine

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/insurance"
	"vehicle-cost/core/types"
)

// Lease fee policy constants.
var (
	// leaseOverageRatePerMile is charged on miles driven past the
	// contracted annual limit
	leaseOverageRatePerMile = decimal.NewFromFloat(0.20)

	// leaseWearRate is the annual wear-and-tear reserve as a fraction
	// of the vehicle's MSRP
	leaseWearRate = decimal.NewFromFloat(0.001)
)

// calculateLease projects and reconciles a lease scenario. The lessee
// never owns the vehicle, so depreciation is not a cost category;
// insurance is rated on the MSRP with comprehensive coverage, which
// lessors require.
func (c *Calculator) calculateLease(s types.OwnershipScenario, res resolved) (*types.Result, error) {
	horizon := s.HorizonYears
	msrp := s.AcquisitionValue

	maintSchedule := c.maint.BuildLeaseSchedule(s.AnnualMileage, horizon, s.CurrentMileage, s.Vehicle.Make, res.regional)
	fuel := c.annualFuelCost(s, res)
	annualLease := s.Lease.MonthlyPayment.Mul(decimal.NewFromInt(12))

	overageMiles := s.AnnualMileage - s.Lease.AnnualMileageLimit
	if overageMiles < 0 {
		overageMiles = 0
	}
	overageFee := leaseOverageRatePerMile.Mul(decimal.NewFromInt(int64(overageMiles))).Round(2)
	wearFee := msrp.Mul(leaseWearRate).Round(2)
	annualFees := overageFee.Add(wearFee)

	premium := c.ins.AnnualPremium(insurance.Profile{
		VehicleValue:          msrp,
		Make:                  s.Vehicle.Make,
		Model:                 s.Vehicle.Model,
		ModelYear:             s.Vehicle.ModelYear,
		DriverAge:             s.Driver.Age,
		State:                 s.Location.State,
		Coverage:              types.CoverageComprehensive,
		AnnualMileage:         s.AnnualMileage,
		HouseholdVehicleCount: s.Driver.HouseholdVehicleCount,
		RegionalMultiplier:    res.regional,
	})

	rows := make([]types.AnnualCostRow, 0, horizon)
	totals := map[types.CostCategory]decimal.Decimal{}

	for year := 1; year <= horizon; year++ {
		my := maintSchedule[year-1]

		payment := annualLease
		if year == 1 {
			payment = payment.Add(s.Lease.DownPayment)
		}

		total := my.TotalYearCost.
			Add(premium).
			Add(fuel).
			Add(payment).
			Add(annualFees)

		rows = append(rows, types.AnnualCostRow{
			Year:                  year,
			CalendarYear:          c.cfg.ReferenceYear + year - 1,
			VehicleAgeAtYearEnd:   res.ageAtStart + year,
			CumulativeMileage:     s.CurrentMileage + s.AnnualMileage*year,
			Maintenance:           my.TotalYearCost,
			MaintenanceActivities: cleanActivities(my.Services),
			Insurance:             premium,
			FuelEnergy:            fuel,
			Financing:             payment,
			FeesPenalties:         annualFees,
			TotalAnnualCost:       total,
		})

		addTotal(totals, types.CategoryMaintenance, my.TotalYearCost)
		addTotal(totals, types.CategoryInsurance, premium)
		addTotal(totals, types.CategoryFuelEnergy, fuel)
		addTotal(totals, types.CategoryLeasePayments, payment)
		addTotal(totals, types.CategoryFeesPenalties, annualFees)
	}

	result := c.buildResult(s, res, rows, totals)
	result.Summary.DownPayment = s.Lease.DownPayment
	result.MaintenanceSchedule = maintSchedule
	return result, nil
}
