// Package types - Ownership scenario input
package types

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/internal/errors"
)

// MaxHorizonYears is the product-policy cap on the analysis horizon.
// The horizon is the only input that may be silently clamped; every
// other out-of-range value is rejected.
const MaxHorizonYears = 15

// DriverProfile describes the primary driver
type DriverProfile struct {
	// Age is the driver's age in years
	Age int `json:"age"`

	// GrossIncome is annual gross household income
	GrossIncome decimal.Decimal `json:"gross_income"`

	// DrivingStyle affects fuel and wear costs
	DrivingStyle DrivingStyle `json:"driving_style"`

	// Terrain is the dominant driving terrain
	Terrain Terrain `json:"terrain"`

	// HouseholdVehicleCount drives multi-vehicle insurance discounts
	HouseholdVehicleCount int `json:"household_vehicle_count"`
}

// Location describes where the vehicle is owned and driven
type Location struct {
	// State is the two-letter state code
	State string `json:"state"`

	// ZIP is the 5-digit ZIP code, optional
	ZIP string `json:"zip,omitempty"`

	// Geography classifies the location density
	Geography GeographyType `json:"geography"`

	// FuelPrice is the local fuel price, $/gallon. Zero means
	// "resolve from the regional lookup".
	FuelPrice decimal.Decimal `json:"fuel_price"`

	// ElectricityRate is the local electricity rate, $/kWh. Zero
	// means "resolve from the regional lookup".
	ElectricityRate decimal.Decimal `json:"electricity_rate"`
}

// InsuranceProfile holds coverage and service preferences
type InsuranceProfile struct {
	// Coverage is the insurance coverage level
	Coverage CoverageType `json:"coverage"`

	// Shop is the preferred maintenance shop type
	Shop ShopType `json:"shop"`
}

// FinancingTerms describes a purchase loan. Nil means cash purchase.
type FinancingTerms struct {
	// LoanAmount is the financed principal
	LoanAmount decimal.Decimal `json:"loan_amount"`

	// AnnualRatePercent is the APR, e.g. 5.0 for 5%
	AnnualRatePercent float64 `json:"annual_rate_percent"`

	// TermYears is the loan term
	TermYears int `json:"term_years"`
}

// LeaseTerms describes a lease transaction
type LeaseTerms struct {
	// MonthlyPayment is the contracted monthly lease payment
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`

	// AnnualMileageLimit is the contracted annual mileage cap
	AnnualMileageLimit int `json:"annual_mileage_limit"`

	// DownPayment is paid at signing
	DownPayment decimal.Decimal `json:"down_payment"`
}

// OwnershipScenario is the fully-resolved input to one TCO
// calculation. Callers own persistence and pass a complete scenario
// each time; the core never reads ambient state.
type OwnershipScenario struct {
	// Vehicle identifies the vehicle
	Vehicle VehicleIdentity `json:"vehicle"`

	// Transaction is purchase or lease
	Transaction TransactionType `json:"transaction"`

	// AcquisitionValue is the purchase price for purchases, or the
	// MSRP basis for leases
	AcquisitionValue decimal.Decimal `json:"acquisition_value"`

	// CurrentMileage is the odometer at acquisition (0 = brand new)
	CurrentMileage int `json:"current_mileage"`

	// AnnualMileage is expected miles driven per year
	AnnualMileage int `json:"annual_mileage"`

	// HorizonYears is the analysis horizon, clamped to [1,15]
	HorizonYears int `json:"horizon_years"`

	// Driver is the driver profile
	Driver DriverProfile `json:"driver"`

	// Location is where the vehicle lives
	Location Location `json:"location"`

	// Insurance holds coverage and shop preferences
	Insurance InsuranceProfile `json:"insurance"`

	// Financing is set for financed purchases, nil for cash
	Financing *FinancingTerms `json:"financing,omitempty"`

	// Lease is required when Transaction is lease
	Lease *LeaseTerms `json:"lease,omitempty"`

	// Charging is the EV charging mix, ignored for combustion vehicles
	Charging ChargingPreference `json:"charging,omitempty"`
}

// Validate rejects contractually invalid input. Per policy, only the
// horizon length is clamped (in Normalize); values that would change
// the meaning of the answer are rejected instead.
func (s *OwnershipScenario) Validate() error {
	if !s.Transaction.IsValid() {
		return errors.Inputf("invalid transaction type: %q", s.Transaction)
	}
	if s.HorizonYears <= 0 {
		return errors.Inputf("analysis horizon must be positive, got %d", s.HorizonYears)
	}
	if s.AnnualMileage < 0 {
		return errors.Inputf("annual mileage must not be negative, got %d", s.AnnualMileage)
	}
	if s.CurrentMileage < 0 {
		return errors.Inputf("current mileage must not be negative, got %d", s.CurrentMileage)
	}
	if s.AcquisitionValue.IsNegative() {
		return errors.Input("acquisition value must not be negative")
	}
	if s.Transaction == TransactionLease {
		if s.Lease == nil {
			return errors.Input("lease terms are required for a lease transaction")
		}
		if s.Lease.MonthlyPayment.IsNegative() || s.Lease.DownPayment.IsNegative() {
			return errors.Input("lease payments must not be negative")
		}
		if s.Lease.AnnualMileageLimit <= 0 {
			return errors.Input("lease mileage limit must be positive")
		}
	}
	if s.Financing != nil {
		if s.Financing.LoanAmount.IsNegative() {
			return errors.Input("loan amount must not be negative")
		}
		if s.Financing.AnnualRatePercent < 0 {
			return errors.Input("interest rate must not be negative")
		}
		if s.Financing.TermYears < 0 {
			return errors.Input("loan term must not be negative")
		}
	}
	return nil
}

// Normalize clamps the horizon to the policy cap and fills enum
// defaults. Call after Validate.
func (s *OwnershipScenario) Normalize() {
	if s.HorizonYears > MaxHorizonYears {
		s.HorizonYears = MaxHorizonYears
	}
	if s.Driver.DrivingStyle == "" {
		s.Driver.DrivingStyle = DrivingNormal
	}
	if s.Driver.Terrain == "" {
		s.Driver.Terrain = TerrainFlat
	}
	if s.Insurance.Coverage == "" {
		s.Insurance.Coverage = CoverageStandard
	}
	if s.Insurance.Shop == "" {
		s.Insurance.Shop = ShopIndependent
	}
	if s.Charging == "" {
		s.Charging = ChargingMixed
	}
	if s.Location.Geography == "" {
		s.Location.Geography = GeographySuburban
	}
}
