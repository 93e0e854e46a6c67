// Package scenario - HCL decoding tests
package scenario

import (
	"testing"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
	"vehicle-cost/internal/errors"
)

const purchaseSource = `
transaction       = "purchase"
acquisition_value = 28400
annual_mileage    = 12000
horizon_years     = 5
current_mileage   = 0

vehicle {
  make       = "Toyota"
  model      = "Camry"
  model_year = 2025
  trim       = "SE"
}

driver {
  age                = 40
  gross_income       = 90000
  driving_style      = "normal"
  terrain            = "flat"
  household_vehicles = 2
}

location {
  state     = "OH"
  zip       = "43123"
  geography = "suburban"
}

insurance {
  coverage = "standard"
  shop     = "independent"
}

financing {
  loan_amount         = 20000
  annual_rate_percent = 5.9
  term_years          = 5
}
`

const leaseSource = `
transaction       = "lease"
acquisition_value = 42000
annual_mileage    = 15000
horizon_years     = 3
charging          = "home"

vehicle {
  make       = "Tesla"
  model      = "Model 3"
  model_year = 2025
}

lease {
  monthly_payment      = 489.50
  annual_mileage_limit = 12000
  down_payment         = 3000
}
`

// TestDecodePurchase proves a full purchase scenario round-trips
// through the decoder with every field populated.
func TestDecodePurchase(t *testing.T) {
	s, err := NewDecoder().Decode([]byte(purchaseSource), "purchase.hcl")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if s.Transaction != types.TransactionPurchase {
		t.Errorf("transaction = %s", s.Transaction)
	}
	if !s.AcquisitionValue.Equal(decimal.NewFromInt(28400)) {
		t.Errorf("acquisition value = %s", s.AcquisitionValue)
	}
	if s.AnnualMileage != 12000 || s.HorizonYears != 5 {
		t.Errorf("mileage/horizon = %d/%d", s.AnnualMileage, s.HorizonYears)
	}

	if s.Vehicle.Make != "Toyota" || s.Vehicle.Model != "Camry" || s.Vehicle.ModelYear != 2025 || s.Vehicle.Trim != "SE" {
		t.Errorf("vehicle = %+v", s.Vehicle)
	}
	if s.Driver.Age != 40 || s.Driver.HouseholdVehicleCount != 2 {
		t.Errorf("driver = %+v", s.Driver)
	}
	if !s.Driver.GrossIncome.Equal(decimal.NewFromInt(90000)) {
		t.Errorf("gross income = %s", s.Driver.GrossIncome)
	}
	if s.Location.State != "OH" || s.Location.ZIP != "43123" || s.Location.Geography != types.GeographySuburban {
		t.Errorf("location = %+v", s.Location)
	}
	if s.Insurance.Coverage != types.CoverageStandard || s.Insurance.Shop != types.ShopIndependent {
		t.Errorf("insurance = %+v", s.Insurance)
	}

	if s.Financing == nil {
		t.Fatal("financing block not decoded")
	}
	if !s.Financing.LoanAmount.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("loan amount = %s", s.Financing.LoanAmount)
	}
	if s.Financing.AnnualRatePercent != 5.9 || s.Financing.TermYears != 5 {
		t.Errorf("financing = %+v", s.Financing)
	}
	if s.Lease != nil {
		t.Error("purchase scenario decoded a lease block")
	}

	if err := s.Validate(); err != nil {
		t.Errorf("decoded scenario fails validation: %v", err)
	}
}

// TestDecodeLease proves lease terms and fractional money values
// decode exactly.
func TestDecodeLease(t *testing.T) {
	s, err := NewDecoder().Decode([]byte(leaseSource), "lease.hcl")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if s.Transaction != types.TransactionLease {
		t.Errorf("transaction = %s", s.Transaction)
	}
	if s.Charging != types.ChargingHome {
		t.Errorf("charging = %s", s.Charging)
	}
	if s.Lease == nil {
		t.Fatal("lease block not decoded")
	}
	if !s.Lease.MonthlyPayment.Equal(decimal.NewFromFloat(489.50)) {
		t.Errorf("monthly payment = %s, want 489.5", s.Lease.MonthlyPayment)
	}
	if s.Lease.AnnualMileageLimit != 12000 {
		t.Errorf("mileage limit = %d", s.Lease.AnnualMileageLimit)
	}
	if !s.Lease.DownPayment.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("down payment = %s", s.Lease.DownPayment)
	}
	if s.Financing != nil {
		t.Error("lease scenario decoded a financing block")
	}
}

// TestDecodeMinimalScenario proves optional blocks and attributes can
// all be omitted.
func TestDecodeMinimalScenario(t *testing.T) {
	src := `
transaction    = "purchase"
annual_mileage = 10000
horizon_years  = 3
`
	s, err := NewDecoder().Decode([]byte(src), "minimal.hcl")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Financing != nil || s.Lease != nil {
		t.Error("absent blocks decoded as present")
	}
	if !s.AcquisitionValue.IsZero() {
		t.Errorf("acquisition value = %s, want 0", s.AcquisitionValue)
	}
}

// TestDecodeErrors proves syntax errors and missing required
// attributes surface as parsing errors.
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `transaction = `},
		{"missing required", `transaction = "purchase"`},
		{"unknown block", `
transaction    = "purchase"
annual_mileage = 10000
horizon_years  = 3
warp_drive {
  coils = 7
}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Decode([]byte(tt.src), tt.name+".hcl")
			if !errors.IsType(err, errors.TypeParsing) {
				t.Errorf("error = %v, want parsing error", err)
			}
		})
	}
}

// TestDecodeFileMissing proves a missing file is a data error, not a
// panic or parsing error.
func TestDecodeFileMissing(t *testing.T) {
	_, err := NewDecoder().DecodeFile("/nonexistent/scenario.hcl")
	if !errors.IsType(err, errors.TypeData) {
		t.Errorf("error = %v, want data error", err)
	}
}
