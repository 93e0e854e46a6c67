// Package finance - Amortization tests
package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestMonthlyPaymentKnownValue checks the fixed payment on a standard
// loan: $30,000 at 6% APR for 5 years is $579.98.
func TestMonthlyPaymentKnownValue(t *testing.T) {
	got := MonthlyPayment(decimal.NewFromInt(30000), 6.0, 5)
	want := decimal.NewFromFloat(579.98)
	if !got.Equal(want) {
		t.Errorf("MonthlyPayment = %s, want %s", got, want)
	}
}

// TestZeroRateIsInterestFree proves a 0% loan divides the principal
// evenly with no interest charged anywhere in the schedule.
func TestZeroRateIsInterestFree(t *testing.T) {
	principal := decimal.NewFromInt(24000)

	payment := MonthlyPayment(principal, 0, 4)
	want := decimal.NewFromInt(500)
	if !payment.Equal(want) {
		t.Errorf("zero-rate payment = %s, want %s", payment, want)
	}

	schedule := Amortize(principal, 0, 4, 4)
	if !TotalInterest(schedule).IsZero() {
		t.Errorf("zero-rate schedule charged interest: %s", TotalInterest(schedule))
	}
}

// TestPrincipalClearsExactly proves the principal portions sum to the
// original principal to the cent, with the final payment absorbing any
// rounding remainder.
func TestPrincipalClearsExactly(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      float64
		termYears int
	}{
		{"typical loan", decimal.NewFromInt(35000), 7.5, 6},
		{"awkward principal", decimal.NewFromFloat(28417.33), 5.9, 5},
		{"short term", decimal.NewFromInt(10000), 12.0, 2},
		{"zero rate", decimal.NewFromInt(18000), 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := Amortize(tt.principal, tt.rate, tt.termYears, tt.termYears)

			paid := decimal.Zero
			for _, year := range schedule {
				paid = paid.Add(year.PrincipalPaid)
				if !year.AnnualPayment.Equal(year.PrincipalPaid.Add(year.InterestPaid)) {
					t.Errorf("year %d: payment %s != principal %s + interest %s",
						year.Year, year.AnnualPayment, year.PrincipalPaid, year.InterestPaid)
				}
			}
			if !paid.Equal(tt.principal) {
				t.Errorf("principal paid %s != borrowed %s", paid, tt.principal)
			}
		})
	}
}

// TestScheduleZeroFilledPastTerm proves a horizon longer than the loan
// term pads the tail with zero rows so every year is represented.
func TestScheduleZeroFilledPastTerm(t *testing.T) {
	schedule := Amortize(decimal.NewFromInt(20000), 5.0, 3, 7)
	if len(schedule) != 7 {
		t.Fatalf("schedule has %d rows, want 7", len(schedule))
	}

	for _, year := range schedule[3:] {
		if !year.AnnualPayment.IsZero() || !year.PrincipalPaid.IsZero() || !year.InterestPaid.IsZero() {
			t.Errorf("year %d past the term is not zero: %+v", year.Year, year)
		}
	}
}

// TestZeroPrincipalYieldsZeroSchedule proves a cash purchase produces
// an all-zero but fully-populated schedule.
func TestZeroPrincipalYieldsZeroSchedule(t *testing.T) {
	schedule := Amortize(decimal.Zero, 6.0, 5, 5)
	if len(schedule) != 5 {
		t.Fatalf("schedule has %d rows, want 5", len(schedule))
	}
	for i, year := range schedule {
		if year.Year != i+1 {
			t.Errorf("row %d has year %d", i, year.Year)
		}
		if !year.AnnualPayment.IsZero() {
			t.Errorf("year %d: unexpected payment %s", year.Year, year.AnnualPayment)
		}
	}

	if payment := MonthlyPayment(decimal.Zero, 6.0, 5); !payment.IsZero() {
		t.Errorf("zero-principal payment = %s, want 0", payment)
	}
}

// TestInterestFrontLoaded proves early years carry more interest than
// later years on a fixed-payment loan.
func TestInterestFrontLoaded(t *testing.T) {
	schedule := Amortize(decimal.NewFromInt(40000), 8.0, 6, 6)

	for i := 1; i < len(schedule); i++ {
		if schedule[i].InterestPaid.GreaterThan(schedule[i-1].InterestPaid) {
			t.Errorf("interest rose from year %d to %d: %s to %s",
				i, i+1, schedule[i-1].InterestPaid, schedule[i].InterestPaid)
		}
	}
}
