// Package finance computes fixed-payment loan amortization.
package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// MonthlyPayment computes the standard fixed payment for a loan.
// A zero rate is the interest-free case: principal divided evenly
// across the term.
func MonthlyPayment(principal decimal.Decimal, annualRatePercent float64, termYears int) decimal.Decimal {
	if termYears <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}

	n := float64(termYears * 12)
	p, _ := principal.Float64()

	if annualRatePercent == 0 {
		return decimal.NewFromFloat(p / n).Round(2)
	}

	r := annualRatePercent / 100 / 12
	factor := math.Pow(1+r, n)
	payment := p * r * factor / (factor - 1)

	return decimal.NewFromFloat(payment).Round(2)
}

// Amortize builds the year-by-year amortization schedule across the
// analysis horizon. Years past the loan term are zero-filled so the
// schedule always has horizonYears rows. A zero principal yields an
// all-zero schedule.
func Amortize(principal decimal.Decimal, annualRatePercent float64, termYears, horizonYears int) []types.FinancingYear {
	schedule := make([]types.FinancingYear, 0, horizonYears)

	if !principal.IsPositive() || termYears <= 0 {
		for year := 1; year <= horizonYears; year++ {
			schedule = append(schedule, types.FinancingYear{Year: year})
		}
		return schedule
	}

	payment := MonthlyPayment(principal, annualRatePercent, termYears)
	monthlyRate := decimal.NewFromFloat(annualRatePercent / 100 / 12)
	balance := principal
	totalMonths := termYears * 12

	month := 0
	for year := 1; year <= horizonYears; year++ {
		annualPayment := decimal.Zero
		principalPaid := decimal.Zero
		interestPaid := decimal.Zero

		for m := 0; m < 12 && month < totalMonths; m++ {
			month++

			interest := balance.Mul(monthlyRate).Round(2)
			due := payment
			principalPart := due.Sub(interest)

			// Final payment clears the remaining balance exactly
			if month == totalMonths || principalPart.GreaterThan(balance) {
				principalPart = balance
				due = principalPart.Add(interest)
			}

			balance = balance.Sub(principalPart)
			annualPayment = annualPayment.Add(due)
			principalPaid = principalPaid.Add(principalPart)
			interestPaid = interestPaid.Add(interest)
		}

		schedule = append(schedule, types.FinancingYear{
			Year:          year,
			AnnualPayment: annualPayment,
			PrincipalPaid: principalPaid,
			InterestPaid:  interestPaid,
		})
	}

	return schedule
}

// TotalInterest sums the interest portion of a schedule.
func TotalInterest(schedule []types.FinancingYear) decimal.Decimal {
	total := decimal.Zero
	for _, y := range schedule {
		total = total.Add(y.InterestPaid)
	}
	return total
}
