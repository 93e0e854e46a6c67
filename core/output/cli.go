// Package output - Human-readable CLI rendering
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// CLIFormatter renders a plain-text report for terminals.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces the CLI report
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	r := report.Result
	s := r.Summary

	title := fmt.Sprintf("%d %s %s", report.Vehicle.ModelYear, report.Vehicle.Make, report.Vehicle.Model)
	fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	fmt.Fprintf(w, "Transaction:      %s\n", report.Transaction)
	fmt.Fprintf(w, "Segment:          %s\n", r.Segment)
	fmt.Fprintf(w, "Horizon:          %d years\n", report.HorizonYears)
	if s.IsUsedVehicle {
		fmt.Fprintf(w, "Vehicle state:    used\n")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total out-of-pocket:   %s\n", money(s.TotalOutOfPocketCost))
	fmt.Fprintf(w, "  per year:            %s\n", money(s.AverageAnnualOutOfPocket))
	fmt.Fprintf(w, "  per mile:            $%s\n", s.CostPerMileOutOfPocket.StringFixed(4))
	fmt.Fprintf(w, "Total cost of ownership: %s\n", money(s.TotalCostOfOwnership))
	fmt.Fprintf(w, "  per year:            %s\n", money(s.AverageAnnualTCO))
	fmt.Fprintf(w, "  per mile:            $%s\n", s.CostPerMileTCO.StringFixed(4))
	if s.TotalDepreciation.IsPositive() {
		fmt.Fprintf(w, "Depreciation:          %s (final value %s)\n", money(s.TotalDepreciation), money(s.FinalVehicleValue))
	}
	fmt.Fprintln(w)

	f.renderBreakdown(w, report)
	f.renderAffordability(w, r.Affordability)

	if len(r.Assumptions) > 0 {
		fmt.Fprintln(w, "Assumptions:")
		for _, a := range r.Assumptions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}

	return nil
}

func (f *CLIFormatter) renderBreakdown(w io.Writer, report *Report) {
	r := report.Result
	lease := report.Transaction == types.TransactionLease

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if lease {
		fmt.Fprintln(tw, "Year\tMaint\tInsurance\tFuel\tLease\tFees\tTotal\t")
	} else {
		fmt.Fprintln(tw, "Year\tDeprec\tMaint\tInsurance\tFuel\tFinancing\tTotal\t")
	}

	for _, row := range r.AnnualBreakdown {
		if lease {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				row.Year, money(row.Maintenance), money(row.Insurance),
				money(row.FuelEnergy), money(row.Financing),
				money(row.FeesPenalties), money(row.TotalAnnualCost))
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
				row.Year, money(row.Depreciation), money(row.Maintenance),
				money(row.Insurance), money(row.FuelEnergy),
				money(row.Financing), money(row.TotalAnnualCost))
		}
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *CLIFormatter) renderAffordability(w io.Writer, a types.Affordability) {
	if a.PercentageOfIncome == 0 && a.Score == 0 {
		return
	}
	verdict := "over budget"
	if a.IsAffordable {
		verdict = "within budget"
	}
	fmt.Fprintf(w, "Affordability: %.1f%% of income (%s, score %.0f/100)\n",
		a.PercentageOfIncome, verdict, a.Score)
	fmt.Fprintf(w, "  monthly budget impact: %s\n\n", money(a.MonthlyBudgetImpact))
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
