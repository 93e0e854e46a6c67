// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"

	"vehicle-cost/core/types"
)

// MarkdownFormatter renders a markdown report suitable for pasting
// into documents or chat.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render produces the markdown report
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	r := report.Result
	s := r.Summary

	fmt.Fprintf(w, "# Cost of Ownership: %d %s %s\n\n",
		report.Vehicle.ModelYear, report.Vehicle.Make, report.Vehicle.Model)
	fmt.Fprintf(w, "**Transaction:** %s · **Segment:** %s · **Horizon:** %d years\n\n",
		report.Transaction, r.Segment, report.HorizonYears)

	fmt.Fprintln(w, "| Metric | Out-of-pocket | Total cost of ownership |")
	fmt.Fprintln(w, "|---|---|---|")
	fmt.Fprintf(w, "| Total | %s | %s |\n", money(s.TotalOutOfPocketCost), money(s.TotalCostOfOwnership))
	fmt.Fprintf(w, "| Per year | %s | %s |\n", money(s.AverageAnnualOutOfPocket), money(s.AverageAnnualTCO))
	fmt.Fprintf(w, "| Per mile | $%s | $%s |\n\n", s.CostPerMileOutOfPocket.StringFixed(4), s.CostPerMileTCO.StringFixed(4))

	lease := report.Transaction == types.TransactionLease
	if lease {
		fmt.Fprintln(w, "| Year | Maintenance | Insurance | Fuel | Lease | Fees | Total |")
		fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	} else {
		fmt.Fprintln(w, "| Year | Depreciation | Maintenance | Insurance | Fuel | Financing | Total |")
		fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	}
	for _, row := range r.AnnualBreakdown {
		if lease {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
				row.Year, money(row.Maintenance), money(row.Insurance),
				money(row.FuelEnergy), money(row.Financing),
				money(row.FeesPenalties), money(row.TotalAnnualCost))
		} else {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s |\n",
				row.Year, money(row.Depreciation), money(row.Maintenance),
				money(row.Insurance), money(row.FuelEnergy),
				money(row.Financing), money(row.TotalAnnualCost))
		}
	}
	fmt.Fprintln(w)

	if len(r.Assumptions) > 0 {
		fmt.Fprintln(w, "## Assumptions")
		fmt.Fprintln(w)
		for _, a := range r.Assumptions {
			fmt.Fprintf(w, "- %s\n", a)
		}
		fmt.Fprintln(w)
	}

	return nil
}
