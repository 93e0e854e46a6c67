// Package cmd - compare command
package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vehicle-cost/core/types"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <scenario.hcl> <scenario.hcl> [more...]",
	Short: "Compare the cost of owning several vehicles",
	Long: `Run the estimate for each scenario file and rank the vehicles by
total cost of ownership, cheapest first.

Example:
  vehicle-cost compare camry.hcl accord.hcl model3.hcl`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

type compareRow struct {
	vehicle types.VehicleIdentity
	summary types.ResultSummary
	segment types.Segment
}

func runCompare(cmd *cobra.Command, args []string) error {
	calc, cleanup, err := buildCalculator()
	if err != nil {
		return err
	}
	defer cleanup()

	rows := make([]compareRow, 0, len(args))
	for _, path := range args {
		s, err := loadScenario(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		result, err := calc.Calculate(*s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, compareRow{
			vehicle: s.Vehicle,
			summary: result.Summary,
			segment: result.Segment,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].summary.TotalCostOfOwnership.LessThan(rows[j].summary.TotalCostOfOwnership)
	})

	best := rows[0].summary.TotalCostOfOwnership
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tVehicle\tSegment\tTCO\tOut-of-pocket\tPer mile\tvs best")
	for i, row := range rows {
		delta := row.summary.TotalCostOfOwnership.Sub(best)
		deltaStr := "-"
		if delta.IsPositive() {
			deltaStr = "+$" + delta.StringFixed(2)
		}
		fmt.Fprintf(tw, "%d\t%d %s %s\t%s\t$%s\t$%s\t$%s\t%s\n",
			i+1,
			row.vehicle.ModelYear, row.vehicle.Make, row.vehicle.Model,
			row.segment,
			row.summary.TotalCostOfOwnership.StringFixed(2),
			row.summary.TotalOutOfPocketCost.StringFixed(2),
			row.summary.CostPerMileTCO.StringFixed(4),
			deltaStr)
	}
	return tw.Flush()
}
