// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vehicle-cost/adapters/scenario"
	"vehicle-cost/core/engine"
	"vehicle-cost/core/output"
	"vehicle-cost/core/types"
	"vehicle-cost/internal/config"
	"vehicle-cost/internal/logging"
	"vehicle-cost/refdata"
)

var (
	outputFormat  string
	referenceYear int
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <scenario.hcl>",
	Short: "Estimate the cost of one ownership scenario",
	Long: `Decode a scenario file and compute the full cost-of-ownership
breakdown.

Examples:
  vehicle-cost estimate camry.hcl
  vehicle-cost estimate --format markdown camry.hcl
  vehicle-cost estimate --reference-year 2024 used-bmw.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().IntVar(&referenceYear, "reference-year", 0, "reference year for vehicle age (default: current year)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	calc, cleanup, err := buildCalculator()
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	result, err := calc.Calculate(*s)
	if err != nil {
		failure := engine.FailureFrom(err)
		fmt.Fprintf(os.Stderr, "Error [%s]: %s\n", failure.Code, failure.Message)
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, &output.Report{
		Vehicle:      s.Vehicle,
		Transaction:  s.Transaction,
		HorizonYears: s.HorizonYears,
		Result:       result,
		Version:      Version,
	})
}

// buildCalculator wires the calculator to its reference-data sources.
// The SQLite store is used when configured, the built-in catalog
// otherwise.
func buildCalculator() (*engine.Calculator, func(), error) {
	cfg := config.Get()

	year := referenceYear
	if year == 0 {
		year = time.Now().Year()
	}

	calcCfg := engine.DefaultConfig(year)
	calcCfg.DefaultMPG = cfg.Assumptions.DefaultMPG
	calcCfg.DefaultMPGe = cfg.Assumptions.DefaultMPGe
	calcCfg.DefaultReliabilityScore = cfg.Assumptions.DefaultReliabilityScore
	calcCfg.Logger = logging.Named("engine")

	cleanup := func() {}
	var vehicles engine.VehicleSource = refdata.NewStaticVehicles()

	if cfg.RefData.DatabasePath != "" {
		store, err := refdata.OpenStore(cfg.RefData.DatabasePath, cfg.RefData.MigrateOnStart)
		if err != nil {
			return nil, nil, err
		}
		vehicles = store
		cleanup = func() { store.Close() }
	}

	return engine.New(vehicles, refdata.NewRegions(), calcCfg), cleanup, nil
}

// loadScenario decodes a scenario file and fills location and pricing
// gaps from reference data.
func loadScenario(path string) (*types.OwnershipScenario, error) {
	s, err := scenario.NewDecoder().DecodeFile(path)
	if err != nil {
		return nil, err
	}

	regions := refdata.NewRegions()
	if loc, err := regions.ResolveLocation(s.Location); err == nil {
		s.Location = loc
	}

	// Suggest an acquisition value when the scenario leaves it out
	if !s.AcquisitionValue.IsPositive() && s.Vehicle.Make != "" {
		if err := suggestAcquisitionValue(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// suggestAcquisitionValue derives a price from the trim MSRP, applying
// the current-value estimate for used vehicles.
func suggestAcquisitionValue(s *types.OwnershipScenario) error {
	vehicles := refdata.NewStaticVehicles()
	msrp, err := vehicles.TrimPrice(s.Vehicle.Make, s.Vehicle.Model, s.Vehicle.ModelYear, s.Vehicle.Trim)
	if err != nil {
		return err
	}

	year := referenceYear
	if year == 0 {
		year = time.Now().Year()
	}
	age := year - s.Vehicle.ModelYear

	if age > 0 || s.CurrentMileage > 0 {
		dep := engine.New(vehicles, refdata.NewRegions(), engine.DefaultConfig(year)).Depreciation()
		s.AcquisitionValue = dep.EstimateCurrentValue(msrp, s.Vehicle.Make, s.Vehicle.Model, age, s.CurrentMileage)
		fmt.Fprintf(os.Stderr, "Using estimated current value $%s (MSRP $%s)\n",
			s.AcquisitionValue.StringFixed(2), msrp.StringFixed(2))
		return nil
	}

	s.AcquisitionValue = msrp
	return nil
}
