// Package types - Calculation output types
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceLineItem is one maintenance service performed in a year
type ServiceLineItem struct {
	// ServiceName is the display name (e.g., "Oil Change")
	ServiceName string `json:"service_name"`

	// Frequency is how many times the service occurs this year
	Frequency int `json:"frequency"`

	// CostPerOccurrence is the adjusted cost of one occurrence
	CostPerOccurrence decimal.Decimal `json:"cost_per_occurrence"`

	// TotalCost is CostPerOccurrence * Frequency
	TotalCost decimal.Decimal `json:"total_cost"`

	// IntervalBased is true for scheduled mileage-interval services,
	// false for age-driven wear and repair items
	IntervalBased bool `json:"interval_based"`

	// WarrantyCovered is the amount covered by warranty (lease only)
	WarrantyCovered decimal.Decimal `json:"warranty_covered,omitempty"`
}

// NormalizedName returns the duplicate-suppression key for the item
func (s ServiceLineItem) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(s.ServiceName))
}

// MaintenanceYear is one year of the maintenance schedule
type MaintenanceYear struct {
	// Year is the ownership year, 1-based
	Year int `json:"year"`

	// TotalMileageAtYearEnd is the odometer at the end of this year
	TotalMileageAtYearEnd int `json:"total_mileage_at_year_end"`

	// Services lists the line items for this year
	Services []ServiceLineItem `json:"services"`

	// TotalYearCost is the exact sum of the service totals
	TotalYearCost decimal.Decimal `json:"total_year_cost"`
}

// DepreciationPoint is one year of the value curve
type DepreciationPoint struct {
	// Year is the ownership year, 1-based
	Year int `json:"year"`

	// Value is the vehicle value at the end of this year
	Value decimal.Decimal `json:"value"`

	// AnnualDepreciation is value lost during this year
	AnnualDepreciation decimal.Decimal `json:"annual_depreciation"`

	// CumulativeDepreciation is value lost since acquisition
	CumulativeDepreciation decimal.Decimal `json:"cumulative_depreciation"`

	// Rate is the cumulative depreciation fraction applied this year
	Rate float64 `json:"rate"`
}

// FinancingYear is one year of the loan amortization schedule
type FinancingYear struct {
	// Year is the ownership year, 1-based
	Year int `json:"year"`

	// AnnualPayment is the total paid this year
	AnnualPayment decimal.Decimal `json:"annual_payment"`

	// PrincipalPaid is the principal portion
	PrincipalPaid decimal.Decimal `json:"principal_paid"`

	// InterestPaid is the interest portion
	InterestPaid decimal.Decimal `json:"interest_paid"`
}

// AnnualCostRow is one year of the reconciled ownership schedule.
// Rows are constructed once during orchestration and never mutated
// after the schedule is returned.
type AnnualCostRow struct {
	// Year is the ownership year, 1-based
	Year int `json:"year"`

	// CalendarYear is the calendar year this ownership year falls in
	CalendarYear int `json:"calendar_year"`

	// VehicleAgeAtYearEnd is the vehicle's age at the end of the year
	VehicleAgeAtYearEnd int `json:"vehicle_age_at_year_end"`

	// CumulativeMileage is the odometer at the end of the year
	CumulativeMileage int `json:"cumulative_mileage"`

	// Depreciation is value lost this year (excluded from out-of-pocket)
	Depreciation decimal.Decimal `json:"depreciation"`

	// Maintenance is the maintenance cost this year
	Maintenance decimal.Decimal `json:"maintenance"`

	// MaintenanceActivities lists the service line items
	MaintenanceActivities []ServiceLineItem `json:"maintenance_activities,omitempty"`

	// Insurance is the premium for this year
	Insurance decimal.Decimal `json:"insurance"`

	// FuelEnergy is the fuel or electricity cost this year
	FuelEnergy decimal.Decimal `json:"fuel_energy"`

	// Financing is the loan or lease payment this year
	Financing decimal.Decimal `json:"financing"`

	// FeesPenalties is mileage-overage and wear fees (lease only)
	FeesPenalties decimal.Decimal `json:"fees_penalties,omitempty"`

	// TotalAnnualCost is the sum of all categories for this year
	TotalAnnualCost decimal.Decimal `json:"total_annual_cost"`
}

// Affordability is the income-based affordability assessment
type Affordability struct {
	// AnnualCost is the average annual out-of-pocket cost assessed
	AnnualCost decimal.Decimal `json:"annual_cost"`

	// MonthlyBudgetImpact is AnnualCost / 12
	MonthlyBudgetImpact decimal.Decimal `json:"monthly_budget_impact"`

	// PercentageOfIncome is AnnualCost as a share of gross income
	PercentageOfIncome float64 `json:"percentage_of_income"`

	// RecommendedMaxPercent is the policy threshold (10%)
	RecommendedMaxPercent float64 `json:"recommended_max_percent"`

	// IsAffordable is true when within the threshold
	IsAffordable bool `json:"is_affordable"`

	// Score is 0-100, 100 = comfortably affordable
	Score float64 `json:"score"`
}

// ResultSummary holds the aggregate metrics of one calculation
type ResultSummary struct {
	// TotalOutOfPocketCost is maintenance + insurance + fuel/energy +
	// financing across the horizon. Depreciation is strictly excluded.
	TotalOutOfPocketCost decimal.Decimal `json:"total_out_of_pocket_cost"`

	// AverageAnnualOutOfPocket is TotalOutOfPocketCost / horizon
	AverageAnnualOutOfPocket decimal.Decimal `json:"average_annual_out_of_pocket"`

	// CostPerMileOutOfPocket is TotalOutOfPocketCost / total miles
	CostPerMileOutOfPocket decimal.Decimal `json:"cost_per_mile_out_of_pocket"`

	// TotalCostOfOwnership is TotalOutOfPocketCost + total depreciation
	TotalCostOfOwnership decimal.Decimal `json:"total_cost_of_ownership"`

	// AverageAnnualTCO is TotalCostOfOwnership / horizon
	AverageAnnualTCO decimal.Decimal `json:"average_annual_tco"`

	// CostPerMileTCO is TotalCostOfOwnership / total miles
	CostPerMileTCO decimal.Decimal `json:"cost_per_mile_tco"`

	// TotalDepreciation is value lost across the horizon
	TotalDepreciation decimal.Decimal `json:"total_depreciation"`

	// FinalVehicleValue is the projected value at horizon end
	FinalVehicleValue decimal.Decimal `json:"final_vehicle_value"`

	// PurchasePrice is the acquisition value used
	PurchasePrice decimal.Decimal `json:"purchase_price"`

	// DownPayment is the amount paid at signing (lease only)
	DownPayment decimal.Decimal `json:"down_payment,omitempty"`

	// IsUsedVehicle reports which depreciation model was selected
	IsUsedVehicle bool `json:"is_used_vehicle"`
}

// Result is the complete output of one TCO calculation
type Result struct {
	// Summary holds the aggregate metrics
	Summary ResultSummary `json:"summary"`

	// Segment is the classified market segment
	Segment Segment `json:"segment"`

	// AnnualBreakdown has one row per ownership year
	AnnualBreakdown []AnnualCostRow `json:"annual_breakdown"`

	// CategoryTotals accumulates each cost category over the horizon
	CategoryTotals map[CostCategory]decimal.Decimal `json:"category_totals"`

	// DepreciationSchedule is the year-by-year value curve
	DepreciationSchedule []DepreciationPoint `json:"depreciation_schedule"`

	// MaintenanceSchedule is the year-by-year service plan
	MaintenanceSchedule []MaintenanceYear `json:"maintenance_schedule"`

	// FinancingSchedule is present for financed purchases
	FinancingSchedule []FinancingYear `json:"financing_schedule,omitempty"`

	// Affordability is the income-based assessment
	Affordability Affordability `json:"affordability"`

	// Assumptions lists defaults and fallbacks used in this estimate
	Assumptions []string `json:"assumptions"`

	// Degraded is true when any reference lookup fell back to defaults
	Degraded bool `json:"degraded"`
}

// Failure is the structured error result the orchestrator returns for
// contractually invalid input, in place of a raw error chain.
type Failure struct {
	// Code is the error taxonomy type
	Code string `json:"code"`

	// Message is a human-readable explanation
	Message string `json:"message"`
}
