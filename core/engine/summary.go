package engine

import (
	"github.com/shopspring/decimal"

	"vehicle-cost/core/types"
)

// buildResult aggregates the reconciled rows into the final result.
// Out-of-pocket strictly excludes depreciation; total cost of
// ownership is out-of-pocket plus depreciation, so the two totals
// differ by exactly the depreciation sum.
func (c *Calculator) buildResult(
	s types.OwnershipScenario,
	res resolved,
	rows []types.AnnualCostRow,
	totals map[types.CostCategory]decimal.Decimal,
) *types.Result {
	horizon := decimal.NewFromInt(int64(len(rows)))

	outOfPocket := decimal.Zero
	for cat, amount := range totals {
		if cat == types.CategoryDepreciation {
			continue
		}
		outOfPocket = outOfPocket.Add(amount)
	}
	totalDep := totals[types.CategoryDepreciation]
	tco := outOfPocket.Add(totalDep)

	avgOOP := outOfPocket.Div(horizon).Round(2)
	avgTCO := tco.Div(horizon).Round(2)

	totalMiles := int64(s.AnnualMileage) * int64(len(rows))
	perMileOOP := decimal.Zero
	perMileTCO := decimal.Zero
	if totalMiles > 0 {
		miles := decimal.NewFromInt(totalMiles)
		perMileOOP = outOfPocket.Div(miles).Round(4)
		perMileTCO = tco.Div(miles).Round(4)
	}

	return &types.Result{
		Summary: types.ResultSummary{
			TotalOutOfPocketCost:     outOfPocket,
			AverageAnnualOutOfPocket: avgOOP,
			CostPerMileOutOfPocket:   perMileOOP,
			TotalCostOfOwnership:     tco,
			AverageAnnualTCO:         avgTCO,
			CostPerMileTCO:           perMileTCO,
			TotalDepreciation:        totalDep,
			PurchasePrice:            s.AcquisitionValue,
		},
		Segment:         res.segment,
		AnnualBreakdown: rows,
		CategoryTotals:  totals,
		Affordability:   c.affordability(avgOOP, s.Driver.GrossIncome),
		Assumptions:     res.assumptions,
		Degraded:        res.degraded,
	}
}

// affordability assesses the average annual out-of-pocket cost against
// gross income. A zero income yields an unassessed (zero-score)
// result rather than a division error.
func (c *Calculator) affordability(annualCost, grossIncome decimal.Decimal) types.Affordability {
	a := types.Affordability{
		AnnualCost:            annualCost,
		MonthlyBudgetImpact:   annualCost.Div(decimal.NewFromInt(12)).Round(2),
		RecommendedMaxPercent: c.cfg.AffordabilityMaxPercent,
	}

	if !grossIncome.IsPositive() {
		return a
	}

	pct, _ := annualCost.Div(grossIncome).Mul(decimal.NewFromInt(100)).Float64()
	a.PercentageOfIncome = pct
	a.IsAffordable = pct <= c.cfg.AffordabilityMaxPercent
	a.Score = affordabilityScore(pct, c.cfg.AffordabilityMaxPercent)
	return a
}

// affordabilityScore maps the income percentage onto a 0-100 scale:
// 100 at zero cost, 50 at the recommended ceiling, 0 at twice the
// ceiling. Linear on both sides of the threshold.
func affordabilityScore(pct, maxPct float64) float64 {
	if maxPct <= 0 {
		return 0
	}
	var score float64
	if pct <= maxPct {
		score = 100 - pct/maxPct*50
	} else {
		score = 50 - (pct-maxPct)/maxPct*50
	}
	if score < 0 {
		return 0
	}
	return score
}
