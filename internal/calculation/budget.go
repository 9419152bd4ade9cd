package calculation

import (
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// Budget adherence status tiers. StatusOnTrack is the configurable
// within-budget label; some deployments prefer "Within Budget".
const (
	StatusWellUnderBudget         = "Well Under Budget"
	StatusUnderBudget             = "Under Budget"
	StatusOnTrack                 = "On Track"
	StatusSlightlyOverBudget      = "Slightly Over Budget"
	StatusOverBudget              = "Over Budget"
	StatusSignificantlyOverBudget = "Significantly Over Budget"
	StatusSeverelyOverBudget      = "Severely Over Budget"
)

// BudgetAdherenceEvaluator compares actual spending against a budget limit
// and classifies the result into one of the adherence tiers.
type BudgetAdherenceEvaluator struct{}

// NewBudgetAdherenceEvaluator creates a new budget adherence evaluator
func NewBudgetAdherenceEvaluator() *BudgetAdherenceEvaluator {
	return &BudgetAdherenceEvaluator{}
}

// Evaluate computes the variance between actual and limit. Variance figures
// in the report are rounded to 2 decimal places for display; tier
// classification uses full precision.
func (be *BudgetAdherenceEvaluator) Evaluate(actual, limit decimal.Decimal) domain.BudgetAdherenceReport {
	variance := actual.Sub(limit)

	variancePercent := decimal.Zero
	if limit.GreaterThan(decimal.Zero) {
		variancePercent = variance.Div(limit).Mul(hundred)
	}

	isWithinBudget := actual.LessThanOrEqual(limit)

	return domain.BudgetAdherenceReport{
		Actual:          actual,
		Limit:           limit,
		Variance:        variance.Round(2),
		VariancePercent: variancePercent.Round(2),
		IsWithinBudget:  isWithinBudget,
		Status:          classifyAdherence(variancePercent, isWithinBudget),
	}
}

func classifyAdherence(variancePercent decimal.Decimal, withinBudget bool) string {
	if withinBudget {
		switch {
		case variancePercent.LessThanOrEqual(decimal.NewFromInt(-20)):
			return StatusWellUnderBudget
		case variancePercent.LessThanOrEqual(decimal.NewFromInt(-10)):
			return StatusUnderBudget
		default:
			return StatusOnTrack
		}
	}

	switch {
	case variancePercent.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return StatusSeverelyOverBudget
	case variancePercent.GreaterThanOrEqual(decimal.NewFromInt(25)):
		return StatusSignificantlyOverBudget
	case variancePercent.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return StatusOverBudget
	default:
		return StatusSlightlyOverBudget
	}
}
