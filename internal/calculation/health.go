package calculation

import (
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Advisory text for each health status tier.
const (
	adviceExcellent = "Excellent financial health! You are saving a large share of your income. Consider investing your surplus for long-term growth."
	adviceGood      = "Good financial health. You have a solid savings buffer. Look for small optimizations to push your savings rate even higher."
	adviceFair      = "Fair financial health. Your savings are modest. Review discretionary spending to improve your savings rate."
	advicePoor      = "Poor financial health. Expenses are consuming most of your income. Create a budget and cut non-essential spending."
	adviceCritical  = "Critical financial health! You are spending more than you earn. Take immediate action to reduce expenses or increase income."
)

// HealthCalculator turns an income figure and an expense list into a
// financial health report. All methods are pure; the calculator holds no
// state and is safe for concurrent use.
type HealthCalculator struct{}

// NewHealthCalculator creates a new health calculator
func NewHealthCalculator() *HealthCalculator {
	return &HealthCalculator{}
}

// Calculate computes savings, ratios, and the composite health score for a
// period. The score is intentionally unclamped: extreme inputs can push it
// above 100 or below 0, and the status thresholds are designed around that.
func (hc *HealthCalculator) Calculate(income decimal.Decimal, expenses []decimal.Decimal) domain.FinancialHealthReport {
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e)
	}

	savingsAmount := income.Sub(totalExpenses)

	savingsRate := decimal.Zero
	expenseRatio := decimal.Zero
	if income.GreaterThan(decimal.Zero) {
		savingsRate = savingsAmount.Div(income).Mul(hundred)
		expenseRatio = totalExpenses.Div(income).Mul(hundred)
	}

	healthScore := half.Mul(savingsRate).Add(half.Mul(hundred.Sub(expenseRatio)))
	status, advice := classifyHealth(healthScore)

	return domain.FinancialHealthReport{
		TotalIncome:    income,
		TotalExpenses:  totalExpenses,
		SavingsAmount:  savingsAmount,
		SavingsRate:    savingsRate,
		ExpenseRatio:   expenseRatio,
		HealthScore:    healthScore,
		HealthStatus:   status,
		Recommendation: advice,
	}
}

func classifyHealth(score decimal.Decimal) (domain.HealthStatus, string) {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return domain.HealthExcellent, adviceExcellent
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return domain.HealthGood, adviceGood
	case score.GreaterThanOrEqual(decimal.NewFromInt(40)):
		return domain.HealthFair, adviceFair
	case score.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return domain.HealthPoor, advicePoor
	default:
		return domain.HealthCritical, adviceCritical
	}
}
