package calculation

import (
	"fmt"
	"sort"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	insightNoData   = "No expense data available for analysis."
	insightBalanced = "Your spending patterns appear balanced and consistent."
)

// SpendingBehaviorAnalyzer aggregates an expense list into category and type
// breakdowns plus a fixed-order list of textual insights.
type SpendingBehaviorAnalyzer struct{}

// NewSpendingBehaviorAnalyzer creates a new spending behavior analyzer
func NewSpendingBehaviorAnalyzer() *SpendingBehaviorAnalyzer {
	return &SpendingBehaviorAnalyzer{}
}

// Analyze builds the spending behavior report. An empty input produces a
// zeroed report carrying the single "no data" insight.
func (sa *SpendingBehaviorAnalyzer) Analyze(expenses []domain.Expense) domain.SpendingBehaviorReport {
	if len(expenses) == 0 {
		return domain.SpendingBehaviorReport{
			CategoryBreakdown: map[domain.ExpenseCategory]decimal.Decimal{},
			TypeDistribution:  map[domain.ExpenseType]int{},
			Insights:          []string{insightNoData},
		}
	}

	breakdown := make(map[domain.ExpenseCategory]decimal.Decimal)
	types := make(map[domain.ExpenseType]int)
	order := []domain.ExpenseCategory{} // first-encountered order for the tie-break
	total := decimal.Zero

	for _, e := range expenses {
		if _, seen := breakdown[e.Category]; !seen {
			order = append(order, e.Category)
		}
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
		types[e.Type]++
		total = total.Add(e.Amount)
	}

	// Stable descending sort by total; ties keep first-encountered order.
	sort.SliceStable(order, func(i, j int) bool {
		return breakdown[order[i]].GreaterThan(breakdown[order[j]])
	})
	topCategory := order[0]
	topAmount := breakdown[topCategory]

	count := len(expenses)
	average := total.Div(decimal.NewFromInt(int64(count)))

	report := domain.SpendingBehaviorReport{
		CategoryBreakdown: breakdown,
		TopCategory:       topCategory,
		TopCategoryAmount: topAmount,
		AverageAmount:     average,
		TransactionCount:  count,
		TypeDistribution:  types,
	}
	report.Insights = sa.buildInsights(&report, total)
	return report
}

// buildInsights evaluates each insight rule independently, in a fixed order.
func (sa *SpendingBehaviorAnalyzer) buildInsights(r *domain.SpendingBehaviorReport, total decimal.Decimal) []string {
	insights := []string{}

	// 1. Category dominance: top category above 40% of total spending.
	if total.GreaterThan(decimal.Zero) {
		topShare := r.TopCategoryAmount.Div(total).Mul(hundred)
		if topShare.GreaterThan(decimal.NewFromInt(40)) {
			insights = append(insights, fmt.Sprintf(
				"Your spending is heavily concentrated in %s, accounting for %s%% of total expenses. Consider whether this allocation matches your priorities.",
				r.TopCategory, topShare.StringFixed(1)))
		}
	}

	// 2. High average transaction size.
	if r.AverageAmount.GreaterThan(hundred) {
		insights = append(insights, fmt.Sprintf(
			"Your average transaction amount is high ($%s). Reviewing large purchases before committing could improve spending control.",
			r.AverageAmount.StringFixed(2)))
	}

	// 3. Fixed/variable mix, only meaningful when both kinds are present.
	fixedCount, hasFixed := r.TypeDistribution[domain.TypeFixed]
	_, hasVariable := r.TypeDistribution[domain.TypeVariable]
	if hasFixed && hasVariable {
		fixedShare := decimal.NewFromInt(int64(fixedCount)).
			Div(decimal.NewFromInt(int64(r.TransactionCount))).Mul(hundred)
		if fixedShare.GreaterThan(decimal.NewFromInt(60)) {
			insights = append(insights,
				"Most of your transactions are fixed expenses, which limits budget flexibility. Look for recurring commitments you could renegotiate or drop.")
		} else if fixedShare.LessThan(decimal.NewFromInt(30)) {
			insights = append(insights,
				"Variable expenses dominate your spending, which gives you room to cut back when money is tight.")
		}
	}

	// 4. Transaction frequency.
	if r.TransactionCount > 50 {
		insights = append(insights, fmt.Sprintf(
			"High transaction frequency detected (%d transactions). Many small purchases can add up quickly.",
			r.TransactionCount))
	} else if r.TransactionCount < 10 {
		insights = append(insights, fmt.Sprintf(
			"Low transaction frequency (%d transactions). Infrequent spending makes your budget easier to predict.",
			r.TransactionCount))
	}

	// 5. Category diversity.
	distinct := len(r.CategoryBreakdown)
	if distinct <= 3 {
		insights = append(insights, fmt.Sprintf(
			"Your spending is concentrated in only %d categories. Tracking purchases in more detail may reveal hidden costs.",
			distinct))
	} else if distinct >= 7 {
		insights = append(insights, fmt.Sprintf(
			"You have diverse spending across %d categories. Focus your budgeting effort on the largest ones.",
			distinct))
	}

	if len(insights) == 0 {
		insights = append(insights, insightBalanced)
	}
	return insights
}
