package monthly

import (
	"fmt"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// RecommendationGenerator turns month-over-month deltas into rendered tips.
// Every rule is evaluated independently; there is no cap on how many fire.
type RecommendationGenerator struct{}

// NewRecommendationGenerator creates a new recommendation generator
func NewRecommendationGenerator() *RecommendationGenerator {
	return &RecommendationGenerator{}
}

// Generate builds the recommendation list for a month compared to the one
// before it. Callers only invoke this when both months have expense data.
func (rg *RecommendationGenerator) Generate(current, previous MonthSummary) []domain.Recommendation {
	recs := []domain.Recommendation{}

	recs = append(recs, rg.savingsComparison(current, previous)...)
	recs = append(recs, rg.categoryChanges(current, previous)...)
	recs = append(recs, rg.savingsRate(current)...)
	recs = append(recs, rg.expenseGrowth(current, previous)...)

	return recs
}

func (rg *RecommendationGenerator) savingsComparison(current, previous MonthSummary) []domain.Recommendation {
	diff := current.Savings.Sub(previous.Savings)
	switch {
	case diff.GreaterThan(decimal.Zero):
		return []domain.Recommendation{{
			Type:             domain.RecommendationSuccess,
			Icon:             "trending-up",
			Title:            "Savings Improved",
			Message:          fmt.Sprintf("You saved $%s more than last month.", diff.StringFixed(2)),
			HighlightedValue: "+$" + diff.StringFixed(2),
		}}
	case diff.IsNegative():
		return []domain.Recommendation{{
			Type:             domain.RecommendationWarning,
			Icon:             "trending-down",
			Title:            "Savings Declined",
			Message:          fmt.Sprintf("You saved $%s less than last month.", diff.Abs().StringFixed(2)),
			HighlightedValue: "-$" + diff.Abs().StringFixed(2),
		}}
	default:
		return nil
	}
}

// categoryChanges flags categories whose spending moved more than 10% in
// either direction. Categories absent in either month are skipped since a
// percent change against zero is meaningless.
func (rg *RecommendationGenerator) categoryChanges(current, previous MonthSummary) []domain.Recommendation {
	recs := []domain.Recommendation{}
	ten := decimal.NewFromInt(10)

	for _, category := range domain.ExpenseCategories {
		curAmount, inCurrent := current.Categories[category]
		prevAmount, inPrevious := previous.Categories[category]
		if !inCurrent || !inPrevious || prevAmount.IsZero() {
			continue
		}

		change := curAmount.Sub(prevAmount).Div(prevAmount).Mul(hundred)
		switch {
		case change.GreaterThan(ten):
			recs = append(recs, domain.Recommendation{
				Type:  domain.RecommendationWarning,
				Icon:  "alert-triangle",
				Title: fmt.Sprintf("%s Spending Up", category),
				Message: fmt.Sprintf("Your %s spending rose %s%% (from $%s to $%s).",
					category, change.StringFixed(1), prevAmount.StringFixed(2), curAmount.StringFixed(2)),
				HighlightedValue: "+" + change.StringFixed(1) + "%",
			})
		case change.LessThan(ten.Neg()):
			recs = append(recs, domain.Recommendation{
				Type:  domain.RecommendationSuccess,
				Icon:  "check-circle",
				Title: fmt.Sprintf("%s Spending Down", category),
				Message: fmt.Sprintf("Your %s spending dropped %s%% (from $%s to $%s).",
					category, change.Abs().StringFixed(1), prevAmount.StringFixed(2), curAmount.StringFixed(2)),
				HighlightedValue: "-" + change.Abs().StringFixed(1) + "%",
			})
		}
	}
	return recs
}

func (rg *RecommendationGenerator) savingsRate(current MonthSummary) []domain.Recommendation {
	rate := current.SavingsRate
	if rate.GreaterThanOrEqual(decimal.NewFromInt(20)) {
		return []domain.Recommendation{{
			Type:             domain.RecommendationSuccess,
			Icon:             "award",
			Title:            "Strong Savings Rate",
			Message:          fmt.Sprintf("You saved %s%% of your income this month. Keep it up!", rate.StringFixed(1)),
			HighlightedValue: rate.StringFixed(1) + "%",
		}}
	}

	if rate.LessThan(decimal.NewFromInt(10)) && rate.GreaterThan(decimal.Zero) {
		category, amount, ok := topCategory(current)
		if !ok {
			return nil
		}
		potential := amount.Mul(decimal.NewFromFloat(0.2))
		return []domain.Recommendation{{
			Type:  domain.RecommendationTip,
			Icon:  "lightbulb",
			Title: "Boost Your Savings Rate",
			Message: fmt.Sprintf("Cutting your largest category, %s, by 20%% would free up about $%s per month.",
				category, potential.StringFixed(2)),
			HighlightedValue: "$" + potential.StringFixed(2),
		}}
	}

	return nil
}

func (rg *RecommendationGenerator) expenseGrowth(current, previous MonthSummary) []domain.Recommendation {
	if previous.TotalExpenses.IsZero() {
		return nil
	}
	growth := current.TotalExpenses.Sub(previous.TotalExpenses).Div(previous.TotalExpenses).Mul(hundred)
	if growth.LessThanOrEqual(decimal.NewFromInt(15)) {
		return nil
	}
	return []domain.Recommendation{{
		Type:             domain.RecommendationWarning,
		Icon:             "alert-octagon",
		Title:            "Spending Growth Alert",
		Message:          fmt.Sprintf("Your total spending grew %s%% compared to last month.", growth.StringFixed(1)),
		HighlightedValue: "+" + growth.StringFixed(1) + "%",
	}}
}

// topCategory returns the category with the highest spending this month.
// Declaration order breaks ties so the result is deterministic.
func topCategory(summary MonthSummary) (domain.ExpenseCategory, decimal.Decimal, bool) {
	var best domain.ExpenseCategory
	bestAmount := decimal.Zero
	found := false
	for _, category := range domain.ExpenseCategories {
		amount, ok := summary.Categories[category]
		if !ok {
			continue
		}
		if !found || amount.GreaterThan(bestAmount) {
			best = category
			bestAmount = amount
			found = true
		}
	}
	return best, bestAmount, found
}
