package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// BudgetRow pairs a category with its adherence report for display.
type BudgetRow struct {
	Category domain.ExpenseCategory       `json:"category"`
	Report   domain.BudgetAdherenceReport `json:"report"`
}

// Console renders engine reports for terminal display.
type Console struct{}

// NewConsole creates a new console renderer
func NewConsole() *Console {
	return &Console{}
}

// FormatHealth renders a financial health report
func (c *Console) FormatHealth(r *domain.FinancialHealthReport) string {
	var sb strings.Builder
	sb.WriteString("FINANCIAL HEALTH\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s $%s\n", "Income:", r.TotalIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s $%s\n", "Expenses:", r.TotalExpenses.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s $%s\n", "Savings:", r.SavingsAmount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s %s%%\n", "Savings Rate:", r.SavingsRate.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s %s%%\n", "Expense Ratio:", r.ExpenseRatio.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Health Score:", r.HealthScore.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Status:", r.HealthStatus))
	sb.WriteString("\n" + r.Recommendation + "\n")
	return sb.String()
}

// FormatBudgets renders per-category budget adherence, worst offenders first
func (c *Console) FormatBudgets(rows []BudgetRow) string {
	ordered := make([]BudgetRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Report.VariancePercent.GreaterThan(ordered[j].Report.VariancePercent)
	})

	var sb strings.Builder
	sb.WriteString("BUDGET ADHERENCE\n")
	sb.WriteString(strings.Repeat("=", 76) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s %12s %12s %10s  %s\n",
		"Category", "Actual", "Limit", "Variance", "Status"))
	sb.WriteString(strings.Repeat("-", 76) + "\n")
	for _, row := range ordered {
		sb.WriteString(fmt.Sprintf("%-16s %12s %12s %9s%%  %s\n",
			row.Category,
			"$"+row.Report.Actual.StringFixed(2),
			"$"+row.Report.Limit.StringFixed(2),
			row.Report.VariancePercent.StringFixed(2),
			row.Report.Status))
	}
	return sb.String()
}

// FormatSpending renders a spending behavior report
func (c *Console) FormatSpending(r *domain.SpendingBehaviorReport) string {
	var sb strings.Builder
	sb.WriteString("SPENDING BEHAVIOR\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-18s %d\n", "Transactions:", r.TransactionCount))
	if r.TransactionCount > 0 {
		sb.WriteString(fmt.Sprintf("%-18s $%s\n", "Average Amount:", r.AverageAmount.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("%-18s %s ($%s)\n", "Top Category:", r.TopCategory, r.TopCategoryAmount.StringFixed(2)))

		sb.WriteString("\nBy category:\n")
		for _, category := range domain.ExpenseCategories {
			if amount, ok := r.CategoryBreakdown[category]; ok {
				sb.WriteString(fmt.Sprintf("  %-16s $%s\n", category, amount.StringFixed(2)))
			}
		}

		sb.WriteString("\nBy type:\n")
		for _, expenseType := range domain.ExpenseTypes {
			if count, ok := r.TypeDistribution[expenseType]; ok {
				sb.WriteString(fmt.Sprintf("  %-16s %d\n", expenseType, count))
			}
		}
	}

	sb.WriteString("\nINSIGHTS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, insight := range r.Insights {
		sb.WriteString(fmt.Sprintf("- %s\n", insight))
	}
	return sb.String()
}

// FormatGoals renders goal feasibility reports
func (c *Console) FormatGoals(reports []domain.GoalFeasibilityReport) string {
	var sb strings.Builder
	sb.WriteString("GOAL FEASIBILITY\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	for i, r := range reports {
		if i > 0 {
			sb.WriteString(strings.Repeat("-", 72) + "\n")
		}
		sb.WriteString(fmt.Sprintf("%s [%s]\n", r.GoalTitle, r.FeasibilityStatus))
		sb.WriteString(fmt.Sprintf("  Remaining:        $%s over %d months\n",
			r.RemainingAmount.StringFixed(2), r.MonthsRemaining))
		sb.WriteString(fmt.Sprintf("  Required/month:   $%s\n", r.RequiredMonthlySavings.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("  Monthly surplus:  $%s (after goal: $%s)\n",
			r.AvailableSurplus.StringFixed(2), r.SurplusAfterGoal.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("  Feasibility:      %s%%\n", r.FeasibilityScore.StringFixed(2)))
		sb.WriteString("  " + r.Recommendation + "\n")
	}
	return sb.String()
}

// FormatMonthly renders a monthly analysis report
func (c *Console) FormatMonthly(r *domain.MonthlyAnalysisReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MONTHLY ANALYSIS %d-%02d\n", r.Year, r.Month))
	sb.WriteString(strings.Repeat("=", 64) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s $%-12s (%s%% vs prior month)\n",
		"Income:", r.TotalIncome.StringFixed(2), r.IncomeChange.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("%-16s $%-12s (%s%%)\n",
		"Expenses:", r.TotalExpenses.StringFixed(2), r.ExpensesChange.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("%-16s $%-12s (%s%%)\n",
		"Savings:", r.Savings.StringFixed(2), r.SavingsChange.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("%-16s %s%%\n", "Savings Rate:", r.SavingsRate.StringFixed(2)))

	if len(r.CategoryBreakdown) > 0 {
		sb.WriteString("\nBy category:\n")
		for _, row := range r.CategoryBreakdown {
			sb.WriteString(fmt.Sprintf("  %-16s $%-12s %s%%\n",
				row.Category, row.Amount.StringFixed(2), row.Percentage.StringFixed(1)))
		}
	}

	if !r.HasSufficientData {
		sb.WriteString("\nNot enough data for recommendations (need expenses in both months).\n")
		return sb.String()
	}

	if len(r.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 64) + "\n")
		for _, rec := range r.Recommendations {
			sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", rec.Type, rec.Title, rec.Message))
		}
	}
	return sb.String()
}

// JSON marshals any report with indentation for terminal output
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
