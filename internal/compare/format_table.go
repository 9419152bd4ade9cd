package compare

import (
	"fmt"
	"strings"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a scenario comparison as a console table
type TableFormatter struct{}

// Format generates a formatted side-by-side comparison
func (tf *TableFormatter) Format(report *domain.ScenarioComparisonReport) string {
	var sb strings.Builder

	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Scenario: %s\n", report.ScenarioName))
	sb.WriteString(fmt.Sprintf("Impact:   %s\n", report.ImpactSeverity))
	sb.WriteString("\n")

	labelWidth := 18
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		labelWidth, "Metric",
		numWidth, "Baseline",
		numWidth, "Scenario",
		numWidth, "Delta"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	sb.WriteString(tf.row("Income", labelWidth, numWidth,
		report.Baseline.TotalIncome, report.Scenario.TotalIncome, report.IncomeDelta))
	sb.WriteString(tf.row("Expenses", labelWidth, numWidth,
		report.Baseline.TotalExpenses, report.Scenario.TotalExpenses, report.ExpenseDelta))
	sb.WriteString(tf.row("Savings", labelWidth, numWidth,
		report.Baseline.SavingsAmount, report.Scenario.SavingsAmount, report.SavingsDelta))
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		labelWidth, "Savings Rate",
		numWidth, report.Baseline.SavingsRate.StringFixed(2)+"%",
		numWidth, report.Scenario.SavingsRate.StringFixed(2)+"%",
		numWidth, tf.signed(report.SavingsRateDelta)+"%"))
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "Health Status",
		numWidth, string(report.Baseline.HealthStatus),
		numWidth, string(report.Scenario.HealthStatus)))

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("\n%s\n", report.HealthStatusChange))

	if len(report.GoalComparisons) > 0 {
		sb.WriteString("\nGOALS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, gc := range report.GoalComparisons {
			sb.WriteString(fmt.Sprintf("%s: %s -> %s\n  %s\n",
				gc.GoalTitle, gc.BaselineStatus, gc.ScenarioStatus, gc.Impact))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	}

	return sb.String()
}

func (tf *TableFormatter) row(label string, labelWidth, numWidth int, base, scen, delta decimal.Decimal) string {
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		labelWidth, label,
		numWidth, "$"+base.StringFixed(2),
		numWidth, "$"+scen.StringFixed(2),
		numWidth, tf.signed(delta))
}

func (tf *TableFormatter) signed(d decimal.Decimal) string {
	if d.GreaterThanOrEqual(decimal.Zero) {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}
