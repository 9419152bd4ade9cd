package compare

import (
	"encoding/csv"
	"strings"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// CSVFormatter formats a scenario comparison as CSV
type CSVFormatter struct{}

// Format generates CSV output with one row per state (baseline, scenario)
func (cf *CSVFormatter) Format(report *domain.ScenarioComparisonReport) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"State",
		"Income",
		"Expenses",
		"Savings",
		"Savings Rate %",
		"Health Score",
		"Health Status",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow("baseline", &report.Baseline)); err != nil {
		return "", err
	}
	if err := writer.Write(cf.formatRow(report.ScenarioName, &report.Scenario)); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a health report as a CSV row
func (cf *CSVFormatter) formatRow(state string, r *domain.FinancialHealthReport) []string {
	return []string{
		state,
		r.TotalIncome.StringFixed(2),
		r.TotalExpenses.StringFixed(2),
		r.SavingsAmount.StringFixed(2),
		r.SavingsRate.StringFixed(2),
		r.HealthScore.StringFixed(2),
		string(r.HealthStatus),
	}
}
