package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// View renders the current dashboard state (required by tea.Model)
func (m Model) View() string {
	if m.loading {
		return helpStyle.Render("Loading ledger...")
	}
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n" +
			helpStyle.Render("r: retry - q: quit")
	}

	var content string
	switch m.activeTab {
	case TabDashboard:
		content = m.renderDashboard()
	case TabSpending:
		content = m.renderSpending()
	case TabGoals:
		content = m.renderGoals()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("budgetpulse"),
		m.renderTabs(),
		content,
		helpStyle.Render("tab/←→: switch view - r: reload - q: quit"),
	)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderDashboard() string {
	var sb strings.Builder

	sb.WriteString(metricLine("Income", "$"+m.health.TotalIncome.StringFixed(2)))
	sb.WriteString(metricLine("Expenses", "$"+m.health.TotalExpenses.StringFixed(2)))
	sb.WriteString(metricLine("Savings", "$"+m.health.SavingsAmount.StringFixed(2)))
	sb.WriteString(metricLine("Savings Rate", m.health.SavingsRate.StringFixed(2)+"%"))
	sb.WriteString(metricLine("Health Score", m.health.HealthScore.StringFixed(2)))
	sb.WriteString(labelStyle.Render("Status") +
		statusStyle(m.health.HealthStatus.Rank()).Render(string(m.health.HealthStatus)) + "\n")
	sb.WriteString("\n" + m.health.Recommendation + "\n")

	if len(m.budgets) > 0 {
		var budgets strings.Builder
		budgets.WriteString("Budgets\n")
		for _, row := range m.budgets {
			line := fmt.Sprintf("%-16s %10s / %-10s %s",
				row.Category,
				"$"+row.Report.Actual.StringFixed(2),
				"$"+row.Report.Limit.StringFixed(2),
				row.Report.Status)
			if row.Report.IsWithinBudget {
				budgets.WriteString(goodStyle.Render(line) + "\n")
			} else {
				budgets.WriteString(badStyle.Render(line) + "\n")
			}
		}
		sb.WriteString("\n" + boxStyle.Render(strings.TrimRight(budgets.String(), "\n")) + "\n")
	}

	return sb.String()
}

func (m Model) renderSpending() string {
	var sb strings.Builder

	sb.WriteString(metricLine("Transactions", fmt.Sprintf("%d", m.spending.TransactionCount)))
	if m.spending.TransactionCount > 0 {
		sb.WriteString(metricLine("Average", "$"+m.spending.AverageAmount.StringFixed(2)))
		sb.WriteString(metricLine("Top Category", string(m.spending.TopCategory)))
	}
	sb.WriteString("\n" + m.categoryTable.View() + "\n")

	sb.WriteString("\nInsights\n")
	for _, insight := range m.spending.Insights {
		sb.WriteString("- " + insight + "\n")
	}

	return sb.String()
}

func (m Model) renderGoals() string {
	if len(m.goals) == 0 {
		return helpStyle.Render("No goals defined in this ledger.")
	}

	var sb strings.Builder
	for _, goal := range m.goals {
		sb.WriteString(valueStyle.Render(goal.GoalTitle) + " " +
			statusStyle(goalRank(goal.FeasibilityStatus)).Render("["+string(goal.FeasibilityStatus)+"]") + "\n")
		sb.WriteString(fmt.Sprintf("  $%s remaining over %d months ($%s/month needed)\n",
			goal.RemainingAmount.StringFixed(2), goal.MonthsRemaining,
			goal.RequiredMonthlySavings.StringFixed(2)))
		sb.WriteString("  " + goal.Recommendation + "\n\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func metricLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func goalRank(status domain.FeasibilityStatus) int {
	switch status {
	case domain.GoalAchieved, domain.GoalFeasible:
		return 4
	case domain.GoalAtRisk:
		return 3
	default:
		return 1
	}
}
