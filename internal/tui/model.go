package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/budgetpulse/budgetpulse/internal/calculation"
	"github.com/budgetpulse/budgetpulse/internal/config"
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/budgetpulse/budgetpulse/internal/output"
)

// Tab identifies the active dashboard view
type Tab int

const (
	TabDashboard Tab = iota
	TabSpending
	TabGoals
)

var tabNames = []string{"Dashboard", "Spending", "Goals"}

// Model holds the entire dashboard state
type Model struct {
	ledgerPath string
	ledger     *domain.Ledger

	// Derived reports, computed once when the ledger loads
	health   domain.FinancialHealthReport
	budgets  []output.BudgetRow
	spending domain.SpendingBehaviorReport
	goals    []domain.GoalFeasibilityReport

	categoryTable table.Model

	activeTab Tab
	width     int
	height    int

	loading bool
	err     error
}

// NewModel creates the dashboard model for a ledger file
func NewModel(ledgerPath string) Model {
	return Model{
		ledgerPath: ledgerPath,
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init starts loading the ledger (required by tea.Model)
func (m Model) Init() tea.Cmd {
	return loadLedgerCmd(m.ledgerPath)
}

// LedgerLoadedMsg carries a successfully parsed ledger
type LedgerLoadedMsg struct {
	Ledger *domain.Ledger
}

// ErrorMsg carries a load failure
type ErrorMsg struct {
	Err error
}

func loadLedgerCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		ledger, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return LedgerLoadedMsg{Ledger: ledger}
	}
}

// computeReports runs the engine over the loaded ledger.
func (m *Model) computeReports() {
	ledger := m.ledger
	income := ledger.Profile.MonthlyIncome

	m.health = calculation.NewHealthCalculator().Calculate(income, ledger.ExpenseAmounts())
	m.spending = calculation.NewSpendingBehaviorAnalyzer().Analyze(ledger.Expenses)
	m.goals = calculation.NewGoalFeasibilityEvaluator().
		EvaluateAll(ledger.Goals, income, domain.TotalExpenses(ledger.Expenses))

	actuals := make(map[domain.ExpenseCategory]decimal.Decimal)
	for _, e := range ledger.Expenses {
		actuals[e.Category] = actuals[e.Category].Add(e.Amount)
	}
	evaluator := calculation.NewBudgetAdherenceEvaluator()
	m.budgets = nil
	for _, category := range domain.ExpenseCategories {
		limit, ok := ledger.Budgets[category]
		if !ok {
			continue
		}
		m.budgets = append(m.budgets, output.BudgetRow{
			Category: category,
			Report:   evaluator.Evaluate(actuals[category], limit),
		})
	}

	m.categoryTable = newCategoryTable(&m.spending)
}

// Run starts the dashboard program over the given ledger file
func Run(ledgerPath string) error {
	program := tea.NewProgram(NewModel(ledgerPath), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
