package domain

import (
	"github.com/shopspring/decimal"
)

// Profile holds the user's recurring financial baseline.
type Profile struct {
	Name          string          `yaml:"name" json:"name"`
	MonthlyIncome decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
}

// Ledger is the complete input document: one user's profile, records,
// budget limits, and goals. It is loaded from a YAML file and validated
// before any engine call.
type Ledger struct {
	UserID   int                                 `yaml:"user_id" json:"user_id"`
	Profile  Profile                             `yaml:"profile" json:"profile"`
	Expenses []Expense                           `yaml:"expenses" json:"expenses"`
	Incomes  []Income                            `yaml:"incomes" json:"incomes"`
	Budgets  map[ExpenseCategory]decimal.Decimal `yaml:"budgets" json:"budgets"`
	Goals    []Goal                              `yaml:"goals" json:"goals"`
}

// ExpenseAmounts extracts just the amounts, the shape the health calculator
// consumes.
func (l *Ledger) ExpenseAmounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(l.Expenses))
	for _, e := range l.Expenses {
		amounts = append(amounts, e.Amount)
	}
	return amounts
}
