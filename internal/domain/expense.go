package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies what an expense was spent on.
type ExpenseCategory string

const (
	CategoryHousing        ExpenseCategory = "Housing"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryFood           ExpenseCategory = "Food"
	CategoryUtilities      ExpenseCategory = "Utilities"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryEducation      ExpenseCategory = "Education"
	CategoryInsurance      ExpenseCategory = "Insurance"
	CategorySavings        ExpenseCategory = "Savings"
	CategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid category in declaration order.
var ExpenseCategories = []ExpenseCategory{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryInsurance,
	CategorySavings,
	CategoryOther,
}

// ParseExpenseCategory converts a string to an ExpenseCategory
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for _, c := range ExpenseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

// ExpenseType classifies how an expense recurs.
type ExpenseType string

const (
	TypeFixed    ExpenseType = "Fixed"
	TypeVariable ExpenseType = "Variable"
	TypeOneTime  ExpenseType = "OneTime"
)

// ExpenseTypes lists every valid expense type.
var ExpenseTypes = []ExpenseType{TypeFixed, TypeVariable, TypeOneTime}

// ParseExpenseType converts a string to an ExpenseType
func ParseExpenseType(s string) (ExpenseType, error) {
	for _, t := range ExpenseTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown expense type: %q", s)
}

// Expense is a single recorded outflow. Amounts are validated non-negative
// by the input layer before they reach the engine.
type Expense struct {
	Category ExpenseCategory `yaml:"category" json:"category"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Date     time.Time       `yaml:"date" json:"date"`
	Type     ExpenseType     `yaml:"type" json:"type"`
}

// Income is a single recorded inflow.
type Income struct {
	Source string          `yaml:"source" json:"source"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Date   time.Time       `yaml:"date" json:"date"`
}

// TotalExpenses sums the amounts of a list of expenses.
func TotalExpenses(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalIncome sums the amounts of a list of incomes.
func TotalIncome(incomes []Income) decimal.Decimal {
	total := decimal.Zero
	for _, in := range incomes {
		total = total.Add(in.Amount)
	}
	return total
}
