package config

import (
	"fmt"
	"os"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of ledger input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a ledger from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Ledger, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var ledger domain.Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if ledger.UserID == 0 {
		ledger.UserID = 1
	}

	if err := ip.ValidateLedger(&ledger); err != nil {
		return nil, fmt.Errorf("ledger validation failed: %w", err)
	}

	return &ledger, nil
}

// ValidateLedger enforces the engine's caller-side preconditions: the engine
// itself never rejects numeric edge cases, so malformed input has to be
// caught here.
func (ip *InputParser) ValidateLedger(ledger *domain.Ledger) error {
	if ledger.Profile.MonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("profile monthly income must be positive")
	}

	for i, expense := range ledger.Expenses {
		if err := ip.validateExpense(&expense); err != nil {
			return fmt.Errorf("expense %d validation failed: %w", i, err)
		}
	}

	for i, income := range ledger.Incomes {
		if income.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("income %d (%s) amount cannot be negative", i, income.Source)
		}
		if income.Date.IsZero() {
			return fmt.Errorf("income %d (%s) date is required", i, income.Source)
		}
	}

	for category, limit := range ledger.Budgets {
		if _, err := domain.ParseExpenseCategory(string(category)); err != nil {
			return fmt.Errorf("budget validation failed: %w", err)
		}
		if limit.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("budget limit for %s must be positive", category)
		}
	}

	for i, goal := range ledger.Goals {
		if err := ip.validateGoal(&goal); err != nil {
			return fmt.Errorf("goal %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateExpense validates a single expense record
func (ip *InputParser) validateExpense(expense *domain.Expense) error {
	if _, err := domain.ParseExpenseCategory(string(expense.Category)); err != nil {
		return err
	}
	if _, err := domain.ParseExpenseType(string(expense.Type)); err != nil {
		return err
	}
	if expense.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	if expense.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// validateGoal validates a single goal
func (ip *InputParser) validateGoal(goal *domain.Goal) error {
	if goal.Title == "" {
		return fmt.Errorf("title is required")
	}
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("target amount must be positive")
	}
	if goal.CurrentSaved.LessThan(decimal.Zero) {
		return fmt.Errorf("current saved cannot be negative")
	}
	if goal.Deadline.IsZero() {
		return fmt.Errorf("deadline is required")
	}
	return nil
}
