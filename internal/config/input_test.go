package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLedgerYAML = `
user_id: 7
profile:
  name: "Jordan"
  monthly_income: 5000
expenses:
  - category: "Housing"
    amount: 1800
    date: 2026-08-01
    type: "Fixed"
  - category: "Food"
    amount: 600.50
    date: 2026-08-03
    type: "Variable"
incomes:
  - source: "Salary"
    amount: 5000
    date: 2026-08-01
budgets:
  Housing: 2000
  Food: 700
goals:
  - title: "Emergency Fund"
    target_amount: 10000
    current_saved: 4000
    deadline: 2027-06-01
`

func writeLedgerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	ledger, err := parser.LoadFromFile(writeLedgerFile(t, sampleLedgerYAML))
	require.NoError(t, err)

	assert.Equal(t, 7, ledger.UserID)
	assert.Equal(t, "Jordan", ledger.Profile.Name)
	assert.True(t, ledger.Profile.MonthlyIncome.Equal(decimal.NewFromInt(5000)))

	require.Len(t, ledger.Expenses, 2)
	assert.Equal(t, domain.CategoryHousing, ledger.Expenses[0].Category)
	assert.Equal(t, domain.TypeFixed, ledger.Expenses[0].Type)
	assert.True(t, ledger.Expenses[1].Amount.Equal(decimal.NewFromFloat(600.50)))
	assert.Equal(t, 2026, ledger.Expenses[0].Date.Year())
	assert.Equal(t, time.August, ledger.Expenses[0].Date.Month())

	require.Len(t, ledger.Incomes, 1)
	assert.Equal(t, "Salary", ledger.Incomes[0].Source)

	require.Len(t, ledger.Budgets, 2)
	assert.True(t, ledger.Budgets[domain.CategoryFood].Equal(decimal.NewFromInt(700)))

	require.Len(t, ledger.Goals, 1)
	assert.Equal(t, "Emergency Fund", ledger.Goals[0].Title)
	assert.Equal(t, 2027, ledger.Goals[0].Deadline.Year())
}

func TestLoadFromFile_DefaultUserID(t *testing.T) {
	parser := NewInputParser()

	ledger, err := parser.LoadFromFile(writeLedgerFile(t, `
profile:
  name: "Solo"
  monthly_income: 3000
`))
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.UserID)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(writeLedgerFile(t, "expenses: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateLedger(t *testing.T) {
	parser := NewInputParser()
	deadline := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	valid := func() *domain.Ledger {
		return &domain.Ledger{
			UserID:  1,
			Profile: domain.Profile{Name: "Jordan", MonthlyIncome: decimal.NewFromInt(5000)},
			Expenses: []domain.Expense{{
				Category: domain.CategoryFood,
				Amount:   decimal.NewFromInt(100),
				Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				Type:     domain.TypeVariable,
			}},
			Budgets: map[domain.ExpenseCategory]decimal.Decimal{
				domain.CategoryFood: decimal.NewFromInt(500),
			},
			Goals: []domain.Goal{{
				Title:        "Vacation",
				TargetAmount: decimal.NewFromInt(3000),
				Deadline:     deadline,
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Ledger)
		wantErr string
	}{
		{
			name:   "valid ledger passes",
			mutate: func(l *domain.Ledger) {},
		},
		{
			name:    "zero income rejected",
			mutate:  func(l *domain.Ledger) { l.Profile.MonthlyIncome = decimal.Zero },
			wantErr: "monthly income must be positive",
		},
		{
			name:    "unknown expense category",
			mutate:  func(l *domain.Ledger) { l.Expenses[0].Category = "Groceries" },
			wantErr: "expense 0 validation failed",
		},
		{
			name:    "unknown expense type",
			mutate:  func(l *domain.Ledger) { l.Expenses[0].Type = "Recurring" },
			wantErr: "expense 0 validation failed",
		},
		{
			name:    "negative expense amount",
			mutate:  func(l *domain.Ledger) { l.Expenses[0].Amount = decimal.NewFromInt(-5) },
			wantErr: "amount cannot be negative",
		},
		{
			name:    "missing expense date",
			mutate:  func(l *domain.Ledger) { l.Expenses[0].Date = time.Time{} },
			wantErr: "date is required",
		},
		{
			name:    "non-positive budget limit",
			mutate:  func(l *domain.Ledger) { l.Budgets[domain.CategoryFood] = decimal.Zero },
			wantErr: "budget limit for Food must be positive",
		},
		{
			name: "unknown budget category",
			mutate: func(l *domain.Ledger) {
				l.Budgets["Pets"] = decimal.NewFromInt(50)
			},
			wantErr: "budget validation failed",
		},
		{
			name:    "goal without title",
			mutate:  func(l *domain.Ledger) { l.Goals[0].Title = "" },
			wantErr: "title is required",
		},
		{
			name:    "goal with zero target",
			mutate:  func(l *domain.Ledger) { l.Goals[0].TargetAmount = decimal.Zero },
			wantErr: "target amount must be positive",
		},
		{
			name:    "goal missing deadline",
			mutate:  func(l *domain.Ledger) { l.Goals[0].Deadline = time.Time{} },
			wantErr: "deadline is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := valid()
			tt.mutate(ledger)
			err := parser.ValidateLedger(ledger)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
