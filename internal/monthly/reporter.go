package monthly

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Logger is the minimal logging interface the reporter uses
type Logger interface {
	Debugf(format string, args ...any)
}

// NopLogger discards all log output
type NopLogger struct{}

// Debugf implements Logger
func (NopLogger) Debugf(string, ...any) {}

// Reporter builds month-over-month analysis reports from a Store.
type Reporter struct {
	Store       Store
	Recommender *RecommendationGenerator
	Logger      Logger
}

// NewReporter creates a reporter over the given store
func NewReporter(store Store) *Reporter {
	return &Reporter{
		Store:       store,
		Recommender: NewRecommendationGenerator(),
		Logger:      NopLogger{},
	}
}

// SetLogger replaces the reporter's logger; nil restores the no-op logger
func (r *Reporter) SetLogger(logger Logger) {
	if logger == nil {
		r.Logger = NopLogger{}
		return
	}
	r.Logger = logger
}

// MonthSummary aggregates one calendar month of records.
type MonthSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Savings       decimal.Decimal
	SavingsRate   decimal.Decimal
	Categories    map[domain.ExpenseCategory]decimal.Decimal
	ExpenseCount  int
}

// GetMonthlyAnalysis compares the given calendar month against the previous
// one. Recommendations are generated only when both months hold at least one
// expense record.
func (r *Reporter) GetMonthlyAnalysis(ctx context.Context, userID, year, month int) (*domain.MonthlyAnalysisReport, error) {
	curFrom, curTo := monthWindow(year, month)
	prevFrom := curFrom.AddDate(0, -1, 0)

	current, err := r.summarize(ctx, userID, curFrom, curTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month %d-%02d: %w", year, month, err)
	}
	previous, err := r.summarize(ctx, userID, prevFrom, curFrom)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous month: %w", err)
	}

	r.Logger.Debugf("monthly analysis %d-%02d: %d current expenses, %d previous",
		year, month, current.ExpenseCount, previous.ExpenseCount)

	report := &domain.MonthlyAnalysisReport{
		Year:  year,
		Month: month,

		TotalIncome:   current.TotalIncome,
		TotalExpenses: current.TotalExpenses,
		Savings:       current.Savings,
		SavingsRate:   current.SavingsRate,

		IncomeChange:      percentChange(current.TotalIncome, previous.TotalIncome),
		ExpensesChange:    percentChange(current.TotalExpenses, previous.TotalExpenses),
		SavingsChange:     percentChange(current.Savings, previous.Savings),
		SavingsRateChange: percentChange(current.SavingsRate, previous.SavingsRate),

		CategoryBreakdown: categoryBreakdown(current),
		HasSufficientData: current.ExpenseCount > 0 && previous.ExpenseCount > 0,
	}

	if report.HasSufficientData {
		report.Recommendations = r.Recommender.Generate(current, previous)
	} else {
		report.Recommendations = []domain.Recommendation{}
	}

	return report, nil
}

func (r *Reporter) summarize(ctx context.Context, userID int, from, to time.Time) (MonthSummary, error) {
	expenses, err := r.Store.GetExpenses(ctx, userID, from, to)
	if err != nil {
		return MonthSummary{}, err
	}
	incomes, err := r.Store.GetIncomes(ctx, userID, from, to)
	if err != nil {
		return MonthSummary{}, err
	}

	summary := MonthSummary{
		TotalIncome:   domain.TotalIncome(incomes),
		TotalExpenses: domain.TotalExpenses(expenses),
		Categories:    make(map[domain.ExpenseCategory]decimal.Decimal),
		ExpenseCount:  len(expenses),
	}
	for _, e := range expenses {
		summary.Categories[e.Category] = summary.Categories[e.Category].Add(e.Amount)
	}

	summary.Savings = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.TotalIncome.GreaterThan(decimal.Zero) {
		summary.SavingsRate = summary.Savings.Div(summary.TotalIncome).Mul(hundred)
	}
	return summary, nil
}

// monthWindow returns the [first of month, first of next month) boundaries.
func monthWindow(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// percentChange guards the zero-previous case by substituting 0.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// categoryBreakdown lists this month's spending per category with its share
// of the total, largest first.
func categoryBreakdown(summary MonthSummary) []domain.CategorySpending {
	rows := make([]domain.CategorySpending, 0, len(summary.Categories))
	for _, category := range domain.ExpenseCategories {
		amount, ok := summary.Categories[category]
		if !ok {
			continue
		}
		pct := decimal.Zero
		if summary.TotalExpenses.GreaterThan(decimal.Zero) {
			pct = amount.Div(summary.TotalExpenses).Mul(hundred)
		}
		rows = append(rows, domain.CategorySpending{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})
	return rows
}
