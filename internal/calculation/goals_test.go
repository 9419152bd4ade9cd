package calculation

import (
	"strings"
	"testing"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func fixedClockEvaluator() *GoalFeasibilityEvaluator {
	return &GoalFeasibilityEvaluator{Now: func() time.Time { return testNow }}
}

func TestMonthsRemaining(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"twelve months, same day", time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC), 12},
		{"twelve months minus a day", time.Date(2027, 8, 14, 0, 0, 0, 0, time.UTC), 11},
		{"next month, later day", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), 1},
		{"later this month", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), 0},
		{"deadline is now", testNow, 0},
		{"deadline passed", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"year boundary", time.Date(2027, 2, 15, 0, 0, 0, 0, time.UTC), 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsRemaining(testNow, tc.deadline))
		})
	}
}

func TestGoalFeasibilityEvaluator_Feasible(t *testing.T) {
	evaluator := fixedClockEvaluator()

	goal := domain.Goal{
		Title:        "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
		CurrentSaved: decimal.NewFromInt(2000),
		Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
	}

	report := evaluator.Evaluate(goal, decimal.NewFromInt(5000), decimal.NewFromInt(3600))

	assert.True(t, report.RemainingAmount.Equal(decimal.NewFromInt(8000)))
	assert.Equal(t, 12, report.MonthsRemaining)
	assert.Equal(t, "666.67", report.RequiredMonthlySavings.StringFixed(2))
	assert.True(t, report.AvailableSurplus.Equal(decimal.NewFromInt(1400)))
	assert.Equal(t, "733.33", report.SurplusAfterGoal.StringFixed(2))
	assert.Equal(t, domain.GoalFeasible, report.FeasibilityStatus)
	assert.Contains(t, report.Recommendation, "comfortably")
}

func TestGoalFeasibilityEvaluator_StatusPriority(t *testing.T) {
	evaluator := fixedClockEvaluator()
	income := decimal.NewFromInt(3000)
	nextYear := time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		goal     domain.Goal
		expenses decimal.Decimal
		want     domain.FeasibilityStatus
	}{
		{
			name: "deadline passed wins over achieved",
			goal: domain.Goal{
				Title:        "Old goal",
				TargetAmount: decimal.NewFromInt(100),
				CurrentSaved: decimal.NewFromInt(500),
				Deadline:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			expenses: decimal.NewFromInt(1000),
			want:     domain.GoalDeadlinePassed,
		},
		{
			name: "achieved",
			goal: domain.Goal{
				Title:        "Done",
				TargetAmount: decimal.NewFromInt(100),
				CurrentSaved: decimal.NewFromInt(500),
				Deadline:     nextYear,
			},
			expenses: decimal.NewFromInt(1000),
			want:     domain.GoalAchieved,
		},
		{
			name: "tight but feasible",
			goal: domain.Goal{
				// Requires 1000/month against a 1000 surplus.
				Title:        "Tight",
				TargetAmount: decimal.NewFromInt(12000),
				CurrentSaved: decimal.Zero,
				Deadline:     nextYear,
			},
			expenses: decimal.NewFromInt(2000),
			want:     domain.GoalFeasible,
		},
		{
			name: "at risk",
			goal: domain.Goal{
				// Requires 1100/month against a 1000 surplus: deficit 100,
				// within 20% of the surplus.
				Title:        "Stretch",
				TargetAmount: decimal.NewFromInt(13200),
				CurrentSaved: decimal.Zero,
				Deadline:     nextYear,
			},
			expenses: decimal.NewFromInt(2000),
			want:     domain.GoalAtRisk,
		},
		{
			name: "not feasible without surplus",
			goal: domain.Goal{
				Title:        "No surplus",
				TargetAmount: decimal.NewFromInt(1200),
				CurrentSaved: decimal.Zero,
				Deadline:     nextYear,
			},
			expenses: decimal.NewFromInt(3500),
			want:     domain.GoalNotFeasible,
		},
		{
			name: "not feasible, deficit too large",
			goal: domain.Goal{
				// Requires 2000/month against a 1000 surplus.
				Title:        "Too big",
				TargetAmount: decimal.NewFromInt(24000),
				CurrentSaved: decimal.Zero,
				Deadline:     nextYear,
			},
			expenses: decimal.NewFromInt(2000),
			want:     domain.GoalNotFeasible,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := evaluator.Evaluate(tc.goal, income, tc.expenses)
			assert.Equal(t, tc.want, report.FeasibilityStatus)
		})
	}
}

func TestGoalFeasibilityEvaluator_FeasibilityScore(t *testing.T) {
	evaluator := fixedClockEvaluator()

	goal := domain.Goal{
		Title:        "Scored",
		TargetAmount: decimal.NewFromInt(12000),
		CurrentSaved: decimal.Zero,
		Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
	}

	// surplus 2000 vs required 1000 => 200%.
	report := evaluator.Evaluate(goal, decimal.NewFromInt(5000), decimal.NewFromInt(3000))
	assert.Equal(t, "200.00", report.FeasibilityScore.StringFixed(2))

	// Achieved goal: nothing required, score pegged at 100.
	achieved := domain.Goal{
		Title:        "Met",
		TargetAmount: decimal.NewFromInt(100),
		CurrentSaved: decimal.NewFromInt(100),
		Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
	}
	report = evaluator.Evaluate(achieved, decimal.NewFromInt(5000), decimal.NewFromInt(3000))
	assert.Equal(t, "100.00", report.FeasibilityScore.StringFixed(2))
}

func TestGoalFeasibilityEvaluator_EvaluateAll(t *testing.T) {
	evaluator := fixedClockEvaluator()
	income := decimal.NewFromInt(5000)
	expenses := decimal.NewFromInt(4000) // surplus 1000

	goals := []domain.Goal{
		{
			// Listed out of deadline order on purpose.
			Title:        "Car",
			TargetAmount: decimal.NewFromInt(7200),
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC), // 600/month
		},
		{
			Title:        "Vacation",
			TargetAmount: decimal.NewFromInt(3000),
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 2, 15, 0, 0, 0, 0, time.UTC), // 500/month
		},
	}

	reports := evaluator.EvaluateAll(goals, income, expenses)
	require.Len(t, reports, 2)

	// Sorted by deadline ascending.
	assert.Equal(t, "Vacation", reports[0].GoalTitle)
	assert.Equal(t, "Car", reports[1].GoalTitle)

	// Each goal is evaluated against the FULL surplus, not a decremented one.
	assert.True(t, reports[0].AvailableSurplus.Equal(decimal.NewFromInt(1000)))
	assert.True(t, reports[1].AvailableSurplus.Equal(decimal.NewFromInt(1000)))

	// Combined requirement (1100) exceeds the surplus (1000): every Feasible
	// goal carries the collective warning.
	for _, report := range reports {
		if report.FeasibilityStatus == domain.GoalFeasible {
			assert.Contains(t, report.Recommendation, "exceeds your $1000.00 surplus")
		}
	}
}

func TestGoalFeasibilityEvaluator_EvaluateAll_NoWarningWhenAffordable(t *testing.T) {
	evaluator := fixedClockEvaluator()

	goals := []domain.Goal{
		{
			Title:        "Small",
			TargetAmount: decimal.NewFromInt(1200),
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC), // 100/month
		},
	}

	reports := evaluator.EvaluateAll(goals, decimal.NewFromInt(5000), decimal.NewFromInt(4000))
	require.Len(t, reports, 1)
	assert.False(t, strings.Contains(reports[0].Recommendation, "exceeds"),
		"affordable goals should not carry the collective warning")
}

func TestGoalFeasibilityEvaluator_EvaluateAllSequential(t *testing.T) {
	evaluator := fixedClockEvaluator()
	income := decimal.NewFromInt(5000)
	expenses := decimal.NewFromInt(4000) // surplus 1000

	goals := []domain.Goal{
		{
			Title:        "First",
			TargetAmount: decimal.NewFromInt(7200), // 600/month over 12 months
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:        "Second",
			TargetAmount: decimal.NewFromInt(7200), // also 600/month
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	reports := evaluator.EvaluateAllSequential(goals, income, expenses)
	require.Len(t, reports, 2)

	// The first goal sees the full 1000 surplus; the second only what is
	// left after funding the first.
	assert.True(t, reports[0].AvailableSurplus.Equal(decimal.NewFromInt(1000)))
	assert.True(t, reports[1].AvailableSurplus.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, domain.GoalFeasible, reports[0].FeasibilityStatus)
	assert.NotEqual(t, domain.GoalFeasible, reports[1].FeasibilityStatus)
}

func TestGoalFeasibilityEvaluator_DeadlineNow(t *testing.T) {
	evaluator := fixedClockEvaluator()

	goal := domain.Goal{
		Title:        "Due today",
		TargetAmount: decimal.NewFromInt(1000),
		CurrentSaved: decimal.NewFromInt(200),
		Deadline:     testNow,
	}

	report := evaluator.Evaluate(goal, decimal.NewFromInt(5000), decimal.NewFromInt(3000))
	assert.Equal(t, 0, report.MonthsRemaining)
	assert.Equal(t, domain.GoalDeadlinePassed, report.FeasibilityStatus)
	// With no months left, the required saving is the full remainder.
	assert.True(t, report.RequiredMonthlySavings.Equal(decimal.NewFromInt(800)))
}
