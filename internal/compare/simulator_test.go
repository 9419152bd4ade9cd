package compare

import (
	"strings"
	"testing"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/calculation"
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func testSimulator() *ScenarioSimulator {
	return &ScenarioSimulator{
		Health: calculation.NewHealthCalculator(),
		Goals:  &calculation.GoalFeasibilityEvaluator{Now: func() time.Time { return testNow }},
	}
}

func TestScenarioSimulator_IdenticalInputs(t *testing.T) {
	simulator := testSimulator()

	report := simulator.SimulateCustom(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600),
		decimal.NewFromInt(5000), decimal.NewFromInt(3600),
		"no-op", nil)

	if !report.IncomeDelta.IsZero() || !report.ExpenseDelta.IsZero() ||
		!report.SavingsDelta.IsZero() || !report.SavingsRateDelta.IsZero() {
		t.Errorf("identical inputs should produce zero deltas, got income=%s expense=%s savings=%s rate=%s",
			report.IncomeDelta, report.ExpenseDelta, report.SavingsDelta, report.SavingsRateDelta)
	}
	if report.HealthStatusChange != "No change (remains Poor)" {
		t.Errorf("expected 'No change (remains Poor)', got %q", report.HealthStatusChange)
	}
	if report.ImpactSeverity != domain.ImpactMinimal {
		t.Errorf("expected Minimal severity, got %s", report.ImpactSeverity)
	}
}

func TestScenarioSimulator_IncomeReduction(t *testing.T) {
	simulator := testSimulator()

	report := simulator.SimulateIncomeReduction(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600), decimal.NewFromInt(20), nil)

	// 20% off 5000 leaves 4000; savings drop from 1400 to 400.
	if !report.Scenario.TotalIncome.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("expected scenario income 4000, got %s", report.Scenario.TotalIncome)
	}
	if !report.SavingsDelta.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("expected savings delta -1000, got %s", report.SavingsDelta)
	}

	// Savings rate falls from 28% to 10%: status Poor -> Critical, and an
	// 18-point rate drop grades as Moderate.
	if report.Scenario.HealthStatus != domain.HealthCritical {
		t.Errorf("expected Critical scenario status, got %s", report.Scenario.HealthStatus)
	}
	if !strings.HasPrefix(report.HealthStatusChange, "Declined") {
		t.Errorf("expected a declined status change, got %q", report.HealthStatusChange)
	}
	if report.ImpactSeverity != domain.ImpactModerate {
		t.Errorf("expected Moderate severity, got %s", report.ImpactSeverity)
	}

	assertHasRecommendation(t, report.Recommendations, "reduces your monthly savings by $1000.00")
	assertHasRecommendation(t, report.Recommendations, "offset the $1000.00 income reduction")
	assertHasRecommendation(t, report.Recommendations, "emergency fund")
}

func TestScenarioSimulator_ExpenseIncreaseDeficit(t *testing.T) {
	simulator := testSimulator()

	report := simulator.SimulateExpenseIncrease(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600), decimal.NewFromInt(2000), nil)

	if !report.Scenario.SavingsAmount.Equal(decimal.NewFromInt(-600)) {
		t.Errorf("expected scenario savings -600, got %s", report.Scenario.SavingsAmount)
	}
	assertHasRecommendation(t, report.Recommendations, "monthly deficit of $600.00")
	if report.ImpactSeverity != domain.ImpactSevere {
		// Rate falls from 28% to -12%: a 40-point drop with a status decline.
		t.Errorf("expected Severe severity, got %s", report.ImpactSeverity)
	}
}

func TestScenarioSimulator_Improvement(t *testing.T) {
	simulator := testSimulator()

	report := simulator.SimulateCustom(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600),
		decimal.NewFromInt(6000), decimal.NewFromInt(3600),
		"raise", nil)

	if !strings.HasPrefix(report.HealthStatusChange, "Improved") {
		t.Errorf("expected improved status, got %q", report.HealthStatusChange)
	}
	if report.ImpactSeverity != domain.ImpactPositive {
		t.Errorf("expected Positive severity, got %s", report.ImpactSeverity)
	}
	assertHasRecommendation(t, report.Recommendations, "improves your monthly savings by $1000.00")
}

func TestScenarioSimulator_GoalImpacts(t *testing.T) {
	simulator := testSimulator()

	goals := []domain.Goal{
		{
			Title:        "Emergency Fund",
			TargetAmount: decimal.NewFromInt(12000),
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC), // 1000/month
		},
	}

	// Baseline surplus 1400 comfortably funds 1000/month; cutting income by
	// 20% leaves a 400 surplus and makes the goal infeasible.
	report := simulator.SimulateIncomeReduction(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600), decimal.NewFromInt(20), goals)

	if len(report.GoalComparisons) != 1 {
		t.Fatalf("expected 1 goal comparison, got %d", len(report.GoalComparisons))
	}
	gc := report.GoalComparisons[0]
	if !gc.StatusChanged {
		t.Error("expected the goal status to change")
	}
	if gc.BaselineStatus != domain.GoalFeasible {
		t.Errorf("expected Feasible baseline, got %s", gc.BaselineStatus)
	}
	if gc.ScenarioStatus != domain.GoalNotFeasible {
		t.Errorf("expected Not Feasible scenario, got %s", gc.ScenarioStatus)
	}
	if !strings.Contains(gc.Impact, "Status changes from Feasible to Not Feasible") {
		t.Errorf("impact should describe the status change, got %q", gc.Impact)
	}
	if !strings.Contains(gc.Impact, "drops by $1000.00") {
		t.Errorf("impact should quantify the surplus drop, got %q", gc.Impact)
	}

	assertHasRecommendation(t, report.Recommendations, "1 of your goals become harder to reach")
}

func TestScenarioSimulator_SmallGoalShiftIsMinimal(t *testing.T) {
	simulator := testSimulator()

	goals := []domain.Goal{
		{
			Title:        "Nest egg",
			TargetAmount: decimal.NewFromInt(1200),
			CurrentSaved: decimal.Zero,
			Deadline:     time.Date(2027, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	report := simulator.SimulateExpenseIncrease(
		decimal.NewFromInt(5000), decimal.NewFromInt(3600), decimal.NewFromInt(5), goals)

	if got := report.GoalComparisons[0].Impact; got != "Minimal impact" {
		t.Errorf("a $5 shift should be minimal, got %q", got)
	}
}

func assertHasRecommendation(t *testing.T, recommendations []string, fragment string) {
	t.Helper()
	for _, rec := range recommendations {
		if strings.Contains(rec, fragment) {
			return
		}
	}
	t.Errorf("no recommendation contains %q; got %v", fragment, recommendations)
}
