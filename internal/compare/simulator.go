package compare

import (
	"fmt"

	"github.com/budgetpulse/budgetpulse/internal/calculation"
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ScenarioSimulator compares a baseline financial state against a
// hypothetical one. It composes the health calculator and the goal
// feasibility evaluator; it has no state of its own.
type ScenarioSimulator struct {
	Health *calculation.HealthCalculator
	Goals  *calculation.GoalFeasibilityEvaluator
}

// NewScenarioSimulator creates a simulator with default collaborators
func NewScenarioSimulator() *ScenarioSimulator {
	return &ScenarioSimulator{
		Health: calculation.NewHealthCalculator(),
		Goals:  calculation.NewGoalFeasibilityEvaluator(),
	}
}

// SimulateIncomeReduction models losing pct percent of income with expenses
// unchanged.
func (ss *ScenarioSimulator) SimulateIncomeReduction(income, expenses, pct decimal.Decimal, goals []domain.Goal) domain.ScenarioComparisonReport {
	newIncome := income.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred)))
	name := fmt.Sprintf("%s%% income reduction", pct.StringFixed(0))
	return ss.SimulateCustom(income, expenses, newIncome, expenses, name, goals)
}

// SimulateExpenseIncrease models a flat monthly expense increase with income
// unchanged.
func (ss *ScenarioSimulator) SimulateExpenseIncrease(income, expenses, amount decimal.Decimal, goals []domain.Goal) domain.ScenarioComparisonReport {
	name := fmt.Sprintf("$%s expense increase", amount.StringFixed(2))
	return ss.SimulateCustom(income, expenses, income, expenses.Add(amount), name, goals)
}

// SimulateCustom compares an arbitrary (income, expenses) pair against the
// baseline. Goals, when supplied, are re-evaluated under the scenario
// surplus.
func (ss *ScenarioSimulator) SimulateCustom(currentIncome, currentExpenses, newIncome, newExpenses decimal.Decimal, name string, goals []domain.Goal) domain.ScenarioComparisonReport {
	baseline := ss.Health.Calculate(currentIncome, []decimal.Decimal{currentExpenses})
	scenario := ss.Health.Calculate(newIncome, []decimal.Decimal{newExpenses})

	report := domain.ScenarioComparisonReport{
		ScenarioName:     name,
		Baseline:         baseline,
		Scenario:         scenario,
		IncomeDelta:      newIncome.Sub(currentIncome),
		ExpenseDelta:     newExpenses.Sub(currentExpenses),
		SavingsDelta:     scenario.SavingsAmount.Sub(baseline.SavingsAmount),
		SavingsRateDelta: scenario.SavingsRate.Sub(baseline.SavingsRate),
	}
	report.HealthStatusChange = describeStatusChange(baseline.HealthStatus, scenario.HealthStatus)
	report.GoalComparisons = ss.compareGoals(goals, currentIncome, currentExpenses, newIncome, newExpenses)
	report.ImpactSeverity = classifySeverity(&report)
	report.Recommendations = buildRecommendations(&report)
	return report
}

func describeStatusChange(base, scen domain.HealthStatus) string {
	switch {
	case scen.Rank() > base.Rank():
		return fmt.Sprintf("Improved from %s to %s", base, scen)
	case scen.Rank() < base.Rank():
		return fmt.Sprintf("Declined from %s to %s", base, scen)
	default:
		return fmt.Sprintf("No change (remains %s)", base)
	}
}

// compareGoals evaluates each goal under baseline and scenario surplus and
// describes the direction and size of the shift. Surplus shifts under $10
// are reported as minimal.
func (ss *ScenarioSimulator) compareGoals(goals []domain.Goal, curIncome, curExpenses, newIncome, newExpenses decimal.Decimal) []domain.GoalFeasibilityComparison {
	if len(goals) == 0 {
		return nil
	}

	comparisons := make([]domain.GoalFeasibilityComparison, 0, len(goals))
	for _, goal := range goals {
		base := ss.Goals.Evaluate(goal, curIncome, curExpenses)
		scen := ss.Goals.Evaluate(goal, newIncome, newExpenses)

		diff := scen.SurplusAfterGoal.Sub(base.SurplusAfterGoal)
		var impact string
		switch {
		case diff.Abs().LessThan(decimal.NewFromInt(10)):
			impact = "Minimal impact"
		case diff.IsNegative():
			impact = fmt.Sprintf("Monthly surplus after this goal drops by $%s", diff.Abs().StringFixed(2))
		default:
			impact = fmt.Sprintf("Monthly surplus after this goal improves by $%s", diff.StringFixed(2))
		}

		changed := base.FeasibilityStatus != scen.FeasibilityStatus
		if changed {
			impact = fmt.Sprintf("Status changes from %s to %s. %s", base.FeasibilityStatus, scen.FeasibilityStatus, impact)
		}

		comparisons = append(comparisons, domain.GoalFeasibilityComparison{
			GoalTitle:      goal.Title,
			BaselineStatus: base.FeasibilityStatus,
			ScenarioStatus: scen.FeasibilityStatus,
			StatusChanged:  changed,
			Impact:         impact,
		})
	}
	return comparisons
}

func classifySeverity(r *domain.ScenarioComparisonReport) domain.ImpactSeverity {
	baseRank := r.Baseline.HealthStatus.Rank()
	scenRank := r.Scenario.HealthStatus.Rank()

	if scenRank < baseRank {
		switch {
		case r.SavingsRateDelta.LessThanOrEqual(decimal.NewFromInt(-20)):
			return domain.ImpactSevere
		case r.SavingsRateDelta.LessThanOrEqual(decimal.NewFromInt(-10)):
			return domain.ImpactModerate
		default:
			return domain.ImpactMinor
		}
	}
	if scenRank > baseRank {
		return domain.ImpactPositive
	}

	switch {
	case r.SavingsRateDelta.Abs().LessThan(decimal.NewFromInt(5)):
		return domain.ImpactMinimal
	case r.SavingsDelta.IsNegative():
		return domain.ImpactMinor
	default:
		return domain.ImpactPositive
	}
}

// feasibilityRank orders goal statuses from worst to best. Deadline Passed
// sits at the bottom since the goal is unreachable either way.
func feasibilityRank(s domain.FeasibilityStatus) int {
	switch s {
	case domain.GoalDeadlinePassed:
		return 0
	case domain.GoalNotFeasible:
		return 1
	case domain.GoalAtRisk:
		return 2
	case domain.GoalFeasible:
		return 3
	case domain.GoalAchieved:
		return 4
	default:
		return 0
	}
}

// buildRecommendations applies each advisory rule independently; rules are
// not mutually exclusive.
func buildRecommendations(r *domain.ScenarioComparisonReport) []string {
	recs := []string{}

	if r.SavingsDelta.IsNegative() {
		recs = append(recs, fmt.Sprintf(
			"This scenario reduces your monthly savings by $%s.", r.SavingsDelta.Abs().StringFixed(2)))
	}

	if r.IncomeDelta.IsNegative() {
		recs = append(recs, fmt.Sprintf(
			"To offset the $%s income reduction, look for expense cuts of a similar size.", r.IncomeDelta.Abs().StringFixed(2)))
	}

	if r.ExpenseDelta.GreaterThan(decimal.Zero) && r.Scenario.SavingsAmount.IsNegative() {
		recs = append(recs, fmt.Sprintf(
			"The added expenses push you into a monthly deficit of $%s. This is not sustainable.",
			r.Scenario.SavingsAmount.Abs().StringFixed(2)))
	}

	worsened := 0
	for _, gc := range r.GoalComparisons {
		if gc.StatusChanged && feasibilityRank(gc.ScenarioStatus) < feasibilityRank(gc.BaselineStatus) {
			worsened++
		}
	}
	if worsened > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d of your goals become harder to reach under this scenario.", worsened))
	}

	if r.SavingsDelta.GreaterThan(decimal.Zero) {
		recs = append(recs, fmt.Sprintf(
			"This scenario improves your monthly savings by $%s. Consider directing the difference toward your goals.",
			r.SavingsDelta.StringFixed(2)))
	}

	if r.Scenario.HealthStatus == domain.HealthPoor || r.Scenario.HealthStatus == domain.HealthCritical {
		recs = append(recs, fmt.Sprintf(
			"With a projected %s financial status, prioritize an emergency fund covering 3-6 months of expenses.",
			r.Scenario.HealthStatus))
	}

	return recs
}
