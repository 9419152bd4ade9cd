package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalFeasibilityEvaluator projects whether savings goals are achievable
// given the current monthly surplus and each goal's deadline. The clock is
// injectable so deadline math is deterministic under test.
type GoalFeasibilityEvaluator struct {
	Now func() time.Time
}

// NewGoalFeasibilityEvaluator creates an evaluator using the system clock
func NewGoalFeasibilityEvaluator() *GoalFeasibilityEvaluator {
	return &GoalFeasibilityEvaluator{Now: time.Now}
}

// MonthsRemaining returns the count of whole months between now and the
// deadline. A partial month (deadline day-of-month earlier than today's) does
// not count. Never negative; a deadline at or before now yields 0.
func MonthsRemaining(now, deadline time.Time) int {
	if !deadline.After(now) {
		return 0
	}
	months := (deadline.Year()-now.Year())*12 + int(deadline.Month()) - int(now.Month())
	if deadline.Day() < now.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Evaluate projects a single goal against the surplus implied by the given
// monthly income and expenses.
func (ge *GoalFeasibilityEvaluator) Evaluate(goal domain.Goal, monthlyIncome, monthlyExpenses decimal.Decimal) domain.GoalFeasibilityReport {
	now := ge.Now()
	monthsRemaining := MonthsRemaining(now, goal.Deadline)

	remaining := goal.RemainingAmount()
	required := remaining
	if monthsRemaining > 0 {
		required = remaining.Div(decimal.NewFromInt(int64(monthsRemaining)))
	}

	surplus := monthlyIncome.Sub(monthlyExpenses)
	surplusAfter := surplus.Sub(required)

	score := hundred
	if required.GreaterThan(decimal.Zero) {
		score = surplus.Div(required).Mul(hundred)
	}

	report := domain.GoalFeasibilityReport{
		GoalTitle:              goal.Title,
		RemainingAmount:        remaining,
		MonthsRemaining:        monthsRemaining,
		RequiredMonthlySavings: required,
		AvailableSurplus:       surplus,
		SurplusAfterGoal:       surplusAfter,
		FeasibilityScore:       score,
	}
	report.FeasibilityStatus, report.Recommendation = classifyGoal(&goal, &report)
	return report
}

// classifyGoal decides the feasibility status. Branch order matters: an
// expired deadline wins over everything, then an already-met target.
func classifyGoal(goal *domain.Goal, r *domain.GoalFeasibilityReport) (domain.FeasibilityStatus, string) {
	switch {
	case r.MonthsRemaining <= 0:
		return domain.GoalDeadlinePassed, fmt.Sprintf(
			"The deadline for '%s' has passed. Set a new target date to keep working toward this goal.", goal.Title)

	case r.RemainingAmount.LessThanOrEqual(decimal.Zero):
		return domain.GoalAchieved, fmt.Sprintf(
			"Congratulations! You have already saved $%s toward '%s', meeting your target.",
			goal.CurrentSaved.StringFixed(2), goal.Title)

	case r.SurplusAfterGoal.GreaterThanOrEqual(r.AvailableSurplus.Mul(decimal.NewFromFloat(0.3))):
		return domain.GoalFeasible, fmt.Sprintf(
			"Saving $%s per month toward '%s' fits comfortably within your budget, leaving $%s of monthly surplus.",
			r.RequiredMonthlySavings.StringFixed(2), goal.Title, r.SurplusAfterGoal.StringFixed(2))

	case r.SurplusAfterGoal.GreaterThanOrEqual(decimal.Zero):
		return domain.GoalFeasible, fmt.Sprintf(
			"You can reach '%s' by saving $%s per month, but it will consume most of your $%s monthly surplus. Budget carefully.",
			goal.Title, r.RequiredMonthlySavings.StringFixed(2), r.AvailableSurplus.StringFixed(2))

	case r.SurplusAfterGoal.GreaterThanOrEqual(r.AvailableSurplus.Mul(decimal.NewFromFloat(-0.2))):
		return domain.GoalAtRisk, fmt.Sprintf(
			"Reaching '%s' requires $%s per month, slightly more than your $%s surplus. Small spending cuts could close the gap.",
			goal.Title, r.RequiredMonthlySavings.StringFixed(2), r.AvailableSurplus.StringFixed(2))

	case r.AvailableSurplus.LessThanOrEqual(decimal.Zero):
		return domain.GoalNotFeasible, fmt.Sprintf(
			"You currently have no monthly surplus. Reduce expenses or increase income before committing to '%s'.", goal.Title)

	default:
		return domain.GoalNotFeasible, fmt.Sprintf(
			"Saving $%s per month for '%s' far exceeds your $%s monthly surplus. Consider extending the deadline or lowering the target.",
			r.RequiredMonthlySavings.StringFixed(2), goal.Title, r.AvailableSurplus.StringFixed(2))
	}
}

// EvaluateAll evaluates multiple goals in deadline order. Each goal's own
// numbers use the full surplus; the running surplus is only used to detect
// collective infeasibility, in which case a warning is appended to every
// goal still marked Feasible.
func (ge *GoalFeasibilityEvaluator) EvaluateAll(goals []domain.Goal, monthlyIncome, monthlyExpenses decimal.Decimal) []domain.GoalFeasibilityReport {
	ordered := sortByDeadline(goals)
	surplus := monthlyIncome.Sub(monthlyExpenses)

	reports := make([]domain.GoalFeasibilityReport, 0, len(ordered))
	totalRequired := decimal.Zero
	remainingSurplus := surplus
	for _, goal := range ordered {
		report := ge.Evaluate(goal, monthlyIncome, monthlyExpenses)
		if report.FeasibilityStatus != domain.GoalAchieved && report.FeasibilityStatus != domain.GoalDeadlinePassed {
			totalRequired = totalRequired.Add(report.RequiredMonthlySavings)
			remainingSurplus = remainingSurplus.Sub(report.RequiredMonthlySavings)
		}
		reports = append(reports, report)
	}

	if totalRequired.GreaterThan(surplus) {
		warning := fmt.Sprintf(
			" Note: your goals together require $%s per month, which exceeds your $%s surplus; you may not be able to fund them all at once.",
			totalRequired.StringFixed(2), surplus.StringFixed(2))
		for i := range reports {
			if reports[i].FeasibilityStatus == domain.GoalFeasible {
				reports[i].Recommendation += warning
			}
		}
	}

	return reports
}

// EvaluateAllSequential is the strict allocation mode: goals are funded in
// deadline order and each evaluation sees only the surplus left after the
// goals ahead of it. Earlier deadlines therefore crowd out later ones.
func (ge *GoalFeasibilityEvaluator) EvaluateAllSequential(goals []domain.Goal, monthlyIncome, monthlyExpenses decimal.Decimal) []domain.GoalFeasibilityReport {
	ordered := sortByDeadline(goals)

	reports := make([]domain.GoalFeasibilityReport, 0, len(ordered))
	allocated := decimal.Zero
	for _, goal := range ordered {
		report := ge.Evaluate(goal, monthlyIncome, monthlyExpenses.Add(allocated))
		if report.FeasibilityStatus != domain.GoalAchieved && report.FeasibilityStatus != domain.GoalDeadlinePassed {
			allocated = allocated.Add(report.RequiredMonthlySavings)
		}
		reports = append(reports, report)
	}
	return reports
}

func sortByDeadline(goals []domain.Goal) []domain.Goal {
	ordered := make([]domain.Goal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Deadline.Before(ordered[j].Deadline)
	})
	return ordered
}
