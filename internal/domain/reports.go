package domain

import (
	"github.com/shopspring/decimal"
)

// HealthStatus classifies overall financial health from the health score.
type HealthStatus string

const (
	HealthCritical  HealthStatus = "Critical"
	HealthPoor      HealthStatus = "Poor"
	HealthFair      HealthStatus = "Fair"
	HealthGood      HealthStatus = "Good"
	HealthExcellent HealthStatus = "Excellent"
)

// Rank orders health statuses from Critical (1) to Excellent (5).
func (s HealthStatus) Rank() int {
	switch s {
	case HealthCritical:
		return 1
	case HealthPoor:
		return 2
	case HealthFair:
		return 3
	case HealthGood:
		return 4
	case HealthExcellent:
		return 5
	default:
		return 0
	}
}

// FinancialHealthReport is the output of the health calculator. It is
// recomputed on every call and never persisted by the engine.
type FinancialHealthReport struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	SavingsAmount  decimal.Decimal `json:"savingsAmount"`
	SavingsRate    decimal.Decimal `json:"savingsRate"`
	ExpenseRatio   decimal.Decimal `json:"expenseRatio"`
	HealthScore    decimal.Decimal `json:"healthScore"`
	HealthStatus   HealthStatus    `json:"healthStatus"`
	Recommendation string          `json:"recommendation"`
}

// BudgetAdherenceReport compares actual spending to a limit.
type BudgetAdherenceReport struct {
	Actual          decimal.Decimal `json:"actual"`
	Limit           decimal.Decimal `json:"limit"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variancePercent"`
	IsWithinBudget  bool            `json:"isWithinBudget"`
	Status          string          `json:"status"`
}

// SpendingBehaviorReport aggregates an expense list into breakdowns and
// textual insights.
type SpendingBehaviorReport struct {
	CategoryBreakdown map[ExpenseCategory]decimal.Decimal `json:"categoryBreakdown"`
	TopCategory       ExpenseCategory                     `json:"topCategory"`
	TopCategoryAmount decimal.Decimal                     `json:"topCategoryAmount"`
	AverageAmount     decimal.Decimal                     `json:"averageAmount"`
	TransactionCount  int                                 `json:"transactionCount"`
	TypeDistribution  map[ExpenseType]int                 `json:"typeDistribution"`
	Insights          []string                            `json:"insights"`
}

// FeasibilityStatus classifies whether a savings goal is achievable.
type FeasibilityStatus string

const (
	GoalDeadlinePassed FeasibilityStatus = "Deadline Passed"
	GoalAchieved       FeasibilityStatus = "Achieved"
	GoalFeasible       FeasibilityStatus = "Feasible"
	GoalAtRisk         FeasibilityStatus = "At Risk"
	GoalNotFeasible    FeasibilityStatus = "Not Feasible"
)

// GoalFeasibilityReport projects whether a goal can be reached before its
// deadline given the current monthly surplus.
type GoalFeasibilityReport struct {
	GoalTitle              string            `json:"goalTitle"`
	RemainingAmount        decimal.Decimal   `json:"remainingAmount"`
	MonthsRemaining        int               `json:"monthsRemaining"`
	RequiredMonthlySavings decimal.Decimal   `json:"requiredMonthlySavings"`
	AvailableSurplus       decimal.Decimal   `json:"availableSurplus"`
	SurplusAfterGoal       decimal.Decimal   `json:"surplusAfterGoal"`
	FeasibilityScore       decimal.Decimal   `json:"feasibilityScore"`
	FeasibilityStatus      FeasibilityStatus `json:"feasibilityStatus"`
	Recommendation         string            `json:"recommendation"`
}

// ImpactSeverity grades how hard a scenario hits the baseline finances.
type ImpactSeverity string

const (
	ImpactSevere   ImpactSeverity = "Severe"
	ImpactModerate ImpactSeverity = "Moderate"
	ImpactMinor    ImpactSeverity = "Minor"
	ImpactMinimal  ImpactSeverity = "Minimal"
	ImpactPositive ImpactSeverity = "Positive"
)

// GoalFeasibilityComparison pairs a goal's baseline and scenario evaluations.
type GoalFeasibilityComparison struct {
	GoalTitle      string            `json:"goalTitle"`
	BaselineStatus FeasibilityStatus `json:"baselineStatus"`
	ScenarioStatus FeasibilityStatus `json:"scenarioStatus"`
	StatusChanged  bool              `json:"statusChanged"`
	Impact         string            `json:"impact"`
}

// ScenarioComparisonReport compares a baseline financial state against a
// hypothetical one.
type ScenarioComparisonReport struct {
	ScenarioName       string                      `json:"scenarioName"`
	Baseline           FinancialHealthReport       `json:"baseline"`
	Scenario           FinancialHealthReport       `json:"scenario"`
	IncomeDelta        decimal.Decimal             `json:"incomeDelta"`
	ExpenseDelta       decimal.Decimal             `json:"expenseDelta"`
	SavingsDelta       decimal.Decimal             `json:"savingsDelta"`
	SavingsRateDelta   decimal.Decimal             `json:"savingsRateDelta"`
	HealthStatusChange string                      `json:"healthStatusChange"`
	GoalComparisons    []GoalFeasibilityComparison `json:"goalComparisons,omitempty"`
	ImpactSeverity     ImpactSeverity              `json:"impactSeverity"`
	Recommendations    []string                    `json:"recommendations"`
}

// RecommendationType drives how the frontend renders a recommendation card.
type RecommendationType string

const (
	RecommendationSuccess RecommendationType = "success"
	RecommendationWarning RecommendationType = "warning"
	RecommendationTip     RecommendationType = "tip"
)

// Recommendation is a single rendered tip for the monthly analysis view.
type Recommendation struct {
	Type             RecommendationType `json:"type"`
	Icon             string             `json:"icon"`
	Title            string             `json:"title"`
	Message          string             `json:"message"`
	HighlightedValue string             `json:"highlightedValue"`
}

// CategorySpending is one row of the monthly category breakdown.
type CategorySpending struct {
	Category   ExpenseCategory `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthlyAnalysisReport holds current-month totals, month-over-month percent
// changes, and generated recommendations.
type MonthlyAnalysisReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Savings       decimal.Decimal `json:"savings"`
	SavingsRate   decimal.Decimal `json:"savingsRate"`

	IncomeChange      decimal.Decimal `json:"incomeChange"`
	ExpensesChange    decimal.Decimal `json:"expensesChange"`
	SavingsChange     decimal.Decimal `json:"savingsChange"`
	SavingsRateChange decimal.Decimal `json:"savingsRateChange"`

	CategoryBreakdown []CategorySpending `json:"categoryBreakdown"`
	Recommendations   []Recommendation   `json:"recommendations"`
	HasSufficientData bool               `json:"hasSufficientData"`
}
