package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/budgetpulse/budgetpulse/internal/calculation"
	"github.com/budgetpulse/budgetpulse/internal/compare"
	"github.com/budgetpulse/budgetpulse/internal/config"
	"github.com/budgetpulse/budgetpulse/internal/domain"
	"github.com/budgetpulse/budgetpulse/internal/monthly"
	"github.com/budgetpulse/budgetpulse/internal/output"
	"github.com/budgetpulse/budgetpulse/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements monthly.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "budgetpulse %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "budgetpulse",
	Short: "Personal budget analysis CLI",
	Long:  "Financial health, budget adherence, spending insight, and goal feasibility analysis over a YAML ledger",
}

func loadLedger(path string) *domain.Ledger {
	parser := config.NewInputParser()
	ledger, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return ledger
}

var healthCmd = &cobra.Command{
	Use:   "health [ledger-file]",
	Short: "Compute the financial health report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])

		calc := calculation.NewHealthCalculator()
		report := calc.Calculate(ledger.Profile.MonthlyIncome, ledger.ExpenseAmounts())

		printReport(cmd, &report, func() string {
			return output.NewConsole().FormatHealth(&report)
		})
	},
}

var budgetCmd = &cobra.Command{
	Use:   "budget [ledger-file]",
	Short: "Evaluate spending against per-category budget limits",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])
		if len(ledger.Budgets) == 0 {
			log.Fatal("ledger defines no budget limits")
		}

		actuals := make(map[domain.ExpenseCategory]decimal.Decimal)
		for _, e := range ledger.Expenses {
			actuals[e.Category] = actuals[e.Category].Add(e.Amount)
		}

		evaluator := calculation.NewBudgetAdherenceEvaluator()
		rows := make([]output.BudgetRow, 0, len(ledger.Budgets))
		for _, category := range domain.ExpenseCategories {
			limit, ok := ledger.Budgets[category]
			if !ok {
				continue
			}
			rows = append(rows, output.BudgetRow{
				Category: category,
				Report:   evaluator.Evaluate(actuals[category], limit),
			})
		}

		printReport(cmd, rows, func() string {
			return output.NewConsole().FormatBudgets(rows)
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ledger-file]",
	Short: "Analyze spending behavior and generate insights",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])
		if len(ledger.Expenses) == 0 {
			log.Fatal("ledger holds no expenses to analyze")
		}

		analyzer := calculation.NewSpendingBehaviorAnalyzer()
		report := analyzer.Analyze(ledger.Expenses)

		printReport(cmd, &report, func() string {
			return output.NewConsole().FormatSpending(&report)
		})
	},
}

var goalsCmd = &cobra.Command{
	Use:   "goals [ledger-file]",
	Short: "Evaluate savings goal feasibility",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])
		if len(ledger.Goals) == 0 {
			log.Fatal("ledger defines no goals")
		}

		evaluator := calculation.NewGoalFeasibilityEvaluator()
		expenses := domain.TotalExpenses(ledger.Expenses)

		sequential, _ := cmd.Flags().GetBool("sequential")
		var reports []domain.GoalFeasibilityReport
		if sequential {
			reports = evaluator.EvaluateAllSequential(ledger.Goals, ledger.Profile.MonthlyIncome, expenses)
		} else {
			reports = evaluator.EvaluateAll(ledger.Goals, ledger.Profile.MonthlyIncome, expenses)
		}

		printReport(cmd, reports, func() string {
			return output.NewConsole().FormatGoals(reports)
		})
	},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario [ledger-file]",
	Short: "Compare the current finances against a hypothetical scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])

		income := ledger.Profile.MonthlyIncome
		expenses := domain.TotalExpenses(ledger.Expenses)

		incomeCut, _ := cmd.Flags().GetFloat64("income-cut")
		expenseAdd, _ := cmd.Flags().GetFloat64("expense-add")
		newIncome, _ := cmd.Flags().GetFloat64("income")
		newExpenses, _ := cmd.Flags().GetFloat64("expenses")
		name, _ := cmd.Flags().GetString("name")

		simulator := compare.NewScenarioSimulator()
		var report domain.ScenarioComparisonReport
		switch {
		case incomeCut > 0:
			report = simulator.SimulateIncomeReduction(income, expenses, decimal.NewFromFloat(incomeCut), ledger.Goals)
		case expenseAdd > 0:
			report = simulator.SimulateExpenseIncrease(income, expenses, decimal.NewFromFloat(expenseAdd), ledger.Goals)
		case newIncome > 0 || newExpenses > 0:
			scenIncome := income
			if newIncome > 0 {
				scenIncome = decimal.NewFromFloat(newIncome)
			}
			scenExpenses := expenses
			if newExpenses > 0 {
				scenExpenses = decimal.NewFromFloat(newExpenses)
			}
			if name == "" {
				name = "custom scenario"
			}
			report = simulator.SimulateCustom(income, expenses, scenIncome, scenExpenses, name, ledger.Goals)
		default:
			log.Fatal("specify --income-cut, --expense-add, or --income/--expenses")
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			text, err := (&compare.JSONFormatter{Pretty: true}).Format(&report)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "csv":
			text, err := (&compare.CSVFormatter{}).Format(&report)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)
		default:
			fmt.Print((&compare.TableFormatter{}).Format(&report))
		}
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly [ledger-file]",
	Short: "Month-over-month analysis with recommendations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := loadLedger(args[0])

		now := time.Now()
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		if month < 1 || month > 12 {
			log.Fatalf("month must be between 1 and 12, got %d", month)
		}

		store := monthly.NewLedgerStore(ledger.UserID, ledger.Expenses, ledger.Incomes)
		reporter := monthly.NewReporter(store)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			reporter.SetLogger(simpleCLILogger{})
		}

		report, err := reporter.GetMonthlyAnalysis(context.Background(), ledger.UserID, year, month)
		if err != nil {
			log.Fatal(err)
		}

		printReport(cmd, report, func() string {
			return output.NewConsole().FormatMonthly(report)
		})
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [ledger-file]",
	Short: "Interactive terminal dashboard",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

// printReport writes either the console rendering or indented JSON,
// depending on the --format flag.
func printReport(cmd *cobra.Command, report any, console func() string) {
	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		text, err := output.JSON(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
		return
	}
	fmt.Print(console())
}

func main() {
	for _, cmd := range []*cobra.Command{healthCmd, budgetCmd, analyzeCmd, goalsCmd, monthlyCmd} {
		cmd.Flags().String("format", "table", "Output format: table or json")
	}
	scenarioCmd.Flags().String("format", "table", "Output format: table, json, or csv")
	scenarioCmd.Flags().Float64("income-cut", 0, "Income reduction percentage (e.g. 10 for 10%)")
	scenarioCmd.Flags().Float64("expense-add", 0, "Flat monthly expense increase in dollars")
	scenarioCmd.Flags().Float64("income", 0, "Custom scenario monthly income")
	scenarioCmd.Flags().Float64("expenses", 0, "Custom scenario monthly expenses")
	scenarioCmd.Flags().String("name", "", "Custom scenario name")
	goalsCmd.Flags().Bool("sequential", false, "Allocate surplus to goals sequentially in deadline order")
	monthlyCmd.Flags().Int("year", 0, "Analysis year (defaults to current)")
	monthlyCmd.Flags().Int("month", 0, "Analysis month 1-12 (defaults to current)")
	monthlyCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(healthCmd, budgetCmd, analyzeCmd, goalsCmd, scenarioCmd, monthlyCmd, dashboardCmd, versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
