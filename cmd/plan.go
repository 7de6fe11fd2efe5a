package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/Swoyesh/FinSense/internal/config"
	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/services"

	"github.com/spf13/cobra"
)

var (
	flagPlanFile       string
	flagPlanIncome     float64
	flagPlanSavings    float64
	flagPlanJSON       bool
	flagPlanCategorize bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan next month's budget from a statement file",
	Long: "Reads a CSV or XLSX statement with Date Time, Dr., Cr. and Category columns,\n" +
		"forecasts each category and fits the total to income minus savings.",
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagPlanFile, "file", "f", "", "Statement file (.csv or .xlsx)")
	planCmd.Flags().Float64Var(&flagPlanIncome, "income", 0, "Income for the planned month")
	planCmd.Flags().Float64Var(&flagPlanSavings, "savings", 0, "Savings target for the planned month")
	planCmd.Flags().BoolVar(&flagPlanJSON, "json", false, "Print the plan as JSON")
	planCmd.Flags().BoolVar(&flagPlanCategorize, "categorize", false, "Label rows with a blank Category from their description")
	_ = planCmd.MarkFlagRequired("file")
	_ = planCmd.MarkFlagRequired("income")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	logger := setupLogger(cfg)

	file, err := os.Open(flagPlanFile)
	if err != nil {
		return err
	}
	defer file.Close()

	var opts []forecast.TableOption
	if flagPlanCategorize {
		opts = append(opts, forecast.WithCategorizer(services.NewCategoryService()))
	}

	records, err := forecast.ReadStatement(flagPlanFile, file, opts...)
	if err != nil {
		return err
	}

	planner := services.NewBudgetPlannerService(services.PlannerConfigFromConfig(cfg), services.NoopMetrics{}, logger)
	plan, err := planner.Plan(cmd.Context(), records, flagPlanIncome, flagPlanSavings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagPlanJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewBudgetPlanResponse(plan))
	}
	return renderPlan(out, plan, cfg.Budget.MinHistoryRows)
}

// renderPlan prints the plan as an aligned table followed by the totals.
// minMonths is the history length the planner was configured to require.
func renderPlan(w io.Writer, plan *models.BudgetPlan, minMonths int) error {
	if plan.InsufficientHistory {
		_, err := fmt.Fprintf(w, "\n  Only %d month(s) of history; at least %d are needed to plan.\n", len(plan.Months), minMonths)
		return err
	}

	categories := make([]string, 0, len(plan.Budget))
	for category := range plan.Budget {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Fprintf(w, "\n  BUDGET  %s\n\n", plan.ForecastMonth.Format("January 2006"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Category\tOrder\tForecast\tLower\tUpper\tBudget\t")
	for _, category := range categories {
		summary := plan.Summary[category]
		order := summary.Order.String()
		if summary.Fallback {
			order = "mean"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			category, order, plan.Forecasts[category], summary.LowerBound, summary.UpperBound, plan.Budget[category])
	}
	fmt.Fprintf(tw, "Total\t\t%.2f\t\t\t%.2f\t\n", plan.TotalForecast, plan.TotalBudget())
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n  Available %.2f  Outcome %s", plan.Available, plan.Outcome)
	if plan.Unresolved() {
		fmt.Fprintf(w, "  Residual %.2f after %d passes", plan.Residual, plan.Passes)
	}
	fmt.Fprintln(w)

	for _, f := range plan.Failures {
		fmt.Fprintf(w, "  %s: %s, historical mean used\n", f.Category, f.Reason)
	}
	return nil
}
