package dto

import (
	"time"

	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
)

// MonthLayout renders month ends in plan responses.
const MonthLayout = "2006-01-02"

// TransactionInput is one categorized statement row of a predict request
type TransactionInput struct {
	Date        string  `json:"date" validate:"required,statement_date"`
	Reference   string  `json:"reference,omitempty" validate:"max=100"`
	Description string  `json:"description,omitempty"`
	Debit       float64 `json:"debit" validate:"gte=0"`
	Credit      float64 `json:"credit" validate:"gte=0"`
	Channel     string  `json:"channel,omitempty" validate:"max=50"`
	Category    string  `json:"category" validate:"max=50"`
}

// PredictBudgetRequest carries a categorized history and the month's income
type PredictBudgetRequest struct {
	Income        float64            `json:"income" validate:"positive_amount,money"`
	TargetSavings float64            `json:"target_savings" validate:"money"`
	Categorize    bool               `json:"categorize,omitempty"`
	Transactions  []TransactionInput `json:"transactions" validate:"required,min=1,dive"`
}

// PlanFromHistoryRequest plans from the transactions already stored for a user
type PlanFromHistoryRequest struct {
	Income        float64 `json:"income" validate:"positive_amount,money"`
	TargetSavings float64 `json:"target_savings" validate:"money"`
}

// ModelSummaryResponse describes how one category was forecast
type ModelSummaryResponse struct {
	Order          string  `json:"order"`
	AIC            float64 `json:"aic"`
	Forecast       float64 `json:"forecast"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
	Fallback       bool    `json:"fallback"`
	FallbackReason string  `json:"fallback_reason,omitempty"`
	Stationary     bool    `json:"stationary"`
}

// BudgetPlanResponse is the JSON form of a models.BudgetPlan
type BudgetPlanResponse struct {
	ForecastMonth       string                          `json:"forecast_month"`
	Months              []string                        `json:"months"`
	Forecasts           map[string]float64              `json:"forecasts"`
	ModelSummary        map[string]ModelSummaryResponse `json:"model_summary"`
	Budget              map[string]float64              `json:"budget"`
	CategoryPercent     map[string]float64              `json:"category_percent"`
	Income              float64                         `json:"income"`
	TargetSavings       float64                         `json:"target_savings"`
	Available           float64                         `json:"available"`
	TotalForecast       float64                         `json:"total_forecast"`
	TotalBudget         float64                         `json:"total_budget"`
	Deficit             float64                         `json:"deficit"`
	Outcome             string                          `json:"outcome,omitempty"`
	Residual            float64                         `json:"residual"`
	Passes              int                             `json:"passes"`
	Steps               []models.AllocationStep         `json:"steps,omitempty"`
	Failures            []models.ForecastFailure        `json:"failures,omitempty"`
	InsufficientHistory bool                            `json:"insufficient_history"`
}

// NewBudgetPlanResponse converts a plan. ModelSummary is nil when no
// forecast ran.
func NewBudgetPlanResponse(plan *models.BudgetPlan) BudgetPlanResponse {
	resp := BudgetPlanResponse{
		ForecastMonth:       plan.ForecastMonth.Format(MonthLayout),
		Months:              make([]string, 0, len(plan.Months)),
		Forecasts:           plan.Forecasts,
		Budget:              plan.Budget,
		CategoryPercent:     plan.CategoryPercent,
		Income:              plan.Income,
		TargetSavings:       plan.TargetSavings,
		Available:           plan.Available,
		TotalForecast:       plan.TotalForecast,
		TotalBudget:         plan.TotalBudget(),
		Deficit:             plan.Deficit,
		Outcome:             string(plan.Outcome),
		Residual:            plan.Residual,
		Passes:              plan.Passes,
		Steps:               plan.Steps,
		Failures:            plan.Failures,
		InsufficientHistory: plan.InsufficientHistory,
	}

	for _, month := range plan.Months {
		resp.Months = append(resp.Months, month.Format(MonthLayout))
	}

	if plan.Summary != nil {
		resp.ModelSummary = make(map[string]ModelSummaryResponse, len(plan.Summary))
		for category, s := range plan.Summary {
			resp.ModelSummary[category] = ModelSummaryResponse{
				Order:          s.Order.String(),
				AIC:            s.AIC,
				Forecast:       s.Forecast,
				LowerBound:     s.LowerBound,
				UpperBound:     s.UpperBound,
				Fallback:       s.Fallback,
				FallbackReason: s.FallbackReason,
				Stationary:     s.Stationary,
			}
		}
	}

	return resp
}

// BudgetEntryResponse is one stored budget row
type BudgetEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Month     string    `json:"month"`
	Category  string    `json:"category"`
	Allocated string    `json:"allocated"`
	Forecast  string    `json:"forecast"`
	CreatedAt time.Time `json:"created_at"`
}

// ListBudgetsResponse lists stored budget rows and the months that have any
type ListBudgetsResponse struct {
	Budgets []BudgetEntryResponse `json:"budgets"`
	Months  []string              `json:"months"`
}

// NewBudgetEntryResponses converts stored entries, amounts as fixed 2-decimal strings.
func NewBudgetEntryResponses(entries []models.BudgetEntry) []BudgetEntryResponse {
	out := make([]BudgetEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BudgetEntryResponse{
			ID:        e.ID,
			Month:     e.Month,
			Category:  e.Category,
			Allocated: e.Allocated.StringFixed(2),
			Forecast:  e.Forecast.StringFixed(2),
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

// CategorySummaryResponse is the debit total of one category over a date range
type CategorySummaryResponse struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transaction_count"`
	TotalAmount      string `json:"total_amount"`
	AverageAmount    string `json:"average_amount"`
}

// GenerateHistoryResponse reports a synthetic history run
type GenerateHistoryResponse struct {
	Message             string `json:"message"`
	TransactionsCreated int    `json:"transactions_created"`
	Months              int    `json:"months"`
	Start               string `json:"start"`
	End                 string `json:"end"`
}

// PlanMeta carries the notices of a plan response
type PlanMeta struct {
	Notices []errors.Notice `json:"notices,omitempty"`
}
