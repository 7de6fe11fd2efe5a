package models

import (
	"fmt"
	"time"
)

// ModelOrder is an ARIMA (p, d, q) order.
type ModelOrder struct {
	P int `json:"p"`
	D int `json:"d"`
	Q int `json:"q"`
}

func (o ModelOrder) String() string {
	return fmt.Sprintf("(%d,%d,%d)", o.P, o.D, o.Q)
}

// IsZero reports whether o is the (0,0,0) fallback order.
func (o ModelOrder) IsZero() bool {
	return o.P == 0 && o.D == 0 && o.Q == 0
}

// Fallback reasons recorded on a ModelSummary.
const (
	FallbackInsufficientObservations = "insufficient_observations"
	FallbackNegativeForecast         = "negative_forecast"
	FallbackFitFailed                = "fit_failed"
)

// ModelSummary describes how one category's forecast was produced.
type ModelSummary struct {
	Order          ModelOrder `json:"order"`
	AIC            float64    `json:"aic"`
	Forecast       float64    `json:"forecast"`
	LowerBound     float64    `json:"lower_bound"`
	UpperBound     float64    `json:"upper_bound"`
	Fallback       bool       `json:"fallback"`
	FallbackReason string     `json:"fallback_reason,omitempty"`
	Stationary     bool       `json:"stationary"`
}

// ForecastFailure records a category whose model could not be fitted.
type ForecastFailure struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// AllocationOutcome is the terminal state of the deficit reduction.
type AllocationOutcome string

const (
	OutcomeSurplus  AllocationOutcome = "surplus"
	OutcomeBalanced AllocationOutcome = "balanced"
	OutcomeResolved AllocationOutcome = "resolved"
	OutcomeStalled  AllocationOutcome = "stalled"
)

// AllocationStep is one deduction applied by the reduction loop.
type AllocationStep struct {
	Pass          int     `json:"pass"`
	Rank          int     `json:"rank"`
	Category      string  `json:"category"`
	Percent       float64 `json:"percent"`
	Before        float64 `json:"before"`
	Deduction     float64 `json:"deduction"`
	After         float64 `json:"after"`
	DeficitBefore float64 `json:"deficit_before"`
	DeficitAfter  float64 `json:"deficit_after"`
}

// BudgetPlan is the result of one forecast-and-allocate run.
type BudgetPlan struct {
	ForecastMonth       time.Time               `json:"forecast_month"`
	Months              []time.Time             `json:"months,omitempty"`
	Forecasts           map[string]float64      `json:"forecasts"`
	Summary             map[string]ModelSummary `json:"model_summary"`
	Budget              map[string]float64      `json:"budget"`
	CategoryPercent     map[string]float64      `json:"category_percent"`
	Income              float64                 `json:"income"`
	TargetSavings       float64                 `json:"target_savings"`
	Available           float64                 `json:"available"`
	TotalForecast       float64                 `json:"total_forecast"`
	InitialDeficit      float64                 `json:"initial_deficit"`
	Deficit             float64                 `json:"deficit"`
	Outcome             AllocationOutcome       `json:"outcome,omitempty"`
	Residual            float64                 `json:"residual"`
	Passes              int                     `json:"passes"`
	Steps               []AllocationStep        `json:"steps,omitempty"`
	Failures            []ForecastFailure       `json:"failures,omitempty"`
	InsufficientHistory bool                    `json:"insufficient_history"`
}

// Unresolved reports whether the plan still spends more than is available.
func (p *BudgetPlan) Unresolved() bool {
	return p.Outcome == OutcomeStalled && p.Residual < 0
}

// TotalBudget sums the allocated amounts.
func (p *BudgetPlan) TotalBudget() float64 {
	var total float64
	for _, v := range p.Budget {
		total += v
	}
	return total
}
