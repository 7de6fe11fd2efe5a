package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Swoyesh/FinSense/internal/allocation"
	"github.com/Swoyesh/FinSense/internal/config"
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"
)

// PlannerConfig holds the knobs of one planner instance.
type PlannerConfig struct {
	Forecast       forecast.Options
	Policy         allocation.Policy
	Workers        int
	MinHistoryRows int
}

// PlannerConfigFromConfig builds the planner settings from the application config.
func PlannerConfigFromConfig(cfg *config.Config) PlannerConfig {
	return PlannerConfig{
		Forecast: forecast.Options{
			MaxP:              cfg.Forecast.MaxP,
			MaxD:              cfg.Forecast.MaxD,
			MaxQ:              cfg.Forecast.MaxQ,
			MinObservations:   cfg.Forecast.MinObservations,
			ConfidenceLevel:   cfg.Forecast.ConfidenceLevel,
			StationarityAlpha: cfg.Forecast.StationarityAlpha,
		},
		Policy:         allocation.PolicyFromConfig(cfg.Allocation),
		Workers:        cfg.Forecast.Workers,
		MinHistoryRows: cfg.Budget.MinHistoryRows,
	}
}

// DefaultPlannerConfig is the (3,3,3) search with the default allocation policy.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Forecast:       forecast.DefaultOptions(),
		Policy:         allocation.DefaultPolicy(),
		Workers:        4,
		MinHistoryRows: 3,
	}
}

type budgetPlannerService struct {
	forecaster *forecast.Forecaster
	cfg        PlannerConfig
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewBudgetPlannerService creates a planner. A nil metrics recorder discards
// measurements and a nil logger uses slog.Default.
func NewBudgetPlannerService(cfg PlannerConfig, metrics MetricsRecorderInterface, logger *slog.Logger) BudgetPlannerServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &budgetPlannerService{
		forecaster: forecast.NewForecaster(cfg.Forecast, logger),
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// Plan aggregates records and plans the month after the last one seen.
func (s *budgetPlannerService) Plan(ctx context.Context, records []forecast.Record, income, targetSavings float64) (*models.BudgetPlan, error) {
	matrix, err := forecast.Aggregate(records)
	if err != nil {
		s.metrics.IncrementCounter(MetricForecastRun, map[string]string{"status": "invalid_input"})
		return nil, err
	}
	return s.PlanMatrix(ctx, matrix, income, targetSavings)
}

// PlanMatrix forecasts every category of matrix and fits the forecasts into
// income minus targetSavings. Too short a history yields an empty plan with
// InsufficientHistory set, never an error.
func (s *budgetPlannerService) PlanMatrix(ctx context.Context, matrix *forecast.MonthlyMatrix, income, targetSavings float64) (*models.BudgetPlan, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricForecastDuration, time.Since(start))
	}()

	plan := &models.BudgetPlan{
		ForecastMonth: forecast.NextMonthEnd(matrix.LastMonth()),
		Months:        append([]time.Time(nil), matrix.Months...),
		Income:        income,
		TargetSavings: targetSavings,
		Available:     income - targetSavings,
	}

	if matrix.Rows() < s.cfg.MinHistoryRows {
		plan.InsufficientHistory = true
		plan.Forecasts = map[string]float64{}
		plan.Budget = map[string]float64{}
		plan.CategoryPercent = map[string]float64{}
		s.logger.Warn("Not enough monthly history to build a budget",
			"months", matrix.Rows(),
			"required", s.cfg.MinHistoryRows,
		)
		s.metrics.IncrementCounter(MetricForecastRun, map[string]string{"status": "insufficient_history"})
		return plan, nil
	}

	batch, err := s.forecaster.ForecastMatrix(ctx, matrix, s.cfg.Workers)
	if err != nil {
		s.metrics.IncrementCounter(MetricForecastRun, map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to forecast categories: %w", err)
	}

	for _, failure := range batch.Failures {
		s.metrics.IncrementCounter(MetricModelFitFailure, map[string]string{"reason": "no_order"})
		s.logger.Warn("Model fit failed", "category", failure.Category, "reason", failure.Reason)
	}
	for _, summary := range batch.Summary {
		if summary.Fallback {
			s.metrics.IncrementCounter(MetricForecastFallback, map[string]string{"reason": summary.FallbackReason})
		}
	}

	res := allocation.Allocate(batch.Forecasts, income, targetSavings, s.cfg.Policy)

	plan.Forecasts = res.Forecasts
	plan.Summary = batch.Summary
	plan.Budget = res.Budget
	plan.CategoryPercent = res.CategoryPercent
	plan.TotalForecast = res.TotalForecast
	plan.InitialDeficit = res.InitialDeficit
	plan.Deficit = res.Deficit
	plan.Outcome = res.Outcome
	plan.Residual = res.Residual()
	plan.Passes = res.Passes
	plan.Steps = res.Steps
	plan.Failures = batch.Failures

	if plan.Unresolved() {
		s.logger.Warn("Budget deficit could not be resolved",
			"residual", plan.Residual,
			"passes", plan.Passes,
		)
	}

	s.metrics.IncrementCounter(MetricBudgetAllocation, map[string]string{"outcome": string(res.Outcome)})
	s.metrics.RecordGauge(MetricBudgetDeficit, res.Deficit, nil)
	s.metrics.IncrementCounter(MetricForecastRun, map[string]string{"status": "success"})

	s.logger.Info("Budget planned",
		"forecast_month", plan.ForecastMonth.Format("2006-01-02"),
		"categories", len(plan.Budget),
		"total_forecast", plan.TotalForecast,
		"available", plan.Available,
		"outcome", plan.Outcome,
		"passes", plan.Passes,
	)

	return plan, nil
}
