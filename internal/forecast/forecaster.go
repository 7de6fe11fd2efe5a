package forecast

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Swoyesh/FinSense/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Options bounds the order search and sets the forecast interval width.
type Options struct {
	MaxP              int
	MaxD              int
	MaxQ              int
	MinObservations   int
	ConfidenceLevel   float64
	StationarityAlpha float64
}

// DefaultOptions returns a search over orders up to (3,3,3) with 95% intervals.
func DefaultOptions() Options {
	return Options{
		MaxP:              3,
		MaxD:              3,
		MaxQ:              3,
		MinObservations:   3,
		ConfidenceLevel:   0.95,
		StationarityAlpha: DefaultStationarityAlpha,
	}
}

func (o Options) zScore() float64 {
	level := o.ConfidenceLevel
	if level <= 0 || level >= 1 {
		level = 0.95
	}
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// Forecaster produces one-step-ahead forecasts for single category series.
type Forecaster struct {
	opts   Options
	logger *slog.Logger
}

// NewForecaster returns a forecaster; a nil logger uses slog.Default.
func NewForecaster(opts Options, logger *slog.Logger) *Forecaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Forecaster{opts: opts, logger: logger}
}

// Forecast returns the model summary for one category. When no order can be
// fitted the fallback summary is returned together with a *ModelFitError.
func (f *Forecaster) Forecast(category string, series []float64) (models.ModelSummary, error) {
	logger := f.logger.With("category", category)

	stationarity := TestStationarity(series, f.opts.StationarityAlpha, logger)

	if len(series) < f.opts.MinObservations {
		summary := Fallback(series, models.FallbackInsufficientObservations)
		summary.Stationary = stationarity.Stationary
		logger.Info("Using historical mean", "observations", len(series), "forecast", summary.Forecast)
		return summary, nil
	}

	sel := SelectOrder(series, f.opts.MaxP, f.opts.MaxD, f.opts.MaxQ)
	if !sel.Found || sel.best == nil {
		summary := Fallback(series, models.FallbackFitFailed)
		summary.Stationary = stationarity.Stationary
		err := &ModelFitError{
			Category: category,
			Err:      fmt.Errorf("%w: %s", ErrNoOrderFound, strings.Join(sel.FailureReasons(), "; ")),
		}
		logger.Warn("No candidate order fitted, using historical mean", "candidates", len(sel.Candidates), "error", err)
		return summary, err
	}

	point := sel.best.forecast()
	if math.IsNaN(point) || math.IsInf(point, 0) {
		summary := Fallback(series, models.FallbackFitFailed)
		summary.Stationary = stationarity.Stationary
		err := &ModelFitError{Category: category, Err: fmt.Errorf("forecast for order %s is not finite", sel.Order)}
		logger.Warn("Selected model produced no usable forecast", "order", sel.Order.String(), "error", err)
		return summary, err
	}

	if point < 0 {
		summary := Fallback(series, models.FallbackNegativeForecast)
		summary.Stationary = stationarity.Stationary
		logger.Warn("Negative forecast replaced by historical mean",
			"order", sel.Order.String(), "forecast", point, "mean", summary.Forecast)
		return summary, nil
	}

	margin := f.opts.zScore() * sel.best.stdErr()
	summary := models.ModelSummary{
		Order:      sel.Order,
		AIC:        sel.AIC,
		Forecast:   point,
		LowerBound: point - margin,
		UpperBound: point + margin,
		Stationary: stationarity.Stationary,
	}

	logger.Debug("Forecast computed",
		"order", sel.Order.String(),
		"aic", sel.AIC,
		"forecast", point,
		"lower_bound", summary.LowerBound,
		"upper_bound", summary.UpperBound,
	)

	return summary, nil
}

// Fallback summarises series by its historical mean with (min, max) bounds,
// order (0,0,0) and AIC 0. An empty series forecasts 0.
func Fallback(series []float64, reason string) models.ModelSummary {
	summary := models.ModelSummary{
		Fallback:       true,
		FallbackReason: reason,
	}
	if len(series) == 0 {
		return summary
	}
	summary.Forecast = stat.Mean(series, nil)
	summary.LowerBound = floats.Min(series)
	summary.UpperBound = floats.Max(series)
	return summary
}
