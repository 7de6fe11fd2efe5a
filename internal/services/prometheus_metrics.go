package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricForecastRun      = "forecast_run"
	MetricForecastDuration = "forecast_duration"
	MetricModelFitFailure  = "model_fit_failure"
	MetricForecastFallback = "forecast_fallback"
	MetricBudgetAllocation = "budget_allocation"
	MetricBudgetDeficit    = "budget_deficit"
	MetricAPIError         = "api_error"
)

type PrometheusMetrics struct {
	forecastRuns      *prometheus.CounterVec
	forecastDuration  prometheus.Histogram
	modelFitFailures  *prometheus.CounterVec
	forecastFallbacks *prometheus.CounterVec
	budgetAllocations *prometheus.CounterVec
	budgetDeficit     prometheus.Gauge
	apiErrors         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors with reg.
func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		forecastRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_runs_total",
				Help: "Total number of forecast-and-allocate runs",
			},
			[]string{"status"},
		),
		forecastDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_duration_milliseconds",
				Help:    "Forecast-and-allocate duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		modelFitFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_fit_failures_total",
				Help: "Total number of categories whose model could not be fitted",
			},
			[]string{"reason"},
		),
		forecastFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_fallbacks_total",
				Help: "Total number of category forecasts replaced by the historical mean",
			},
			[]string{"reason"},
		),
		budgetAllocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_allocations_total",
				Help: "Total number of budget allocations by outcome",
			},
			[]string{"outcome"},
		),
		budgetDeficit: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_deficit_amount",
				Help: "Deficit left by the most recent allocation",
			},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricForecastRun:
		if status := tags["status"]; status != "" {
			m.forecastRuns.WithLabelValues(status).Inc()
		}
	case MetricModelFitFailure:
		m.modelFitFailures.WithLabelValues(tags["reason"]).Inc()
	case MetricForecastFallback:
		if reason := tags["reason"]; reason != "" {
			m.forecastFallbacks.WithLabelValues(reason).Inc()
		}
	case MetricBudgetAllocation:
		if outcome := tags["outcome"]; outcome != "" {
			m.budgetAllocations.WithLabelValues(outcome).Inc()
		}
	case MetricAPIError:
		m.apiErrors.WithLabelValues(tags["code"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricForecastDuration {
		m.forecastDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricBudgetDeficit {
		m.budgetDeficit.Set(value)
	}
}

// NoopMetrics discards every measurement. The CLI plan command uses it.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
