package forecast

import (
	"errors"
	"testing"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecaster_SelectedModel(t *testing.T) {
	f := NewForecaster(DefaultOptions(), nil)

	summary, err := f.Forecast("Groceries & Shopping", []float64{1000, 1100, 1050})
	require.NoError(t, err)

	assert.False(t, summary.Fallback)
	assert.Equal(t, models.ModelOrder{P: 0, D: 2, Q: 0}, summary.Order)
	assert.InDelta(t, 1000, summary.Forecast, 1e-6)
	assert.LessOrEqual(t, summary.LowerBound, summary.Forecast)
	assert.GreaterOrEqual(t, summary.UpperBound, summary.Forecast)
	assert.False(t, summary.Stationary)
}

func TestForecaster_IntervalWidensWithConfidence(t *testing.T) {
	series := []float64{1000, 1100, 1050}

	narrow := DefaultOptions()
	narrow.ConfidenceLevel = 0.8
	wide := DefaultOptions()
	wide.ConfidenceLevel = 0.99

	a, err := NewForecaster(narrow, nil).Forecast("Travel", series)
	require.NoError(t, err)
	b, err := NewForecaster(wide, nil).Forecast("Travel", series)
	require.NoError(t, err)

	assert.Less(t, a.UpperBound-a.LowerBound, b.UpperBound-b.LowerBound)
}

func TestForecaster_TooFewObservations(t *testing.T) {
	f := NewForecaster(DefaultOptions(), nil)

	summary, err := f.Forecast("Travel", []float64{100, 200})
	require.NoError(t, err)

	assert.True(t, summary.Fallback)
	assert.Equal(t, models.FallbackInsufficientObservations, summary.FallbackReason)
	assert.Equal(t, 150.0, summary.Forecast)
	assert.Equal(t, 100.0, summary.LowerBound)
	assert.Equal(t, 200.0, summary.UpperBound)
	assert.True(t, summary.Order.IsZero())
	assert.Zero(t, summary.AIC)
}

func TestForecaster_NegativeForecast(t *testing.T) {
	f := NewForecaster(DefaultOptions(), nil)

	summary, err := f.Forecast("Entertainment", []float64{1000, 500, 100})
	require.NoError(t, err)

	assert.True(t, summary.Fallback)
	assert.Equal(t, models.FallbackNegativeForecast, summary.FallbackReason)
	assert.InDelta(t, 533.33, summary.Forecast, 0.01)
	assert.Equal(t, 100.0, summary.LowerBound)
	assert.Equal(t, 1000.0, summary.UpperBound)
}

func TestForecaster_FitFailure(t *testing.T) {
	f := NewForecaster(DefaultOptions(), nil)

	summary, err := f.Forecast("Subscriptions", []float64{500, 500, 500, 500})
	require.Error(t, err)

	var fitErr *ModelFitError
	require.True(t, errors.As(err, &fitErr))
	assert.Equal(t, "Subscriptions", fitErr.Category)
	assert.ErrorIs(t, err, ErrNoOrderFound)

	assert.True(t, summary.Fallback)
	assert.Equal(t, models.FallbackFitFailed, summary.FallbackReason)
	assert.Equal(t, 500.0, summary.Forecast)
}

func TestFallback_EmptySeries(t *testing.T) {
	summary := Fallback(nil, models.FallbackFitFailed)

	assert.True(t, summary.Fallback)
	assert.Zero(t, summary.Forecast)
	assert.Zero(t, summary.LowerBound)
	assert.Zero(t, summary.UpperBound)
}

func TestOptions_ZScore(t *testing.T) {
	opts := DefaultOptions()
	assert.InDelta(t, 1.96, opts.zScore(), 0.001)

	opts.ConfidenceLevel = 1.5
	assert.InDelta(t, 1.96, opts.zScore(), 0.001)

	opts.ConfidenceLevel = 0.9
	assert.InDelta(t, 1.645, opts.zScore(), 0.001)
}
