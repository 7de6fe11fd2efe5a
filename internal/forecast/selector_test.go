package forecast

import (
	"testing"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOrder_ThreeMonths(t *testing.T) {
	sel := SelectOrder([]float64{1000, 1100, 1050}, 3, 3, 3)

	require.True(t, sel.Found)
	assert.Equal(t, models.ModelOrder{P: 0, D: 2, Q: 0}, sel.Order)
	assert.InDelta(t, 14.86, sel.AIC, 0.05)
	assert.Len(t, sel.Candidates, 64)
	require.NotNil(t, sel.best)
	assert.InDelta(t, 1000, sel.best.forecast(), 1e-9)
}

func TestSelectOrder_LowestAICWins(t *testing.T) {
	series := []float64{1200, 1350, 1100, 1500, 1420, 1380, 1610, 1550, 1490, 1700, 1650, 1720}
	sel := SelectOrder(series, 2, 1, 2)

	require.True(t, sel.Found)
	assert.Len(t, sel.Candidates, 18)

	// p-major enumeration
	assert.Equal(t, models.ModelOrder{}, sel.Candidates[0].Order)
	assert.Equal(t, models.ModelOrder{Q: 1}, sel.Candidates[1].Order)
	assert.Equal(t, models.ModelOrder{P: 2, D: 1, Q: 2}, sel.Candidates[17].Order)

	for _, c := range sel.Candidates {
		if c.Ok() {
			assert.GreaterOrEqual(t, c.AIC, sel.AIC, "candidate %s beats the selection", c.Order)
		}
	}
}

func TestSelectOrder_NothingFits(t *testing.T) {
	sel := SelectOrder([]float64{500, 500, 500, 500}, 3, 3, 3)

	assert.False(t, sel.Found)
	assert.Len(t, sel.Candidates, 64)
	assert.NotEmpty(t, sel.FailureReasons())
	for _, c := range sel.Candidates {
		assert.False(t, c.Ok())
	}
}

func TestSelection_FailureReasonsAreDistinct(t *testing.T) {
	sel := SelectOrder([]float64{1, 2}, 1, 1, 1)

	reasons := sel.FailureReasons()
	seen := make(map[string]bool)
	for _, r := range reasons {
		assert.False(t, seen[r], "duplicate reason %q", r)
		seen[r] = true
	}
}

func TestFitARIMA_InvalidOrder(t *testing.T) {
	_, err := fitARIMA([]float64{1, 2, 3, 4}, models.ModelOrder{P: -1})
	assert.Error(t, err)
}

func TestFitARIMA_TooFewObservations(t *testing.T) {
	_, err := fitARIMA([]float64{1, 2, 3}, models.ModelOrder{P: 3})
	assert.ErrorIs(t, err, errTooFewObservations)
}

func TestIntegrate(t *testing.T) {
	series := []float64{1000, 1100, 1050}

	assert.Equal(t, 7.0, integrate(7, series, 0))
	// x_{n+1} = w + x_n
	assert.Equal(t, 1060.0, integrate(10, series, 1))
	// x_{n+1} = w + 2x_n - x_{n-1}
	assert.Equal(t, 1000.0, integrate(0, series, 2))
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, binomial(3, 0))
	assert.Equal(t, 3.0, binomial(3, 1))
	assert.Equal(t, 3.0, binomial(3, 2))
	assert.Equal(t, 6.0, binomial(4, 2))
}

func TestConstrainStationary(t *testing.T) {
	assert.Nil(t, constrainStationary(nil))

	for _, x := range []float64{-50, -1, 0, 0.5, 3, 80} {
		coef := constrainStationary([]float64{x})
		require.Len(t, coef, 1)
		assert.Less(t, coef[0], 1.0)
		assert.Greater(t, coef[0], -1.0)
	}
}
