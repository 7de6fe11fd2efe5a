package forecast

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultStationarityAlpha is the p-value at or below which a series is
// considered stationary.
const DefaultStationarityAlpha = 0.05

// ADFResult is the statistic table of an augmented Dickey-Fuller test with a
// constant term.
type ADFResult struct {
	Statistic      float64
	PValue         float64
	UsedLag        int
	NObs           int
	CriticalValues map[string]float64
}

// StationarityResult is the diagnostic outcome for one series. ADF is nil
// when the test could not run.
type StationarityResult struct {
	Stationary bool
	ADF        *ADFResult
	Reason     string
}

// TestStationarity runs the ADF test on series and logs its table. Series
// with fewer than three observations are reported as non-stationary without
// testing.
func TestStationarity(series []float64, alpha float64, logger *slog.Logger) StationarityResult {
	if logger == nil {
		logger = slog.Default()
	}
	if len(series) < 3 {
		return StationarityResult{Reason: "fewer than 3 observations"}
	}

	res, err := ADF(series)
	if err != nil {
		logger.Debug("Stationarity test skipped", "observations", len(series), "error", err)
		return StationarityResult{Reason: err.Error()}
	}

	logger.Debug("ADF statistic",
		"statistic", res.Statistic,
		"p_value", res.PValue,
		"lags_used", res.UsedLag,
		"observations_used", res.NObs,
		"critical_1pct", res.CriticalValues["1%"],
		"critical_5pct", res.CriticalValues["5%"],
		"critical_10pct", res.CriticalValues["10%"],
	)

	return StationarityResult{Stationary: res.PValue <= alpha, ADF: res}
}

// ADF computes the augmented Dickey-Fuller unit root test with a constant,
// choosing the number of lagged differences by AIC.
func ADF(series []float64) (*ADFResult, error) {
	nobs := len(series)
	maxlag := int(math.Ceil(12 * math.Pow(float64(nobs)/100, 0.25)))
	if limit := nobs/2 - 2; limit < maxlag {
		maxlag = limit
	}
	if maxlag < 0 {
		return nil, errors.New("sample size is too short for the test regression")
	}

	diff := difference(series, 1)

	// Lag selection runs on the common sample defined by maxlag.
	y, lagged := adfDesign(series, diff, maxlag)
	rows := len(y)
	bestLag, bestAIC := -1, math.Inf(1)
	for lag := 0; lag <= maxlag; lag++ {
		x := adfMatrix(lagged, rows, lag, true)
		fit, err := fitOLS(y, x)
		if err != nil {
			continue
		}
		if aic := fit.aic(); aic < bestAIC || bestLag < 0 {
			bestLag, bestAIC = lag, aic
		}
	}
	if bestLag < 0 {
		return nil, errSingularDesign
	}

	y, lagged = adfDesign(series, diff, bestLag)
	fit, err := fitOLS(y, adfMatrix(lagged, len(y), bestLag, false))
	if err != nil {
		return nil, err
	}

	stat := fit.tValue(0)
	if math.IsNaN(stat) || math.IsInf(stat, 0) {
		return nil, fmt.Errorf("test statistic is not finite: %v", stat)
	}

	return &ADFResult{
		Statistic:      stat,
		PValue:         mackinnonPValue(stat),
		UsedLag:        bestLag,
		NObs:           len(y),
		CriticalValues: mackinnonCritical(len(y)),
	}, nil
}

// adfDesign returns the regressand Δx_t and, per row, the lagged level
// x_{t-1} followed by Δx_{t-1} ... Δx_{t-lags}.
func adfDesign(series, diff []float64, lags int) ([]float64, [][]float64) {
	rows := len(diff) - lags
	y := make([]float64, rows)
	lagged := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		t := r + lags
		y[r] = diff[t]
		row := make([]float64, lags+1)
		row[0] = series[t]
		for j := 1; j <= lags; j++ {
			row[j] = diff[t-j]
		}
		lagged[r] = row
	}
	return y, lagged
}

// adfMatrix builds the regression with the first lags+1 lagged columns and a
// constant, placed first when constFirst is set and last otherwise.
func adfMatrix(lagged [][]float64, rows, lags int, constFirst bool) *mat.Dense {
	cols := lags + 2
	x := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		offset := 0
		if constFirst {
			x.Set(r, 0, 1)
			offset = 1
		} else {
			x.Set(r, cols-1, 1)
		}
		for j := 0; j <= lags; j++ {
			x.Set(r, j+offset, lagged[r][j])
		}
	}
	return x
}

// difference applies first differencing d times.
func difference(series []float64, d int) []float64 {
	out := append([]float64(nil), series...)
	for i := 0; i < d; i++ {
		if len(out) < 2 {
			return nil
		}
		next := make([]float64, len(out)-1)
		for t := 1; t < len(out); t++ {
			next[t-1] = out[t] - out[t-1]
		}
		out = next
	}
	return out
}
