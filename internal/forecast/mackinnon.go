package forecast

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// MacKinnon (1994) response surface for the constant-only Dickey-Fuller
// distribution with one integrated series.
const (
	tauMaxC  = 2.74
	tauMinC  = -18.83
	tauStarC = -1.61
)

var (
	tauCSmallP = []float64{2.1659, 1.4412, 0.038269}
	tauCLargeP = []float64{1.7339, 0.93202, -0.12745, -0.010368}
)

// MacKinnon (2010) critical value coefficients, constant only.
var tauC2010 = map[string][]float64{
	"1%":  {-3.43035, -6.5393, -16.786, -79.433},
	"5%":  {-2.86154, -2.8903, -4.234, -40.04},
	"10%": {-2.56677, -1.5384, -2.809, 0},
}

// mackinnonPValue returns the approximate p-value of an ADF statistic.
func mackinnonPValue(stat float64) float64 {
	switch {
	case stat > tauMaxC:
		return 1
	case stat < tauMinC:
		return 0
	}

	coef := tauCLargeP
	if stat <= tauStarC {
		coef = tauCSmallP
	}
	return distuv.UnitNormal.CDF(polyval(coef, stat))
}

// mackinnonCritical returns the 1%, 5% and 10% critical values for nobs
// observations.
func mackinnonCritical(nobs int) map[string]float64 {
	inv := 1 / float64(nobs)
	out := make(map[string]float64, len(tauC2010))
	for level, coef := range tauC2010 {
		out[level] = polyval(coef, inv)
	}
	return out
}

// polyval evaluates c[0] + c[1]x + c[2]x^2 + ...
func polyval(c []float64, x float64) float64 {
	var v float64
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}
