package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/Swoyesh/FinSense/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

var (
	errTooFewObservations = errors.New("effective sample is not larger than the parameter count")
	errDegenerateVariance = errors.New("residual variance is degenerate")
	errOptimizer          = errors.New("optimizer did not return a usable solution")
)

const minResidualVariance = 1e-12

// arimaModel is an ARIMA(p,d,q) fitted by conditional sum of squares. The
// mean is estimated only when d is 0.
type arimaModel struct {
	order  models.ModelOrder
	series []float64
	w      []float64
	mu     float64
	ar     []float64
	ma     []float64
	resid  []float64
	sigma2 float64
	aic    float64
}

// fitARIMA estimates an ARIMA model of the given order on series.
func fitARIMA(series []float64, order models.ModelOrder) (*arimaModel, error) {
	if order.P < 0 || order.D < 0 || order.Q < 0 {
		return nil, fmt.Errorf("invalid order %s", order)
	}

	w := difference(series, order.D)
	withMean := order.D == 0
	k := order.P + order.Q
	if withMean {
		k++
	}
	nEff := len(w) - order.P
	if len(w) == 0 || nEff <= k {
		return nil, errTooFewObservations
	}

	m := &arimaModel{order: order, series: series, w: w}

	center := 0.0
	scale := 1.0
	if withMean {
		center = stat.Mean(w, nil)
		if sd := math.Sqrt(stat.Variance(w, nil)); sd > 0 && !math.IsNaN(sd) {
			scale = sd
		}
	}

	// x holds [mean offset (when estimated), AR raw..., MA raw...].
	unpack := func(x []float64) (mu float64, ar, ma []float64) {
		mu = center
		if withMean {
			mu = center + scale*x[0]
			x = x[1:]
		}
		ar = constrainStationary(x[:order.P])
		ma = constrainStationary(x[order.P : order.P+order.Q])
		for i := range ma {
			ma[i] = -ma[i]
		}
		return mu, ar, ma
	}

	if order.P+order.Q == 0 {
		m.mu = center
		m.resid = m.residuals(m.mu, nil, nil)
	} else {
		objective := func(x []float64) float64 {
			mu, ar, ma := unpack(x)
			ssr := sumSquares(m.residuals(mu, ar, ma))
			if math.IsNaN(ssr) || math.IsInf(ssr, 0) {
				return math.Inf(1)
			}
			return ssr
		}

		settings := &optimize.Settings{
			MajorIterations: 2000,
			FuncEvaluations: 10000,
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-10,
				Relative:   1e-10,
				Iterations: 200,
			},
		}
		result, err := optimize.Minimize(optimize.Problem{Func: objective}, make([]float64, k), settings, &optimize.NelderMead{})
		if result == nil || math.IsInf(result.F, 0) || math.IsNaN(result.F) {
			if err != nil {
				return nil, fmt.Errorf("%w: %v", errOptimizer, err)
			}
			return nil, errOptimizer
		}

		m.mu, m.ar, m.ma = unpack(result.X)
		m.resid = m.residuals(m.mu, m.ar, m.ma)
	}

	ssr := sumSquares(m.resid)
	m.sigma2 = ssr / float64(nEff)
	if m.sigma2 <= minResidualVariance || math.IsNaN(m.sigma2) || math.IsInf(m.sigma2, 0) {
		return nil, errDegenerateVariance
	}

	n := float64(nEff)
	llf := -n / 2 * (math.Log(2*math.Pi*m.sigma2) + 1)
	m.aic = -2*llf + 2*float64(k+1)

	return m, nil
}

// residuals returns the one-step errors e_t for t >= p; earlier errors are
// taken as zero.
func (m *arimaModel) residuals(mu float64, ar, ma []float64) []float64 {
	p := len(ar)
	e := make([]float64, len(m.w))
	for t := p; t < len(m.w); t++ {
		v := m.w[t] - mu
		for i, phi := range ar {
			v -= phi * (m.w[t-i-1] - mu)
		}
		for j, theta := range ma {
			if t-j-1 >= p {
				v -= theta * e[t-j-1]
			}
		}
		e[t] = v
	}
	return e[p:]
}

// forecast returns the one-step-ahead point forecast on the original scale.
func (m *arimaModel) forecast() float64 {
	p := len(m.ar)
	n := len(m.w)

	// resid[i] is the error at w index i+p.
	errAt := func(t int) float64 {
		if t < p || t >= n {
			return 0
		}
		return m.resid[t-p]
	}

	next := m.mu
	for i, phi := range m.ar {
		next += phi * (m.w[n-i-1] - m.mu)
	}
	for j, theta := range m.ma {
		next += theta * errAt(n-j-1)
	}

	return integrate(next, m.series, m.order.D)
}

// stdErr is the standard error of the one-step forecast.
func (m *arimaModel) stdErr() float64 {
	return math.Sqrt(m.sigma2)
}

// integrate undoes d rounds of differencing for one value following series:
// x_{n+1} = w - sum_{k=1..d} C(d,k) (-1)^k x_{n+1-k}.
func integrate(w float64, series []float64, d int) float64 {
	x := w
	n := len(series)
	for k := 1; k <= d; k++ {
		sign := 1.0
		if k%2 == 1 {
			sign = -1
		}
		x -= binomial(d, k) * sign * series[n-k]
	}
	return x
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

// constrainStationary maps unconstrained reals onto coefficients of a
// stationary autoregressive polynomial via partial autocorrelations.
func constrainStationary(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	r := make([]float64, n)
	for i, v := range x {
		r[i] = v / math.Sqrt(1+v*v)
	}

	y := make([][]float64, n)
	for k := 0; k < n; k++ {
		y[k] = make([]float64, n)
		for i := 0; i < k; i++ {
			y[k][i] = y[k-1][i] + r[k]*y[k-1][k-i-1]
		}
		y[k][k] = r[k]
	}

	out := make([]float64, n)
	for i, v := range y[n-1] {
		out[i] = -v
	}
	return out
}

func sumSquares(v []float64) float64 {
	return floats.Dot(v, v)
}
