package forecast

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var errSingularDesign = errors.New("regression design matrix is singular")

// olsResult is an ordinary least squares fit of y on the columns of x.
type olsResult struct {
	beta   []float64
	stdErr []float64
	ssr    float64
	nobs   int
	k      int
}

// fitOLS regresses y on x. Standard errors use the unbiased residual variance.
func fitOLS(y []float64, x *mat.Dense) (*olsResult, error) {
	n, k := x.Dims()
	if n != len(y) {
		return nil, errors.New("regression dimensions do not match")
	}
	if n <= k {
		return nil, errors.New("regression has no residual degrees of freedom")
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, mat.NewVecDense(n, y)); err != nil {
		return nil, errSingularDesign
	}

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	var ssr float64
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		ssr += r * r
	}

	var xtx, inv mat.Dense
	xtx.Mul(x.T(), x)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, errSingularDesign
	}

	scale := ssr / float64(n-k)
	res := &olsResult{
		beta:   make([]float64, k),
		stdErr: make([]float64, k),
		ssr:    ssr,
		nobs:   n,
		k:      k,
	}
	for j := 0; j < k; j++ {
		res.beta[j] = beta.AtVec(j)
		res.stdErr[j] = math.Sqrt(scale * inv.At(j, j))
	}
	return res, nil
}

// logLikelihood is the concentrated Gaussian log-likelihood of the fit.
func (r *olsResult) logLikelihood() float64 {
	n := float64(r.nobs)
	return -n / 2 * (math.Log(2*math.Pi) + math.Log(r.ssr/n) + 1)
}

func (r *olsResult) aic() float64 {
	return -2*r.logLikelihood() + 2*float64(r.k)
}

func (r *olsResult) tValue(j int) float64 {
	return r.beta[j] / r.stdErr[j]
}
