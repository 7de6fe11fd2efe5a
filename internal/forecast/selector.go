package forecast

import (
	"github.com/Swoyesh/FinSense/internal/models"
)

// CandidateResult is the outcome of fitting one order during the grid search.
// Err is nil when the candidate fitted.
type CandidateResult struct {
	Order models.ModelOrder
	AIC   float64
	Err   error
}

// Ok reports whether the candidate fitted.
func (c CandidateResult) Ok() bool {
	return c.Err == nil
}

// Selection is the outcome of the order search.
type Selection struct {
	Order      models.ModelOrder
	AIC        float64
	Found      bool
	Candidates []CandidateResult

	best *arimaModel
}

// FailureReasons lists the distinct reasons candidates failed.
func (s Selection) FailureReasons() []string {
	seen := make(map[string]bool)
	var reasons []string
	for _, c := range s.Candidates {
		if c.Err == nil || seen[c.Err.Error()] {
			continue
		}
		seen[c.Err.Error()] = true
		reasons = append(reasons, c.Err.Error())
	}
	return reasons
}

// SelectOrder fits every order in [0,maxP]x[0,maxD]x[0,maxQ], p-major, and
// keeps the first with the strictly lowest AIC. Failed candidates are
// recorded and skipped.
func SelectOrder(series []float64, maxP, maxD, maxQ int) Selection {
	sel := Selection{
		Candidates: make([]CandidateResult, 0, (maxP+1)*(maxD+1)*(maxQ+1)),
	}

	for p := 0; p <= maxP; p++ {
		for d := 0; d <= maxD; d++ {
			for q := 0; q <= maxQ; q++ {
				order := models.ModelOrder{P: p, D: d, Q: q}
				model, err := fitARIMA(series, order)
				if err != nil {
					sel.Candidates = append(sel.Candidates, CandidateResult{Order: order, Err: err})
					continue
				}

				sel.Candidates = append(sel.Candidates, CandidateResult{Order: order, AIC: model.aic})
				if !sel.Found || model.aic < sel.AIC {
					sel.Order = order
					sel.AIC = model.aic
					sel.Found = true
					sel.best = model
				}
			}
		}
	}

	return sel
}
