package allocation

import (
	"math"
	"sort"

	"github.com/Swoyesh/FinSense/internal/models"
)

// Result is the outcome of one allocation. Forecasts is the caller's map and
// is never modified; Budget is a separate map.
type Result struct {
	Forecasts       map[string]float64
	Budget          map[string]float64
	CategoryPercent map[string]float64
	// Order is the fixed rank order used by the reduction loop, largest
	// forecast first.
	Order          []string
	TotalForecast  float64
	Available      float64
	InitialDeficit float64
	Deficit        float64
	Outcome        models.AllocationOutcome
	Passes         int
	Steps          []models.AllocationStep
}

// Residual is the uncovered shortfall of a stalled allocation, 0 otherwise.
func (r *Result) Residual() float64 {
	if r.Outcome == models.OutcomeStalled {
		return r.Deficit
	}
	return 0
}

// Allocate fits the forecasts into income minus targetSavings. A shortfall is
// worked off by repeated passes over the categories in descending forecast
// order until the deficit is within policy.Tolerance of zero, a whole pass
// deducts nothing, or policy.MaxPasses passes have run. The last sliver
// inside the tolerance is then deducted outright: a resolved Result has
// Deficit 0 and its Budget sums to Available.
func Allocate(forecasts map[string]float64, income, targetSavings float64, policy Policy) *Result {
	res := &Result{
		Forecasts:       forecasts,
		Budget:          make(map[string]float64, len(forecasts)),
		CategoryPercent: make(map[string]float64, len(forecasts)),
		Available:       income - targetSavings,
	}

	for category, v := range forecasts {
		res.Budget[category] = v
		res.TotalForecast += v
	}

	for category, v := range forecasts {
		if res.TotalForecast != 0 {
			res.CategoryPercent[category] = v / res.TotalForecast * 100
		} else {
			res.CategoryPercent[category] = 0
		}
	}

	res.Order = rankOrder(forecasts)
	res.Deficit = res.Available - res.TotalForecast
	res.InitialDeficit = res.Deficit

	switch {
	case res.Deficit > 0:
		res.Outcome = models.OutcomeSurplus
		return res
	case res.Deficit == 0:
		res.Outcome = models.OutcomeBalanced
		return res
	}

	maxPasses := policy.MaxPasses
	if maxPasses <= 0 {
		maxPasses = math.MaxInt
	}
	tolerance := math.Abs(policy.Tolerance)

	for res.Deficit < -tolerance {
		if res.Passes >= maxPasses {
			res.Outcome = models.OutcomeStalled
			return res
		}
		res.Passes++

		madeProgress := false
		for rank, category := range res.Order {
			current := res.Budget[category]
			if current <= 0 {
				continue
			}

			amount, percent := policy.deduction(rank, current, math.Abs(res.Deficit))
			amount = math.Min(amount, current)
			if amount <= 0 {
				continue
			}

			before := res.Deficit
			res.Budget[category] = current - amount
			res.Deficit += amount
			madeProgress = true

			res.Steps = append(res.Steps, models.AllocationStep{
				Pass:          res.Passes,
				Rank:          rank,
				Category:      category,
				Percent:       percent,
				Before:        current,
				Deduction:     amount,
				After:         res.Budget[category],
				DeficitBefore: before,
				DeficitAfter:  res.Deficit,
			})

			if res.Deficit >= -tolerance {
				break
			}
		}

		if !madeProgress {
			res.Outcome = models.OutcomeStalled
			return res
		}
	}

	res.settle()
	if res.Deficit < 0 {
		res.Outcome = models.OutcomeStalled
		return res
	}

	res.Outcome = models.OutcomeResolved
	return res
}

// settle takes a shortfall left inside the tolerance straight off the
// budgets in rank order, so a resolved plan never exceeds Available.
func (r *Result) settle() {
	for rank, category := range r.Order {
		if r.Deficit >= 0 {
			return
		}
		current := r.Budget[category]
		if current <= 0 {
			continue
		}

		before := r.Deficit
		amount := math.Min(current, -before)
		r.Budget[category] = current - amount
		if amount == -before {
			r.Deficit = 0
		} else {
			r.Deficit += amount
		}

		r.Steps = append(r.Steps, models.AllocationStep{
			Pass:          r.Passes,
			Rank:          rank,
			Category:      category,
			Percent:       amount / -before * 100,
			Before:        current,
			Deduction:     amount,
			After:         r.Budget[category],
			DeficitBefore: before,
			DeficitAfter:  r.Deficit,
		})
	}
}

// rankOrder sorts categories by descending forecast, ties by name.
func rankOrder(forecasts map[string]float64) []string {
	order := make([]string, 0, len(forecasts))
	for category := range forecasts {
		order = append(order, category)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := forecasts[order[i]], forecasts[order[j]]
		if a != b {
			return a > b
		}
		return order[i] < order[j]
	})
	return order
}
