package allocation

import (
	"github.com/Swoyesh/FinSense/internal/config"
)

// Policy parameterises the deficit reduction loop.
//
// The category at rank i (0 is the largest forecast) may give up
// BasePercent/(i+1) percent of the outstanding deficit, scaled down by each
// TierDivisors entry in turn until the amount falls below CapPercent of the
// category's current budget. The last divisor applies unconditionally.
type Policy struct {
	BasePercent  float64
	CapPercent   float64
	TierDivisors []float64
	// Tolerance is how close to zero the tiered passes bring the deficit
	// before the remainder is deducted outright.
	Tolerance float64
	MaxPasses int
}

// DefaultPolicy returns the 50% base, 20% cap, 1/2/4/8 tier policy.
func DefaultPolicy() Policy {
	return PolicyFromConfig(config.DefaultAllocationConfig())
}

// PolicyFromConfig converts the configuration section into a Policy.
func PolicyFromConfig(cfg config.AllocationConfig) Policy {
	divisors := make([]float64, len(cfg.TierDivisors))
	copy(divisors, cfg.TierDivisors)
	return Policy{
		BasePercent:  cfg.BasePercent,
		CapPercent:   cfg.CapPercent,
		TierDivisors: divisors,
		Tolerance:    cfg.Tolerance,
		MaxPasses:    cfg.MaxPasses,
	}
}

// rankPercent is the share of the deficit offered at rank i.
func (p Policy) rankPercent(rank int) float64 {
	return p.BasePercent / float64(rank+1)
}

// deduction picks the tiered amount for a category at rank with the given
// current budget against the absolute deficit. It returns the amount and the
// percentage of the deficit it represents.
func (p Policy) deduction(rank int, current, deficit float64) (float64, float64) {
	base := p.rankPercent(rank)
	ceiling := p.CapPercent / 100 * current

	divisors := p.TierDivisors
	if len(divisors) == 0 {
		divisors = []float64{1}
	}

	for i, d := range divisors {
		percent := base / d
		amount := percent / 100 * deficit
		if amount < ceiling || i == len(divisors)-1 {
			return amount, percent
		}
	}
	return 0, 0
}
