package forecast

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Swoyesh/FinSense/internal/models"

	"golang.org/x/sync/errgroup"
)

// Batch collects the per-category results of one forecasting pass. Every map
// is freshly allocated per call.
type Batch struct {
	Forecasts map[string]float64
	Summary   map[string]models.ModelSummary
	Failures  []models.ForecastFailure
}

// ForecastMatrix forecasts every category of m with at most workers
// categories in flight. Per-category fit failures are recorded on the batch
// and never abort the pass; only context cancellation does.
func (f *Forecaster) ForecastMatrix(ctx context.Context, m *MonthlyMatrix, workers int) (*Batch, error) {
	if workers <= 0 {
		workers = 1
	}

	batch := &Batch{
		Forecasts: make(map[string]float64, len(m.Categories)),
		Summary:   make(map[string]models.ModelSummary, len(m.Categories)),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, category := range m.Categories {
		series := m.Series(category)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			summary, err := f.Forecast(category, series)

			mu.Lock()
			defer mu.Unlock()
			batch.Forecasts[category] = summary.Forecast
			batch.Summary[category] = summary
			if err != nil {
				var fitErr *ModelFitError
				if !errors.As(err, &fitErr) {
					return err
				}
				batch.Failures = append(batch.Failures, models.ForecastFailure{
					Category: category,
					Reason:   fitErr.Err.Error(),
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(batch.Failures, func(i, j int) bool {
		return batch.Failures[i].Category < batch.Failures[j].Category
	})

	return batch, nil
}
