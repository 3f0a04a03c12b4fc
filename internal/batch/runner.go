// Package batch applies the standardizer across tabular rows and aggregates
// the results into per-label groups.
package batch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/standardize-cli/internal/model"
)

// DefaultConcurrency is the worker count when the caller passes zero.
const DefaultConcurrency = 4

// Standardizer resolves one raw name to a standard label.
// *standardize.Standardizer satisfies it.
type Standardizer interface {
	Standardize(raw string) string
}

// ProgressFunc receives (processed, total) updates during a run. Calls are
// rate-limited except the final one, which always fires.
type ProgressFunc func(done, total int)

// Runner processes batches of rows.
type Runner struct {
	std         Standardizer
	concurrency int
	progress    ProgressFunc
	limiter     *rate.Limiter
}

// Options tunes the runner.
type Options struct {
	// Concurrency is the worker count. Zero means DefaultConcurrency.
	Concurrency int

	// Progress, if set, receives throttled progress updates.
	Progress ProgressFunc
}

// NewRunner builds a Runner over the given standardizer.
func NewRunner(std Standardizer, opts Options) *Runner {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Runner{
		std:         std,
		concurrency: concurrency,
		progress:    opts.Progress,
		// At most a few progress events per second keeps large batches
		// observable without flooding the log.
		limiter: rate.NewLimiter(rate.Limit(4), 1),
	}
}

// Run standardizes the selected column of every row. Rows are processed
// independently across workers; the output preserves input order and has
// exactly one record per row. A missing column value standardizes to
// model.Unknown like any other empty name, so Run itself only fails on
// context cancellation.
func (r *Runner) Run(ctx context.Context, rows []map[string]string, column string) ([]model.Record, error) {
	records := make([]model.Record, len(rows))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	done := make(chan int, r.concurrency)
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		processed := 0
		for range done {
			processed++
			if r.progress == nil {
				continue
			}
			if processed == len(rows) || r.limiter.Allow() {
				r.progress(processed, len(rows))
			}
		}
	}()

	for i, row := range rows {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			raw := row[column]
			records[i] = model.Record{
				Input:        raw,
				Standardized: r.std.Standardize(raw),
			}
			done <- i
			return nil
		})
	}

	err := g.Wait()
	close(done)
	<-reporterDone
	if err != nil {
		return nil, err
	}

	summary := model.Summarize(records)
	zap.L().Info("batch complete",
		zap.Int("total", summary.Total),
		zap.Int("matched", summary.Matched),
		zap.Int("unmatched", summary.Unmatched),
	)
	return records, nil
}
