package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/standardize-cli/internal/fetcher"
	"github.com/sells-group/standardize-cli/internal/kb"
	"github.com/sells-group/standardize-cli/internal/standardize"
	"github.com/sells-group/standardize-cli/internal/store"
)

// newFetcher builds the multi-scheme source from config.
func newFetcher() *fetcher.MultiSource {
	return fetcher.NewMultiSourceWith(
		fetcher.HTTPOptions{
			RequestsPerSecond: cfg.Fetch.RateLimit,
			MaxRetries:        cfg.Fetch.MaxRetries,
			Timeout:           time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		},
		fetcher.FTPOptions{
			Timeout: time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		},
	)
}

// loadStandardizer fetches the knowledge base and builds a standardizer from it.
func loadStandardizer(ctx context.Context) (*standardize.Standardizer, *kb.KnowledgeBase, error) {
	base, err := kb.Load(ctx, cfg.KB.Source, newFetcher())
	if err != nil {
		return nil, nil, err
	}

	s := standardize.FromKB(base, standardize.Options{
		Threshold:  cfg.Match.Threshold,
		Confidence: cfg.Match.Confidence,
		Candidates: cfg.Match.MaxCandidates,
	})
	return s, base, nil
}

// initStore opens the configured persistence backend and runs migrations.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	return st, nil
}
