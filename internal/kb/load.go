package kb

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ByteSource fetches the raw knowledge-base document from a local or remote
// location. internal/fetcher provides the production implementation.
type ByteSource interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Load fetches and parses the knowledge base from source. Any failure,
// whether an unreachable source or a malformed document, is classified under
// ErrLoad and blocks standardization until a reload succeeds.
func Load(ctx context.Context, source string, src ByteSource) (*KnowledgeBase, error) {
	start := time.Now()

	data, err := src.Fetch(ctx, source)
	if err != nil {
		return nil, eris.Wrapf(ErrLoad, "fetch %s: %v", source, err)
	}

	k, err := Parse(data, source)
	if err != nil {
		return nil, err
	}

	zap.L().Info("knowledge base loaded",
		zap.String("source", source),
		zap.Int("indexed_variants", k.Len()),
		zap.Int("corpus_size", k.CorpusLen()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return k, nil
}
