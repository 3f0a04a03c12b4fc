// Package standardize maps raw firm names to standard labels using exact
// knowledge-base lookup with a fuzzy-match fallback.
package standardize

import (
	"github.com/sells-group/standardize-cli/internal/canonical"
	"github.com/sells-group/standardize-cli/internal/kb"
	"github.com/sells-group/standardize-cli/internal/match"
	"github.com/sells-group/standardize-cli/internal/model"
)

// DefaultConfidence is the acceptance cutoff for fuzzy candidates: a
// candidate is trusted only when its score is strictly below it.
const DefaultConfidence = 0.35

// DefaultCandidates is how many fuzzy candidates to request per lookup.
const DefaultCandidates = 10

// Searcher is the fuzzy-lookup dependency. *match.Index satisfies it.
type Searcher interface {
	Search(query string, limit int) []match.Candidate
}

// Options tunes standardizer behavior.
type Options struct {
	// Confidence is the strict upper bound on accepted fuzzy scores.
	// Zero means DefaultConfidence.
	Confidence float64

	// Candidates is the fuzzy search limit. Zero means DefaultCandidates.
	Candidates int

	// Threshold is the fuzzy index filter cutoff, used only by FromKB.
	// Zero means match.DefaultThreshold.
	Threshold float64
}

// Standardizer resolves raw names against a frozen knowledge base. It holds
// no mutable state, so one instance may serve any number of goroutines.
type Standardizer struct {
	kb         *kb.KnowledgeBase
	index      Searcher
	confidence float64
	candidates int
}

// New builds a Standardizer over an already-loaded knowledge base and fuzzy
// index.
func New(k *kb.KnowledgeBase, index Searcher, opts Options) *Standardizer {
	confidence := opts.Confidence
	if confidence == 0 {
		confidence = DefaultConfidence
	}
	candidates := opts.Candidates
	if candidates == 0 {
		candidates = DefaultCandidates
	}
	return &Standardizer{
		kb:         k,
		index:      index,
		confidence: confidence,
		candidates: candidates,
	}
}

// FromKB builds a Standardizer with a fuzzy index over the knowledge base's
// own variant corpus.
func FromKB(k *kb.KnowledgeBase, opts Options) *Standardizer {
	return New(k, match.NewIndex(k.Variants(), match.Options{Threshold: opts.Threshold}), opts)
}

// Standardize maps one raw name to its standard label. It is total: every
// input, however malformed, yields a non-empty label. model.Unknown comes
// back when no exact match exists and no fuzzy candidate clears the
// confidence cutoff.
// An exact canonical-key hit always wins, regardless of fuzzy scores.
func (s *Standardizer) Standardize(raw string) string {
	cleaned := canonical.Key(raw)
	if cleaned == "" {
		return model.Unknown
	}

	if label, ok := s.kb.Lookup(cleaned); ok {
		return label
	}

	for _, c := range s.index.Search(cleaned, s.candidates) {
		if c.Score >= s.confidence {
			break // candidates are ordered best first
		}
		if label, ok := s.kb.Lookup(c.Variant); ok {
			return label
		}
	}
	return model.Unknown
}

// Confidence returns the acceptance cutoff in use.
func (s *Standardizer) Confidence() float64 {
	return s.confidence
}
