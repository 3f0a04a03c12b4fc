// Package match provides approximate string search over the knowledge-base
// variant corpus. Scores are normalized distances in [0,1]: 0 is identical,
// 1 is unrelated.
package match

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

const (
	// DefaultThreshold is the worst score the index will return as a
	// candidate. Stricter acceptance is the caller's concern.
	DefaultThreshold = 0.4

	// DefaultLimit caps Search results when the caller passes limit <= 0.
	DefaultLimit = 10
)

// Candidate is one scored corpus entry. Lower score is better.
type Candidate struct {
	Variant string  `json:"variant"`
	Score   float64 `json:"score"`
}

// Options tunes index behavior.
type Options struct {
	// Threshold filters out candidates scoring above it. Zero means
	// DefaultThreshold.
	Threshold float64
}

// Index holds the prepared corpus. It is immutable after NewIndex and safe
// for concurrent Search calls.
type Index struct {
	corpus    []string
	tokens    []map[string]struct{}
	threshold float64
	params    *levenshtein.Params
}

// NewIndex tokenizes the corpus and prepares it for search. The corpus slice
// is copied; later mutation of the argument does not affect the index.
func NewIndex(corpus []string, opts Options) *Index {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	ix := &Index{
		corpus:    make([]string, len(corpus)),
		tokens:    make([]map[string]struct{}, len(corpus)),
		threshold: threshold,
		params:    levenshtein.NewParams(),
	}
	copy(ix.corpus, corpus)
	for i, v := range ix.corpus {
		ix.tokens[i] = tokenSet(v)
	}
	return ix
}

// Threshold returns the candidate cutoff score.
func (ix *Index) Threshold() float64 {
	return ix.threshold
}

// Search scores query against every corpus entry and returns the candidates
// at or below the threshold, best first. Ties are broken lexicographically on
// the variant string so results are deterministic. limit <= 0 means
// DefaultLimit.
func (ix *Index) Search(query string, limit int) []Candidate {
	if query == "" || len(ix.corpus) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	queryTokens := tokenSet(query)

	candidates := make([]Candidate, 0, limit)
	for i, variant := range ix.corpus {
		score := ix.score(query, queryTokens, i)
		if score > ix.threshold {
			continue
		}
		candidates = append(candidates, Candidate{Variant: variant, Score: score})
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score < candidates[b].Score
		}
		return candidates[a].Variant < candidates[b].Variant
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// score computes the normalized distance between query and corpus entry i as
// 1 minus the stronger of two similarity signals: token-set overlap (robust
// to word reordering and extra words) and edit-distance similarity (robust to
// typos within words).
func (ix *Index) score(query string, queryTokens map[string]struct{}, i int) float64 {
	variant := ix.corpus[i]
	if query == variant {
		return 0
	}

	sim := jaccard(queryTokens, ix.tokens[i])
	if lev := levenshtein.Similarity(query, variant, ix.params); lev > sim {
		sim = lev
	}
	return 1 - sim
}

// jaccard computes |a∩b| / |a∪b| over token sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
