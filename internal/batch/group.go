package batch

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sells-group/standardize-cli/internal/model"
)

// DefaultDisplayCap bounds how many variants a rendered group shows. Capping
// is presentation only; the underlying records are never truncated.
const DefaultDisplayCap = 100

// Group aggregates records by standard label. Within a group, inputs keep
// first-seen order with exact-string duplicates removed. Groups sort by label
// using a locale-aware collation, except model.Unknown, which always sorts
// last.
func Group(records []model.Record) []model.Group {
	byLabel := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	var order []string

	for _, r := range records {
		if seen[r.Standardized] == nil {
			seen[r.Standardized] = make(map[string]bool)
			order = append(order, r.Standardized)
		}
		if seen[r.Standardized][r.Input] {
			continue
		}
		seen[r.Standardized][r.Input] = true
		byLabel[r.Standardized] = append(byLabel[r.Standardized], r.Input)
	}

	coll := collate.New(language.English)
	sort.Slice(order, func(a, b int) bool {
		la, lb := order[a], order[b]
		if la == model.Unknown || lb == model.Unknown {
			return lb == model.Unknown && la != model.Unknown
		}
		return coll.CompareString(la, lb) < 0
	})

	groups := make([]model.Group, 0, len(order))
	for _, label := range order {
		groups = append(groups, model.Group{Label: label, Variants: byLabel[label]})
	}
	return groups
}

// CapVariants returns at most cap variants of g plus the omitted count.
// cap <= 0 means DefaultDisplayCap.
func CapVariants(g model.Group, cap int) (shown []string, omitted int) {
	if cap <= 0 {
		cap = DefaultDisplayCap
	}
	if len(g.Variants) <= cap {
		return g.Variants, 0
	}
	return g.Variants[:cap], len(g.Variants) - cap
}
