// Package kb loads and holds the firm-name knowledge base: the mapping from
// canonical name variants to standard labels, plus the variant corpus used
// for fuzzy search.
package kb

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ErrLoad classifies knowledge-base load failures. A load failure is fatal:
// no standardization may run until a fresh load succeeds.
var ErrLoad = eris.New("kb: load failed")

// document is the on-disk knowledge-base schema, accepted as JSON or YAML.
type document struct {
	Variants         map[string]string `json:"variants" yaml:"variants"`
	AllKnownVariants []string          `json:"allKnownVariants" yaml:"allKnownVariants"`
}

// KnowledgeBase is a frozen snapshot of known name variants. It is built once
// at load time and never mutated, so it is safe for concurrent readers.
type KnowledgeBase struct {
	index    map[string]string
	variants []string
}

// Parse decodes a knowledge-base document from raw bytes. Format is chosen by
// name extension: .yaml/.yml parse as YAML, anything else as JSON. Returns an
// ErrLoad-wrapped error when the document is malformed or empty.
func Parse(data []byte, name string) (*KnowledgeBase, error) {
	var doc document
	if isYAML(name) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, eris.Wrapf(ErrLoad, "parse yaml %s: %v", name, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, eris.Wrapf(ErrLoad, "parse json %s: %v", name, err)
		}
	}

	if len(doc.Variants) == 0 {
		return nil, eris.Wrapf(ErrLoad, "%s: no variants defined", name)
	}
	for variant, label := range doc.Variants {
		if strings.TrimSpace(label) == "" {
			return nil, eris.Wrapf(ErrLoad, "%s: variant %q maps to empty label", name, variant)
		}
	}

	return build(doc), nil
}

// build assembles the immutable snapshot, unioning index keys into the corpus
// so every indexed variant is guaranteed to be searchable.
func build(doc document) *KnowledgeBase {
	seen := make(map[string]bool, len(doc.AllKnownVariants)+len(doc.Variants))
	variants := make([]string, 0, len(doc.AllKnownVariants)+len(doc.Variants))

	for _, v := range doc.AllKnownVariants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	for v := range doc.Variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	sort.Strings(variants)

	index := make(map[string]string, len(doc.Variants))
	for v, label := range doc.Variants {
		index[v] = label
	}

	return &KnowledgeBase{index: index, variants: variants}
}

// Lookup returns the standard label for an exact canonical key.
func (k *KnowledgeBase) Lookup(key string) (string, bool) {
	label, ok := k.index[key]
	return label, ok
}

// Variants returns the fuzzy-search corpus. Callers must not modify it.
func (k *KnowledgeBase) Variants() []string {
	return k.variants
}

// Len reports the number of indexed variants.
func (k *KnowledgeBase) Len() int {
	return len(k.index)
}

// CorpusLen reports the size of the fuzzy-search corpus.
func (k *KnowledgeBase) CorpusLen() int {
	return len(k.variants)
}

// Labels returns the distinct standard labels, sorted.
func (k *KnowledgeBase) Labels() []string {
	seen := make(map[string]bool, len(k.index))
	var labels []string
	for _, label := range k.index {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Unindexed returns corpus variants that have no index entry. Fuzzy search
// can surface these, but they resolve to no label, so the standardizer skips
// them.
func (k *KnowledgeBase) Unindexed() []string {
	var missing []string
	for _, v := range k.variants {
		if _, ok := k.index[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}

func isYAML(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
