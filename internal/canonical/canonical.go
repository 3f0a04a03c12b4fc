// Package canonical reduces raw firm names to the canonical keys used for
// knowledge-base lookup and fuzzy matching.
package canonical

import (
	"regexp"
	"strings"
)

// noiseTokens lists the legal-suffix and generic-descriptor words removed
// from names. Multi-word tokens must come before their single-word prefixes
// so the alternation matches the longest form first.
var noiseTokens = []string{
	"national association",
	"inc",
	"corp",
	"llc",
	"lp",
	"co",
	"ltd",
	"group",
	"financial",
	"bank",
	"na",
}

var (
	noiseTokenRe = regexp.MustCompile(`\b(` + strings.Join(noiseTokens, "|") + `)\b`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	punctReplacer = strings.NewReplacer(
		".", "",
		",", "",
		"&", "",
		"(", "",
		")", "",
	)
)

// Key converts a raw firm name into its canonical lookup key:
//  1. Lower-case
//  2. Delete '.', ',', '&', '(' and ')'
//  3. Remove whole-word noise tokens (legal suffixes, "bank", "group", ...)
//  4. Collapse whitespace runs and trim
//
// Key is pure and idempotent; an already-canonical string is a fixed point.
// Empty or all-noise input yields "".
func Key(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := strings.ToLower(raw)
	s = punctReplacer.Replace(s)

	// Replace with a space rather than deleting so token removal never
	// merges the surrounding words into a new word.
	s = noiseTokenRe.ReplaceAllString(s, " ")

	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
