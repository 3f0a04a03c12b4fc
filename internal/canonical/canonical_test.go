package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Empty(t *testing.T) {
	assert.Equal(t, "", Key(""))
	assert.Equal(t, "", Key("   "))
	assert.Equal(t, "", Key("\t\n"))
}

func TestKey_Lowercase(t *testing.T) {
	assert.Equal(t, "acme advisors", Key("Acme Advisors"))
	assert.Equal(t, "acme advisors", Key("ACME ADVISORS"))
}

func TestKey_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "smith jones", Key("Smith & Jones"))
	assert.Equal(t, "titlemax tm", Key("Title.Max, (TM)"))
}

func TestKey_PunctuationDeletedNotSpaced(t *testing.T) {
	// Characters are deleted in place, so "J.P." collapses to "jp".
	assert.Equal(t, "jp morgan", Key("J.P. Morgan"))
}

func TestKey_StripsLegalSuffixes(t *testing.T) {
	assert.Equal(t, "acme", Key("Acme Inc"))
	assert.Equal(t, "acme", Key("Acme Corp."))
	assert.Equal(t, "acme", Key("Acme, LLC"))
	assert.Equal(t, "acme", Key("Acme LP"))
	assert.Equal(t, "acme", Key("Acme Co"))
	assert.Equal(t, "acme", Key("Acme Ltd."))
}

func TestKey_StripsDescriptorTokens(t *testing.T) {
	assert.Equal(t, "acme", Key("Acme Bank"))
	assert.Equal(t, "acme", Key("Acme Financial Group"))
	assert.Equal(t, "first union", Key("First Union National Association"))
	assert.Equal(t, "wells fargo", Key("Wells Fargo Bank, N.A."))
}

func TestKey_WholeWordOnly(t *testing.T) {
	// Token removal is word-boundary delimited; substrings survive.
	assert.Equal(t, "cocoa banking nappa", Key("Cocoa Banking Nappa"))
	assert.Equal(t, "incline corporate", Key("Incline Corporate"))
}

func TestKey_RemovalDoesNotMergeWords(t *testing.T) {
	// Removing "bank" must not fuse "acme" and "trust" into one word.
	assert.Equal(t, "acme trust", Key("Acme Bank Trust"))
}

func TestKey_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "acme trust", Key("  Acme \t  Trust  "))
}

func TestKey_AllNoise(t *testing.T) {
	assert.Equal(t, "", Key("Bank, N.A."))
	assert.Equal(t, "", Key("& . ,"))
}

func TestKey_Idempotent(t *testing.T) {
	inputs := []string{
		"JPMorgan Chase & Co.",
		"Acme Bank",
		"Wells Fargo Bank, N.A.",
		"Totally Unrelated Entity XYZ",
		"",
		"co co co",
	}
	for _, in := range inputs {
		once := Key(in)
		assert.Equal(t, once, Key(once), "input %q", in)
	}
}

func TestKey_KnownScenario(t *testing.T) {
	// "&", ".", and the "co" suffix token are all stripped.
	assert.Equal(t, "jpmorgan chase", Key("JPMorgan Chase & Co."))
}
