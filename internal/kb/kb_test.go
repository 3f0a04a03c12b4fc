package kb

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"variants": {
		"jpmorgan chase": "JPMorgan Chase & Co.",
		"jp morgan": "JPMorgan Chase & Co.",
		"acme": "Acme Corporation"
	},
	"allKnownVariants": ["jpmorgan chase", "jp morgan", "acme", "acme holdings"]
}`

func TestParse_JSON(t *testing.T) {
	k, err := Parse([]byte(sampleJSON), "kb.json")
	require.NoError(t, err)

	label, ok := k.Lookup("jpmorgan chase")
	assert.True(t, ok)
	assert.Equal(t, "JPMorgan Chase & Co.", label)

	_, ok = k.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestParse_YAML(t *testing.T) {
	doc := `
variants:
  acme: Acme Corporation
allKnownVariants:
  - acme
`
	k, err := Parse([]byte(doc), "kb.yaml")
	require.NoError(t, err)

	label, ok := k.Lookup("acme")
	assert.True(t, ok)
	assert.Equal(t, "Acme Corporation", label)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"variants": `), "kb.json")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrLoad))
}

func TestParse_EmptyVariants(t *testing.T) {
	_, err := Parse([]byte(`{"variants": {}, "allKnownVariants": []}`), "kb.json")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrLoad))
}

func TestParse_EmptyLabelRejected(t *testing.T) {
	_, err := Parse([]byte(`{"variants": {"acme": "  "}}`), "kb.json")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrLoad))
}

func TestParse_IndexKeysAlwaysInCorpus(t *testing.T) {
	// "jp morgan" is indexed but missing from allKnownVariants; the loader
	// unions it in so fuzzy search stays consistent with the index.
	doc := `{
		"variants": {"jp morgan": "JPMorgan Chase & Co."},
		"allKnownVariants": ["acme"]
	}`
	k, err := Parse([]byte(doc), "kb.json")
	require.NoError(t, err)
	assert.Contains(t, k.Variants(), "jp morgan")
	assert.Contains(t, k.Variants(), "acme")
}

func TestParse_CorpusDeduplicated(t *testing.T) {
	doc := `{
		"variants": {"acme": "Acme Corporation"},
		"allKnownVariants": ["acme", "acme", "acme"]
	}`
	k, err := Parse([]byte(doc), "kb.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme"}, k.Variants())
}

func TestKnowledgeBase_Labels(t *testing.T) {
	k, err := Parse([]byte(sampleJSON), "kb.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corporation", "JPMorgan Chase & Co."}, k.Labels())
}

func TestKnowledgeBase_Unindexed(t *testing.T) {
	k, err := Parse([]byte(sampleJSON), "kb.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme holdings"}, k.Unindexed())
}

// stubSource implements ByteSource for load tests.
type stubSource struct {
	data []byte
	err  error
}

func (s *stubSource) Fetch(_ context.Context, _ string) ([]byte, error) {
	return s.data, s.err
}

func TestLoad_FetchError(t *testing.T) {
	src := &stubSource{err: eris.New("connection refused")}
	_, err := Load(context.Background(), "http://kb.example.com/kb.json", src)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrLoad))
}

func TestLoad_Success(t *testing.T) {
	src := &stubSource{data: []byte(sampleJSON)}
	k, err := Load(context.Background(), "kb.json", src)
	require.NoError(t, err)
	assert.Equal(t, 3, k.Len())
	assert.Equal(t, 4, k.CorpusLen())
}
