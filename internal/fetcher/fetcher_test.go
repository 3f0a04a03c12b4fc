package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"variants":{}}`), 0o644))

	src := NewMultiSource()
	data, err := src.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `{"variants":{}}`, string(data))

	// file:// prefix resolves to the same path.
	data, err = src.Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, `{"variants":{}}`, string(data))
}

func TestMultiSource_MissingFile(t *testing.T) {
	src := NewMultiSource()
	_, err := src.Fetch(context.Background(), "/nonexistent/kb.json")
	assert.Error(t, err)
}

func TestMultiSource_UnsupportedScheme(t *testing.T) {
	src := NewMultiSource()
	_, err := src.Fetch(context.Background(), "gopher://example.com/kb.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "standardize-cli/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPOptions{})
	data, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}

func TestHTTPSource_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPOptions{MaxRetries: 3, Timeout: 5 * time.Second})
	data, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, int64(2), calls.Load())
}

func TestHTTPSource_NotFoundIsFatal(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPOptions{})
	_, err := src.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestParseFTPURL(t *testing.T) {
	host, path, err := parseFTPURL("ftp://data.example.com/kb/firms.json")
	require.NoError(t, err)
	assert.Equal(t, "data.example.com:21", host)
	assert.Equal(t, "/kb/firms.json", path)

	host, _, err = parseFTPURL("ftp://data.example.com:2121/kb.json")
	require.NoError(t, err)
	assert.Equal(t, "data.example.com:2121", host)

	_, _, err = parseFTPURL("http://example.com/kb.json")
	assert.Error(t, err)

	_, _, err = parseFTPURL("ftp://example.com")
	assert.Error(t, err)
}
