// Package fetcher reads knowledge-base documents from local or remote
// sources and parses tabular row files (CSV, XLSX).
package fetcher

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Source fetches raw bytes from a location.
type Source interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// MultiSource dispatches on the location scheme: http/https, ftp, or a local
// file path (with or without the file:// prefix).
type MultiSource struct {
	http *HTTPSource
	ftp  *FTPSource
}

// NewMultiSource builds a MultiSource with default HTTP and FTP settings.
func NewMultiSource() *MultiSource {
	return NewMultiSourceWith(HTTPOptions{}, FTPOptions{})
}

// NewMultiSourceWith builds a MultiSource with explicit HTTP and FTP options.
func NewMultiSourceWith(httpOpts HTTPOptions, ftpOpts FTPOptions) *MultiSource {
	return &MultiSource{
		http: NewHTTPSource(httpOpts),
		ftp:  NewFTPSource(ftpOpts),
	}
}

// Fetch reads the full contents at location.
func (m *MultiSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	switch scheme(location) {
	case "http", "https":
		return m.http.Fetch(ctx, location)
	case "ftp":
		return m.ftp.Fetch(ctx, location)
	case "", "file":
		return readFile(location)
	default:
		return nil, eris.Errorf("fetch: unsupported scheme in %q", location)
	}
}

func scheme(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	// Windows drive letters parse as single-letter schemes; treat them as paths.
	if len(u.Scheme) <= 1 {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

func readFile(location string) ([]byte, error) {
	path := strings.TrimPrefix(location, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch: read file %s", path)
	}
	return data, nil
}
