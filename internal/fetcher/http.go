package fetcher

import (
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP source.
type HTTPOptions struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// RequestsPerSecond bounds outbound requests; 0 means 10.
	RequestsPerSecond float64
}

// HTTPSource fetches documents over HTTP(S) with retry and rate limiting.
type HTTPSource struct {
	client  *http.Client
	opts    HTTPOptions
	limiter *rate.Limiter
}

// NewHTTPSource creates an HTTPSource with the given options.
func NewHTTPSource(opts HTTPOptions) *HTTPSource {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "standardize-cli/1.0"
	}
	rps := opts.RequestsPerSecond
	if rps == 0 {
		rps = 10
	}
	return &HTTPSource{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(rps), int(math.Ceil(rps))),
	}
}

// Fetch downloads the URL body, retrying transient failures (network errors,
// 429s, and 5xx responses) with jittered exponential backoff.
func (s *HTTPSource) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := range s.opts.MaxRetries {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "http: rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, eris.Wrapf(err, "http: build request %s", rawURL)
		}
		req.Header.Set("User-Agent", s.opts.UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("http request failed, retrying",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			s.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("http %d from %s", resp.StatusCode, rawURL)
			zap.L().Warn("http transient status, retrying",
				zap.String("url", rawURL),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			s.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, eris.Errorf("http %d from %s", resp.StatusCode, rawURL)
		}

		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, eris.Wrapf(err, "http: read body %s", rawURL)
		}
		return data, nil
	}
	return nil, eris.Wrapf(lastErr, "http: %s failed after %d attempts", rawURL, s.opts.MaxRetries)
}

// backoff sleeps for an exponentially growing, jittered interval, or until
// the context is cancelled.
func (s *HTTPSource) backoff(ctx context.Context, attempt int) {
	base := math.Pow(2, float64(attempt)) * 500 * float64(time.Millisecond)
	jitter := rand.Float64() * 0.5 * base
	select {
	case <-time.After(time.Duration(base + jitter)):
	case <-ctx.Done():
	}
}
