package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/nicowilhelm/routedb/internal/appmeta"
)

// Option configures a LiveBoundary.
type Option func(*LiveBoundary)

// WithHTTPClient overrides the default *http.Client. Useful for injecting a
// client with custom transport settings, or a test double.
func WithHTTPClient(client *http.Client) Option {
	return func(b *LiveBoundary) {
		b.client = client
	}
}

// WithUserAgent overrides the default User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(b *LiveBoundary) {
		b.userAgent = userAgent
	}
}

// WithMaxRetries caps the number of retry attempts for idempotent GET
// requests. The default is 3.
func WithMaxRetries(n uint64) Option {
	return func(b *LiveBoundary) {
		b.maxRetries = n
	}
}

// LiveBoundary is the real HTTPBoundary: it issues GET requests over an
// injectable *http.Client, retrying transient failures with exponential
// backoff.
type LiveBoundary struct {
	client     *http.Client
	userAgent  string
	maxRetries uint64
}

// NewLiveBoundary constructs a LiveBoundary with a 30-second default client
// timeout and this application's default User-Agent.
func NewLiveBoundary(opts ...Option) *LiveBoundary {
	b := &LiveBoundary{
		client:     &http.Client{Timeout: 30 * time.Second},
		userAgent:  appmeta.UserAgent(),
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RetrieveText implements HTTPBoundary.
func (b *LiveBoundary) RetrieveText(ctx context.Context, rawURL string, params url.Values) (string, error) {
	body, err := b.get(ctx, rawURL, params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// RetrieveJSON implements HTTPBoundary. If body is non-nil, it is sent as a
// POST payload instead of issuing a retried GET (POST requests are not
// idempotent, so they are attempted once).
func (b *LiveBoundary) RetrieveJSON(ctx context.Context, rawURL string, params url.Values, body []byte) (json.RawMessage, error) {
	var raw []byte
	var err error
	if body == nil {
		raw, err = b.get(ctx, rawURL, params)
	} else {
		raw, err = b.post(ctx, rawURL, params, body)
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (b *LiveBoundary) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	fullURL := withQuery(rawURL, params)

	var result []byte
	operation := func() error {
		body, retryable, err := b.doRequest(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			if retryable {
				return err
			}
			return backoff.Permanent(err)
		}
		result = body
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), b.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, &DataRetrievalError{URL: fullURL, Cause: err}
	}
	return result, nil
}

func (b *LiveBoundary) post(ctx context.Context, rawURL string, params url.Values, payload []byte) ([]byte, error) {
	fullURL := withQuery(rawURL, params)
	body, _, err := b.doRequest(ctx, http.MethodPost, fullURL, payload)
	if err != nil {
		return nil, &DataRetrievalError{URL: fullURL, Cause: err}
	}
	return body, nil
}

// doRequest issues a single HTTP request. The returned bool reports whether
// the error, if any, is worth retrying (network-level failures and 5xx
// responses are; 4xx responses are not).
func (b *LiveBoundary) doRequest(ctx context.Context, method, fullURL string, payload []byte) ([]byte, bool, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", b.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("server error: status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, false, fmt.Errorf("client error: status %d", resp.StatusCode)
	}
	return data, false, nil
}

func withQuery(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	return rawURL + "?" + params.Encode()
}
