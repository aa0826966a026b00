// Package transport is the HTTP networking boundary source filters fetch
// through. It offers a live client, a recording decorator that captures
// traffic to disk, and a player that replays a prior recording without any
// network access.
package transport

import (
	"context"
	"encoding/json"
	"net/url"
)

// HTTPBoundary is the networking boundary source filters depend on. Every
// implementation wraps non-2xx responses and transport-level failures in
// ErrDataRetrieval.
type HTTPBoundary interface {
	// RetrieveText fetches url (with params appended to the query string)
	// and returns the response body as text.
	RetrieveText(ctx context.Context, url string, params url.Values) (string, error)

	// RetrieveJSON fetches url (with params appended to the query string),
	// optionally POSTing body if non-nil, and returns the response body as
	// raw JSON; it is neither decoded nor validated.
	RetrieveJSON(ctx context.Context, url string, params url.Values, body []byte) (json.RawMessage, error)
}
