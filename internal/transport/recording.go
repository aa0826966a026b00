package transport

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const recordIndexFileName = "index.json"

// recordIndexEntry is a single entry of the traffic recording's index.json,
// identifying one HTTP request and the file its response payload was
// written to.
type recordIndexEntry struct {
	URL         string `json:"url"`
	ParamsHash  string `json:"params_hash"`
	PayloadHash string `json:"payload_hash"`
	FileName    string `json:"file_name"`
}

// RecordingBoundary decorates a delegate HTTPBoundary, writing every
// response payload to disk and appending a record to index.json, rewritten
// after each request.
type RecordingBoundary struct {
	delegate HTTPBoundary
	dir      string

	mu    sync.Mutex
	index []recordIndexEntry
}

// NewRecordingBoundary constructs a RecordingBoundary that writes into dir,
// creating it if necessary. Pre-existing recordings in dir are not deleted,
// but index.json is overwritten as new requests are recorded.
func NewRecordingBoundary(dir string, delegate HTTPBoundary) (*RecordingBoundary, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("transport: creating recording directory: %w", err)
	}
	return &RecordingBoundary{delegate: delegate, dir: dir}, nil
}

// RetrieveText implements HTTPBoundary.
func (b *RecordingBoundary) RetrieveText(ctx context.Context, rawURL string, params url.Values) (string, error) {
	content, err := b.delegate.RetrieveText(ctx, rawURL, params)
	if err != nil {
		return "", err
	}
	if err := b.record(rawURL, params, nil, []byte(content)); err != nil {
		return "", err
	}
	return content, nil
}

// RetrieveJSON implements HTTPBoundary.
func (b *RecordingBoundary) RetrieveJSON(ctx context.Context, rawURL string, params url.Values, body []byte) (json.RawMessage, error) {
	content, err := b.delegate.RetrieveJSON(ctx, rawURL, params, body)
	if err != nil {
		return nil, err
	}
	if err := b.record(rawURL, params, body, content); err != nil {
		return nil, err
	}
	return content, nil
}

func (b *RecordingBoundary) record(rawURL string, params url.Values, requestPayload, responsePayload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	fileName := strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := os.WriteFile(filepath.Join(b.dir, fileName), responsePayload, 0o644); err != nil {
		return fmt.Errorf("transport: writing recorded payload: %w", err)
	}

	b.index = append(b.index, recordIndexEntry{
		URL:         rawURL,
		ParamsHash:  hashParams(params),
		PayloadHash: hashPayload(requestPayload),
		FileName:    fileName,
	})

	return b.writeIndex()
}

func (b *RecordingBoundary) writeIndex() error {
	data, err := json.Marshal(b.index)
	if err != nil {
		return fmt.Errorf("transport: encoding record index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, recordIndexFileName), data, 0o644); err != nil {
		return fmt.Errorf("transport: writing record index: %w", err)
	}
	return nil
}

// hashParams is the SHA-1 hash of params' canonical "key=value&..." form
// (keys sorted), mirroring the traffic recorder's params_hash field.
func hashParams(params url.Values) string {
	return sha1Hex(canonicalParams(params))
}

// hashPayload is the SHA-1 hash of a request payload, or of the empty
// string when there is none (a GET request).
func hashPayload(payload []byte) string {
	return sha1Hex(string(payload))
}

func canonicalParams(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		values := append([]string(nil), params[k]...)
		sort.Strings(values)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(values, ","))
	}
	return b.String()
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
