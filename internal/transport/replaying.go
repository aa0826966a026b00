package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// ReplayingBoundary serves previously recorded traffic from disk without
// making any network requests. It loads index.json once at construction.
type ReplayingBoundary struct {
	dir string
	// index[url][paramsHash][payloadHash] = file name.
	index map[string]map[string]map[string]string
}

// NewReplayingBoundary loads the recording in dir.
func NewReplayingBoundary(dir string) (*ReplayingBoundary, error) {
	data, err := os.ReadFile(filepath.Join(dir, recordIndexFileName))
	if err != nil {
		return nil, fmt.Errorf("transport: loading record index: %w", err)
	}

	var entries []recordIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("transport: decoding record index: %w", err)
	}

	index := make(map[string]map[string]map[string]string)
	for _, e := range entries {
		byParams, ok := index[e.URL]
		if !ok {
			byParams = make(map[string]map[string]string)
			index[e.URL] = byParams
		}
		byPayload, ok := byParams[e.ParamsHash]
		if !ok {
			byPayload = make(map[string]string)
			byParams[e.ParamsHash] = byPayload
		}
		byPayload[e.PayloadHash] = e.FileName
	}

	return &ReplayingBoundary{dir: dir, index: index}, nil
}

// RetrieveText implements HTTPBoundary.
func (b *ReplayingBoundary) RetrieveText(_ context.Context, rawURL string, params url.Values) (string, error) {
	content, err := b.replay(rawURL, params, nil)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RetrieveJSON implements HTTPBoundary.
func (b *ReplayingBoundary) RetrieveJSON(_ context.Context, rawURL string, params url.Values, body []byte) (json.RawMessage, error) {
	content, err := b.replay(rawURL, params, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(content), nil
}

func (b *ReplayingBoundary) replay(rawURL string, params url.Values, requestPayload []byte) ([]byte, error) {
	fileName := b.index[rawURL][hashParams(params)][hashPayload(requestPayload)]
	if fileName == "" {
		return nil, &DataRetrievalError{URL: rawURL, Cause: fmt.Errorf("no recorded traffic found")}
	}

	data, err := os.ReadFile(filepath.Join(b.dir, fileName))
	if err != nil {
		return nil, &DataRetrievalError{URL: rawURL, Cause: err}
	}
	return data, nil
}
