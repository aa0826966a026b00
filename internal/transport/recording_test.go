package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoundary struct {
	text string
	json json.RawMessage
	err  error
}

func (f *fakeBoundary) RetrieveText(context.Context, string, url.Values) (string, error) {
	return f.text, f.err
}

func (f *fakeBoundary) RetrieveJSON(context.Context, string, url.Values, []byte) (json.RawMessage, error) {
	return f.json, f.err
}

func TestRecordingThenReplaying_RoundTripsText(t *testing.T) {
	dir := t.TempDir()
	delegate := &fakeBoundary{text: "hello world"}

	recorder, err := NewRecordingBoundary(dir, delegate)
	require.NoError(t, err)

	params := url.Values{"name": []string{"Falkenturm"}}
	got, err := recorder.RetrieveText(context.Background(), "https://example.test/summit", params)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	player, err := NewReplayingBoundary(dir)
	require.NoError(t, err)

	replayed, err := player.RetrieveText(context.Background(), "https://example.test/summit", params)
	require.NoError(t, err)
	assert.Equal(t, "hello world", replayed)
}

func TestReplaying_UnknownRequestReturnsDataRetrievalError(t *testing.T) {
	dir := t.TempDir()
	delegate := &fakeBoundary{text: "hello"}
	recorder, err := NewRecordingBoundary(dir, delegate)
	require.NoError(t, err)

	_, err = recorder.RetrieveText(context.Background(), "https://example.test/a", nil)
	require.NoError(t, err)

	player, err := NewReplayingBoundary(dir)
	require.NoError(t, err)

	_, err = player.RetrieveText(context.Background(), "https://example.test/b", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataRetrieval))
}

func TestRecording_DistinguishesRequestsByParams(t *testing.T) {
	dir := t.TempDir()
	delegate := &fakeBoundary{text: "payload-a"}
	recorder, err := NewRecordingBoundary(dir, delegate)
	require.NoError(t, err)

	_, err = recorder.RetrieveText(context.Background(), "https://example.test/s", url.Values{"name": []string{"A"}})
	require.NoError(t, err)

	delegate.text = "payload-b"
	_, err = recorder.RetrieveText(context.Background(), "https://example.test/s", url.Values{"name": []string{"B"}})
	require.NoError(t, err)

	player, err := NewReplayingBoundary(dir)
	require.NoError(t, err)

	gotA, err := player.RetrieveText(context.Background(), "https://example.test/s", url.Values{"name": []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, "payload-a", gotA)

	gotB, err := player.RetrieveText(context.Background(), "https://example.test/s", url.Values{"name": []string{"B"}})
	require.NoError(t, err)
	assert.Equal(t, "payload-b", gotB)
}
