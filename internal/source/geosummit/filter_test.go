package geosummit

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicowilhelm/routedb/internal/pipe"
)

type fakeHTTP struct {
	response json.RawMessage
	lastBody []byte
}

func (f *fakeHTTP) RetrieveText(ctx context.Context, requestURL string, params url.Values) (string, error) {
	panic("not used by geosummit filter")
}

func (f *fakeHTTP) RetrieveJSON(ctx context.Context, requestURL string, params url.Values, body []byte) (json.RawMessage, error) {
	f.lastBody = body
	return f.response, nil
}

func TestFilter_ResolvesNamesToPositions(t *testing.T) {
	http := &fakeHTTP{response: json.RawMessage(`[{"name":"Hoher Torstein","lat":50.9,"lon":14.1}]`)}
	f := New(http, []string{"Hoher Torstein"})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 1, output.SummitCount())

	for _, summit := range output.IterSummits() {
		require.Equal(t, "Hoher Torstein", summit.OfficialName)
		require.False(t, summit.HighGradePosition.IsUndefined())
	}
}

func TestFilter_SkipsForbiddenSummits(t *testing.T) {
	http := &fakeHTTP{response: json.RawMessage(`[{"name":"Slawe","lat":50.9,"lon":14.1}]`)}
	f := New(http, []string{"Slawe"})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

func TestFilter_MalformedPayloadIsLoggedAndSkipped(t *testing.T) {
	http := &fakeHTTP{response: json.RawMessage(`not json`)}
	f := New(http, []string{"Hoher Torstein"})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

func TestFilter_FetchFailureIsLoggedAndSkipped(t *testing.T) {
	http := &erroringHTTP{}
	f := New(http, []string{"Hoher Torstein"})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

type erroringHTTP struct{}

func (e *erroringHTTP) RetrieveText(ctx context.Context, requestURL string, params url.Values) (string, error) {
	panic("not used by geosummit filter")
}

func (e *erroringHTTP) RetrieveJSON(ctx context.Context, requestURL string, params url.Values, body []byte) (json.RawMessage, error) {
	return nil, errors.New("connection reset")
}

func TestFilter_BatchesRequestsBySize(t *testing.T) {
	http := &fakeHTTP{response: json.RawMessage(`[]`)}
	f := New(http, []string{"A", "B", "C"}, WithBatchSize(2))

	var calls int
	wrapped := &countingHTTP{fakeHTTP: http, calls: &calls}
	f.http = wrapped

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

type countingHTTP struct {
	*fakeHTTP
	calls *int
}

func (c *countingHTTP) RetrieveJSON(ctx context.Context, requestURL string, params url.Values, body []byte) (json.RawMessage, error) {
	*c.calls++
	return c.fakeHTTP.RetrieveJSON(ctx, requestURL, params, body)
}
