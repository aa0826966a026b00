package teufelsturm

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicowilhelm/routedb/internal/pipe"
)

// fakeHTTP serves a fixed body for every URL requested, in order.
type fakeHTTP struct {
	bodies []string
	calls  int
}

func (f *fakeHTTP) RetrieveText(ctx context.Context, requestURL string, params url.Values) (string, error) {
	body := f.bodies[f.calls]
	f.calls++
	return body, nil
}

func (f *fakeHTTP) RetrieveJSON(ctx context.Context, requestURL string, params url.Values, body []byte) (json.RawMessage, error) {
	panic("not used by teufelsturm filter")
}

func page1() string {
	return `<div class="summit" data-name="Hoher Torstein">
  <div class="route" data-name="Alter Weg" data-grade="VIIb">
    <table class="posts">
      <tr>
        <td class="user">klaus</td>
        <td class="date">2020-05-01</td>
        <td class="rating">+ (gut)</td>
        <td class="comment">schoen</td>
      </tr>
    </table>
  </div>
</div>`
}

func page2SameSummit() string {
	return `<div class="summit" data-name="Hoher Torstein">
  <div class="route" data-name="Neuer Weg" data-grade="VIIIa">
    <table class="posts">
      <tr>
        <td class="user">erika</td>
        <td class="date">2021-06-01</td>
        <td class="rating">++ (sehr gut)</td>
        <td class="comment">klasse</td>
      </tr>
    </table>
  </div>
</div>`
}

func pageForbidden() string {
	return `<div class="summit" data-name="Slawe">
  <div class="route" data-name="Verbotener Weg" data-grade="VI">
    <table class="posts"></table>
  </div>
</div>`
}

func TestFilter_DedupsSummitAcrossMultipleRoutesByName(t *testing.T) {
	http := &fakeHTTP{bodies: []string{page1(), page2SameSummit()}}
	f := New(http, []int{1, 2})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)

	require.Equal(t, 1, output.SummitCount())

	var routeCount int
	for summitID := range output.IterSummits() {
		for range output.IterRoutesOf(summitID) {
			routeCount++
		}
	}
	require.Equal(t, 2, routeCount)
}

func TestFilter_SkipsForbiddenSummits(t *testing.T) {
	http := &fakeHTTP{bodies: []string{pageForbidden()}}
	f := New(http, []int{1})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

func TestFilter_FetchFailureIsLoggedAndSkipped(t *testing.T) {
	http := &erroringHTTP{}
	f := New(http, []int{1, 2})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

func TestFilter_ParseFailureIsLoggedAndSkipped(t *testing.T) {
	http := &fakeHTTP{bodies: []string{"<div>not a valid route page</div>"}}
	f := New(http, []int{1})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)
	require.Equal(t, 0, output.SummitCount())
}

type erroringHTTP struct{}

func (e *erroringHTTP) RetrieveText(ctx context.Context, requestURL string, params url.Values) (string, error) {
	return "", errors.New("connection reset")
}

func (e *erroringHTTP) RetrieveJSON(ctx context.Context, requestURL string, params url.Values, body []byte) (json.RawMessage, error) {
	panic("not used by teufelsturm filter")
}

func TestFilter_ImportsPostDetails(t *testing.T) {
	http := &fakeHTTP{bodies: []string{page1()}}
	f := New(http, []int{1})

	output := pipe.New()
	err := f.Run(context.Background(), output)
	require.NoError(t, err)

	for summitID := range output.IterSummits() {
		for routeID := range output.IterRoutesOf(summitID) {
			var posts int
			for post := range output.IterPostsOf(routeID) {
				posts++
				require.Equal(t, "klaus", post.UserName)
				require.Equal(t, 1, post.Rating)
			}
			require.Equal(t, 1, posts)
		}
	}
}
