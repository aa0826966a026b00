// Package teufelsturm is a minimal, illustrative IMPORT-stage source
// filter standing in for the real teufelsturm.de HTML scraper. It walks a
// small fixed set of route detail pages and extracts one summit, one
// route, and that route's posts from each — enough to exercise the
// SourceFilter contract, the deny-list, and the per-summit dedup rule,
// without being a complete site client.
package teufelsturm

import (
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nicowilhelm/routedb/internal/entity"
	"github.com/nicowilhelm/routedb/internal/gradeparse"
	"github.com/nicowilhelm/routedb/internal/source"
)

// page is a single route detail page's parsed content.
type page struct {
	summitName string
	route      *entity.Route
	posts      []*entity.Post
}

// parsePage tokenizes a route detail page of the expected shape:
//
//	<div class="summit" data-name="...">
//	  <div class="route" data-name="..." data-grade="...">
//	    <table class="posts">
//	      <tr>
//	        <td class="user">...</td>
//	        <td class="date">2006-01-02</td>
//	        <td class="rating">+ (gut)</td>
//	        <td class="comment">...</td>
//	      </tr>
//	      ...
//	    </table>
//	  </div>
//	</div>
//
// It returns a *source.DataProcessingError if required attributes are
// missing or a date fails to parse.
func parsePage(body string) (*page, error) {
	z := html.NewTokenizer(strings.NewReader(body))

	var result page
	var currentPost *entity.Post
	var currentClass string

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if result.summitName == "" {
				return nil, &source.DataProcessingError{Source: "teufelsturm.de", Detail: "page has no summit element"}
			}
			if result.route == nil {
				return nil, &source.DataProcessingError{Source: "teufelsturm.de", Detail: "page has no route element"}
			}
			return &result, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "div":
				class := attr(tok, "class")
				switch class {
				case "summit":
					result.summitName = attr(tok, "data-name")
				case "route":
					result.route = &entity.Route{
						RouteName: attr(tok, "data-name"),
						Grade:     attr(tok, "data-grade"),
					}
					if g := attr(tok, "data-grade"); g != "" {
						if tuple, err := gradeparse.Parse(g); err == nil {
							result.route.ApplyTuple(tuple)
						}
					}
				}
			case "tr":
				currentPost = &entity.Post{}
			case "td":
				currentClass = attr(tok, "class")
			}

		case html.TextToken:
			if currentPost == nil {
				continue
			}
			text := strings.TrimSpace(string(z.Text()))
			if text == "" {
				continue
			}
			switch currentClass {
			case "user":
				currentPost.UserName = text
			case "date":
				t, err := time.Parse("2006-01-02", text)
				if err != nil {
					return nil, &source.DataProcessingError{Source: "teufelsturm.de", Detail: "invalid post date", Cause: err}
				}
				currentPost.PostDate = t
			case "rating":
				currentPost.Rating = ParseRating(text)
			case "comment":
				currentPost.Comment = text
			}

		case html.EndTagToken:
			tok := z.Token()
			if tok.Data == "tr" && currentPost != nil {
				result.posts = append(result.posts, currentPost)
				currentPost = nil
			}
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
