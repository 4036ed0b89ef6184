package loadmore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hqpr/simple-blog/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPage = `<html><body>
<div id="posts"><article class="post" data-id="1"></article></div>
<ul class="pagination"><li><a href="?page=2">2</a></li></ul>
<a href="#" id="loadMoreLink" data-page="%PAGE%" data-url="/blog/author/7/">Load more</a>
</body></html>`

func newDoc(t *testing.T, page string) *Document {
	t.Helper()
	doc, err := NewDocumentFromString(strings.ReplaceAll(listPage, "%PAGE%", page))
	require.NoError(t, err)
	return doc
}

func jsonHandler(t *testing.T, resp domain.LoadMoreResponse) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func containerHTML(t *testing.T, doc *Document) string {
	t.Helper()
	html, err := doc.InnerHTML(DefaultSelectors.Container)
	require.NoError(t, err)
	return html
}

func TestLoadAppendsFragmentAndAdvancesCursor(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, domain.LoadMoreResponse{PostsHTML: "<div>X</div>", HasNext: true}))
	defer srv.Close()

	doc := newDoc(t, "2")
	ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{})
	require.NoError(t, err)

	out, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Cursor)
	assert.Equal(t, 3, out.NextCursor)
	assert.True(t, out.HasNext)
	assert.True(t, strings.HasSuffix(containerHTML(t, doc), "<div>X</div>"))

	cursor, err := ctrl.Cursor()
	require.NoError(t, err)
	assert.Equal(t, 3, cursor)
	assert.False(t, ctrl.Hidden())
}

func TestLoadHidesControlOnLastPage(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, domain.LoadMoreResponse{PostsHTML: "<div>Last</div>", HasNext: false}))
	defer srv.Close()

	tests := []struct {
		name               string
		paginationSelector string
		wantPaginationHide bool
	}{
		{name: "control only", paginationSelector: "", wantPaginationHide: false},
		{name: "control and pagination", paginationSelector: DefaultPaginationSelector, wantPaginationHide: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc(t, "4")
			ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{PaginationSelector: tt.paginationSelector})
			require.NoError(t, err)

			_, err = ctrl.Load(context.Background())
			require.NoError(t, err)

			assert.True(t, ctrl.Hidden())
			cursor, err := ctrl.Cursor()
			require.NoError(t, err)
			assert.Equal(t, 4, cursor)
			assert.Contains(t, containerHTML(t, doc), "<div>Last</div>")

			html, err := doc.HTML()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaginationHide, strings.Contains(html, `<ul class="pagination" style="display: none;">`))
		})
	}
}

func TestLoadFailureLeavesDocumentUntouched(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
				assert.Equal(t, "boom", statusErr.Body)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html>not json</html>")
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode load more response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			doc := newDoc(t, "2")
			before, err := doc.HTML()
			require.NoError(t, err)

			ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{PaginationSelector: DefaultPaginationSelector})
			require.NoError(t, err)

			_, err = ctrl.Load(context.Background())
			require.Error(t, err)
			tt.check(t, err)

			after, err := doc.HTML()
			require.NoError(t, err)
			assert.Equal(t, before, after)
			assert.False(t, ctrl.Hidden())
		})
	}
}

func TestLoadTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	doc := newDoc(t, "2")
	ctrl, err := Attach(doc, baseURL, nil, Options{})
	require.NoError(t, err)

	_, err = ctrl.Load(context.Background())
	require.Error(t, err)

	cursor, err := ctrl.Cursor()
	require.NoError(t, err)
	assert.Equal(t, 2, cursor)
	assert.NotContains(t, containerHTML(t, doc), "<div>")
}

func TestRequestBody(t *testing.T) {
	tests := []struct {
		name            string
		includeURLParam bool
		want            string
	}{
		{name: "page only", includeURLParam: false, want: "page=3"},
		{name: "with url", includeURLParam: true, want: "page=3&url=%2Fblog%2Fauthor%2F7%2F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotBody        string
				gotMethod      string
				gotPath        string
				gotContentType string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				gotBody = string(raw)
				gotMethod = r.Method
				gotPath = r.URL.Path
				gotContentType = r.Header.Get("Content-Type")
				_, _ = io.WriteString(w, `{"posts_html":"","has_next":true}`)
			}))
			defer srv.Close()

			ctrl, err := Attach(newDoc(t, "3"), srv.URL+"/", srv.Client(), Options{IncludeURLParam: tt.includeURLParam})
			require.NoError(t, err)

			_, err = ctrl.Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.want, gotBody)
			assert.Equal(t, http.MethodPost, gotMethod)
			assert.Equal(t, Endpoint, gotPath)
			assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
		})
	}
}

func TestOverlappingActivationsAppendInArrivalOrder(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			close(firstArrived)
			<-releaseFirst
			_, _ = io.WriteString(w, `{"posts_html":"<div>A</div>","has_next":false}`)
			return
		}
		_, _ = io.WriteString(w, `{"posts_html":"<div>B</div>","has_next":true}`)
	}))
	defer srv.Close()

	doc := newDoc(t, "2")
	var (
		resultsMu sync.Mutex
		results   []Outcome
	)
	ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{
		OnResult: func(out Outcome) {
			resultsMu.Lock()
			results = append(results, out)
			resultsMu.Unlock()
			if out.Fragment == "<div>B</div>" {
				close(releaseFirst)
			}
		},
		OnError: func(err error) {
			t.Errorf("unexpected error: %v", err)
		},
	})
	require.NoError(t, err)

	ctx := context.Background()
	ctrl.Activate(ctx)
	select {
	case <-firstArrived:
	case <-time.After(5 * time.Second):
		t.Fatal("first request never reached the server")
	}
	ctrl.Activate(ctx)
	ctrl.Wait()

	html := containerHTML(t, doc)
	b := strings.Index(html, "<div>B</div>")
	a := strings.Index(html, "<div>A</div>")
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, b, a)

	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Cursor)
	assert.Equal(t, 2, results[1].Cursor)

	// The last response to land wins: A said there is no next page.
	assert.True(t, ctrl.Hidden())
	cursor, err := ctrl.Cursor()
	require.NoError(t, err)
	assert.Equal(t, 3, cursor)
}

func TestActivateReportsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var gotErr error
	ctrl, err := Attach(newDoc(t, "2"), srv.URL, srv.Client(), Options{
		OnError: func(err error) { gotErr = err },
	})
	require.NoError(t, err)

	ctrl.Activate(context.Background())
	ctrl.Wait()

	var statusErr *StatusError
	require.ErrorAs(t, gotErr, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}

func TestAttachWithoutControl(t *testing.T) {
	doc, err := NewDocumentFromString(`<div id="posts"></div>`)
	require.NoError(t, err)

	_, err = Attach(doc, "http://localhost", nil, Options{})
	assert.ErrorIs(t, err, ErrControlNotFound)
}

func TestInvalidCursor(t *testing.T) {
	ctrl, err := Attach(newDoc(t, "next"), "http://localhost", nil, Options{})
	require.NoError(t, err)

	_, err = ctrl.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestStandalone(t *testing.T) {
	doc := Standalone(5, `/blog/category/"3"/`)
	ctrl, err := Attach(doc, "http://localhost", nil, Options{IncludeURLParam: true})
	require.NoError(t, err)

	cursor, err := ctrl.Cursor()
	require.NoError(t, err)
	assert.Equal(t, 5, cursor)

	var dataURL string
	doc.View(func(d *goquery.Document) {
		dataURL, _ = d.Find(DefaultSelectors.Control).Attr("data-url")
	})
	assert.Equal(t, `/blog/category/"3"/`, dataURL)
}

func TestLoadKeepsExistingInlineStyle(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, domain.LoadMoreResponse{HasNext: false}))
	defer srv.Close()

	doc, err := NewDocumentFromString(`<div id="posts"></div>
<nav class="pagination" style="margin: 0; display: block"></nav>
<a id="loadMoreLink" data-page="2" style="color: red">Load more</a>`)
	require.NoError(t, err)

	ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{PaginationSelector: DefaultPaginationSelector})
	require.NoError(t, err)
	_, err = ctrl.Load(context.Background())
	require.NoError(t, err)

	var controlStyle, paginationStyle string
	doc.View(func(d *goquery.Document) {
		controlStyle = d.Find(DefaultSelectors.Control).AttrOr("style", "")
		paginationStyle = d.Find(DefaultPaginationSelector).AttrOr("style", "")
	})
	assert.Equal(t, "color: red; display: none;", controlStyle)
	assert.Equal(t, "margin: 0; display: none;", paginationStyle)
	assert.True(t, ctrl.Hidden())
}

func TestCustomSelectors(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, domain.LoadMoreResponse{PostsHTML: "<p>more</p>", HasNext: false}))
	defer srv.Close()

	doc, err := NewDocumentFromString(`<section class="feed"></section><ul class="pager"></ul><button class="more" data-page="2">More</button>`)
	require.NoError(t, err)

	ctrl, err := Attach(doc, srv.URL, srv.Client(), Options{
		Selectors:          Selectors{Control: "button.more", Container: "section.feed"},
		PaginationSelector: ".pager",
	})
	require.NoError(t, err)
	_, err = ctrl.Load(context.Background())
	require.NoError(t, err)

	feed, err := doc.InnerHTML("section.feed")
	require.NoError(t, err)
	assert.Equal(t, "<p>more</p>", feed)
	assert.True(t, ctrl.Hidden())

	var pagerStyle string
	doc.View(func(d *goquery.Document) {
		pagerStyle = d.Find(".pager").AttrOr("style", "")
	})
	assert.Equal(t, "display: none;", pagerStyle)
}

func TestWithDisplayNone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "display: none;"},
		{in: "color: red", want: "color: red; display: none;"},
		{in: "color: red;", want: "color: red; display: none;"},
		{in: "DISPLAY: flex; width: 10px", want: "width: 10px; display: none;"},
		{in: "display: none;", want: "display: none;"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, withDisplayNone(tt.in))
		})
	}
}
