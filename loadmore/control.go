package loadmore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/hqpr/simple-blog/domain"

	"github.com/PuerkitoBio/goquery"
)

// Endpoint is the fixed path the control posts to.
const Endpoint = "/blog/load_more/"

const maxErrorBody = 512

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// IncludeURLParam sends the control's data-url along with the page.
	IncludeURLParam bool
	// PaginationSelector names a widget hidden together with the control on
	// the last page. Empty disables it.
	PaginationSelector string
	// Selectors overrides the control and container lookups. Zero fields fall
	// back to DefaultSelectors.
	Selectors Selectors

	OnResult func(Outcome)
	OnError  func(error)
}

// Outcome describes one successful load.
type Outcome struct {
	Cursor     int
	Fragment   string
	HasNext    bool
	NextCursor int
}

type Control struct {
	doc      *Document
	client   HTTPDoer
	endpoint string
	opts     Options
	wg       sync.WaitGroup
}

// Attach binds a control to doc. baseURL is the server origin, e.g.
// "http://localhost:8000". A nil client uses http.DefaultClient.
func Attach(doc *Document, baseURL string, client HTTPDoer, opts Options) (*Control, error) {
	if opts.Selectors.Control == "" {
		opts.Selectors.Control = DefaultSelectors.Control
	}
	if opts.Selectors.Container == "" {
		opts.Selectors.Container = DefaultSelectors.Container
	}
	if opts.OnResult == nil {
		opts.OnResult = func(Outcome) {}
	}
	if opts.OnError == nil {
		opts.OnError = func(error) {}
	}
	if client == nil {
		client = http.DefaultClient
	}

	var found bool
	doc.View(func(d *goquery.Document) {
		found = d.Find(opts.Selectors.Control).Length() > 0 && d.Find(opts.Selectors.Container).Length() > 0
	})
	if !found {
		return nil, ErrControlNotFound
	}

	return &Control{
		doc:      doc,
		client:   client,
		endpoint: strings.TrimRight(baseURL, "/") + Endpoint,
		opts:     opts,
	}, nil
}

// Cursor returns the page the next activation will request.
func (c *Control) Cursor() (int, error) {
	var (
		cursor int
		err    error
	)
	c.doc.View(func(d *goquery.Document) {
		cursor, _, err = c.readState(d)
	})
	return cursor, err
}

// Hidden reports whether the control has been hidden.
func (c *Control) Hidden() bool {
	var hidden bool
	c.doc.View(func(d *goquery.Document) {
		hidden = isHidden(d.Find(c.opts.Selectors.Control).First())
	})
	return hidden
}

// Load performs one activation synchronously. On any failure the document is
// left untouched.
func (c *Control) Load(ctx context.Context) (Outcome, error) {
	var (
		cursor  int
		dataURL string
		err     error
	)
	c.doc.View(func(d *goquery.Document) {
		cursor, dataURL, err = c.readState(d)
	})
	if err != nil {
		return Outcome{}, err
	}

	resp, err := c.fetch(ctx, cursor, dataURL)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Cursor: cursor, Fragment: resp.PostsHTML, HasNext: resp.HasNext, NextCursor: cursor}
	c.doc.View(func(d *goquery.Document) {
		d.Find(c.opts.Selectors.Container).First().AppendHtml(resp.PostsHTML)

		control := d.Find(c.opts.Selectors.Control).First()
		if resp.HasNext {
			out.NextCursor = cursor + 1
			control.SetAttr("data-page", strconv.Itoa(out.NextCursor))
			return
		}
		hide(control)
		if c.opts.PaginationSelector != "" {
			hide(d.Find(c.opts.PaginationSelector))
		}
	})
	return out, nil
}

// Activate starts a load in the background and reports through the
// callbacks. Overlapping activations are not coalesced.
func (c *Control) Activate(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		out, err := c.Load(ctx)
		if err != nil {
			c.opts.OnError(err)
			return
		}
		c.opts.OnResult(out)
	}()
}

// Wait blocks until every activation has finished.
func (c *Control) Wait() {
	c.wg.Wait()
}

func (c *Control) readState(d *goquery.Document) (int, string, error) {
	control := d.Find(c.opts.Selectors.Control).First()
	if control.Length() == 0 {
		return 0, "", ErrControlNotFound
	}
	raw, _ := control.Attr("data-page")
	cursor, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidCursor, raw)
	}
	dataURL, _ := control.Attr("data-url")
	return cursor, dataURL, nil
}

func (c *Control) fetch(ctx context.Context, cursor int, dataURL string) (*domain.LoadMoreResponse, error) {
	form := url.Values{}
	form.Set("page", strconv.Itoa(cursor))
	if c.opts.IncludeURLParam {
		form.Set("url", dataURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load more request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload domain.LoadMoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode load more response: %w", err)
	}
	return &payload, nil
}
