// Package loadmore implements the client side of the blog's "load more"
// control against an in-memory HTML document.
package loadmore

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// DefaultPaginationSelector is the list pages' pagination widget, for use as
// Options.PaginationSelector.
const DefaultPaginationSelector = ".pagination"

// Selectors locate the control and the posts container.
type Selectors struct {
	Control   string
	Container string
}

var DefaultSelectors = Selectors{
	Control:   "#loadMoreLink",
	Container: "#posts",
}

// Document guards a parsed page. All reads and writes go through the mutex so
// that concurrent responses mutate the tree one at a time.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document
}

func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{doc: doc}, nil
}

func NewDocumentFromString(html string) (*Document, error) {
	return NewDocument(strings.NewReader(html))
}

// Standalone builds a minimal document holding an empty posts container and a
// control pointing at page, for callers that start without a rendered list page.
func Standalone(page int, url string) *Document {
	var b strings.Builder
	b.WriteString(`<html><body><div id="posts"></div><a href="#" id="loadMoreLink" data-page="`)
	b.WriteString(strconv.Itoa(page))
	b.WriteString(`"`)
	if url != "" {
		b.WriteString(` data-url="`)
		b.WriteString(html.EscapeString(url))
		b.WriteString(`"`)
	}
	b.WriteString(`>Load more</a></body></html>`)

	doc, err := NewDocumentFromString(b.String())
	if err != nil {
		// goquery parses any input; the literal above cannot fail.
		panic(err)
	}
	return doc
}

// View runs fn with the document locked. fn must not keep the selection.
func (d *Document) View(fn func(doc *goquery.Document)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.doc)
}

func (d *Document) HTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Html()
}

// InnerHTML returns the markup inside the first element matching selector.
func (d *Document) InnerHTML(selector string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return sel.Html()
}

func isHidden(sel *goquery.Selection) bool {
	style, _ := sel.Attr("style")
	return strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}

// hide sets display: none on every element in sel and keeps the rest of its inline style.
func hide(sel *goquery.Selection) {
	sel.Each(func(_ int, el *goquery.Selection) {
		style, _ := el.Attr("style")
		el.SetAttr("style", withDisplayNone(style))
	})
}

func withDisplayNone(style string) string {
	var decls []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		decls = append(decls, decl)
	}
	decls = append(decls, "display: none")
	return strings.Join(decls, "; ") + ";"
}
