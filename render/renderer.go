// Package render turns posts into HTML with the embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/pagination"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageList   = "list"
	PageDetail = "detail"
	PageForm   = "form"
)

// Layout holds the values the base template reads on every page.
type Layout struct {
	Title string
	Query string
}

type ListPageData struct {
	Layout
	Posts []*domain.Post
	Page  pagination.Page
	// Path is written to the load-more control's data-url.
	Path     string
	LoadMore bool
}

type DetailPageData struct {
	Layout
	Post    *domain.Post
	IsOwner bool
	CanEdit bool
}

// FormFields are the editable values of a post.
type FormFields struct {
	Title     string
	Text      string
	Published bool
}

type FormCategory struct {
	ID       int64
	Title    string
	Selected bool
}

type FormPageData struct {
	Layout
	Action     string
	Fields     FormFields
	Categories []FormCategory
}

// NewFormPageData fills the form from post, or leaves it empty when post is nil.
func NewFormPageData(title, action string, post *domain.Post, categories []domain.Category) FormPageData {
	data := FormPageData{Layout: Layout{Title: title}, Action: action}
	selected := make(map[int64]bool)
	if post != nil {
		data.Fields = FormFields{Title: post.Title, Text: post.Text, Published: post.Published}
		for _, c := range post.Categories {
			selected[c.ID] = true
		}
	}
	for _, c := range categories {
		data.Categories = append(data.Categories, FormCategory{ID: c.ID, Title: c.Title, Selected: selected[c.ID]})
	}
	return data
}

type bodyKey struct {
	id        int64
	updatedAt int64
}

type Renderer struct {
	pages  map[string]*template.Template
	posts  *template.Template
	policy *bluemonday.Policy
	bodies *lru.Cache[bodyKey, template.HTML]
}

func NewRenderer(cacheSize int) (*Renderer, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	bodies, err := lru.New[bodyKey, template.HTML](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create body cache: %w", err)
	}

	r := &Renderer{
		pages:  make(map[string]*template.Template),
		policy: bluemonday.UGCPolicy(),
		bodies: bodies,
	}

	base, err := template.New("base").Funcs(r.funcs()).ParseFS(templateFS, "templates/base.html", "templates/posts.html")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}
	r.posts = base

	for _, name := range []string{PageList, PageDetail, PageForm} {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"categoryList": CategoryList,
		"formatDate":   FormatDate,
		"postBody":     r.postBody,
	}
}

// RenderPosts renders the posts partial, the fragment load-more responses carry.
func (r *Renderer) RenderPosts(posts []*domain.Post) (string, error) {
	var buf bytes.Buffer
	if err := r.posts.ExecuteTemplate(&buf, "posts", posts); err != nil {
		return "", fmt.Errorf("render posts: %w", err)
	}
	return buf.String(), nil
}

// RenderPage renders a full page into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) RenderPage(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) postBody(p *domain.Post) template.HTML {
	key := bodyKey{id: p.ID, updatedAt: p.UpdatedAt.UnixNano()}
	if body, ok := r.bodies.Get(key); ok {
		return body
	}
	body := template.HTML(r.policy.Sanitize(p.Text))
	r.bodies.Add(key, body)
	return body
}

// CategoryList links each category to its list page, comma separated.
func CategoryList(categories []domain.Category) template.HTML {
	if len(categories) == 0 {
		return ""
	}
	links := make([]string, 0, len(categories))
	for _, c := range categories {
		links = append(links, fmt.Sprintf(`<a href="/blog/category/%d/">%s</a>`, c.ID, template.HTMLEscapeString(c.Title)))
	}
	return template.HTML(strings.Join(links, ", "))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
