package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/pagination"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

func samplePosts() []*domain.Post {
	return []*domain.Post{
		{
			ID: 2, AuthorID: 7, AuthorName: "alice", Title: "Second",
			Text:       `<p>hello <script>alert(1)</script><b>world</b></p>`,
			Published:  true,
			Categories: []domain.Category{{ID: 1, Title: "Go"}, {ID: 3, Title: "Web & APIs"}},
			CreatedAt:  testTime, UpdatedAt: testTime,
		},
		{ID: 1, AuthorID: 8, AuthorName: "bob", Title: "First", Text: "plain", Published: true, CreatedAt: testTime, UpdatedAt: testTime},
	}
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(16)
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderPosts(t *testing.T) {
	r := newRenderer(t)

	html, err := r.RenderPosts(samplePosts())
	require.NoError(t, err)

	doc := parse(t, html)
	posts := doc.Find("article.post")
	require.Equal(t, 2, posts.Length())

	first := posts.First()
	assert.Equal(t, "Second", first.Find("h2 a").Text())
	href, _ := first.Find("h2 a").Attr("href")
	assert.Equal(t, "/blog/2/", href)
	assert.Contains(t, first.Find(".meta").Text(), "March 9, 2024")

	body, err := first.Find(".post-body").Html()
	require.NoError(t, err)
	assert.NotContains(t, body, "script")
	assert.Contains(t, body, "<b>world</b>")

	cats := first.Find(`.meta a[href^="/blog/category/"]`)
	require.Equal(t, 2, cats.Length())
	assert.Equal(t, "Web & APIs", cats.Last().Text())

	assert.NotContains(t, posts.Last().Find(".meta").Text(), " in ")
}

func TestRenderPosts_Empty(t *testing.T) {
	r := newRenderer(t)

	html, err := r.RenderPosts(nil)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(html))
}

func TestRenderPage_List(t *testing.T) {
	r := newRenderer(t)
	page := pagination.New(7, domain.PostsPerPage).Page(1)

	var buf bytes.Buffer
	err := r.RenderPage(&buf, PageList, ListPageData{
		Layout:   Layout{Title: "Blog Posts By alice"},
		Posts:    samplePosts(),
		Page:     page,
		Path:     "/blog/author/7/",
		LoadMore: true,
	})
	require.NoError(t, err)

	doc := parse(t, buf.String())
	assert.Equal(t, "Blog Posts By alice", doc.Find("title").Text())
	assert.Equal(t, 2, doc.Find("#posts article.post").Length())

	link := doc.Find("#loadMoreLink")
	require.Equal(t, 1, link.Length())
	p, _ := link.Attr("data-page")
	u, _ := link.Attr("data-url")
	assert.Equal(t, "2", p)
	assert.Equal(t, "/blog/author/7/", u)

	assert.Equal(t, 4, doc.Find(".pagination li").Length())
	assert.Equal(t, "1", doc.Find(".pagination li.active a").Text())
}

func TestRenderPage_ListLastPageHasNoControl(t *testing.T) {
	r := newRenderer(t)
	page := pagination.New(7, domain.PostsPerPage).Page(3)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageList, ListPageData{
		Layout:   Layout{Title: "Blog"},
		Page:     page,
		Path:     "/blog/",
		LoadMore: true,
	}))

	doc := parse(t, buf.String())
	assert.Zero(t, doc.Find("#loadMoreLink").Length())
	assert.Equal(t, 1, doc.Find(".pagination").Length())
}

func TestRenderPage_SearchKeepsQueryInPagination(t *testing.T) {
	r := newRenderer(t)
	page := pagination.New(4, domain.PostsPerPage).Page(1)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageList, ListPageData{
		Layout: Layout{Title: "Search", Query: "go lang"},
		Page:   page,
		Path:   "/blog/search/",
	}))

	doc := parse(t, buf.String())
	assert.Zero(t, doc.Find("#loadMoreLink").Length())
	href, _ := doc.Find(".pagination li a").Last().Attr("href")
	assert.Equal(t, "?q=go%20lang&page=2", href)
	value, _ := doc.Find(`input[name="q"]`).Attr("value")
	assert.Equal(t, "go lang", value)
}

func TestRenderPage_Detail(t *testing.T) {
	r := newRenderer(t)
	post := samplePosts()[0]
	post.Published = false

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageDetail, DetailPageData{
		Layout:  Layout{Title: post.Title},
		Post:    post,
		IsOwner: true,
		CanEdit: true,
	}))

	doc := parse(t, buf.String())
	assert.Contains(t, doc.Find("h1").Text(), "(draft)")
	href, _ := doc.Find("#editLink").Attr("href")
	assert.Equal(t, "/blog/edit/2/", href)
}

func TestRenderPage_Form(t *testing.T) {
	r := newRenderer(t)
	categories := []domain.Category{{ID: 1, Title: "Go"}, {ID: 2, Title: "Rust"}, {ID: 3, Title: "Web & APIs"}}

	t.Run("edit form is filled from the post", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderPage(&buf, PageForm, NewFormPageData("Edit Post", "/blog/edit/2/", samplePosts()[0], categories)))

		doc := parse(t, buf.String())
		action, _ := doc.Find("#postForm").Attr("action")
		assert.Equal(t, "/blog/edit/2/", action)
		title, _ := doc.Find(`input[name="title"]`).Attr("value")
		assert.Equal(t, "Second", title)
		assert.Contains(t, doc.Find(`textarea[name="text"]`).Text(), "<script>")
		_, checked := doc.Find(`input[name="published"]`).Attr("checked")
		assert.True(t, checked)

		var selected []string
		doc.Find(`select[name="category"] option[selected]`).Each(func(_ int, s *goquery.Selection) {
			selected = append(selected, s.AttrOr("value", ""))
		})
		assert.Equal(t, []string{"1", "3"}, selected)
	})

	t.Run("add form is empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderPage(&buf, PageForm, NewFormPageData("New Post", "/blog/add/", nil, categories)))

		doc := parse(t, buf.String())
		title, _ := doc.Find(`input[name="title"]`).Attr("value")
		assert.Empty(t, title)
		assert.Equal(t, 3, doc.Find(`select[name="category"] option`).Length())
		assert.Zero(t, doc.Find(`option[selected]`).Length())
	})
}

func TestRenderPage_Unknown(t *testing.T) {
	r := newRenderer(t)
	assert.Error(t, r.RenderPage(&bytes.Buffer{}, "missing", nil))
}

func TestPostBodyIsMemoized(t *testing.T) {
	r := newRenderer(t)
	post := &domain.Post{ID: 5, Text: "<i>a</i>", UpdatedAt: testTime}

	first := r.postBody(post)
	post.Text = "<i>b</i>"
	assert.Equal(t, first, r.postBody(post))

	post.UpdatedAt = testTime.Add(time.Second)
	assert.Equal(t, "<i>b</i>", string(r.postBody(post)))
}

func TestCategoryList(t *testing.T) {
	assert.Equal(t, "", string(CategoryList(nil)))
	assert.Equal(t,
		`<a href="/blog/category/1/">Go</a>, <a href="/blog/category/2/">&lt;b&gt;</a>`,
		string(CategoryList([]domain.Category{{ID: 1, Title: "Go"}, {ID: 2, Title: "<b>"}})),
	)
}
