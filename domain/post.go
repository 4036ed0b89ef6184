package domain

import "time"

// PostsPerPage is the page size shared by the blog lists and the load-more endpoint.
const PostsPerPage = 3

type Post struct {
	ID         int64      `json:"id"`
	AuthorID   int64      `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	Published  bool       `json:"published"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// PostDraft carries user input for creating or editing a post.
type PostDraft struct {
	Title       string  `json:"title" validate:"required,notblank,max=255"`
	Text        string  `json:"text" validate:"required"`
	Published   bool    `json:"published"`
	CategoryIDs []int64 `json:"category_ids" validate:"dive,gt=0"`
}

// SearchHits is one window of search engine results. Total is the engine's
// estimate of all matches, used for paging.
type SearchHits struct {
	IDs   []int64
	Total int
}

// IndexedPost is the document shape pushed to the search engine.
type IndexedPost struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	AuthorID   int64    `json:"author_id"`
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
	CreatedAt  int64    `json:"created_at"`
}

func NewIndexedPost(p *Post) IndexedPost {
	cats := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, c.Title)
	}
	return IndexedPost{
		ID:         p.ID,
		Title:      p.Title,
		Author:     p.AuthorName,
		AuthorID:   p.AuthorID,
		Text:       p.Text,
		Categories: cats,
		CreatedAt:  p.CreatedAt.Unix(),
	}
}

// IndexCursor marks the last post pushed to the search index.
type IndexCursor struct {
	UpdatedAt time.Time
	ID        int64
}
