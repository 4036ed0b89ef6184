package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type ScopeKind string

const (
	ScopeAll      ScopeKind = "all"
	ScopeAuthor   ScopeKind = "author"
	ScopeCategory ScopeKind = "category"
)

// Scope selects which published posts a list or load-more request draws from.
type Scope struct {
	Kind ScopeKind
	ID   int64
}

func AllPosts() Scope { return Scope{Kind: ScopeAll} }

func AuthorScope(id int64) Scope { return Scope{Kind: ScopeAuthor, ID: id} }

func CategoryScope(id int64) Scope { return Scope{Kind: ScopeCategory, ID: id} }

// ParseScope derives the scope from the page URL a load-more control was rendered on.
// "/blog/author/7/" yields the author scope for 7; the type is the third segment from
// the end and the id the second, so the trailing slash is significant. Anything that
// does not match falls back to all posts.
func ParseScope(raw string) Scope {
	if raw == "" {
		return AllPosts()
	}
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	}
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return AllPosts()
	}
	kind := parts[len(parts)-3]
	id, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil || id < 1 {
		return AllPosts()
	}
	switch ScopeKind(kind) {
	case ScopeAuthor:
		return AuthorScope(id)
	case ScopeCategory:
		return CategoryScope(id)
	default:
		return AllPosts()
	}
}

func (s Scope) String() string {
	if s.Kind == ScopeAll || s.Kind == "" {
		return string(ScopeAll)
	}
	return fmt.Sprintf("%s:%d", s.Kind, s.ID)
}
