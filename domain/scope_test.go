package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Scope
	}{
		{name: "empty", raw: "", want: AllPosts()},
		{name: "main list", raw: "/blog/", want: AllPosts()},
		{name: "author page", raw: "/blog/author/7/", want: AuthorScope(7)},
		{name: "category page", raw: "/blog/category/2/", want: CategoryScope(2)},
		{name: "absolute url", raw: "http://example.com/blog/category/12/?page=2", want: CategoryScope(12)},
		{name: "no trailing slash", raw: "/blog/author/7", want: AllPosts()},
		{name: "non numeric id", raw: "/blog/author/abc/", want: AllPosts()},
		{name: "zero id", raw: "/blog/category/0/", want: AllPosts()},
		{name: "unknown type", raw: "/blog/search/5/", want: AllPosts()},
		{name: "single segment", raw: "x", want: AllPosts()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScope(tt.raw))
		})
	}
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "all", AllPosts().String())
	assert.Equal(t, "all", Scope{}.String())
	assert.Equal(t, "author:7", AuthorScope(7).String())
	assert.Equal(t, "category:3", CategoryScope(3).String())
}
