package post_port

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=post_port.go -destination=../../mocks/mock_post_port.go -package=mocks

type FetchPostsPort interface {
	CountPublishedPosts(ctx context.Context, scope domain.Scope) (int, error)
	FetchPublishedPosts(ctx context.Context, scope domain.Scope, offset, limit int) ([]*domain.Post, error)
}

type PostPort interface {
	FetchPostByID(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, authorID int64, draft domain.PostDraft) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, draft domain.PostDraft) (*domain.Post, error)
}

type SearchPostsPort interface {
	CountSearchedPosts(ctx context.Context, terms []string) (int, error)
	SearchPublishedPosts(ctx context.Context, terms []string, offset, limit int) ([]*domain.Post, error)
	FetchPublishedPostsByIDs(ctx context.Context, ids []int64) ([]*domain.Post, error)
}

type IndexSourcePort interface {
	FetchPostsUpdatedAfter(ctx context.Context, cursor domain.IndexCursor, limit int) ([]*domain.Post, error)
}
