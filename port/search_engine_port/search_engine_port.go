package search_engine_port

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=search_engine_port.go -destination=../../mocks/mock_search_engine_port.go -package=mocks

type SearchEnginePort interface {
	SearchPostIDs(ctx context.Context, query string, offset, limit int) (domain.SearchHits, error)
}

type IndexPostsPort interface {
	EnsureIndex(ctx context.Context) error
	IndexPosts(ctx context.Context, posts []domain.IndexedPost) error
	DeletePosts(ctx context.Context, ids []int64) error
}
