package search_engine_gateway

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
	"github.com/hqpr/simple-blog/utils/logger"
)

// SearchEngineDriver is implemented by search_engine.MeilisearchDriver.
type SearchEngineDriver interface {
	Search(ctx context.Context, query string, offset, limit int) (domain.SearchHits, error)
	IndexPosts(ctx context.Context, docs []domain.IndexedPost) error
	DeletePosts(ctx context.Context, ids []int64) error
	EnsureIndex(ctx context.Context) error
}

type SearchEngineGateway struct {
	driver SearchEngineDriver
}

func NewSearchEngineGateway(driver SearchEngineDriver) *SearchEngineGateway {
	return &SearchEngineGateway{driver: driver}
}

func (g *SearchEngineGateway) SearchPostIDs(ctx context.Context, query string, offset, limit int) (domain.SearchHits, error) {
	hits, err := g.driver.Search(ctx, query, offset, limit)
	if err != nil {
		return domain.SearchHits{}, apperrors.ExternalAPIError("search engine query failed", err, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
	}
	logger.GlobalContext.WithContext(ctx).Debug("search engine query completed", "hits", len(hits.IDs), "total", hits.Total)
	return hits, nil
}

func (g *SearchEngineGateway) EnsureIndex(ctx context.Context) error {
	if err := g.driver.EnsureIndex(ctx); err != nil {
		return apperrors.ExternalAPIError("failed to prepare search index", err, nil)
	}
	return nil
}

func (g *SearchEngineGateway) IndexPosts(ctx context.Context, posts []domain.IndexedPost) error {
	if err := g.driver.IndexPosts(ctx, posts); err != nil {
		return apperrors.ExternalAPIError("failed to index posts", err, map[string]interface{}{"count": len(posts)})
	}
	return nil
}

func (g *SearchEngineGateway) DeletePosts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := g.driver.DeletePosts(ctx, ids); err != nil {
		return apperrors.ExternalAPIError("failed to delete posts from index", err, map[string]interface{}{"count": len(ids)})
	}
	return nil
}
