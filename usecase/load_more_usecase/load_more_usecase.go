package load_more_usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/port/fragment_cache_port"
	"github.com/hqpr/simple-blog/port/post_port"
	"github.com/hqpr/simple-blog/port/render_port"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/otel"
	"github.com/hqpr/simple-blog/utils/pagination"
)

// LoadMoreInput carries the raw form values of a load-more request.
type LoadMoreInput struct {
	Page string
	URL  string
}

type LoadMoreUsecase struct {
	fetchPostsPort post_port.FetchPostsPort
	renderPort     render_port.RenderPostsPort
	cachePort      fragment_cache_port.FragmentCachePort
}

func NewLoadMoreUsecase(
	fetchPostsPort post_port.FetchPostsPort,
	renderPort render_port.RenderPostsPort,
	cachePort fragment_cache_port.FragmentCachePort,
) *LoadMoreUsecase {
	return &LoadMoreUsecase{
		fetchPostsPort: fetchPostsPort,
		renderPort:     renderPort,
		cachePort:      cachePort,
	}
}

func (u *LoadMoreUsecase) Execute(ctx context.Context, input LoadMoreInput) (*domain.LoadMoreResponse, error) {
	start := time.Now()
	scope := domain.ParseScope(input.URL)
	ctx = logger.WithScope(ctx, scope.String())

	resp, outcome, err := u.execute(ctx, scope, input.Page)
	otel.Metrics.RecordLoadMore(ctx, string(scope.Kind), outcome, time.Since(start))
	return resp, err
}

func (u *LoadMoreUsecase) execute(ctx context.Context, scope domain.Scope, rawPage string) (*domain.LoadMoreResponse, string, error) {
	count, err := u.fetchPostsPort.CountPublishedPosts(ctx, scope)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to count posts for load more", "error", err, "scope", scope.String())
		return nil, "error", err
	}

	page := pagination.New(count, domain.PostsPerPage).LoadMorePage(rawPage)

	// The count is part of the key so a new post never serves a stale page.
	key := fmt.Sprintf("%s:%d:%d", scope, page.Number, count)
	if cached, ok := u.cachePort.GetFragment(ctx, key); ok {
		logger.Logger.DebugContext(ctx, "load more served from cache", "page", page.Number)
		return cached, "cached", nil
	}

	posts, err := u.fetchPostsPort.FetchPublishedPosts(ctx, scope, page.Offset, page.Limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch posts for load more", "error", err, "page", page.Number)
		return nil, "error", err
	}

	html, err := u.renderPort.RenderPosts(posts)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to render load more fragment", "error", err, "page", page.Number)
		return nil, "error", err
	}

	resp := &domain.LoadMoreResponse{PostsHTML: html, HasNext: page.HasNext}
	u.cachePort.SetFragment(ctx, key, resp)

	logger.Logger.InfoContext(ctx, "load more page served",
		"page", page.Number,
		"num_pages", page.NumPages,
		"posts", len(posts),
		"has_next", page.HasNext,
	)
	return resp, "ok", nil
}
