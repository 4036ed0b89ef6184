package di

import (
	"fmt"
	"net/http"

	"github.com/hqpr/simple-blog/config"
	"github.com/hqpr/simple-blog/driver/blog_db"
	"github.com/hqpr/simple-blog/driver/fragment_cache"
	"github.com/hqpr/simple-blog/gateway/author_gateway"
	"github.com/hqpr/simple-blog/gateway/category_gateway"
	"github.com/hqpr/simple-blog/gateway/fragment_cache_gateway"
	"github.com/hqpr/simple-blog/gateway/post_gateway"
	"github.com/hqpr/simple-blog/gateway/search_engine_gateway"
	"github.com/hqpr/simple-blog/middleware"
	"github.com/hqpr/simple-blog/port/fragment_cache_port"
	"github.com/hqpr/simple-blog/port/search_engine_port"
	"github.com/hqpr/simple-blog/render"
	"github.com/hqpr/simple-blog/usecase/index_posts_usecase"
	"github.com/hqpr/simple-blog/usecase/list_posts_usecase"
	"github.com/hqpr/simple-blog/usecase/load_more_usecase"
	"github.com/hqpr/simple-blog/usecase/post_usecase"
	"github.com/hqpr/simple-blog/usecase/search_posts_usecase"
	"github.com/hqpr/simple-blog/utils/logger"
)

type ApplicationComponents struct {
	LoadMoreUsecase    *load_more_usecase.LoadMoreUsecase
	ListPostsUsecase   *list_posts_usecase.ListPostsUsecase
	SearchPostsUsecase *search_posts_usecase.SearchPostsUsecase
	PostUsecase        *post_usecase.PostUsecase
	// IndexPostsUsecase is nil when no search engine is configured.
	IndexPostsUsecase *index_posts_usecase.IndexPostsUsecase

	Renderer        *render.Renderer
	Auth            *middleware.JWTAuthMiddleware
	LoadMoreLimiter *middleware.IPRateLimiter
	BlogDB          *blog_db.BlogDBRepository
	MetricsHandler  http.Handler
}

// Infrastructure carries the optional drivers. Nil fields disable the feature.
type Infrastructure struct {
	Pool           blog_db.PgxIface
	FragmentCache  *fragment_cache.RedisDriver
	SearchEngine   search_engine_gateway.SearchEngineDriver
	MetricsHandler http.Handler
}

func NewApplicationComponents(cfg *config.Config, infra Infrastructure) (*ApplicationComponents, error) {
	renderer, err := render.NewRenderer(cfg.Render.SanitizeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	postGatewayImpl := post_gateway.NewPostGateway(infra.Pool)
	authorGatewayImpl := author_gateway.NewAuthorGateway(infra.Pool)
	categoryGatewayImpl := category_gateway.NewCategoryGateway(infra.Pool)

	var cache fragment_cache_port.FragmentCachePort = fragment_cache_gateway.NoopFragmentCache{}
	if infra.FragmentCache != nil {
		cache = fragment_cache_gateway.NewFragmentCacheGateway(infra.FragmentCache)
	}

	// Left as a nil interface when no engine is configured.
	var engine search_engine_port.SearchEnginePort
	var indexUsecase *index_posts_usecase.IndexPostsUsecase
	if infra.SearchEngine != nil {
		searchGatewayImpl := search_engine_gateway.NewSearchEngineGateway(infra.SearchEngine)
		engine = searchGatewayImpl
		indexUsecase = index_posts_usecase.NewIndexPostsUsecase(postGatewayImpl, searchGatewayImpl)
	}

	metricsHandler := infra.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = http.NotFoundHandler()
	}

	return &ApplicationComponents{
		LoadMoreUsecase:    load_more_usecase.NewLoadMoreUsecase(postGatewayImpl, renderer, cache),
		ListPostsUsecase:   list_posts_usecase.NewListPostsUsecase(postGatewayImpl, authorGatewayImpl, categoryGatewayImpl),
		SearchPostsUsecase: search_posts_usecase.NewSearchPostsUsecase(postGatewayImpl, engine),
		PostUsecase:        post_usecase.NewPostUsecase(postGatewayImpl, categoryGatewayImpl, cache),
		IndexPostsUsecase:  indexUsecase,
		Renderer:           renderer,
		Auth:               middleware.NewJWTAuthMiddleware(logger.Logger, cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		LoadMoreLimiter:    middleware.NewIPRateLimiter(cfg.RateLimit.LoadMoreRPS, cfg.RateLimit.LoadMoreBurst),
		BlogDB:             blog_db.NewBlogDBRepository(infra.Pool),
		MetricsHandler:     metricsHandler,
	}, nil
}
