package fragment_cache_gateway

import (
	"context"
	"errors"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/driver/fragment_cache"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/otel"
)

const cacheTimeout = 200 * time.Millisecond

type FragmentCacheGateway struct {
	driver *fragment_cache.RedisDriver
}

func NewFragmentCacheGateway(driver *fragment_cache.RedisDriver) *FragmentCacheGateway {
	return &FragmentCacheGateway{driver: driver}
}

func (g *FragmentCacheGateway) GetFragment(ctx context.Context, key string) (*domain.LoadMoreResponse, bool) {
	cctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	resp, err := g.driver.Get(cctx, key)
	if err != nil {
		if !errors.Is(err, fragment_cache.ErrCacheMiss) {
			logger.GlobalContext.WithContext(ctx).Warn("fragment cache read failed", "error", err, "key", key)
		}
		otel.Metrics.RecordCacheLookup(ctx, false)
		return nil, false
	}
	otel.Metrics.RecordCacheLookup(ctx, true)
	return resp, true
}

func (g *FragmentCacheGateway) SetFragment(ctx context.Context, key string, resp *domain.LoadMoreResponse) {
	cctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := g.driver.Set(cctx, key, resp); err != nil {
		logger.GlobalContext.WithContext(ctx).Warn("fragment cache write failed", "error", err, "key", key)
	}
}

func (g *FragmentCacheGateway) PurgeFragments(ctx context.Context) {
	if err := g.driver.Purge(ctx); err != nil {
		logger.GlobalContext.WithContext(ctx).Warn("fragment cache purge failed", "error", err)
	}
}

// NoopFragmentCache is used when no Redis is configured.
type NoopFragmentCache struct{}

func (NoopFragmentCache) GetFragment(context.Context, string) (*domain.LoadMoreResponse, bool) {
	return nil, false
}

func (NoopFragmentCache) SetFragment(context.Context, string, *domain.LoadMoreResponse) {}

func (NoopFragmentCache) PurgeFragments(context.Context) {}
