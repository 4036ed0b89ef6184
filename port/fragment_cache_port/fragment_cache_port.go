package fragment_cache_port

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fragment_cache_port.go -destination=../../mocks/mock_fragment_cache_port.go -package=mocks

// FragmentCachePort caches load-more responses. Implementations never fail the caller:
// a broken cache behaves as a miss.
type FragmentCachePort interface {
	GetFragment(ctx context.Context, key string) (*domain.LoadMoreResponse, bool)
	SetFragment(ctx context.Context, key string, resp *domain.LoadMoreResponse)
	PurgeFragments(ctx context.Context)
}
