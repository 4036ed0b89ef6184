package fragment_cache_gateway

import (
	"context"
	"testing"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/driver/fragment_cache"
	"github.com/hqpr/simple-blog/port/fragment_cache_port"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ fragment_cache_port.FragmentCachePort = (*FragmentCacheGateway)(nil)
	_ fragment_cache_port.FragmentCachePort = NoopFragmentCache{}
)

func newGateway(t *testing.T) (*FragmentCacheGateway, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	driver, err := fragment_cache.NewRedisDriverWithURL("redis://"+mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })
	return NewFragmentCacheGateway(driver), mr
}

func TestFragmentCacheGateway_RoundTrip(t *testing.T) {
	gw, _ := newGateway(t)
	ctx := context.Background()

	_, ok := gw.GetFragment(ctx, "all:2:9")
	assert.False(t, ok)

	want := &domain.LoadMoreResponse{PostsHTML: "<div>X</div>", HasNext: true}
	gw.SetFragment(ctx, "all:2:9", want)

	got, ok := gw.GetFragment(ctx, "all:2:9")
	require.True(t, ok)
	assert.Equal(t, want, got)

	gw.PurgeFragments(ctx)
	_, ok = gw.GetFragment(ctx, "all:2:9")
	assert.False(t, ok)
}

func TestFragmentCacheGateway_BrokenRedisIsAMiss(t *testing.T) {
	gw, mr := newGateway(t)
	ctx := context.Background()
	mr.Close()

	assert.NotPanics(t, func() {
		gw.SetFragment(ctx, "k", &domain.LoadMoreResponse{})
		gw.PurgeFragments(ctx)
	})
	_, ok := gw.GetFragment(ctx, "k")
	assert.False(t, ok)
}

func TestNoopFragmentCache(t *testing.T) {
	var c NoopFragmentCache
	c.SetFragment(context.Background(), "k", &domain.LoadMoreResponse{PostsHTML: "x"})
	_, ok := c.GetFragment(context.Background(), "k")
	assert.False(t, ok)
}
