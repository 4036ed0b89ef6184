package fragment_cache

import (
	"context"
	"testing"
	"time"

	"github.com/hqpr/simple-blog/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDriver(t *testing.T) (*RedisDriver, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	driver, err := NewRedisDriverWithURL("redis://"+mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })

	return driver, mr
}

func TestRedisDriver_SetGet(t *testing.T) {
	driver, mr := setupTestDriver(t)
	ctx := context.Background()

	want := &domain.LoadMoreResponse{PostsHTML: "<div>X</div>", HasNext: true}
	require.NoError(t, driver.Set(ctx, "all:2:7", want))

	got, err := driver.Get(ctx, "all:2:7")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.True(t, mr.Exists("blog:load_more:all:2:7"))
	assert.Equal(t, time.Minute, mr.TTL("blog:load_more:all:2:7"))
}

func TestRedisDriver_Miss(t *testing.T) {
	driver, _ := setupTestDriver(t)

	_, err := driver.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisDriver_Expires(t *testing.T) {
	driver, mr := setupTestDriver(t)
	ctx := context.Background()

	require.NoError(t, driver.Set(ctx, "k", &domain.LoadMoreResponse{PostsHTML: "x"}))
	mr.FastForward(2 * time.Minute)

	_, err := driver.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisDriver_CorruptValue(t *testing.T) {
	driver, mr := setupTestDriver(t)

	require.NoError(t, mr.Set("blog:load_more:bad", "{not json"))

	_, err := driver.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisDriver_Purge(t *testing.T) {
	driver, mr := setupTestDriver(t)
	ctx := context.Background()

	require.NoError(t, driver.Set(ctx, "a", &domain.LoadMoreResponse{}))
	require.NoError(t, driver.Set(ctx, "b", &domain.LoadMoreResponse{}))
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, driver.Purge(ctx))

	assert.False(t, mr.Exists("blog:load_more:a"))
	assert.False(t, mr.Exists("blog:load_more:b"))
	assert.True(t, mr.Exists("unrelated"))
	require.NoError(t, driver.Purge(ctx))
}

func TestRedisDriver_Ping(t *testing.T) {
	driver, mr := setupTestDriver(t)
	require.NoError(t, driver.Ping(context.Background()))

	mr.Close()
	assert.Error(t, driver.Ping(context.Background()))
}

func TestNewRedisDriverWithURL_Invalid(t *testing.T) {
	_, err := NewRedisDriverWithURL("not-a-url://", time.Minute)
	assert.Error(t, err)
}
