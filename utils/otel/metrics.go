package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics is nil until InitMetrics runs; the record helpers are nil-safe.
var Metrics *BlogMetrics

type BlogMetrics struct {
	LoadMoreTotal    metric.Int64Counter
	LoadMoreDuration metric.Float64Histogram
	FragmentCache    metric.Int64Counter
	IndexedTotal     metric.Int64Counter
	DeletedTotal     metric.Int64Counter
	IndexErrors      metric.Int64Counter
}

func InitMetrics() error {
	meter := otel.Meter("simple-blog")

	loadMoreTotal, err := meter.Int64Counter("blog_load_more_requests_total",
		metric.WithDescription("Load-more requests by scope kind and outcome"),
	)
	if err != nil {
		return err
	}

	loadMoreDuration, err := meter.Float64Histogram("blog_load_more_duration_seconds",
		metric.WithDescription("Load-more handling duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	fragmentCache, err := meter.Int64Counter("blog_fragment_cache_lookups_total",
		metric.WithDescription("Fragment cache lookups by result"),
	)
	if err != nil {
		return err
	}

	indexedTotal, err := meter.Int64Counter("blog_search_indexed_total",
		metric.WithDescription("Posts pushed to the search index"),
	)
	if err != nil {
		return err
	}

	deletedTotal, err := meter.Int64Counter("blog_search_deleted_total",
		metric.WithDescription("Posts removed from the search index"),
	)
	if err != nil {
		return err
	}

	indexErrors, err := meter.Int64Counter("blog_search_index_errors_total",
		metric.WithDescription("Failed index batches"),
	)
	if err != nil {
		return err
	}

	Metrics = &BlogMetrics{
		LoadMoreTotal:    loadMoreTotal,
		LoadMoreDuration: loadMoreDuration,
		FragmentCache:    fragmentCache,
		IndexedTotal:     indexedTotal,
		DeletedTotal:     deletedTotal,
		IndexErrors:      indexErrors,
	}
	return nil
}

func (m *BlogMetrics) RecordLoadMore(ctx context.Context, scopeKind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("scope", scopeKind),
		attribute.String("outcome", outcome),
	)
	m.LoadMoreTotal.Add(ctx, 1, attrs)
	m.LoadMoreDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func (m *BlogMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.FragmentCache.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *BlogMetrics) RecordIndexBatch(ctx context.Context, indexed, deleted int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.IndexErrors.Add(ctx, 1)
		return
	}
	m.IndexedTotal.Add(ctx, int64(indexed))
	m.DeletedTotal.Add(ctx, int64(deleted))
}
