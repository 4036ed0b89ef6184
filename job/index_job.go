// Package job runs the background search index sync.
package job

import (
	"context"
	"time"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/usecase/index_posts_usecase"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/otel"

	"github.com/cenkalti/backoff/v5"
)

type IndexRunner interface {
	EnsureIndex(ctx context.Context) error
	Execute(ctx context.Context, cursor domain.IndexCursor, batchSize int) (*index_posts_usecase.IndexResult, error)
}

type IndexJob struct {
	runner     IndexRunner
	interval   time.Duration
	batchSize  int
	newBackOff func() backoff.BackOff
}

func NewIndexJob(runner IndexRunner, interval time.Duration, batchSize int) *IndexJob {
	return &IndexJob{
		runner:     runner,
		interval:   interval,
		batchSize:  batchSize,
		newBackOff: newRetryBackoff,
	}
}

func newRetryBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 5 * time.Minute
	bo.Multiplier = 2
	return bo
}

// Run blocks until ctx is cancelled. Each round drains every batch changed since
// the cursor, then sleeps for the interval. The cursor lives in memory, so a
// restart re-pushes everything, which the index treats as upserts.
func (j *IndexJob) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger.Error("index job panic", "err", r)
		}
	}()

	bo := j.newBackOff()
	for {
		if err := j.runner.EnsureIndex(ctx); err == nil {
			break
		} else if !j.wait(ctx, bo.NextBackOff(), "failed to prepare search index", err) {
			return
		}
	}
	bo.Reset()

	var cursor domain.IndexCursor
	for {
		next, err := j.drain(ctx, cursor)
		cursor = next
		if err != nil {
			if !j.wait(ctx, bo.NextBackOff(), "index batch failed, retrying", err) {
				return
			}
			continue
		}
		bo.Reset()

		if !j.wait(ctx, j.interval, "", nil) {
			return
		}
	}
}

// drain pushes batches until one comes back short. It returns the cursor of the
// last batch that succeeded.
func (j *IndexJob) drain(ctx context.Context, cursor domain.IndexCursor) (domain.IndexCursor, error) {
	indexed, deleted := 0, 0
	for {
		result, err := j.runner.Execute(ctx, cursor, j.batchSize)
		otel.Metrics.RecordIndexBatch(ctx, resultCount(result, true), resultCount(result, false), err)
		if err != nil {
			return cursor, err
		}
		indexed += result.IndexedCount
		deleted += result.DeletedCount
		cursor = result.Cursor

		if result.IndexedCount+result.DeletedCount < j.batchSize {
			break
		}
	}
	if indexed > 0 || deleted > 0 {
		logger.Logger.Info("search index synced", "indexed", indexed, "deleted", deleted)
	}
	return cursor, nil
}

func resultCount(r *index_posts_usecase.IndexResult, indexed bool) int {
	if r == nil {
		return 0
	}
	if indexed {
		return r.IndexedCount
	}
	return r.DeletedCount
}

func (j *IndexJob) wait(ctx context.Context, delay time.Duration, msg string, err error) bool {
	if err != nil {
		logger.Logger.Error(msg, "err", err, "retry_in", delay)
	}
	if delay == backoff.Stop {
		return false
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
