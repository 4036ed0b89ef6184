package search_engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hqpr/simple-blog/domain"

	"github.com/meilisearch/meilisearch-go"
)

const taskWaitInterval = 50 * time.Millisecond

type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("meilisearch %s: %s", e.Op, e.Err)
}

type MeilisearchDriver struct {
	client meilisearch.ServiceManager
	index  meilisearch.IndexManager
}

func NewMeilisearchClient(host, apiKey string) meilisearch.ServiceManager {
	return meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
}

func NewMeilisearchDriver(client meilisearch.ServiceManager, indexName string) *MeilisearchDriver {
	return &MeilisearchDriver{
		client: client,
		index:  client.Index(indexName),
	}
}

type postHit struct {
	ID int64 `json:"id"`
}

// Search returns one window of matching post ids in relevance order, along
// with the estimated number of matches.
func (d *MeilisearchDriver) Search(ctx context.Context, query string, offset, limit int) (domain.SearchHits, error) {
	result, err := d.index.Search(query, &meilisearch.SearchRequest{
		Query:  query,
		Offset: int64(offset),
		Limit:  int64(limit),
	})
	if err != nil {
		return domain.SearchHits{}, &DriverError{Op: "Search", Err: err.Error()}
	}

	ids := make([]int64, 0, len(result.Hits))
	for _, hit := range result.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var h postHit
		if err := json.Unmarshal(raw, &h); err != nil || h.ID == 0 {
			continue
		}
		ids = append(ids, h.ID)
	}
	return domain.SearchHits{IDs: ids, Total: int(result.EstimatedTotalHits)}, nil
}

func (d *MeilisearchDriver) IndexPosts(ctx context.Context, docs []domain.IndexedPost) error {
	if len(docs) == 0 {
		return nil
	}
	task, err := d.index.AddDocuments(docs)
	if err != nil {
		return &DriverError{Op: "IndexPosts", Err: err.Error()}
	}
	if _, err := d.index.WaitForTask(task.TaskUID, taskWaitInterval); err != nil {
		return &DriverError{Op: "IndexPosts", Err: "failed to wait for indexing task: " + err.Error()}
	}
	return nil
}

func (d *MeilisearchDriver) DeletePosts(ctx context.Context, ids []int64) error {
	var last *meilisearch.TaskInfo
	for _, id := range ids {
		task, err := d.index.DeleteDocument(strconv.FormatInt(id, 10))
		if err != nil {
			return &DriverError{Op: "DeletePosts", Err: err.Error()}
		}
		last = task
	}
	if last == nil {
		return nil
	}
	if _, err := d.index.WaitForTask(last.TaskUID, taskWaitInterval); err != nil {
		return &DriverError{Op: "DeletePosts", Err: "failed to wait for delete task: " + err.Error()}
	}
	return nil
}

// EnsureIndex applies the index settings. Meilisearch creates the index on the
// first settings update when it does not exist yet.
func (d *MeilisearchDriver) EnsureIndex(ctx context.Context) error {
	if _, err := d.index.UpdateSearchableAttributes(&[]string{"title", "text", "author", "categories"}); err != nil {
		return &DriverError{Op: "EnsureIndex", Err: "failed to set searchable attributes: " + err.Error()}
	}
	task, err := d.index.UpdateFilterableAttributes(&[]string{"author_id", "categories"})
	if err != nil {
		return &DriverError{Op: "EnsureIndex", Err: "failed to set filterable attributes: " + err.Error()}
	}
	if _, err := d.index.WaitForTask(task.TaskUID, taskWaitInterval); err != nil {
		return &DriverError{Op: "EnsureIndex", Err: "failed to wait for settings update: " + err.Error()}
	}
	return nil
}
