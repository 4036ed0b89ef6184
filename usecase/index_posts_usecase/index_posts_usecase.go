package index_posts_usecase

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/port/post_port"
	"github.com/hqpr/simple-blog/port/search_engine_port"
	"github.com/hqpr/simple-blog/utils/logger"
)

type IndexResult struct {
	IndexedCount int
	DeletedCount int
	// Cursor is the position to resume from; unchanged when the batch was empty.
	Cursor domain.IndexCursor
}

type IndexPostsUsecase struct {
	indexSourcePort post_port.IndexSourcePort
	indexPostsPort  search_engine_port.IndexPostsPort
}

func NewIndexPostsUsecase(indexSourcePort post_port.IndexSourcePort, indexPostsPort search_engine_port.IndexPostsPort) *IndexPostsUsecase {
	return &IndexPostsUsecase{
		indexSourcePort: indexSourcePort,
		indexPostsPort:  indexPostsPort,
	}
}

func (u *IndexPostsUsecase) EnsureIndex(ctx context.Context) error {
	return u.indexPostsPort.EnsureIndex(ctx)
}

// Execute pushes one batch of posts changed after cursor. Published posts are
// upserted and unpublished ones removed from the index.
func (u *IndexPostsUsecase) Execute(ctx context.Context, cursor domain.IndexCursor, batchSize int) (*IndexResult, error) {
	posts, err := u.indexSourcePort.FetchPostsUpdatedAfter(ctx, cursor, batchSize)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return &IndexResult{Cursor: cursor}, nil
	}

	docs := make([]domain.IndexedPost, 0, len(posts))
	var unpublished []int64
	for _, p := range posts {
		if p.Published {
			docs = append(docs, domain.NewIndexedPost(p))
		} else {
			unpublished = append(unpublished, p.ID)
		}
	}

	if len(docs) > 0 {
		if err := u.indexPostsPort.IndexPosts(ctx, docs); err != nil {
			return nil, err
		}
	}
	if len(unpublished) > 0 {
		if err := u.indexPostsPort.DeletePosts(ctx, unpublished); err != nil {
			return nil, err
		}
	}

	last := posts[len(posts)-1]
	logger.Logger.DebugContext(ctx, "index batch pushed", "indexed", len(docs), "deleted", len(unpublished), "last_id", last.ID)
	return &IndexResult{
		IndexedCount: len(docs),
		DeletedCount: len(unpublished),
		Cursor:       domain.IndexCursor{UpdatedAt: last.UpdatedAt, ID: last.ID},
	}, nil
}
