package blog_db

import (
	"context"
	"errors"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/jackc/pgx/v5"
)

func (r *BlogDBRepository) FetchPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := strings.Join([]string{"SELECT", postColumns, postFrom, "WHERE p.id = $1", postGroupBy}, "\n")

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch post", "error", err, "post_id", id)
		return nil, errors.New("failed to fetch post")
	}
	return post, nil
}

// FetchPublishedPostsByIDs returns the published posts among ids, keeping the order of ids.
func (r *BlogDBRepository) FetchPublishedPostsByIDs(ctx context.Context, ids []int64) ([]*domain.Post, error) {
	if len(ids) == 0 {
		return []*domain.Post{}, nil
	}
	query := strings.Join([]string{
		"SELECT", postColumns, postFrom, "WHERE p.published AND p.id = ANY($1)", postGroupBy,
	}, "\n")

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch posts by ids", "error", err, "count", len(ids))
		return nil, errors.New("failed to fetch posts by ids")
	}
	found, err := scanPosts(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to scan posts by ids", "error", err)
		return nil, errors.New("failed to fetch posts by ids")
	}

	byID := make(map[int64]*domain.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	ordered := make([]*domain.Post, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
			delete(byID, id)
		}
	}
	return ordered, nil
}
