package blog_db

import (
	"context"
	"errors"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"
)

// FetchPostsUpdatedAfter pages through every post, published or not, in
// (updated_at, id) order strictly after cursor.
func (r *BlogDBRepository) FetchPostsUpdatedAfter(ctx context.Context, cursor domain.IndexCursor, limit int) ([]*domain.Post, error) {
	query := strings.Join([]string{
		"SELECT", postColumns, postFrom,
		"WHERE (p.updated_at, p.id) > ($1, $2)",
		postGroupBy,
		"ORDER BY p.updated_at ASC, p.id ASC",
		"LIMIT $3",
	}, "\n")

	rows, err := r.pool.Query(ctx, query, cursor.UpdatedAt, cursor.ID, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch posts for index", "error", err)
		return nil, errors.New("failed to fetch posts for index")
	}
	posts, err := scanPosts(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to scan posts for index", "error", err)
		return nil, errors.New("failed to fetch posts for index")
	}
	return posts, nil
}
