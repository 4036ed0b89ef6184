package blog_db

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"
)

func (r *BlogDBRepository) CountPublishedPosts(ctx context.Context, scope domain.Scope) (int, error) {
	where, args := buildPostWhere(scope)
	query := "SELECT COUNT(*) FROM posts p " + where

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to count published posts", "error", err, "scope", scope.String())
		return 0, errors.New("failed to count published posts")
	}
	return count, nil
}
