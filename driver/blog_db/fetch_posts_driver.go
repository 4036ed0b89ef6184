package blog_db

import (
	"context"
	"errors"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"
)

// FetchPublishedPosts returns one page of published posts in scope, newest first.
func (r *BlogDBRepository) FetchPublishedPosts(ctx context.Context, scope domain.Scope, offset, limit int) ([]*domain.Post, error) {
	if limit <= 0 {
		return []*domain.Post{}, nil
	}

	where, args := buildPostWhere(scope)
	n := len(args)
	query := strings.Join([]string{
		"SELECT", postColumns, postFrom, where, postGroupBy, newestFirst,
		"LIMIT " + placeholder(n+1) + " OFFSET " + placeholder(n+2),
	}, "\n")
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch published posts",
			"error", err, "scope", scope.String(), "offset", offset, "limit", limit)
		return nil, errors.New("failed to fetch published posts")
	}

	posts, err := scanPosts(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to scan published posts", "error", err)
		return nil, errors.New("failed to fetch published posts")
	}
	return posts, nil
}
