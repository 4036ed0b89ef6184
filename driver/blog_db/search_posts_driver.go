package blog_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"
)

// buildSearchWhere returns a WHERE clause matching published posts where every
// term occurs in the title or the text, case-insensitively. Placeholders start at $1.
func buildSearchWhere(terms []string) (string, []any) {
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)+2)
	for _, term := range terms {
		args = append(args, "%"+escapeLike(term)+"%")
		ph := placeholder(len(args))
		conds = append(conds, fmt.Sprintf("(p.title ILIKE %s OR p.text ILIKE %s)", ph, ph))
	}
	return "WHERE p.published AND " + strings.Join(conds, " AND "), args
}

func (r *BlogDBRepository) CountSearchedPosts(ctx context.Context, terms []string) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	where, args := buildSearchWhere(terms)
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM posts p "+where, args...).Scan(&count); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to count searched posts", "error", err, "terms", len(terms))
		return 0, errors.New("failed to count searched posts")
	}
	return count, nil
}

// SearchPublishedPosts returns one page of matching posts, newest first.
func (r *BlogDBRepository) SearchPublishedPosts(ctx context.Context, terms []string, offset, limit int) ([]*domain.Post, error) {
	if len(terms) == 0 || limit <= 0 {
		return []*domain.Post{}, nil
	}

	where, args := buildSearchWhere(terms)
	n := len(args)
	query := strings.Join([]string{
		"SELECT", postColumns, postFrom, where,
		postGroupBy, newestFirst,
		"LIMIT " + placeholder(n+1) + " OFFSET " + placeholder(n+2),
	}, "\n")
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to search posts", "error", err, "terms", len(terms))
		return nil, errors.New("failed to search posts")
	}
	posts, err := scanPosts(rows)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to scan searched posts", "error", err)
		return nil, errors.New("failed to search posts")
	}
	return posts, nil
}
