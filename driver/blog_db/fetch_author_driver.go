package blog_db

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/jackc/pgx/v5"
)

func (r *BlogDBRepository) FetchAuthorByID(ctx context.Context, id int64) (*domain.Author, error) {
	var a domain.Author
	err := r.pool.QueryRow(ctx, `SELECT id, username FROM users WHERE id = $1`, id).Scan(&a.ID, &a.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAuthorNotFound
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch author", "error", err, "author_id", id)
		return nil, errors.New("failed to fetch author")
	}
	return &a, nil
}
