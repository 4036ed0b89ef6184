package blog_db

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/jackc/pgx/v5"
)

func (r *BlogDBRepository) FetchCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `SELECT id, title FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch category", "error", err, "category_id", id)
		return nil, errors.New("failed to fetch category")
	}
	return &c, nil
}

func (r *BlogDBRepository) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM categories ORDER BY title`)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch categories", "error", err)
		return nil, errors.New("failed to fetch categories")
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			logger.Logger.ErrorContext(ctx, "failed to scan category", "error", err)
			return nil, errors.New("failed to fetch categories")
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to iterate categories", "error", err)
		return nil, errors.New("failed to fetch categories")
	}
	return categories, nil
}
