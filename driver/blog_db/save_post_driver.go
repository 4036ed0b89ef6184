package blog_db

import (
	"context"
	"errors"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/jackc/pgx/v5"
)

const insertPostQuery = `
	INSERT INTO posts (author_id, title, text, published, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NOW())
	RETURNING id`

const updatePostQuery = `
	UPDATE posts SET title = $2, text = $3, published = $4, updated_at = NOW()
	WHERE id = $1`

const deletePostCategoriesQuery = `DELETE FROM post_categories WHERE post_id = $1`

const insertPostCategoriesQuery = `
	INSERT INTO post_categories (post_id, category_id)
	SELECT $1, unnest($2::bigint[])
	ON CONFLICT DO NOTHING`

// CreatePost stores a new post and its categories, then reads it back.
func (r *BlogDBRepository) CreatePost(ctx context.Context, authorID int64, draft domain.PostDraft) (*domain.Post, error) {
	var id int64
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertPostQuery,
			authorID, strings.TrimSpace(draft.Title), draft.Text, draft.Published,
		).Scan(&id); err != nil {
			return err
		}
		return replaceCategories(ctx, tx, id, draft.CategoryIDs)
	})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create post", "error", err, "author_id", authorID)
		return nil, errors.New("failed to create post")
	}
	return r.FetchPostByID(ctx, id)
}

// UpdatePost overwrites a post and its categories, then reads it back.
func (r *BlogDBRepository) UpdatePost(ctx context.Context, id int64, draft domain.PostDraft) (*domain.Post, error) {
	var notFound bool
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updatePostQuery, id, strings.TrimSpace(draft.Title), draft.Text, draft.Published)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			notFound = true
			return pgx.ErrNoRows
		}
		if _, err := tx.Exec(ctx, deletePostCategoriesQuery, id); err != nil {
			return err
		}
		return replaceCategories(ctx, tx, id, draft.CategoryIDs)
	})
	if notFound {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to update post", "error", err, "post_id", id)
		return nil, errors.New("failed to update post")
	}
	return r.FetchPostByID(ctx, id)
}

func replaceCategories(ctx context.Context, tx pgx.Tx, postID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, insertPostCategoriesQuery, postID, categoryIDs)
	return err
}

func (r *BlogDBRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Logger.WarnContext(ctx, "failed to rollback transaction", "error", rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
