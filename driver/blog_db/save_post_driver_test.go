package blog_db

import (
	"context"
	"errors"
	"testing"

	"github.com/hqpr/simple-blog/domain"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogDBRepository_CreatePost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}
	draft := domain.PostDraft{Title: "  Hello  ", Text: "<p>hi</p>", Published: true, CategoryIDs: []int64{1, 2}}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs(int64(7), "Hello", "<p>hi</p>", true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`INSERT INTO post_categories`).
		WithArgs(int64(11), []int64{1, 2}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()
	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(postRows().
			AddRow(int64(11), int64(7), "ann", "Hello", "<p>hi</p>", true, testTime, testTime, []int64{1, 2}, []string{"a", "b"}))

	post, err := repo.CreatePost(context.Background(), 7, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(11), post.ID)
	assert.Len(t, post.Categories, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_CreatePost_RollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs(int64(7), "T", "x", false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`INSERT INTO post_categories`).
		WithArgs(int64(12), []int64{99}).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	_, err = repo.CreatePost(context.Background(), 7, domain.PostDraft{Title: "T", Text: "x", CategoryIDs: []int64{99}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_UpdatePost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE posts SET`).
		WithArgs(int64(5), "New", "body", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM post_categories WHERE post_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`WHERE p.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(postRows().
			AddRow(int64(5), int64(7), "ann", "New", "body", true, testTime, testTime, []int64{}, []string{}))

	post, err := repo.UpdatePost(context.Background(), 5, domain.PostDraft{Title: "New", Text: "body", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogDBRepository_UpdatePost_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &BlogDBRepository{pool: mock}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE posts SET`).
		WithArgs(int64(5), "New", "body", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err = repo.UpdatePost(context.Background(), 5, domain.PostDraft{Title: "New", Text: "body"})
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
