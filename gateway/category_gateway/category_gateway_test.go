package category_gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/hqpr/simple-blog/domain"
	apperrors "github.com/hqpr/simple-blog/utils/errors"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGateway_FetchCategoryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, title FROM categories WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title"}).AddRow(int64(2), "go"))
	mock.ExpectQuery("SELECT id, title FROM categories WHERE id").
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	gw := NewCategoryGateway(mock)

	category, err := gw.FetchCategoryByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "go", category.Title)

	_, err = gw.FetchCategoryByID(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGateway_FetchCategories_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, title FROM categories ORDER BY").WillReturnError(errors.New("down"))

	_, err = NewCategoryGateway(mock).FetchCategories(context.Background())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDatabase, appErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
