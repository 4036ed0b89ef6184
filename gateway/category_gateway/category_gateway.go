package category_gateway

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/driver/blog_db"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
)

type CategoryGateway struct {
	blogDB *blog_db.BlogDBRepository
}

func NewCategoryGateway(pool blog_db.PgxIface) *CategoryGateway {
	return &CategoryGateway{blogDB: blog_db.NewBlogDBRepository(pool)}
}

func (g *CategoryGateway) FetchCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := g.blogDB.FetchCategoryByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, apperrors.NotFoundError("category not found", err, map[string]interface{}{"category_id": id})
	}
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch category", err, map[string]interface{}{"category_id": id})
	}
	return category, nil
}

func (g *CategoryGateway) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := g.blogDB.FetchCategories(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch categories", err, nil)
	}
	return categories, nil
}
