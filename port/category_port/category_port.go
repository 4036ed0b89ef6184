package category_port

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=category_port.go -destination=../../mocks/mock_category_port.go -package=mocks

type FetchCategoryPort interface {
	FetchCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	FetchCategories(ctx context.Context) ([]domain.Category, error)
}
