package author_port

import (
	"context"

	"github.com/hqpr/simple-blog/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=author_port.go -destination=../../mocks/mock_author_port.go -package=mocks

type FetchAuthorPort interface {
	FetchAuthorByID(ctx context.Context, id int64) (*domain.Author, error)
}
