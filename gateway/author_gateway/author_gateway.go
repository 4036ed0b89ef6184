package author_gateway

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/driver/blog_db"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
)

type AuthorGateway struct {
	blogDB *blog_db.BlogDBRepository
}

func NewAuthorGateway(pool blog_db.PgxIface) *AuthorGateway {
	return &AuthorGateway{blogDB: blog_db.NewBlogDBRepository(pool)}
}

func (g *AuthorGateway) FetchAuthorByID(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := g.blogDB.FetchAuthorByID(ctx, id)
	if errors.Is(err, domain.ErrAuthorNotFound) {
		return nil, apperrors.NotFoundError("author not found", err, map[string]interface{}{"author_id": id})
	}
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch author", err, map[string]interface{}{"author_id": id})
	}
	return author, nil
}
