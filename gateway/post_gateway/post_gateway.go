package post_gateway

import (
	"context"
	"errors"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/driver/blog_db"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
)

type PostGateway struct {
	blogDB *blog_db.BlogDBRepository
}

func NewPostGateway(pool blog_db.PgxIface) *PostGateway {
	return &PostGateway{blogDB: blog_db.NewBlogDBRepository(pool)}
}

func (g *PostGateway) CountPublishedPosts(ctx context.Context, scope domain.Scope) (int, error) {
	if g.blogDB == nil {
		return 0, errDatabaseUnavailable("CountPublishedPosts")
	}
	count, err := g.blogDB.CountPublishedPosts(ctx, scope)
	if err != nil {
		return 0, apperrors.DatabaseError("failed to count posts", err, map[string]interface{}{"scope": scope.String()})
	}
	return count, nil
}

func (g *PostGateway) FetchPublishedPosts(ctx context.Context, scope domain.Scope, offset, limit int) ([]*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("FetchPublishedPosts")
	}
	posts, err := g.blogDB.FetchPublishedPosts(ctx, scope, offset, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch posts", err, map[string]interface{}{
			"scope":  scope.String(),
			"offset": offset,
			"limit":  limit,
		})
	}
	return posts, nil
}

func (g *PostGateway) FetchPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("FetchPostByID")
	}
	post, err := g.blogDB.FetchPostByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "failed to fetch post", id)
	}
	return post, nil
}

func (g *PostGateway) CreatePost(ctx context.Context, authorID int64, draft domain.PostDraft) (*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("CreatePost")
	}
	post, err := g.blogDB.CreatePost(ctx, authorID, draft)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to create post", err, map[string]interface{}{"author_id": authorID})
	}
	return post, nil
}

func (g *PostGateway) UpdatePost(ctx context.Context, id int64, draft domain.PostDraft) (*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("UpdatePost")
	}
	post, err := g.blogDB.UpdatePost(ctx, id, draft)
	if err != nil {
		return nil, wrapLookup(err, "failed to update post", id)
	}
	return post, nil
}

func (g *PostGateway) CountSearchedPosts(ctx context.Context, terms []string) (int, error) {
	if g.blogDB == nil {
		return 0, errDatabaseUnavailable("CountSearchedPosts")
	}
	count, err := g.blogDB.CountSearchedPosts(ctx, terms)
	if err != nil {
		return 0, apperrors.DatabaseError("failed to count searched posts", err, map[string]interface{}{"terms": len(terms)})
	}
	return count, nil
}

func (g *PostGateway) SearchPublishedPosts(ctx context.Context, terms []string, offset, limit int) ([]*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("SearchPublishedPosts")
	}
	posts, err := g.blogDB.SearchPublishedPosts(ctx, terms, offset, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to search posts", err, map[string]interface{}{
			"terms":  len(terms),
			"offset": offset,
			"limit":  limit,
		})
	}
	return posts, nil
}

func (g *PostGateway) FetchPublishedPostsByIDs(ctx context.Context, ids []int64) ([]*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("FetchPublishedPostsByIDs")
	}
	posts, err := g.blogDB.FetchPublishedPostsByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch posts by ids", err, map[string]interface{}{"count": len(ids)})
	}
	return posts, nil
}

func (g *PostGateway) FetchPostsUpdatedAfter(ctx context.Context, cursor domain.IndexCursor, limit int) ([]*domain.Post, error) {
	if g.blogDB == nil {
		return nil, errDatabaseUnavailable("FetchPostsUpdatedAfter")
	}
	posts, err := g.blogDB.FetchPostsUpdatedAfter(ctx, cursor, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch posts for index", err, map[string]interface{}{
			"cursor_id": cursor.ID,
			"limit":     limit,
		})
	}
	return posts, nil
}

func wrapLookup(err error, message string, id int64) error {
	if errors.Is(err, domain.ErrPostNotFound) {
		return apperrors.NotFoundError("post not found", err, map[string]interface{}{"post_id": id})
	}
	return apperrors.DatabaseError(message, err, map[string]interface{}{"post_id": id})
}

func errDatabaseUnavailable(op string) error {
	return apperrors.DatabaseError("database connection not available", nil, map[string]interface{}{"operation": op})
}
