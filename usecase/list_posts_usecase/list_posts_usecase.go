package list_posts_usecase

import (
	"context"
	"fmt"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/port/author_port"
	"github.com/hqpr/simple-blog/port/category_port"
	"github.com/hqpr/simple-blog/port/post_port"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/pagination"

	"golang.org/x/sync/errgroup"
)

const MainTitle = "Blog"

type ListPostsInput struct {
	Scope domain.Scope
	Page  string
}

type ListPostsOutput struct {
	Title string
	Posts []*domain.Post
	Page  pagination.Page
}

type ListPostsUsecase struct {
	fetchPostsPort    post_port.FetchPostsPort
	fetchAuthorPort   author_port.FetchAuthorPort
	fetchCategoryPort category_port.FetchCategoryPort
}

func NewListPostsUsecase(
	fetchPostsPort post_port.FetchPostsPort,
	fetchAuthorPort author_port.FetchAuthorPort,
	fetchCategoryPort category_port.FetchCategoryPort,
) *ListPostsUsecase {
	return &ListPostsUsecase{
		fetchPostsPort:    fetchPostsPort,
		fetchAuthorPort:   fetchAuthorPort,
		fetchCategoryPort: fetchCategoryPort,
	}
}

func (u *ListPostsUsecase) Execute(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error) {
	var (
		title string
		count int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		title, err = u.title(gctx, input.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = u.fetchPostsPort.CountPublishedPosts(gctx, input.Scope)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to prepare post list", "error", err, "scope", input.Scope.String())
		return nil, err
	}

	page, err := pagination.New(count, domain.PostsPerPage).ListPage(input.Page)
	if err != nil {
		logger.Logger.WarnContext(ctx, "invalid list page requested", "page", input.Page, "count", count)
		return nil, apperrors.NotFoundError("page not found", fmt.Errorf("%w: %w", domain.ErrInvalidPage, err),
			map[string]interface{}{"page": input.Page})
	}

	posts, err := u.fetchPostsPort.FetchPublishedPosts(ctx, input.Scope, page.Offset, page.Limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch post list", "error", err, "page", page.Number)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "post list fetched",
		"scope", input.Scope.String(),
		"page", page.Number,
		"posts", len(posts),
	)
	return &ListPostsOutput{Title: title, Posts: posts, Page: page}, nil
}

func (u *ListPostsUsecase) title(ctx context.Context, scope domain.Scope) (string, error) {
	switch scope.Kind {
	case domain.ScopeAuthor:
		author, err := u.fetchAuthorPort.FetchAuthorByID(ctx, scope.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Blog Posts By %s", author.Username), nil
	case domain.ScopeCategory:
		category, err := u.fetchCategoryPort.FetchCategoryByID(ctx, scope.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Blog Posts in %s", category.Title), nil
	default:
		return MainTitle, nil
	}
}
