package search_posts_usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/port/post_port"
	"github.com/hqpr/simple-blog/port/search_engine_port"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/pagination"
)

const SearchTitle = "Search"

type SearchPostsInput struct {
	Query string
	Page  string
}

type SearchPostsOutput struct {
	Title string
	Terms []string
	Posts []*domain.Post
	Page  pagination.Page
}

type SearchPostsUsecase struct {
	searchPostsPort post_port.SearchPostsPort
	// engine is nil when no search engine is configured.
	engine search_engine_port.SearchEnginePort
}

func NewSearchPostsUsecase(
	searchPostsPort post_port.SearchPostsPort,
	engine search_engine_port.SearchEnginePort,
) *SearchPostsUsecase {
	return &SearchPostsUsecase{
		searchPostsPort: searchPostsPort,
		engine:          engine,
	}
}

// Execute pages through every match. The total is counted before the
// requested window is fetched, so a result set of any size keeps all its pages.
func (u *SearchPostsUsecase) Execute(ctx context.Context, input SearchPostsInput) (*SearchPostsOutput, error) {
	terms := NormalizeQuery(input.Query)

	var (
		posts []*domain.Post
		page  pagination.Page
		err   error
	)
	switch {
	case len(terms) == 0:
		page, err = listPage(0, input.Page)
	case u.engine != nil:
		posts, page, err = u.searchEngine(ctx, terms, input.Page)
		if err != nil && !errors.Is(err, domain.ErrInvalidPage) {
			logger.Logger.WarnContext(ctx, "search engine failed, falling back to database search", "error", err)
			posts, page, err = u.searchDatabase(ctx, terms, input.Page)
		}
	default:
		posts, page, err = u.searchDatabase(ctx, terms, input.Page)
	}
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}

	logger.Logger.InfoContext(ctx, "search completed",
		"terms", len(terms),
		"page", page.Number,
		"pages", page.NumPages,
	)
	return &SearchPostsOutput{
		Title: SearchTitle,
		Terms: terms,
		Posts: posts,
		Page:  page,
	}, nil
}

func listPage(count int, raw string) (pagination.Page, error) {
	page, err := pagination.New(count, domain.PostsPerPage).ListPage(raw)
	if err != nil {
		return pagination.Page{}, apperrors.NotFoundError("page not found", fmt.Errorf("%w: %w", domain.ErrInvalidPage, err),
			map[string]interface{}{"page": raw})
	}
	return page, nil
}

func (u *SearchPostsUsecase) searchDatabase(ctx context.Context, terms []string, rawPage string) ([]*domain.Post, pagination.Page, error) {
	count, err := u.searchPostsPort.CountSearchedPosts(ctx, terms)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "database search count failed", "error", err)
		return nil, pagination.Page{}, err
	}
	page, err := listPage(count, rawPage)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	if page.Limit == 0 {
		return nil, page, nil
	}

	posts, err := u.searchPostsPort.SearchPublishedPosts(ctx, terms, page.Offset, page.Limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "database search failed", "error", err)
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}

// searchEngine asks the engine for the first window, which also yields the
// total, and asks again only when a later page was requested.
func (u *SearchPostsUsecase) searchEngine(ctx context.Context, terms []string, rawPage string) ([]*domain.Post, pagination.Page, error) {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.Contains(t, " ") {
			t = `"` + t + `"`
		}
		quoted = append(quoted, t)
	}
	query := strings.Join(quoted, " ")

	hits, err := u.engine.SearchPostIDs(ctx, query, 0, domain.PostsPerPage)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	page, err := listPage(hits.Total, rawPage)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	if page.Offset > 0 {
		if hits, err = u.engine.SearchPostIDs(ctx, query, page.Offset, page.Limit); err != nil {
			return nil, pagination.Page{}, err
		}
	}

	ids := hits.IDs
	if len(ids) > page.Limit {
		ids = ids[:page.Limit]
	}
	if len(ids) == 0 {
		return nil, page, nil
	}
	// The index can lag behind the database; posts unpublished since the last
	// index run are dropped here.
	posts, err := u.searchPostsPort.FetchPublishedPostsByIDs(ctx, ids)
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return posts, page, nil
}
