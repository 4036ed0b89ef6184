package rest

import (
	"bytes"
	"net/http"

	"github.com/hqpr/simple-blog/di"
	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/render"
	"github.com/hqpr/simple-blog/usecase/list_posts_usecase"
	"github.com/hqpr/simple-blog/usecase/load_more_usecase"
	"github.com/hqpr/simple-blog/usecase/search_posts_usecase"

	"github.com/labstack/echo/v4"
)

func handleLoadMore(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp, err := container.LoadMoreUsecase.Execute(c.Request().Context(), load_more_usecase.LoadMoreInput{
			Page: c.FormValue("page"),
			URL:  c.FormValue("url"),
		})
		if err != nil {
			return handleError(c, err, "LoadMore")
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func handleMainList(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderList(c, container, domain.AllPosts(), "MainList")
	}
}

func handleAuthorList(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		return renderList(c, container, domain.AuthorScope(id), "AuthorList")
	}
}

func handleCategoryList(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		return renderList(c, container, domain.CategoryScope(id), "CategoryList")
	}
}

func renderList(c echo.Context, container *di.ApplicationComponents, scope domain.Scope, operation string) error {
	out, err := container.ListPostsUsecase.Execute(c.Request().Context(), list_posts_usecase.ListPostsInput{
		Scope: scope,
		Page:  c.QueryParam("page"),
	})
	if err != nil {
		return handleError(c, err, operation)
	}
	return renderPage(c, container, render.PageList, render.ListPageData{
		Layout:   render.Layout{Title: out.Title},
		Posts:    out.Posts,
		Page:     out.Page,
		Path:     c.Request().URL.Path,
		LoadMore: true,
	}, operation)
}

func handleSearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		out, err := container.SearchPostsUsecase.Execute(c.Request().Context(), search_posts_usecase.SearchPostsInput{
			Query: query,
			Page:  c.QueryParam("page"),
		})
		if err != nil {
			return handleError(c, err, "Search")
		}
		// Load-more pages draw from list scopes, so search results use plain pagination.
		return renderPage(c, container, render.PageList, render.ListPageData{
			Layout: render.Layout{Title: out.Title, Query: query},
			Posts:  out.Posts,
			Page:   out.Page,
			Path:   c.Request().URL.Path,
		}, "Search")
	}
}

func handlePostDetail(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		detail, err := container.PostUsecase.GetPost(c.Request().Context(), id, currentUser(c))
		if err != nil {
			return handleError(c, err, "PostDetail")
		}
		return renderPage(c, container, render.PageDetail, render.DetailPageData{
			Layout:  render.Layout{Title: detail.Post.Title},
			Post:    detail.Post,
			IsOwner: detail.IsOwner,
			CanEdit: detail.CanEdit,
		}, "PostDetail")
	}
}

func renderPage(c echo.Context, container *di.ApplicationComponents, name string, data any, operation string) error {
	var buf bytes.Buffer
	if err := container.Renderer.RenderPage(&buf, name, data); err != nil {
		return handleError(c, err, operation)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
