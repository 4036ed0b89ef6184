package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hqpr/simple-blog/di"
	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/render"
	apperrors "github.com/hqpr/simple-blog/utils/errors"

	"github.com/labstack/echo/v4"
)

// postRequest accepts both form posts and JSON bodies.
type postRequest struct {
	Title      string  `json:"title" form:"title"`
	Text       string  `json:"text" form:"text"`
	Published  bool    `json:"published" form:"published"`
	Categories []int64 `json:"categories" form:"category"`
}

func (r postRequest) draft() domain.PostDraft {
	return domain.PostDraft{
		Title:       r.Title,
		Text:        r.Text,
		Published:   r.Published,
		CategoryIDs: r.Categories,
	}
}

const (
	newPostTitle  = "New Post"
	editPostTitle = "Edit Post"
	addPostPath   = "/blog/add/"
)

func handleAddForm(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		form, err := container.PostUsecase.NewPostForm(c.Request().Context(), currentUser(c))
		if err != nil {
			return handleError(c, err, "AddForm")
		}
		return renderPage(c, container, render.PageForm,
			render.NewFormPageData(newPostTitle, addPostPath, nil, form.Categories), "AddForm")
	}
}

func handleEditForm(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		form, err := container.PostUsecase.EditPostForm(c.Request().Context(), currentUser(c), id)
		if err != nil {
			return handleError(c, err, "EditForm")
		}
		return renderPage(c, container, render.PageForm,
			render.NewFormPageData(editPostTitle, fmt.Sprintf("/blog/edit/%d/", id), form.Post, form.Categories), "EditForm")
	}
}

func handleAddPost(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req postRequest
		if err := c.Bind(&req); err != nil {
			return handleError(c, apperrors.ValidationError("malformed post", nil), "AddPost")
		}
		post, err := container.PostUsecase.CreatePost(c.Request().Context(), currentUser(c), req.draft())
		if err != nil {
			return handleError(c, err, "AddPost")
		}
		return respondSaved(c, http.StatusCreated, post)
	}
}

func handleEditPost(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		var req postRequest
		if err := c.Bind(&req); err != nil {
			return handleError(c, apperrors.ValidationError("malformed post", nil), "EditPost")
		}
		post, err := container.PostUsecase.UpdatePost(c.Request().Context(), currentUser(c), id, req.draft())
		if err != nil {
			return handleError(c, err, "EditPost")
		}
		return respondSaved(c, http.StatusOK, post)
	}
}

// respondSaved answers JSON clients with the post and sends form posts back to the index.
func respondSaved(c echo.Context, status int, post *domain.Post) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/blog/%d/", post.ID))
		return c.JSON(status, post)
	}
	return c.Redirect(http.StatusSeeOther, "/blog/")
}

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if container.BlogDB != nil {
			if err := container.BlogDB.Ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
