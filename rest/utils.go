package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hqpr/simple-blog/domain"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// handleError maps usecase errors onto HTTP responses and logs them with request context.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()
	log := logger.GlobalContext.WithContext(ctx)

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = classify(err)
	}

	status := appErr.HTTPStatusCode()
	attrs := []any{
		"error", err,
		"error_code", appErr.Code,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", status,
	}
	if status >= 500 {
		log.ErrorContext(ctx, "REST handler error", attrs...)
	} else {
		log.InfoContext(ctx, "REST handler rejected request", attrs...)
	}

	resp := errorResponse{Error: string(appErr.Code), Message: appErr.Message}
	if status >= 500 {
		resp.Message = http.StatusText(status)
	} else if appErr.Code == apperrors.ErrCodeValidation {
		resp.Details = appErr.Context
	}
	return c.JSON(status, resp)
}

func classify(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrInvalidPage):
		return apperrors.NotFoundError(err.Error(), err, nil)
	case errors.Is(err, domain.ErrForbidden):
		return apperrors.ForbiddenError("forbidden", err, nil)
	case errors.Is(err, domain.ErrUnauthorized):
		return apperrors.UnauthorizedError("authentication required", err, nil)
	case errors.Is(err, domain.ErrInvalidPost):
		return apperrors.ValidationError(err.Error(), nil)
	default:
		return apperrors.UnknownError("internal server error", err, nil)
	}
}

// parseID reads a positive integer path parameter; anything else is a 404 like an unmatched route.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

func currentUser(c echo.Context) *domain.UserContext {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return nil
	}
	return user
}
