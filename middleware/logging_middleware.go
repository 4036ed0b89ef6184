package middleware

import (
	"log/slog"
	"time"

	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/labstack/echo/v4"
)

var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, ok := quietPaths[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo write the error response so the status below is final.
				c.Error(err)
			}
			duration := time.Since(start)

			ctx := c.Request().Context()
			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
				"remote_addr", c.RealIP(),
			}
			log := contextLogger.WithContext(ctx)
			switch {
			case res.Status >= 500:
				log.ErrorContext(ctx, "request completed", append(attrs, "error", err)...)
			case res.Status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}
			return nil
		}
	}
}
