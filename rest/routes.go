package rest

import (
	"github.com/hqpr/simple-blog/config"
	"github.com/hqpr/simple-blog/di"
	middleware_custom "github.com/hqpr/simple-blog/middleware"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recover early
	e.Use(middleware.Recover())

	// 3. Tracing
	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
		e.Use(middleware_custom.OTelStatusMiddleware())
	}

	// 4. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	// 5. Logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/health", handleHealth(container))
	e.GET("/metrics", echo.WrapHandler(container.MetricsHandler))

	blog := e.Group("/blog")
	registerBlogRoutes(blog, container)
}

func registerBlogRoutes(g *echo.Group, container *di.ApplicationComponents) {
	optional := container.Auth.OptionalJWT()
	required := container.Auth.RequireJWT()

	g.POST("/load_more/", handleLoadMore(container), middleware_custom.RateLimitMiddleware(container.LoadMoreLimiter))

	g.GET("/", handleMainList(container), optional)
	g.GET("/search/", handleSearch(container), optional)
	g.GET("/author/:id/", handleAuthorList(container), optional)
	g.GET("/category/:id/", handleCategoryList(container), optional)
	g.GET("/:id/", handlePostDetail(container), optional)

	g.GET("/add/", handleAddForm(container), required)
	g.POST("/add/", handleAddPost(container), required)
	g.GET("/edit/:id/", handleEditForm(container), required)
	g.POST("/edit/:id/", handleEditPost(container), required)
}
