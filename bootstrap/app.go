package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hqpr/simple-blog/config"
	"github.com/hqpr/simple-blog/di"
	"github.com/hqpr/simple-blog/driver/blog_db"
	"github.com/hqpr/simple-blog/driver/fragment_cache"
	"github.com/hqpr/simple-blog/driver/search_engine"
	"github.com/hqpr/simple-blog/job"
	"github.com/hqpr/simple-blog/rest"
	"github.com/hqpr/simple-blog/utils/logger"
	appOtel "github.com/hqpr/simple-blog/utils/otel"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// App holds the long-lived pieces of the blog server.
type App struct {
	httpServer      *http.Server
	pool            *pgxpool.Pool
	fragmentCache   *fragment_cache.RedisDriver
	otelShutdown    appOtel.ShutdownFunc
	shutdownTimeout time.Duration
}

// Run initializes all components and serves HTTP until ctx is cancelled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	// ── Load config ──
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// ── OpenTelemetry ──
	var metricsHandler http.Handler
	otelShutdown := appOtel.ShutdownFunc(func(context.Context) error { return nil })
	telemetry, err := appOtel.InitProvider(ctx, cfg.OTel)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		cfg.OTel.Enabled = false
	} else {
		otelShutdown = telemetry.Shutdown
		metricsHandler = telemetry.MetricsHandler
	}

	// ── Logger ──
	logger.InitWithOTel(cfg.OTel.Enabled)
	logger.Logger.Info("Starting simple-blog",
		"service", cfg.OTel.ServiceName,
		"otel_enabled", cfg.OTel.Enabled,
		"port", cfg.Server.Port,
	)

	// ── Database ──
	pool, err := blog_db.InitDBConnectionPool(ctx, cfg.Database)
	if err != nil {
		_ = otelShutdown(context.Background())
		return fmt.Errorf("init database: %w", err)
	}

	infra := di.Infrastructure{
		Pool:           pool,
		MetricsHandler: metricsHandler,
	}

	// ── Fragment cache (optional) ──
	if cfg.Redis.URL != "" {
		redisDriver, err := fragment_cache.NewRedisDriverWithURL(cfg.Redis.URL, cfg.Redis.FragmentTTL)
		if err != nil {
			logger.Logger.Error("Failed to create redis driver, fragment cache disabled", "err", err)
		} else if err := pingWithTimeout(ctx, redisDriver.Ping); err != nil {
			logger.Logger.Error("Redis unreachable, fragment cache disabled", "err", err)
			_ = redisDriver.Close()
		} else {
			infra.FragmentCache = redisDriver
			logger.Logger.Info("Fragment cache enabled", "ttl", cfg.Redis.FragmentTTL)
		}
	}

	// ── Search engine (optional) ──
	if cfg.Search.Host != "" {
		client := search_engine.NewMeilisearchClient(cfg.Search.Host, cfg.Search.APIKey)
		infra.SearchEngine = search_engine.NewMeilisearchDriver(client, cfg.Search.Index)
		logger.Logger.Info("Search engine enabled", "host", cfg.Search.Host, "index", cfg.Search.Index)
	}

	container, err := di.NewApplicationComponents(cfg, infra)
	if err != nil {
		pool.Close()
		_ = otelShutdown(context.Background())
		return fmt.Errorf("build application: %w", err)
	}

	// ── Index job ──
	if container.IndexPostsUsecase != nil {
		indexJob := job.NewIndexJob(container.IndexPostsUsecase, cfg.Search.IndexInterval, cfg.Search.BatchSize)
		go indexJob.Run(ctx)
	}

	// ── HTTP server ──
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	rest.RegisterRoutes(e, container, cfg)

	app := &App{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      e,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		pool:            pool,
		fragmentCache:   infra.FragmentCache,
		otelShutdown:    otelShutdown,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("HTTP server listening", "addr", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// ── Wait for shutdown signal ──
	select {
	case <-ctx.Done():
		logger.Logger.Info("Shutting down simple-blog")
	case err = <-serveErr:
		logger.Logger.Error("HTTP server failed", "err", err)
	}
	app.shutdown()
	return err
}

func pingWithTimeout(ctx context.Context, ping func(context.Context) error) error {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return ping(pingCtx)
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown error", "err", err)
	}

	if a.fragmentCache != nil {
		if err := a.fragmentCache.Close(); err != nil {
			logger.Logger.Error("redis close error", "err", err)
		}
	}
	a.pool.Close()

	otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer otelCancel()
	if err := a.otelShutdown(otelCtx); err != nil {
		fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
	}
}
