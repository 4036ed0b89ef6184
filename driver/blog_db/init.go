package blog_db

import (
	"context"
	"fmt"

	"github.com/hqpr/simple-blog/config"
	"github.com/hqpr/simple-blog/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDBConnectionPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		logger.Logger.Error("Failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Logger.Info("Connected to database", "host", poolConfig.ConnConfig.Host, "database", poolConfig.ConnConfig.Database)
	return pool, nil
}
