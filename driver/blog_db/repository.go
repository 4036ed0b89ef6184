package blog_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the repository needs.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type BlogDBRepository struct {
	pool PgxIface
}

func NewBlogDBRepository(pool PgxIface) *BlogDBRepository {
	return &BlogDBRepository{pool: pool}
}

func (r *BlogDBRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
