package blog_db

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/hqpr/simple-blog/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

var postRowColumns = []string{
	"id", "author_id", "username", "title", "text", "published", "created_at", "updated_at",
	"category_ids", "category_titles",
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logger.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func postRows() *pgxmock.Rows {
	return pgxmock.NewRows(postRowColumns)
}
