package blog_db

import (
	"fmt"
	"strings"

	"github.com/hqpr/simple-blog/domain"

	"github.com/jackc/pgx/v5"
)

const postColumns = `
	p.id, p.author_id, u.username, p.title, p.text, p.published, p.created_at, p.updated_at,
	COALESCE(array_agg(c.id ORDER BY c.title, c.id) FILTER (WHERE c.id IS NOT NULL), '{}') AS category_ids,
	COALESCE(array_agg(c.title ORDER BY c.title, c.id) FILTER (WHERE c.id IS NOT NULL), '{}') AS category_titles`

const postFrom = `
	FROM posts p
	INNER JOIN users u ON u.id = p.author_id
	LEFT JOIN post_categories pc ON pc.post_id = p.id
	LEFT JOIN categories c ON c.id = pc.category_id`

const postGroupBy = `GROUP BY p.id, u.username`

const newestFirst = `ORDER BY p.created_at DESC, p.id DESC`

// buildPostWhere returns the WHERE clause selecting published posts in scope.
// Placeholders start at $1.
func buildPostWhere(scope domain.Scope) (string, []any) {
	switch scope.Kind {
	case domain.ScopeAuthor:
		return "WHERE p.published AND p.author_id = $1", []any{scope.ID}
	case domain.ScopeCategory:
		return `WHERE p.published AND EXISTS (
		SELECT 1 FROM post_categories sc WHERE sc.post_id = p.id AND sc.category_id = $1)`, []any{scope.ID}
	default:
		return "WHERE p.published", nil
	}
}

// escapeLike escapes the ILIKE wildcards in a user term.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p        domain.Post
		catIDs   []int64
		catNames []string
	)
	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorName,
		&p.Title,
		&p.Text,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
		&catIDs,
		&catNames,
	); err != nil {
		return nil, err
	}
	p.Categories = make([]domain.Category, 0, len(catIDs))
	for i, id := range catIDs {
		if i >= len(catNames) {
			break
		}
		p.Categories = append(p.Categories, domain.Category{ID: id, Title: catNames[i]})
	}
	return &p, nil
}

func scanPosts(rows pgx.Rows) ([]*domain.Post, error) {
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
