package cli

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type postRow struct {
	ID    string
	Title string
	Meta  string
}

// parsePosts extracts the posts rendered by the server's posts partial.
func parsePosts(fragment string) ([]postRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	var rows []postRow
	doc.Find("article.post").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		rows = append(rows, postRow{
			ID:    id,
			Title: collapse(s.Find("h2 a").First().Text()),
			Meta:  collapse(s.Find(".meta").First().Text()),
		})
	})
	return rows, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
