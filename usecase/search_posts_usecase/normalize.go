package search_posts_usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	findTerms = regexp.MustCompile(`"([^"]+)"|(\S+)`)
	normSpace = regexp.MustCompile(`\s{2,}`)
)

// NormalizeQuery splits a query into search terms. Quoted phrases stay one
// term and runs of whitespace inside them collapse to a single space:
//
//	`  some random  words "with   quotes  " and   spaces`
//	=> [some random words "with quotes" and spaces]
func NormalizeQuery(query string) []string {
	query = norm.NFKC.String(query)

	matches := findTerms.FindAllStringSubmatch(query, -1)
	terms := make([]string, 0, len(matches))
	for _, m := range matches {
		term := m[1]
		if term == "" {
			term = m[2]
		}
		term = normSpace.ReplaceAllString(strings.TrimSpace(term), " ")
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
