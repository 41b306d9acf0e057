package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"marquee/internal/domain"
)

// Filter returns the ordered subsequence of movies whose title or genre
// contains the query as a case-insensitive substring. An empty or
// whitespace-only query returns the input sequence unchanged, in the same
// order. Missing fields match as the empty string.
func Filter(movies []domain.Movie, query string) []domain.Movie {
	query = strings.TrimSpace(query)
	if query == "" {
		return movies
	}

	needle := strings.ToLower(query)
	matched := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), needle) ||
			strings.Contains(strings.ToLower(m.Genre), needle) {
			matched = append(matched, m)
		}
	}
	return matched
}

// Suggest returns up to n catalog titles closest to the query, for the empty
// filter state. Results are ordered by edit distance.
func Suggest(movies []domain.Movie, query string, n int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(movies) == 0 || n <= 0 {
		return nil
	}

	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		if m.Title != "" {
			titles = append(titles, m.Title)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	if len(ranks) > n {
		ranks = ranks[:n]
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
