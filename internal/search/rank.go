package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"marquee/internal/domain"
)

// Match is a ranked search hit with the character positions that matched,
// for highlighting in the search modal.
type Match struct {
	Movie          domain.Movie
	MatchedIndexes []int
	Score          int
}

// movieSource implements fuzzy.Source over pre-lowered titles
type movieSource struct {
	titles []string
}

func (s movieSource) String(i int) string { return s.titles[i] }
func (s movieSource) Len() int            { return len(s.titles) }

// Rank orders movies by fuzzy relevance to the query. An empty query returns
// no matches; the inline filter handles that case with the full list.
func Rank(movies []domain.Movie, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(movies) == 0 {
		return nil
	}

	src := movieSource{titles: make([]string, len(movies))}
	for i, m := range movies {
		src.titles[i] = strings.ToLower(m.Title)
	}

	results := fuzzy.FindFrom(strings.ToLower(query), src)

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Movie:          movies[r.Index],
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
