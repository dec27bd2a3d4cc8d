// Package search resolves free-text descriptions of developer tools into
// ranked candidate documentation sites.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/askskill"
)

// maxResults caps how many candidates a resolution presents.
const maxResults = 5

// rawResults is how many raw engine results we pull before reranking.
const rawResults = 10

// docTokens are URL fragments that indicate a documentation site. A hit in
// the host or path boosts the result above non-documentation hits.
var docTokens = []string{
	"docs",
	"documentation",
	"developer",
	"api",
	"reference",
	"guide",
}

// Resolver ranks web-search results for documentation relevance, degrading
// to a curated catalog when the search capability is unavailable.
type Resolver struct {
	searcher askskill.Searcher
}

var _ askskill.Resolver = (*Resolver)(nil)

func NewResolver(searcher askskill.Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve queries for documentation sites matching the description. It never
// returns an error for search unavailability: the curated catalog substitutes
// and the degradation is recorded on the Resolution.
func (r *Resolver) Resolve(ctx context.Context, query string) (*askskill.Resolution, error) {
	results, err := r.searcher.Search(ctx, query+" developer documentation", rawResults)
	if err != nil {
		return &askskill.Resolution{
			Results:  cap5(fromCatalog(query)),
			Fallback: true,
			Note:     "search unavailable: " + askskill.ErrorMessage(err),
		}, nil
	}
	if len(results) == 0 {
		return &askskill.Resolution{
			Results:  cap5(fromCatalog(query)),
			Fallback: true,
			Note:     "search returned no results",
		}, nil
	}

	return &askskill.Resolution{Results: cap5(rerank(results))}, nil
}

// rerank orders results by documentation-token boost, preserving the engine's
// original order on ties. The input slice is not modified.
func rerank(results []askskill.SearchResult) []askskill.SearchResult {
	ranked := make([]askskill.SearchResult, len(results))
	copy(ranked, results)
	for i := range ranked {
		ranked[i].Score = docBoost(ranked[i].URL)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// docBoost counts documentation-indicative tokens in the URL's host and path.
func docBoost(url string) float64 {
	u := strings.ToLower(url)
	var boost float64
	for _, tok := range docTokens {
		if strings.Contains(u, tok) {
			boost++
		}
	}
	return boost
}

func cap5(results []askskill.SearchResult) []askskill.SearchResult {
	if len(results) > maxResults {
		return results[:maxResults]
	}
	return results
}
