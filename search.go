package askskill

import "context"

// SearchResult represents one candidate documentation site. Results are
// immutable once produced and their ordering is significant: the position in
// the presented list is the index the user selects by.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

// Resolution is the outcome of resolving a free-text description into
// candidate documentation sites.
type Resolution struct {
	// Results holds at most five candidates, best first.
	Results []SearchResult

	// Fallback is true when the curated catalog substituted for live search.
	Fallback bool

	// Note carries a diagnostic detail for observability (e.g. why the
	// fallback was used). Empty on the happy path.
	Note string
}

// Searcher is the raw web-search capability consumed from a collaborator.
type Searcher interface {
	// Search returns up to max results for the query, in engine rank order.
	Search(ctx context.Context, query string, max int) ([]SearchResult, error)
}

// Resolver turns a free-text user description into a ranked list of candidate
// documentation sites.
//
// Resolve never fails on search unavailability: it degrades silently to a
// static catalog and records the degradation in the Resolution. Identical
// query plus identical raw search results yield an identical ranked output.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*Resolution, error)
}

// SeenFilter tracks URLs presented or attempted within a session so retries
// never re-surface a site the user has already tried.
// False positives are acceptable; false negatives are not.
type SeenFilter interface {
	Add(url string)
	Seen(url string) bool
}
