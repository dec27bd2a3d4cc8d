package mock

import (
	"context"

	"github.com/fwojciec/askskill"
)

// Compile-time interface verification.
var (
	_ askskill.Searcher   = (*Searcher)(nil)
	_ askskill.Resolver   = (*Resolver)(nil)
	_ askskill.SeenFilter = (*SeenFilter)(nil)
)

// Searcher is a mock implementation of askskill.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, max int) ([]askskill.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, max int) ([]askskill.SearchResult, error) {
	return s.SearchFn(ctx, query, max)
}

// Resolver is a mock implementation of askskill.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, query string) (*askskill.Resolution, error)
}

func (r *Resolver) Resolve(ctx context.Context, query string) (*askskill.Resolution, error) {
	return r.ResolveFn(ctx, query)
}

// SeenFilter is a mock implementation of askskill.SeenFilter.
type SeenFilter struct {
	AddFn  func(url string)
	SeenFn func(url string) bool
}

func (f *SeenFilter) Add(url string) {
	f.AddFn(url)
}

func (f *SeenFilter) Seen(url string) bool {
	return f.SeenFn(url)
}
