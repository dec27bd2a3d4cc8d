package search_test

import (
	"context"
	"testing"

	"github.com/fwojciec/askskill"
	"github.com/fwojciec/askskill/mock"
	"github.com/fwojciec/askskill/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("appends developer documentation to the query", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, query string, _ int) ([]askskill.SearchResult, error) {
				gotQuery = query
				return []askskill.SearchResult{{Title: "Stripe Docs", URL: "https://docs.stripe.com"}}, nil
			},
		}

		_, err := search.NewResolver(searcher).Resolve(context.Background(), "stripe payments")

		require.NoError(t, err)
		assert.Equal(t, "stripe payments developer documentation", gotQuery)
	})

	t.Run("boosts documentation URLs above others", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				return []askskill.SearchResult{
					{Title: "Blog post", URL: "https://example.com/blog/stripe-review"},
					{Title: "Stripe Docs", URL: "https://docs.stripe.com/api/reference"},
				}, nil
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "stripe")

		require.NoError(t, err)
		require.Len(t, res.Results, 2)
		assert.False(t, res.Fallback)
		assert.Equal(t, "Stripe Docs", res.Results[0].Title)
	})

	t.Run("preserves engine order on ties", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				return []askskill.SearchResult{
					{Title: "First", URL: "https://a.example.com/docs"},
					{Title: "Second", URL: "https://b.example.com/docs"},
				}, nil
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "tooling")

		require.NoError(t, err)
		require.Len(t, res.Results, 2)
		assert.Equal(t, "First", res.Results[0].Title)
		assert.Equal(t, "Second", res.Results[1].Title)
	})

	t.Run("caps at five results", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				results := make([]askskill.SearchResult, 8)
				for i := range results {
					results[i] = askskill.SearchResult{Title: "r", URL: "https://example.com"}
				}
				return results, nil
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "anything")

		require.NoError(t, err)
		assert.Len(t, res.Results, 5)
	})

	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		t.Parallel()

		raw := []askskill.SearchResult{
			{Title: "A", URL: "https://a.example.com/guide"},
			{Title: "B", URL: "https://b.example.com/docs/api"},
			{Title: "C", URL: "https://c.example.com"},
			{Title: "D", URL: "https://d.example.com/reference"},
		}
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				out := make([]askskill.SearchResult, len(raw))
				copy(out, raw)
				return out, nil
			},
		}
		r := search.NewResolver(searcher)

		first, err := r.Resolve(context.Background(), "tooling")
		require.NoError(t, err)
		second, err := r.Resolve(context.Background(), "tooling")
		require.NoError(t, err)

		assert.Equal(t, first.Results, second.Results)
	})

	t.Run("falls back to the catalog on search failure", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				return nil, askskill.Errorf(askskill.EUNAVAILABLE, "search engine unreachable")
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "stripe payments")

		require.NoError(t, err)
		assert.True(t, res.Fallback)
		assert.NotEmpty(t, res.Note)
		require.NotEmpty(t, res.Results)
		assert.Equal(t, "https://docs.stripe.com", res.Results[0].URL)
	})

	t.Run("falls back to the catalog on empty results", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				return nil, nil
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "postgres backend")

		require.NoError(t, err)
		assert.True(t, res.Fallback)
		require.NotEmpty(t, res.Results)
		assert.Equal(t, "https://supabase.com/docs", res.Results[0].URL)
	})

	t.Run("fallback yields results even with no keyword overlap", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string, int) ([]askskill.SearchResult, error) {
				return nil, nil
			},
		}

		res, err := search.NewResolver(searcher).Resolve(context.Background(), "xyzzy plugh")

		require.NoError(t, err)
		assert.True(t, res.Fallback)
		assert.NotEmpty(t, res.Results)
	})
}
