package search

import (
	"sort"
	"strings"

	"github.com/fwojciec/askskill"
)

// catalogEntry is one curated documentation site used when live search is
// unavailable. Keywords are matched against the user's query to order the
// fallback results.
type catalogEntry struct {
	Title    string
	URL      string
	Snippet  string
	Keywords []string
}

// catalog is the static fallback table. Read-only after init.
var catalog = []catalogEntry{
	{
		Title:    "Base Documentation",
		URL:      "https://docs.base.org",
		Snippet:  "Documentation for building on Base, an Ethereum L2.",
		Keywords: []string{"base", "ethereum", "l2", "onchain", "blockchain", "dapp", "web3"},
	},
	{
		Title:    "Stripe Documentation",
		URL:      "https://docs.stripe.com",
		Snippet:  "Guides and API reference for accepting payments with Stripe.",
		Keywords: []string{"stripe", "payments", "billing", "checkout", "invoice", "subscription"},
	},
	{
		Title:    "Vercel Documentation",
		URL:      "https://vercel.com/docs",
		Snippet:  "Documentation for deploying and hosting on Vercel.",
		Keywords: []string{"vercel", "nextjs", "next.js", "deploy", "hosting", "frontend", "serverless"},
	},
	{
		Title:    "Supabase Documentation",
		URL:      "https://supabase.com/docs",
		Snippet:  "Guides and reference for the Supabase open source backend.",
		Keywords: []string{"supabase", "postgres", "database", "auth", "realtime", "storage", "backend"},
	},
	{
		Title:    "Tailwind CSS Documentation",
		URL:      "https://tailwindcss.com/docs",
		Snippet:  "Reference for the Tailwind utility-first CSS framework.",
		Keywords: []string{"tailwind", "css", "styling", "design", "utility", "frontend"},
	},
}

// fromCatalog orders the curated entries by naive keyword overlap with the
// query. Every query yields at least one result: entries with no overlap keep
// their catalog order after the matching ones.
func fromCatalog(query string) []askskill.SearchResult {
	words := queryWords(query)

	type scored struct {
		entry catalogEntry
		hits  int
		rank  int
	}
	rows := make([]scored, 0, len(catalog))
	for i, e := range catalog {
		hits := 0
		for _, kw := range e.Keywords {
			if words[kw] {
				hits++
			}
		}
		rows = append(rows, scored{entry: e, hits: hits, rank: i})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].hits != rows[j].hits {
			return rows[i].hits > rows[j].hits
		}
		return rows[i].rank < rows[j].rank
	})

	results := make([]askskill.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, askskill.SearchResult{
			Title:   r.entry.Title,
			URL:     r.entry.URL,
			Snippet: r.entry.Snippet,
			Score:   float64(r.hits),
		})
	}
	return results
}

func queryWords(query string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(query)) {
		words[strings.Trim(w, ".,!?\"'()")] = true
	}
	return words
}
