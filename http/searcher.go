// Package http provides HTTP-based collaborator implementations: the raw
// web-search capability (DuckDuckGo HTML endpoint) and the sitemap prober.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/askskill"
	"github.com/fwojciec/askskill/goquery"
	"golang.org/x/time/rate"
)

// DefaultSearchTimeout bounds one search round trip.
const DefaultSearchTimeout = 10 * time.Second

// defaultSearchRPS keeps the client well under DuckDuckGo's throttle.
const defaultSearchRPS = 0.5

const searchEndpoint = "https://html.duckduckgo.com/html/"

// Browsers get served the full HTML results page; default Go user agents get
// a JS challenge.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

// Ensure Searcher implements askskill.Searcher at compile time.
var _ askskill.Searcher = (*Searcher)(nil)

// Searcher implements the raw-search capability against DuckDuckGo's HTML
// endpoint. No API key is required. Requests are rate limited so concurrent
// sessions cannot trip the engine's abuse detection.
type Searcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
	endpoint string
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchTimeout sets the timeout for one search request.
// Defaults to DefaultSearchTimeout (10s) if not specified.
func WithSearchTimeout(d time.Duration) SearcherOption {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithSearchClient sets the underlying HTTP client, mainly for tests.
func WithSearchClient(client *http.Client) SearcherOption {
	return func(s *Searcher) {
		s.client = client
	}
}

// WithSearchEndpoint overrides the search endpoint URL, mainly for tests.
func WithSearchEndpoint(endpoint string) SearcherOption {
	return func(s *Searcher) {
		s.endpoint = endpoint
	}
}

// NewSearcher creates a new DuckDuckGo-backed Searcher.
func NewSearcher(opts ...SearcherOption) *Searcher {
	s := &Searcher{
		limiter:  rate.NewLimiter(rate.Limit(defaultSearchRPS), 1),
		timeout:  DefaultSearchTimeout,
		endpoint: searchEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	return s
}

// Search returns up to max results for the query, in engine rank order.
// Returns EUNAVAILABLE when the engine cannot be reached or rejects the
// request; callers are expected to degrade to their fallback catalog.
func (s *Searcher) Search(ctx context.Context, query string, max int) ([]askskill.SearchResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	form := url.Values{"q": {query}}
	reqURL := s.endpoint + "?" + form.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "search returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}

	return goquery.ParseDuckDuckGo(string(body), max)
}
