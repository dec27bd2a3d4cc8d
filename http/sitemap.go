package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/askskill"
)

// maxSitemaps bounds recursion through sitemap indexes; a probe is a cheap
// signal, not a crawl.
const maxSitemaps = 5

// docPathHints are URL path fragments that indicate documentation pages.
var docPathHints = []string{"/docs", "/documentation", "/api", "/reference", "/guide", "/developers"}

// Ensure SitemapProber implements askskill.SitemapProber.
var _ askskill.SitemapProber = (*SitemapProber)(nil)

// SitemapProber checks a site's sitemap for documentation-like paths.
// It reads robots.txt for Sitemap: directives first, then falls back to
// /sitemap.xml, resolving sitemap indexes up to a fixed bound.
type SitemapProber struct {
	client *http.Client
}

// NewSitemapProber creates a new SitemapProber with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapProber(client *http.Client) *SitemapProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapProber{client: client}
}

// CountDocPaths reports how many sitemap URLs look like documentation paths.
// An unreachable or absent sitemap yields 0 without error: the probe is a
// best-effort signal and must never fail a classification on its own.
func (p *SitemapProber) CountDocPaths(ctx context.Context, baseURL string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return 0, askskill.Errorf(askskill.EINVALID, "invalid base URL: %v", err)
	}
	base.Path = ""
	base.RawQuery = ""

	sitemapURLs := p.findSitemapURLs(ctx, base)
	if len(sitemapURLs) == 0 {
		return 0, nil
	}

	count := 0
	seen := make(map[string]bool)
	for _, sitemapURL := range sitemapURLs {
		n, err := p.countInSitemap(ctx, sitemapURL, seen)
		if err != nil {
			// Propagate cancellation; swallow fetch/parse noise.
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			continue
		}
		count += n
	}

	return count, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (p *SitemapProber) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := p.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	return []string{base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (p *SitemapProber) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := p.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Case-insensitive check for Sitemap: directive
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	return sitemaps
}

// countInSitemap fetches one sitemap and counts doc-like URLs, recursing into
// sitemap indexes up to the maxSitemaps bound.
func (p *SitemapProber) countInSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) (int, error) {
	if seen[sitemapURL] || len(seen) >= maxSitemaps {
		return 0, nil
	}
	seen[sitemapURL] = true

	body, err := p.fetchURL(ctx, sitemapURL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(io.LimitReader(body, 8<<20)); err != nil {
		return 0, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return 0, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		count := 0
		for _, sitemap := range root.SelectElements("sitemap") {
			loc := sitemap.SelectElement("loc")
			if loc == nil {
				continue
			}
			n, err := p.countInSitemap(ctx, strings.TrimSpace(loc.Text()), seen)
			if err != nil {
				if ctx.Err() != nil {
					return 0, ctx.Err()
				}
				continue
			}
			count += n
		}
		return count, nil
	}

	count := 0
	for _, u := range root.SelectElements("url") {
		loc := u.SelectElement("loc")
		if loc == nil {
			continue
		}
		if isDocPath(strings.TrimSpace(loc.Text())) {
			count++
		}
	}
	return count, nil
}

// isDocPath reports whether a URL's path looks like a documentation page.
func isDocPath(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, hint := range docPathHints {
		if strings.HasPrefix(path, hint) || strings.Contains(path, hint+"/") {
			return true
		}
	}
	return false
}

// fetchURL performs a GET request and returns the response body.
func (p *SitemapProber) fetchURL(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return resp.Body, nil
}
