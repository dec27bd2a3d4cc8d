package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/askskill"
)

// ParseDuckDuckGo parses the DuckDuckGo HTML endpoint response into search
// results, preserving engine rank order. Redirect links are unwrapped to the
// destination URL. Ad results are skipped.
func ParseDuckDuckGo(html string, max int) ([]askskill.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, askskill.Errorf(askskill.EINVALID, "failed to parse search results: %v", err)
	}

	var results []askskill.SearchResult
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}

		link := sel.Find("a.result__a").First()
		href, exists := link.Attr("href")
		if !exists || href == "" {
			return true
		}

		resolved := unwrapRedirect(href)
		if resolved == "" {
			return true
		}

		results = append(results, askskill.SearchResult{
			Title:   strings.TrimSpace(link.Text()),
			URL:     resolved,
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
		})
		return max <= 0 || len(results) < max
	})

	return results, nil
}

// unwrapRedirect resolves DuckDuckGo's /l/?uddg= redirect wrapper to the
// destination URL. Non-wrapped URLs are returned as-is.
func unwrapRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if strings.HasSuffix(u.Host, "duckduckgo.com") && strings.HasPrefix(u.Path, "/l/") {
		if dest := u.Query().Get("uddg"); dest != "" {
			return dest
		}
		return ""
	}

	return href
}
