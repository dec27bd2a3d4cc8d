package analyze

import (
	"fmt"
	"strings"
)

// Scoring weights for the structural classification tier.
const (
	weightMetadata  = 2.0 // indicator term in title, description, or site name
	weightBody      = 1.0 // indicator term in extracted body text
	weightURLPath   = 2.0 // documentation-like URL path
	weightSitemap   = 2.0 // sitemap holds enough documentation-like paths
	weightFramework = 3.0 // recognized documentation platform
)

// Visual tier contribution limits.
const (
	visualHitWeight    = 0.5
	visualCap          = 3.0
	ocrConfidenceFloor = 60.0
)

// decisionThreshold is the score a site must exceed to classify as
// documentation. A score exactly at the threshold classifies as no docs.
const decisionThreshold = 6.0

// The inconclusive band triggers the visual tier: scores in
// [inconclusiveLow, inconclusiveHigh) are close enough to the threshold that
// on-screen evidence can change the outcome.
const (
	inconclusiveLow  = 4.0
	inconclusiveHigh = 8.0
)

// sitemapMinDocPaths is how many documentation-like sitemap paths it takes to
// count the sitemap as a signal.
const sitemapMinDocPaths = 5

// vocabulary is the indicator term list scored against page metadata, body
// text, and on-screen text. Read-only after init.
var vocabulary = []string{
	"documentation",
	"docs",
	"api reference",
	"getting started",
	"quickstart",
	"tutorial",
	"developer",
	"guide",
	"sdk",
	"reference",
	"endpoints",
	"authentication",
	"installation",
	"setup",
	"configuration",
	"examples",
}

// urlPathHints are URL path fragments that indicate a documentation section.
var urlPathHints = []string{"/docs", "/api", "/reference", "/guide"}

// score accumulates classification signals with their diagnostic labels.
type score struct {
	total   float64
	signals []string
}

func (s *score) add(points float64, format string, args ...any) {
	s.total += points
	s.signals = append(s.signals, fmt.Sprintf(format, args...))
}

// indicatorHits counts how many distinct vocabulary terms appear in the text.
// Distinct terms, not occurrences: repetition of one term is one hit.
func indicatorHits(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

// pathHint returns the first documentation-like fragment in the URL path, or
// the empty string.
func pathHint(url string) string {
	lower := strings.ToLower(url)
	for _, hint := range urlPathHints {
		if strings.Contains(lower, hint) {
			return hint
		}
	}
	return ""
}
