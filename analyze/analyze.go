// Package analyze classifies sites for developer documentation, locates
// embedded "Ask AI" affordances, and extracts answers from them.
//
// Classification is layered: a structural tier scores extracted metadata,
// body text, the URL path, the sitemap, and the detected documentation
// platform; when the structural score lands close to the decision threshold,
// a visual tier scores text recognized on a screenshot. The visual tier never
// runs when the structural evidence is decisive.
package analyze

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/askskill"
)

// Per-operation deadlines. responseTimeout bounds only the settle wait inside
// an ask, which runs as a whole under askTimeout.
const (
	classifyTimeout = 45 * time.Second
	locateTimeout   = 30 * time.Second
	askTimeout      = 90 * time.Second
	responseTimeout = 30 * time.Second
)

// Analyzer implements askskill.SiteAnalyzer against a live browser.
type Analyzer struct {
	Browser   askskill.Browser
	Extractor askskill.Extractor
	Converter askskill.Converter
	Sitemaps  askskill.SitemapProber
	Platforms askskill.FrameworkDetector
	Selectors askskill.SelectorRegistry
	Detector  askskill.TextDetector

	// ResponseTimeout bounds how long AskAndExtract waits for the assistant
	// to settle. Zero means the default.
	ResponseTimeout time.Duration
}

var _ askskill.SiteAnalyzer = (*Analyzer)(nil)

// ClassifyDocs reports whether the URL hosts developer documentation.
// Identical page content yields an identical result.
func (a *Analyzer) ClassifyDocs(ctx context.Context, url string) (*askskill.SiteAnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	page, err := a.Browser.Open(ctx, url)
	if err != nil {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "site could not be loaded: %s", url)
	}
	defer page.Close()

	html, err := page.HTML(ctx)
	if err != nil {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "page could not be read: %s", url)
	}

	var s score
	a.scoreStructural(ctx, &s, page, url, html)

	if s.total >= inconclusiveLow && s.total < inconclusiveHigh {
		a.scoreVisual(ctx, &s, page)
	}

	return &askskill.SiteAnalysisResult{
		HasDocs:    s.total > decisionThreshold,
		Confidence: s.total,
		Signals:    s.signals,
	}, nil
}

func (a *Analyzer) scoreStructural(ctx context.Context, s *score, page askskill.Page, url, html string) {
	// Extraction failure degrades to scoring the remaining signals; the
	// document title still counts as metadata, and the site may classify on
	// its URL, sitemap, and platform.
	if content, err := a.Extractor.Extract(html); err == nil {
		meta := strings.Join([]string{content.Title, content.Description, content.SiteName}, " ")
		for _, term := range indicatorHits(meta) {
			s.add(weightMetadata, "metadata:%s", term)
		}
		for _, term := range indicatorHits(content.Text) {
			s.add(weightBody, "body:%s", term)
		}
	} else if title, err := page.Title(ctx); err == nil {
		for _, term := range indicatorHits(title) {
			s.add(weightMetadata, "metadata:%s", term)
		}
	}

	if hint := pathHint(url); hint != "" {
		s.add(weightURLPath, "path:%s", hint)
	}

	if n, err := a.Sitemaps.CountDocPaths(ctx, url); err == nil && n >= sitemapMinDocPaths {
		s.add(weightSitemap, "sitemap:%d", n)
	}

	if fw := a.Platforms.Detect(html); fw != askskill.FrameworkUnknown {
		s.add(weightFramework, "framework:%s", fw)
	}
}

// scoreVisual adds on-screen indicator evidence, capped so the visual tier
// can tip an inconclusive score but never dominate the structural one.
func (a *Analyzer) scoreVisual(ctx context.Context, s *score, page askskill.Page) {
	img, err := page.Screenshot(ctx)
	if err != nil {
		return
	}
	detected, err := a.detectRegions(ctx, img)
	if err != nil {
		return
	}

	var added float64
	for _, d := range detected {
		if d.Confidence < ocrConfidenceFloor {
			continue
		}
		for range indicatorHits(d.Text) {
			if added >= visualCap {
				break
			}
			added += visualHitWeight
		}
	}
	if added > 0 {
		s.add(added, "visual:+%.1f", added)
	}
}
