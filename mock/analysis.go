package mock

import (
	"context"

	"github.com/fwojciec/askskill"
)

// Compile-time interface verification.
var (
	_ askskill.SiteAnalyzer  = (*SiteAnalyzer)(nil)
	_ askskill.Extractor     = (*Extractor)(nil)
	_ askskill.Converter     = (*Converter)(nil)
	_ askskill.SitemapProber = (*SitemapProber)(nil)
)

// SiteAnalyzer is a mock implementation of askskill.SiteAnalyzer.
type SiteAnalyzer struct {
	ClassifyDocsFn  func(ctx context.Context, url string) (*askskill.SiteAnalysisResult, error)
	LocateAskAIFn   func(ctx context.Context, url string) (*askskill.AffordanceLocation, error)
	AskAndExtractFn func(ctx context.Context, url string, loc *askskill.AffordanceLocation, query string) (*askskill.Transcript, error)
}

func (a *SiteAnalyzer) ClassifyDocs(ctx context.Context, url string) (*askskill.SiteAnalysisResult, error) {
	return a.ClassifyDocsFn(ctx, url)
}

func (a *SiteAnalyzer) LocateAskAI(ctx context.Context, url string) (*askskill.AffordanceLocation, error) {
	return a.LocateAskAIFn(ctx, url)
}

func (a *SiteAnalyzer) AskAndExtract(ctx context.Context, url string, loc *askskill.AffordanceLocation, query string) (*askskill.Transcript, error) {
	return a.AskAndExtractFn(ctx, url, loc, query)
}

// Extractor is a mock implementation of askskill.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*askskill.PageContent, error)
}

func (e *Extractor) Extract(html string) (*askskill.PageContent, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of askskill.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// SitemapProber is a mock implementation of askskill.SitemapProber.
type SitemapProber struct {
	CountDocPathsFn func(ctx context.Context, baseURL string) (int, error)
}

func (p *SitemapProber) CountDocPaths(ctx context.Context, baseURL string) (int, error) {
	return p.CountDocPathsFn(ctx, baseURL)
}
