package askskill

import "context"

// SiteAnalysisResult is the outcome of classifying a site for developer
// documentation. Produced fresh per analysis call; never cached across sites.
type SiteAnalysisResult struct {
	// HasDocs is the boolean classification.
	HasDocs bool `json:"hasDocs"`

	// Confidence is the combined indicator score the classification compared
	// against the decision threshold.
	Confidence float64 `json:"confidence"`

	// Signals lists the indicator signals that contributed, for diagnostics.
	Signals []string `json:"signals"`
}

// Transcript holds an answer extracted from a site's embedded AI assistant.
type Transcript struct {
	// Raw is the extracted answer text before cleaning.
	Raw string `json:"raw"`

	// Cleaned is Raw with interface chrome stripped. Non-empty whenever Raw
	// contains at least one non-chrome sentence.
	Cleaned string `json:"cleaned"`

	// Altered is true when cleaning changed the text.
	Altered bool `json:"altered"`

	// Incomplete is true when extraction ran after the response deadline
	// expired, so the answer may have been cut off mid-stream.
	Incomplete bool `json:"incomplete"`
}

// SiteAnalyzer drives a browser session against one URL to classify developer
// documentation, locate an "Ask AI" affordance, and extract an answer.
//
// Each operation is individually timeout-bounded and returns either a typed
// result or an application error; failures are reported upward, never
// swallowed.
type SiteAnalyzer interface {
	// ClassifyDocs reports whether the URL hosts developer documentation.
	// Returns EUNAVAILABLE if the site cannot be loaded.
	ClassifyDocs(ctx context.Context, url string) (*SiteAnalysisResult, error)

	// LocateAskAI finds an interactive AI affordance on the page.
	// Returns ENOTFOUND when no affordance clears the confidence floor.
	LocateAskAI(ctx context.Context, url string) (*AffordanceLocation, error)

	// AskAndExtract opens the affordance, submits the query, waits for the
	// response to settle, and returns the extracted transcript. On deadline
	// expiry it extracts whatever is present and marks the transcript
	// incomplete rather than failing.
	AskAndExtract(ctx context.Context, url string, loc *AffordanceLocation, query string) (*Transcript, error)
}

// PageContent holds metadata and main text extracted from a page's HTML,
// with boilerplate (nav, footer, sidebar) removed.
type PageContent struct {
	Title       string
	Description string
	SiteName    string
	Text        string
}

// Extractor extracts metadata and main content from HTML pages.
type Extractor interface {
	Extract(html string) (*PageContent, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// SitemapProber checks a site's sitemap for documentation-like paths.
// The count feeds the structural doc-classification score.
type SitemapProber interface {
	// CountDocPaths reports how many sitemap URLs look like documentation
	// paths (/docs, /api, /reference, /guide). Returns 0 without error when
	// the site has no reachable sitemap.
	CountDocPaths(ctx context.Context, baseURL string) (int, error)
}
