// Package trafilatura extracts page metadata and main content from HTML,
// feeding the structural tier of doc classification.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/askskill"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements askskill.Extractor at compile time.
var _ askskill.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract metadata and main text from HTML.
// Boilerplate (nav, footer, sidebar, ads) is removed from the text, so
// indicator scoring sees substantive page content rather than chrome.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns page metadata plus main text.
func (e *Extractor) Extract(rawHTML string) (*askskill.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, askskill.Errorf(askskill.EINVALID, "empty HTML input")
	}

	// Parse once ourselves: malformed markup surfaces here as EINVALID
	// instead of bubbling out of the extraction internals.
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, askskill.Errorf(askskill.EINVALID, "HTML could not be parsed")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.ExtractDocument(doc, opts)
	if err != nil {
		return nil, err
	}

	return &askskill.PageContent{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		SiteName:    result.Metadata.Sitename,
		Text:        result.ContentText,
	}, nil
}
