// Package goquery provides structural (DOM) analysis: documentation platform
// detection, platform-specific Ask AI affordance selectors, and search result
// parsing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/askskill"
)

// Ensure Detector implements askskill.FrameworkDetector at compile time.
var _ askskill.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation platforms from HTML content.
// It checks for platform-specific CSS classes, data attributes, meta tags,
// and structural markers that are unique to each documentation generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns FrameworkUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) askskill.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return askskill.FrameworkUnknown
	}

	// Check meta generator tags first - most reliable when present
	if framework := d.detectFromMetaGenerator(doc); framework != askskill.FrameworkUnknown {
		return framework
	}

	// Check for Docusaurus markers
	// __docusaurus_skipToContent_fallback is highly specific
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") ||
		d.hasSelector(doc, "[data-rh]") && d.hasSelector(doc, "[data-theme]") {
		return askskill.FrameworkDocusaurus
	}

	// Check for MkDocs Material markers
	// data-md-color-* attributes are unique to MkDocs Material
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return askskill.FrameworkMkDocs
	}

	// Check for Sphinx markers (including ReadTheDocs theme)
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".wy-menu-vertical") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return askskill.FrameworkSphinx
	}

	// Check for Mintlify markers
	// Mintlify docs ship a navbar transition div and a banner atom
	if d.hasSelector(doc, "#navbar-transition") ||
		d.hasSelector(doc, "[data-page-mode]") ||
		d.hasSelector(doc, "script[src*='mintlify']") {
		return askskill.FrameworkMintlify
	}

	// Check for VitePress markers (before VuePress since VitePress is a VuePress successor)
	if d.hasSelector(doc, "#VPContent") ||
		d.hasSelector(doc, ".VPDoc") ||
		d.hasSelector(doc, ".VPDocAsideOutline") {
		return askskill.FrameworkVitePress
	}

	// Check for VuePress markers
	if d.hasSelector(doc, ".theme-default-content") ||
		d.hasSelector(doc, ".sidebar-links") ||
		d.hasSelector(doc, ".vuepress-navbar") {
		return askskill.FrameworkVuePress
	}

	// Check for GitBook markers
	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") ||
		d.hasGitBookClasses(doc) {
		return askskill.FrameworkGitBook
	}

	// Check for Nextra markers
	if d.hasSelector(doc, ".nextra-navbar") ||
		d.hasSelector(doc, ".nextra-sidebar") ||
		d.hasSelector(doc, ".nextra-toc") {
		return askskill.FrameworkNextra
	}

	return askskill.FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) askskill.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return askskill.FrameworkUnknown
	}

	switch {
	case strings.Contains(generator, "sphinx"):
		return askskill.FrameworkSphinx
	case strings.Contains(generator, "gitbook"):
		return askskill.FrameworkGitBook
	case strings.Contains(generator, "docusaurus"):
		return askskill.FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return askskill.FrameworkMkDocs
	case strings.Contains(generator, "mintlify"):
		return askskill.FrameworkMintlify
	case strings.Contains(generator, "vitepress"):
		return askskill.FrameworkVitePress
	case strings.Contains(generator, "vuepress"):
		return askskill.FrameworkVuePress
	case strings.Contains(generator, "nextra"):
		return askskill.FrameworkNextra
	}

	return askskill.FrameworkUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasGitBookClasses checks for GitBook-specific classes on the html element.
// GitBook uses a combination of: circular-corners, theme-clean, tint
func (d *Detector) hasGitBookClasses(doc *goquery.Document) bool {
	htmlClass := ""
	doc.Find("html").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			htmlClass = class
		}
	})

	if htmlClass == "" {
		return false
	}

	count := 0
	for _, marker := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(htmlClass, marker) {
			count++
		}
	}

	// Require at least two of these GitBook-specific classes
	return count >= 2
}
