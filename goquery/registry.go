package goquery

import "github.com/fwojciec/askskill"

var _ askskill.SelectorRegistry = (*Registry)(nil)

// Registry manages platform-specific Ask AI affordance selectors and
// auto-detects platforms from HTML content. It uses a FrameworkDetector to
// identify the documentation platform and returns the appropriate selector
// set, falling back to a generic set when the platform is unknown or has no
// registered selectors.
type Registry struct {
	detector  askskill.FrameworkDetector
	fallback  *askskill.AffordanceSelectors
	selectors map[askskill.Framework]*askskill.AffordanceSelectors
}

// NewRegistry creates a new Registry with the given detector and fallback
// selector set. The fallback is used when GetForHTML cannot find a specific
// set for the detected platform.
func NewRegistry(detector askskill.FrameworkDetector, fallback *askskill.AffordanceSelectors) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[askskill.Framework]*askskill.AffordanceSelectors),
	}
}

// NewDefaultRegistry creates a Registry pre-populated with the selector sets
// for every supported platform and the generic fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), GenericSelectors())
	r.Register(askskill.FrameworkDocusaurus, DocusaurusSelectors())
	r.Register(askskill.FrameworkGitBook, GitBookSelectors())
	r.Register(askskill.FrameworkMintlify, MintlifySelectors())
	r.Register(askskill.FrameworkMkDocs, MkDocsSelectors())
	return r
}

// Get returns the selector set for a specific platform.
// Returns nil if no set is registered for the platform.
func (r *Registry) Get(framework askskill.Framework) *askskill.AffordanceSelectors {
	return r.selectors[framework]
}

// GetForHTML detects the platform from HTML and returns the appropriate
// selector set, falling back to the generic set if the platform is unknown
// or has no registered selectors.
func (r *Registry) GetForHTML(html string) *askskill.AffordanceSelectors {
	framework := r.detector.Detect(html)
	if selectors, ok := r.selectors[framework]; ok {
		return selectors
	}
	return r.fallback
}

// Register adds a selector set for a platform.
// If a set is already registered for the platform, it is replaced.
func (r *Registry) Register(framework askskill.Framework, selectors *askskill.AffordanceSelectors) {
	r.selectors[framework] = selectors
}

// List returns all registered platforms.
func (r *Registry) List() []askskill.Framework {
	frameworks := make([]askskill.Framework, 0, len(r.selectors))
	for f := range r.selectors {
		frameworks = append(frameworks, f)
	}
	return frameworks
}
