package mock

import "github.com/fwojciec/askskill"

// Compile-time interface verification.
var (
	_ askskill.FrameworkDetector = (*FrameworkDetector)(nil)
	_ askskill.SelectorRegistry  = (*SelectorRegistry)(nil)
)

// FrameworkDetector is a mock implementation of askskill.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) askskill.Framework
}

func (d *FrameworkDetector) Detect(html string) askskill.Framework {
	return d.DetectFn(html)
}

// SelectorRegistry is a mock implementation of askskill.SelectorRegistry.
type SelectorRegistry struct {
	GetFn        func(framework askskill.Framework) *askskill.AffordanceSelectors
	GetForHTMLFn func(html string) *askskill.AffordanceSelectors
	RegisterFn   func(framework askskill.Framework, selectors *askskill.AffordanceSelectors)
	ListFn       func() []askskill.Framework
}

func (r *SelectorRegistry) Get(framework askskill.Framework) *askskill.AffordanceSelectors {
	return r.GetFn(framework)
}

func (r *SelectorRegistry) GetForHTML(html string) *askskill.AffordanceSelectors {
	return r.GetForHTMLFn(html)
}

func (r *SelectorRegistry) Register(framework askskill.Framework, selectors *askskill.AffordanceSelectors) {
	r.RegisterFn(framework, selectors)
}

func (r *SelectorRegistry) List() []askskill.Framework {
	return r.ListFn()
}
