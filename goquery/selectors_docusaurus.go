package goquery

import "github.com/fwojciec/askskill"

// DocusaurusSelectors returns affordance selectors for Docusaurus v2/v3
// themes. Docusaurus sites most commonly embed their assistant via the
// kapa.ai or Mendable widgets, both injected alongside the Algolia search
// button in the navbar.
func DocusaurusSelectors() *askskill.AffordanceSelectors {
	return &askskill.AffordanceSelectors{
		Launcher: []string{
			`#kapa-widget-container button`,
			`.navbar button[class*='askAi']`,
			`button[class*='mendable']`,
			`.navbar [aria-label*='Ask AI']`,
		},
		Input: []string{
			`#kapa-widget-portal textarea`,
			`.mendable-search input`,
			`textarea[placeholder*='Ask']`,
		},
		Response: []string{
			`[data-kapa-answer]`,
			`.mendable-answer`,
			`[class*='answer']`,
		},
		Busy: []string{
			`[data-kapa-generating]`,
			`.mendable-loading`,
			`[class*='typing']`,
		},
	}
}
