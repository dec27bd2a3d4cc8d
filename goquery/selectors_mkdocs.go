package goquery

import "github.com/fwojciec/askskill"

// MkDocsSelectors returns affordance selectors for MkDocs Material themes.
// MkDocs sites typically bolt on an assistant via third-party widgets that
// hook into the md-search component or float their own launcher.
func MkDocsSelectors() *askskill.AffordanceSelectors {
	return &askskill.AffordanceSelectors{
		Launcher: []string{
			`[data-md-component='search'] [aria-label*='Ask']`,
			`button[class*='ask-ai']`,
			`#kapa-widget-container button`,
		},
		Input: []string{
			`.md-search__input`,
			`textarea[placeholder*='Ask']`,
		},
		Response: []string{
			`[data-kapa-answer]`,
			`[class*='answer']`,
		},
		Busy: []string{
			`[data-kapa-generating]`,
			`[class*='loading']`,
		},
	}
}
