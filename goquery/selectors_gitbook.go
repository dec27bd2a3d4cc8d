package goquery

import "github.com/fwojciec/askskill"

// GitBookSelectors returns affordance selectors for GitBook spaces.
// GitBook's built-in assistant lives behind the "Ask or search" lens;
// its elements carry stable data-testid attributes.
func GitBookSelectors() *askskill.AffordanceSelectors {
	return &askskill.AffordanceSelectors{
		Launcher: []string{
			`[data-testid='search-button']`,
			`button[aria-label*='Ask']`,
		},
		Input: []string{
			`[data-testid='search-input'] input`,
			`input[placeholder*='Ask']`,
		},
		Response: []string{
			`[data-testid='search-ask-answer']`,
			`[data-testid*='answer']`,
		},
		Busy: []string{
			`[data-testid='search-ask-loading']`,
			`[class*='loading']`,
		},
	}
}
