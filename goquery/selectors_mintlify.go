package goquery

import "github.com/fwojciec/askskill"

// MintlifySelectors returns affordance selectors for Mintlify-hosted docs.
// Mintlify ships a first-party assistant reachable from the search bar's
// "Ask AI" tab.
func MintlifySelectors() *askskill.AffordanceSelectors {
	return &askskill.AffordanceSelectors{
		Launcher: []string{
			`#search-bar-entry`,
			`button[aria-label*='Ask AI']`,
			`[id*='assistant-entry']`,
		},
		Input: []string{
			`[data-testid='assistant-input']`,
			`textarea[placeholder*='Ask']`,
			`input[placeholder*='Ask']`,
		},
		Response: []string{
			`[data-testid='assistant-message']`,
			`[class*='assistant'] [class*='prose']`,
		},
		Busy: []string{
			`[data-testid='assistant-typing']`,
			`.animate-pulse`,
		},
	}
}
