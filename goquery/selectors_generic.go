package goquery

import "github.com/fwojciec/askskill"

// GenericSelectors returns affordance selectors that work across
// documentation platforms whose theme is unknown. The launcher list covers
// the common attribute patterns of embedded assistant widgets (kapa.ai,
// Mendable, Inkeep and hand-rolled variants); the input list intentionally
// ends with bare input/textarea as a last resort, mirroring how these
// widgets usually expose a single visible input once opened.
func GenericSelectors() *askskill.AffordanceSelectors {
	return &askskill.AffordanceSelectors{
		Launcher: []string{
			`[aria-label*='Ask AI']`,
			`[aria-label*='ask ai' i]`,
			`[data-testid*='ask']`,
			`.ask-ai-button`,
			`button[class*='ask-ai']`,
			`#kapa-widget-container button`,
			`button[class*='mendable']`,
			`[id*='inkeep'] button`,
		},
		Input: []string{
			`input[placeholder*='Ask']`,
			`input[placeholder*='ask']`,
			`textarea[placeholder*='Ask']`,
			`textarea[placeholder*='ask']`,
			`input[placeholder*='question']`,
			`input[type='text']`,
			`textarea`,
		},
		Response: []string{
			`[data-testid*='answer']`,
			`[class*='answer']`,
			`[class*='ai-response']`,
			`[class*='response']`,
		},
		Busy: []string{
			`[class*='typing']`,
			`[class*='streaming']`,
			`[data-testid*='loading']`,
			`.animate-pulse`,
		},
	}
}
