package analyze

import (
	"context"
	"strings"

	"github.com/fwojciec/askskill"
)

// affordanceConfidenceFloor is the minimum OCR confidence for a visual
// affordance match. Below the floor the affordance is reported not found
// rather than guessed at.
const affordanceConfidenceFloor = 60.0

// affordanceStrings are the labels an embedded AI assistant launcher goes by,
// matched case-insensitively against on-screen text. Ordered most to least
// specific so "ask ai" wins over the bare "ask" on the same element.
var affordanceStrings = []string{
	"ask ai",
	"chat with ai",
	"ai assistant",
	"ask",
}

// LocateAskAI finds an interactive AI affordance on the page. Structural
// discovery (platform selector sets) runs first; visual discovery (screenshot
// text detection) runs only when no selector matches.
func (a *Analyzer) LocateAskAI(ctx context.Context, url string) (*askskill.AffordanceLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, locateTimeout)
	defer cancel()

	page, err := a.Browser.Open(ctx, url)
	if err != nil {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "site could not be loaded: %s", url)
	}
	defer page.Close()

	html, err := page.HTML(ctx)
	if err != nil {
		return nil, askskill.Errorf(askskill.EUNAVAILABLE, "page could not be read: %s", url)
	}

	if loc := a.locateStructural(ctx, page, a.Selectors.GetForHTML(html).Launcher); loc != nil {
		return loc, nil
	}
	if loc, err := a.locateVisual(ctx, page, affordanceStrings); err == nil && loc != nil {
		return loc, nil
	}
	return nil, askskill.Errorf(askskill.ENOTFOUND, "no AI assistant found on %s", url)
}

// locateStructural returns the first selector with a visible match, in
// priority order. Selector errors are treated as non-matches.
func (a *Analyzer) locateStructural(ctx context.Context, page askskill.Page, selectors []string) *askskill.AffordanceLocation {
	for _, sel := range selectors {
		ok, err := page.Has(ctx, sel)
		if err != nil || !ok {
			continue
		}
		return &askskill.AffordanceLocation{
			Label:      sel,
			Source:     askskill.SourceStructural,
			Confidence: 100,
		}
	}
	return nil
}

// locateVisual screenshots the page and looks for one of the labels in the
// recognized text, returning the highest-confidence match at or above the
// confidence floor.
func (a *Analyzer) locateVisual(ctx context.Context, page askskill.Page, labels []string) (*askskill.AffordanceLocation, error) {
	img, err := page.Screenshot(ctx)
	if err != nil {
		return nil, err
	}
	detected, err := a.detectRegions(ctx, img)
	if err != nil {
		return nil, err
	}

	var best *askskill.AffordanceLocation
	for _, d := range detected {
		if d.Confidence < affordanceConfidenceFloor {
			continue
		}
		label := matchAffordance(d.Text, labels)
		if label == "" {
			continue
		}
		if best != nil && d.Confidence <= best.Confidence {
			continue
		}
		x, y := d.Box.Center()
		best = &askskill.AffordanceLocation{
			Label:      label,
			X:          x,
			Y:          y,
			Source:     askskill.SourceVisual,
			Confidence: d.Confidence,
		}
	}
	return best, nil
}

// matchAffordance returns the first label contained in the text, compared
// case-insensitively. Empty if none match.
func matchAffordance(text string, labels []string) string {
	lower := strings.ToLower(text)
	for _, label := range labels {
		if strings.Contains(lower, label) {
			return label
		}
	}
	return ""
}
