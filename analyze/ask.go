package analyze

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/askskill"
)

// Busy-indicator polling backoff.
const (
	pollInitial = 200 * time.Millisecond
	pollMax     = 2 * time.Second
)

// minStructuralRunes is the shortest structural read accepted as a real
// answer; anything shorter falls back to a visual read.
const minStructuralRunes = 40

// inputStrings are the labels a question input goes by when it has to be
// found visually.
var inputStrings = []string{
	"ask a question",
	"ask anything",
	"type your question",
	"search or ask",
}

// AskAndExtract opens the located affordance, submits the query, waits for
// the response to settle, and returns the cleaned transcript. When the
// response deadline expires before the assistant settles, whatever is present
// is extracted and the transcript is marked incomplete.
func (a *Analyzer) AskAndExtract(ctx context.Context, url string, loc *askskill.AffordanceLocation, query string) (*askskill.Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, askTimeout)
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
	selectors := a.Selectors.GetForHTML(html)

	if err := a.openAffordance(ctx, page, loc); err != nil {
		return nil, err
	}
	if err := a.submitQuery(ctx, page, selectors, query); err != nil {
		return nil, err
	}

	settled := a.waitSettled(ctx, page, selectors.Busy)

	raw, err := a.extractAnswer(ctx, page, selectors.Response)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, askskill.Errorf(askskill.ENOTFOUND, "no answer could be extracted from %s", url)
	}

	cleaned := cleanChrome(raw)
	return &askskill.Transcript{
		Raw:        raw,
		Cleaned:    cleaned,
		Altered:    cleaned != raw,
		Incomplete: !settled,
	}, nil
}

// openAffordance activates the launcher: structural locations click by
// selector, visual locations click the bounding-box center.
func (a *Analyzer) openAffordance(ctx context.Context, page askskill.Page, loc *askskill.AffordanceLocation) error {
	var err error
	switch loc.Source {
	case askskill.SourceVisual:
		err = page.ClickAt(ctx, loc.X, loc.Y)
	default:
		err = page.Click(ctx, loc.Label)
	}
	if err != nil {
		return askskill.Errorf(askskill.ENOTFOUND, "AI assistant could not be opened")
	}
	return nil
}

// submitQuery finds the question input, types the query, and submits it.
// Structural input discovery runs first; visual discovery takes over when no
// input selector matches.
func (a *Analyzer) submitQuery(ctx context.Context, page askskill.Page, selectors *askskill.AffordanceSelectors, query string) error {
	typed := false
	for _, sel := range selectors.Input {
		ok, err := page.Has(ctx, sel)
		if err != nil || !ok {
			continue
		}
		if err := page.Type(ctx, sel, query); err != nil {
			continue
		}
		typed = true
		break
	}

	if !typed {
		loc, err := a.locateVisual(ctx, page, inputStrings)
		if err != nil || loc == nil {
			return askskill.Errorf(askskill.ENOTFOUND, "no question input found")
		}
		if err := page.ClickAt(ctx, loc.X, loc.Y); err != nil {
			return askskill.Errorf(askskill.ENOTFOUND, "question input could not be focused")
		}
		if err := page.TypeActive(ctx, query); err != nil {
			return askskill.Errorf(askskill.ENOTFOUND, "query could not be typed")
		}
	}

	if err := page.Submit(ctx); err != nil {
		return askskill.Errorf(askskill.EUNAVAILABLE, "query could not be submitted")
	}
	return nil
}

// waitSettled polls the busy indicators until they disappear, backing off
// exponentially against the response deadline. Returns false when the
// deadline expired while the assistant was still responding.
func (a *Analyzer) waitSettled(ctx context.Context, page askskill.Page, busy []string) bool {
	deadline := a.ResponseTimeout
	if deadline <= 0 {
		deadline = responseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	delay := pollInitial
	for {
		if !a.isBusy(ctx, page, busy) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		if delay *= 2; delay > pollMax {
			delay = pollMax
		}
	}
}

func (a *Analyzer) isBusy(ctx context.Context, page askskill.Page, busy []string) bool {
	for _, sel := range busy {
		if ok, err := page.Has(ctx, sel); err == nil && ok {
			return true
		}
	}
	return false
}

// extractAnswer reads the response container structurally and converts it to
// Markdown. When conversion comes up short the element's plain text is tried,
// and a visual read is the last resort.
func (a *Analyzer) extractAnswer(ctx context.Context, page askskill.Page, response []string) (string, error) {
	for _, sel := range response {
		ok, err := page.Has(ctx, sel)
		if err != nil || !ok {
			continue
		}
		if html, err := page.ReadHTML(ctx, sel); err == nil && strings.TrimSpace(html) != "" {
			if md, err := a.Converter.Convert(html); err == nil {
				md = strings.TrimSpace(md)
				if utf8.RuneCountInString(md) >= minStructuralRunes {
					return md, nil
				}
			}
		}
		if text, err := page.ReadText(ctx, sel); err == nil {
			text = strings.TrimSpace(text)
			if utf8.RuneCountInString(text) >= minStructuralRunes {
				return text, nil
			}
		}
	}
	return a.extractVisual(ctx, page)
}

// extractVisual reads the full viewport with text detection and joins the
// recognized lines in position order.
func (a *Analyzer) extractVisual(ctx context.Context, page askskill.Page) (string, error) {
	img, err := page.Screenshot(ctx)
	if err != nil {
		return "", askskill.Errorf(askskill.EUNAVAILABLE, "page could not be captured")
	}
	detected, err := a.detectRegions(ctx, img)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, d := range detected {
		if d.Confidence < ocrConfidenceFloor {
			continue
		}
		if t := strings.TrimSpace(d.Text); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n"), nil
}
