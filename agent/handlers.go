package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/askskill"
)

const introReply = "Hi! Tell me which developer tool or platform you want to build a skill for, and I'll find its documentation."

const terminalReply = "This conversation has ended. Start a new session to build another skill."

func (a *Agent) handle(ctx context.Context, sess *session, text string) {
	sess.events = nil
	sess.reply = ""

	text = strings.TrimSpace(text)

	switch sess.state {
	case askskill.StateIntro, askskill.StateGathering:
		a.handleDescription(ctx, sess, text)
	case askskill.StateAwaitingSelection:
		a.handleSelection(ctx, sess, text)
	case askskill.StateNoDocs:
		a.handleContinue(ctx, sess, text)
	default:
		// Mid-pipeline states never await input; reaching one here is an
		// internal fault.
		sess.transition(askskill.StateError, askskill.StatusError, askskill.SeverityError,
			fmt.Sprintf("unexpected input in state %s", sess.state))
		sess.reply = "Something went wrong on my end. Please start a new session."
	}
}

// handleDescription captures the user's description and runs the search.
func (a *Agent) handleDescription(ctx context.Context, sess *session, text string) {
	if sess.state == askskill.StateIntro {
		sess.state = askskill.StateGathering
	}
	if text == "" {
		sess.reply = "What developer tool or platform are you interested in?"
		return
	}
	sess.description = text
	a.search(ctx, sess, text)
}

// search resolves candidates and presents them. Resolution never fails on
// search unavailability, so an error here is an internal fault.
func (a *Agent) search(ctx context.Context, sess *session, query string) {
	sess.transition(askskill.StateSearching, askskill.StatusSearching, askskill.SeverityInfo,
		fmt.Sprintf("searching for %q", query))

	res, err := a.Resolver.Resolve(ctx, query)
	if err != nil {
		a.fail(sess, err)
		return
	}

	candidates := res.Results[:0:0]
	for _, r := range res.Results {
		if !sess.seen.Seen(r.URL) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		sess.transition(askskill.StateEnded, askskill.StatusNoResults, askskill.SeverityWarning,
			"no candidate sites left")
		sess.reply = "I couldn't find any more candidate sites for that. Start a new session to try a different description."
		return
	}

	sess.candidates = candidates
	detail := fmt.Sprintf("%d candidates", len(candidates))
	if res.Fallback {
		detail += " (from catalog: " + res.Note + ")"
	}
	sess.transition(askskill.StatePresentingResults, askskill.StatusResultsFound, askskill.SeverityInfo, detail)
	sess.transition(askskill.StateAwaitingSelection, askskill.StatusReady, askskill.SeverityInfo,
		"awaiting selection")
	sess.reply = presentCandidates(candidates)
}

// handleSelection validates the user's pick against the presented list.
// Invalid input re-prompts without a state change or retry cost.
func (a *Agent) handleSelection(ctx context.Context, sess *session, text string) {
	idx, ok := matchSelection(text, sess.candidates)
	if !ok {
		sess.reply = fmt.Sprintf("Please pick a number between 1 and %d.\n\n%s",
			len(sess.candidates), presentCandidates(sess.candidates))
		return
	}

	selected := sess.candidates[idx]
	// The nav-failure count is per selection: re-picking the same site after
	// a load failure keeps counting toward its hard failure.
	if sess.selected == nil || sess.selected.URL != selected.URL {
		sess.navFailures = 0
	}
	sess.selected = &selected
	sess.transition(askskill.StateAwaitingSelection, askskill.StatusSiteSelected, askskill.SeverityInfo,
		selected.URL)

	a.analyzeSelection(ctx, sess)
}

// analyzeSelection runs the docs check, affordance discovery, interaction,
// and extraction pipeline for the current selection.
func (a *Agent) analyzeSelection(ctx context.Context, sess *session) {
	url := sess.selected.URL

	sess.transition(askskill.StateCheckingDocs, askskill.StatusCheckingDocs, askskill.SeverityInfo, url)
	result, err := a.Analyzer.ClassifyDocs(ctx, url)
	if err != nil {
		a.navFailure(sess, err)
		return
	}
	sess.navFailures = 0

	if !result.HasDocs {
		sess.seen.Add(url)
		a.docFailure(sess, askskill.StatusNoDocs,
			fmt.Sprintf("no developer docs found at %s (score %.1f)", url, result.Confidence))
		return
	}
	sess.transition(askskill.StateFoundDocs, askskill.StatusDocsFound, askskill.SeverityInfo,
		fmt.Sprintf("score %.1f", result.Confidence))

	sess.transition(askskill.StateCheckingAskAI, askskill.StatusCheckingAskAI, askskill.SeverityInfo, url)
	loc, err := a.Analyzer.LocateAskAI(ctx, url)
	if err != nil {
		if askskill.ErrorCode(err) == askskill.EUNAVAILABLE {
			a.navFailure(sess, err)
			return
		}
		sess.seen.Add(url)
		a.docFailure(sess, askskill.StatusNoAskAI,
			fmt.Sprintf("no AI assistant found at %s", url))
		return
	}
	sess.transition(askskill.StateInteractingAI, askskill.StatusAskAIFound, askskill.SeverityInfo,
		fmt.Sprintf("%s affordance %q", loc.Source, loc.Label))

	question := composeQuestion(sess.description)
	sess.transition(askskill.StateInteractingAI, askskill.StatusInteracting, askskill.SeverityInfo,
		fmt.Sprintf("asking %q", question))
	transcript, err := a.Analyzer.AskAndExtract(ctx, url, loc, question)
	if err != nil {
		sess.seen.Add(url)
		a.docFailure(sess, askskill.StatusError,
			fmt.Sprintf("answer extraction failed at %s", url))
		return
	}
	sess.transition(askskill.StateExtracting, askskill.StatusExtracting, askskill.SeverityInfo, url)

	a.persist(ctx, sess, question, transcript)
}

// persist writes the skill artifact and its provenance record.
func (a *Agent) persist(ctx context.Context, sess *session, question string, transcript *askskill.Transcript) {
	skill := &askskill.Skill{
		Title:     sess.selected.Title,
		SourceURL: sess.selected.URL,
		Query:     question,
	}
	path, err := a.Writer.WriteSkill(ctx, skill, transcript.Cleaned)
	if err != nil {
		a.fail(sess, err)
		return
	}
	if err := a.Skills.CreateSkill(ctx, skill); err != nil {
		a.fail(sess, err)
		return
	}

	detail := path
	if transcript.Incomplete {
		detail += " (answer may be incomplete)"
	}
	sess.transition(askskill.StateComplete, askskill.StatusComplete, askskill.SeverityInfo, detail)
	sess.reply = fmt.Sprintf("Done! I saved the skill to %s.\n\n%s", path, transcript.Cleaned)
}

// navFailure handles an unreachable site. The first failure re-prompts the
// same selection; a second consecutive failure hard-fails the selection and
// prompts re-selection. Navigation never consumes the retry budget.
func (a *Agent) navFailure(sess *session, err error) {
	sess.navFailures++
	url := sess.selected.URL

	if sess.navFailures >= 2 {
		sess.seen.Add(url)
		sess.candidates = dropURL(sess.candidates, url)
		sess.selected = nil
		sess.navFailures = 0
		if len(sess.candidates) == 0 {
			sess.transition(askskill.StateEnded, askskill.StatusNoResults, askskill.SeverityWarning,
				"no candidate sites left")
			sess.reply = "None of the candidate sites were reachable. Start a new session to try again."
			return
		}
		sess.transition(askskill.StateAwaitingSelection, askskill.StatusError, askskill.SeverityWarning,
			fmt.Sprintf("%s is unreachable: %s", url, askskill.ErrorMessage(err)))
		sess.reply = fmt.Sprintf("%s keeps failing to load, so I've set it aside. Please pick another site.\n\n%s",
			url, presentCandidates(sess.candidates))
		return
	}

	sess.transition(askskill.StateAwaitingSelection, askskill.StatusError, askskill.SeverityWarning,
		fmt.Sprintf("%s could not be loaded: %s", url, askskill.ErrorMessage(err)))
	sess.reply = fmt.Sprintf("I couldn't load %s. Pick it again to retry, or choose another site.\n\n%s",
		url, presentCandidates(sess.candidates))
}

// docFailure accounts one doc-detection-class failure against the retry
// budget and either asks the user to continue or ends the session.
func (a *Agent) docFailure(sess *session, kind askskill.StatusKind, detail string) {
	sess.retries++

	if sess.retries >= maxRetries {
		sess.transition(askskill.StateEnded, kind, askskill.SeverityWarning,
			detail+" (retry budget exhausted)")
		sess.reply = "I've tried three sites without success, so I'm stopping here. Start a new session to try a different description."
		return
	}

	sess.transition(askskill.StateNoDocs, kind, askskill.SeverityWarning, detail)
	sess.reply = "That site didn't work out. Want to try another candidate? (yes/no)"
}

// handleContinue processes the continue/stop answer after a failed site.
func (a *Agent) handleContinue(ctx context.Context, sess *session, text string) {
	switch strings.ToLower(text) {
	case "yes", "y", "continue":
		remaining := remainingCandidates(sess)
		if len(remaining) > 0 {
			sess.candidates = remaining
			sess.transition(askskill.StatePresentingResults, askskill.StatusResultsFound, askskill.SeverityInfo,
				fmt.Sprintf("%d candidates remaining", len(remaining)))
			sess.transition(askskill.StateAwaitingSelection, askskill.StatusReady, askskill.SeverityInfo,
				"awaiting selection")
			sess.reply = presentCandidates(remaining)
			return
		}
		a.search(ctx, sess, sess.description)
	case "no", "n", "stop":
		sess.transition(askskill.StateEnded, askskill.StatusEnded, askskill.SeverityInfo, "user declined to continue")
		sess.reply = "Okay, stopping here. Start a new session anytime."
	default:
		sess.reply = "Please answer yes or no: want to try another candidate?"
	}
}

// fail reports an unrecoverable fault as a generic error event and moves the
// session to its error sink. The raw fault never reaches the user.
func (a *Agent) fail(sess *session, err error) {
	sess.transition(askskill.StateError, askskill.StatusError, askskill.SeverityError,
		askskill.ErrorMessage(err))
	sess.reply = "Something went wrong on my end. Please start a new session."
}

// matchSelection accepts a 1-based index into the candidate list, or a
// case-insensitive substring of exactly one candidate's title.
func matchSelection(text string, candidates []askskill.SearchResult) (int, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(candidates) {
			return n - 1, true
		}
		return 0, false
	}

	needle := strings.ToLower(text)
	if needle == "" {
		return 0, false
	}
	match := -1
	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c.Title), needle) {
			if match >= 0 {
				return 0, false // ambiguous
			}
			match = i
		}
	}
	return match, match >= 0
}

func presentCandidates(candidates []askskill.SearchResult) string {
	var b strings.Builder
	b.WriteString("Here's what I found:\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, c.Title, c.URL)
	}
	b.WriteString("\nWhich one should I check? (enter a number)")
	return b.String()
}

func remainingCandidates(sess *session) []askskill.SearchResult {
	var out []askskill.SearchResult
	for _, c := range sess.candidates {
		if !sess.seen.Seen(c.URL) {
			out = append(out, c)
		}
	}
	return out
}

func dropURL(candidates []askskill.SearchResult, url string) []askskill.SearchResult {
	out := candidates[:0:0]
	for _, c := range candidates {
		if c.URL != url {
			out = append(out, c)
		}
	}
	return out
}

// composeQuestion turns the captured description into the question submitted
// to the site's assistant.
func composeQuestion(description string) string {
	return fmt.Sprintf("How do I get started with %s?", description)
}
