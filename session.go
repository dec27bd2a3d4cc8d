package askskill

import "context"

// State identifies where a conversation session is in its lifecycle.
type State string

// Conversation states. COMPLETE, ENDED, and ERROR are terminal: once reached,
// no further input is processed for the session.
const (
	StateIntro             State = "intro"
	StateGathering         State = "gathering"
	StateSearching         State = "searching"
	StatePresentingResults State = "presenting_results"
	StateAwaitingSelection State = "awaiting_selection"
	StateCheckingDocs      State = "checking_docs"
	StateFoundDocs         State = "found_docs"
	StateNoDocs            State = "no_docs"
	StateCheckingAskAI     State = "checking_ask_ai"
	StateInteractingAI     State = "interacting_ai"
	StateExtracting        State = "extracting"
	StateComplete          State = "complete"
	StateEnded             State = "ended"
	StateError             State = "error"
)

// Terminal reports whether no further input is processed from this state.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateEnded || s == StateError
}

// StatusKind is the closed vocabulary of status events. Consumers must treat
// unknown kinds as informational no-ops, never fatal.
type StatusKind string

// Status kinds, one per meaningful transition.
const (
	StatusReady         StatusKind = "ready"
	StatusSearching     StatusKind = "searching"
	StatusResultsFound  StatusKind = "results_found"
	StatusNoResults     StatusKind = "no_results"
	StatusSiteSelected  StatusKind = "site_selected"
	StatusCheckingDocs  StatusKind = "checking_docs"
	StatusDocsFound     StatusKind = "docs_found"
	StatusNoDocs        StatusKind = "no_docs"
	StatusCheckingAskAI StatusKind = "checking_ask_ai"
	StatusAskAIFound    StatusKind = "ask_ai_found"
	StatusNoAskAI       StatusKind = "no_ask_ai"
	StatusInteracting   StatusKind = "interacting"
	StatusExtracting    StatusKind = "extracting"
	StatusComplete      StatusKind = "complete"
	StatusError         StatusKind = "error"
	StatusEnded         StatusKind = "ended"
)

// Severity tags an event for the observability boundary.
type Severity string

// Event severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Event is one status event emitted at a session transition. Events are
// delivered in FIFO order relative to the session's own transitions.
type Event struct {
	Kind     StatusKind `json:"kind"`
	Severity Severity   `json:"severity"`
	Detail   string     `json:"detail"`
}

// Turn is the agent's response to one unit of user input: the status events
// emitted during the turn, the agent's reply text, and the resulting state.
type Turn struct {
	SessionID string  `json:"sessionId"`
	State     State   `json:"state"`
	Events    []Event `json:"events"`
	Reply     string  `json:"reply"`
}

// ConversationService is the boundary the transport/UI layer drives.
// Input for the same session is processed serially; different sessions are
// independent and may run concurrently.
type ConversationService interface {
	// StartSession creates a session and returns the introduction turn.
	StartSession(ctx context.Context) (*Turn, error)

	// SubmitInput routes one user message to the session's state machine.
	// Returns ENOTFOUND if the session does not exist.
	SubmitInput(ctx context.Context, sessionID, text string) (*Turn, error)

	// EndSession cancels any in-flight work for the session, discards
	// partially-completed artifacts, and releases its browser context.
	// Returns ENOTFOUND if the session does not exist.
	EndSession(ctx context.Context, sessionID string) error
}
