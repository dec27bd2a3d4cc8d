// Package agent provides the conversation orchestrator: a per-session state
// machine that sequences search resolution and site analysis, manages the
// bounded retry budget across candidate sites, and persists the extracted
// answer as a skill artifact.
package agent

import (
	"context"
	"sync"

	"github.com/fwojciec/askskill"
	"github.com/google/uuid"
)

// maxRetries is how many candidate sites a session may attempt before forced
// termination. Only doc-detection-class failures consume the budget.
const maxRetries = 3

// Agent implements askskill.ConversationService. Sessions are independent;
// input for one session is serialized by its own mutex.
type Agent struct {
	Resolver askskill.Resolver
	Analyzer askskill.SiteAnalyzer
	Writer   askskill.SkillWriter
	Skills   askskill.SkillService

	// NewSeenFilter builds the per-session filter that keeps retries from
	// re-surfacing already-attempted sites.
	NewSeenFilter func() askskill.SeenFilter

	mu       sync.Mutex
	sessions map[string]*session
}

var _ askskill.ConversationService = (*Agent)(nil)

// StartSession creates a session and returns the introduction turn.
func (a *Agent) StartSession(ctx context.Context) (*askskill.Turn, error) {
	sess := newSession(a.NewSeenFilter())

	a.mu.Lock()
	if a.sessions == nil {
		a.sessions = make(map[string]*session)
	}
	a.sessions[sess.id] = sess
	a.mu.Unlock()

	return &askskill.Turn{
		SessionID: sess.id,
		State:     sess.state,
		Events: []askskill.Event{{
			Kind:     askskill.StatusReady,
			Severity: askskill.SeverityInfo,
			Detail:   "session started",
		}},
		Reply: introReply,
	}, nil
}

// SubmitInput routes one user message to the session's state machine.
func (a *Agent) SubmitInput(ctx context.Context, sessionID, text string) (*askskill.Turn, error) {
	sess, err := a.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.Terminal() {
		return &askskill.Turn{SessionID: sess.id, State: sess.state, Reply: terminalReply}, nil
	}

	// The session's own context governs in-flight browser work so EndSession
	// can cancel it; the caller's context bounds this turn.
	ctx, cancel := mergeCancel(ctx, sess.ctx)
	defer cancel()

	a.handle(ctx, sess, text)
	return sess.turn(sess.reply), nil
}

// EndSession cancels in-flight work for the session and discards it.
func (a *Agent) EndSession(ctx context.Context, sessionID string) error {
	a.mu.Lock()
	sess, ok := a.sessions[sessionID]
	if ok {
		delete(a.sessions, sessionID)
	}
	a.mu.Unlock()

	if !ok {
		return askskill.Errorf(askskill.ENOTFOUND, "session not found: %s", sessionID)
	}
	sess.cancel()
	return nil
}

func (a *Agent) lookup(sessionID string) (*session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	sess, ok := a.sessions[sessionID]
	if !ok {
		return nil, askskill.Errorf(askskill.ENOTFOUND, "session not found: %s", sessionID)
	}
	return sess, nil
}

// session is one conversation's state. All fields are guarded by mu; the
// Agent never touches them without holding it.
type session struct {
	mu sync.Mutex

	id    string
	state askskill.State

	// description is the user's captured description of what they want.
	description string

	// candidates is the most recently presented result list; selection
	// indexes refer to it.
	candidates []askskill.SearchResult
	selected   *askskill.SearchResult

	// retries counts doc-detection-class failures. navFailures counts
	// consecutive navigation failures for the current selection only.
	retries     int
	navFailures int

	seen askskill.SeenFilter

	ctx    context.Context
	cancel context.CancelFunc

	// Per-turn accumulators, reset at the start of each turn.
	events []askskill.Event
	reply  string
}

func newSession(seen askskill.SeenFilter) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		id:     uuid.New().String(),
		state:  askskill.StateIntro,
		seen:   seen,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *session) turn(reply string) *askskill.Turn {
	return &askskill.Turn{
		SessionID: s.id,
		State:     s.state,
		Events:    s.events,
		Reply:     reply,
	}
}

// transition moves the session to a new state, emitting exactly one event.
func (s *session) transition(state askskill.State, kind askskill.StatusKind, severity askskill.Severity, detail string) {
	s.state = state
	s.events = append(s.events, askskill.Event{Kind: kind, Severity: severity, Detail: detail})
}

// mergeCancel derives a context from primary that is also cancelled when
// secondary is cancelled.
func mergeCancel(primary, secondary context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(primary)
	stop := context.AfterFunc(secondary, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
