package agent_test

import (
	"context"
	"testing"

	"github.com/fwojciec/askskill"
	"github.com/fwojciec/askskill/agent"
	"github.com/fwojciec/askskill/bloom"
	"github.com/fwojciec/askskill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires an Agent with happy-path defaults that individual tests
// override.
type fixture struct {
	agent    *agent.Agent
	resolver *mock.Resolver
	analyzer *mock.SiteAnalyzer
	writer   *mock.SkillWriter
	skills   *mock.SkillService
}

func newFixture() *fixture {
	f := &fixture{
		resolver: &mock.Resolver{
			ResolveFn: func(context.Context, string) (*askskill.Resolution, error) {
				return &askskill.Resolution{Results: []askskill.SearchResult{
					{Title: "Base Documentation", URL: "https://docs.base.org"},
					{Title: "Stripe Documentation", URL: "https://docs.stripe.com"},
					{Title: "Supabase Documentation", URL: "https://supabase.com/docs"},
				}}, nil
			},
		},
		analyzer: &mock.SiteAnalyzer{
			ClassifyDocsFn: func(context.Context, string) (*askskill.SiteAnalysisResult, error) {
				return &askskill.SiteAnalysisResult{HasDocs: true, Confidence: 9}, nil
			},
			LocateAskAIFn: func(context.Context, string) (*askskill.AffordanceLocation, error) {
				return &askskill.AffordanceLocation{
					Label: "button.ask-ai", Source: askskill.SourceStructural, Confidence: 100,
				}, nil
			},
			AskAndExtractFn: func(context.Context, string, *askskill.AffordanceLocation, string) (*askskill.Transcript, error) {
				return &askskill.Transcript{
					Raw:     "Install the SDK.",
					Cleaned: "Install the SDK.",
				}, nil
			},
		},
		writer: &mock.SkillWriter{
			WriteSkillFn: func(_ context.Context, skill *askskill.Skill, _ string) (string, error) {
				skill.FilePath = "/tmp/skills/test_skill.md"
				skill.ContentHash = "xxh64:0000000000000001"
				return skill.FilePath, nil
			},
		},
		skills: &mock.SkillService{
			CreateSkillFn: func(context.Context, *askskill.Skill) error { return nil },
		},
	}
	f.agent = &agent.Agent{
		Resolver:      f.resolver,
		Analyzer:      f.analyzer,
		Writer:        f.writer,
		Skills:        f.skills,
		NewSeenFilter: func() askskill.SeenFilter { return bloom.NewFilter(1000, 0.01) },
	}
	return f
}

// start opens a session and submits the initial description, leaving the
// session awaiting selection.
func start(t *testing.T, f *fixture, description string) string {
	t.Helper()

	ctx := context.Background()
	intro, err := f.agent.StartSession(ctx)
	require.NoError(t, err)
	require.Equal(t, askskill.StateIntro, intro.State)

	turn, err := f.agent.SubmitInput(ctx, intro.SessionID, description)
	require.NoError(t, err)
	require.Equal(t, askskill.StateAwaitingSelection, turn.State)
	return intro.SessionID
}

func TestAgent_StartSession(t *testing.T) {
	t.Parallel()

	f := newFixture()

	turn, err := f.agent.StartSession(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, turn.SessionID)
	assert.Equal(t, askskill.StateIntro, turn.State)
	assert.NotEmpty(t, turn.Reply)
}

func TestAgent_SubmitInput(t *testing.T) {
	t.Parallel()

	t.Run("description triggers search and presents candidates", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		id := start(t, f, "base blockchain")

		// Selection prompt lists the candidates 1-based.
		turn, err := f.agent.SubmitInput(context.Background(), id, "not a number")
		require.NoError(t, err)
		assert.Contains(t, turn.Reply, "1. Base Documentation - https://docs.base.org")
	})

	t.Run("empty first message re-prompts for a description", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		intro, err := f.agent.StartSession(context.Background())
		require.NoError(t, err)

		turn, err := f.agent.SubmitInput(context.Background(), intro.SessionID, "   ")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateGathering, turn.State)
	})

	t.Run("unknown session returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		_, err := f.agent.SubmitInput(context.Background(), "missing", "hello")

		require.Error(t, err)
		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})

	t.Run("happy path completes and persists the skill", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		var created *askskill.Skill
		f.skills.CreateSkillFn = func(_ context.Context, skill *askskill.Skill) error {
			created = skill
			return nil
		}
		var asked string
		f.analyzer.AskAndExtractFn = func(_ context.Context, _ string, _ *askskill.AffordanceLocation, query string) (*askskill.Transcript, error) {
			asked = query
			return &askskill.Transcript{Raw: "Install the SDK.", Cleaned: "Install the SDK."}, nil
		}
		id := start(t, f, "base blockchain")

		turn, err := f.agent.SubmitInput(context.Background(), id, "1")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateComplete, turn.State)
		assert.Equal(t, "How do I get started with base blockchain?", asked)
		require.NotNil(t, created)
		assert.Equal(t, "Base Documentation", created.Title)
		assert.Equal(t, "https://docs.base.org", created.SourceURL)
		assert.Contains(t, turn.Reply, "Install the SDK.")
	})

	t.Run("selection by title substring", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		var checked string
		f.analyzer.ClassifyDocsFn = func(_ context.Context, url string) (*askskill.SiteAnalysisResult, error) {
			checked = url
			return &askskill.SiteAnalysisResult{HasDocs: true, Confidence: 9}, nil
		}
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "stripe")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateComplete, turn.State)
		assert.Equal(t, "https://docs.stripe.com", checked)
	})

	t.Run("out-of-range selection re-prompts without consuming a retry", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		classified := 0
		f.analyzer.ClassifyDocsFn = func(context.Context, string) (*askskill.SiteAnalysisResult, error) {
			classified++
			return &askskill.SiteAnalysisResult{HasDocs: false}, nil
		}
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "9")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateAwaitingSelection, turn.State)
		assert.Zero(t, classified)

		// Three doc failures still fit in the budget afterwards, proving the
		// invalid selection consumed nothing.
		for i := 0; i < 2; i++ {
			turn, err = f.agent.SubmitInput(context.Background(), id, "1")
			require.NoError(t, err)
			require.Equal(t, askskill.StateNoDocs, turn.State)
			turn, err = f.agent.SubmitInput(context.Background(), id, "yes")
			require.NoError(t, err)
		}
		turn, err = f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateEnded, turn.State)
		assert.Equal(t, 3, classified)
	})

	t.Run("three doc failures end the session without a fourth attempt", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		classified := 0
		f.analyzer.ClassifyDocsFn = func(context.Context, string) (*askskill.SiteAnalysisResult, error) {
			classified++
			return &askskill.SiteAnalysisResult{HasDocs: false}, nil
		}
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		require.Equal(t, askskill.StateNoDocs, turn.State)

		turn, err = f.agent.SubmitInput(context.Background(), id, "yes")
		require.NoError(t, err)
		require.Equal(t, askskill.StateAwaitingSelection, turn.State)
		// The failed site is excluded from the re-presented list.
		assert.NotContains(t, turn.Reply, "docs.base.org")

		turn, err = f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		require.Equal(t, askskill.StateNoDocs, turn.State)

		turn, err = f.agent.SubmitInput(context.Background(), id, "yes")
		require.NoError(t, err)
		turn, err = f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)

		assert.Equal(t, askskill.StateEnded, turn.State)
		assert.Equal(t, 3, classified)

		// The ending transition emits a single event carrying both the failure
		// and the exhaustion note.
		var kinds []askskill.StatusKind
		for _, e := range turn.Events {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, []askskill.StatusKind{
			askskill.StatusSiteSelected,
			askskill.StatusCheckingDocs,
			askskill.StatusNoDocs,
		}, kinds)
		assert.Contains(t, turn.Events[len(turn.Events)-1].Detail, "retry budget exhausted")

		// Terminal: further input yields a notice without a state change.
		turn, err = f.agent.SubmitInput(context.Background(), id, "yes")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateEnded, turn.State)
		assert.Equal(t, 3, classified)
	})

	t.Run("declining after a failed site ends the session", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.analyzer.ClassifyDocsFn = func(context.Context, string) (*askskill.SiteAnalysisResult, error) {
			return &askskill.SiteAnalysisResult{HasDocs: false}, nil
		}
		id := start(t, f, "payments")

		_, err := f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		turn, err := f.agent.SubmitInput(context.Background(), id, "no")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateEnded, turn.State)
	})

	t.Run("navigation failures do not consume the retry budget", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		navFails := 0
		f.analyzer.ClassifyDocsFn = func(_ context.Context, url string) (*askskill.SiteAnalysisResult, error) {
			if url == "https://docs.base.org" {
				navFails++
				return nil, askskill.Errorf(askskill.EUNAVAILABLE, "site could not be loaded")
			}
			return &askskill.SiteAnalysisResult{HasDocs: false}, nil
		}
		id := start(t, f, "payments")

		// First navigation failure re-prompts; the selection may be retried.
		turn, err := f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateAwaitingSelection, turn.State)

		// Second consecutive failure hard-fails the selection.
		turn, err = f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateAwaitingSelection, turn.State)
		assert.NotContains(t, turn.Reply, "1. Base Documentation")

		// A doc failure on the next site is the first retry consumed.
		turn, err = f.agent.SubmitInput(context.Background(), id, "1")
		require.NoError(t, err)
		assert.Equal(t, askskill.StateNoDocs, turn.State)
		assert.Equal(t, 2, navFails)
	})

	t.Run("missing assistant counts as a doc-detection failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.analyzer.LocateAskAIFn = func(context.Context, string) (*askskill.AffordanceLocation, error) {
			return nil, askskill.Errorf(askskill.ENOTFOUND, "no AI assistant found")
		}
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "1")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateNoDocs, turn.State)
	})

	t.Run("persistence failure reports a generic error", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.writer.WriteSkillFn = func(context.Context, *askskill.Skill, string) (string, error) {
			return "", askskill.Errorf(askskill.EINTERNAL, "disk full")
		}
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "1")

		require.NoError(t, err)
		assert.Equal(t, askskill.StateError, turn.State)
		require.NotEmpty(t, turn.Events)
		last := turn.Events[len(turn.Events)-1]
		assert.Equal(t, askskill.StatusError, last.Kind)
		assert.Equal(t, askskill.SeverityError, last.Severity)
	})

	t.Run("events are emitted per transition in order", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		id := start(t, f, "payments")

		turn, err := f.agent.SubmitInput(context.Background(), id, "1")

		require.NoError(t, err)
		var kinds []askskill.StatusKind
		for _, e := range turn.Events {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, []askskill.StatusKind{
			askskill.StatusSiteSelected,
			askskill.StatusCheckingDocs,
			askskill.StatusDocsFound,
			askskill.StatusCheckingAskAI,
			askskill.StatusAskAIFound,
			askskill.StatusInteracting,
			askskill.StatusExtracting,
			askskill.StatusComplete,
		}, kinds)
	})
}

func TestAgent_EndSession(t *testing.T) {
	t.Parallel()

	t.Run("removes the session", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		intro, err := f.agent.StartSession(context.Background())
		require.NoError(t, err)

		require.NoError(t, f.agent.EndSession(context.Background(), intro.SessionID))

		_, err = f.agent.SubmitInput(context.Background(), intro.SessionID, "hello")
		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})

	t.Run("unknown session returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		f := newFixture()

		err := f.agent.EndSession(context.Background(), "missing")

		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})
}
