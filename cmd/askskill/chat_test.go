package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/askskill"
	main "github.com/fwojciec/askskill/cmd/askskill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedConversation is a ConversationService that walks a fixed list of
// turns, one per input.
type scriptedConversation struct {
	turns []*askskill.Turn
	step  int
	ended bool
}

func (s *scriptedConversation) StartSession(context.Context) (*askskill.Turn, error) {
	return &askskill.Turn{
		SessionID: "session-1",
		State:     askskill.StateIntro,
		Reply:     "Hi! What tool are you interested in?",
	}, nil
}

func (s *scriptedConversation) SubmitInput(_ context.Context, _, _ string) (*askskill.Turn, error) {
	turn := s.turns[s.step]
	if s.step < len(s.turns)-1 {
		s.step++
	}
	return turn, nil
}

func (s *scriptedConversation) EndSession(context.Context, string) error {
	s.ended = true
	return nil
}

func TestChatCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints replies to stdout and events to stderr", func(t *testing.T) {
		t.Parallel()

		conv := &scriptedConversation{turns: []*askskill.Turn{
			{
				SessionID: "session-1",
				State:     askskill.StateComplete,
				Events: []askskill.Event{
					{Kind: askskill.StatusSearching, Severity: askskill.SeverityInfo, Detail: "searching"},
					{Kind: askskill.StatusComplete, Severity: askskill.SeverityInfo, Detail: "/tmp/skill.md"},
				},
				Reply: "Done! I saved the skill.",
			},
		}}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("base blockchain\n"),
			Stdout:       stdout,
			Stderr:       stderr,
			Conversation: conv,
		}

		err := (&main.ChatCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Done! I saved the skill.")
		assert.Contains(t, stderr.String(), "searching")
		assert.Contains(t, stderr.String(), "/tmp/skill.md")
		assert.False(t, conv.ended)
	})

	t.Run("closed input ends the session", func(t *testing.T) {
		t.Parallel()

		conv := &scriptedConversation{turns: []*askskill.Turn{
			{SessionID: "session-1", State: askskill.StateAwaitingSelection, Reply: "Pick one."},
		}}

		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdin:        strings.NewReader("base\n"),
			Stdout:       &bytes.Buffer{},
			Stderr:       &bytes.Buffer{},
			Conversation: conv,
		}

		err := (&main.ChatCmd{}).Run(deps)

		require.NoError(t, err)
		assert.True(t, conv.ended)
	})
}
