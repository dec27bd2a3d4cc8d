package main

import (
	"bufio"
	"fmt"

	"github.com/fwojciec/askskill"
)

// Run executes the chat command: an interactive stdin/stdout loop driving the
// conversation service until the session reaches a terminal state or input
// runs out.
func (c *ChatCmd) Run(deps *Dependencies) error {
	turn, err := deps.Conversation.StartSession(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
		return err
	}
	sessionID := turn.SessionID
	printTurn(deps, turn)

	scanner := bufio.NewScanner(deps.Stdin)
	for !turn.State.Terminal() {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			// Input closed mid-conversation: cancel in-flight work and
			// discard partial artifacts.
			_ = deps.Conversation.EndSession(deps.Ctx, sessionID)
			break
		}

		turn, err = deps.Conversation.SubmitInput(deps.Ctx, sessionID, scanner.Text())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
			return err
		}
		printTurn(deps, turn)
	}

	return scanner.Err()
}

// printTurn writes status events as diagnostic lines to stderr and the
// agent's reply to stdout.
func printTurn(deps *Dependencies, turn *askskill.Turn) {
	for _, e := range turn.Events {
		fmt.Fprintf(deps.Stderr, "[%s] %s: %s\n", e.Severity, e.Kind, e.Detail)
	}
	if turn.Reply != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", turn.Reply)
	}
}
