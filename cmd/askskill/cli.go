package main

import (
	"context"
	"io"

	"github.com/fwojciec/askskill"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Skills       askskill.SkillService
	Conversation askskill.ConversationService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Chat   ChatCmd   `cmd:"" help:"Start an interactive conversation to build a skill"`
	Skills SkillsCmd `cmd:"" help:"Manage saved skills"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// SkillsCmd groups the skill management subcommands.
type SkillsCmd struct {
	List   SkillsListCmd   `cmd:"" help:"List saved skills"`
	Show   SkillsShowCmd   `cmd:"" help:"Show one skill's provenance record"`
	Delete SkillsDeleteCmd `cmd:"" help:"Delete a skill record"`
}

// SkillsListCmd is the "skills list" subcommand.
type SkillsListCmd struct {
	Source string `short:"s" help:"Filter by source URL"`
}

// SkillsShowCmd is the "skills show" subcommand.
type SkillsShowCmd struct {
	ID string `arg:"" help:"Skill ID"`
}

// SkillsDeleteCmd is the "skills delete" subcommand.
type SkillsDeleteCmd struct {
	ID    string `arg:"" help:"Skill ID"`
	Force bool   `help:"Confirm deletion"`
}
