package main

import (
	"fmt"

	"github.com/fwojciec/askskill"
)

// Run executes the skills list command.
func (c *SkillsListCmd) Run(deps *Dependencies) error {
	filter := askskill.SkillFilter{}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	skills, err := deps.Skills.FindSkills(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
		return err
	}

	if len(skills) == 0 {
		fmt.Fprintln(deps.Stdout, "No skills found. Use 'askskill chat' to create one.")
		return nil
	}

	for _, s := range skills {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.Title, s.SourceURL)
	}

	return nil
}

// Run executes the skills show command.
func (c *SkillsShowCmd) Run(deps *Dependencies) error {
	skill, err := deps.Skills.FindSkillByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:      %s\n", skill.ID)
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", skill.Title)
	fmt.Fprintf(deps.Stdout, "Source:  %s\n", skill.SourceURL)
	fmt.Fprintf(deps.Stdout, "Query:   %s\n", skill.Query)
	fmt.Fprintf(deps.Stdout, "Hash:    %s\n", skill.ContentHash)
	fmt.Fprintf(deps.Stdout, "File:    %s\n", skill.FilePath)
	fmt.Fprintf(deps.Stdout, "Created: %s\n", skill.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}

// Run executes the skills delete command.
func (c *SkillsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return askskill.Errorf(askskill.EINVALID, "use --force to confirm deletion")
	}

	skill, err := deps.Skills.FindSkillByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
		return err
	}

	if err := deps.Skills.DeleteSkill(deps.Ctx, skill.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askskill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted skill %q\n", skill.Title)
	return nil
}
