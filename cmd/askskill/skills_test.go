package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/askskill"
	main "github.com/fwojciec/askskill/cmd/askskill"
	"github.com/fwojciec/askskill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists skills with ID, title, and source URL", func(t *testing.T) {
		t.Parallel()

		skills := &mock.SkillService{
			FindSkillsFn: func(_ context.Context, _ askskill.SkillFilter) ([]*askskill.Skill, error) {
				return []*askskill.Skill{
					{
						ID:        "skill-123",
						Title:     "Base Documentation",
						SourceURL: "https://docs.base.org",
						CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "skill-456",
						Title:     "Stripe Documentation",
						SourceURL: "https://docs.stripe.com",
						CreatedAt: time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Skills: skills,
		}

		err := (&main.SkillsListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "skill-123")
		assert.Contains(t, output, "skill-456")
		assert.Contains(t, output, "Base Documentation")
		assert.Contains(t, output, "https://docs.stripe.com")
	})

	t.Run("passes the source filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter askskill.SkillFilter
		skills := &mock.SkillService{
			FindSkillsFn: func(_ context.Context, filter askskill.SkillFilter) ([]*askskill.Skill, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Skills: skills,
		}

		err := (&main.SkillsListCmd{Source: "https://docs.base.org"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://docs.base.org", *gotFilter.SourceURL)
	})

	t.Run("shows helpful message when no skills exist", func(t *testing.T) {
		t.Parallel()

		skills := &mock.SkillService{
			FindSkillsFn: func(context.Context, askskill.SkillFilter) ([]*askskill.Skill, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Skills: skills,
		}

		err := (&main.SkillsListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No skills found")
	})
}

func TestSkillsShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows the provenance record", func(t *testing.T) {
		t.Parallel()

		skills := &mock.SkillService{
			FindSkillByIDFn: func(_ context.Context, id string) (*askskill.Skill, error) {
				return &askskill.Skill{
					ID:          id,
					Title:       "Base Documentation",
					SourceURL:   "https://docs.base.org",
					Query:       "How do I get started with base?",
					ContentHash: "xxh64:00000000deadbeef",
					FilePath:    "/tmp/skills/base_documentation_skill.md",
					CreatedAt:   time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Skills: skills,
		}

		err := (&main.SkillsShowCmd{ID: "skill-123"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "skill-123")
		assert.Contains(t, output, "How do I get started with base?")
		assert.Contains(t, output, "xxh64:00000000deadbeef")
	})

	t.Run("reports a missing skill", func(t *testing.T) {
		t.Parallel()

		skills := &mock.SkillService{
			FindSkillByIDFn: func(_ context.Context, id string) (*askskill.Skill, error) {
				return nil, askskill.Errorf(askskill.ENOTFOUND, "skill not found: %s", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Skills: skills,
		}

		err := (&main.SkillsShowCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "skill not found")
	})
}

func TestSkillsDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		err := (&main.SkillsDeleteCmd{ID: "skill-123"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, askskill.EINVALID, askskill.ErrorCode(err))
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		deleted := ""
		skills := &mock.SkillService{
			FindSkillByIDFn: func(_ context.Context, id string) (*askskill.Skill, error) {
				return &askskill.Skill{ID: id, Title: "Base Documentation"}, nil
			},
			DeleteSkillFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Skills: skills,
		}

		err := (&main.SkillsDeleteCmd{ID: "skill-123", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "skill-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted skill")
	})
}
