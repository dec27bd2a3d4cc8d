package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/askskill"
	"github.com/fwojciec/askskill/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestSkill() *askskill.Skill {
	return &askskill.Skill{
		Title:       "Base Documentation",
		SourceURL:   "https://docs.base.org",
		Query:       "How do I get started with building dApps on Base?",
		ContentHash: "xxh64:00000000deadbeef",
		FilePath:    "/tmp/skills/base_documentation_skill.md",
	}
}

func TestSkillService_CreateSkill(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		skill := newTestSkill()

		require.NoError(t, s.CreateSkill(context.Background(), skill))

		assert.NotEmpty(t, skill.ID)
		assert.False(t, skill.CreatedAt.IsZero())
	})

	t.Run("rejects invalid skill", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))

		err := s.CreateSkill(context.Background(), &askskill.Skill{})

		require.Error(t, err)
		assert.Equal(t, askskill.EINVALID, askskill.ErrorCode(err))
	})
}

func TestSkillService_FindSkillByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		skill := newTestSkill()
		require.NoError(t, s.CreateSkill(context.Background(), skill))

		got, err := s.FindSkillByID(context.Background(), skill.ID)

		require.NoError(t, err)
		assert.Equal(t, skill.Title, got.Title)
		assert.Equal(t, skill.SourceURL, got.SourceURL)
		assert.Equal(t, skill.Query, got.Query)
		assert.Equal(t, skill.ContentHash, got.ContentHash)
		assert.Equal(t, skill.FilePath, got.FilePath)
		assert.WithinDuration(t, skill.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))

		_, err := s.FindSkillByID(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})
}

func TestSkillService_FindSkills(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		a := newTestSkill()
		require.NoError(t, s.CreateSkill(context.Background(), a))
		b := newTestSkill()
		b.SourceURL = "https://docs.stripe.com"
		require.NoError(t, s.CreateSkill(context.Background(), b))

		url := "https://docs.stripe.com"
		got, err := s.FindSkills(context.Background(), askskill.SkillFilter{SourceURL: &url})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, b.ID, got[0].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		for range 3 {
			require.NoError(t, s.CreateSkill(context.Background(), newTestSkill()))
		}

		got, err := s.FindSkills(context.Background(), askskill.SkillFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("offset works without a limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		for range 3 {
			require.NoError(t, s.CreateSkill(context.Background(), newTestSkill()))
		}

		got, err := s.FindSkills(context.Background(), askskill.SkillFilter{Offset: 1})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestSkillService_DeleteSkill(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing skill", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))
		skill := newTestSkill()
		require.NoError(t, s.CreateSkill(context.Background(), skill))

		require.NoError(t, s.DeleteSkill(context.Background(), skill.ID))

		_, err := s.FindSkillByID(context.Background(), skill.ID)
		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSkillService(mustOpenDB(t))

		err := s.DeleteSkill(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, askskill.ENOTFOUND, askskill.ErrorCode(err))
	})
}
