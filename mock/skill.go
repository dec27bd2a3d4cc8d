package mock

import (
	"context"

	"github.com/fwojciec/askskill"
)

// Compile-time interface verification.
var (
	_ askskill.SkillWriter  = (*SkillWriter)(nil)
	_ askskill.SkillService = (*SkillService)(nil)
)

// SkillWriter is a mock implementation of askskill.SkillWriter.
type SkillWriter struct {
	WriteSkillFn func(ctx context.Context, skill *askskill.Skill, body string) (string, error)
}

func (w *SkillWriter) WriteSkill(ctx context.Context, skill *askskill.Skill, body string) (string, error) {
	return w.WriteSkillFn(ctx, skill, body)
}

// SkillService is a mock implementation of askskill.SkillService.
type SkillService struct {
	CreateSkillFn   func(ctx context.Context, skill *askskill.Skill) error
	FindSkillByIDFn func(ctx context.Context, id string) (*askskill.Skill, error)
	FindSkillsFn    func(ctx context.Context, filter askskill.SkillFilter) ([]*askskill.Skill, error)
	DeleteSkillFn   func(ctx context.Context, id string) error
}

func (s *SkillService) CreateSkill(ctx context.Context, skill *askskill.Skill) error {
	return s.CreateSkillFn(ctx, skill)
}

func (s *SkillService) FindSkillByID(ctx context.Context, id string) (*askskill.Skill, error) {
	return s.FindSkillByIDFn(ctx, id)
}

func (s *SkillService) FindSkills(ctx context.Context, filter askskill.SkillFilter) ([]*askskill.Skill, error) {
	return s.FindSkillsFn(ctx, filter)
}

func (s *SkillService) DeleteSkill(ctx context.Context, id string) error {
	return s.DeleteSkillFn(ctx, id)
}
