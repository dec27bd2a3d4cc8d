package askskill

import (
	"context"
	"time"
)

// Skill is the persisted artifact produced at session completion: a cleaned
// answer plus provenance metadata.
type Skill struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	Query       string    `json:"query"`
	ContentHash string    `json:"contentHash"`
	FilePath    string    `json:"filePath"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the skill contains invalid fields.
func (s *Skill) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "skill title required")
	}
	if s.SourceURL == "" {
		return Errorf(EINVALID, "skill source URL required")
	}
	if s.Query == "" {
		return Errorf(EINVALID, "skill query required")
	}
	return nil
}

// SkillWriter persists a skill artifact file: a structured header block
// followed by the cleaned answer body, stable enough for downstream tooling
// to parse deterministically.
type SkillWriter interface {
	// WriteSkill writes the artifact and returns its path. It also fills in
	// the skill's ContentHash and FilePath.
	WriteSkill(ctx context.Context, skill *Skill, body string) (path string, err error)
}

// SkillService represents a service for managing skill provenance records.
type SkillService interface {
	// CreateSkill records a new skill.
	CreateSkill(ctx context.Context, skill *Skill) error

	// FindSkillByID retrieves a skill by ID.
	// Returns ENOTFOUND if the skill does not exist.
	FindSkillByID(ctx context.Context, id string) (*Skill, error)

	// FindSkills retrieves skills matching the filter, newest first.
	FindSkills(ctx context.Context, filter SkillFilter) ([]*Skill, error)

	// DeleteSkill permanently removes a skill record.
	// Returns ENOTFOUND if the skill does not exist.
	DeleteSkill(ctx context.Context, id string) error
}

// SkillFilter represents a filter for FindSkills.
type SkillFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
