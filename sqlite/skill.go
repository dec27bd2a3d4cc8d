package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/askskill"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ askskill.SkillService = (*SkillService)(nil)

// SkillService implements askskill.SkillService using SQLite.
type SkillService struct {
	db *DB
}

// NewSkillService creates a new SkillService.
func NewSkillService(db *DB) *SkillService {
	return &SkillService{db: db}
}

// CreateSkill records a new skill.
func (s *SkillService) CreateSkill(ctx context.Context, skill *askskill.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}

	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO skills (id, title, source_url, query, content_hash, file_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, skill.ID, skill.Title, skill.SourceURL, skill.Query, skill.ContentHash, skill.FilePath,
		skill.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSkillByID retrieves a skill by ID.
func (s *SkillService) FindSkillByID(ctx context.Context, id string) (*askskill.Skill, error) {
	var skill askskill.Skill
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, source_url, query, content_hash, file_path, created_at
		FROM skills
		WHERE id = ?
	`, id).Scan(&skill.ID, &skill.Title, &skill.SourceURL, &skill.Query,
		&skill.ContentHash, &skill.FilePath, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, askskill.Errorf(askskill.ENOTFOUND, "skill not found")
	}
	if err != nil {
		return nil, err
	}

	skill.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &skill, nil
}

// FindSkills retrieves skills matching the filter, newest first.
func (s *SkillService) FindSkills(ctx context.Context, filter askskill.SkillFilter) ([]*askskill.Skill, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, source_url, query, content_hash, file_path, created_at FROM skills WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unlimited.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*askskill.Skill
	for rows.Next() {
		var skill askskill.Skill
		var createdAt string

		if err := rows.Scan(&skill.ID, &skill.Title, &skill.SourceURL, &skill.Query,
			&skill.ContentHash, &skill.FilePath, &createdAt); err != nil {
			return nil, err
		}

		skill.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		skills = append(skills, &skill)
	}

	return skills, rows.Err()
}

// DeleteSkill permanently removes a skill record.
func (s *SkillService) DeleteSkill(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return askskill.Errorf(askskill.ENOTFOUND, "skill not found")
	}

	return nil
}
