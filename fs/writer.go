// Package fs provides file-based persistence for skill artifacts.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/askskill"
)

// maxSlugLen bounds the filename slug derived from the site title.
const maxSlugLen = 40

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Ensure Writer implements askskill.SkillWriter at compile time.
var _ askskill.SkillWriter = (*Writer)(nil)

// Writer persists skill artifacts as markdown files with a YAML frontmatter
// header. Writes are atomic: the file appears complete or not at all, so a
// cancelled session never leaves a partial artifact behind.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSkill writes the artifact and returns its path. The skill's
// ContentHash and FilePath fields are filled in; CreatedAt is set if zero.
func (w *Writer) WriteSkill(ctx context.Context, skill *askskill.Skill, body string) (string, error) {
	if err := skill.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", askskill.Errorf(askskill.EINVALID, "skill body required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now().UTC()
	}
	skill.ContentHash = fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(body))

	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, Filename(skill.Title))
	content := FormatSkill(skill, body)

	// Write to a temp file in the same directory, then rename into place.
	tmp, err := os.CreateTemp(w.baseDir, ".skill-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	skill.FilePath = path
	return path, nil
}

// Filename derives a stable artifact filename from a site title.
// Example: "Base Documentation - Build on Base" → "base_documentation_build_on_base_skill.md"
func Filename(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "untitled"
	}
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "_")
	}
	return slug + "_skill.md"
}

// FormatSkill renders a skill artifact: YAML frontmatter followed by the
// cleaned answer body. The format is stable for downstream tooling.
func FormatSkill(skill *askskill.Skill, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(skill.Title)
	b.WriteString("\nsource: ")
	b.WriteString(skill.SourceURL)
	b.WriteString("\nquery: ")
	b.WriteString(skill.Query)
	b.WriteString("\ncreated: ")
	b.WriteString(skill.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString("\nhash: ")
	b.WriteString(skill.ContentHash)
	b.WriteString("\n---\n\n")
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n")
	return b.String()
}

// ParseSkill parses an artifact file's content back into a skill and body.
// Returns EINVALID if the header block is missing or malformed.
func ParseSkill(content string) (*askskill.Skill, string, error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil, "", askskill.Errorf(askskill.EINVALID, "missing skill header block")
	}
	header, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, "", askskill.Errorf(askskill.EINVALID, "unterminated skill header block")
	}

	skill := &askskill.Skill{}
	for _, line := range strings.Split(header, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "title":
			skill.Title = value
		case "source":
			skill.SourceURL = value
		case "query":
			skill.Query = value
		case "hash":
			skill.ContentHash = value
		case "created":
			ts, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return nil, "", askskill.Errorf(askskill.EINVALID, "invalid created timestamp: %v", err)
			}
			skill.CreatedAt = ts
		}
	}

	if err := skill.Validate(); err != nil {
		return nil, "", err
	}

	return skill, strings.TrimSpace(body), nil
}
