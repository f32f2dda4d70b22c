package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const skillColumns = `id, name, category, level, description, icon, icon_url, color,
	meta_title, meta_description, meta_keywords, created_at, updated_at`

var skillSpec = listSpec{
	table:       "skills",
	columns:     skillColumns,
	searchCols:  []string{"name", "category", "description"},
	classifyCol: "category", // categories are long labels, so substring match
}

// ListSkills returns skills matching the filter, most recent first.
func (d *DB) ListSkills(ctx context.Context, f ListFilter) ([]Skill, error) {
	rows, err := d.queryRows(ctx, skillSpec, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	skills := []Skill{}
	for rows.Next() {
		var s Skill
		if err := scanSkill(rows, &s); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// CountSkills returns the number of skills matching the filter.
func (d *DB) CountSkills(ctx context.Context, f ListFilter) (int, error) {
	return d.countRows(ctx, skillSpec, f)
}

// GetSkill returns a skill by id, or nil when it does not exist.
func (d *DB) GetSkill(ctx context.Context, id int64) (*Skill, error) {
	var s Skill
	err := scanSkill(d.conn.QueryRowContext(ctx,
		"SELECT "+skillColumns+" FROM skills WHERE id = ?", id), &s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// TopSkills returns up to limit skills ordered by proficiency level
// descending. Levels are stored as strings ("92%"), which order
// correctly lexicographically for two-digit percentages.
func (d *DB) TopSkills(ctx context.Context, limit int) ([]Skill, error) {
	spec := skillSpec
	spec.orderBy = "level DESC, id DESC"
	rows, err := d.queryRows(ctx, spec, ListFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	skills := []Skill{}
	for rows.Next() {
		var s Skill
		if err := scanSkill(rows, &s); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// SkillCategoryCounts returns the raw per-category record counts.
func (d *DB) SkillCategoryCounts(ctx context.Context) (map[string]int, error) {
	rows, err := d.conn.QueryContext(ctx, "SELECT category, COUNT(*) FROM skills GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("counting skill categories: %w", err)
	}
	defer rows.Close()
	counts := map[string]int{}
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}
		counts[category] = n
	}
	return counts, rows.Err()
}

// CreateSkill inserts a skill and returns its id.
func (d *DB) CreateSkill(ctx context.Context, s Skill) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO skills
		(name, category, level, description, icon, icon_url, color,
		 meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Category, s.Level, s.Description, s.Icon, s.IconURL,
		defaultColor(s.Color), s.MetaTitle, s.MetaDescription, s.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating skill: %w", err)
	}
	return res.LastInsertId()
}

func scanSkill(row rowScanner, s *Skill) error {
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Description, &s.Icon,
		&s.IconURL, &s.Color, &s.MetaTitle, &s.MetaDescription, &s.MetaKeywords,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("scanning skill: %w", err)
	}
	return err
}
