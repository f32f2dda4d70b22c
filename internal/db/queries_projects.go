package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const projectColumns = `id, title, description, technologies, category, live_demo, github_link,
	featured, color, image, images, meta_title, meta_description, meta_keywords,
	created_at, updated_at`

var projectSpec = listSpec{
	table:         "projects",
	columns:       projectColumns,
	searchCols:    []string{"title", "description", "technologies", "category"},
	classifyCol:   "category",
	classifyExact: true,
}

// ListProjects returns projects matching the filter, most recent first.
func (d *DB) ListProjects(ctx context.Context, f ListFilter) ([]Project, error) {
	rows, err := d.queryRows(ctx, projectSpec, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

// CountProjects returns the number of projects matching the filter.
func (d *DB) CountProjects(ctx context.Context, f ListFilter) (int, error) {
	return d.countRows(ctx, projectSpec, f)
}

// GetProject returns a project by id, or nil when it does not exist.
func (d *DB) GetProject(ctx context.Context, id int64) (*Project, error) {
	row := d.conn.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	return scanProjectRow(row)
}

// FindProjectByTitle returns the most recent project whose title contains
// the given text (case-insensitive), or nil when nothing matches.
func (d *DB) FindProjectByTitle(ctx context.Context, title string) (*Project, error) {
	row := d.conn.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE lower(title) LIKE ? ORDER BY id DESC LIMIT 1",
		likePattern(title))
	return scanProjectRow(row)
}

// SearchProjects is the project-focused search: it scans title,
// description, technologies, and category, ranks featured work first,
// and caps the result at five records.
func (d *DB) SearchProjects(ctx context.Context, query string) ([]Project, error) {
	rows, err := d.queryRows(ctx, listSpec{
		table:      "projects",
		columns:    projectColumns,
		searchCols: projectSpec.searchCols,
		orderBy:    "featured DESC, id DESC",
	}, ListFilter{Search: query, Limit: 5})
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

// CreateProject inserts a project and returns its id.
func (d *DB) CreateProject(ctx context.Context, p Project) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO projects
		(title, description, technologies, category, live_demo, github_link, featured,
		 color, image, images, meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, encodeList(p.Technologies), p.Category, p.LiveDemo,
		p.GithubLink, p.Featured, defaultColor(p.Color), p.Image, rawJSON(p.Images),
		p.MetaTitle, p.MetaDescription, p.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating project: %w", err)
	}
	return res.LastInsertId()
}

func scanProjects(rows *sql.Rows) ([]Project, error) {
	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (*Project, error) {
	var p Project
	var techs, images string
	err := s.Scan(&p.ID, &p.Title, &p.Description, &techs, &p.Category, &p.LiveDemo,
		&p.GithubLink, &p.Featured, &p.Color, &p.Image, &images,
		&p.MetaTitle, &p.MetaDescription, &p.MetaKeywords, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	decodeList("projects", "technologies", techs, &p.Technologies)
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if images != "" && images != "[]" {
		p.Images = []byte(images)
	}
	return &p, nil
}

func scanProjectRow(row *sql.Row) (*Project, error) {
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func defaultColor(c string) string {
	if c == "" {
		return "primary"
	}
	return c
}
