package db

import (
	"context"
	"fmt"
)

// unionSearchCap bounds the combined cross-entity search result.
const unionSearchCap = 10

// SearchHit is one row of the cross-entity search: a stable kind tag,
// a display name, a one-line description, and the record id.
type SearchHit struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ID          int64  `json:"id"`
}

// UnionSearch scans projects, skills, experience, and contributions for
// the given text and returns up to ten hits. Kinds are visited in a
// fixed priority order, newest records first within each kind, so
// project matches crowd out contribution matches when the cap binds.
func (d *DB) UnionSearch(ctx context.Context, query string) ([]SearchHit, error) {
	pattern := likePattern(query)
	hits := []SearchHit{}

	type kindQuery struct {
		kind string
		sql  string
	}
	kinds := []kindQuery{
		{"project", `SELECT id, title, description FROM projects
			WHERE lower(title) LIKE ? OR lower(description) LIKE ? ORDER BY id DESC`},
		{"skill", `SELECT id, name, category FROM skills
			WHERE lower(name) LIKE ? OR lower(category) LIKE ? ORDER BY id DESC`},
		{"experience", `SELECT id, company, role FROM experience
			WHERE lower(company) LIKE ? OR lower(role) LIKE ? ORDER BY id DESC`},
		{"contribution", `SELECT id, title, description FROM contributions
			WHERE lower(title) LIKE ? OR lower(project_name) LIKE ? ORDER BY id DESC`},
	}

	for _, k := range kinds {
		if len(hits) >= unionSearchCap {
			break
		}
		rows, err := d.conn.QueryContext(ctx, k.sql+" LIMIT ?",
			pattern, pattern, unionSearchCap-len(hits))
		if err != nil {
			return nil, fmt.Errorf("searching %ss: %w", k.kind, err)
		}
		for rows.Next() {
			var h SearchHit
			if err := rows.Scan(&h.ID, &h.Name, &h.Description); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning %s hit: %w", k.kind, err)
			}
			h.Type = k.kind
			hits = append(hits, h)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return hits, nil
}
