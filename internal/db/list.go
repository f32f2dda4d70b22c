package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// ListFilter carries the optional predicates a collection read may apply.
// All supplied predicates are combined conjunctively. Limit <= 0 means no
// LIMIT clause at all (the caller wants the whole collection).
type ListFilter struct {
	Search   string
	Classify string // value for the entity's classification column
	Featured *bool  // projects only
	Limit    int
	Offset   int
}

// listSpec describes how one entity kind is listed: which table and
// columns, which columns free-text search scans, and which column (if
// any) acts as the classification filter. Each entity supplies a spec;
// the query building is shared.
type listSpec struct {
	table         string
	columns       string
	searchCols    []string
	classifyCol   string
	classifyExact bool   // exact match vs case-insensitive substring
	orderBy       string // empty means "id DESC"
}

func (s listSpec) order() string {
	if s.orderBy != "" {
		return s.orderBy
	}
	return "id DESC"
}

// whereClause builds the conjunctive WHERE fragment for a filter.
func (s listSpec) whereClause(f ListFilter) (string, []any) {
	var b strings.Builder
	var args []any
	b.WriteString(" WHERE 1=1")
	if f.Classify != "" && s.classifyCol != "" {
		if s.classifyExact {
			fmt.Fprintf(&b, " AND %s = ?", s.classifyCol)
			args = append(args, f.Classify)
		} else {
			fmt.Fprintf(&b, " AND lower(%s) LIKE ?", s.classifyCol)
			args = append(args, likePattern(f.Classify))
		}
	}
	if f.Featured != nil {
		b.WriteString(" AND featured = ?")
		args = append(args, *f.Featured)
	}
	if f.Search != "" && len(s.searchCols) > 0 {
		parts := make([]string, len(s.searchCols))
		for i, col := range s.searchCols {
			parts[i] = fmt.Sprintf("lower(%s) LIKE ?", col)
			args = append(args, likePattern(f.Search))
		}
		b.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
	}
	return b.String(), args
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// countRows returns the number of rows matching the filter, ignoring
// Limit/Offset.
func (d *DB) countRows(ctx context.Context, spec listSpec, f ListFilter) (int, error) {
	where, args := spec.whereClause(f)
	var total int
	err := d.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+spec.table+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", spec.table, err)
	}
	return total, nil
}

// queryRows runs the filtered, ordered, optionally bounded select for a
// spec. The caller owns the returned rows.
func (d *DB) queryRows(ctx context.Context, spec listSpec, f ListFilter) (*sql.Rows, error) {
	where, args := spec.whereClause(f)
	q := "SELECT " + spec.columns + " FROM " + spec.table + where + " ORDER BY " + spec.order()
	if f.Limit > 0 {
		q += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}
	rows, err := d.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", spec.table, err)
	}
	return rows, nil
}

// decodeList parses a JSON-encoded string list stored in a text column.
// A malformed value is a data fault in that one field, not a reason to
// drop the record or fail the read: it is logged and the field left empty.
func decodeList(table, field string, raw string, dst *[]string) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("%s: malformed %s list: %v", table, field, err)
	}
}

// encodeList serializes a string list for storage. Nil encodes as "[]"
// so reads never see an empty-string pseudo-value.
func encodeList(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(list) // string slices cannot fail to marshal
	return string(b)
}

// rawJSON normalizes an opaque JSON column value for storage.
func rawJSON(m json.RawMessage) string {
	if len(m) == 0 {
		return "[]"
	}
	return string(m)
}
