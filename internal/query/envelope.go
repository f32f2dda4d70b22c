// Package query shapes portfolio reads into the response envelope the
// site consumes: data plus pagination and SEO metadata.
package query

import "strings"

// allThreshold is the limit value at or above which a list read means
// "give me everything" and pagination is skipped.
const allThreshold = 100

// Pagination describes the window a list response covers.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// paginate computes the pagination block for a window over total rows.
func paginate(page, limit, total int) Pagination {
	totalPages := 1
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// SEO is the discoverability block attached to every envelope.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// ListResult is the envelope for collection reads. Pagination is absent
// on whole-collection responses; CategoryCounts only appears on the
// unfiltered paginated skills read.
type ListResult struct {
	Data           any            `json:"data"`
	Pagination     *Pagination    `json:"pagination,omitempty"`
	CategoryCounts map[string]int `json:"categoryCounts,omitempty"`
	SEO            SEO            `json:"seo"`
}

// SingleResult is the envelope for single-record reads.
type SingleResult struct {
	Data any `json:"data"`
	SEO  SEO `json:"seo"`
}

// seoFor fills the SEO block from a record's meta fields, falling back
// to section defaults built around the portfolio owner's name.
func (e *Engine) seoFor(section, title, description, keywords string) SEO {
	if title == "" {
		title = section + " | " + e.owner
	}
	if description == "" {
		description = "Learn more about my " + strings.ToLower(section) + " and professional journey."
	}
	return SEO{Title: title, Description: description, Keywords: keywords}
}
