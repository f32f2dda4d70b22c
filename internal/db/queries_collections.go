package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const experienceColumns = `id, company, role, duration, description, tech_stack, icon, color,
	company_logo, meta_title, meta_description, meta_keywords, created_at, updated_at`

var experienceSpec = listSpec{
	table:   "experience",
	columns: experienceColumns,
}

// ListExperience returns work-history entries, most recent first.
func (d *DB) ListExperience(ctx context.Context, f ListFilter) ([]Experience, error) {
	rows, err := d.queryRows(ctx, experienceSpec, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []Experience{}
	for rows.Next() {
		var e Experience
		if err := scanExperience(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (d *DB) CountExperience(ctx context.Context, f ListFilter) (int, error) {
	return d.countRows(ctx, experienceSpec, f)
}

// GetExperience returns one work-history entry by id, or nil.
func (d *DB) GetExperience(ctx context.Context, id int64) (*Experience, error) {
	var e Experience
	err := scanExperience(d.conn.QueryRowContext(ctx,
		"SELECT "+experienceColumns+" FROM experience WHERE id = ?", id), &e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExperience inserts a work-history entry and returns its id.
func (d *DB) CreateExperience(ctx context.Context, e Experience) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO experience
		(company, role, duration, description, tech_stack, icon, color, company_logo,
		 meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Company, e.Role, e.Duration, e.Description, encodeList(e.TechStack),
		e.Icon, defaultColor(e.Color), e.CompanyLogo,
		e.MetaTitle, e.MetaDescription, e.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating experience: %w", err)
	}
	return res.LastInsertId()
}

func scanExperience(row rowScanner, e *Experience) error {
	var stack string
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Duration, &e.Description, &stack,
		&e.Icon, &e.Color, &e.CompanyLogo, &e.MetaTitle, &e.MetaDescription,
		&e.MetaKeywords, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scanning experience: %w", err)
	}
	decodeList("experience", "tech_stack", stack, &e.TechStack)
	if e.TechStack == nil {
		e.TechStack = []string{}
	}
	return nil
}

const educationColumns = `id, institution, degree, period, description, highlights_title,
	highlights, icon, color, institution_logo, meta_title, meta_description, meta_keywords,
	created_at, updated_at`

var educationSpec = listSpec{
	table:   "education",
	columns: educationColumns,
}

// ListEducation returns education entries, most recent first.
func (d *DB) ListEducation(ctx context.Context, f ListFilter) ([]Education, error) {
	rows, err := d.queryRows(ctx, educationSpec, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []Education{}
	for rows.Next() {
		var e Education
		if err := scanEducation(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (d *DB) CountEducation(ctx context.Context, f ListFilter) (int, error) {
	return d.countRows(ctx, educationSpec, f)
}

// GetEducation returns one education entry by id, or nil.
func (d *DB) GetEducation(ctx context.Context, id int64) (*Education, error) {
	var e Education
	err := scanEducation(d.conn.QueryRowContext(ctx,
		"SELECT "+educationColumns+" FROM education WHERE id = ?", id), &e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEducation inserts an education entry and returns its id.
func (d *DB) CreateEducation(ctx context.Context, e Education) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO education
		(institution, degree, period, description, highlights_title, highlights, icon,
		 color, institution_logo, meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Institution, e.Degree, e.Period, e.Description, e.HighlightsTitle,
		encodeList(e.Highlights), e.Icon, defaultColor(e.Color), e.InstitutionLogo,
		e.MetaTitle, e.MetaDescription, e.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating education: %w", err)
	}
	return res.LastInsertId()
}

func scanEducation(row rowScanner, e *Education) error {
	var highlights string
	err := row.Scan(&e.ID, &e.Institution, &e.Degree, &e.Period, &e.Description,
		&e.HighlightsTitle, &highlights, &e.Icon, &e.Color, &e.InstitutionLogo,
		&e.MetaTitle, &e.MetaDescription, &e.MetaKeywords, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scanning education: %w", err)
	}
	decodeList("education", "highlights", highlights, &e.Highlights)
	if e.Highlights == nil {
		e.Highlights = []string{}
	}
	return nil
}

const certificationColumns = `id, title, issuer, color, certificate_image, issued_date,
	meta_title, meta_description, meta_keywords, created_at, updated_at`

// ListCertifications returns all certifications in insertion order; the
// certifications page is a fixed, small list with no pagination.
func (d *DB) ListCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := d.queryRows(ctx, listSpec{
		table:   "certifications",
		columns: certificationColumns,
		orderBy: "id ASC",
	}, ListFilter{})
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	certs := []Certification{}
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.Title, &c.Issuer, &c.Color, &c.CertificateImage,
			&c.IssuedDate, &c.MetaTitle, &c.MetaDescription, &c.MetaKeywords,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning certification: %w", err)
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// CreateCertification inserts a certification and returns its id.
func (d *DB) CreateCertification(ctx context.Context, c Certification) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO certifications
		(title, issuer, color, certificate_image, issued_date,
		 meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.Issuer, defaultColor(c.Color), c.CertificateImage, c.IssuedDate,
		c.MetaTitle, c.MetaDescription, c.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating certification: %w", err)
	}
	return res.LastInsertId()
}

const contributionColumns = `id, title, description, project_name, issuer, type, link, image,
	images, meta_title, meta_description, meta_keywords, created_at, updated_at`

var contributionSpec = listSpec{
	table:         "contributions",
	columns:       contributionColumns,
	searchCols:    []string{"title", "description", "project_name", "issuer"},
	classifyCol:   "type",
	classifyExact: true,
}

// ListContributions returns contributions matching the filter, most
// recent first.
func (d *DB) ListContributions(ctx context.Context, f ListFilter) ([]Contribution, error) {
	rows, err := d.queryRows(ctx, contributionSpec, f)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	contribs := []Contribution{}
	for rows.Next() {
		var c Contribution
		if err := scanContribution(rows, &c); err != nil {
			return nil, err
		}
		contribs = append(contribs, c)
	}
	return contribs, rows.Err()
}

func (d *DB) CountContributions(ctx context.Context, f ListFilter) (int, error) {
	return d.countRows(ctx, contributionSpec, f)
}

// GetContribution returns one contribution by id, or nil.
func (d *DB) GetContribution(ctx context.Context, id int64) (*Contribution, error) {
	var c Contribution
	err := scanContribution(d.conn.QueryRowContext(ctx,
		"SELECT "+contributionColumns+" FROM contributions WHERE id = ?", id), &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateContribution inserts a contribution and returns its id.
func (d *DB) CreateContribution(ctx context.Context, c Contribution) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO contributions
		(title, description, project_name, issuer, type, link, image, images,
		 meta_title, meta_description, meta_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.Description, c.ProjectName, c.Issuer, c.Type, c.Link, c.Image,
		rawJSON(c.Images), c.MetaTitle, c.MetaDescription, c.MetaKeywords)
	if err != nil {
		return 0, fmt.Errorf("creating contribution: %w", err)
	}
	return res.LastInsertId()
}

func scanContribution(row rowScanner, c *Contribution) error {
	var images string
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ProjectName, &c.Issuer, &c.Type,
		&c.Link, &c.Image, &images, &c.MetaTitle, &c.MetaDescription, &c.MetaKeywords,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scanning contribution: %w", err)
	}
	if images != "" && images != "[]" {
		c.Images = []byte(images)
	}
	return nil
}

// ListMedia returns media rows, optionally narrowed to one related
// entity. Media has no pagination or search.
func (d *DB) ListMedia(ctx context.Context, relatedType, relatedID string) ([]Media, error) {
	q := "SELECT id, type, url, mime_type, size, related_type, related_id, alt_text, created_at FROM media WHERE 1=1"
	var args []any
	if relatedType != "" {
		q += " AND related_type = ?"
		args = append(args, relatedType)
	}
	if relatedID != "" {
		q += " AND related_id = ?"
		args = append(args, relatedID)
	}
	q += " ORDER BY created_at DESC, id DESC"
	rows, err := d.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}
	defer rows.Close()
	media := []Media{}
	for rows.Next() {
		var m Media
		if err := rows.Scan(&m.ID, &m.Type, &m.URL, &m.MimeType, &m.Size, &m.RelatedType,
			&m.RelatedID, &m.AltText, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning media: %w", err)
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

// CreateMedia inserts a media row and returns its id.
func (d *DB) CreateMedia(ctx context.Context, m Media) (int64, error) {
	res, err := d.conn.ExecContext(ctx, `INSERT INTO media
		(type, url, mime_type, size, related_type, related_id, alt_text)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Type, m.URL, m.MimeType, m.Size, m.RelatedType, m.RelatedID, m.AltText)
	if err != nil {
		return 0, fmt.Errorf("creating media: %w", err)
	}
	return res.LastInsertId()
}
