package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// The three singleton kinds (profile/home, about, contact) have at most
// one current record: the most recent row by id. Writes are
// create-or-update — the existence check and the write happen inside one
// transaction so a concurrent writer cannot produce two current rows.

const profileColumns = `id, greeting, name, tagline, typed_roles, bio, profile_image, cv_link,
	github_link, linkedin_link, email, phone, meta_title, meta_description, meta_keywords,
	created_at, updated_at`

// GetProfile returns the current profile record, or nil when none exists.
func (d *DB) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	var roles string
	err := d.conn.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM home ORDER BY id DESC LIMIT 1",
	).Scan(&p.ID, &p.Greeting, &p.Name, &p.Tagline, &roles, &p.Bio, &p.ProfileImage, &p.CVLink,
		&p.GithubLink, &p.LinkedinLink, &p.Email, &p.Phone, &p.MetaTitle, &p.MetaDescription,
		&p.MetaKeywords, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	decodeList("home", "typed_roles", roles, &p.TypedRoles)
	return &p, nil
}

// UpsertProfile updates the current profile record or inserts the first
// one. Returns the id of the written row.
func (d *DB) UpsertProfile(ctx context.Context, p Profile) (int64, error) {
	return d.upsertSingleton(ctx, "home", func(tx *sql.Tx, existing int64) (int64, error) {
		roles := encodeList(p.TypedRoles)
		if existing > 0 {
			_, err := tx.ExecContext(ctx, `UPDATE home SET
				greeting = ?, name = ?, tagline = ?, typed_roles = ?, bio = ?,
				profile_image = ?, cv_link = ?, github_link = ?, linkedin_link = ?,
				email = ?, phone = ?, meta_title = ?, meta_description = ?, meta_keywords = ?,
				updated_at = datetime('now') WHERE id = ?`,
				p.Greeting, p.Name, p.Tagline, roles, p.Bio, p.ProfileImage, p.CVLink,
				p.GithubLink, p.LinkedinLink, p.Email, p.Phone,
				p.MetaTitle, p.MetaDescription, p.MetaKeywords, existing)
			return existing, err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO home
			(greeting, name, tagline, typed_roles, bio, profile_image, cv_link, github_link,
			 linkedin_link, email, phone, meta_title, meta_description, meta_keywords)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Greeting, p.Name, p.Tagline, roles, p.Bio, p.ProfileImage, p.CVLink,
			p.GithubLink, p.LinkedinLink, p.Email, p.Phone,
			p.MetaTitle, p.MetaDescription, p.MetaKeywords)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
}

const aboutColumns = `id, title, subtitle, bio_text, bio_text_2, "values", background_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at`

// GetAbout returns the current about record, or nil when none exists.
func (d *DB) GetAbout(ctx context.Context) (*About, error) {
	var a About
	var values string
	err := d.conn.QueryRowContext(ctx,
		"SELECT "+aboutColumns+" FROM about ORDER BY id DESC LIMIT 1",
	).Scan(&a.ID, &a.Title, &a.Subtitle, &a.BioText, &a.BioText2, &values, &a.BackgroundImage,
		&a.MetaTitle, &a.MetaDescription, &a.MetaKeywords, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting about: %w", err)
	}
	a.Values = json.RawMessage(values)
	return &a, nil
}

// UpsertAbout updates the current about record or inserts the first one.
func (d *DB) UpsertAbout(ctx context.Context, a About) (int64, error) {
	return d.upsertSingleton(ctx, "about", func(tx *sql.Tx, existing int64) (int64, error) {
		if existing > 0 {
			_, err := tx.ExecContext(ctx, `UPDATE about SET
				title = ?, subtitle = ?, bio_text = ?, bio_text_2 = ?, "values" = ?,
				background_image = ?, meta_title = ?, meta_description = ?, meta_keywords = ?,
				updated_at = datetime('now') WHERE id = ?`,
				a.Title, a.Subtitle, a.BioText, a.BioText2, rawJSON(a.Values),
				a.BackgroundImage, a.MetaTitle, a.MetaDescription, a.MetaKeywords, existing)
			return existing, err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO about
			(title, subtitle, bio_text, bio_text_2, "values", background_image,
			 meta_title, meta_description, meta_keywords)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Title, a.Subtitle, a.BioText, a.BioText2, rawJSON(a.Values),
			a.BackgroundImage, a.MetaTitle, a.MetaDescription, a.MetaKeywords)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
}

const contactColumns = `id, contact_items, social_links, meta_title, meta_description,
	meta_keywords, created_at, updated_at`

// GetContact returns the current contact record, or nil when none exists.
func (d *DB) GetContact(ctx context.Context) (*Contact, error) {
	var c Contact
	var items, links string
	err := d.conn.QueryRowContext(ctx,
		"SELECT "+contactColumns+" FROM contact ORDER BY id DESC LIMIT 1",
	).Scan(&c.ID, &items, &links, &c.MetaTitle, &c.MetaDescription, &c.MetaKeywords,
		&c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}
	c.ContactItems = json.RawMessage(items)
	c.SocialLinks = json.RawMessage(links)
	return &c, nil
}

// UpsertContact updates the current contact record or inserts the first one.
func (d *DB) UpsertContact(ctx context.Context, c Contact) (int64, error) {
	return d.upsertSingleton(ctx, "contact", func(tx *sql.Tx, existing int64) (int64, error) {
		if existing > 0 {
			_, err := tx.ExecContext(ctx, `UPDATE contact SET
				contact_items = ?, social_links = ?, meta_title = ?, meta_description = ?,
				meta_keywords = ?, updated_at = datetime('now') WHERE id = ?`,
				rawJSON(c.ContactItems), rawJSON(c.SocialLinks),
				c.MetaTitle, c.MetaDescription, c.MetaKeywords, existing)
			return existing, err
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO contact
			(contact_items, social_links, meta_title, meta_description, meta_keywords)
			VALUES (?, ?, ?, ?, ?)`,
			rawJSON(c.ContactItems), rawJSON(c.SocialLinks),
			c.MetaTitle, c.MetaDescription, c.MetaKeywords)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
}

// upsertSingleton runs the existence check and the write inside one
// transaction. write receives the current row id, or 0 when the table
// is empty, and must perform the matching UPDATE or INSERT.
func (d *DB) upsertSingleton(ctx context.Context, table string, write func(tx *sql.Tx, existing int64) (int64, error)) (int64, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning %s upsert: %w", table, err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM "+table+" ORDER BY id DESC LIMIT 1").Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("checking %s existence: %w", table, err)
	}

	id, err := write(tx, existing)
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing %s upsert: %w", table, err)
	}
	return id, nil
}
