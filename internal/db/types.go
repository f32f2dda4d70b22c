package db

import "encoding/json"

// Meta is the discoverability triple carried by every content table.
// Empty values mean "use the section default" at response-shaping time.
type Meta struct {
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
}

// Profile is the singleton hero/landing record ("home" table).
type Profile struct {
	ID           int64    `json:"id"`
	Greeting     string   `json:"greeting"`
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	TypedRoles   []string `json:"typed_roles"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profile_image,omitempty"`
	CVLink       string   `json:"cv_link,omitempty"`
	GithubLink   string   `json:"github_link,omitempty"`
	LinkedinLink string   `json:"linkedin_link,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// About is the singleton background-story record. Values holds a JSON
// array of value cards (icon/title/description) kept opaque to the store.
type About struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle"`
	BioText         string          `json:"bio_text"`
	BioText2        string          `json:"bio_text_2,omitempty"`
	Values          json.RawMessage `json:"values"`
	BackgroundImage string          `json:"background_image,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Level       string `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	Color       string `json:"color"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Project struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Technologies []string        `json:"technologies"`
	Category     string          `json:"category,omitempty"`
	LiveDemo     string          `json:"live_demo,omitempty"`
	GithubLink   string          `json:"github_link,omitempty"`
	Featured     bool            `json:"featured"`
	Color        string          `json:"color"`
	Image        string          `json:"image,omitempty"`
	Images       json.RawMessage `json:"images,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Contribution struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ProjectName string          `json:"project_name,omitempty"`
	Issuer      string          `json:"issuer,omitempty"`
	Type        string          `json:"type"`
	Link        string          `json:"link,omitempty"`
	Image       string          `json:"image,omitempty"`
	Images      json.RawMessage `json:"images,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Experience struct {
	ID          int64    `json:"id"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color"`
	CompanyLogo string   `json:"company_logo,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Education struct {
	ID              int64    `json:"id"`
	Institution     string   `json:"institution"`
	Degree          string   `json:"degree"`
	Period          string   `json:"period"`
	Description     string   `json:"description"`
	HighlightsTitle string   `json:"highlights_title,omitempty"`
	Highlights      []string `json:"highlights"`
	Icon            string   `json:"icon,omitempty"`
	Color           string   `json:"color"`
	InstitutionLogo string   `json:"institution_logo,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Certification struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Issuer           string `json:"issuer"`
	Color            string `json:"color"`
	CertificateImage string `json:"certificate_image,omitempty"`
	IssuedDate       string `json:"issued_date,omitempty"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Contact is the singleton contact record. ContactItems and SocialLinks
// are JSON arrays of display cards kept opaque to the store.
type Contact struct {
	ID           int64           `json:"id"`
	ContactItems json.RawMessage `json:"contact_items"`
	SocialLinks  json.RawMessage `json:"social_links"`
	Meta
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Media is an auxiliary asset attached to any other entity kind through
// the related_type/related_id pair.
type Media struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	MimeType    string `json:"mime_type,omitempty"`
	Size        string `json:"size,omitempty"`
	RelatedType string `json:"related_type"`
	RelatedID   string `json:"related_id,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	CreatedAt   string `json:"created_at"`
}
