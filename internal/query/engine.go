package query

import (
	"context"
	"strings"

	"github.com/hamid/folio/internal/db"
)

// Engine runs portfolio reads against the store and shapes them into
// response envelopes. One instance serves both the HTTP handlers and
// the assistant's tools.
type Engine struct {
	db    *db.DB
	owner string
}

// New returns an engine for the given store. owner is the portfolio
// owner's display name, used in SEO defaults.
func New(database *db.DB, owner string) *Engine {
	return &Engine{db: database, owner: owner}
}

// Owner returns the portfolio owner's display name.
func (e *Engine) Owner() string { return e.owner }

// ListOptions carries the query parameters a collection read accepts.
// Limit 0 means the caller supplied none.
type ListOptions struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Type     string
}

func (o ListOptions) page() int {
	if o.Page < 1 {
		return 1
	}
	return o.Page
}

// Skills lists skills. Three shapes are possible: with no limit (or a
// limit at the whole-collection threshold) the full set comes back with
// no pagination block; a search is always counted and windowed; an
// unfiltered windowed read additionally carries the category tallies
// the stats widgets consume.
func (e *Engine) Skills(ctx context.Context, opts ListOptions) (*ListResult, error) {
	seo := e.seoFor("Skills", "", "", "")

	if opts.Search != "" {
		f := db.ListFilter{Search: opts.Search}
		total, err := e.db.CountSkills(ctx, f)
		if err != nil {
			return nil, err
		}
		if opts.Limit <= 0 || opts.Limit >= allThreshold {
			skills, err := e.db.ListSkills(ctx, f)
			if err != nil {
				return nil, err
			}
			p := Pagination{Page: 1, Limit: total, Total: total, TotalPages: 1}
			return &ListResult{Data: skills, Pagination: &p, SEO: seo}, nil
		}
		page := opts.page()
		f.Limit = opts.Limit
		f.Offset = (page - 1) * opts.Limit
		skills, err := e.db.ListSkills(ctx, f)
		if err != nil {
			return nil, err
		}
		p := paginate(page, opts.Limit, total)
		return &ListResult{Data: skills, Pagination: &p, SEO: seo}, nil
	}

	if opts.Limit <= 0 || opts.Limit >= allThreshold {
		skills, err := e.db.ListSkills(ctx, db.ListFilter{})
		if err != nil {
			return nil, err
		}
		return &ListResult{Data: skills, SEO: seo}, nil
	}

	total, err := e.db.CountSkills(ctx, db.ListFilter{})
	if err != nil {
		return nil, err
	}
	raw, err := e.db.SkillCategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	page := opts.page()
	skills, err := e.db.ListSkills(ctx, db.ListFilter{Limit: opts.Limit, Offset: (page - 1) * opts.Limit})
	if err != nil {
		return nil, err
	}
	p := paginate(page, opts.Limit, total)
	return &ListResult{Data: skills, Pagination: &p, CategoryCounts: bucketCategories(raw), SEO: seo}, nil
}

// bucketCategories folds the raw per-category tallies into the five
// fixed stat buckets, matched by substring of the category label.
func bucketCategories(raw map[string]int) map[string]int {
	counts := map[string]int{
		"frontend": 0,
		"backend":  0,
		"tools":    0,
		"ai-ml":    0,
		"devops":   0,
	}
	for category, n := range raw {
		cat := strings.ToLower(category)
		switch {
		case strings.Contains(cat, "frontend"):
			counts["frontend"] += n
		case strings.Contains(cat, "backend"):
			counts["backend"] += n
		case strings.Contains(cat, "ai"), strings.Contains(cat, "ml"):
			counts["ai-ml"] += n
		case strings.Contains(cat, "devops"):
			counts["devops"] += n
		case strings.Contains(cat, "tools"):
			counts["tools"] += n
		}
	}
	return counts
}

// SkillsByCategory returns all skills whose category contains the given
// text, strongest first. Used by the assistant's skills tool.
func (e *Engine) SkillsByCategory(ctx context.Context, category string) ([]db.Skill, error) {
	if category == "" {
		return e.db.ListSkills(ctx, db.ListFilter{})
	}
	skills, err := e.db.ListSkills(ctx, db.ListFilter{Classify: category})
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// Projects lists projects: default window of ten, category and search
// filters combine, and a whole-collection limit skips pagination on the
// unfiltered path.
func (e *Engine) Projects(ctx context.Context, opts ListOptions) (*ListResult, error) {
	seo := e.seoFor("Projects", "", "", "")
	page := opts.page()
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	filtered := opts.Search != "" || (opts.Category != "" && opts.Category != "All")
	f := db.ListFilter{Search: opts.Search}
	if opts.Category != "" && opts.Category != "All" {
		f.Classify = opts.Category
	}

	if !filtered && limit >= allThreshold {
		projects, err := e.db.ListProjects(ctx, f)
		if err != nil {
			return nil, err
		}
		return &ListResult{Data: projects, SEO: seo}, nil
	}

	total, err := e.db.CountProjects(ctx, f)
	if err != nil {
		return nil, err
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit
	projects, err := e.db.ListProjects(ctx, f)
	if err != nil {
		return nil, err
	}
	p := paginate(page, limit, total)
	return &ListResult{Data: projects, Pagination: &p, SEO: seo}, nil
}

// FeaturedProjects returns the flagship projects, most recent first.
func (e *Engine) FeaturedProjects(ctx context.Context) ([]db.Project, error) {
	featured := true
	return e.db.ListProjects(ctx, db.ListFilter{Featured: &featured})
}

// Contributions lists open source contributions: default window of
// nine, with type and search filters.
func (e *Engine) Contributions(ctx context.Context, opts ListOptions) (*ListResult, error) {
	seo := e.seoFor("Contributions", "", "", "")
	page := opts.page()
	limit := opts.Limit
	if limit <= 0 {
		limit = 9
	}

	filtered := opts.Search != "" || (opts.Type != "" && opts.Type != "All")
	f := db.ListFilter{Search: opts.Search}
	if opts.Type != "" && opts.Type != "All" {
		f.Classify = opts.Type
	}

	if !filtered && limit >= allThreshold {
		contribs, err := e.db.ListContributions(ctx, f)
		if err != nil {
			return nil, err
		}
		return &ListResult{Data: contribs, SEO: seo}, nil
	}

	total, err := e.db.CountContributions(ctx, f)
	if err != nil {
		return nil, err
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit
	contribs, err := e.db.ListContributions(ctx, f)
	if err != nil {
		return nil, err
	}
	p := paginate(page, limit, total)
	return &ListResult{Data: contribs, Pagination: &p, SEO: seo}, nil
}

// Experience lists work history, always windowed, default nine per page.
func (e *Engine) Experience(ctx context.Context, opts ListOptions) (*ListResult, error) {
	page := opts.page()
	limit := opts.Limit
	if limit <= 0 {
		limit = 9
	}
	total, err := e.db.CountExperience(ctx, db.ListFilter{})
	if err != nil {
		return nil, err
	}
	entries, err := e.db.ListExperience(ctx, db.ListFilter{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	p := paginate(page, limit, total)
	return &ListResult{Data: entries, Pagination: &p, SEO: e.seoFor("Experience", "", "", "")}, nil
}

// Education lists education entries, always windowed, default nine per page.
func (e *Engine) Education(ctx context.Context, opts ListOptions) (*ListResult, error) {
	page := opts.page()
	limit := opts.Limit
	if limit <= 0 {
		limit = 9
	}
	total, err := e.db.CountEducation(ctx, db.ListFilter{})
	if err != nil {
		return nil, err
	}
	entries, err := e.db.ListEducation(ctx, db.ListFilter{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	p := paginate(page, limit, total)
	return &ListResult{Data: entries, Pagination: &p, SEO: e.seoFor("Education", "", "", "")}, nil
}

// Certifications returns the full certification list in insertion order.
func (e *Engine) Certifications(ctx context.Context) (*ListResult, error) {
	certs, err := e.db.ListCertifications(ctx)
	if err != nil {
		return nil, err
	}
	seo := SEO{
		Title:       "Certifications | " + e.owner,
		Description: "Professional certifications earned by " + e.owner + " in AI, MERN Stack, and web development.",
		Keywords:    "certifications, courses, professional development, AI, MERN Stack",
	}
	return &ListResult{Data: certs, SEO: seo}, nil
}

// Profile returns the hero/landing record. Data is null when the
// portfolio has not been populated yet; the SEO defaults still apply.
func (e *Engine) Profile(ctx context.Context) (*SingleResult, error) {
	p, err := e.db.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	var meta db.Meta
	var data any
	if p != nil {
		meta = p.Meta
		data = p
	}
	return &SingleResult{Data: data, SEO: e.seoFor("Home", meta.MetaTitle, meta.MetaDescription, meta.MetaKeywords)}, nil
}

// About returns the background-story record.
func (e *Engine) About(ctx context.Context) (*SingleResult, error) {
	a, err := e.db.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	var meta db.Meta
	var data any
	if a != nil {
		meta = a.Meta
		data = a
	}
	return &SingleResult{Data: data, SEO: e.seoFor("About", meta.MetaTitle, meta.MetaDescription, meta.MetaKeywords)}, nil
}

// Contact returns the contact record.
func (e *Engine) Contact(ctx context.Context) (*SingleResult, error) {
	c, err := e.db.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	var meta db.Meta
	var data any
	if c != nil {
		meta = c.Meta
		data = c
	}
	return &SingleResult{Data: data, SEO: e.seoFor("Contact", meta.MetaTitle, meta.MetaDescription, meta.MetaKeywords)}, nil
}

// SkillByID returns one skill, or nil when it does not exist.
func (e *Engine) SkillByID(ctx context.Context, id int64) (*SingleResult, error) {
	s, err := e.db.GetSkill(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return &SingleResult{Data: s, SEO: e.seoFor("Skills", s.MetaTitle, s.MetaDescription, s.MetaKeywords)}, nil
}

// ProjectByID returns one project, or nil when it does not exist.
func (e *Engine) ProjectByID(ctx context.Context, id int64) (*SingleResult, error) {
	p, err := e.db.GetProject(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return &SingleResult{Data: p, SEO: e.seoFor("Projects", p.MetaTitle, p.MetaDescription, p.MetaKeywords)}, nil
}

// ProjectByTitle returns the most recent project whose title contains
// the given text, or nil when nothing matches.
func (e *Engine) ProjectByTitle(ctx context.Context, title string) (*db.Project, error) {
	return e.db.FindProjectByTitle(ctx, title)
}

// ContributionByID returns one contribution, or nil when it does not exist.
func (e *Engine) ContributionByID(ctx context.Context, id int64) (*SingleResult, error) {
	c, err := e.db.GetContribution(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return &SingleResult{Data: c, SEO: e.seoFor("Contributions", c.MetaTitle, c.MetaDescription, c.MetaKeywords)}, nil
}

// ExperienceByID returns one work-history entry, or nil when it does not exist.
func (e *Engine) ExperienceByID(ctx context.Context, id int64) (*SingleResult, error) {
	x, err := e.db.GetExperience(ctx, id)
	if err != nil || x == nil {
		return nil, err
	}
	return &SingleResult{Data: x, SEO: e.seoFor("Experience", x.MetaTitle, x.MetaDescription, x.MetaKeywords)}, nil
}

// EducationByID returns one education entry, or nil when it does not exist.
func (e *Engine) EducationByID(ctx context.Context, id int64) (*SingleResult, error) {
	x, err := e.db.GetEducation(ctx, id)
	if err != nil || x == nil {
		return nil, err
	}
	return &SingleResult{Data: x, SEO: e.seoFor("Education", x.MetaTitle, x.MetaDescription, x.MetaKeywords)}, nil
}

// Search runs the cross-entity search.
func (e *Engine) Search(ctx context.Context, q string) ([]db.SearchHit, error) {
	return e.db.UnionSearch(ctx, q)
}

// SearchProjects runs the project-focused search, featured work first.
func (e *Engine) SearchProjects(ctx context.Context, q string) ([]db.Project, error) {
	return e.db.SearchProjects(ctx, q)
}

// Media lists attached assets, optionally narrowed to one entity.
func (e *Engine) Media(ctx context.Context, relatedType, relatedID string) ([]db.Media, error) {
	return e.db.ListMedia(ctx, relatedType, relatedID)
}

// ProjectsForAssistant backs the assistant's projects tool: featured
// beats search beats category, and with no filter at all only the ten
// most recent come back.
func (e *Engine) ProjectsForAssistant(ctx context.Context, featured bool, search, category string) ([]db.Project, error) {
	switch {
	case featured:
		return e.FeaturedProjects(ctx)
	case search != "":
		return e.db.ListProjects(ctx, db.ListFilter{Search: search})
	case category != "":
		f := db.ListFilter{Classify: category}
		projects, err := e.db.ListProjects(ctx, f)
		if err != nil {
			return nil, err
		}
		return projects, nil
	default:
		return e.db.ListProjects(ctx, db.ListFilter{Limit: 10})
	}
}

// AllExperience returns the full work history, most recent first.
func (e *Engine) AllExperience(ctx context.Context) ([]db.Experience, error) {
	return e.db.ListExperience(ctx, db.ListFilter{})
}

// AllEducation returns all education entries, most recent first.
func (e *Engine) AllEducation(ctx context.Context) ([]db.Education, error) {
	return e.db.ListEducation(ctx, db.ListFilter{})
}

// AllCertifications returns all certifications in insertion order.
func (e *Engine) AllCertifications(ctx context.Context) ([]db.Certification, error) {
	return e.db.ListCertifications(ctx)
}

// ContributionsByType returns contributions, optionally narrowed by
// kind (Documentation, Code, PR), most recent first.
func (e *Engine) ContributionsByType(ctx context.Context, kind string) ([]db.Contribution, error) {
	return e.db.ListContributions(ctx, db.ListFilter{Classify: kind})
}

// RawProfile returns the profile record without the envelope.
func (e *Engine) RawProfile(ctx context.Context) (*db.Profile, error) {
	return e.db.GetProfile(ctx)
}

// RawAbout returns the about record without the envelope.
func (e *Engine) RawAbout(ctx context.Context) (*db.About, error) {
	return e.db.GetAbout(ctx)
}

// RawContact returns the contact record without the envelope.
func (e *Engine) RawContact(ctx context.Context) (*db.Contact, error) {
	return e.db.GetContact(ctx)
}

// RawProject returns one project without the envelope.
func (e *Engine) RawProject(ctx context.Context, id int64) (*db.Project, error) {
	return e.db.GetProject(ctx, id)
}
