package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamid/folio/internal/db"
)

func newTestEngine(t *testing.T) (*Engine, *db.DB) {
	t.Helper()
	d, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return New(d, "Muhammad Hamid Raza"), d
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                 string
		page, limit, total   int
		wantPages            int
		wantNext, wantPrev   bool
	}{
		{"first of many", 1, 10, 25, 3, true, false},
		{"middle", 2, 10, 25, 3, true, true},
		{"last", 3, 10, 25, 3, false, true},
		{"exact fit", 2, 5, 10, 2, false, true},
		{"empty", 1, 10, 0, 0, false, false},
		{"single page", 1, 9, 3, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginate(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrev, p.HasPrevPage)
		})
	}
}

func TestSkillsNoLimitReturnsAll(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	for i := 0; i < 12; i++ {
		_, err := d.CreateSkill(c, db.Skill{Name: "s", Category: "Tools & DevOps"})
		require.NoError(t, err)
	}

	res, err := e.Skills(c, ListOptions{})
	require.NoError(t, err)
	assert.Nil(t, res.Pagination, "whole-collection read carries no pagination")
	assert.Nil(t, res.CategoryCounts)
	assert.Len(t, res.Data.([]db.Skill), 12)
}

func TestSkillsWholeCollectionLimit(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	for i := 0; i < 5; i++ {
		d.CreateSkill(c, db.Skill{Name: "s", Category: "Tools"})
	}

	res, err := e.Skills(c, ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.Nil(t, res.Pagination)
	assert.Len(t, res.Data.([]db.Skill), 5)
}

func TestSkillsPaginatedCarriesCategoryCounts(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateSkill(c, db.Skill{Name: "a", Category: "Frontend Engineering"})
	d.CreateSkill(c, db.Skill{Name: "b", Category: "Backend Engineering"})
	d.CreateSkill(c, db.Skill{Name: "c", Category: "Agentic AI & AI Systems"})
	d.CreateSkill(c, db.Skill{Name: "d", Category: "Tools & DevOps"})

	res, err := e.Skills(c, ListOptions{Limit: 2, Page: 1})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 4, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	require.NotNil(t, res.CategoryCounts)
	assert.Equal(t, 1, res.CategoryCounts["frontend"])
	assert.Equal(t, 1, res.CategoryCounts["backend"])
	assert.Equal(t, 1, res.CategoryCounts["ai-ml"])
	// "Tools & DevOps" matches the devops bucket before tools.
	assert.Equal(t, 1, res.CategoryCounts["devops"])
	assert.Equal(t, 0, res.CategoryCounts["tools"])
}

func TestSkillsSearchAlwaysCounted(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateSkill(c, db.Skill{Name: "React.js", Category: "Frontend Engineering"})
	d.CreateSkill(c, db.Skill{Name: "Node.js", Category: "Backend Engineering"})

	res, err := e.Skills(c, ListOptions{Search: "react"})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination, "searched reads always carry a pagination block")
	assert.Equal(t, 1, res.Pagination.Total)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	assert.Nil(t, res.CategoryCounts, "counts only appear on the unfiltered path")
	assert.Len(t, res.Data.([]db.Skill), 1)
}

func TestProjectsDefaultWindow(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	for i := 0; i < 12; i++ {
		d.CreateProject(c, db.Project{Title: "p"})
	}

	res, err := e.Projects(c, ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 10, res.Pagination.Limit)
	assert.Equal(t, 12, res.Pagination.Total)
	assert.True(t, res.Pagination.HasNextPage)
	assert.Len(t, res.Data.([]db.Project), 10)
}

func TestProjectsEscapeHatch(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	for i := 0; i < 12; i++ {
		d.CreateProject(c, db.Project{Title: "p"})
	}

	res, err := e.Projects(c, ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.Nil(t, res.Pagination)
	assert.Len(t, res.Data.([]db.Project), 12)
}

func TestProjectsCategoryAllIsIgnored(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateProject(c, db.Project{Title: "a", Category: "Web"})
	d.CreateProject(c, db.Project{Title: "b", Category: "AI"})

	res, err := e.Projects(c, ListOptions{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, res.Data.([]db.Project), 2)

	res, err = e.Projects(c, ListOptions{Category: "AI"})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 1, res.Pagination.Total)
	assert.Len(t, res.Data.([]db.Project), 1)
}

func TestFeaturedProjectsNewestFirst(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateProject(c, db.Project{Title: "old", Featured: true})
	d.CreateProject(c, db.Project{Title: "plain"})
	d.CreateProject(c, db.Project{Title: "new", Featured: true})

	projects, err := e.FeaturedProjects(c)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "new", projects[0].Title)
	assert.Equal(t, "old", projects[1].Title)
}

func TestContributionsDefaultWindowAndTypeFilter(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	for i := 0; i < 10; i++ {
		d.CreateContribution(c, db.Contribution{Title: "doc", Type: "Documentation"})
	}
	d.CreateContribution(c, db.Contribution{Title: "code", Type: "Code"})

	res, err := e.Contributions(c, ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 9, res.Pagination.Limit)
	assert.Equal(t, 11, res.Pagination.Total)

	res, err = e.Contributions(c, ListOptions{Type: "Code"})
	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 1, res.Pagination.Total)
}

func TestSEODefaults(t *testing.T) {
	e, _ := newTestEngine(t)

	seo := e.seoFor("Projects", "", "", "")
	assert.Equal(t, "Projects | Muhammad Hamid Raza", seo.Title)
	assert.Equal(t, "Learn more about my projects and professional journey.", seo.Description)
	assert.Equal(t, "", seo.Keywords)

	seo = e.seoFor("Projects", "Custom", "Custom desc", "k1, k2")
	assert.Equal(t, "Custom", seo.Title)
	assert.Equal(t, "Custom desc", seo.Description)
	assert.Equal(t, "k1, k2", seo.Keywords)
}

func TestProfileEnvelopeWhenEmpty(t *testing.T) {
	e, _ := newTestEngine(t)

	res, err := e.Profile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.Data)
	assert.Equal(t, "Home | Muhammad Hamid Raza", res.SEO.Title)
}

func TestProfileEnvelopeUsesRecordMeta(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	_, err := d.UpsertProfile(c, db.Profile{
		Name: "Hamid",
		Meta: db.Meta{MetaTitle: "Custom Home Title"},
	})
	require.NoError(t, err)

	res, err := e.Profile(c)
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	assert.Equal(t, "Custom Home Title", res.SEO.Title)
}

func TestCertificationsEnvelope(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateCertification(c, db.Certification{Title: "cert", Issuer: "X"})

	res, err := e.Certifications(c)
	require.NoError(t, err)
	assert.Nil(t, res.Pagination)
	assert.Equal(t, "Certifications | Muhammad Hamid Raza", res.SEO.Title)
	assert.Len(t, res.Data.([]db.Certification), 1)
}

func TestSkillByIDNotFound(t *testing.T) {
	e, _ := newTestEngine(t)
	res, err := e.SkillByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestStackBuckets(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateSkill(c, db.Skill{Name: "React.js", Category: "Frontend Engineering", Level: "95%"})
	d.CreateSkill(c, db.Skill{Name: "Node.js", Category: "Backend Engineering", Level: "90%"})
	d.CreateSkill(c, db.Skill{Name: "OpenAI Agent SDK", Category: "Agentic AI & AI Systems", Level: "92%"})
	d.CreateSkill(c, db.Skill{Name: "Git", Category: "Tools & DevOps", Level: "92%"})
	d.CreateSkill(c, db.Skill{Name: "PostgreSQL", Category: "Database", Level: "85%"})

	stack, err := e.Stack(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"React.js"}, stack.Frontend)
	assert.Equal(t, []string{"Node.js"}, stack.Backend)
	assert.Equal(t, []string{"PostgreSQL"}, stack.Database)
	assert.Equal(t, []string{"OpenAI Agent SDK"}, stack.AIML)
	assert.Equal(t, []string{"Git"}, stack.Tools)
	assert.Contains(t, stack.Recommendations, "mern")
}

func TestProjectsForAssistantFilterPriority(t *testing.T) {
	e, d := newTestEngine(t)
	c := context.Background()
	d.CreateProject(c, db.Project{Title: "plain"})
	d.CreateProject(c, db.Project{Title: "star", Featured: true})

	got, err := e.ProjectsForAssistant(c, true, "plain", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "star", got[0].Title, "featured wins over search")

	got, err = e.ProjectsForAssistant(c, false, "plain", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "plain", got[0].Title)
}
