package db

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func ctx() context.Context { return context.Background() }

// --- Singletons ---

func TestUpsertProfileCreateThenUpdate(t *testing.T) {
	d := openTestDB(t)

	id1, err := d.UpsertProfile(ctx(), Profile{Name: "First", TypedRoles: []string{"Engineer"}})
	if err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}

	id2, err := d.UpsertProfile(ctx(), Profile{Name: "Second"})
	if err != nil {
		t.Fatalf("second UpsertProfile: %v", err)
	}
	if id1 != id2 {
		t.Errorf("expected update of row %d, got new row %d", id1, id2)
	}

	var n int
	if err := d.conn.QueryRow("SELECT COUNT(*) FROM home").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 row after upsert, got %d", n)
	}

	p, err := d.GetProfile(ctx())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p == nil || p.Name != "Second" {
		t.Errorf("expected updated profile, got %+v", p)
	}
}

func TestGetProfileEmpty(t *testing.T) {
	d := openTestDB(t)
	p, err := d.GetProfile(ctx())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for empty table, got %+v", p)
	}
}

func TestUpsertContactRoundTrip(t *testing.T) {
	d := openTestDB(t)

	items := json.RawMessage(`[{"title":"Email","value":"a@b.c"}]`)
	if _, err := d.UpsertContact(ctx(), Contact{ContactItems: items}); err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}

	c, err := d.GetContact(ctx())
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if c == nil {
		t.Fatal("expected contact record")
	}
	if string(c.ContactItems) != string(items) {
		t.Errorf("contact items changed: got %s", c.ContactItems)
	}
	if string(c.SocialLinks) != "[]" {
		t.Errorf("expected empty social links [], got %s", c.SocialLinks)
	}
}

// --- Projects ---

func TestCreateAndGetProject(t *testing.T) {
	d := openTestDB(t)

	id, err := d.CreateProject(ctx(), Project{
		Title:        "AI Agent Platform",
		Description:  "autonomous agents",
		Technologies: []string{"Go", "SQLite"},
		Category:     "AI Platform",
		Featured:     true,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	p, err := d.GetProject(ctx(), id)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if p == nil {
		t.Fatal("expected project")
	}
	if p.Title != "AI Agent Platform" {
		t.Errorf("expected title %q, got %q", "AI Agent Platform", p.Title)
	}
	if len(p.Technologies) != 2 || p.Technologies[0] != "Go" {
		t.Errorf("technologies round trip failed: %v", p.Technologies)
	}
	if !p.Featured {
		t.Error("expected featured project")
	}
	if p.Color != "primary" {
		t.Errorf("expected default color primary, got %q", p.Color)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	d := openTestDB(t)
	p, err := d.GetProject(ctx(), 999)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for missing id, got %+v", p)
	}
}

func TestListProjectsFilterConjunction(t *testing.T) {
	d := openTestDB(t)

	d.CreateProject(ctx(), Project{Title: "Alpha Store", Category: "Web", Featured: true})
	d.CreateProject(ctx(), Project{Title: "Alpha Agent", Category: "AI", Featured: true})
	d.CreateProject(ctx(), Project{Title: "Beta Agent", Category: "AI"})

	featured := true
	got, err := d.ListProjects(ctx(), ListFilter{Search: "alpha", Classify: "AI", Featured: &featured})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 project matching all filters, got %d", len(got))
	}
	if got[0].Title != "Alpha Agent" {
		t.Errorf("expected Alpha Agent, got %q", got[0].Title)
	}
}

func TestListProjectsPaginationWindow(t *testing.T) {
	d := openTestDB(t)

	titles := []string{"one", "two", "three", "four", "five"}
	for _, title := range titles {
		d.CreateProject(ctx(), Project{Title: title})
	}

	page2, err := d.ListProjects(ctx(), ListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(page2))
	}
	// Newest first: page 2 holds the third and second inserts.
	if page2[0].Title != "three" || page2[1].Title != "two" {
		t.Errorf("unexpected window: %q, %q", page2[0].Title, page2[1].Title)
	}

	total, err := d.CountProjects(ctx(), ListFilter{})
	if err != nil {
		t.Fatalf("CountProjects: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
}

func TestFindProjectByTitleMostRecent(t *testing.T) {
	d := openTestDB(t)

	d.CreateProject(ctx(), Project{Title: "Chat Assistant v1"})
	d.CreateProject(ctx(), Project{Title: "Chat Assistant v2"})

	p, err := d.FindProjectByTitle(ctx(), "chat assistant")
	if err != nil {
		t.Fatalf("FindProjectByTitle: %v", err)
	}
	if p == nil {
		t.Fatal("expected a match")
	}
	if p.Title != "Chat Assistant v2" {
		t.Errorf("expected most recent match, got %q", p.Title)
	}

	none, err := d.FindProjectByTitle(ctx(), "nonexistent")
	if err != nil {
		t.Fatalf("FindProjectByTitle: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for no match, got %+v", none)
	}
}

func TestSearchProjectsFeaturedFirst(t *testing.T) {
	d := openTestDB(t)

	d.CreateProject(ctx(), Project{Title: "agent one"})
	d.CreateProject(ctx(), Project{Title: "agent two", Featured: true})
	d.CreateProject(ctx(), Project{Title: "agent three"})

	got, err := d.SearchProjects(ctx(), "agent")
	if err != nil {
		t.Fatalf("SearchProjects: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	if got[0].Title != "agent two" {
		t.Errorf("expected featured project first, got %q", got[0].Title)
	}
}

func TestMalformedTechnologiesTolerated(t *testing.T) {
	d := openTestDB(t)

	id, _ := d.CreateProject(ctx(), Project{Title: "broken"})
	if _, err := d.conn.Exec("UPDATE projects SET technologies = 'not json' WHERE id = ?", id); err != nil {
		t.Fatal(err)
	}

	p, err := d.GetProject(ctx(), id)
	if err != nil {
		t.Fatalf("expected malformed list to be tolerated, got %v", err)
	}
	if p == nil {
		t.Fatal("expected record despite malformed field")
	}
	if len(p.Technologies) != 0 {
		t.Errorf("expected empty technologies, got %v", p.Technologies)
	}
}

// --- Skills ---

func TestListSkillsCategorySubstring(t *testing.T) {
	d := openTestDB(t)

	d.CreateSkill(ctx(), Skill{Name: "React.js", Category: "Frontend Engineering"})
	d.CreateSkill(ctx(), Skill{Name: "Node.js", Category: "Backend Engineering"})

	got, err := d.ListSkills(ctx(), ListFilter{Classify: "frontend"})
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(got) != 1 || got[0].Name != "React.js" {
		t.Errorf("expected React.js only, got %+v", got)
	}
}

func TestTopSkillsByLevel(t *testing.T) {
	d := openTestDB(t)

	d.CreateSkill(ctx(), Skill{Name: "Weak", Level: "60%"})
	d.CreateSkill(ctx(), Skill{Name: "Strong", Level: "95%"})
	d.CreateSkill(ctx(), Skill{Name: "Middle", Level: "80%"})

	got, err := d.TopSkills(ctx(), 2)
	if err != nil {
		t.Fatalf("TopSkills: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(got))
	}
	if got[0].Name != "Strong" || got[1].Name != "Middle" {
		t.Errorf("expected level ordering, got %q, %q", got[0].Name, got[1].Name)
	}
}

func TestSkillCategoryCounts(t *testing.T) {
	d := openTestDB(t)

	d.CreateSkill(ctx(), Skill{Name: "a", Category: "Frontend Engineering"})
	d.CreateSkill(ctx(), Skill{Name: "b", Category: "Frontend Engineering"})
	d.CreateSkill(ctx(), Skill{Name: "c", Category: "Backend Engineering"})

	counts, err := d.SkillCategoryCounts(ctx())
	if err != nil {
		t.Fatalf("SkillCategoryCounts: %v", err)
	}
	if counts["Frontend Engineering"] != 2 {
		t.Errorf("expected 2 frontend skills, got %d", counts["Frontend Engineering"])
	}
	if counts["Backend Engineering"] != 1 {
		t.Errorf("expected 1 backend skill, got %d", counts["Backend Engineering"])
	}
}

// --- Contributions ---

func TestListContributionsTypeExact(t *testing.T) {
	d := openTestDB(t)

	d.CreateContribution(ctx(), Contribution{Title: "docs fix", Type: "Documentation"})
	d.CreateContribution(ctx(), Contribution{Title: "code fix", Type: "Code"})

	got, err := d.ListContributions(ctx(), ListFilter{Classify: "Code"})
	if err != nil {
		t.Fatalf("ListContributions: %v", err)
	}
	if len(got) != 1 || got[0].Title != "code fix" {
		t.Errorf("expected code fix only, got %+v", got)
	}
}

func TestListContributionsSearchSpansIssuer(t *testing.T) {
	d := openTestDB(t)

	d.CreateContribution(ctx(), Contribution{Title: "a", Issuer: "OpenAI", Type: "Documentation"})
	d.CreateContribution(ctx(), Contribution{Title: "b", Issuer: "n8n", Type: "Documentation"})

	got, err := d.ListContributions(ctx(), ListFilter{Search: "openai"})
	if err != nil {
		t.Fatalf("ListContributions: %v", err)
	}
	if len(got) != 1 || got[0].Issuer != "OpenAI" {
		t.Errorf("expected OpenAI contribution, got %+v", got)
	}
}

// --- Certifications ---

func TestListCertificationsInsertionOrder(t *testing.T) {
	d := openTestDB(t)

	d.CreateCertification(ctx(), Certification{Title: "first", Issuer: "A"})
	d.CreateCertification(ctx(), Certification{Title: "second", Issuer: "B"})

	got, err := d.ListCertifications(ctx())
	if err != nil {
		t.Fatalf("ListCertifications: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 certifications, got %d", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Errorf("expected insertion order, got %q, %q", got[0].Title, got[1].Title)
	}
}

// --- Education ---

func TestEducationHighlightsRoundTrip(t *testing.T) {
	d := openTestDB(t)

	id, err := d.CreateEducation(ctx(), Education{
		Institution: "Test College",
		Degree:      "BSc",
		Highlights:  []string{"Math", "CS"},
	})
	if err != nil {
		t.Fatalf("CreateEducation: %v", err)
	}

	e, err := d.GetEducation(ctx(), id)
	if err != nil {
		t.Fatalf("GetEducation: %v", err)
	}
	if e == nil {
		t.Fatal("expected education entry")
	}
	if len(e.Highlights) != 2 || e.Highlights[1] != "CS" {
		t.Errorf("highlights round trip failed: %v", e.Highlights)
	}
}

// --- Media ---

func TestListMediaRelatedFilters(t *testing.T) {
	d := openTestDB(t)

	d.CreateMedia(ctx(), Media{Type: "image", URL: "u1", RelatedType: "project", RelatedID: "1"})
	d.CreateMedia(ctx(), Media{Type: "image", URL: "u2", RelatedType: "project", RelatedID: "2"})
	d.CreateMedia(ctx(), Media{Type: "image", URL: "u3", RelatedType: "skill", RelatedID: "1"})

	all, err := d.ListMedia(ctx(), "", "")
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 media rows, got %d", len(all))
	}

	projects, err := d.ListMedia(ctx(), "project", "")
	if err != nil {
		t.Fatalf("ListMedia(project): %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 project media rows, got %d", len(projects))
	}

	one, err := d.ListMedia(ctx(), "project", "2")
	if err != nil {
		t.Fatalf("ListMedia(project, 2): %v", err)
	}
	if len(one) != 1 || one[0].URL != "u2" {
		t.Errorf("expected u2, got %+v", one)
	}
}

// --- Union search ---

func TestUnionSearchKindPriorityAndCap(t *testing.T) {
	d := openTestDB(t)

	for i := 0; i < 8; i++ {
		d.CreateProject(ctx(), Project{Title: "widget project", Description: "d"})
	}
	d.CreateSkill(ctx(), Skill{Name: "widget skill", Category: "Tools"})
	d.CreateSkill(ctx(), Skill{Name: "widget skill 2", Category: "Tools"})
	d.CreateExperience(ctx(), Experience{Company: "Widget Corp", Role: "Engineer"})
	d.CreateContribution(ctx(), Contribution{Title: "widget docs", Type: "Documentation"})

	hits, err := d.UnionSearch(ctx(), "widget")
	if err != nil {
		t.Fatalf("UnionSearch: %v", err)
	}
	if len(hits) != 10 {
		t.Fatalf("expected cap of 10 hits, got %d", len(hits))
	}
	for i := 0; i < 8; i++ {
		if hits[i].Type != "project" {
			t.Fatalf("expected hit %d to be a project, got %s", i, hits[i].Type)
		}
	}
	// Projects fill eight slots, so only the two skills fit; experience
	// and contribution matches are crowded out.
	if hits[8].Type != "skill" || hits[9].Type != "skill" {
		t.Errorf("expected skills in remaining slots, got %s, %s", hits[8].Type, hits[9].Type)
	}
}

func TestUnionSearchContributionByProjectName(t *testing.T) {
	d := openTestDB(t)
	d.CreateContribution(ctx(), Contribution{
		Title: "Fixed flaky CI pipeline", ProjectName: "zephyr-lib", Type: "Open Source",
	})
	// Description is displayed but not searched for contributions.
	d.CreateContribution(ctx(), Contribution{
		Title: "Docs pass", Description: "zephyr internals", Type: "Open Source",
	})

	hits, err := d.UnionSearch(ctx(), "zephyr")
	if err != nil {
		t.Fatalf("UnionSearch: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit via project name, got %d", len(hits))
	}
	if hits[0].Type != "contribution" || hits[0].Name != "Fixed flaky CI pipeline" {
		t.Errorf("unexpected hit: %+v", hits[0])
	}
}

func TestUnionSearchEmptyResult(t *testing.T) {
	d := openTestDB(t)
	hits, err := d.UnionSearch(ctx(), "nothing-here")
	if err != nil {
		t.Fatalf("UnionSearch: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %d", len(hits))
	}
}

// --- Seed ---

func TestSeedIdempotent(t *testing.T) {
	d := openTestDB(t)

	if err := d.Seed(ctx()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := d.Seed(ctx()); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var n int
	if err := d.conn.QueryRow("SELECT COUNT(*) FROM home").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 profile after double seed, got %d", n)
	}

	skills, err := d.ListSkills(ctx(), ListFilter{})
	if err != nil {
		t.Fatalf("ListSkills: %v", err)
	}
	if len(skills) != 22 {
		t.Errorf("expected 22 seeded skills, got %d", len(skills))
	}

	featured := true
	flagship, err := d.ListProjects(ctx(), ListFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(flagship) != 3 {
		t.Errorf("expected 3 featured projects, got %d", len(flagship))
	}
}
