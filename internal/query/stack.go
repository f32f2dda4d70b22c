package query

import (
	"context"
	"strings"
)

// TechStack groups the strongest skills by discipline, with canned
// stack recommendations for common project shapes.
type TechStack struct {
	Frontend        []string          `json:"frontend"`
	Backend         []string          `json:"backend"`
	Database        []string          `json:"database"`
	AIML            []string          `json:"ai_ml"`
	Tools           []string          `json:"tools"`
	Recommendations map[string]string `json:"recommendations"`
}

// Stack builds the tech-stack summary from the twenty strongest skills.
func (e *Engine) Stack(ctx context.Context) (*TechStack, error) {
	skills, err := e.db.TopSkills(ctx, 20)
	if err != nil {
		return nil, err
	}
	stack := &TechStack{
		Frontend: []string{},
		Backend:  []string{},
		Database: []string{},
		AIML:     []string{},
		Tools:    []string{},
		Recommendations: map[string]string{
			"mern":      "MongoDB, Express, React, Node.js - Great for full-stack web apps",
			"nextjs":    "Next.js + PostgreSQL - Excellent for SEO and performance",
			"ai_agents": "OpenAI Agent SDK + LangChain + Vector DB - For AI-powered applications",
		},
	}
	for _, s := range skills {
		cat := strings.ToLower(s.Category)
		switch {
		case strings.Contains(cat, "frontend"):
			stack.Frontend = append(stack.Frontend, s.Name)
		case strings.Contains(cat, "database"):
			stack.Database = append(stack.Database, s.Name)
		case strings.Contains(cat, "backend"):
			stack.Backend = append(stack.Backend, s.Name)
		case strings.Contains(cat, "ai"), strings.Contains(cat, "ml"):
			stack.AIML = append(stack.AIML, s.Name)
		default:
			stack.Tools = append(stack.Tools, s.Name)
		}
	}
	return stack, nil
}
