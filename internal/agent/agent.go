package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hamid/folio/internal/llm"
	"github.com/hamid/folio/internal/query"
)

const (
	maxToolRounds = 8
	toolTimeout   = 15 * time.Second
)

// Agent is the portfolio assistant: a bounded tool-calling loop over
// the read-only query engine.
type Agent struct {
	engine           *query.Engine
	client           llm.Client
	systemPrompt     string
	contactEmail     string
	MaxContextTokens int
}

func New(engine *query.Engine, client llm.Client, contactEmail string, maxContextTokens int) *Agent {
	return &Agent{
		engine:           engine,
		client:           client,
		systemPrompt:     llm.PortfolioPrompt(engine.Owner(), contactEmail),
		contactEmail:     contactEmail,
		MaxContextTokens: maxContextTokens,
	}
}

// Run takes a visitor message, runs the tool-calling loop, and returns
// the final text response.
func (a *Agent) Run(ctx context.Context, history []llm.Message, userMessage string) (string, []llm.Message, error) {
	messages := make([]llm.Message, len(history))
	copy(messages, history)
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	// Fixed costs: system prompt + tool definitions.
	fixedTokens := llm.EstimateTokens(a.systemPrompt) + llm.EstimateToolsTokens(llm.AgentTools)
	messageBudget := a.MaxContextTokens - fixedTokens
	if messageBudget < 1000 {
		messageBudget = 1000 // floor so we always have room for at least the current turn
	}

	for i := 0; i < maxToolRounds; i++ {
		trimmed := llm.TrimMessages(messages, messageBudget)
		if len(trimmed) < len(messages) {
			log.Printf("context trimmed: %d -> %d messages", len(messages), len(trimmed))
		}
		resp, err := a.client.Chat(ctx, a.systemPrompt, trimmed, llm.AgentTools)
		if err != nil {
			return "", nil, fmt.Errorf("llm chat: %w", err)
		}

		// No tool calls means we have a final answer.
		if len(resp.ToolCalls) == 0 {
			messages = append(messages, llm.Message{Role: "assistant", Content: resp.Content})
			return resp.Content, messages, nil
		}

		messages = append(messages, llm.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, tc := range resp.ToolCalls {
			result := a.executeTool(ctx, tc.Name, tc.Params)
			log.Printf("tool %s -> %s", tc.Name, truncate(result, 200))
			messages = append(messages, llm.Message{
				Role:       "user",
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}

	return "I hit the maximum number of tool calls. Here's what I have so far.", messages, nil
}

func (a *Agent) executeTool(ctx context.Context, name string, params map[string]any) string {
	tool, ok := llm.FindTool(name)
	if !ok {
		return marshalResult(map[string]any{"error": "unknown tool: " + name}, nil)
	}
	if err := llm.ValidateParams(tool, params); err != nil {
		return marshalResult(nil, err)
	}

	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	var result any
	var err error

	switch name {
	case "get_profile":
		p, e := a.engine.RawProfile(ctx)
		if e != nil {
			err = e
		} else if p == nil {
			result = map[string]any{"error": "profile not found"}
		} else {
			result = p
		}

	case "get_about":
		ab, e := a.engine.RawAbout(ctx)
		if e != nil {
			err = e
		} else if ab == nil {
			result = map[string]any{"error": "about not found"}
		} else {
			result = ab
		}

	case "get_skills":
		category, _ := getString(params, "category")
		result, err = a.engine.SkillsByCategory(ctx, category)

	case "get_projects":
		featured, _ := getBool(params, "featured")
		search, _ := getString(params, "search")
		category, _ := getString(params, "category")
		result, err = a.engine.ProjectsForAssistant(ctx, featured, search, category)

	case "get_project_details":
		if id, ok := getInt(params, "project_id"); ok {
			p, e := a.engine.RawProject(ctx, id)
			if e != nil {
				err = e
			} else if p == nil {
				result = map[string]any{"error": "project not found"}
			} else {
				result = p
			}
		} else if title, ok := getString(params, "project_title"); ok && title != "" {
			p, e := a.engine.ProjectByTitle(ctx, title)
			if e != nil {
				err = e
			} else if p == nil {
				result = map[string]any{"error": "project not found"}
			} else {
				result = p
			}
		} else {
			result = map[string]any{"error": "provide either project_id or project_title"}
		}

	case "get_experience":
		result, err = a.engine.AllExperience(ctx)

	case "get_education":
		result, err = a.engine.AllEducation(ctx)

	case "get_certifications":
		result, err = a.engine.AllCertifications(ctx)

	case "get_contributions":
		kind, _ := getString(params, "type")
		result, err = a.engine.ContributionsByType(ctx, kind)

	case "get_contact":
		c, e := a.engine.RawContact(ctx)
		if e != nil {
			err = e
		} else if c == nil {
			result = map[string]any{"error": "contact not found"}
		} else {
			result = c
		}

	case "search_portfolio":
		q, _ := getString(params, "query")
		hits, e := a.engine.Search(ctx, q)
		if e != nil {
			err = e
		} else if len(hits) == 0 {
			result = map[string]any{"message": "no results found"}
		} else {
			result = hits
		}

	case "search_projects":
		q, _ := getString(params, "query")
		projects, e := a.engine.SearchProjects(ctx, q)
		if e != nil {
			err = e
		} else if len(projects) == 0 {
			result = map[string]any{"message": "no matching projects found"}
		} else {
			result = projects
		}

	case "get_tech_stack":
		result, err = a.engine.Stack(ctx)

	case "get_availability":
		result = map[string]any{
			"status":          "Available for new opportunities",
			"type":            "Full-time / Contract / Freelance",
			"response_time":   "Within 24-48 hours",
			"preferred_roles": []string{"Full Stack Developer", "AI Engineer", "Technical Lead"},
		}

	case "schedule_meeting":
		topic, _ := getString(params, "topic")
		if topic == "" {
			topic = "Portfolio Discussion"
		}
		result = map[string]any{
			"reference": uuid.NewString(),
			"message":   "Meeting request received! To finalize, please:",
			"instructions": []string{
				"1. Send an email to " + a.contactEmail,
				"2. Include your name, preferred date/time, and meeting topic",
				"3. I'll confirm within 24 hours",
			},
			"email":   a.contactEmail,
			"subject": "Meeting Request: " + topic,
		}
	}

	return marshalResult(result, err)
}

func marshalResult(result any, err error) string {
	if err != nil {
		result = map[string]any{"error": err.Error()}
	}
	b, _ := json.Marshal(result) // results are plain maps, slices, and structs
	return string(b)
}

// Param extraction helpers. LLMs send numbers as float64 in JSON.
func getInt(params map[string]any, key string) (int64, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func getString(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getBool(params map[string]any, key string) (bool, bool) {
	v, ok := params[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
