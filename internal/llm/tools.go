package llm

// AgentTools is the fixed catalogue the portfolio assistant can call.
// Read-only except schedule_meeting, which only acknowledges a request.
var AgentTools = []Tool{
	{
		Name:        "get_profile",
		Description: "Get the complete profile information - name, bio, greeting, typed roles, social links, CV download link.",
		Parameters:  obj(nil),
	},
	{
		Name:        "get_about",
		Description: "Get the detailed about information - background story, values, mission.",
		Parameters:  obj(nil),
	},
	{
		Name:        "get_skills",
		Description: "Get skills. Can filter by category (Frontend, Backend, AI/ML, DevOps, Tools) or get all skills.",
		Parameters: obj(map[string]any{
			"category": prop("string", "Filter skills by category: Frontend, Backend, AI/ML, DevOps, Tools, Database"),
		}),
	},
	{
		Name:        "get_projects",
		Description: "Get projects. Can filter by featured status, search by title or tech stack, or filter by category.",
		Parameters: obj(map[string]any{
			"featured": prop("boolean", "Get only featured/flagship projects"),
			"search":   prop("string", "Search projects by title or technology"),
			"category": prop("string", "Filter by project category"),
		}),
	},
	{
		Name:        "get_project_details",
		Description: "Get detailed information about a specific project by ID or title.",
		Parameters: obj(map[string]any{
			"project_id":    prop("integer", "Project ID"),
			"project_title": prop("string", "Project title to search"),
		}),
	},
	{
		Name:        "get_experience",
		Description: "Get work experience - companies, roles, tech stack used at each role.",
		Parameters:  obj(nil),
	},
	{
		Name:        "get_education",
		Description: "Get education background - degrees, institutions, achievements.",
		Parameters:  obj(nil),
	},
	{
		Name:        "get_certifications",
		Description: "Get professional certifications and completed courses.",
		Parameters:  obj(nil),
	},
	{
		Name:        "get_contributions",
		Description: "Get open source contributions - documentation, PRs, and code contributed to projects like OpenAI and n8n.",
		Parameters: obj(map[string]any{
			"type": prop("string", "Filter by type: Documentation, Code, PR"),
		}),
	},
	{
		Name:        "get_contact",
		Description: "Get contact information - email, phone, social links, location.",
		Parameters:  obj(nil),
	},
	{
		Name:        "search_portfolio",
		Description: "Search the entire portfolio - projects, skills, experience, contributions. Use when the user asks broadly.",
		Parameters: objReq(map[string]any{
			"query": prop("string", "Search query to find matching items"),
		}, "query"),
	},
	{
		Name:        "search_projects",
		Description: "Search specifically for projects by title, technology, or description.",
		Parameters: objReq(map[string]any{
			"query": prop("string", "Search term for finding projects"),
		}, "query"),
	},
	{
		Name:        "get_tech_stack",
		Description: "Get the primary tech stack and recommendations based on project requirements.",
		Parameters: obj(map[string]any{
			"project_type": prop("string", "Type of project to get tech stack recommendations for"),
		}),
	},
	{
		Name:        "get_availability",
		Description: "Get the current availability status for new opportunities.",
		Parameters:  obj(nil),
	},
	{
		Name:        "schedule_meeting",
		Description: "Schedule a meeting. Collect meeting details and provide contact instructions for scheduling.",
		Parameters: obj(map[string]any{
			"date":  prop("string", "Preferred meeting date"),
			"time":  prop("string", "Preferred meeting time"),
			"topic": prop("string", "Meeting topic or agenda"),
			"name":  prop("string", "Requester name"),
			"email": prop("string", "Requester email"),
		}),
	},
}

// Helper functions for building JSON Schema objects.

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func obj(properties map[string]any) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func objReq(properties map[string]any, required ...string) map[string]any {
	s := obj(properties)
	s["required"] = required
	return s
}
