package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// Seed populates an empty database with the initial portfolio content.
// It is idempotent: if a profile record already exists, nothing is
// written.
func (d *DB) Seed(ctx context.Context) error {
	var n int
	if err := d.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM home").Scan(&n); err != nil {
		return fmt.Errorf("checking for existing data: %w", err)
	}
	if n > 0 {
		return nil
	}
	log.Println("seeding portfolio data")

	if _, err := d.UpsertProfile(ctx, Profile{
		Greeting: "Hello, I'm",
		Name:     "Muhammad Hamid Raza",
		Tagline:  "I build AI-powered systems where agents don't just chat, they reason, act, and automate.",
		TypedRoles: []string{
			"Agentic AI Engineer", "Full-Stack Developer",
			"AI Systems Architect", "Backend Engineer",
		},
		Bio:          "I am an Agentic AI and Full-Stack Engineer focused on building intelligent, autonomous, and production-grade systems. I design AI-driven platforms where agents can reason, coordinate, call tools, manage memory, automate workflows, and interact with real-world systems.",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
		CVLink:       "https://docs.google.com/document/d/your-cv-link",
		GithubLink:   "https://github.com/muhammadhamidraza",
		LinkedinLink: "https://linkedin.com/in/hamid-raza-b249162a8",
		Email:        "muhammadhamidr92@gmail.com",
		Phone:        "+92 316 0010801",
		Meta: Meta{
			MetaTitle:       "Muhammad Hamid Raza - Agentic AI Engineer & Full-Stack Developer",
			MetaDescription: "Portfolio of Muhammad Hamid Raza - Agentic AI Engineer and Full-Stack Developer specializing in AI-powered systems, MERN stack, React.js, and intelligent automation.",
			MetaKeywords:    "AI Engineer, Agentic AI, MERN Developer, Full-Stack, OpenAI Agent SDK, MCP, AI Automation, Portfolio",
		},
	}); err != nil {
		return err
	}

	if _, err := d.UpsertAbout(ctx, About{
		Title:    "About Me",
		Subtitle: "Get to know more about me, my background, and what drives me as an AI Engineer.",
		BioText:  "I am an Agentic AI and Full-Stack Engineer focused on building intelligent, autonomous, and production-grade systems. I do NOT build simple CRUD apps only. I design AI-driven platforms where agents can reason, coordinate, call tools, manage memory, automate workflows, and interact with real-world systems.",
		BioText2: "My work sits at the intersection of AI agents, backend systems, scalable APIs, and modern frontend experiences. I am passionate about creating systems where AI agents don't just chat, they reason, act, and automate complex business processes.",
		Values: json.RawMessage(`[{"icon":"fas fa-robot","title":"Agentic AI","description":"I build autonomous AI agents that can reason, make decisions, and execute complex tasks.","color":"primary"},` +
			`{"icon":"fas fa-brain","title":"AI Systems","description":"I design production-ready AI architectures with memory, tool calling, and orchestration.","color":"secondary"},` +
			`{"icon":"fas fa-code","title":"Full-Stack","description":"I build scalable MERN stack applications with modern frontend experiences.","color":"accent"},` +
			`{"icon":"fas fa-bolt","title":"Automation","description":"I create intelligent automation workflows that save time and reduce manual effort.","color":"primary"}]`),
		BackgroundImage: "https://images.unsplash.com/photo-1677442136019-21780ecad995",
		Meta: Meta{
			MetaTitle:       "About Me | Muhammad Hamid Raza",
			MetaDescription: "Learn more about Muhammad Hamid Raza, an Agentic AI Engineer and Full-Stack Developer building intelligent, autonomous systems.",
			MetaKeywords:    "About, AI Engineer, Agentic AI, Full-Stack Developer, MERN, AI Systems",
		},
	}); err != nil {
		return err
	}

	if err := d.seedSkills(ctx); err != nil {
		return err
	}
	if err := d.seedProjects(ctx); err != nil {
		return err
	}
	if err := d.seedContributions(ctx); err != nil {
		return err
	}
	if err := d.seedExperience(ctx); err != nil {
		return err
	}
	if err := d.seedEducation(ctx); err != nil {
		return err
	}
	if err := d.seedCertifications(ctx); err != nil {
		return err
	}

	if _, err := d.UpsertContact(ctx, Contact{
		ContactItems: json.RawMessage(`[{"icon":"fas fa-map-marker-alt","title":"Location","value":"Karachi, Pakistan","color":"primary","link":null},` +
			`{"icon":"fas fa-envelope","title":"Email","value":"muhammadhamidr92@gmail.com","color":"secondary","link":"mailto:muhammadhamidr92@gmail.com"},` +
			`{"icon":"fas fa-phone-alt","title":"Phone","value":"+92 316 0010801","color":"accent","link":"tel:+923160010801"},` +
			`{"icon":"fas fa-globe","title":"Website","value":"https://muhammad-hamid-raza.vercel.app/","color":"primary","link":"https://muhammad-hamid-raza.vercel.app/"}]`),
		SocialLinks: json.RawMessage(`[{"icon":"fab fa-github","url":"https://github.com/muhammadhamidraza","color":"primary","hoverColor":"primary"},` +
			`{"icon":"fab fa-linkedin-in","url":"https://linkedin.com/in/hamid-raza-b249162a8","color":"secondary","hoverColor":"secondary"},` +
			`{"icon":"fab fa-twitter","url":"https://twitter.com/muhammadhamidraza","color":"accent","hoverColor":"accent"}]`),
		Meta: Meta{
			MetaTitle:       "Contact | Muhammad Hamid Raza",
			MetaDescription: "Get in touch with Muhammad Hamid Raza for AI-powered web development projects, collaborations, or inquiries.",
			MetaKeywords:    "contact, email, phone, reach out, hire, AI Engineer",
		},
	}); err != nil {
		return err
	}

	log.Println("seed complete")
	return nil
}

func (d *DB) seedSkills(ctx context.Context) error {
	skills := []Skill{
		{Name: "OpenAI Agent SDK", Category: "Agentic AI & AI Systems", Level: "92%", Description: "Building AI agents with tool calling, memory, and orchestration", Icon: "fas fa-robot", Color: "primary"},
		{Name: "Model Context Protocol", Category: "Agentic AI & AI Systems", Level: "88%", Description: "MCP architecture and multi-agent communication", Icon: "fas fa-network-wired", Color: "secondary"},
		{Name: "Prompt Engineering", Category: "Agentic AI & AI Systems", Level: "90%", Description: "Few-shot prompting, structured outputs, and role prompting", Icon: "fas fa-comments", Color: "accent"},
		{Name: "Multi-Agent Systems", Category: "Agentic AI & AI Systems", Level: "85%", Description: "Agent orchestration and coordination patterns", Icon: "fas fa-users", Color: "primary"},
		{Name: "Agent Memory Design", Category: "Agentic AI & AI Systems", Level: "82%", Description: "Short-term and long-term memory for AI agents", Icon: "fas fa-memory", Color: "secondary"},
		{Name: "Node.js", Category: "Backend Engineering", Level: "90%", Description: "Server-side JavaScript runtime", Icon: "fab fa-node-js", Color: "primary"},
		{Name: "Express.js", Category: "Backend Engineering", Level: "88%", Description: "Web framework for Node.js", Icon: "fas fa-server", Color: "secondary"},
		{Name: "PostgreSQL", Category: "Backend Engineering", Level: "85%", Description: "Relational database with Neon", Icon: "fas fa-database", Color: "accent"},
		{Name: "MongoDB", Category: "Backend Engineering", Level: "88%", Description: "NoSQL database", Icon: "fas fa-leaf", Color: "primary"},
		{Name: "RESTful APIs", Category: "Backend Engineering", Level: "95%", Description: "API design and implementation", Icon: "fas fa-plug", Color: "secondary"},
		{Name: "Socket.io", Category: "Backend Engineering", Level: "85%", Description: "Real-time communication", Icon: "fas fa-bolt", Color: "accent"},
		{Name: "React.js", Category: "Frontend Engineering", Level: "95%", Description: "Frontend library", Icon: "fab fa-react", Color: "primary"},
		{Name: "Next.js", Category: "Frontend Engineering", Level: "90%", Description: "React framework with SSR", Icon: "fas fa-fast-forward", Color: "secondary"},
		{Name: "Vite", Category: "Frontend Engineering", Level: "92%", Description: "Next-gen frontend tooling", Icon: "fas fa-bolt", Color: "accent"},
		{Name: "Tailwind CSS", Category: "Frontend Engineering", Level: "95%", Description: "Utility-first CSS framework", Icon: "fab fa-css3", Color: "primary"},
		{Name: "Framer Motion", Category: "Frontend Engineering", Level: "88%", Description: "Animation library for React", Icon: "fas fa-film", Color: "secondary"},
		{Name: "GSAP", Category: "Frontend Engineering", Level: "80%", Description: "Professional animation library", Icon: "fas fa-play", Color: "accent"},
		{Name: "Git", Category: "Tools & DevOps", Level: "92%", Description: "Version control and collaboration", Icon: "fab fa-git-alt", Color: "primary"},
		{Name: "AWS", Category: "Tools & DevOps", Level: "82%", Description: "Cloud services", Icon: "fab fa-aws", Color: "secondary"},
		{Name: "Firebase", Category: "Tools & DevOps", Level: "88%", Description: "Backend-as-a-Service", Icon: "fab fa-google", Color: "accent"},
		{Name: "n8n", Category: "Tools & DevOps", Level: "85%", Description: "Workflow automation", Icon: "fas fa-project-diagram", Color: "primary"},
		{Name: "Drizzle ORM", Category: "Tools & DevOps", Level: "80%", Description: "Type-safe ORM for PostgreSQL", Icon: "fas fa-database", Color: "secondary"},
	}
	for _, s := range skills {
		s.Meta = Meta{
			MetaTitle:       "Skills | Muhammad Hamid Raza",
			MetaDescription: "Technical skills and expertise of Muhammad Hamid Raza - " + s.Category,
			MetaKeywords:    "skills, programming, development, " + strings.ToLower(s.Category),
		}
		if _, err := d.CreateSkill(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seedProjects(ctx context.Context) error {
	projects := []Project{
		{
			Title:        "AI Agent Platform",
			Description:  "A production-grade AI agent platform where autonomous agents can reason, call tools, manage memory, and execute complex business workflows with human oversight.",
			Technologies: []string{"React.js", "Next.js", "Node.js", "Express", "OpenAI Agent SDK", "PostgreSQL"},
			Category:     "AI Platform",
			LiveDemo:     "https://demo-ai-platform.com",
			Featured:     true,
			Color:        "primary",
		},
		{
			Title:        "IPTV Dashboard",
			Description:  "An IPTV admin panel to manage users, billing, live stream status, and analytics with a responsive UI.",
			Technologies: []string{"React.js", "Vite", "Node.js", "MongoDB", "Tailwind CSS"},
			Category:     "Admin Panel",
			LiveDemo:     "https://frontend.dashcore.eu/",
			Featured:     true,
			Color:        "secondary",
		},
		{
			Title:        "Real Estate Platform",
			Description:  "A fully responsive platform to browse, search, and filter properties with agent contact and lead generation features.",
			Technologies: []string{"React.js", "Vite", "Firebase", "Tailwind CSS"},
			Category:     "Web Application",
			LiveDemo:     "https://buyhomeforless.com/",
			Color:        "accent",
		},
		{
			Title:        "Automation Workflow Engine",
			Description:  "An intelligent workflow automation engine powered by AI agents that can process documents, send notifications, and orchestrate business logic.",
			Technologies: []string{"React.js", "Node.js", "n8n", "PostgreSQL", "Socket.io"},
			Category:     "AI Automation",
			LiveDemo:     "https://automation.demo.com",
			Featured:     true,
			Color:        "primary",
		},
		{
			Title:        "HR CRM System",
			Description:  "A CRM system for managing job applicants, employee records, interviews, and HR pipelines with role-based access.",
			Technologies: []string{"React.js", "Vite", "Express.js", "MongoDB", "Tailwind CSS"},
			Category:     "Enterprise",
			LiveDemo:     "https://transferweb.tech/",
			Color:        "secondary",
		},
		{
			Title:        "AI Chat Assistant",
			Description:  "An intelligent chat assistant powered by OpenAI Agent SDK that can perform tasks, search knowledge bases, and automate workflows.",
			Technologies: []string{"React.js", "Node.js", "OpenAI Agent SDK", "PostgreSQL"},
			Category:     "AI Application",
			LiveDemo:     "https://chat.demo.com",
			Color:        "accent",
		},
	}
	for _, p := range projects {
		desc := p.Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		p.Meta = Meta{
			MetaTitle:       "Projects | Muhammad Hamid Raza",
			MetaDescription: "Project: " + p.Title + " - " + desc,
			MetaKeywords:    "portfolio, projects, " + strings.ToLower(p.Category),
		}
		if _, err := d.CreateProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seedContributions(ctx context.Context) error {
	contribs := []Contribution{
		{
			Title:       "OpenAI Agent SDK Documentation",
			Description: "Contributed to improving exception handling docs, clarified tool behavior, and added external security documentation references for the openai-agents-python library.",
			ProjectName: "openai-agents-python",
			Issuer:      "OpenAI",
			Type:        "Documentation",
			Link:        "https://github.com/openai/openai-agents-python",
		},
		{
			Title:       "n8n Documentation Enhancement",
			Description: "Improved node settings clarity and enhanced navigation for better developer understanding in the n8n workflow automation platform.",
			ProjectName: "n8n",
			Issuer:      "n8n",
			Type:        "Documentation",
			Link:        "https://github.com/n8n-io/n8n-docs",
		},
		{
			Title:       "Community AI Tooling",
			Description: "Built and open-sourced several AI automation tools and utilities for the developer community.",
			ProjectName: "AI-Tools",
			Issuer:      "GitHub",
			Type:        "Code",
			Link:        "https://github.com/muhammadhamidraza",
		},
	}
	for _, c := range contribs {
		c.Meta = Meta{
			MetaTitle:       "Contributions | Muhammad Hamid Raza",
			MetaDescription: "Open source contributions by Muhammad Hamid Raza to AI and developer tools.",
			MetaKeywords:    "open source, contributions, AI, documentation",
		}
		if _, err := d.CreateContribution(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seedExperience(ctx context.Context) error {
	entries := []Experience{
		{
			Company:     "SID Techno",
			Role:        "Agentic AI & Full-Stack Developer",
			Duration:    "Mar 2024 - Present",
			Description: "Building AI-powered systems where agents can reason, coordinate, call tools, manage memory, and automate complex workflows. Designing production-grade AI platforms using OpenAI Agent SDK, Model Context Protocol, and modern MERN stack. Creating intelligent automation solutions for enterprise clients.",
			TechStack:   []string{"React.js", "Next.js", "Node.js", "Express", "PostgreSQL", "OpenAI Agent SDK", "MCP", "Tailwind CSS", "Socket.io"},
			Icon:        "fas fa-robot",
			Color:       "primary",
		},
		{
			Company:     "SID Techno",
			Role:        "MERN Stack Developer",
			Duration:    "Dec 2023 - Feb 2024",
			Description: "Worked on diverse projects, gaining hands-on experience in front-end and back-end development. Contributed to building responsive, user-friendly web applications using JavaScript, HTML, CSS, and modern frameworks. Learned foundational skills in Node.js and React.js.",
			TechStack:   []string{"JavaScript", "HTML/CSS", "Node.js", "React.js", "Responsive Design", "MongoDB"},
			Icon:        "fas fa-code",
			Color:       "secondary",
		},
	}
	for _, e := range entries {
		e.Meta = Meta{
			MetaTitle:       "Experience | Muhammad Hamid Raza",
			MetaDescription: "Work experience at " + e.Company + " as " + e.Role,
			MetaKeywords:    "experience, work history, employment, AI Engineer",
		}
		if _, err := d.CreateExperience(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seedEducation(ctx context.Context) error {
	entries := []Education{
		{
			Institution:     "Government College of Commerce & Economics",
			Degree:          "Bachelor's Degree",
			Period:          "In Progress",
			Description:     "Currently pursuing a degree with a focus on commerce, economics, and technology applications in business contexts. Combining business acumen with technical skills to build AI-powered solutions.",
			HighlightsTitle: "Focus Areas",
			Highlights:      []string{"AI in Business", "E-commerce Solutions", "Business Analytics", "Digital Transformation"},
			Icon:            "fas fa-university",
			Color:           "primary",
		},
		{
			Institution:     "Government College of Commerce & Economics",
			Degree:          "Intermediate",
			Period:          "2022 - 2024",
			Description:     "Completed intermediate education with a focus on commerce and computer science. Built foundational skills in programming and business fundamentals.",
			HighlightsTitle: "Key Subjects",
			Highlights:      []string{"Commerce", "Computer Science", "Economics", "Mathematics"},
			Icon:            "fas fa-graduation-cap",
			Color:           "secondary",
		},
		{
			Institution:     "Saylani Mass IT Training",
			Degree:          "Full Stack Web Development",
			Period:          "2022 - 2023",
			Description:     "Completed a comprehensive full stack web development course, gaining expertise in HTML, CSS, JavaScript, React.js, Node.js, and database management. Started my journey into AI and automation later.",
			HighlightsTitle: "Key Learnings",
			Highlights:      []string{"HTML, CSS, JavaScript", "React.js & Node.js", "MongoDB & Databases", "Web Development Fundamentals"},
			Icon:            "fas fa-laptop-code",
			Color:           "accent",
		},
	}
	for _, e := range entries {
		e.Meta = Meta{
			MetaTitle:       "Education | Muhammad Hamid Raza",
			MetaDescription: "Education background of Muhammad Hamid Raza - " + e.Degree + " at " + e.Institution,
			MetaKeywords:    "education, degree, certification, learning",
		}
		if _, err := d.CreateEducation(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) seedCertifications(ctx context.Context) error {
	certs := []Certification{
		{Title: "OpenAI Agent SDK Fundamentals", Issuer: "OpenAI", Color: "primary"},
		{Title: "React.js Advanced Development", Issuer: "Udemy", Color: "secondary"},
		{Title: "MERN Stack Mastery", Issuer: "Coursera", Color: "accent"},
		{Title: "Responsive Web Design", Issuer: "freeCodeCamp", Color: "primary"},
		{Title: "Node.js Backend Development", Issuer: "Udemy", Color: "secondary"},
	}
	for _, c := range certs {
		if _, err := d.CreateCertification(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
