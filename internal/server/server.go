// Package server exposes the portfolio over HTTP: the read API, the
// cross-entity search, and the assistant chat endpoint.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hamid/folio/internal/agent"
	"github.com/hamid/folio/internal/llm"
	"github.com/hamid/folio/internal/query"
)

type Server struct {
	engine *query.Engine
	agent  *agent.Agent
}

func New(engine *query.Engine, assistant *agent.Agent) *Server {
	return &Server{engine: engine, agent: assistant}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/check", s.handleCheck)

		r.Get("/home", s.handleHome)
		r.Get("/about", s.handleAbout)
		r.Get("/contact", s.handleContact)

		r.Get("/skills", s.handleSkills)
		r.Get("/skills/{id}", s.handleSkill)

		r.Get("/projects", s.handleProjects)
		r.Get("/projects/featured", s.handleFeaturedProjects)
		r.Get("/projects/{id}", s.handleProject)

		r.Get("/contributions", s.handleContributions)
		r.Get("/contributions/{id}", s.handleContribution)

		r.Get("/experience", s.handleExperience)
		r.Get("/experience/{id}", s.handleExperienceEntry)

		r.Get("/education", s.handleEducation)
		r.Get("/education/{id}", s.handleEducationEntry)

		r.Get("/certifications", s.handleCertifications)
		r.Get("/media", s.handleMedia)
		r.Get("/search", s.handleSearch)

		r.Post("/agent-chat", s.handleAgentChat)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio API is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server is running"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Profile(r.Context())
	if err != nil {
		log.Printf("home: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch home data")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.About(r.Context())
	if err != nil {
		log.Printf("about: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch about data")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Contact(r.Context())
	if err != nil {
		log.Printf("contact: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact data")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// listOptions reads the shared list query parameters.
func listOptions(r *http.Request) query.ListOptions {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return query.ListOptions{
		Page:     page,
		Limit:    limit,
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Type:     q.Get("type"),
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Skills(r.Context(), listOptions(r))
	if err != nil {
		log.Printf("skills: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Skill not found")
		return
	}
	res, err := s.engine.SkillByID(r.Context(), id)
	if err != nil {
		log.Printf("skill %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch skill")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Skill not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Projects(r.Context(), listOptions(r))
	if err != nil {
		log.Printf("projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.engine.FeaturedProjects(r.Context())
	if err != nil {
		log.Printf("featured projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": projects})
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	res, err := s.engine.ProjectByID(r.Context(), id)
	if err != nil {
		log.Printf("project %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Contributions(r.Context(), listOptions(r))
	if err != nil {
		log.Printf("contributions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contributions")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contribution not found")
		return
	}
	res, err := s.engine.ContributionByID(r.Context(), id)
	if err != nil {
		log.Printf("contribution %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contribution")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Contribution not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Experience(r.Context(), listOptions(r))
	if err != nil {
		log.Printf("experience: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExperienceEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Experience not found")
		return
	}
	res, err := s.engine.ExperienceByID(r.Context(), id)
	if err != nil {
		log.Printf("experience %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Experience not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEducation(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Education(r.Context(), listOptions(r))
	if err != nil {
		log.Printf("education: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch education")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEducationEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Education not found")
		return
	}
	res, err := s.engine.EducationByID(r.Context(), id)
	if err != nil {
		log.Printf("education %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch education")
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "Education not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCertifications(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Certifications(r.Context())
	if err != nil {
		log.Printf("certifications: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch certifications")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	media, err := s.engine.Media(r.Context(), q.Get("related_type"), q.Get("related_id"))
	if err != nil {
		log.Printf("media: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": media})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	hits, err := s.engine.Search(r.Context(), q)
	if err != nil {
		log.Printf("search: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to search")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": hits})
}

type chatRequest struct {
	Message string        `json:"message"`
	History []chatMessage `json:"history"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *Server) handleAgentChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Message is required"})
		return
	}

	// Only plain user/assistant turns survive the round trip; tool
	// traffic is internal to the loop.
	var history []llm.Message
	for _, m := range req.History {
		if m.Role == "user" || m.Role == "assistant" {
			history = append(history, llm.Message{Role: m.Role, Content: m.Content})
		}
	}

	reply, _, err := s.agent.Run(r.Context(), history, req.Message)
	if err != nil {
		log.Printf("agent chat: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "An error occurred while processing your request",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"response":  reply,
		"agentUsed": true,
	})
}
