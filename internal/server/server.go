package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/planfit/internal/plan"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *plan.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *plan.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read-only plan views (no auth — tsnet handles access)
	s.router.Get("/api/v1/plan", s.handleListSessions)
	s.router.Get("/api/v1/plan/week", s.handleWeek)
	s.router.Get("/api/v1/plan/summary", s.handleSummary)
	s.router.Get("/api/v1/templates", s.handleTemplates)
	s.router.Get("/api/v1/draft", s.handleGetDraft)

	// Mutation endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/sessions", s.handleAddSession)
		r.Delete("/api/v1/sessions/{id}", s.handleRemoveSession)
		r.Post("/api/v1/sessions/{id}/duplicate", s.handleDuplicateSession)
		r.Delete("/api/v1/days/{day}", s.handleClearDay)
		r.Post("/api/v1/days/{day}/template", s.handleApplyTemplate)
		r.Put("/api/v1/draft", s.handleSetDraft)
		r.Post("/api/v1/draft/exercises", s.handleAddExerciseRow)
		r.Put("/api/v1/draft/exercises/{index}", s.handleUpdateExerciseRow)
		r.Delete("/api/v1/draft/exercises/{index}", s.handleRemoveExerciseRow)
	})
}
