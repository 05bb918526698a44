package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/claude/planfit/internal/plan"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Sessions())
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.GroupByDay(s.store.Sessions()))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.Summarize(s.store.Sessions()))
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plan.Templates())
}

// draftState is the combined draft payload the form round-trips.
type draftState struct {
	Draft     plan.SessionDraft    `json:"draft"`
	Exercises []plan.ExerciseDraft `json:"exercises"`
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, rows := s.store.Draft()
	writeJSON(w, http.StatusOK, draftState{Draft: draft, Exercises: rows})
}

func (s *Server) handleSetDraft(w http.ResponseWriter, r *http.Request) {
	var draft plan.SessionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.store.SetDraft(draft)
	writeJSON(w, http.StatusOK, draft)
}

// handleAddSession commits a session. A request body supplies the draft and
// exercise rows directly; an empty body commits the store's current drafts.
func (s *Server) handleAddSession(w http.ResponseWriter, r *http.Request) {
	var payload draftState
	err := json.NewDecoder(r.Body).Decode(&payload)
	switch {
	case errors.Is(err, io.EOF):
		payload.Draft, payload.Exercises = s.store.Draft()
	case err != nil:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session := s.store.AddSession(payload.Draft, payload.Exercises)
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleRemoveSession(w http.ResponseWriter, r *http.Request) {
	removed := s.store.RemoveSession(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

func (s *Server) handleDuplicateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	dir, ok := plan.ParseDirection(payload.Direction)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "direction must be next or previous"})
		return
	}

	session, ok := s.store.DuplicateSession(chi.URLParam(r, "id"), dir)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleClearDay(w http.ResponseWriter, r *http.Request) {
	day, ok := plan.ParseDay(chi.URLParam(r, "day"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}
	removed := s.store.ClearDay(day)
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	day, ok := plan.ParseDay(chi.URLParam(r, "day"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}

	var payload struct {
		Template int `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, ok := s.store.ApplyTemplate(day, payload.Template)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "template index out of range"})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleAddExerciseRow(w http.ResponseWriter, r *http.Request) {
	s.store.AddExerciseDraft()
	_, rows := s.store.Draft()
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleUpdateExerciseRow(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row index"})
		return
	}

	var row plan.ExerciseDraft
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if !s.store.UpdateExerciseDraft(index, row) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no draft row at index"})
		return
	}
	_, rows := s.store.Draft()
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleRemoveExerciseRow(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row index"})
		return
	}

	// Removing the last remaining row is a deliberate no-op; report the
	// surviving buffer either way.
	s.store.RemoveExerciseDraft(index)
	_, rows := s.store.Draft()
	writeJSON(w, http.StatusOK, rows)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
