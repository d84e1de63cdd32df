package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripdesk/internal/domain"
)

// AddDay handles POST /trips/{id}/days.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	var day domain.Day
	if err := decodeJSON(r, &day); err != nil {
		respondBadBody(w, err)
		return
	}

	created, err := s.trips.AddDay(r.Context(), chi.URLParam(r, "id"), day)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ReorderDays handles PATCH /trips/{id}/days/reorder.
func (s *Server) ReorderDays(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DayIDs []string `json:"dayIds"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondBadBody(w, err)
		return
	}

	if err := s.trips.ReorderDays(r.Context(), chi.URLParam(r, "id"), body.DayIDs); err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDay handles DELETE /days/{dayId}.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteDay(r.Context(), chi.URLParam(r, "dayId")); err != nil {
		respondError(w, r, err, "day not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
