package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripdesk/internal/domain"
)

// AddActivity handles POST /days/{dayId}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var act domain.Activity
	if err := decodeJSON(r, &act); err != nil {
		respondBadBody(w, err)
		return
	}

	created, err := s.trips.AddActivity(r.Context(), chi.URLParam(r, "dayId"), act)
	if err != nil {
		respondError(w, r, err, "day not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ReorderActivities handles PATCH /days/{dayId}/activities/reorder.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActivityIDs []string `json:"activityIds"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondBadBody(w, err)
		return
	}

	if err := s.trips.ReorderActivities(r.Context(), chi.URLParam(r, "dayId"), body.ActivityIDs); err != nil {
		respondError(w, r, err, "day not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateActivity handles PATCH /activities/{id}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var upd domain.ActivityUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondBadBody(w, err)
		return
	}

	updated, err := s.trips.UpdateActivity(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, r, err, "activity not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err, "activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
