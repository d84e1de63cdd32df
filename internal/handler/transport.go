package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripdesk/internal/domain"
)

// AddTransportation handles POST /days/{dayId}/transports.
func (s *Server) AddTransportation(w http.ResponseWriter, r *http.Request) {
	var tr domain.Transportation
	if err := decodeJSON(r, &tr); err != nil {
		respondBadBody(w, err)
		return
	}

	created, err := s.trips.AddTransportation(r.Context(), chi.URLParam(r, "dayId"), tr)
	if err != nil {
		respondError(w, r, err, "day not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateTransportation handles PATCH /transports/{id}.
func (s *Server) UpdateTransportation(w http.ResponseWriter, r *http.Request) {
	var upd domain.TransportationUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondBadBody(w, err)
		return
	}

	updated, err := s.trips.UpdateTransportation(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, r, err, "transport not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTransportation handles DELETE /transports/{id}.
func (s *Server) DeleteTransportation(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteTransportation(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err, "transport not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
