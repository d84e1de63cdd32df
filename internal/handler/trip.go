package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripdesk/internal/domain"
)

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := decodeJSON(r, &trip); err != nil {
		respondBadBody(w, err)
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var upd domain.TripUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondBadBody(w, err)
		return
	}

	updated, err := s.trips.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
