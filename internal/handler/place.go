package handler

import (
	"net/http"

	"tripdesk/internal/domain"
)

// SearchPlaces handles GET /places/search?q=...
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.places.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, places)
}

// SavePlace handles POST /places.
func (s *Server) SavePlace(w http.ResponseWriter, r *http.Request) {
	var place domain.Place
	if err := decodeJSON(r, &place); err != nil {
		respondBadBody(w, err)
		return
	}

	saved, err := s.places.Save(r.Context(), place)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}
