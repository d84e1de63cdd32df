package handler

import (
	"net/http"

	"tripdesk/internal/domain"
)

// GetSettings handles GET /settings.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PATCH /settings.
func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var upd domain.SettingsUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondBadBody(w, err)
		return
	}

	updated, err := s.settings.Update(r.Context(), upd)
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
