// Package handler implements the HTTP handlers for the trip planner API.
// Handlers parse and validate request shapes, call the service layer, and
// map outcomes to status codes: not-found to 404, validation failures to
// 422, everything unexpected to 500. Methods are split into resource files
// (trip.go, day.go, ...) but all share the Server struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripdesk/internal/domain"
)

// TripServicer defines the business operations the trip, day, activity, and
// transport handlers depend on. Defining the interface here (in the
// consumer package) lets handler tests inject a mock without touching the
// service or storage layers.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id string, upd domain.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, id string) error

	AddDay(ctx context.Context, tripID string, day domain.Day) (domain.Day, error)
	DeleteDay(ctx context.Context, dayID string) error
	ReorderDays(ctx context.Context, tripID string, dayIDs []string) error

	AddActivity(ctx context.Context, dayID string, act domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, id string, upd domain.ActivityUpdate) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	ReorderActivities(ctx context.Context, dayID string, activityIDs []string) error

	AddTransportation(ctx context.Context, dayID string, tr domain.Transportation) (domain.Transportation, error)
	UpdateTransportation(ctx context.Context, id string, upd domain.TransportationUpdate) (domain.Transportation, error)
	DeleteTransportation(ctx context.Context, id string) error
}

// PlaceServicer defines the place-search operations the handler depends on.
type PlaceServicer interface {
	Search(ctx context.Context, query string) ([]domain.Place, error)
	Save(ctx context.Context, place domain.Place) (domain.Place, error)
}

// SettingsServicer defines the settings operations the handler depends on.
type SettingsServicer interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips    TripServicer
	places   PlaceServicer
	settings SettingsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, places PlaceServicer, settings SettingsServicer) *Server {
	return &Server{trips: trips, places: places, settings: settings}
}

// Router returns the chi router with every API route registered. Cross-
// cutting middleware is wired by the caller (main.go) around this router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/days", s.AddDay)
			r.Patch("/days/reorder", s.ReorderDays)
		})
	})

	r.Route("/days/{dayId}", func(r chi.Router) {
		r.Delete("/", s.DeleteDay)
		r.Post("/activities", s.AddActivity)
		r.Patch("/activities/reorder", s.ReorderActivities)
		r.Post("/transports", s.AddTransportation)
	})

	r.Route("/activities/{id}", func(r chi.Router) {
		r.Patch("/", s.UpdateActivity)
		r.Delete("/", s.DeleteActivity)
	})

	r.Route("/transports/{id}", func(r chi.Router) {
		r.Patch("/", s.UpdateTransportation)
		r.Delete("/", s.DeleteTransportation)
	})

	r.Get("/places/search", s.SearchPlaces)
	r.Post("/places", s.SavePlace)

	r.Get("/settings", s.GetSettings)
	r.Patch("/settings", s.UpdateSettings)

	return r
}

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
