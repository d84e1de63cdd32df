// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce business rules, compute derived
// transport fields, and orchestrate repo calls. No file access lives here —
// services depend on store interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/geo"
)

// TripStore defines the persistence operations TripService depends on.
// Implemented by *repo.TripRepo; tests inject a mock.
type TripStore interface {
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

// TripService implements business logic for the trip aggregate.
type TripService struct {
	store TripStore
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store TripStore) *TripService {
	return &TripService{store: store}
}

// Create validates and persists a new trip. An empty currency defaults to
// USD.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.Currency == "" {
		trip.Currency = "USD"
	}
	result, err := s.store.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip with its nested days, activities, and
// transports.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	result, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips. Always returns a non-nil slice so callers can
// safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates the supplied fields and merges them over the trip.
func (s *TripService) Update(ctx context.Context, id string, upd domain.TripUpdate) (domain.Trip, error) {
	if err := validateTripUpdate(upd); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.store.Update(ctx, id, upd)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip and everything nested inside it.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddDay validates and appends a day to the trip.
func (s *TripService) AddDay(ctx context.Context, tripID string, day domain.Day) (domain.Day, error) {
	if !validDate(day.Date) {
		return domain.Day{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	result, err := s.store.AddDay(ctx, tripID, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.TripService.AddDay: %w", err)
	}
	return result, nil
}

// DeleteDay removes a day and cascades to its activities and transports.
func (s *TripService) DeleteDay(ctx context.Context, dayID string) error {
	if err := s.store.DeleteDay(ctx, dayID); err != nil {
		return fmt.Errorf("service.TripService.DeleteDay: %w", err)
	}
	return nil
}

// ReorderDays rewrites day indexes to match the supplied ID list.
func (s *TripService) ReorderDays(ctx context.Context, tripID string, dayIDs []string) error {
	if len(dayIDs) == 0 {
		return fmt.Errorf("%w: dayIds is required", domain.ErrValidation)
	}
	if err := s.store.ReorderDays(ctx, tripID, dayIDs); err != nil {
		return fmt.Errorf("service.TripService.ReorderDays: %w", err)
	}
	return nil
}

// AddActivity validates and appends an activity to the day. Derived fields
// on the embedded transport record are filled in when computable.
func (s *TripService) AddActivity(ctx context.Context, dayID string, act domain.Activity) (domain.Activity, error) {
	if err := validateActivity(act); err != nil {
		return domain.Activity{}, err
	}
	if act.Transport != nil {
		deriveActivityTransport(act.Transport)
	}
	result, err := s.store.AddActivity(ctx, dayID, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.TripService.AddActivity: %w", err)
	}
	return result, nil
}

// UpdateActivity validates the supplied fields and merges them over the
// activity.
func (s *TripService) UpdateActivity(ctx context.Context, id string, upd domain.ActivityUpdate) (domain.Activity, error) {
	if err := validateActivityUpdate(upd); err != nil {
		return domain.Activity{}, err
	}
	if upd.Transport != nil {
		deriveActivityTransport(upd.Transport)
	}
	result, err := s.store.UpdateActivity(ctx, id, upd)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.TripService.UpdateActivity: %w", err)
	}
	return result, nil
}

// DeleteActivity removes an activity and the standalone transport legs that
// reference it.
func (s *TripService) DeleteActivity(ctx context.Context, id string) error {
	if err := s.store.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.DeleteActivity: %w", err)
	}
	return nil
}

// ReorderActivities rewrites activity orders within a day to match the
// supplied ID list.
func (s *TripService) ReorderActivities(ctx context.Context, dayID string, activityIDs []string) error {
	if len(activityIDs) == 0 {
		return fmt.Errorf("%w: activityIds is required", domain.ErrValidation)
	}
	if err := s.store.ReorderActivities(ctx, dayID, activityIDs); err != nil {
		return fmt.Errorf("service.TripService.ReorderActivities: %w", err)
	}
	return nil
}

// AddTransportation validates and appends a standalone transport leg to the
// day, filling derived duration and arrival fields when computable.
func (s *TripService) AddTransportation(ctx context.Context, dayID string, tr domain.Transportation) (domain.Transportation, error) {
	if err := validateTransportation(tr); err != nil {
		return domain.Transportation{}, err
	}
	deriveTransportation(&tr)
	result, err := s.store.AddTransportation(ctx, dayID, tr)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("service.TripService.AddTransportation: %w", err)
	}
	return result, nil
}

// UpdateTransportation validates the supplied fields and merges them over
// the transport leg.
func (s *TripService) UpdateTransportation(ctx context.Context, id string, upd domain.TransportationUpdate) (domain.Transportation, error) {
	if err := validateTransportationUpdate(upd); err != nil {
		return domain.Transportation{}, err
	}
	result, err := s.store.UpdateTransportation(ctx, id, upd)
	if err != nil {
		return domain.Transportation{}, fmt.Errorf("service.TripService.UpdateTransportation: %w", err)
	}
	return result, nil
}

// DeleteTransportation removes a standalone transport leg.
func (s *TripService) DeleteTransportation(ctx context.Context, id string) error {
	if err := s.store.DeleteTransportation(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.DeleteTransportation: %w", err)
	}
	return nil
}

// --- validation -------------------------------------------------------------

func validateTrip(t domain.Trip) error {
	switch {
	case t.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case t.Destination == "":
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	case !validDate(t.StartDate):
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", domain.ErrValidation)
	case !validDate(t.EndDate):
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD", domain.ErrValidation)
	case t.EndDate < t.StartDate:
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	return nil
}

func validateTripUpdate(upd domain.TripUpdate) error {
	if upd.Title != nil && *upd.Title == "" {
		return fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if upd.Destination != nil && *upd.Destination == "" {
		return fmt.Errorf("%w: destination must not be empty", domain.ErrValidation)
	}
	if upd.StartDate != nil && !validDate(*upd.StartDate) {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", domain.ErrValidation)
	}
	if upd.EndDate != nil && !validDate(*upd.EndDate) {
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD", domain.ErrValidation)
	}
	return nil
}

func validateActivity(a domain.Activity) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if a.StartTime != "" && !geo.ValidTime(a.StartTime) {
		return fmt.Errorf("%w: startTime must be HH:MM", domain.ErrValidation)
	}
	if a.EndTime != "" && !geo.ValidTime(a.EndTime) {
		return fmt.Errorf("%w: endTime must be HH:MM", domain.ErrValidation)
	}
	if a.Transport != nil && a.Transport.Mode != "" && !a.Transport.Mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, a.Transport.Mode)
	}
	return nil
}

func validateActivityUpdate(upd domain.ActivityUpdate) error {
	if upd.Title != nil && *upd.Title == "" {
		return fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
	}
	if upd.StartTime != nil && *upd.StartTime != "" && !geo.ValidTime(*upd.StartTime) {
		return fmt.Errorf("%w: startTime must be HH:MM", domain.ErrValidation)
	}
	if upd.EndTime != nil && *upd.EndTime != "" && !geo.ValidTime(*upd.EndTime) {
		return fmt.Errorf("%w: endTime must be HH:MM", domain.ErrValidation)
	}
	if upd.Transport != nil && upd.Transport.Mode != "" && !upd.Transport.Mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, upd.Transport.Mode)
	}
	return nil
}

func validateTransportation(tr domain.Transportation) error {
	if tr.Mode == "" {
		return fmt.Errorf("%w: mode is required", domain.ErrValidation)
	}
	if !tr.Mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, tr.Mode)
	}
	if tr.DepartTime != "" && !geo.ValidTime(tr.DepartTime) {
		return fmt.Errorf("%w: departTime must be HH:MM", domain.ErrValidation)
	}
	if tr.ArriveTime != "" && !geo.ValidTime(tr.ArriveTime) {
		return fmt.Errorf("%w: arriveTime must be HH:MM", domain.ErrValidation)
	}
	return nil
}

func validateTransportationUpdate(upd domain.TransportationUpdate) error {
	if upd.Mode != nil && !upd.Mode.Valid() {
		return fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, *upd.Mode)
	}
	if upd.DepartTime != nil && *upd.DepartTime != "" && !geo.ValidTime(*upd.DepartTime) {
		return fmt.Errorf("%w: departTime must be HH:MM", domain.ErrValidation)
	}
	if upd.ArriveTime != nil && *upd.ArriveTime != "" && !geo.ValidTime(*upd.ArriveTime) {
		return fmt.Errorf("%w: arriveTime must be HH:MM", domain.ErrValidation)
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// --- derived fields ---------------------------------------------------------

// deriveTransportation fills DurationMin from distance and mode, and
// ArriveTime from departure and duration, when those fields are absent but
// computable. User-supplied values are never overwritten.
func deriveTransportation(tr *domain.Transportation) {
	if tr.DurationMin == nil && tr.DistanceKm != nil && tr.Mode != "" {
		d := geo.EstimateDurationMin(tr.Mode, *tr.DistanceKm)
		tr.DurationMin = &d
	}
	if tr.ArriveTime == "" && tr.DepartTime != "" && tr.DurationMin != nil {
		if at, err := geo.ArriveTime(tr.DepartTime, *tr.DurationMin); err == nil {
			tr.ArriveTime = at
		}
	}
}

// deriveActivityTransport is deriveTransportation for the embedded record.
func deriveActivityTransport(tr *domain.ActivityTransport) {
	if tr.DurationMin == nil && tr.DistanceKm != nil && tr.Mode != "" {
		d := geo.EstimateDurationMin(tr.Mode, *tr.DistanceKm)
		tr.DurationMin = &d
	}
	if tr.ArriveTime == "" && tr.DepartTime != "" && tr.DurationMin != nil {
		if at, err := geo.ArriveTime(tr.DepartTime, *tr.DurationMin); err == nil {
			tr.ArriveTime = at
		}
	}
}
