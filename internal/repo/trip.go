package repo

import (
	"context"
	"fmt"
	"slices"

	"tripdesk/internal/domain"
	"tripdesk/internal/jsonfile"
)

// TripRepo persists the trip aggregate: trips with their nested days,
// activities, and transport legs, all in one collection file. The service
// layer depends on this type's methods via an interface it defines itself.
type TripRepo struct {
	files *jsonfile.Store
}

// NewTripRepo constructs a TripRepo backed by the provided file store.
func NewTripRepo(files *jsonfile.Store) *TripRepo {
	return &TripRepo{files: files}
}

// Init makes sure the trips collection file exists and is well-formed.
func (r *TripRepo) Init(_ context.Context) error {
	if _, err := jsonfile.Ensure(r.files, tripsFile, emptyCollection[domain.Trip]()); err != nil {
		return fmt.Errorf("repo.TripRepo.Init: %w", err)
	}
	return nil
}

// Create assigns an identifier and timestamps, initializes the nested
// sequences, and appends the trip to the collection under one mutation.
func (r *TripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	now := nowUTC()
	trip.ID = newID()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.Days = []domain.Day{}
	trip.Activities = []domain.Activity{}
	trip.Transports = []domain.Transportation{}

	_, err := jsonfile.Update(r.files, tripsFile, func(c collection[domain.Trip], exists bool) (collection[domain.Trip], error) {
		if !exists {
			c = emptyCollection[domain.Trip]()
		}
		c.Version++
		c.Items = append(c.Items, trip)
		return c, nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

// GetByID retrieves a single trip. Returns domain.ErrNotFound when no trip
// with that ID exists. Plain read — does not go through the mutation lock.
func (r *TripRepo) GetByID(_ context.Context, id string) (domain.Trip, error) {
	c, _, err := jsonfile.Read[collection[domain.Trip]](r.files, tripsFile)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	for _, t := range c.Items {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
}

// List returns all trips in stored order. An absent collection file yields
// an empty, non-nil slice.
func (r *TripRepo) List(_ context.Context) ([]domain.Trip, error) {
	c, exists, err := jsonfile.Read[collection[domain.Trip]](r.files, tripsFile)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	if !exists || c.Items == nil {
		return []domain.Trip{}, nil
	}
	return c.Items, nil
}

// Update merges the supplied fields over the matching trip. The identifier
// is immutable and UpdatedAt is refreshed. Returns domain.ErrNotFound when
// no trip matches.
func (r *TripRepo) Update(_ context.Context, id string, upd domain.TripUpdate) (domain.Trip, error) {
	var updated domain.Trip
	err := r.mutateTrip("Update", func(t *domain.Trip) bool { return t.ID == id }, func(t *domain.Trip) {
		applyTripUpdate(t, upd)
		updated = *t
	})
	if err != nil {
		return domain.Trip{}, err
	}
	return updated, nil
}

// Delete removes the matching trip, nested entities and all. Returns
// domain.ErrNotFound when no trip matches.
func (r *TripRepo) Delete(_ context.Context, id string) error {
	_, err := jsonfile.Update(r.files, tripsFile, func(c collection[domain.Trip], exists bool) (collection[domain.Trip], error) {
		if !exists {
			return c, domain.ErrNotFound
		}
		kept := slices.DeleteFunc(slices.Clone(c.Items), func(t domain.Trip) bool { return t.ID == id })
		if len(kept) == len(c.Items) {
			return c, domain.ErrNotFound
		}
		c.Version++
		c.Items = kept
		return c, nil
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

// --- days -------------------------------------------------------------------

// AddDay appends a new day to the trip. Returns domain.ErrNotFound when the
// trip does not exist.
func (r *TripRepo) AddDay(_ context.Context, tripID string, day domain.Day) (domain.Day, error) {
	day.ID = newID()
	day.TripID = tripID

	err := r.mutateTrip("AddDay", func(t *domain.Trip) bool { return t.ID == tripID }, func(t *domain.Trip) {
		t.Days = append(t.Days, day)
	})
	if err != nil {
		return domain.Day{}, err
	}
	return day, nil
}

// DeleteDay removes the day and cascades removal of every activity and
// transport leg tied to it, all in the same mutation. Returns
// domain.ErrNotFound when no trip owns the day.
func (r *TripRepo) DeleteDay(_ context.Context, dayID string) error {
	return r.mutateTrip("DeleteDay", ownsDay(dayID), func(t *domain.Trip) {
		t.Days = slices.DeleteFunc(t.Days, func(d domain.Day) bool { return d.ID == dayID })
		t.Activities = slices.DeleteFunc(t.Activities, func(a domain.Activity) bool { return a.DayID == dayID })
		t.Transports = slices.DeleteFunc(t.Transports, func(tr domain.Transportation) bool { return tr.DayID == dayID })
	})
}

// ReorderDays rewrites each day's index to its position in dayIDs. Days not
// named in the list are dropped from the trip. Returns domain.ErrNotFound
// when the trip does not exist.
func (r *TripRepo) ReorderDays(_ context.Context, tripID string, dayIDs []string) error {
	return r.mutateTrip("ReorderDays", func(t *domain.Trip) bool { return t.ID == tripID }, func(t *domain.Trip) {
		reordered := make([]domain.Day, 0, len(dayIDs))
		for i, id := range dayIDs {
			idx := slices.IndexFunc(t.Days, func(d domain.Day) bool { return d.ID == id })
			if idx < 0 {
				continue
			}
			d := t.Days[idx]
			d.Index = i
			reordered = append(reordered, d)
		}
		t.Days = reordered
	})
}

// --- activities -------------------------------------------------------------

// AddActivity appends a new activity to the day's trip. Returns
// domain.ErrNotFound when no trip owns the day.
func (r *TripRepo) AddActivity(_ context.Context, dayID string, act domain.Activity) (domain.Activity, error) {
	act.ID = newID()
	act.DayID = dayID

	err := r.mutateTrip("AddActivity", ownsDay(dayID), func(t *domain.Trip) {
		t.Activities = append(t.Activities, act)
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return act, nil
}

// UpdateActivity merges the supplied fields over the matching activity.
// Returns domain.ErrNotFound when no trip contains the activity.
func (r *TripRepo) UpdateActivity(_ context.Context, id string, upd domain.ActivityUpdate) (domain.Activity, error) {
	var updated domain.Activity
	err := r.mutateTrip("UpdateActivity", ownsActivity(id), func(t *domain.Trip) {
		for i := range t.Activities {
			if t.Activities[i].ID == id {
				applyActivityUpdate(&t.Activities[i], upd)
				updated = t.Activities[i]
				return
			}
		}
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return updated, nil
}

// DeleteActivity removes the activity and every standalone transport leg
// that references it as origin or destination. Embedded transport records
// on other activities are untouched. Returns domain.ErrNotFound when no
// trip contains the activity.
func (r *TripRepo) DeleteActivity(_ context.Context, id string) error {
	return r.mutateTrip("DeleteActivity", ownsActivity(id), func(t *domain.Trip) {
		t.Activities = slices.DeleteFunc(t.Activities, func(a domain.Activity) bool { return a.ID == id })
		t.Transports = slices.DeleteFunc(t.Transports, func(tr domain.Transportation) bool {
			return tr.FromActivityID == id || tr.ToActivityID == id
		})
	})
}

// ReorderActivities reassigns Order for the day's activities to their
// position in activityIDs. Activities not named keep their existing order.
// Returns domain.ErrNotFound when no trip owns the day.
func (r *TripRepo) ReorderActivities(_ context.Context, dayID string, activityIDs []string) error {
	return r.mutateTrip("ReorderActivities", ownsDay(dayID), func(t *domain.Trip) {
		for i := range t.Activities {
			if t.Activities[i].DayID != dayID {
				continue
			}
			if pos := slices.Index(activityIDs, t.Activities[i].ID); pos >= 0 {
				t.Activities[i].Order = pos
			}
		}
	})
}

// --- transportation ---------------------------------------------------------

// AddTransportation appends a new standalone transport leg to the day's
// trip. Returns domain.ErrNotFound when no trip owns the day.
func (r *TripRepo) AddTransportation(_ context.Context, dayID string, tr domain.Transportation) (domain.Transportation, error) {
	tr.ID = newID()
	tr.DayID = dayID

	err := r.mutateTrip("AddTransportation", ownsDay(dayID), func(t *domain.Trip) {
		t.Transports = append(t.Transports, tr)
	})
	if err != nil {
		return domain.Transportation{}, err
	}
	return tr, nil
}

// UpdateTransportation merges the supplied fields over the matching leg.
// Returns domain.ErrNotFound when no trip contains it.
func (r *TripRepo) UpdateTransportation(_ context.Context, id string, upd domain.TransportationUpdate) (domain.Transportation, error) {
	var updated domain.Transportation
	err := r.mutateTrip("UpdateTransportation", ownsTransport(id), func(t *domain.Trip) {
		for i := range t.Transports {
			if t.Transports[i].ID == id {
				applyTransportationUpdate(&t.Transports[i], upd)
				updated = t.Transports[i]
				return
			}
		}
	})
	if err != nil {
		return domain.Transportation{}, err
	}
	return updated, nil
}

// DeleteTransportation removes the matching leg. Returns domain.ErrNotFound
// when no trip contains it.
func (r *TripRepo) DeleteTransportation(_ context.Context, id string) error {
	return r.mutateTrip("DeleteTransportation", ownsTransport(id), func(t *domain.Trip) {
		t.Transports = slices.DeleteFunc(t.Transports, func(tr domain.Transportation) bool { return tr.ID == id })
	})
}

// --- internals --------------------------------------------------------------

// mutateTrip runs one serialized mutation over the trips file: locate the
// trip matched by owns, apply change to it, refresh UpdatedAt, and bump the
// collection version. When no trip matches, the transform fails with
// domain.ErrNotFound and nothing is written.
func (r *TripRepo) mutateTrip(op string, owns func(*domain.Trip) bool, change func(*domain.Trip)) error {
	_, err := jsonfile.Update(r.files, tripsFile, func(c collection[domain.Trip], exists bool) (collection[domain.Trip], error) {
		if !exists {
			return c, domain.ErrNotFound
		}
		idx := -1
		for i := range c.Items {
			if owns(&c.Items[i]) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return c, domain.ErrNotFound
		}
		change(&c.Items[idx])
		c.Items[idx].UpdatedAt = nowUTC()
		c.Version++
		return c, nil
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.%s: %w", op, err)
	}
	return nil
}

// ownsDay matches the trip containing the given day.
func ownsDay(dayID string) func(*domain.Trip) bool {
	return func(t *domain.Trip) bool {
		return slices.ContainsFunc(t.Days, func(d domain.Day) bool { return d.ID == dayID })
	}
}

// ownsActivity matches the trip containing the given activity.
func ownsActivity(id string) func(*domain.Trip) bool {
	return func(t *domain.Trip) bool {
		return slices.ContainsFunc(t.Activities, func(a domain.Activity) bool { return a.ID == id })
	}
}

// ownsTransport matches the trip containing the given transport leg.
func ownsTransport(id string) func(*domain.Trip) bool {
	return func(t *domain.Trip) bool {
		return slices.ContainsFunc(t.Transports, func(tr domain.Transportation) bool { return tr.ID == id })
	}
}

// applyTripUpdate merges non-nil fields of upd into t. ID and CreatedAt are
// never touched.
func applyTripUpdate(t *domain.Trip, upd domain.TripUpdate) {
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Destination != nil {
		t.Destination = *upd.Destination
	}
	if upd.StartDate != nil {
		t.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		t.EndDate = *upd.EndDate
	}
	if upd.Currency != nil {
		t.Currency = *upd.Currency
	}
	if upd.Days != nil {
		t.Days = *upd.Days
	}
	if upd.Activities != nil {
		t.Activities = *upd.Activities
	}
	if upd.Transports != nil {
		t.Transports = *upd.Transports
	}
}

// applyActivityUpdate merges non-nil fields of upd into a. ID and DayID are
// never touched.
func applyActivityUpdate(a *domain.Activity, upd domain.ActivityUpdate) {
	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Notes != nil {
		a.Notes = *upd.Notes
	}
	if upd.StartTime != nil {
		a.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		a.EndTime = *upd.EndTime
	}
	if upd.Cost != nil {
		a.Cost = upd.Cost
	}
	if upd.Category != nil {
		a.Category = *upd.Category
	}
	if upd.PlaceID != nil {
		a.PlaceID = *upd.PlaceID
	}
	if upd.Order != nil {
		a.Order = *upd.Order
	}
	if upd.Location != nil {
		a.Location = upd.Location
	}
	if upd.Transport != nil {
		a.Transport = upd.Transport
	}
}

// applyTransportationUpdate merges non-nil fields of upd into tr. ID and
// DayID are never touched.
func applyTransportationUpdate(tr *domain.Transportation, upd domain.TransportationUpdate) {
	if upd.FromActivityID != nil {
		tr.FromActivityID = *upd.FromActivityID
	}
	if upd.ToActivityID != nil {
		tr.ToActivityID = *upd.ToActivityID
	}
	if upd.Mode != nil {
		tr.Mode = *upd.Mode
	}
	if upd.Provider != nil {
		tr.Provider = *upd.Provider
	}
	if upd.DepartTime != nil {
		tr.DepartTime = *upd.DepartTime
	}
	if upd.ArriveTime != nil {
		tr.ArriveTime = *upd.ArriveTime
	}
	if upd.DistanceKm != nil {
		tr.DistanceKm = upd.DistanceKm
	}
	if upd.DurationMin != nil {
		tr.DurationMin = upd.DurationMin
	}
	if upd.Cost != nil {
		tr.Cost = upd.Cost
	}
	if upd.Notes != nil {
		tr.Notes = *upd.Notes
	}
}
