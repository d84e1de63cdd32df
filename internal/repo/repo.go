// Package repo contains all persistence logic for the trip planner. Each
// resource has its own file with a repository backed by the jsonfile store.
// No business validation lives here — only document shapes and mutation.
//
// Every mutating method performs its entity lookup inside the transform
// passed to jsonfile.Update, so locate-owner and rewrite happen as one
// serialized cycle per collection file and concurrent calls cannot clobber
// each other's changes.
package repo

import (
	"time"

	"github.com/google/uuid"
)

// Collection file names under the data directory.
const (
	tripsFile    = "trips.json"
	placesFile   = "places_cache.json"
	settingsFile = "settings.json"
)

// collection is the persisted envelope for list-shaped files: a write
// counter plus the items. Version is bumped on every successful mutation;
// nothing validates it against a caller expectation.
type collection[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// emptyCollection is the initial document for a collection file.
func emptyCollection[T any]() collection[T] {
	return collection[T]{Version: 1, Items: []T{}}
}

// newID generates a random identifier for a stored entity.
func newID() string {
	return uuid.NewString()
}

// nowUTC returns the current time in UTC for created/updated stamps.
func nowUTC() time.Time {
	return time.Now().UTC()
}
