package domain

// Activity is something planned on a day: a visit, a meal, a booking.
// Order is its position within the day; callers reassign orders when the
// user drags activities around — the store never renumbers on its own.
type Activity struct {
	ID        string             `json:"id"`
	DayID     string             `json:"dayId"`
	Title     string             `json:"title"`
	Notes     string             `json:"notes,omitempty"`
	StartTime string             `json:"startTime,omitempty"` // HH:MM
	EndTime   string             `json:"endTime,omitempty"`   // HH:MM
	Cost      *float64           `json:"cost,omitempty"`
	Category  string             `json:"category,omitempty"`
	PlaceID   string             `json:"placeId,omitempty"`
	Order     int                `json:"order"`
	Location  *ActivityLocation  `json:"location,omitempty"`
	Transport *ActivityTransport `json:"transport,omitempty"`
}

// ActivityLocation is where an activity happens.
type ActivityLocation struct {
	Name    string   `json:"name,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address,omitempty"`
	MapLink string   `json:"mapLink,omitempty"`
}

// ActivityTransport describes how to reach an activity from the previous
// one. It is embedded in the activity and is distinct from the standalone
// Transportation entity — cascading deletes never touch it.
type ActivityTransport struct {
	Mode        TransportMode `json:"mode,omitempty"`
	Provider    string        `json:"provider,omitempty"`
	DepartTime  string        `json:"departTime,omitempty"` // HH:MM
	ArriveTime  string        `json:"arriveTime,omitempty"` // HH:MM
	DistanceKm  *float64      `json:"distanceKm,omitempty"`
	DurationMin *int          `json:"durationMin,omitempty"`
	Cost        *float64      `json:"cost,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}
