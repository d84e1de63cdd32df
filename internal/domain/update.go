package domain

// Partial-update carriers for PATCH operations. A nil field means "leave it
// alone"; a non-nil field overwrites. Identifiers are never updatable — the
// repo pins them back after the merge.

// TripUpdate carries the updatable fields of a Trip. The nested slices may
// be replaced wholesale; the fine-grained day/activity/transport operations
// on the repo go through them.
type TripUpdate struct {
	Title       *string           `json:"title,omitempty"`
	Destination *string           `json:"destination,omitempty"`
	StartDate   *string           `json:"startDate,omitempty"`
	EndDate     *string           `json:"endDate,omitempty"`
	Currency    *string           `json:"currency,omitempty"`
	Days        *[]Day            `json:"days,omitempty"`
	Activities  *[]Activity       `json:"activities,omitempty"`
	Transports  *[]Transportation `json:"transports,omitempty"`
}

// ActivityUpdate carries the updatable fields of an Activity.
type ActivityUpdate struct {
	Title     *string            `json:"title,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
	StartTime *string            `json:"startTime,omitempty"`
	EndTime   *string            `json:"endTime,omitempty"`
	Cost      *float64           `json:"cost,omitempty"`
	Category  *string            `json:"category,omitempty"`
	PlaceID   *string            `json:"placeId,omitempty"`
	Order     *int               `json:"order,omitempty"`
	Location  *ActivityLocation  `json:"location,omitempty"`
	Transport *ActivityTransport `json:"transport,omitempty"`
}

// TransportationUpdate carries the updatable fields of a Transportation leg.
type TransportationUpdate struct {
	FromActivityID *string        `json:"fromActivityId,omitempty"`
	ToActivityID   *string        `json:"toActivityId,omitempty"`
	Mode           *TransportMode `json:"mode,omitempty"`
	Provider       *string        `json:"provider,omitempty"`
	DepartTime     *string        `json:"departTime,omitempty"`
	ArriveTime     *string        `json:"arriveTime,omitempty"`
	DistanceKm     *float64       `json:"distanceKm,omitempty"`
	DurationMin    *int           `json:"durationMin,omitempty"`
	Cost           *float64       `json:"cost,omitempty"`
	Notes          *string        `json:"notes,omitempty"`
}

// SettingsUpdate carries the updatable fields of Settings. The version
// counter is store-managed and not updatable.
type SettingsUpdate struct {
	DefaultCurrency *string `json:"defaultCurrency,omitempty"`
	MapboxToken     *string `json:"mapboxToken,omitempty"`
}
