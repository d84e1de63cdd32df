package domain

// TransportMode enumerates the supported ways of getting between activities.
type TransportMode string

const (
	ModeWalk    TransportMode = "walk"
	ModeBike    TransportMode = "bike"
	ModeScooter TransportMode = "scooter"
	ModeCar     TransportMode = "car"
	ModeTaxi    TransportMode = "taxi"
	ModeBus     TransportMode = "bus"
	ModeTrain   TransportMode = "train"
	ModeMetro   TransportMode = "metro"
	ModeFerry   TransportMode = "ferry"
	ModeFlight  TransportMode = "flight"
	ModeOther   TransportMode = "other"
)

// TransportModes lists every valid mode, in display order.
var TransportModes = []TransportMode{
	ModeWalk, ModeBike, ModeScooter, ModeCar, ModeTaxi, ModeBus,
	ModeTrain, ModeMetro, ModeFerry, ModeFlight, ModeOther,
}

// Valid reports whether m is one of the enumerated transport modes.
func (m TransportMode) Valid() bool {
	for _, v := range TransportModes {
		if m == v {
			return true
		}
	}
	return false
}

// Transportation is a standalone transport leg within a day, optionally
// linking two activities. Deleting an activity removes every leg that
// references it as origin or destination.
type Transportation struct {
	ID             string        `json:"id"`
	DayID          string        `json:"dayId"`
	FromActivityID string        `json:"fromActivityId,omitempty"`
	ToActivityID   string        `json:"toActivityId,omitempty"`
	Mode           TransportMode `json:"mode"`
	Provider       string        `json:"provider,omitempty"`
	DepartTime     string        `json:"departTime,omitempty"` // HH:MM
	ArriveTime     string        `json:"arriveTime,omitempty"` // HH:MM
	DistanceKm     *float64      `json:"distanceKm,omitempty"`
	DurationMin    *int          `json:"durationMin,omitempty"`
	Cost           *float64      `json:"cost,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}
