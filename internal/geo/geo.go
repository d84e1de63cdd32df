// Package geo holds the pure numeric helpers behind derived transport
// fields: great-circle distance, mode-based travel-time estimates, and
// clock arithmetic on HH:MM times. Nothing here touches storage.
package geo

import (
	"fmt"
	"math"

	"tripdesk/internal/domain"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// defaultSpeeds maps each transport mode to an assumed average speed in km/h.
var defaultSpeeds = map[domain.TransportMode]float64{
	domain.ModeWalk:    4,
	domain.ModeBike:    15,
	domain.ModeScooter: 20,
	domain.ModeCar:     35,
	domain.ModeTaxi:    35,
	domain.ModeBus:     25,
	domain.ModeTrain:   50,
	domain.ModeMetro:   50,
	domain.ModeFerry:   25,
	domain.ModeFlight:  700,
	domain.ModeOther:   30,
}

// fixedOverheadMin is extra minutes added regardless of distance: check-in
// and boarding for flights, dock waiting for ferries.
var fixedOverheadMin = map[domain.TransportMode]int{
	domain.ModeFlight: 120,
	domain.ModeFerry:  30,
}

// fallbackSpeedKmh is used when the mode is unknown or unset.
const fallbackSpeedKmh = 30

// Haversine returns the great-circle distance in kilometers between two
// points, rounded to one decimal. It is symmetric and zero for coincident
// points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// DefaultSpeed returns the assumed average speed in km/h for a mode.
func DefaultSpeed(mode domain.TransportMode) float64 {
	if speed, ok := defaultSpeeds[mode]; ok {
		return speed
	}
	return fallbackSpeedKmh
}

// EstimateDurationMin estimates door-to-door travel time in minutes for the
// given mode and distance: travel time at the mode's default speed, rounded,
// plus the mode's fixed overhead.
func EstimateDurationMin(mode domain.TransportMode, distanceKm float64) int {
	travel := distanceKm / DefaultSpeed(mode) * 60
	return int(math.Round(travel)) + fixedOverheadMin[mode]
}

// ArriveTime adds durationMin to an HH:MM departure time, wrapping past
// midnight. Returns an error when departTime is not a valid HH:MM string.
func ArriveTime(departTime string, durationMin int) (string, error) {
	depart, err := parseMinutes(departTime)
	if err != nil {
		return "", err
	}
	return formatMinutes(mod1440(depart + durationMin)), nil
}

// DepartTime subtracts durationMin from an HH:MM arrival time, wrapping
// backwards through midnight.
func DepartTime(arriveTime string, durationMin int) (string, error) {
	arrive, err := parseMinutes(arriveTime)
	if err != nil {
		return "", err
	}
	return formatMinutes(mod1440(arrive - durationMin)), nil
}

// ValidTime reports whether s is a well-formed HH:MM time of day.
func ValidTime(s string) bool {
	_, err := parseMinutes(s)
	return err == nil
}

// parseMinutes converts an HH:MM string to minutes since midnight.
func parseMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("geo: invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("geo: invalid time %q", s)
	}
	return h*60 + m, nil
}

// formatMinutes renders minutes since midnight as zero-padded HH:MM.
func formatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// mod1440 wraps a minute count into [0, 1440), handling negative values.
func mod1440(min int) int {
	min %= 24 * 60
	if min < 0 {
		min += 24 * 60
	}
	return min
}
