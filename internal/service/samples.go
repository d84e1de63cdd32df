package service

import (
	_ "embed"
	"encoding/json"
	"slices"

	"tripdesk/internal/domain"
)

// sampleData ships a handful of well-known places so the search endpoint is
// useful out of the box, before any external provider is configured and
// before the user has cached anything.
//
//go:embed sample_places.json
var sampleData []byte

var samplePlaces []domain.Place

func init() {
	if err := json.Unmarshal(sampleData, &samplePlaces); err != nil {
		panic("service: malformed sample_places.json: " + err.Error())
	}
}

// SamplePlaces returns a copy of the embedded sample place set.
func SamplePlaces() []domain.Place {
	return slices.Clone(samplePlaces)
}
