package domain

import "encoding/json"

// PlaceProvider identifies where a cached place came from.
type PlaceProvider string

const (
	// ProviderOpenTripMap marks places fetched from the OpenTripMap API.
	ProviderOpenTripMap PlaceProvider = "opentripmap"
	// ProviderCustom marks places entered by the user or shipped as samples.
	ProviderCustom PlaceProvider = "custom"
)

// Place is a point of interest cached locally so repeat searches do not hit
// the external provider. Metadata is kept opaque: whatever the provider
// returned is stored verbatim and round-tripped unchanged.
type Place struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"externalId,omitempty"`
	Name       string          `json:"name"`
	Lat        float64         `json:"lat"`
	Lng        float64         `json:"lng"`
	Address    string          `json:"address,omitempty"`
	Provider   PlaceProvider   `json:"provider"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}
