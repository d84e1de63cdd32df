package domain

// Settings is the single process-wide settings record, persisted as its own
// file. Version counts writes, like the collection envelopes do.
type Settings struct {
	Version         int    `json:"version"`
	DefaultCurrency string `json:"defaultCurrency"`
	MapboxToken     string `json:"mapboxToken,omitempty"`
}
