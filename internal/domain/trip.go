// Package domain contains the core data types for the tripdesk planner.
// This package has zero external dependencies and is imported by every other
// internal package (jsonfile, repo, service, handler).
package domain

import "time"

// Trip is the aggregate root. Days, activities, and transports live nested
// inside the trip document — the whole document is the unit of storage
// mutation, so there are no separate files for the nested entities.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"` // ISO date, YYYY-MM-DD
	EndDate     string    `json:"endDate"`   // ISO date, YYYY-MM-DD
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Days       []Day            `json:"days"`
	Activities []Activity       `json:"activities"`
	Transports []Transportation `json:"transports"`
}

// Day is a single calendar day within a trip. Index is the display order;
// the store does not require indexes to be contiguous or unique.
type Day struct {
	ID     string `json:"id"`
	TripID string `json:"tripId"`
	Date   string `json:"date"` // ISO date, YYYY-MM-DD
	Index  int    `json:"index"`
}
