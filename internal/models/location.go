package models

import "time"

// LocationUpdate is published whenever the session location is (re)resolved.
type LocationUpdate struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	Source       string    `json:"source"`
	DeviceDenied bool      `json:"device_denied"` // advisory hint for the UI
	Timestamp    time.Time `json:"timestamp"`
}

// OverrideRequest is the manual search-and-select command received from the
// notification surface. Either Query or explicit coordinates are set.
type OverrideRequest struct {
	Query     string  `json:"query,omitempty"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}
