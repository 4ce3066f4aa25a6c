package models

import "time"

// TrackingState is the per-tick state published to the notification surface.
type TrackingState struct {
	CurrentPrayer    string    `json:"current_prayer"`
	NextPrayer       string    `json:"next_prayer"`
	NextPrayerAt     string    `json:"next_prayer_at"` // 12-hour display form
	RemainingMinutes int       `json:"remaining_minutes"`
	Remaining        string    `json:"remaining"` // "Hh Mm" display form
	Approximate      bool      `json:"approximate"`
	Timestamp        time.Time `json:"timestamp"`
}
