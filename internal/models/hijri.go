package models

import "time"

// HijriUpdate carries the localized Hijri date string for display.
type HijriUpdate struct {
	Date        string    `json:"date"`
	Locale      string    `json:"locale"`
	Approximate bool      `json:"approximate"`
	Timestamp   time.Time `json:"timestamp"`
}
