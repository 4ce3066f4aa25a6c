package models

import "time"

// NotificationEvent records one prayer-start firing. Events exist only to
// guarantee at-most-one firing per prayer per day within a session; they are
// not persisted across restarts.
type NotificationEvent struct {
	ID      string    `json:"id"`
	Prayer  string    `json:"prayer"`
	FiredAt time.Time `json:"fired_at"`
}

// BannerEvent is the in-app banner push for a prayer start. The consumer
// auto-dismisses it after DismissAfterSeconds.
type BannerEvent struct {
	ID                  string    `json:"id"`
	Prayer              string    `json:"prayer"`
	Title               string    `json:"title"`
	Body                string    `json:"body"`
	DismissAfterSeconds int       `json:"dismiss_after_seconds"`
	FiredAt             time.Time `json:"fired_at"`
}
