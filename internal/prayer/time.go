package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// MinuteOfDay is a clock time expressed as minutes since local midnight,
// always in [0, 1440).
type MinuteOfDay int

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 1440

// ParseClock parses a 24-hour "HH:MM" wire string into a MinuteOfDay.
// A trailing zone annotation such as "05:15 (+03)" is tolerated and stripped,
// since the timing service sometimes appends one.
func ParseClock(raw string) (MinuteOfDay, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", raw)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}

	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("clock time %q out of range", raw)
	}

	return MinuteOfDay(hour*60 + min), nil
}

// Clock12 renders the time in 12-hour display form, e.g. "5:15 AM".
// Midnight is "12:00 AM" and noon is "12:00 PM".
func (m MinuteOfDay) Clock12() string {
	hour := int(m) / 60
	min := int(m) % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, min, period)
}

// Clock24 renders the time in the 24-hour "HH:MM" wire form.
func (m MinuteOfDay) Clock24() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// FormatRemaining formats a minute count as "Xh Ym", or "Ym" when under an
// hour. Negative input is clamped to "0m".
func FormatRemaining(mins int) string {
	if mins < 0 {
		return "0m"
	}

	h := mins / 60
	m := mins % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
