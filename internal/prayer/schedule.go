package prayer

import "fmt"

// Name identifies a prayer or daily reference point.
type Name string

// The five obligatory prayers plus the Sunrise reference point, in
// chronological order. Sunrise is display-only and is never a tracking
// boundary.
const (
	Fajr    Name = "Fajr"
	Sunrise Name = "Sunrise"
	Dhuhr   Name = "Dhuhr"
	Asr     Name = "Asr"
	Maghrib Name = "Maghrib"
	Isha    Name = "Isha"
)

// Entry pairs a prayer name with its time of day.
type Entry struct {
	Name Name
	At   MinuteOfDay
}

// Schedule holds one calendar day's prayer times.
type Schedule struct {
	Fajr    MinuteOfDay
	Sunrise MinuteOfDay
	Dhuhr   MinuteOfDay
	Asr     MinuteOfDay
	Maghrib MinuteOfDay
	Isha    MinuteOfDay
}

// Entries returns all six timings in chronological order, Sunrise included.
func (s Schedule) Entries() []Entry {
	return []Entry{
		{Fajr, s.Fajr},
		{Sunrise, s.Sunrise},
		{Dhuhr, s.Dhuhr},
		{Asr, s.Asr},
		{Maghrib, s.Maghrib},
		{Isha, s.Isha},
	}
}

// Obligatory returns the five tracked prayers in order, excluding Sunrise.
func (s Schedule) Obligatory() []Entry {
	return []Entry{
		{Fajr, s.Fajr},
		{Dhuhr, s.Dhuhr},
		{Asr, s.Asr},
		{Maghrib, s.Maghrib},
		{Isha, s.Isha},
	}
}

// Validate checks that the six timings are strictly increasing within the day.
func (s Schedule) Validate() error {
	entries := s.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].At <= entries[i-1].At {
			return fmt.Errorf("schedule not monotonic: %s (%s) <= %s (%s)",
				entries[i].Name, entries[i].At.Clock24(),
				entries[i-1].Name, entries[i-1].At.Clock24())
		}
	}
	return nil
}

// Emergency returns the static last-resort schedule used when every network
// source has failed. It is intentionally approximate.
func Emergency() Schedule {
	return Schedule{
		Fajr:    5*60 + 15,
		Sunrise: 6*60 + 30,
		Dhuhr:   12 * 60,
		Asr:     15*60 + 30,
		Maghrib: 18 * 60,
		Isha:    19*60 + 30,
	}
}
