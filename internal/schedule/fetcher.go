// Package schedule obtains the daily prayer schedule from the timing service,
// cascading through fallbacks so callers always receive a usable schedule.
package schedule

import (
	"time"

	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/pkg/aladhan"
	"github.com/rs/zerolog"
)

// Source records which stage of the cascade produced a schedule.
type Source string

const (
	// SourceAPI is the primary coordinate-based query.
	SourceAPI Source = "api"
	// SourceCityFallback is the secondary fixed-city query.
	SourceCityFallback Source = "city-fallback"
	// SourceStatic is the built-in emergency schedule.
	SourceStatic Source = "static"
)

// Approximate reports whether a schedule from this source should carry a
// non-blocking "approximate" indicator.
func (s Source) Approximate() bool {
	return s != SourceAPI
}

// TimingsClient is the slice of the Al Adhan client the fetcher uses.
type TimingsClient interface {
	Timings(date time.Time, lat, lng float64, method, school int) (*aladhan.Response, error)
	TimingsByCity(date time.Time, city, country string, method, school int) (*aladhan.Response, error)
}

// Fetcher maps timing-service responses into prayer schedules. On any
// failure it cascades: coordinates, then a fixed city, then the static
// emergency schedule. It never returns an error; inaccuracy is preferred
// over a blank display.
type Fetcher struct {
	client          TimingsClient
	method          int
	school          int
	fallbackCity    string
	fallbackCountry string
	logger          zerolog.Logger
}

// NewFetcher creates a Fetcher with fixed calculation method and
// jurisprudence school constants.
func NewFetcher(client TimingsClient, method, school int, fallbackCity, fallbackCountry string, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client:          client,
		method:          method,
		school:          school,
		fallbackCity:    fallbackCity,
		fallbackCountry: fallbackCountry,
		logger:          logger,
	}
}

// Fetch returns the schedule for the given date and coordinates, and the
// source that produced it.
func (f *Fetcher) Fetch(date time.Time, lat, lng float64) (prayer.Schedule, Source) {
	resp, err := f.client.Timings(date, lat, lng, f.method, f.school)
	if err == nil {
		if sched, convErr := FromTimings(resp.Data.Timings); convErr == nil {
			return sched, SourceAPI
		} else {
			err = convErr
		}
	}
	f.logger.Warn().
		Err(err).
		Float64("latitude", lat).
		Float64("longitude", lng).
		Msg("Coordinate timing query failed, falling back to city query")

	resp, err = f.client.TimingsByCity(date, f.fallbackCity, f.fallbackCountry, f.method, f.school)
	if err == nil {
		if sched, convErr := FromTimings(resp.Data.Timings); convErr == nil {
			return sched, SourceCityFallback
		} else {
			err = convErr
		}
	}
	f.logger.Error().
		Err(err).
		Str("city", f.fallbackCity).
		Msg("City timing query failed, using static emergency schedule")

	return prayer.Emergency(), SourceStatic
}

// FromTimings converts the wire timings into a validated schedule.
func FromTimings(t aladhan.Timings) (prayer.Schedule, error) {
	var sched prayer.Schedule
	var err error

	if sched.Fajr, err = prayer.ParseClock(t.Fajr); err != nil {
		return prayer.Schedule{}, err
	}
	if sched.Sunrise, err = prayer.ParseClock(t.Sunrise); err != nil {
		return prayer.Schedule{}, err
	}
	if sched.Dhuhr, err = prayer.ParseClock(t.Dhuhr); err != nil {
		return prayer.Schedule{}, err
	}
	if sched.Asr, err = prayer.ParseClock(t.Asr); err != nil {
		return prayer.Schedule{}, err
	}
	if sched.Maghrib, err = prayer.ParseClock(t.Maghrib); err != nil {
		return prayer.Schedule{}, err
	}
	if sched.Isha, err = prayer.ParseClock(t.Isha); err != nil {
		return prayer.Schedule{}, err
	}

	if err := sched.Validate(); err != nil {
		return prayer.Schedule{}, err
	}
	return sched, nil
}
