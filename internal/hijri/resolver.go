// Package hijri converts Gregorian dates to localized Hijri date strings,
// degrading to a static month table when the conversion service is down.
package hijri

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hmousaa/athan-agent/pkg/aladhan"
	"github.com/rs/zerolog"
)

// approximateYear is the fixed Hijri year used by the offline fallback. The
// fallback is intentionally imprecise and always flagged as approximate.
const approximateYear = 1447

// Converter is the slice of the Al Adhan client the resolver uses.
type Converter interface {
	GregorianToHijri(date time.Time) (*aladhan.HijriDate, error)
}

// Resolver produces a localized Hijri date string for a Gregorian date.
type Resolver struct {
	converter Converter
	logger    zerolog.Logger
}

// NewResolver creates a Resolver backed by the given conversion client.
func NewResolver(converter Converter, logger zerolog.Logger) *Resolver {
	return &Resolver{
		converter: converter,
		logger:    logger,
	}
}

// Resolve returns the Hijri date string for the given Gregorian date and
// locale, and whether the result is an offline approximation. It never
// returns an error.
func (r *Resolver) Resolve(gregorian time.Time, locale string) (string, bool) {
	hd, err := r.converter.GregorianToHijri(gregorian)
	if err == nil {
		if s, fmtErr := format(hd, locale); fmtErr == nil {
			return s, false
		} else {
			err = fmtErr
		}
	}

	r.logger.Warn().
		Err(err).
		Str("locale", locale).
		Msg("Hijri conversion failed, using approximate static date")

	return approximate(gregorian, locale), true
}

// format renders a converted Hijri date with the locale's month table,
// preferring the service's own names only when the month number is unusable.
func format(hd *aladhan.HijriDate, locale string) (string, error) {
	if hd.Day == "" || hd.Year == "" {
		return "", fmt.Errorf("incomplete hijri date: %+v", hd)
	}

	month := MonthName(hd.Month.Number, locale)
	if month == "" {
		month = hd.Month.En
	}
	if month == "" {
		return "", fmt.Errorf("hijri date missing month: %+v", hd)
	}

	return fmt.Sprintf("%s %s %s %s", hd.Day, month, hd.Year, Designation(locale)), nil
}

// approximate builds the offline fallback date: the Gregorian day-of-month
// mapped onto the Gregorian month's Hijri table slot with a fixed year. Only
// good enough to keep the display populated.
func approximate(gregorian time.Time, locale string) string {
	day := gregorian.Day()
	if day > 30 {
		day = 30
	}

	month := MonthName(int(gregorian.Month()), locale)
	return strconv.Itoa(day) + " " + month + " " +
		strconv.Itoa(approximateYear) + " " + Designation(locale)
}
