package helpers

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// ISODateLayout is the date format used in every stored record.
const ISODateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Clock abstracts time.Now so dates in generated records can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// ISODate formats t as YYYY-MM-DD in UTC.
func ISODate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD date as midnight UTC.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// USDate formats t as M/D/YYYY.
func USDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// IndonesianDate formats t as D/M/YYYY.
func IndonesianDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatISOAs reformats a stored YYYY-MM-DD date with layout fn, returning
// the input unchanged when it does not parse.
func FormatISOAs(s string, layout func(time.Time) string) string {
	t, err := ParseISODate(s)
	if err != nil {
		return s
	}
	return layout(t)
}

// DaysUntil returns the number of days from now until the expiry date,
// rounded up. Past dates give zero or negative values.
func DaysUntil(expiry string, now time.Time) (int, error) {
	t, err := ParseISODate(expiry)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(t.Sub(now).Hours() / 24)), nil
}
