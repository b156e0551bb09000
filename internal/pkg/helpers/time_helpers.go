package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// MaxGraduationYear is the latest graduation year accepted at the given instant.
func MaxGraduationYear(now time.Time) int {
	return now.Year() + 10
}

// MinGraduationYear is the earliest graduation year accepted.
const MinGraduationYear = 1950

// ValidGraduationYear reports whether year lies in [1950, current year + 10].
func ValidGraduationYear(year int, now time.Time) bool {
	return year >= MinGraduationYear && year <= MaxGraduationYear(now)
}

// dateLayouts are the accepted forms of a client-supplied date
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// ParseDate parses an RFC 3339 timestamp or a plain calendar date (UTC)
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
