package helpers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidGraduationYearBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		year int
		want bool
	}{
		{1949, false},
		{1950, true},
		{2000, true},
		{2036, true},
		{2037, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidGraduationYear(tt.year, now), "year %d", tt.year)
	}
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestRetryStopsAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, func() error {
		calls++
		return errors.New("temporary")
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	sentinel := errors.New("bad reference")
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 5, InitialInterval: time.Millisecond}, func() error {
		calls++
		return Permanent(sentinel)
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 3, InitialInterval: time.Millisecond}, func() error {
		calls++
		if calls < 2 {
			return errors.New("temporary")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%lagos%", ContainsPattern("lagos"))
	assert.Equal(t, `%50\%\_off\\x%`, ContainsPattern(`50%_off\x`))
}

func TestStringPtrTrims(t *testing.T) {
	assert.Equal(t, "Abuja", *StringPtr("  Abuja "))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-12-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2026-12-05T18:30:00+01:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 5, 17, 30, 0, 0, time.UTC), got)

	_, err = ParseDate("next friday")
	assert.Error(t, err)
}
