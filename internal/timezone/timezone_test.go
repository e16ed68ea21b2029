package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatePlainCalendarDay(t *testing.T) {
	got, err := ParseDate("2024-07-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-07-01", FormatDay(got))
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, ClinicTimezone, got.Location().String())
}

func TestParseDateNormalizesTimeOfDayAway(t *testing.T) {
	// 23:30 in UTC-5 is 22:30 clinic-local on the same calendar day
	got, err := ParseDate("2024-06-15T23:30:00-05:00")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", FormatDay(got))
	assert.Equal(t, 0, got.Hour())
}

func TestParseDateSameDayRegardlessOfTime(t *testing.T) {
	morning, err := ParseDate("2024-06-15T08:00:00-06:00")
	require.NoError(t, err)
	evening, err := ParseDate("2024-06-15T21:45:00-06:00")
	require.NoError(t, err)

	assert.True(t, morning.Equal(evening))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestStartOfDayIsIdempotent(t *testing.T) {
	instant := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)

	once := StartOfDay(instant)
	twice := StartOfDay(once)

	assert.True(t, once.Equal(twice))
}
