package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:05")
	require.NoError(t, err)
	require.Equal(t, ClockTime{Hour: 8, Minute: 5}, c)
	require.Equal(t, "08:05", c.String())

	for _, bad := range []string{"", "8h05", "25:00", "aa:bb", "08:60"} {
		_, err := ParseClock(bad)
		require.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", bad)
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("03/03/2025")
	require.NoError(t, err)
	require.Equal(t, time.March, day.Month())
	require.Equal(t, 2025, day.Year())

	_, err = ParseDate("2025-03-03")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestParseStampLenient(t *testing.T) {
	at, ok := ParseStamp("03/03/2025 14:30")
	require.True(t, ok)
	require.Equal(t, 14, at.Hour())

	at, ok = ParseStamp("not a timestamp")
	require.False(t, ok)
	require.True(t, at.IsZero())
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "09:30:00", FormatDuration(9*time.Hour+30*time.Minute))
	require.Equal(t, "00:05:00", FormatDuration(5*time.Minute))
	require.Equal(t, "24:00:00", FormatDuration(24*time.Hour))

	// Tables written before the padding change hold unpadded hours; both
	// forms must keep loading.
	for _, s := range []string{"9:30:00", "09:30:00"} {
		d, ok := ParseStoredDuration(s)
		require.True(t, ok, s)
		require.Equal(t, 9*time.Hour+30*time.Minute, d, s)
	}
}

func TestParseStoredDuration(t *testing.T) {
	d, ok := ParseStoredDuration("9:30:00")
	require.True(t, ok)
	require.Equal(t, 9*time.Hour+30*time.Minute, d)

	_, ok = ParseStoredDuration("")
	require.False(t, ok)
	_, ok = ParseStoredDuration("garbage")
	require.False(t, ok)
}

func TestAttendanceFromRowToleratesShortRows(t *testing.T) {
	r, ok := AttendanceFromRow([]string{"Caly", "03/03/2025", "08:00"})
	require.True(t, ok)
	require.Equal(t, "Caly", r.Child)
	require.Equal(t, "08:00", r.Arrival)
	require.Empty(t, r.Departure)
	require.Empty(t, r.Duration)

	_, ok = AttendanceFromRow([]string{"Caly"})
	require.False(t, ok)
	_, ok = AttendanceFromRow([]string{"", "03/03/2025"})
	require.False(t, ok)
}

func TestActivityFromRowCoercesBadStamp(t *testing.T) {
	e, ok := ActivityFromRow([]string{"Nate", "Repas", "mangled", "a bien mangé"})
	require.True(t, ok)
	require.Equal(t, ActivityMeal, e.Kind)
	require.True(t, e.At.IsZero())
	require.Equal(t, "mangled", e.Stamp)
	require.Equal(t, "a bien mangé", e.Note)
}
