package Models

import (
	"errors"
	"fmt"
	"time"
)

// Text layouts used in the drive tables: day-first dates and 24h clocks.
const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04"
	StampLayout = "02/01/2006 15:04"
)

// ErrInvalidTimeFormat reports a clock or date string that does not parse.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ClockTime is a time of day at minute granularity, detached from any date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the offset from midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t, nil
}

// ParseStamp parses a "dd/mm/yyyy HH:MM" timestamp. Malformed input yields a
// zero sentinel and false instead of an error: old table rows with mangled
// timestamps must still display.
func ParseStamp(s string) (time.Time, bool) {
	t, err := time.Parse(StampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDuration renders d the way the tables store it: "HH:MM:SS" with
// zero-padded hours, e.g. "09:30:00".
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ParseStoredDuration parses a "H:MM:SS" table cell. Empty or malformed cells
// return false; the record is still usable, only the duration is unknown.
func ParseStoredDuration(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, false
	}
	if m < 0 || m > 59 || sec < 0 || sec > 59 || h < 0 {
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
}
