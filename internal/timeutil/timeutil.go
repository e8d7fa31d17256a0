package timeutil

import (
	"strconv"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDate reports whether value is a valid YYYY-MM-DD date.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// Today returns the calendar date of now in loc, falling back to UTC.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// ShiftDate moves a YYYY-MM-DD date by the given number of days.
func ShiftDate(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// Season returns the season year for now in loc.
func Season(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return strconv.Itoa(now.In(loc).Year())
}

// LoadLocation resolves a zone name, returning UTC when it is unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
