package timezone

import (
	"errors"
	"strings"
	"time"
)

const DefaultTimezone = "UTC"

// ISOLayout matches what browsers produce with Date.toISOString().
const ISOLayout = "2006-01-02T15:04:05.000Z"

var ErrInvalidDate = errors.New("invalid date")

// naive layouts carry no offset and are read in the configured location.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ParseISO accepts RFC3339 timestamps and the naive ISO-8601 forms a date
// picker sends. The result is always in UTC.
func ParseISO(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}
