// Package timefmt normalizes the heterogeneous timestamp values returned by
// the inbox API: epoch seconds, epoch milliseconds, numeric strings and ISO
// date strings all appear depending on the inbox type.
package timefmt

import (
	"encoding/json"
	"strconv"
	"time"
)

// Sentinel is rendered whenever a value cannot be interpreted as a date.
const Sentinel = "-"

// Epoch values below this are seconds; at or above, milliseconds.
// Seconds timestamps are 10 digits, milliseconds 13.
const millisThreshold = 10_000_000_000

// Dates before this year come from misread epochs (e.g. 0 -> 1970) and are
// treated as invalid.
const minValidYear = 2000

const displayLayout = "02/01/2006 15:04"

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse classifies a raw timestamp value and converts it to a time.Time in the
// local zone. The second return is false for absent, unparseable or
// pre-2000 values.
func Parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return validate(v.Local())
	case float64:
		return fromEpoch(int64(v))
	case int:
		return fromEpoch(int64(v))
	case int64:
		return fromEpoch(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return fromEpoch(n)
		}
		return time.Time{}, false
	case string:
		if v == "" {
			return time.Time{}, false
		}
		// A fully-numeric string is an epoch, not a date string.
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return fromEpoch(n)
		}
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return validate(t.Local())
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Format renders a raw timestamp value as dd/mm/yyyy hh:mm in local time, or
// the sentinel when the value cannot be interpreted. It is total: any input
// produces a string, never a panic.
func Format(value any) string {
	t, ok := Parse(value)
	if !ok {
		return Sentinel
	}
	return t.Format(displayLayout)
}

func fromEpoch(n int64) (time.Time, bool) {
	if n < millisThreshold {
		return validate(time.Unix(n, 0))
	}
	return validate(time.UnixMilli(n))
}

func validate(t time.Time) (time.Time, bool) {
	if t.Year() < minValidYear {
		return time.Time{}, false
	}
	return t, true
}
