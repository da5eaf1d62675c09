// Package timestamp provides the timestamp formats used by the typedjson
// codec's time strategies: ISO 8601 strings and Unix epoch offsets in
// seconds or milliseconds. All formats carry millisecond precision.
package timestamp

import (
	"time"
)

// iso8601Format is ISO 8601 / RFC 3339 with optional fractional seconds.
// Formatting always emits UTC; parsing accepts an offset.
const iso8601Format = "2006-01-02T15:04:05.999Z07:00"

// FormatISO8601 formats value as an ISO 8601 date-time string in UTC.
func FormatISO8601(value time.Time) string {
	return value.UTC().Format(iso8601Format)
}

// ParseISO8601 parses an ISO 8601 date-time string.
func ParseISO8601(value string) (time.Time, error) {
	return time.Parse(iso8601Format, value)
}

// FormatEpochSeconds returns value as Unix seconds with millisecond
// precision. Milliseconds are computed directly rather than through
// UnixNano, which overflows outside roughly 1678-2262.
func FormatEpochSeconds(value time.Time) float64 {
	return float64(value.UnixMilli()) / 1e3
}

// ParseEpochSeconds returns the time at the given Unix seconds offset,
// truncated to millisecond precision.
func ParseEpochSeconds(value float64) time.Time {
	return time.UnixMilli(int64(value * 1e3)).UTC()
}

// FormatEpochMilliseconds returns value as Unix milliseconds.
func FormatEpochMilliseconds(value time.Time) float64 {
	return float64(value.UnixMilli())
}

// ParseEpochMilliseconds returns the time at the given Unix milliseconds
// offset, truncated to millisecond precision.
func ParseEpochMilliseconds(value float64) time.Time {
	return time.UnixMilli(int64(value)).UTC()
}
