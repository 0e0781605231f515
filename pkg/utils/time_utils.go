package utils

import "time"

// Unix seconds are the storage format for all timestamps.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixSeconds renders an epoch-seconds value as RFC3339 UTC.
// Returns "" for t<=0 so callers can omit the field.
func FormatUnixSeconds(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}

// FormatUnixSecondsPtr is FormatUnixSeconds for nullable columns.
func FormatUnixSecondsPtr(t *int64) string {
	if t == nil {
		return ""
	}
	return FormatUnixSeconds(*t)
}
