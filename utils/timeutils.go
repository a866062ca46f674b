package utils

import (
	"strconv"
	"time"
)

// Iso8601 formats t in UTC, RFC3339 with millisecond precision when needed
func Iso8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999Z07:00")
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// FormatCoordinate renders a degree value without trailing zeros
func FormatCoordinate(deg float64) string {
	return strconv.FormatFloat(deg, 'f', -1, 64)
}
