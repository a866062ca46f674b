package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParseError reports a timestamp that could not be parsed to an absolute instant
type ParseError struct {
	Index int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("update %d: cannot parse timestamp %q: %v", e.Index, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errEmptyTimestamp = errors.New("empty timestamp")

// Accepted layouts. Values without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an ISO8601 timestamp as reported by the update feed
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	var err error
	for _, layout := range timestampLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}
