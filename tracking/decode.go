package tracking

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
)

// ErrUnknownFeedShape is returned when the payload is neither a list nor a paged envelope
var ErrUnknownFeedShape = errors.New("expected update list or paged envelope with results")

type record struct {
	Location    *geo.GeoPoint `json:"location"`
	Timestamp   string        `json:"timestamp"`
	Status      string        `json:"status"`
	Orientation float64       `json:"orientation"`
	Comment     string        `json:"comment"`
	Ambulance   any           `json:"ambulance"`
}

// Page is the paginated envelope returned by list endpoints
type Page struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

// Decode reads a JSON update feed. The payload is either an array of update
// records or a Page whose results hold them. Any bad record aborts the batch.
func Decode(data []byte) ([]*Update, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	updates := make([]*Update, 0, len(raw))
	for i, msg := range raw {
		var rec record
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("update %d: %w", i, err)
		}
		u, err := rec.toUpdate(i)
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, nil
}

func unwrap(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrUnknownFeedShape
	}
	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode update list: %w", err)
		}
		return list, nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		if _, ok := probe["results"]; !ok {
			return nil, ErrUnknownFeedShape
		}
		var page Page
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		return page.Results, nil
	}
	return nil, ErrUnknownFeedShape
}

func (r record) toUpdate(index int) (*Update, error) {
	if r.Location == nil {
		return nil, fmt.Errorf("update %d: missing location", index)
	}
	if err := r.Location.Validate(); err != nil {
		return nil, fmt.Errorf("update %d: %w", index, err)
	}
	ts, err := ParseTimestamp(r.Timestamp)
	if err != nil {
		return nil, &ParseError{Index: index, Value: r.Timestamp, Err: err}
	}
	return &Update{
		Location:    *r.Location,
		Timestamp:   ts,
		Status:      Status(r.Status),
		Orientation: r.Orientation,
		Comment:     r.Comment,
		Vehicle:     vehicleID(r.Ambulance),
	}, nil
}

func vehicleID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return ""
}
