package tracking

import (
	"time"

	"github.com/theoremus-urban-solutions/emstrack-routes/geo"
)

// Status is an opaque operational state code, e.g. "PB" (patient bound)
type Status string

// Update is one reported observation of a vehicle
type Update struct {
	Location    geo.GeoPoint
	Timestamp   time.Time
	Status      Status
	Orientation float64
	Comment     string
	Vehicle     string

	// Synthetic marks a copy inserted at a status boundary; it is not a real observation
	Synthetic bool
}

// WithStatus returns a copy of u carrying status s. u is left untouched.
func (u *Update) WithStatus(s Status) *Update {
	c := *u
	c.Status = s
	return &c
}
