package route

import "github.com/theoremus-urban-solutions/emstrack-routes/tracking"

// Labels maps a status code to its display string
type Labels map[tracking.Status]string

// DefaultLabels returns the ambulance status table
func DefaultLabels() Labels {
	return Labels{
		"UK": "Unknown",
		"AV": "Available",
		"OS": "Out of service",
		"PB": "Patient bound",
		"AP": "At patient",
		"HB": "Hospital bound",
		"AH": "At hospital",
		"BB": "Base bound",
		"AB": "At base",
		"WB": "Waypoint bound",
		"AW": "At waypoint",
	}
}

// Label resolves a status, falling back to the raw code
func (l Labels) Label(s tracking.Status) string {
	if v, ok := l[s]; ok {
		return v
	}
	return string(s)
}
