package formatter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/emstrack-routes/route"
)

// Supported output formats
const (
	FormatGeoJSON = "geojson"
	FormatGPX     = "gpx"
)

// Builder serializes routes. Name is used as the GPX track name.
type Builder struct {
	Name string
}

// NewBuilder creates a new route builder
func NewBuilder(name string) *Builder {
	if name == "" {
		name = "route"
	}
	return &Builder{Name: name}
}

// Build serializes rt in the requested format
func (b *Builder) Build(rt *route.Route, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatGeoJSON, "json", "":
		return b.BuildGeoJSON(rt)
	case FormatGPX, "xml":
		return b.BuildGPX(rt), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}
