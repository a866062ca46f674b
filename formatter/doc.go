// Package formatter serializes a planned route for downstream map clients.
//
// This package is organized into:
// - builder.go: format selection
// - geojson.go: GeoJSON FeatureCollection, one feature per leg and per marker
// - gpx.go: GPX 1.1 with one track segment per leg, written by hand for precise control over output
package formatter
