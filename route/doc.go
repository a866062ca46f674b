// Package route plans how a segmented vehicle track is drawn on a map.
//
// Plan turns legs into drawing instructions: a start marker, a marker at
// every status change when splitting by status, one polyline per leg, an
// end marker, a per-leg filter control and the point to centre the map on.
// Draw hands those instructions to a Renderer, which wraps the actual
// mapping library. Status codes are resolved through an explicit Labels
// table supplied by configuration.
package route
