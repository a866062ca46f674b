// Package gtfsrt turns GTFS-Realtime VehiclePositions feeds into update tracks.
//
// Each FeedMessage is a snapshot of all vehicle positions at one instant.
// Tracks accumulates any number of snapshots and exposes, per vehicle, the
// observed positions as tracking.Update values ordered by timestamp, ready
// to be segmented. The stop status (INCOMING_AT, STOPPED_AT, IN_TRANSIT_TO)
// becomes the update status.
package gtfsrt
