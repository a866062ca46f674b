// Package tracking holds the status updates reported by a moving vehicle.
//
// This package handles:
// - The Update record (location, timestamp, operational status)
// - Parsing wire timestamps once, at decode time
// - Decoding JSON update lists, including the paged envelope whose
//   "results" field carries the actual sequence
//
// Decoded updates keep the order of the feed. Nothing here sorts or
// deduplicates; that policy belongs to the consumer.
package tracking
