// Package segment partitions an ordered stream of vehicle updates into legs.
//
// A leg (Segment) is a maximal contiguous run of updates judged to be one
// continuous movement episode. Split breaks the stream where the data shows a
// coverage gap, a stop, or optionally a change of operational status.
//
// # Thresholds
//
// Distance and time each use a two-tier policy. Above the hard maximum a
// single metric breaks the leg on its own. Above the soft minimum a break
// needs both metrics to exceed their minimums at the same time, so GPS
// jitter and brief stops do not fragment a route.
//
// # Status boundaries
//
// With SplitByStatus set, a status change closes the current leg after
// appending a synthetic copy of the incoming update carrying the outgoing
// status. Every leg is therefore status-homogeneous and ends exactly where
// the next one starts. Synthetic copies have Update.Synthetic set.
//
// # Ordering
//
// Input order is trusted and never sorted. The interval between two updates
// is the absolute time difference, so reversed timestamps are tolerated
// rather than rejected.
//
// Split holds no state between calls and is safe for concurrent use on
// independent inputs.
package segment
