// Package route models the Route aggregate: one driver's ordered set of
// delivery stops for one date.
//
// The aggregate owns its stops and enforces the subsystem's core invariants:
//   - stop sequences always form a dense 1..N set;
//   - route status moves monotonically Planned -> InProgress -> Completed;
//   - once delivery starts, route status is a pure function of the stops'
//     statuses, recomputed from the full stop set on every delivery rather
//     than maintained as a counter.
package route
