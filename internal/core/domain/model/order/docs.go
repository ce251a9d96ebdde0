// Package order models the delivery order as seen by the dispatch core.
//
// Orders are created and managed by the wider retail application (order
// entry, POS); this core only reads them for route assignment and the driver
// view, and advances their status to Completed when the matching route stop
// is delivered. There is therefore no NewOrder constructor here; orders
// enter the core through RestoreOrder when rehydrated from persistence.
package order
