// Package services contains domain services: operations of the dispatch core
// that do not naturally belong to a single aggregate.
//
// Its single service is the stop sequencer, which decides the initial stop
// ordering of a new route. The ordering is a deterministic sort, not a
// travelling-salesman solver; driver expectations and the route tests are
// built around its specific, simple behavior.
package services
