// Package commands contains the write operations of the dispatch core.
// Implements the Command pattern for the CQRS architecture: each command is
// a validated value object processed by a handler inside one transaction.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest unit of work it needs.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// RouteUoW manages transactions for route-only operations
	// (resequence, status override, metadata update, delete).
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates route-only unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// CreateRouteUoW manages transactions for route assignment, which reads
	// the driver directory and orders before writing the route.
	CreateRouteUoW interface {
		TxManager
		RouteRepoFactory
		OrderRepoFactory
		EmployeeRepoFactory
	}

	// CreateRouteUoWFactory creates route assignment unit of work instances.
	CreateRouteUoWFactory interface {
		Create() CreateRouteUoW
	}

	// DeliverStopUoW manages transactions for stop fulfillment, which
	// cascades across the stop, its order and the owning route.
	DeliverStopUoW interface {
		TxManager
		RouteRepoFactory
		OrderRepoFactory
	}

	// DeliverStopUoWFactory creates stop fulfillment unit of work instances.
	DeliverStopUoWFactory interface {
		Create() DeliverStopUoW
	}
)
