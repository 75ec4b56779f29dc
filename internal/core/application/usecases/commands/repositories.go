// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fieldservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work-order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// TechnicianRepoFactory provides access to the technician repository within a transaction.
	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	// WorkOrderUoW manages transactions for work-order operations.
	// Used by the assignment coordinator, which never touches technician
	// storage directly.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// TechnicianUoW manages transactions for technician operations.
	// Used by the technician directory.
	TechnicianUoW interface {
		TxManager
		TechnicianRepoFactory
	}

	// TechnicianUoWFactory creates new technician unit of work instances.
	TechnicianUoWFactory interface {
		Create() TechnicianUoW
	}
)
