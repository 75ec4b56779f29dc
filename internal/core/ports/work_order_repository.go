// Package ports defines repository and gateway interfaces for the
// field-service domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates. Provides methods for storing, retrieving, and querying work
// orders with their complete state including line items.
type WorkOrderRepository interface {
	// Add persists a new work-order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work-order aggregate using a
	// versioned compare-and-swap. When the stored version no longer matches
	// the aggregate's version the update is rejected with a
	// ConcurrencyConflictError and no state changes.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work-order aggregate by its unique identifier.
	// Returns the complete work order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// Delete removes a work-order aggregate and its line items from storage.
	// Deletion is permitted in any status.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetFirstInPendingStatus retrieves the oldest work order in Pending
	// status. Used by the auto-assignment job to find work awaiting a
	// technician.
	GetFirstInPendingStatus(ctx context.Context) (*workorder.WorkOrder, error)

	// GetActiveWorkloads returns how many work orders in an active status
	// (Assigned, InProgress, OnHold) each technician currently holds, keyed
	// by technician id. Technicians with no active work are absent.
	GetActiveWorkloads(ctx context.Context) (map[kernel.UUID]int, error)
}
