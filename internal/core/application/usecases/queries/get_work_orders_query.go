// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via a NewGetWorkOrders*Query constructor",
)

// GetWorkOrdersQuery retrieves work-order summaries, optionally narrowed to a
// single status or a single technician. The unfiltered form returns every
// work order in the system.
//
// Example:
//
//	query := NewGetWorkOrdersByStatusQuery(workorder.StatusPending)
//	handler := NewGetWorkOrdersQueryHandler(db, directory, logger)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve work orders: %w", err)
//	}
type GetWorkOrdersQuery struct {
	status       *workorder.Status
	technicianID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a query to retrieve all work orders.
func NewGetWorkOrdersQuery() GetWorkOrdersQuery {
	return GetWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetWorkOrdersByStatusQuery creates a query narrowed to one status.
func NewGetWorkOrdersByStatusQuery(status workorder.Status) (GetWorkOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetWorkOrdersQuery{}, err
	}

	return GetWorkOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetWorkOrdersByTechnicianQuery creates a query narrowed to the work
// orders currently referencing one technician.
func NewGetWorkOrdersByTechnicianQuery(technicianID kernel.UUID) (GetWorkOrdersQuery, error) {
	if err := technicianID.Validate(); err != nil {
		return GetWorkOrdersQuery{}, err
	}

	return GetWorkOrdersQuery{
		technicianID: &technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q GetWorkOrdersQuery) Status() *workorder.Status {
	return q.status
}

// TechnicianID returns the technician filter, or nil when unfiltered.
func (q GetWorkOrdersQuery) TechnicianID() *kernel.UUID {
	return q.technicianID
}

// GetWorkOrdersQueryResponse represents a work-order summary in the read
// model. Line items and customer contact details are omitted; use
// GetWorkOrderQuery for the full detail of a single work order.
type GetWorkOrdersQueryResponse struct {
	ID                   kernel.UUID
	Title                string
	Priority             string
	Status               string
	CustomerName         string
	ServiceAddress       string
	AssignedTechnicianID *kernel.UUID
	TechnicianName       string
	ScheduledDate        *time.Time
	CreatedAt            time.Time
}
