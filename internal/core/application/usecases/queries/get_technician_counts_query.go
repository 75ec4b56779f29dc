package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetTechnicianCountsQueryIsNotConstructed = errors.New(
	"GetTechnicianCountsQuery must be created via NewGetTechnicianCountsQuery constructor",
)

// GetTechnicianCountsQuery retrieves the number of work orders referencing
// each technician, in any status. Unassigned work orders are not counted.
type GetTechnicianCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTechnicianCountsQuery creates a query to count work orders by
// technician.
func NewGetTechnicianCountsQuery() GetTechnicianCountsQuery {
	return GetTechnicianCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTechnicianCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnicianCountsQueryIsNotConstructed)
}

// TechnicianCountResponse represents the number of work orders referencing
// one technician.
type TechnicianCountResponse struct {
	TechnicianID kernel.UUID
	Count        int
}
