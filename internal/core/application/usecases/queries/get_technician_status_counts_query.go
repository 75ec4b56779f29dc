package queries

import (
	"errors"

	"fieldservice/internal/pkg/guard"
)

var ErrGetTechnicianStatusCountsQueryIsNotConstructed = errors.New(
	"GetTechnicianStatusCountsQuery must be created via NewGetTechnicianStatusCountsQuery constructor",
)

// GetTechnicianStatusCountsQuery retrieves the number of technicians per
// status. Used by dashboards to show directory capacity at a glance.
type GetTechnicianStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTechnicianStatusCountsQuery creates a query to count technicians by
// status.
func NewGetTechnicianStatusCountsQuery() GetTechnicianStatusCountsQuery {
	return GetTechnicianStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTechnicianStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetTechnicianStatusCountsQueryIsNotConstructed)
}
