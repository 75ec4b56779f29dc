package queries

import (
	"errors"

	"fieldservice/internal/pkg/guard"
)

var ErrGetStatusCountsQueryIsNotConstructed = errors.New(
	"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
)

// GetStatusCountsQuery retrieves the number of work orders per status.
// Used by dashboards to show how work is distributed across the lifecycle.
type GetStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusCountsQuery creates a query to count work orders by status.
func NewGetStatusCountsQuery() GetStatusCountsQuery {
	return GetStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// StatusCountResponse represents the number of work orders in one status.
// Statuses with no work orders are absent from the result.
type StatusCountResponse struct {
	Status string
	Count  int
}
