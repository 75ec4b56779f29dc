package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves the full detail of a single work order,
// including its line items and, when the directory is reachable, the name of
// the assigned technician.
type GetWorkOrderQuery struct {
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query to retrieve one work order.
func NewGetWorkOrderQuery(workOrderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}

	return GetWorkOrderQuery{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// WorkOrderID returns the identifier of the requested work order.
func (q GetWorkOrderQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// GetWorkOrderQueryResponse represents the complete work-order read model.
// TechnicianName is populated on a best-effort basis from the technician
// directory and stays empty when the lookup fails.
type GetWorkOrderQueryResponse struct {
	ID                       kernel.UUID
	Title                    string
	Description              string
	Priority                 string
	Status                   string
	CustomerName             string
	CustomerPhone            string
	CustomerEmail            string
	ServiceAddress           string
	AssignedTechnicianID     *kernel.UUID
	TechnicianName           string
	EstimatedDurationMinutes int
	EstimatedCost            decimal.Decimal
	ScheduledDate            *time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
	LineItems                []LineItemResponse
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// LineItemResponse represents one billable line of a work order.
type LineItemResponse struct {
	ID        kernel.UUID
	Name      string
	Quantity  int
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
}
