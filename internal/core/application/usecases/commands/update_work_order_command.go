package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderCommand represents a request to replace the descriptive
// fields of an existing work order. Lifecycle fields (status, technician
// reference) are not touched by this command.
type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID              kernel.UUID
	title                    string
	description              string
	priority                 workorder.Priority
	customer                 workorder.CustomerInfo
	serviceAddress           string
	estimatedDurationMinutes int
	estimatedCost            decimal.Decimal
	scheduledDate            *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderCommand creates a command to update a work order's
// descriptive fields. Validates the identifier, title, and priority up front;
// the remaining fields are validated by the aggregate.
func NewUpdateWorkOrderCommand(
	workOrderID kernel.UUID,
	title string,
	description string,
	priority workorder.Priority,
	customer workorder.CustomerInfo,
	serviceAddress string,
	estimatedDurationMinutes int,
	estimatedCost decimal.Decimal,
	scheduledDate *time.Time,
) (UpdateWorkOrderCommand, error) {
	command := UpdateWorkOrderCommand{
		description:              description,
		customer:                 customer,
		serviceAddress:           serviceAddress,
		estimatedDurationMinutes: estimatedDurationMinutes,
		estimatedCost:            estimatedCost,
		scheduledDate:            scheduledDate,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTitle(title),
		command.setPriority(priority),
	); err != nil {
		return UpdateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier of the work order to update.
func (c UpdateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Title returns the new short summary.
func (c UpdateWorkOrderCommand) Title() string {
	return c.title
}

// Description returns the new detailed problem statement.
func (c UpdateWorkOrderCommand) Description() string {
	return c.description
}

// Priority returns the new urgency classification.
func (c UpdateWorkOrderCommand) Priority() workorder.Priority {
	return c.priority
}

// Customer returns the new customer contact fields.
func (c UpdateWorkOrderCommand) Customer() workorder.CustomerInfo {
	return c.customer
}

// ServiceAddress returns the new service location.
func (c UpdateWorkOrderCommand) ServiceAddress() string {
	return c.serviceAddress
}

// EstimatedDurationMinutes returns the new expected time on site.
func (c UpdateWorkOrderCommand) EstimatedDurationMinutes() int {
	return c.estimatedDurationMinutes
}

// EstimatedCost returns the new quoted cost.
func (c UpdateWorkOrderCommand) EstimatedCost() decimal.Decimal {
	return c.estimatedCost
}

// ScheduledDate returns the new planned date.
func (c UpdateWorkOrderCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

func (c *UpdateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *UpdateWorkOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UpdateWorkOrderCommand) setPriority(priority workorder.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
