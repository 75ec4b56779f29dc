package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// LineItemInput carries one requested line item on work-order creation.
type LineItemInput struct {
	Name     string
	Quantity int
	UnitCost decimal.Decimal
}

// CreateWorkOrderCommand represents a request to register a new work order.
// The work order starts in Pending status with no technician assigned.
//
// Example:
//
//	workOrderID := kernel.NewUUID()
//	cmd, err := NewCreateWorkOrderCommand(workOrderID, "Replace water heater",
//	    "Tank leaking", workorder.PriorityHigh, customer, "12 Harbor Rd",
//	    90, decimal.NewFromInt(680), nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID              kernel.UUID
	title                    string
	description              string
	priority                 workorder.Priority
	customer                 workorder.CustomerInfo
	serviceAddress           string
	estimatedDurationMinutes int
	estimatedCost            decimal.Decimal
	scheduledDate            *time.Time
	lineItems                []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a new work order.
// Validates that the work-order ID is valid, the title is non-empty, and the
// priority is a defined value. Line items are validated by the aggregate when
// the handler attaches them.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	title string,
	description string,
	priority workorder.Priority,
	customer workorder.CustomerInfo,
	serviceAddress string,
	estimatedDurationMinutes int,
	estimatedCost decimal.Decimal,
	scheduledDate *time.Time,
	lineItems []LineItemInput,
) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		description:              description,
		customer:                 customer,
		serviceAddress:           serviceAddress,
		estimatedDurationMinutes: estimatedDurationMinutes,
		estimatedCost:            estimatedCost,
		scheduledDate:            scheduledDate,
		lineItems:                lineItems,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTitle(title),
		command.setPriority(priority),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier for the work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Title returns the short summary of the requested work.
func (c CreateWorkOrderCommand) Title() string {
	return c.title
}

// Description returns the detailed problem statement.
func (c CreateWorkOrderCommand) Description() string {
	return c.description
}

// Priority returns the urgency classification.
func (c CreateWorkOrderCommand) Priority() workorder.Priority {
	return c.priority
}

// Customer returns the customer contact fields.
func (c CreateWorkOrderCommand) Customer() workorder.CustomerInfo {
	return c.customer
}

// ServiceAddress returns the free-text service location.
func (c CreateWorkOrderCommand) ServiceAddress() string {
	return c.serviceAddress
}

// EstimatedDurationMinutes returns the expected time on site.
func (c CreateWorkOrderCommand) EstimatedDurationMinutes() int {
	return c.estimatedDurationMinutes
}

// EstimatedCost returns the quoted cost.
func (c CreateWorkOrderCommand) EstimatedCost() decimal.Decimal {
	return c.estimatedCost
}

// ScheduledDate returns when the work is planned to happen.
func (c CreateWorkOrderCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

// LineItems returns the requested line items.
func (c CreateWorkOrderCommand) LineItems() []LineItemInput {
	return c.lineItems
}

func (c *CreateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CreateWorkOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateWorkOrderCommand) setPriority(priority workorder.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
