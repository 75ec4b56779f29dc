package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrUnassignWorkOrderCommandIsNotConstructed = errors.New(
	"UnassignWorkOrderCommand must be created via NewUnassignWorkOrderCommand constructor",
)

// UnassignWorkOrderCommand represents a request to remove the technician from
// a work order, returning it to the Pending pool.
type UnassignWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignWorkOrderCommand creates a command to unassign a work order.
func NewUnassignWorkOrderCommand(workOrderID kernel.UUID) (UnassignWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return UnassignWorkOrderCommand{}, err
	}

	return UnassignWorkOrderCommand{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier of the work order to unassign.
func (c UnassignWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}
