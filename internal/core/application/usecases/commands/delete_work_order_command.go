package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
)

// DeleteWorkOrderCommand represents a request to permanently remove a work
// order. Deletion is allowed in any status and cascades to owned line items.
type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteWorkOrderCommand creates a command to delete a work order.
func NewDeleteWorkOrderCommand(workOrderID kernel.UUID) (DeleteWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return DeleteWorkOrderCommand{}, err
	}

	return DeleteWorkOrderCommand{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier of the work order to delete.
func (c DeleteWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}
