package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/guard"
)

var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand represents an explicit status-transition
// request against the work-order state machine.
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	target      workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a command to transition a work
// order. The target must be a defined status; whether the transition is
// legal from the current status is decided by the aggregate.
func NewChangeWorkOrderStatusCommand(
	workOrderID kernel.UUID,
	target workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	if err := errors.Join(workOrderID.Validate(), target.Validate()); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return ChangeWorkOrderStatusCommand{
		workOrderID: workOrderID,
		target:      target,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier of the work order.
func (c ChangeWorkOrderStatusCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Target returns the requested status.
func (c ChangeWorkOrderStatusCommand) Target() workorder.Status {
	return c.target
}
