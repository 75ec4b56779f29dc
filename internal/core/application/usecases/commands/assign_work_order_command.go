package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrAssignWorkOrderCommandIsNotConstructed = errors.New(
	"AssignWorkOrderCommand must be created via NewAssignWorkOrderCommand constructor",
)

// AssignWorkOrderCommand represents a request to put a technician on a work
// order. The technician may be named explicitly, or left nil to have the
// handler pick the best available candidate from the directory.
//
// Example:
//
//	// Explicit assignment
//	cmd, _ := NewAssignWorkOrderCommand(workOrderID, &technicianID)
//
//	// Auto-matching
//	cmd, _ := NewAssignWorkOrderCommand(workOrderID, nil)
type AssignWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	technicianID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkOrderCommand creates a command to assign a technician.
// A nil technicianID requests auto-matching against the available pool.
func NewAssignWorkOrderCommand(
	workOrderID kernel.UUID,
	technicianID *kernel.UUID,
) (AssignWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return AssignWorkOrderCommand{}, err
	}
	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return AssignWorkOrderCommand{}, err
		}
	}

	return AssignWorkOrderCommand{
		workOrderID:  workOrderID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier of the work order to assign.
func (c AssignWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// TechnicianID returns the explicitly requested technician, nil for
// auto-matching.
func (c AssignWorkOrderCommand) TechnicianID() *kernel.UUID {
	return c.technicianID
}
