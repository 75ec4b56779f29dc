package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrDeleteTechnicianCommandIsNotConstructed = errors.New(
	"DeleteTechnicianCommand must be created via NewDeleteTechnicianCommand constructor",
)

// DeleteTechnicianCommand represents a request to remove a technician from
// the directory. Work orders referencing the technician keep the dangling
// reference; the coordinator tolerates it.
type DeleteTechnicianCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTechnicianCommand creates a command to delete a technician.
func NewDeleteTechnicianCommand(technicianID kernel.UUID) (DeleteTechnicianCommand, error) {
	if err := technicianID.Validate(); err != nil {
		return DeleteTechnicianCommand{}, err
	}

	return DeleteTechnicianCommand{
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTechnicianCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier of the technician to delete.
func (c DeleteTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}
