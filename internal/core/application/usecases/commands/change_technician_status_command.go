package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/pkg/guard"
)

var ErrChangeTechnicianStatusCommandIsNotConstructed = errors.New(
	"ChangeTechnicianStatusCommand must be created via NewChangeTechnicianStatusCommand constructor",
)

// ChangeTechnicianStatusCommand represents a request to replace a
// technician's availability status. Both operators and the assignment
// coordinator (over HTTP) issue this command.
type ChangeTechnicianStatusCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID
	status       technician.Status

	guard guard.ConstructorGuard
}

// NewChangeTechnicianStatusCommand creates a command to change a
// technician's status.
func NewChangeTechnicianStatusCommand(
	technicianID kernel.UUID,
	status technician.Status,
) (ChangeTechnicianStatusCommand, error) {
	if err := errors.Join(technicianID.Validate(), status.Validate()); err != nil {
		return ChangeTechnicianStatusCommand{}, err
	}

	return ChangeTechnicianStatusCommand{
		technicianID: technicianID,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTechnicianStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTechnicianStatusCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier of the technician.
func (c ChangeTechnicianStatusCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Status returns the requested availability status.
func (c ChangeTechnicianStatusCommand) Status() technician.Status {
	return c.status
}
