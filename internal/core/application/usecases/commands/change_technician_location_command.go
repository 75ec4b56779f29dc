package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrChangeTechnicianLocationCommandIsNotConstructed = errors.New(
	"ChangeTechnicianLocationCommand must be created via NewChangeTechnicianLocationCommand constructor",
)

// ChangeTechnicianLocationCommand represents a request to move a technician
// to a new position without touching the rest of the profile.
type ChangeTechnicianLocationCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID
	location     string

	guard guard.ConstructorGuard
}

// NewChangeTechnicianLocationCommand creates a command to change a
// technician's current location. An empty location means "unknown".
func NewChangeTechnicianLocationCommand(
	technicianID kernel.UUID,
	location string,
) (ChangeTechnicianLocationCommand, error) {
	if err := technicianID.Validate(); err != nil {
		return ChangeTechnicianLocationCommand{}, err
	}

	return ChangeTechnicianLocationCommand{
		technicianID: technicianID,
		location:     location,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTechnicianLocationCommand) Validate() error {
	return c.guard.Validate(ErrChangeTechnicianLocationCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier of the technician.
func (c ChangeTechnicianLocationCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Location returns the requested position.
func (c ChangeTechnicianLocationCommand) Location() string {
	return c.location
}
