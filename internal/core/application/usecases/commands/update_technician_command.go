package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateTechnicianCommandIsNotConstructed = errors.New(
	"UpdateTechnicianCommand must be created via NewUpdateTechnicianCommand constructor",
)

// UpdateTechnicianCommand represents a request to replace a technician's
// profile fields. Status is not touched; it changes only through the
// dedicated status command.
type UpdateTechnicianCommand struct { //nolint:recvcheck //using for validation
	technicianID        kernel.UUID
	name                string
	email               string
	phone               string
	currentLocation     string
	skills              []string
	experienceYears     int
	hourlyRate          decimal.Decimal
	maxConcurrentOrders int

	guard guard.ConstructorGuard
}

// NewUpdateTechnicianCommand creates a command to update a technician's
// profile.
func NewUpdateTechnicianCommand(
	technicianID kernel.UUID,
	name string,
	email string,
	phone string,
	currentLocation string,
	skills []string,
	experienceYears int,
	hourlyRate decimal.Decimal,
	maxConcurrentOrders int,
) (UpdateTechnicianCommand, error) {
	command := UpdateTechnicianCommand{
		email:               email,
		phone:               phone,
		currentLocation:     currentLocation,
		skills:              skills,
		experienceYears:     experienceYears,
		hourlyRate:          hourlyRate,
		maxConcurrentOrders: maxConcurrentOrders,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTechnicianID(technicianID),
		command.setName(name),
	); err != nil {
		return UpdateTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTechnicianCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier of the technician to update.
func (c UpdateTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Name returns the new display name.
func (c UpdateTechnicianCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateTechnicianCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateTechnicianCommand) Phone() string {
	return c.phone
}

// CurrentLocation returns the new free-text position.
func (c UpdateTechnicianCommand) CurrentLocation() string {
	return c.currentLocation
}

// Skills returns the new capability set.
func (c UpdateTechnicianCommand) Skills() []string {
	return c.skills
}

// ExperienceYears returns the new years of experience.
func (c UpdateTechnicianCommand) ExperienceYears() int {
	return c.experienceYears
}

// HourlyRate returns the new billing rate.
func (c UpdateTechnicianCommand) HourlyRate() decimal.Decimal {
	return c.hourlyRate
}

// MaxConcurrentOrders returns the new workload cap.
func (c UpdateTechnicianCommand) MaxConcurrentOrders() int {
	return c.maxConcurrentOrders
}

func (c *UpdateTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *UpdateTechnicianCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
