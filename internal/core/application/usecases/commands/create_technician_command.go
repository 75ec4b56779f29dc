package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateTechnicianCommandIsNotConstructed = errors.New(
		"CreateTechnicianCommand must be created via NewCreateTechnicianCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateTechnicianCommand represents a request to register a new technician
// in the directory. New technicians start Available with the default
// workload cap.
type CreateTechnicianCommand struct { //nolint:recvcheck //using for validation
	technicianID    kernel.UUID
	name            string
	email           string
	phone           string
	currentLocation string
	skills          []string
	experienceYears int
	hourlyRate      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateTechnicianCommand creates a command to register a technician.
// Validates the identifier and name up front; skill entries, experience, and
// rate are validated by the aggregate.
func NewCreateTechnicianCommand(
	technicianID kernel.UUID,
	name string,
	email string,
	phone string,
	currentLocation string,
	skills []string,
	experienceYears int,
	hourlyRate decimal.Decimal,
) (CreateTechnicianCommand, error) {
	command := CreateTechnicianCommand{
		email:           email,
		phone:           phone,
		currentLocation: currentLocation,
		skills:          skills,
		experienceYears: experienceYears,
		hourlyRate:      hourlyRate,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTechnicianID(technicianID),
		command.setName(name),
	); err != nil {
		return CreateTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrCreateTechnicianCommandIsNotConstructed)
}

// TechnicianID returns the unique identifier for the technician.
func (c CreateTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Name returns the technician's display name.
func (c CreateTechnicianCommand) Name() string {
	return c.name
}

// Email returns the technician's email address.
func (c CreateTechnicianCommand) Email() string {
	return c.email
}

// Phone returns the technician's phone number.
func (c CreateTechnicianCommand) Phone() string {
	return c.phone
}

// CurrentLocation returns the free-text position.
func (c CreateTechnicianCommand) CurrentLocation() string {
	return c.currentLocation
}

// Skills returns the offered capabilities.
func (c CreateTechnicianCommand) Skills() []string {
	return c.skills
}

// ExperienceYears returns the technician's years of experience.
func (c CreateTechnicianCommand) ExperienceYears() int {
	return c.experienceYears
}

// HourlyRate returns the billing rate.
func (c CreateTechnicianCommand) HourlyRate() decimal.Decimal {
	return c.hourlyRate
}

func (c *CreateTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	c.technicianID = technicianID
	return nil
}

func (c *CreateTechnicianCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
