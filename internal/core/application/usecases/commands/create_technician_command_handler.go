package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/technician"
)

// CreateTechnicianCommandHandler handles technician registration in the
// directory.
type CreateTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewCreateTechnicianCommandHandler creates a handler for technician
// registration.
func NewCreateTechnicianCommandHandler(uowFactory TechnicianUoWFactory) CreateTechnicianCommandHandler {
	return CreateTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the technician registration command.
// The new technician starts Available with the default workload cap.
func (h *CreateTechnicianCommandHandler) Handle(ctx context.Context, cmd CreateTechnicianCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := technician.NewTechnician(
		cmd.TechnicianID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.CurrentLocation(),
		cmd.Skills(),
		cmd.ExperienceYears(),
		cmd.HourlyRate(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TechnicianRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
