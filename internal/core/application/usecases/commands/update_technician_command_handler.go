package commands

import (
	"context"
)

// UpdateTechnicianCommandHandler handles profile updates to existing
// technicians.
type UpdateTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewUpdateTechnicianCommandHandler creates a handler for technician updates.
func NewUpdateTechnicianCommandHandler(uowFactory TechnicianUoWFactory) UpdateTechnicianCommandHandler {
	return UpdateTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the technician update command.
// Returns an ObjectNotFoundError when the technician does not exist and a
// ConcurrencyConflictError when a concurrent writer won the version race.
func (h *UpdateTechnicianCommandHandler) Handle(ctx context.Context, cmd UpdateTechnicianCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TechnicianRepository()

	aggregate, err := repo.Get(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.CurrentLocation(),
		cmd.Skills(),
		cmd.ExperienceYears(),
		cmd.HourlyRate(),
		cmd.MaxConcurrentOrders(),
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
