package commands

import (
	"context"
)

// ChangeTechnicianStatusCommandHandler handles availability changes in the
// directory.
type ChangeTechnicianStatusCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewChangeTechnicianStatusCommandHandler creates a handler for technician
// status changes.
func NewChangeTechnicianStatusCommandHandler(uowFactory TechnicianUoWFactory) ChangeTechnicianStatusCommandHandler {
	return ChangeTechnicianStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-change command.
func (h *ChangeTechnicianStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTechnicianStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
