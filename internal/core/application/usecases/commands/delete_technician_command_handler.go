package commands

import (
	"context"
)

// DeleteTechnicianCommandHandler handles technician removal from the
// directory.
type DeleteTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewDeleteTechnicianCommandHandler creates a handler for technician
// deletion.
func NewDeleteTechnicianCommandHandler(uowFactory TechnicianUoWFactory) DeleteTechnicianCommandHandler {
	return DeleteTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the technician deletion command.
// Loads the aggregate first so a missing technician surfaces as an
// ObjectNotFoundError.
func (h *DeleteTechnicianCommandHandler) Handle(ctx context.Context, cmd DeleteTechnicianCommand) error {
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

	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
