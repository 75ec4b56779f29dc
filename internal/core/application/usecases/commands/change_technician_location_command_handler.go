package commands

import (
	"context"
)

// ChangeTechnicianLocationCommandHandler handles technician position
// updates in the directory.
type ChangeTechnicianLocationCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewChangeTechnicianLocationCommandHandler creates a handler for technician
// location changes.
func NewChangeTechnicianLocationCommandHandler(uowFactory TechnicianUoWFactory) ChangeTechnicianLocationCommandHandler {
	return ChangeTechnicianLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location-change command.
func (h *ChangeTechnicianLocationCommandHandler) Handle(ctx context.Context, cmd ChangeTechnicianLocationCommand) error {
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

	aggregate.ChangeLocation(cmd.Location())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
