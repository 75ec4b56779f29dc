package commands

import (
	"context"

	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"
)

// DeleteWorkOrderCommandHandler handles permanent work-order removal.
type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewDeleteWorkOrderCommandHandler creates a handler for work-order deletion.
func NewDeleteWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	notifier ports.ChangeNotifier,
) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the work-order deletion command.
// Loads the aggregate first so a missing work order surfaces as an
// ObjectNotFoundError; the deletion event is published only after commit.
func (h *DeleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderCommand) error {
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

	repo := uow.WorkOrderRepository()

	aggregate, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(events.NewWorkOrderEvent(events.EventWorkOrderDeleted, aggregate.ID()))
	return nil
}
