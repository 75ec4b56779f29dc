package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"
)

// UpdateWorkOrderCommandHandler handles descriptive updates to existing work
// orders. Loads the aggregate, applies the new fields, and persists the
// change under the optimistic-concurrency guard.
type UpdateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewUpdateWorkOrderCommandHandler creates a handler for work-order updates.
func NewUpdateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	notifier ports.ChangeNotifier,
) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the work-order update command and returns the committed
// work order.
// Returns an ObjectNotFoundError when the work order does not exist and a
// ConcurrencyConflictError when a concurrent writer won the version race.
// The update event is published only after a successful commit.
func (h *UpdateWorkOrderCommandHandler) Handle(ctx context.Context, cmd UpdateWorkOrderCommand) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	aggregate, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.Title(),
		cmd.Description(),
		cmd.Priority(),
		cmd.Customer(),
		cmd.ServiceAddress(),
		cmd.EstimatedDurationMinutes(),
		cmd.EstimatedCost(),
		cmd.ScheduledDate(),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(events.NewWorkOrderEvent(events.EventWorkOrderUpdated, aggregate.ID()))
	return aggregate, nil
}
