package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"
)

// ChangeWorkOrderStatusCommandHandler handles explicit status transitions.
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for status
// transitions.
func NewChangeWorkOrderStatusCommandHandler(
	uowFactory WorkOrderUoWFactory,
	notifier ports.ChangeNotifier,
) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status-transition command and returns the committed
// work order.
//
// A request for the current status is an idempotent no-op: nothing is
// persisted, no event is published, and the current state is returned
// without error. Illegal transitions surface the aggregate's
// InvalidTransitionError unchanged.
func (h *ChangeWorkOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkOrderStatusCommand) (*workorder.WorkOrder, error) {
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

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}
	if aggregate.Status() == oldStatus {
		return aggregate, nil
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(events.NewStatusChangedEvent(
		aggregate.ID(), oldStatus.String(), aggregate.Status().String()))
	return aggregate, nil
}
