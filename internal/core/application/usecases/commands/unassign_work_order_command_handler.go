package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"

	"go.uber.org/zap"
)

// UnassignWorkOrderCommandHandler orchestrates technician removal.
// Follows the same consistency boundary as assignment: local mutation is
// transactional, the directory release is best-effort, events are
// fire-and-forget.
type UnassignWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	directory  ports.TechnicianDirectory
	notifier   ports.ChangeNotifier
	logger     *zap.Logger
}

// NewUnassignWorkOrderCommandHandler creates a handler for unassignment
// operations.
func NewUnassignWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	directory ports.TechnicianDirectory,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) UnassignWorkOrderCommandHandler {
	return UnassignWorkOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the unassignment command and returns the committed work
// order.
//
// Clears the technician reference and returns the work order to Pending.
// Unassigning a work order that has no technician is a valid operation and
// still resets the status. After commit, the previous technician (when one
// existed) is released back to Available best-effort, and the unassignment
// events are published; the technician-scoped event only fires when a
// technician was actually removed.
func (h *UnassignWorkOrderCommandHandler) Handle(ctx context.Context, cmd UnassignWorkOrderCommand) (*workorder.WorkOrder, error) {
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

	previous, err := aggregate.Unassign()
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if previous != nil {
		if err = h.directory.UpdateStatus(ctx, *previous, technician.StatusAvailable); err != nil {
			h.logger.Warn("failed to release technician",
				zap.String("technician_id", previous.String()),
				zap.String("work_order_id", aggregate.ID().String()),
				zap.Error(err))
		}
	}

	h.notifier.Publish(events.NewWorkOrderEvent(events.EventWorkOrderUnassigned, aggregate.ID()))
	if previous != nil {
		h.notifier.Publish(events.NewTechnicianEvent(events.EventTechnicianUnassigned, aggregate.ID(), *previous))
	}
	return aggregate, nil
}
