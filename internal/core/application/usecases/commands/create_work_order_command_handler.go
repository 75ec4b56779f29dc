package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"
)

// CreateWorkOrderCommandHandler handles the business logic for work-order
// registration. Creates new work orders in Pending status and announces the
// creation through the change notifier.
//
// Example:
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewCreateWorkOrderCommand(kernel.NewUUID(), "Replace water heater",
//	    "", workorder.PriorityHigh, customer, "12 Harbor Rd", 0, decimal.Zero, nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("work order creation failed: %w", err)
//	}
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
// Requires a WorkOrderUoWFactory for transactional persistence and a
// ChangeNotifier for fire-and-forget creation events.
func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	notifier ports.ChangeNotifier,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the work-order creation command.
// Builds the aggregate in Pending status, attaches requested line items, and
// persists it within a transaction. The creation event is published only
// after a successful commit.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Priority(),
		cmd.Customer(),
		cmd.ServiceAddress(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.SetEstimates(
		cmd.EstimatedDurationMinutes(), cmd.EstimatedCost(), cmd.ScheduledDate(),
	); err != nil {
		return err
	}

	for _, item := range cmd.LineItems() {
		if err = aggregate.AddLineItem(item.Name, item.Quantity, item.UnitCost); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(events.NewWorkOrderEvent(events.EventWorkOrderCreated, aggregate.ID()))
	return nil
}
