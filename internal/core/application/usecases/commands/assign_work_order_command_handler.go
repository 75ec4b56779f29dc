package commands

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/technician"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/core/events"
	"fieldservice/internal/core/ports"

	"go.uber.org/zap"
)

// ErrNoTechnicianMatch is returned when auto-matching finds no eligible
// technician in the available pool.
var ErrNoTechnicianMatch = errors.New("no matching technician found")

// AssignWorkOrderResult carries the committed work order back to the caller
// together with the technician's display name. The name lookup is
// best-effort: an empty name means the directory could not be reached, not
// that the assignment failed.
type AssignWorkOrderResult struct {
	WorkOrder      *workorder.WorkOrder
	TechnicianName string
}

// AssignWorkOrderCommandHandler orchestrates technician assignment.
//
// The flow has a strict consistency boundary: only the local work-order
// mutation is transactional. The directory status update is best-effort
// (logged and discarded on failure, never rolled back), and the change events
// are fire-and-forget. This mirrors the orchestration contract of the
// surrounding system: the response reports the local outcome only.
//
// Example:
//
//	handler := NewAssignWorkOrderCommandHandler(uowFactory, directory, notifier, logger)
//	cmd, _ := NewAssignWorkOrderCommand(workOrderID, nil)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoTechnicianMatch):
//	    // Pool exhausted; the work order stays pending
//	case err != nil:
//	    // Local failure
//	default:
//	    // result.WorkOrder is the committed state
//	}
type AssignWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	directory  ports.TechnicianDirectory
	notifier   ports.ChangeNotifier
	matcher    services.TechnicianMatcher
	logger     *zap.Logger
}

// NewAssignWorkOrderCommandHandler creates a handler for assignment
// operations. Requires the directory gateway for candidate fetching and
// status updates, and the notifier for assignment events.
func NewAssignWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	directory ports.TechnicianDirectory,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) AssignWorkOrderCommandHandler {
	return AssignWorkOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		matcher:    services.NewTechnicianMatcher(),
		logger:     logger,
	}
}

// Handle processes the assignment command.
//
// When the command names a technician, that technician is assigned without
// consulting the directory pool. Otherwise the handler fetches the available
// pool, counts local active workloads, and lets the matcher pick; an empty
// result is ErrNoTechnicianMatch and nothing is mutated.
//
// After the transaction commits, the handler asks the directory to mark the
// technician Busy and to resolve the technician's display name for the
// response (both best-effort), then publishes the assignment events
// unconditionally.
func (h *AssignWorkOrderCommandHandler) Handle(ctx context.Context, cmd AssignWorkOrderCommand) (*AssignWorkOrderResult, error) {
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

	technicianID := cmd.TechnicianID()
	if technicianID == nil {
		technicianID, err = h.findBestTechnician(ctx, repo)
		if err != nil {
			return nil, err
		}
	}

	if err = aggregate.Assign(*technicianID); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.directory.UpdateStatus(ctx, *technicianID, technician.StatusBusy); err != nil {
		h.logger.Warn("failed to mark technician busy",
			zap.String("technician_id", technicianID.String()),
			zap.String("work_order_id", aggregate.ID().String()),
			zap.Error(err))
	}

	technicianName, err := h.directory.GetName(ctx, *technicianID)
	if err != nil {
		h.logger.Warn("failed to resolve technician name",
			zap.String("technician_id", technicianID.String()),
			zap.Error(err))
		technicianName = ""
	}

	h.notifier.Publish(events.NewWorkOrderEvent(events.EventWorkOrderAssigned, aggregate.ID()))
	h.notifier.Publish(events.NewTechnicianEvent(events.EventTechnicianAssigned, aggregate.ID(), *technicianID))

	return &AssignWorkOrderResult{WorkOrder: aggregate, TechnicianName: technicianName}, nil
}

// findBestTechnician fetches the available pool from the directory and runs
// the matcher against it with local workload counts. The pool fetch is a hard
// dependency of auto-matching: if the directory is unreachable the command
// fails, unlike the best-effort calls after commit.
func (h *AssignWorkOrderCommandHandler) findBestTechnician(
	ctx context.Context,
	repo ports.WorkOrderRepository,
) (*kernel.UUID, error) {
	candidates, err := h.directory.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	workloads, err := repo.GetActiveWorkloads(ctx)
	if err != nil {
		return nil, err
	}

	best, err := h.matcher.FindBest(nil, candidates, workloads)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, ErrNoTechnicianMatch
	}

	id := best.ID()
	return &id, nil
}
