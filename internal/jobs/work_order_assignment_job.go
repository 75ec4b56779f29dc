package jobs

import (
	"context"
	"errors"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/workorder"
	"fieldservice/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultAssignmentSchedule fires every five seconds.
const DefaultAssignmentSchedule = "*/5 * * * * *"

// WorkOrderAssignmentJob periodically drains the pending pool by assigning
// the oldest pending work order to the best available technician.
type WorkOrderAssignmentJob struct {
	uowFactory commands.WorkOrderUoWFactory
	handler    commands.AssignWorkOrderCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewWorkOrderAssignmentJob creates the auto-assignment job. The unit-of-work
// factory locates pending work; the assign handler performs the matching and
// the write. An empty schedule falls back to DefaultAssignmentSchedule.
func NewWorkOrderAssignmentJob(
	uowFactory commands.WorkOrderUoWFactory,
	handler commands.AssignWorkOrderCommandHandler,
	schedule string,
	logger *zap.Logger,
) *WorkOrderAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}

	return &WorkOrderAssignmentJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(zap.String("component", "work_order_assignment_job")),
	}
}

// Start begins the assignment job on its schedule.
func (j *WorkOrderAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("work-order assignment job started")
	return nil
}

// Stop stops the assignment job.
func (j *WorkOrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.Info("work-order assignment job stopped")
}

// run performs one assignment attempt. An empty pending pool and a pool with
// no eligible technician are expected outcomes and stay quiet.
func (j *WorkOrderAssignmentJob) run() {
	ctx := context.Background()

	pending, err := j.findPending(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			j.logger.Error("failed to look up pending work orders", zap.Error(err))
		}
		return
	}

	cmd, err := commands.NewAssignWorkOrderCommand(pending.ID(), nil)
	if err != nil {
		j.logger.Error("failed to build assignment command", zap.Error(err))
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		if !errors.Is(err, commands.ErrNoTechnicianMatch) {
			j.logger.Error("work-order auto-assignment failed",
				zap.String("workOrderID", pending.ID().String()),
				zap.Error(err))
		}
		return
	}

	j.logger.Info("work order auto-assigned",
		zap.String("workOrderID", pending.ID().String()),
		zap.String("technicianID", result.WorkOrder.AssignedTechnician().String()))
}

// findPending reads the oldest pending work order inside its own read-only
// transaction.
func (j *WorkOrderAssignmentJob) findPending(ctx context.Context) (*workorder.WorkOrder, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.WorkOrderRepository().GetFirstInPendingStatus(ctx)
}
