package jobs

import (
	"fmt"

	"fieldservice/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the coordinator.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workOrderAssignmentJob *WorkOrderAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.WorkOrderUoWFactory,
	assignHandler commands.AssignWorkOrderCommandHandler,
	schedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		workOrderAssignmentJob: NewWorkOrderAssignmentJob(uowFactory, assignHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workOrderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start work-order assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workOrderAssignmentJob.Stop()
}
