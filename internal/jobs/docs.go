// Package jobs provides scheduled background tasks for the assignment
// coordinator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the field-service workflow.
//
// # Available Jobs
//
// 1. WorkOrderAssignmentJob - Runs every five seconds to assign the oldest
// pending work order to the best available technician
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, assignHandler, jobs.DefaultAssignmentSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty pending pool and a pool with no eligible technician are normal
// outcomes, not failures; the assignment job stays quiet on both and logs
// everything else.
package jobs
