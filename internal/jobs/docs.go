// Package jobs provides scheduled background tasks for the request lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. PickupReminderJob - Runs every five minutes to remind clients whose
// scheduled pickup window opens within the next hour.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindHandler, logger)
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
// A sweep that finds nothing to remind is not an error. Notification failures
// are logged and retried naturally on the next sweep; reminders carry no state,
// so a missed sweep never corrupts anything.
package jobs
