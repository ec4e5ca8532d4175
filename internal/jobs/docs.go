// Package jobs provides scheduled background tasks for the parcel tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the logistics pipeline.
//
// # Available Jobs
//
// 1. DeliveryRetryJob - Runs every minute to re-queue failed delivery
// assignments that still have attempts left under the retry budget
// 2. AggregateAuditJob - Runs every five minutes to compare unit aggregate
// weight and parcel count columns against the parcels actually attached
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(retryHandler, driftHandler, logger)
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
// - Retry job logs failures and skips the tick; nothing is retried outside
// the attempt budget
// - Audit job reports drift through the log and never mutates data
// - Failed job starts will stop any already running jobs
package jobs
